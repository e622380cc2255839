package wishlist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/searchit/internal/backend"
	"github.com/donaldgifford/searchit/internal/backend/mocks"
	"github.com/donaldgifford/searchit/internal/wishlist"
)

func TestService_Refresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entries   []backend.WishListEntry
		err       error
		wantErr   bool
		wantItems int
	}{
		{
			name:      "loads list",
			entries:   threeItems(),
			wantItems: 3,
		},
		{
			name:      "empty list",
			entries:   []backend.WishListEntry{},
			wantItems: 0,
		},
		{
			name:    "backend failure",
			err:     errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mb := mocks.NewMockBackend(t)
			mb.EXPECT().WishList(mock.Anything).Return(tt.entries, tt.err)

			svc := wishlist.NewService(mb)
			snap, err := svc.Refresh(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "wish list refresh")
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, snap.Items, tt.wantItems)
			assert.False(t, snap.Loading)
		})
	}
}

func TestService_Add(t *testing.T) {
	t.Parallel()

	mb := mocks.NewMockBackend(t)
	mb.EXPECT().
		ModifyWishList(mock.Anything, backend.OpAddToWishList, "b").
		Return([]backend.WishListEntry{entry("a", "10.00"), entry("b", "20.50")}, nil)

	svc := wishlist.NewService(mb)
	snap, err := svc.Add(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, snap.IDs)
	assert.Len(t, snap.Items, 2)
	assert.InDelta(t, 30.50, snap.Total, 1e-9)
	assert.True(t, svc.Contains("a"))
	assert.True(t, svc.Contains("b"))
}

func TestService_AddFailureKeepsOptimisticID(t *testing.T) {
	t.Parallel()

	mb := mocks.NewMockBackend(t)
	mb.EXPECT().
		ModifyWishList(mock.Anything, backend.OpAddToWishList, "x").
		Return(nil, errors.New("timeout"))

	svc := wishlist.NewService(mb)
	snap, err := svc.Add(context.Background(), "x")
	require.Error(t, err)

	assert.True(t, svc.Contains("x"))
	assert.False(t, snap.Loading)
}

func TestService_RemoveAppliesLocallyFirst(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())

	mb := mocks.NewMockBackend(t)
	mb.EXPECT().
		ModifyWishList(mock.Anything, backend.OpDeleteFromWishList, "b").
		RunAndReturn(func(context.Context, backend.WishListOperation, string) ([]backend.WishListEntry, error) {
			// The backend has not run yet; the local state already reflects the removal.
			assert.False(t, r.Contains("b"))
			assert.InDelta(t, 15.25, r.Snapshot().Total, 1e-9)
			return []backend.WishListEntry{entry("a", "10.00"), entry("c", "5.25")}, nil
		})

	svc := wishlist.NewService(mb, wishlist.WithReconciler(r))
	snap, err := svc.Remove(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, snap.IDs)
	assert.InDelta(t, 15.25, snap.Total, 1e-9)
	assert.Equal(t, snap, svc.Snapshot())
}

func TestService_RemoveStaleResponseRestoresID(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())

	mb := mocks.NewMockBackend(t)
	mb.EXPECT().
		ModifyWishList(mock.Anything, backend.OpDeleteFromWishList, "b").
		Return(threeItems(), nil)

	svc := wishlist.NewService(mb, wishlist.WithReconciler(r))
	snap, err := svc.Remove(context.Background(), "b")
	require.NoError(t, err)

	// A response read before the delete landed brings the id back.
	assert.Contains(t, snap.IDs, "b")
	assert.InDelta(t, 35.75, snap.Total, 1e-9)
}

func TestService_RemoveFailureKeepsLocalRemoval(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())

	mb := mocks.NewMockBackend(t)
	mb.EXPECT().
		ModifyWishList(mock.Anything, backend.OpDeleteFromWishList, "b").
		Return(nil, errors.New("backend error (status 500)"))

	svc := wishlist.NewService(mb, wishlist.WithReconciler(r))
	snap, err := svc.Remove(context.Background(), "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleteFromWishList")

	assert.NotContains(t, snap.IDs, "b")
	assert.InDelta(t, 15.25, snap.Total, 1e-9)
}

func TestService_RemoveNotDisplayedStillDeletesRemotely(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())

	mb := mocks.NewMockBackend(t)
	mb.EXPECT().
		ModifyWishList(mock.Anything, backend.OpDeleteFromWishList, "z").
		Return(threeItems(), nil).
		Once()

	svc := wishlist.NewService(mb, wishlist.WithReconciler(r))
	snap, err := svc.Remove(context.Background(), "z")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, snap.IDs)
	assert.InDelta(t, 35.75, snap.Total, 1e-9)
	assert.False(t, svc.Contains("z"))
}
