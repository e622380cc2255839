package wishlist_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/donaldgifford/searchit/internal/backend"
	"github.com/donaldgifford/searchit/internal/wishlist"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func entry(id, price string) backend.WishListEntry {
	item := &backend.Item{ItemID: []string{id}, Title: []string{"Item " + id}}
	if price != "" {
		p := price
		item.SellingStatus = []backend.SellingStatus{{
			CurrentPrice: []backend.Amount{{Value: &p}},
		}}
	}
	return backend.WishListEntry{ItemDetails: item}
}

func threeItems() []backend.WishListEntry {
	return []backend.WishListEntry{
		entry("a", "10.00"),
		entry("b", "20.50"),
		entry("c", "5.25"),
	}
}

func TestReconciler_TotalAfterRefreshAndRemove(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())

	snap := r.Snapshot()
	assert.InDelta(t, 35.75, snap.Total, 1e-9)
	assert.Len(t, snap.Items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, snap.IDs)

	r.Remove("b")

	snap = r.Snapshot()
	assert.InDelta(t, 15.25, snap.Total, 1e-9)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "a", snap.Items[0].ID)
	assert.Equal(t, "c", snap.Items[1].ID)
	assert.Equal(t, []string{"a", "c"}, snap.IDs)
	assert.False(t, r.Contains("b"))
}

func TestReconciler_LoadingOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	assert.False(t, r.Snapshot().Loading)

	r.BeginRefresh()
	assert.True(t, r.Snapshot().Loading)

	r.ApplyRefresh(threeItems())
	assert.False(t, r.Snapshot().Loading)

	r.BeginRefresh()
	assert.False(t, r.Snapshot().Loading, "populated list refreshes quietly")

	r.Add("d")
	assert.False(t, r.Snapshot().Loading)
}

func TestReconciler_Add(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.Add("x")
	r.Add("x")

	snap := r.Snapshot()
	assert.Equal(t, []string{"x"}, snap.IDs)
	assert.Empty(t, snap.Items, "add does not invent a displayed row")
	assert.True(t, snap.Loading)
	assert.True(t, r.Contains("x"))
}

func TestReconciler_ApplyRefresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(r *wishlist.Reconciler)
		entries   []backend.WishListEntry
		wantIDs   []string
		wantItems int
		wantTotal float64
	}{
		{
			name:      "empty response keeps displayed list",
			setup:     func(r *wishlist.Reconciler) { r.ApplyRefresh(threeItems()) },
			entries:   nil,
			wantIDs:   []string{"a", "b", "c"},
			wantItems: 3,
			wantTotal: 35.75,
		},
		{
			name:      "ids absent from response are kept",
			setup:     func(r *wishlist.Reconciler) { r.Add("local") },
			entries:   []backend.WishListEntry{entry("a", "1.00")},
			wantIDs:   []string{"local", "a"},
			wantItems: 1,
			wantTotal: 1,
		},
		{
			name:  "echoed local id is not duplicated",
			setup: func(r *wishlist.Reconciler) { r.Add("a") },
			entries: []backend.WishListEntry{
				entry("a", "2.00"),
				entry("b", "3.00"),
			},
			wantIDs:   []string{"a", "b"},
			wantItems: 2,
			wantTotal: 5,
		},
		{
			name:  "entries without details are skipped",
			setup: func(*wishlist.Reconciler) {},
			entries: []backend.WishListEntry{
				{},
				entry("b", "3.00"),
				entry("c", "bogus"),
			},
			wantIDs:   []string{"b", "c"},
			wantItems: 2,
			wantTotal: 3,
		},
		{
			name:      "refresh replaces rather than merges items",
			setup:     func(r *wishlist.Reconciler) { r.ApplyRefresh(threeItems()) },
			entries:   []backend.WishListEntry{entry("z", "9.99")},
			wantIDs:   []string{"a", "b", "c", "z"},
			wantItems: 1,
			wantTotal: 9.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := wishlist.NewReconciler()
			tt.setup(r)
			r.ApplyRefresh(tt.entries)

			snap := r.Snapshot()
			assert.Equal(t, tt.wantIDs, snap.IDs)
			assert.Len(t, snap.Items, tt.wantItems)
			assert.InDelta(t, tt.wantTotal, snap.Total, 1e-9)
			assert.False(t, snap.Loading)
		})
	}
}

func TestReconciler_RemoveNotDisplayed(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())
	r.Remove("missing")

	snap := r.Snapshot()
	assert.Len(t, snap.Items, 3)
	assert.InDelta(t, 35.75, snap.Total, 1e-9)
}

func TestReconciler_RemoveUnpricedItem(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh([]backend.WishListEntry{entry("a", "4.00"), entry("b", "")})
	r.Remove("b")

	snap := r.Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.InDelta(t, 4.0, snap.Total, 1e-9)
}

func TestReconciler_FailRefresh(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.BeginRefresh()
	require.True(t, r.Snapshot().Loading)

	r.FailRefresh()
	assert.False(t, r.Snapshot().Loading)
	assert.Empty(t, r.Snapshot().Items)
}

func TestReconciler_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())

	snap := r.Snapshot()
	snap.IDs[0] = "mutated"
	snap.Items[0].Title = "mutated"

	again := r.Snapshot()
	assert.Equal(t, "a", again.IDs[0])
	assert.Equal(t, "Item a", again.Items[0].Title)
}

func TestReconciler_ConcurrentCommands(t *testing.T) {
	t.Parallel()

	r := wishlist.NewReconciler()
	r.ApplyRefresh(threeItems())

	var wg sync.WaitGroup
	for i := range 50 {
		id := fmt.Sprintf("id-%d", i)
		wg.Go(func() {
			r.Add(id)
			_ = r.Contains(id)
			_ = r.Snapshot()
		})
		wg.Go(func() {
			r.ApplyRefresh(threeItems())
		})
	}
	wg.Wait()

	snap := r.Snapshot()
	assert.Len(t, snap.IDs, 53)
	assert.Len(t, snap.Items, 3)
	assert.InDelta(t, 35.75, snap.Total, 1e-9)
}
