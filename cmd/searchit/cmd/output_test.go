package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/donaldgifford/searchit/internal/api/client"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a much longer title", 10, "a much ..."},
		{"Café au lait bowl", 8, "Café ..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.max))
	}
}

func TestPrintSearchTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printSearchTable(&buf, &apiclient.SearchResult{Items: []domain.ListItem{{
		SerialNumber:  "1",
		ID:            "555",
		Title:         "Desk lamp",
		Price:         "$19.99",
		ShippingCost:  "FREE SHIPPING",
		Zipcode:       "90007",
		ConditionName: "Used",
	}}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "CONDITION")
	assert.Contains(t, out, "555")
	assert.Contains(t, out, "FREE SHIPPING")
	assert.NotContains(t, out, "No records.")

	buf.Reset()
	require.NoError(t, printSearchTable(&buf, &apiclient.SearchResult{}))
	assert.Contains(t, buf.String(), "No records.")
}

func TestPrintWishList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		synced      bool
		wantWarning bool
	}{
		{name: "synced", synced: true},
		{name: "stale", synced: false, wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wl := &apiclient.WishList{Synced: tt.synced}
			wl.Items = []domain.WishListItem{{SerialNumber: "1", ID: "a", Title: "Lamp", Price: "$10.00"}}
			wl.Total = 10

			var buf bytes.Buffer
			require.NoError(t, printWishList(&buf, wl))
			assert.Contains(t, buf.String(), "$10.00")
			assert.Contains(t, buf.String(), "Total:")
			assert.Equal(t, tt.wantWarning, bytes.Contains(buf.Bytes(), []byte("may be stale")))
		})
	}
}

func TestPrintItemDetail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printItemDetail(&buf, &domain.ItemDetail{
		ID:        "42",
		Title:     "Brass lamp",
		Price:     39.99,
		Specifics: []domain.NameValue{{Name: "Brand", Values: []string{"Acme", "Lumen"}}},
		SimilarItems: []domain.SimilarItem{
			{ID: "x", Title: "Other lamp", Price: 5, DaysLeft: 3},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "$39.99")
	assert.Contains(t, out, "Acme, Lumen")
	assert.Contains(t, out, "DAYS LEFT")
	assert.Contains(t, out, "Other lamp")
}
