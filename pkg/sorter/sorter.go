// Package sorter orders similar items for the item detail view.
package sorter

import (
	"cmp"
	"slices"
	"strings"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

// SortSimilarItems returns a sorted copy of items.
//
// Items are always sorted ascending with a stable sort and then reversed
// for descending order, so items with equal keys keep their ascending
// relative order mirrored rather than being re-sorted by an inverted
// comparator.
func SortSimilarItems(
	items []domain.SimilarItem,
	key domain.SortKey,
	order domain.SortOrder,
) []domain.SimilarItem {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []domain.SimilarItem{}
	}

	slices.SortStableFunc(sorted, comparator(key))

	if order == domain.Descending {
		slices.Reverse(sorted)
	}

	return sorted
}

func comparator(key domain.SortKey) func(a, b domain.SimilarItem) int {
	switch key {
	case domain.SortName:
		return func(a, b domain.SimilarItem) int {
			return strings.Compare(a.Title, b.Title)
		}
	case domain.SortPrice:
		return func(a, b domain.SimilarItem) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case domain.SortDaysLeft:
		return func(a, b domain.SimilarItem) int {
			return cmp.Compare(a.DaysLeft, b.DaysLeft)
		}
	case domain.SortShipping:
		return func(a, b domain.SimilarItem) int {
			return cmp.Compare(a.ShippingCost, b.ShippingCost)
		}
	default:
		return func(a, b domain.SimilarItem) int {
			return cmp.Compare(a.Index, b.Index)
		}
	}
}
