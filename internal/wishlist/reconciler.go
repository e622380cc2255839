// Package wishlist keeps the favourited-item set and the displayed wish
// list consistent across local add/remove commands and backend refreshes.
package wishlist

import (
	"slices"
	"sync"

	"github.com/donaldgifford/searchit/internal/backend"
	"github.com/donaldgifford/searchit/internal/metrics"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

// Reconciler owns the wish list state. All methods are safe for
// concurrent use; each one runs to completion under a single lock so a
// refresh never interleaves with a local mutation.
type Reconciler struct {
	mu      sync.Mutex
	ids     []string
	idSet   map[string]struct{}
	items   []domain.WishListItem
	total   float64
	loading bool
}

// NewReconciler returns an empty wish list.
func NewReconciler() *Reconciler {
	return &Reconciler{
		ids:   []string{},
		idSet: map[string]struct{}{},
		items: []domain.WishListItem{},
	}
}

// BeginRefresh marks a refresh as started. Loading is only shown while
// nothing is displayed yet.
func (r *Reconciler) BeginRefresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beginRefresh()
}

func (r *Reconciler) beginRefresh() {
	if len(r.items) == 0 {
		r.loading = true
	}
}

// Add favourites id ahead of the backend confirming it.
func (r *Reconciler) Add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addID(id)
	r.beginRefresh()
}

// Remove drops id from the favourites and the displayed list, taking its
// price off the running total.
func (r *Reconciler) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.idSet[id]; ok {
		delete(r.idSet, id)
		r.ids = slices.DeleteFunc(r.ids, func(v string) bool { return v == id })
	}

	if i := slices.IndexFunc(r.items, func(it domain.WishListItem) bool { return it.ID == id }); i >= 0 {
		if p, ok := backend.ParseDisplayPrice(r.items[i].Price); ok {
			r.total -= p
		}
		r.items = slices.Delete(r.items, i, i+1)
	}

	r.beginRefresh()
	r.publish()
}

// ApplyRefresh replaces the displayed list with a backend response.
// Identifiers seen in the response are added to the favourites; ids
// missing from it are kept. An empty response only ends the loading
// state.
func (r *Reconciler) ApplyRefresh(entries []backend.WishListEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loading = false
	if len(entries) == 0 {
		return
	}

	r.items, r.total = backend.ToWishList(entries)
	for _, it := range r.items {
		if it.ID != "" {
			r.addID(it.ID)
		}
	}

	r.publish()
}

// FailRefresh ends the loading state after a failed round-trip. The
// displayed list is left as is.
func (r *Reconciler) FailRefresh() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loading = false
	metrics.WishListRefreshFailuresTotal.Inc()
}

// Contains reports whether id is favourited.
func (r *Reconciler) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.idSet[id]
	return ok
}

// Snapshot returns a copy of the current state.
func (r *Reconciler) Snapshot() domain.WishListSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return domain.WishListSnapshot{
		IDs:     slices.Clone(r.ids),
		Items:   slices.Clone(r.items),
		Total:   r.total,
		Loading: r.loading,
	}
}

func (r *Reconciler) addID(id string) {
	if _, ok := r.idSet[id]; ok {
		return
	}
	r.idSet[id] = struct{}{}
	r.ids = append(r.ids, id)
}

func (r *Reconciler) publish() {
	metrics.WishListItems.Set(float64(len(r.items)))
	metrics.WishListTotalCost.Set(r.total)
}
