package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/searchit/internal/backend"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

// Service pairs a Reconciler with the backend round-trips that keep it
// in sync. Local state changes first; the backend response is then
// applied as a refresh. Concurrent commands are not ordered against each
// other, so a late response can briefly restore an id that was removed.
type Service struct {
	backend backend.Backend
	state   *Reconciler
	log     *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithReconciler shares an existing Reconciler.
func WithReconciler(r *Reconciler) Option {
	return func(s *Service) {
		s.state = r
	}
}

// NewService creates a Service backed by b.
func NewService(b backend.Backend, opts ...Option) *Service {
	s := &Service{
		backend: b,
		state:   NewReconciler(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh reloads the wish list from the backend.
func (s *Service) Refresh(ctx context.Context) (domain.WishListSnapshot, error) {
	s.state.BeginRefresh()

	entries, err := s.backend.WishList(ctx)
	if err != nil {
		return s.fail("refresh", "", err)
	}

	s.state.ApplyRefresh(entries)
	return s.state.Snapshot(), nil
}

// Add favourites id and applies the backend's updated list.
func (s *Service) Add(ctx context.Context, id string) (domain.WishListSnapshot, error) {
	s.state.Add(id)
	return s.modify(ctx, backend.OpAddToWishList, id)
}

// Remove unfavourites id locally, then deletes it on the backend.
func (s *Service) Remove(ctx context.Context, id string) (domain.WishListSnapshot, error) {
	s.state.Remove(id)
	return s.modify(ctx, backend.OpDeleteFromWishList, id)
}

// Snapshot returns the current state without a backend call.
func (s *Service) Snapshot() domain.WishListSnapshot {
	return s.state.Snapshot()
}

// Contains reports whether id is favourited.
func (s *Service) Contains(id string) bool {
	return s.state.Contains(id)
}

func (s *Service) modify(
	ctx context.Context,
	op backend.WishListOperation,
	id string,
) (domain.WishListSnapshot, error) {
	entries, err := s.backend.ModifyWishList(ctx, op, id)
	if err != nil {
		return s.fail(string(op), id, err)
	}

	s.state.ApplyRefresh(entries)
	s.log.Debug("wish list updated", "operation", op, "item_id", id, "entries", len(entries))

	return s.state.Snapshot(), nil
}

func (s *Service) fail(op, id string, err error) (domain.WishListSnapshot, error) {
	s.state.FailRefresh()
	s.log.Error("wish list round-trip failed", "operation", op, "item_id", id, "error", err)
	return s.state.Snapshot(), fmt.Errorf("wish list %s: %w", op, err)
}
