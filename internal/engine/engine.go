package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/searchit/internal/backend"
	"github.com/donaldgifford/searchit/internal/metrics"
	"github.com/donaldgifford/searchit/internal/wishlist"
	"github.com/donaldgifford/searchit/pkg/query"
	"github.com/donaldgifford/searchit/pkg/sorter"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

// maxZipPrefix is the longest prefix that is still autocompleted; a full
// five-digit zip needs no suggestions.
const maxZipPrefix = 4

// ErrItemNotFound is returned when an item-details response cannot be
// turned into a detail record.
var ErrItemNotFound = errors.New("item details not available")

// SearchOutcome is a normalized search along with the query that produced it.
type SearchOutcome struct {
	Query   string
	Results *domain.SearchResults
}

// Engine orchestrates searches, item lookups, location and the wish list.
type Engine struct {
	backend  backend.Backend
	locator  backend.Locator
	wishlist *wishlist.Service
	log      *slog.Logger

	defaultZip      string
	defaultCategory domain.Category

	mu         sync.RWMutex
	currentZip string
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWishList sets the wish list service. By default one is built on
// the engine's backend.
func WithWishList(s *wishlist.Service) EngineOption {
	return func(e *Engine) {
		e.wishlist = s
	}
}

// WithDefaultZip sets the zip used until a location lookup succeeds.
func WithDefaultZip(zip string) EngineOption {
	return func(e *Engine) {
		e.defaultZip = zip
	}
}

// WithDefaultCategory sets the category used when a search names none.
func WithDefaultCategory(c domain.Category) EngineOption {
	return func(e *Engine) {
		e.defaultCategory = c
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(b backend.Backend, loc backend.Locator, opts ...EngineOption) *Engine {
	eng := &Engine{
		backend:         b,
		locator:         loc,
		log:             slog.Default(),
		defaultZip:      domain.DefaultZipcode,
		defaultCategory: domain.CategoryAll,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.wishlist == nil {
		eng.wishlist = wishlist.NewService(b, wishlist.WithLogger(eng.log))
	}
	return eng
}

// WishList returns the wish list service.
func (eng *Engine) WishList() *wishlist.Service {
	return eng.wishlist
}

// Search validates the criteria, runs the search and normalizes the
// response. Validation failures are returned as *query.ValidationError.
func (eng *Engine) Search(ctx context.Context, c domain.SearchCriteria) (*SearchOutcome, error) {
	if c.Category == "" {
		c.Category = eng.defaultCategory
	}
	if c.CurrentZip == "" {
		c.CurrentZip = eng.CurrentZip()
	}

	if err := query.Validate(c); err != nil {
		return nil, err
	}

	q := query.Build(c)
	resp, err := eng.backend.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	results := backend.ToSearchResults(resp)
	for _, w := range results.Warnings {
		metrics.NormalizeRejectedTotal.WithLabelValues("search").Inc()
		eng.log.Warn("search response rejected", "query", q, "reason", w)
	}

	eng.log.Debug("search complete", "query", q, "items", len(results.Items))

	return &SearchOutcome{Query: q, Results: results}, nil
}

// Item fetches the details for id with its similar items in the
// requested order.
func (eng *Engine) Item(
	ctx context.Context,
	id string,
	key domain.SortKey,
	order domain.SortOrder,
) (*domain.ItemDetail, error) {
	resp, err := eng.backend.ItemDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching item %s: %w", id, err)
	}

	detail, ok := backend.ToItemDetail(resp)
	if !ok {
		metrics.NormalizeRejectedTotal.WithLabelValues("item_details").Inc()
		eng.log.Warn("item details response incomplete", "item_id", id)
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	detail.SimilarItems = sorter.SortSimilarItems(detail.SimilarItems, key, order)
	return detail, nil
}

// Zipcodes suggests zip codes starting with prefix. Empty prefixes and
// complete zips return no suggestions without calling the backend.
func (eng *Engine) Zipcodes(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" || len(prefix) > maxZipPrefix {
		return []string{}, nil
	}

	resp, err := eng.backend.AutocompleteZip(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("autocompleting zip %q: %w", prefix, err)
	}
	return backend.ToZipcodes(resp), nil
}

// CurrentZip returns the last located zip, or the default zip when no
// lookup has succeeded.
func (eng *Engine) CurrentZip() string {
	eng.mu.RLock()
	defer eng.mu.RUnlock()

	if eng.currentZip == "" {
		return eng.defaultZip
	}
	return eng.currentZip
}

// RefreshLocation looks up the current zip and caches it. On failure the
// cached zip is kept.
func (eng *Engine) RefreshLocation(ctx context.Context) (string, error) {
	zip, err := eng.locator.CurrentZip(ctx)
	if err != nil {
		eng.log.Warn("location lookup failed", "fallback_zip", eng.CurrentZip(), "error", err)
		return eng.CurrentZip(), fmt.Errorf("locating: %w", err)
	}

	eng.mu.Lock()
	eng.currentZip = zip
	eng.mu.Unlock()

	eng.log.Info("location updated", "zip", zip)
	return zip, nil
}

// Bootstrap runs the location lookup and the first wish list refresh
// concurrently. One failing does not cancel the other; the errors are
// joined.
func (eng *Engine) Bootstrap(ctx context.Context) error {
	var (
		g             errgroup.Group
		locErr, wlErr error
	)
	g.Go(func() error {
		_, locErr = eng.RefreshLocation(ctx)
		return locErr
	})
	g.Go(func() error {
		_, wlErr = eng.wishlist.Refresh(ctx)
		return wlErr
	})
	if err := g.Wait(); err == nil {
		return nil
	}

	return errors.Join(locErr, wlErr)
}
