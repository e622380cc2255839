// Package main implements a mock SearchIt backend for local development.
// It serves canned listings for the search, item details, wish list and
// zip code endpoints, plus an ip-api style location endpoint, so the
// gateway can run without the real backend.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/donaldgifford/searchit/internal/backend"
)

var zipcodes = []string{
	"90001", "90002", "90003", "90004", "90005", "90006", "90007",
	"10001", "10002", "10003", "94103", "94105",
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "path to a JSON array of listings (built-in catalog when empty)")
	zip := flag.String("zip", "90007", "zip returned by the location endpoint")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	catalog := defaultCatalog()
	if *fixtureFile != "" {
		var err error
		catalog, err = loadFixture(*fixtureFile)
		if err != nil {
			logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("loaded catalog", "items", len(catalog))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock backend", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, newStore(catalog), *zip)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, s *store, zip string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /getSearchItems", searchHandler(logger, s))
	mux.HandleFunc("GET /getItemDetails/", itemDetailsHandler(logger, s))
	mux.HandleFunc("GET /retrieveWishList", wishListHandler(s))
	mux.HandleFunc("GET /modifyWishList/", modifyWishListHandler(logger, s))
	mux.HandleFunc("GET /autocompleteZipcode", zipcodeHandler())
	mux.HandleFunc("GET /json", locationHandler(zip))
	return mux
}

func loadFixture(path string) ([]backend.Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var items []backend.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return items, nil
}

func listing(id, title, price, shipping, zip, condition string) backend.Item {
	return backend.Item{
		ItemID:          []string{id},
		Title:           []string{title},
		GalleryURL:      []string{"https://picsum.photos/seed/" + id + "/200"},
		PostalCode:      []string{zip},
		ReturnsAccepted: []string{"true"},
		SellingStatus:   []backend.SellingStatus{{CurrentPrice: []backend.Amount{{Value: &price}}}},
		ShippingInfo: []backend.ShippingInfo{{
			ShippingServiceCost:     []backend.Amount{{Value: &shipping}},
			ShipToLocations:         []string{"Worldwide"},
			ExpeditedShipping:       []string{"false"},
			OneDayShippingAvailable: []string{"false"},
			HandlingTime:            []string{"1"},
		}},
		SellerInfo: []backend.SellerInfo{{SellerUserName: []string{"mock_seller"}}},
		Condition:  []backend.Condition{{ConditionID: []string{condition}}},
	}
}

func defaultCatalog() []backend.Item {
	return []backend.Item{
		listing("100000000001", "Brass desk lamp", "39.99", "0.0", "90007", "3000"),
		listing("100000000002", "LED desk lamp with USB port", "24.50", "5.99", "90001", "1000"),
		listing("100000000003", "Vintage banker's lamp", "65.00", "12.00", "10001", "3000"),
		listing("100000000004", "Children's picture book set", "18.25", "0.0", "94103", "2500"),
		listing("100000000005", "Mechanical keyboard", "89.00", "0.0", "94105", "1500"),
	}
}

// store is the mock backend state. The wish list is kept in memory.
type store struct {
	catalog []backend.Item

	mu       sync.Mutex
	wishList []string
}

func newStore(catalog []backend.Item) *store {
	return &store{catalog: catalog}
}

func (s *store) find(id string) (backend.Item, bool) {
	for _, it := range s.catalog {
		if len(it.ItemID) > 0 && it.ItemID[0] == id {
			return it, true
		}
	}
	return backend.Item{}, false
}

func (s *store) entries() []backend.WishListEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]backend.WishListEntry, 0, len(s.wishList))
	for _, id := range s.wishList {
		if it, ok := s.find(id); ok {
			out = append(out, backend.WishListEntry{ItemDetails: &it})
		}
	}
	return out
}

func (s *store) modify(op backend.WishListOperation, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch op {
	case backend.OpAddToWishList:
		if !slices.Contains(s.wishList, id) {
			s.wishList = append(s.wishList, id)
		}
	case backend.OpDeleteFromWishList:
		s.wishList = slices.DeleteFunc(s.wishList, func(v string) bool { return v == id })
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func searchHandler(logger *slog.Logger, s *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("keywords"))

		matched := []backend.Item{}
		for _, it := range s.catalog {
			if len(it.Title) > 0 && strings.Contains(strings.ToLower(it.Title[0]), q) {
				matched = append(matched, it)
			}
		}

		writeJSON(w, backend.FindItemsAdvancedResponse{
			FindItemsAdvancedResponse: []backend.SearchResults{{
				Ack:          []string{"Success"},
				SearchResult: []backend.SearchResult{{Item: matched}},
			}},
		})
		logger.Info("search", "keywords", q, "matched", len(matched))
	}
}

func itemDetailsHandler(logger *slog.Logger, s *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		it, ok := s.find(id)
		if !ok {
			logger.Warn("item not found", "id", id)
			writeJSON(w, backend.ItemDetailsResponse{})
			return
		}

		writeJSON(w, detailsFor(it, s.catalog))
	}
}

func detailsFor(it backend.Item, catalog []backend.Item) backend.ItemDetailsResponse {
	id := firstOr(it.ItemID, "")
	detail := &backend.DetailItem{
		ItemID:                      id,
		Title:                       firstOr(it.Title, ""),
		ViewItemURLForNaturalSearch: "https://example.com/itm/" + id,
		PictureURL:                  it.GalleryURL,
		Seller:                      &backend.Seller{FeedbackScore: 1200, PositiveFeedbackPercent: 99.5},
		ReturnPolicy: &backend.ReturnPolicy{
			Refund:             "Money Back",
			ReturnsWithin:      "30 Days",
			ReturnsAccepted:    "ReturnsAccepted",
			ShippingCostPaidBy: "Buyer",
		},
		HandlingTime: 1,
	}
	if raw, ok := priceOf(it); ok {
		detail.CurrentPrice.Value, _ = strconv.ParseFloat(raw, 64)
	}

	similar := []backend.SimilarItem{}
	for i, other := range catalog {
		otherID := firstOr(other.ItemID, "")
		if otherID == "" || otherID == id {
			continue
		}
		price, _ := priceOf(other)
		similar = append(similar, backend.SimilarItem{
			ItemID:        otherID,
			Title:         firstOr(other.Title, ""),
			ImageURL:      firstOr(other.GalleryURL, ""),
			BuyItNowPrice: &backend.Amount{Value: &price},
			ShippingCost:  &backend.Amount{Value: shippingOf(other)},
			TimeLeft:      fmt.Sprintf("P%dDT4H", i+1),
		})
	}

	return backend.ItemDetailsResponse{
		ItemDetails:  &backend.ItemDetailsEnvelope{Item: detail},
		GooglePhotos: &backend.GooglePhotos{Items: []backend.GooglePhoto{{Link: firstOr(it.GalleryURL, "")}}},
		SimilarItems: &backend.SimilarItemsEnvelope{
			GetSimilarItemsResponse: &backend.GetSimilarItemsResponse{
				ItemRecommendations: &backend.ItemRecommendations{Item: similar},
			},
		},
	}
}

func wishListHandler(s *store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, s.entries())
	}
}

func modifyWishListHandler(logger *slog.Logger, s *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		op := backend.WishListOperation(r.URL.Query().Get("operation"))
		id := r.URL.Query().Get("id")

		if err := s.modify(op, id); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, s.entries())
		logger.Info("wish list modified", "operation", op, "id", id)
	}
}

func zipcodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("zipcode")

		resp := backend.ZipcodeResponse{PostalCodes: []backend.PostalCode{}}
		for _, z := range zipcodes {
			if strings.HasPrefix(z, prefix) {
				resp.PostalCodes = append(resp.PostalCodes, backend.PostalCode{PostalCode: &z})
			}
		}
		writeJSON(w, resp)
	}
}

func locationHandler(zip string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, backend.LocationResponse{Status: "success", Zip: zip})
	}
}

func priceOf(it backend.Item) (string, bool) {
	if len(it.SellingStatus) == 0 || len(it.SellingStatus[0].CurrentPrice) == 0 {
		return "", false
	}
	v := it.SellingStatus[0].CurrentPrice[0].Value
	if v == nil {
		return "", false
	}
	return *v, true
}

func shippingOf(it backend.Item) *string {
	if len(it.ShippingInfo) == 0 || len(it.ShippingInfo[0].ShippingServiceCost) == 0 {
		return nil
	}
	return it.ShippingInfo[0].ShippingServiceCost[0].Value
}

func firstOr(xs []string, fallback string) string {
	if len(xs) == 0 {
		return fallback
	}
	return xs[0]
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}
