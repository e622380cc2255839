package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/searchit/internal/metrics"
)

// Endpoint names, used as metric labels.
const (
	endpointSearch       = "getSearchItems"
	endpointItemDetails  = "getItemDetails"
	endpointWishList     = "retrieveWishList"
	endpointModify       = "modifyWishList"
	endpointAutocomplete = "autocompleteZipcode"
)

// HTTPClient implements Backend over the SearchIt backend's GET API.
type HTTPClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every request goes
// through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *HTTPClient) {
		c.rateLimiter = r
	}
}

// NewHTTPClient creates a backend client rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search implements Backend.Search.
func (c *HTTPClient) Search(
	ctx context.Context,
	rawQuery string,
) (*FindItemsAdvancedResponse, error) {
	var resp FindItemsAdvancedResponse
	if err := c.get(ctx, endpointSearch, "/getSearchItems?"+rawQuery, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ItemDetails implements Backend.ItemDetails.
func (c *HTTPClient) ItemDetails(
	ctx context.Context,
	id string,
) (*ItemDetailsResponse, error) {
	var resp ItemDetailsResponse
	path := "/getItemDetails/?id=" + url.QueryEscape(id)
	if err := c.get(ctx, endpointItemDetails, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WishList implements Backend.WishList.
func (c *HTTPClient) WishList(ctx context.Context) ([]WishListEntry, error) {
	var entries []WishListEntry
	if err := c.get(ctx, endpointWishList, "/retrieveWishList", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ModifyWishList implements Backend.ModifyWishList.
func (c *HTTPClient) ModifyWishList(
	ctx context.Context,
	op WishListOperation,
	id string,
) ([]WishListEntry, error) {
	var entries []WishListEntry
	path := "/modifyWishList/?operation=" + string(op) + "&id=" + url.QueryEscape(id)
	if err := c.get(ctx, endpointModify, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AutocompleteZip implements Backend.AutocompleteZip.
func (c *HTTPClient) AutocompleteZip(
	ctx context.Context,
	prefix string,
) (*ZipcodeResponse, error) {
	var resp ZipcodeResponse
	path := "/autocompleteZipcode?zipcode=" + url.QueryEscape(prefix)
	if err := c.get(ctx, endpointAutocomplete, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint, path string, dst any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.BackendDailyLimitHits.Inc()
			}
			metrics.BackendRequestsTotal.WithLabelValues(endpoint, "rate_limited").Inc()
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.BackendDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	start := time.Now()
	err := c.do(ctx, endpoint, c.baseURL+path, dst)
	metrics.BackendRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.BackendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()

	return err
}

func (c *HTTPClient) do(ctx context.Context, endpoint, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response body: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"backend error on %s (status %d): %s",
			endpoint,
			resp.StatusCode,
			string(body),
		)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing %s response: %w", endpoint, err)
	}

	return nil
}
