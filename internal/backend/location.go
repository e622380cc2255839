package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/searchit/internal/metrics"
)

const (
	defaultLocationURL = "http://ip-api.com/json"
	endpointLocation   = "location"
)

// ErrNoZip is returned when the location service does not report a zip.
var ErrNoZip = errors.New("location service returned no zip")

// IPLocator implements Locator using the ip-api.com geolocation service.
// Concurrent lookups share a single in-flight request.
type IPLocator struct {
	url    string
	client *http.Client
	group  singleflight.Group
}

// LocatorOption configures the IPLocator.
type LocatorOption func(*IPLocator)

// WithLocationURL overrides the default ip-api.com endpoint.
func WithLocationURL(u string) LocatorOption {
	return func(l *IPLocator) {
		l.url = u
	}
}

// WithLocatorHTTPClient overrides the default HTTP client.
func WithLocatorHTTPClient(hc *http.Client) LocatorOption {
	return func(l *IPLocator) {
		l.client = hc
	}
}

// NewIPLocator creates a new IPLocator.
func NewIPLocator(opts ...LocatorOption) *IPLocator {
	l := &IPLocator{
		url:    defaultLocationURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CurrentZip implements Locator.CurrentZip. The shared lookup is detached
// from any one caller's cancellation and bounded by the client timeout;
// each caller stops waiting when its own ctx is done.
func (l *IPLocator) CurrentZip(ctx context.Context) (string, error) {
	flightCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan("zip", func() (any, error) {
		return l.lookup(flightCtx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		zip, _ := res.Val.(string)
		return zip, nil
	}
}

func (l *IPLocator) lookup(ctx context.Context) (string, error) {
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.WithLabelValues(endpointLocation).Observe(time.Since(start).Seconds())
	}()

	zip, err := l.fetch(ctx)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.BackendRequestsTotal.WithLabelValues(endpointLocation, outcome).Inc()

	return zip, err
}

func (l *IPLocator) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating location request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing location request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading location response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("location service error (status %d): %s", resp.StatusCode, string(body))
	}

	var loc LocationResponse
	if err := json.Unmarshal(body, &loc); err != nil {
		return "", fmt.Errorf("parsing location response: %w", err)
	}

	if loc.Zip == "" {
		return "", fmt.Errorf("%w (status %q)", ErrNoZip, loc.Status)
	}

	return loc.Zip, nil
}
