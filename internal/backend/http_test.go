package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/searchit/internal/backend"
)

const searchBody = `{
	"findItemsAdvancedResponse": [{
		"ack": ["Success"],
		"searchResult": [{
			"item": [
				{"itemId": ["111"], "title": ["Desk Lamp"]},
				{"itemId": ["222"], "title": ["Floor Lamp"]}
			]
		}]
	}]
}`

func TestHTTPClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
		wantItems  int
	}{
		{
			name: "passes the raw query through",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/getSearchItems", r.URL.Path)
				assert.Equal(t, "keywords=lamp&categoryType=all&distance=10&zipcode=90007", r.URL.RawQuery)
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(searchBody))
			},
			wantItems: 2,
		},
		{
			name: "500 server error response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			errContain: "status 500",
		},
		{
			name: "404 response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("not found"))
			},
			wantErr:    true,
			errContain: "status 404",
		},
		{
			name: "invalid JSON response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			errContain: "parsing getSearchItems response",
		},
		{
			name: "HTML error page",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<!DOCTYPE html><html><body>Bad Gateway</body></html>`))
			},
			wantErr:    true,
			errContain: "parsing getSearchItems response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := backend.NewHTTPClient(srv.URL)
			resp, err := client.Search(
				context.Background(),
				"keywords=lamp&categoryType=all&distance=10&zipcode=90007",
			)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			results := backend.ToSearchResults(resp)
			assert.Len(t, results.Items, tt.wantItems)
		})
	}
}

func TestHTTPClient_Endpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wantPath  string
		wantQuery map[string]string
		body      string
		call      func(t *testing.T, c *backend.HTTPClient)
	}{
		{
			name:      "item details",
			wantPath:  "/getItemDetails/",
			wantQuery: map[string]string{"id": "123456"},
			body:      `{"itemDetails": {"Item": {"ItemID": "123456", "Title": "Lamp"}}}`,
			call: func(t *testing.T, c *backend.HTTPClient) {
				resp, err := c.ItemDetails(context.Background(), "123456")
				require.NoError(t, err)
				require.NotNil(t, resp.ItemDetails)
				assert.Equal(t, "Lamp", resp.ItemDetails.Item.Title)
			},
		},
		{
			name:     "retrieve wish list",
			wantPath: "/retrieveWishList",
			body:     `[{"itemDetails": {"itemId": ["1"]}}, {}]`,
			call: func(t *testing.T, c *backend.HTTPClient) {
				entries, err := c.WishList(context.Background())
				require.NoError(t, err)
				require.Len(t, entries, 2)
				assert.Nil(t, entries[1].ItemDetails)
			},
		},
		{
			name:     "add to wish list",
			wantPath: "/modifyWishList/",
			wantQuery: map[string]string{
				"operation": "addToWishList",
				"id":        "42",
			},
			body: `[{"itemDetails": {"itemId": ["42"]}}]`,
			call: func(t *testing.T, c *backend.HTTPClient) {
				entries, err := c.ModifyWishList(context.Background(), backend.OpAddToWishList, "42")
				require.NoError(t, err)
				assert.Len(t, entries, 1)
			},
		},
		{
			name:     "delete from wish list",
			wantPath: "/modifyWishList/",
			wantQuery: map[string]string{
				"operation": "deleteFromWishList",
				"id":        "42",
			},
			body: `[]`,
			call: func(t *testing.T, c *backend.HTTPClient) {
				entries, err := c.ModifyWishList(context.Background(), backend.OpDeleteFromWishList, "42")
				require.NoError(t, err)
				assert.Empty(t, entries)
			},
		},
		{
			name:      "autocomplete zip",
			wantPath:  "/autocompleteZipcode",
			wantQuery: map[string]string{"zipcode": "900"},
			body:      `{"postalCodes": [{"postalCode": "90001"}, {"postalCode": "90002"}]}`,
			call: func(t *testing.T, c *backend.HTTPClient) {
				resp, err := c.AutocompleteZip(context.Background(), "900")
				require.NoError(t, err)
				assert.Equal(t, []string{"90001", "90002"}, backend.ToZipcodes(resp))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				for k, v := range tt.wantQuery {
					assert.Equalf(t, v, r.URL.Query().Get(k), "query param %q", k)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			tt.call(t, backend.NewHTTPClient(srv.URL+"/"))
		})
	}
}

func TestHTTPClient_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rl := backend.NewRateLimiter(100, 10, 1)
	client := backend.NewHTTPClient(srv.URL, backend.WithRateLimiter(rl))

	_, err := client.WishList(context.Background())
	require.NoError(t, err)

	_, err = client.WishList(context.Background())
	require.ErrorIs(t, err, backend.ErrDailyLimitReached)
	assert.Contains(t, err.Error(), "rate limit:")
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := backend.NewHTTPClient(srv.URL, backend.WithHTTPClient(srv.Client()))
	_, err := client.WishList(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing retrieveWishList request")
}
