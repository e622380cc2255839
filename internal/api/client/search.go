package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

// SearchResult is the gateway's search response.
type SearchResult struct {
	Query         string            `json:"query"`
	Items         []domain.ListItem `json:"items"`
	ShippingCosts map[string]string `json:"shipping_costs"`
	Warnings      []string          `json:"warnings,omitempty"`
	Count         int               `json:"count"`
}

// Search runs a search. Empty criteria fields are left to the gateway's
// defaults.
func (c *Client) Search(ctx context.Context, sc domain.SearchCriteria) (*SearchResult, error) {
	var res SearchResult
	if err := c.get(ctx, "/api/v1/search?"+searchParams(sc).Encode(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func searchParams(sc domain.SearchCriteria) url.Values {
	v := url.Values{}
	v.Set("keywords", sc.Keywords)
	if sc.Category != "" {
		v.Set("category", string(sc.Category))
	}
	setBool(v, "new", sc.NewCondition)
	setBool(v, "used", sc.UsedCondition)
	setBool(v, "unspecified", sc.UnspecifiedCondition)
	setBool(v, "local", sc.LocalShipping)
	setBool(v, "free", sc.FreeShipping)
	if sc.Distance != "" {
		v.Set("distance", sc.Distance)
	}
	setBool(v, "custom_location", sc.CustomLocation)
	if sc.CustomZip != "" {
		v.Set("zipcode", sc.CustomZip)
	}
	if sc.CurrentZip != "" {
		v.Set("current_zipcode", sc.CurrentZip)
	}
	return v
}

func setBool(v url.Values, key string, b bool) {
	if b {
		v.Set(key, strconv.FormatBool(b))
	}
}
