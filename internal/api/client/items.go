package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

// GetItem returns an item with its similar items in the given order.
func (c *Client) GetItem(
	ctx context.Context,
	id string,
	key domain.SortKey,
	order domain.SortOrder,
) (*domain.ItemDetail, error) {
	v := url.Values{}
	if key != "" {
		v.Set("sort", string(key))
	}
	if order != "" {
		v.Set("order", string(order))
	}

	path := "/api/v1/items/" + url.PathEscape(id)
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var d domain.ItemDetail
	if err := c.get(ctx, path, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
