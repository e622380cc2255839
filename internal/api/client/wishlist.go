package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

// WishList is the gateway's wish list response. Synced is false when
// the gateway could not reach the backend.
type WishList struct {
	domain.WishListSnapshot
	Synced bool `json:"synced"`
}

// ListWishList refreshes and returns the wish list.
func (c *Client) ListWishList(ctx context.Context) (*WishList, error) {
	var wl WishList
	if err := c.get(ctx, "/api/v1/wishlist", &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// AddToWishList favourites an item.
func (c *Client) AddToWishList(ctx context.Context, id string) (*WishList, error) {
	var wl WishList
	if err := c.put(ctx, wishListPath(id), &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// RemoveFromWishList unfavourites an item.
func (c *Client) RemoveFromWishList(ctx context.Context, id string) (*WishList, error) {
	var wl WishList
	if err := c.del(ctx, wishListPath(id), &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// IsFavorited reports whether an item is on the wish list.
func (c *Client) IsFavorited(ctx context.Context, id string) (bool, error) {
	var m struct {
		Favorited bool `json:"favorited"`
	}
	if err := c.get(ctx, wishListPath(id), &m); err != nil {
		return false, err
	}
	return m.Favorited, nil
}

func wishListPath(id string) string {
	return "/api/v1/wishlist/" + url.PathEscape(id)
}
