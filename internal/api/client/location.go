package client

import (
	"context"
	"net/url"
)

// Zipcodes returns zip code suggestions for a one to four digit prefix.
func (c *Client) Zipcodes(ctx context.Context, prefix string) ([]string, error) {
	var res struct {
		Zipcodes []string `json:"zipcodes"`
	}
	if err := c.get(ctx, "/api/v1/zipcodes?prefix="+url.QueryEscape(prefix), &res); err != nil {
		return nil, err
	}
	return res.Zipcodes, nil
}

// Location returns the gateway's current zip.
func (c *Client) Location(ctx context.Context) (string, error) {
	return c.zip(ctx, c.get, "/api/v1/location")
}

// RefreshLocation asks the gateway to look its location up again.
func (c *Client) RefreshLocation(ctx context.Context) (string, error) {
	return c.zip(ctx, c.post, "/api/v1/location/refresh")
}

func (*Client) zip(
	ctx context.Context,
	call func(context.Context, string, any) error,
	path string,
) (string, error) {
	var res struct {
		Zip string `json:"zip"`
	}
	if err := call(ctx, path, &res); err != nil {
		return "", err
	}
	return res.Zip, nil
}
