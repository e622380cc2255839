// Package handlers implements the HTTP operations of the searchit gateway.
//
// Search, item, wish list, zip code, location and quota operations are
// registered with huma; the liveness and readiness probes are plain Echo
// handlers so they stay out of the OpenAPI document.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
