package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/searchit/internal/wishlist"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

// WishListHandler exposes the wish list. Backend failures never fail the
// request: the current local state is returned with synced=false.
type WishListHandler struct {
	svc *wishlist.Service
}

// NewWishListHandler creates a new WishListHandler.
func NewWishListHandler(svc *wishlist.Service) *WishListHandler {
	return &WishListHandler{svc: svc}
}

// WishListBody is the wish list snapshot plus the sync result.
type WishListBody struct {
	domain.WishListSnapshot
	Synced bool `json:"synced" doc:"False when the backend call failed and the list may be stale"`
}

// WishListOutput is the response for wish list operations.
type WishListOutput struct {
	Body WishListBody
}

// WishListItemInput names a wish list item.
type WishListItemInput struct {
	ID string `path:"id" minLength:"1" doc:"Item ID" example:"123456789"`
}

// MembershipOutput reports whether an item is on the wish list.
type MembershipOutput struct {
	Body struct {
		ID        string `json:"id"        doc:"Item ID"`
		Favorited bool   `json:"favorited" doc:"Whether the item is on the wish list"`
	}
}

// List refreshes the wish list from the backend.
func (h *WishListHandler) List(ctx context.Context, _ *struct{}) (*WishListOutput, error) {
	snap, err := h.svc.Refresh(ctx)
	return wishListOutput(snap, err), nil
}

// Add puts an item on the wish list.
func (h *WishListHandler) Add(ctx context.Context, input *WishListItemInput) (*WishListOutput, error) {
	snap, err := h.svc.Add(ctx, input.ID)
	return wishListOutput(snap, err), nil
}

// Remove takes an item off the wish list.
func (h *WishListHandler) Remove(ctx context.Context, input *WishListItemInput) (*WishListOutput, error) {
	snap, err := h.svc.Remove(ctx, input.ID)
	return wishListOutput(snap, err), nil
}

// Membership reports whether an item is on the wish list without
// calling the backend.
func (h *WishListHandler) Membership(_ context.Context, input *WishListItemInput) (*MembershipOutput, error) {
	out := &MembershipOutput{}
	out.Body.ID = input.ID
	out.Body.Favorited = h.svc.Contains(input.ID)
	return out, nil
}

// wishListOutput drops err; the service has already logged it.
func wishListOutput(snap domain.WishListSnapshot, err error) *WishListOutput {
	return &WishListOutput{Body: WishListBody{WishListSnapshot: snap, Synced: err == nil}}
}

// RegisterWishListRoutes registers wish list endpoints with the Huma API.
func RegisterWishListRoutes(api huma.API, h *WishListHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-wishlist",
		Method:      http.MethodGet,
		Path:        "/api/v1/wishlist",
		Summary:     "Refresh and list the wish list",
		Tags:        []string{"wishlist"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-wishlist-membership",
		Method:      http.MethodGet,
		Path:        "/api/v1/wishlist/{id}",
		Summary:     "Check wish list membership",
		Tags:        []string{"wishlist"},
	}, h.Membership)

	huma.Register(api, huma.Operation{
		OperationID: "add-wishlist-item",
		Method:      http.MethodPut,
		Path:        "/api/v1/wishlist/{id}",
		Summary:     "Add an item to the wish list",
		Description: "Marks the item locally, asks the backend to add it and applies the returned list.",
		Tags:        []string{"wishlist"},
	}, h.Add)

	huma.Register(api, huma.Operation{
		OperationID: "remove-wishlist-item",
		Method:      http.MethodDelete,
		Path:        "/api/v1/wishlist/{id}",
		Summary:     "Remove an item from the wish list",
		Description: "Removes the item and its price from the local total, then asks the backend to delete it.",
		Tags:        []string{"wishlist"},
	}, h.Remove)
}
