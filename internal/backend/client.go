// Package backend provides the SearchIt backend and location clients
// abstracted behind interfaces for testability, plus the normalizers that
// turn their responses into domain records.
package backend

import (
	"context"
)

// WishListOperation is the modifyWishList operation parameter.
type WishListOperation string

// Wish list operations understood by the backend.
const (
	OpAddToWishList      WishListOperation = "addToWishList"
	OpDeleteFromWishList WishListOperation = "deleteFromWishList"
)

// Backend defines the interface for the marketplace search backend.
type Backend interface {
	// Search runs getSearchItems with a query string built by query.Build.
	Search(ctx context.Context, rawQuery string) (*FindItemsAdvancedResponse, error)
	ItemDetails(ctx context.Context, id string) (*ItemDetailsResponse, error)
	WishList(ctx context.Context) ([]WishListEntry, error)
	// ModifyWishList applies op and returns the refreshed wish list.
	ModifyWishList(ctx context.Context, op WishListOperation, id string) ([]WishListEntry, error)
	AutocompleteZip(ctx context.Context, prefix string) (*ZipcodeResponse, error)
}

// Locator resolves the caller's current zip code.
type Locator interface {
	CurrentZip(ctx context.Context) (string, error)
}
