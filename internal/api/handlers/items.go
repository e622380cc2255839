package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/searchit/internal/engine"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

// ItemHandler serves item details.
type ItemHandler struct {
	eng *engine.Engine
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(eng *engine.Engine) *ItemHandler {
	return &ItemHandler{eng: eng}
}

// GetItemInput identifies the item and the similar-items order.
type GetItemInput struct {
	ID    string `path:"id"     doc:"Item ID"                                                       example:"123456789"`
	Sort  string `query:"sort"  doc:"Similar items sort key: default, name, price, days_left, shipping" example:"price"`
	Order string `query:"order" doc:"Sort direction: ascending or descending"                        example:"descending"`
}

// GetItemOutput is the response for the item endpoint.
type GetItemOutput struct {
	Body *domain.ItemDetail
}

// GetItem fetches an item with its similar items sorted as requested.
func (h *ItemHandler) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	key, err := domain.ParseSortKey(input.Sort)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	order, err := domain.ParseSortOrder(input.Order)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	detail, err := h.eng.Item(ctx, input.ID, key, order)
	switch {
	case errors.Is(err, engine.ErrItemNotFound):
		return nil, huma.Error404NotFound("item details not available")
	case err != nil:
		return nil, huma.Error502BadGateway("backend error: " + err.Error())
	}

	return &GetItemOutput{Body: detail}, nil
}

// RegisterItemRoutes registers item endpoints with the Huma API.
func RegisterItemRoutes(api huma.API, h *ItemHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{id}",
		Summary:     "Get item details",
		Description: "Returns the item, its photos and similar items. " +
			"Similar items keep the backend order unless a sort key is given.",
		Tags:   []string{"items"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.GetItem)
}
