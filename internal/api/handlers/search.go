package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/searchit/internal/engine"
	"github.com/donaldgifford/searchit/pkg/query"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

// SearchHandler handles product searches.
type SearchHandler struct {
	eng *engine.Engine
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(eng *engine.Engine) *SearchHandler {
	return &SearchHandler{eng: eng}
}

// SearchInput carries the search form as query parameters.
type SearchInput struct {
	Keywords       string `query:"keywords"        doc:"Search keywords"                                   example:"desk lamp"`
	Category       string `query:"category"        doc:"Category display name, All when omitted"           example:"Art"`
	New            bool   `query:"new"             doc:"Include new items"`
	Used           bool   `query:"used"            doc:"Include used items"`
	Unspecified    bool   `query:"unspecified"     doc:"Informational only, never sent to the backend"`
	Local          bool   `query:"local"           doc:"Local pickup only"`
	Free           bool   `query:"free"            doc:"Free shipping only"`
	Distance       string `query:"distance"        doc:"Search radius in miles, 10 when empty"             example:"25"`
	CustomLocation bool   `query:"custom_location" doc:"Search around zipcode instead of current_zipcode"`
	Zipcode        string `query:"zipcode"         doc:"Custom five-digit zip code"                        example:"10001"`
	CurrentZipcode string `query:"current_zipcode" doc:"Caller's zip, the located zip when omitted"        example:"90007"`
}

func (in *SearchInput) criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Keywords:             in.Keywords,
		Category:             domain.Category(in.Category),
		NewCondition:         in.New,
		UsedCondition:        in.Used,
		UnspecifiedCondition: in.Unspecified,
		LocalShipping:        in.Local,
		FreeShipping:         in.Free,
		Distance:             in.Distance,
		CustomLocation:       in.CustomLocation,
		CustomZip:            in.Zipcode,
		CurrentZip:           in.CurrentZipcode,
	}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Query         string            `json:"query"              doc:"Query string sent to the backend"`
		Items         []domain.ListItem `json:"items"              doc:"Normalized result rows"`
		ShippingCosts map[string]string `json:"shipping_costs"     doc:"Shipping cost display text by item ID"`
		Warnings      []string          `json:"warnings,omitempty" doc:"Why the response was reduced to no results"`
		Count         int               `json:"count"              doc:"Number of items"`
	}
}

// Search validates the form, runs the search and returns the normalized rows.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	outcome, err := h.eng.Search(ctx, input.criteria())
	if err != nil {
		var ve *query.ValidationError
		if errors.As(err, &ve) {
			return nil, huma.Error422UnprocessableEntity(ve.Message)
		}
		return nil, huma.Error502BadGateway("backend error: " + err.Error())
	}

	out := &SearchOutput{}
	out.Body.Query = outcome.Query
	out.Body.Items = outcome.Results.Items
	out.Body.ShippingCosts = outcome.Results.ShippingByID
	out.Body.Warnings = outcome.Results.Warnings
	out.Body.Count = len(outcome.Results.Items)
	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search listings",
		Description: "Validates the search form, queries the backend and returns flat result rows. " +
			"A response that is not a successful, non-empty result set yields zero items.",
		Tags:   []string{"search"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Search)
}
