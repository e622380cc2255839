package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/searchit/internal/engine"
)

// LocationHandler serves zip code suggestions and the current location.
type LocationHandler struct {
	eng *engine.Engine
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(eng *engine.Engine) *LocationHandler {
	return &LocationHandler{eng: eng}
}

// ZipcodesInput is the prefix to autocomplete.
type ZipcodesInput struct {
	Prefix string `query:"prefix" required:"true" minLength:"1" maxLength:"4" doc:"Leading digits of a zip code" example:"900"`
}

// ZipcodesOutput lists suggested zip codes.
type ZipcodesOutput struct {
	Body struct {
		Zipcodes []string `json:"zipcodes" doc:"Suggested zip codes in backend order"`
	}
}

// LocationOutput is the zip searches are centred on by default.
type LocationOutput struct {
	Body struct {
		Zip string `json:"zip" doc:"Current zip code" example:"90007"`
	}
}

// Zipcodes suggests zip codes for an incomplete zip.
func (h *LocationHandler) Zipcodes(ctx context.Context, input *ZipcodesInput) (*ZipcodesOutput, error) {
	zips, err := h.eng.Zipcodes(ctx, input.Prefix)
	if err != nil {
		return nil, huma.Error502BadGateway("backend error: " + err.Error())
	}

	out := &ZipcodesOutput{}
	out.Body.Zipcodes = zips
	return out, nil
}

// Location returns the cached current zip.
func (h *LocationHandler) Location(_ context.Context, _ *struct{}) (*LocationOutput, error) {
	out := &LocationOutput{}
	out.Body.Zip = h.eng.CurrentZip()
	return out, nil
}

// RefreshLocation looks the current zip up again.
func (h *LocationHandler) RefreshLocation(ctx context.Context, _ *struct{}) (*LocationOutput, error) {
	zip, err := h.eng.RefreshLocation(ctx)
	if err != nil {
		return nil, huma.Error502BadGateway("location error: " + err.Error())
	}

	out := &LocationOutput{}
	out.Body.Zip = zip
	return out, nil
}

// RegisterLocationRoutes registers zip code and location endpoints.
func RegisterLocationRoutes(api huma.API, h *LocationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "autocomplete-zipcode",
		Method:      http.MethodGet,
		Path:        "/api/v1/zipcodes",
		Summary:     "Autocomplete a zip code",
		Description: "Suggests zip codes starting with a one to four digit prefix.",
		Tags:        []string{"location"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Zipcodes)

	huma.Register(api, huma.Operation{
		OperationID: "get-location",
		Method:      http.MethodGet,
		Path:        "/api/v1/location",
		Summary:     "Get current location",
		Description: "Returns the last located zip, or the default zip when no lookup has succeeded.",
		Tags:        []string{"location"},
	}, h.Location)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-location",
		Method:      http.MethodPost,
		Path:        "/api/v1/location/refresh",
		Summary:     "Refresh current location",
		Tags:        []string{"location"},
		Errors:      []int{http.StatusBadGateway},
	}, h.RefreshLocation)
}
