// Package domain defines the core display types for SearchIt: the search
// form, normalized search results, item details and the wish list.
package domain

import (
	"fmt"
	"strings"
)

// NotAvailable is the display fallback for any missing field.
const NotAvailable = "NA"

// DefaultZipcode is used when the current location is unknown.
const DefaultZipcode = "90007"

// Category is a search category display name.
type Category string

// Category constants. The values are the display names shown to users.
const (
	CategoryAll        Category = "All"
	CategoryArt        Category = "Art"
	CategoryBaby       Category = "Baby"
	CategoryBooks      Category = "Books"
	CategoryClothing   Category = "Clothing,Shoes & Accessories"
	CategoryComputers  Category = "Computers/Tablets & Networking"
	CategoryHealth     Category = "Health & Beauty"
	CategoryMusic      Category = "Music"
	CategoryVideoGames Category = "Video games & Consoles"
)

var categorySlugs = map[Category]string{
	CategoryArt:        "art",
	CategoryBaby:       "baby",
	CategoryBooks:      "books",
	CategoryClothing:   "clothing",
	CategoryComputers:  "computers",
	CategoryHealth:     "health",
	CategoryMusic:      "music",
	CategoryVideoGames: "videoGames",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryArt,
		CategoryBaby,
		CategoryBooks,
		CategoryClothing,
		CategoryComputers,
		CategoryHealth,
		CategoryMusic,
		CategoryVideoGames,
	}
}

// Slug returns the backend categoryType value. "All" and unknown names
// map to the empty string.
func (c Category) Slug() string {
	return categorySlugs[c]
}

// SearchCriteria is the search form as entered by the user.
type SearchCriteria struct {
	Keywords string   `json:"keywords"        validate:"nonblank"`
	Category Category `json:"category"`

	// Conditions. Unspecified is informational only and never sent.
	NewCondition         bool `json:"new_condition"`
	UsedCondition        bool `json:"used_condition"`
	UnspecifiedCondition bool `json:"unspecified_condition"`

	LocalShipping bool `json:"local_shipping"`
	FreeShipping  bool `json:"free_shipping"`

	// Distance is the search radius in miles. Only the exact empty string
	// falls back to the default radius.
	Distance string `json:"distance"`

	CustomLocation bool   `json:"custom_location"`
	CustomZip      string `json:"custom_zip"`
	CurrentZip     string `json:"current_zip"`
}

// NewSearchCriteria returns a cleared search form.
func NewSearchCriteria() SearchCriteria {
	return SearchCriteria{
		Category:   CategoryAll,
		CurrentZip: DefaultZipcode,
	}
}

// Zipcode returns the zip the search is centred on.
func (c *SearchCriteria) Zipcode() string {
	if c.CustomLocation {
		return c.CustomZip
	}
	return c.CurrentZip
}

// ListItem is a single normalized search result row.
type ListItem struct {
	ID                string `json:"id"`
	SerialNumber      string `json:"serial_number"`
	IndexNumber       string `json:"index_number"`
	ImageURL          string `json:"image_url,omitempty"`
	Title             string `json:"title"`
	Price             string `json:"price"`
	Zipcode           string `json:"zipcode"`
	ShippingCost      string `json:"shipping_cost"`
	ReturnsAccepted   string `json:"returns_accepted"`
	ExpeditedShipping string `json:"expedited_shipping"`
	OneDayShipping    string `json:"one_day_shipping"`
	HandlingTime      string `json:"handling_time"`
	ShipToLocations   string `json:"ship_to_locations"`
	SellerName        string `json:"seller_name"`
	ConditionName     string `json:"condition_name"`
}

// SearchResults is the normalized result of a search call.
type SearchResults struct {
	Items []ListItem `json:"items"`

	// ShippingByID maps item ID to its shipping-cost display string.
	// Items without an ID are not present.
	ShippingByID map[string]string `json:"shipping_costs"`

	// Warnings explains why a response was reduced to an empty result.
	Warnings []string `json:"warnings,omitempty"`
}

// NameValue is one item specific, e.g. Brand: [Apple].
type NameValue struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ValueString joins the values for display.
func (nv NameValue) ValueString() string {
	return strings.Join(nv.Values, ", ")
}

// ItemDetail is the full record for a single listing.
type ItemDetail struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	PictureURLs []string    `json:"picture_urls"`
	Price       float64     `json:"price"`
	Specifics   []NameValue `json:"specifics"`

	StoreName       string  `json:"store_name,omitempty"`
	StoreURL        string  `json:"store_url,omitempty"`
	FeedbackScore   int     `json:"feedback_score"`
	FeedbackPercent float64 `json:"feedback_percent"`

	GlobalShipping bool `json:"global_shipping"`
	HandlingTime   int  `json:"handling_time"`

	// Return policy
	ReturnsAccepted    string `json:"returns_accepted,omitempty"`
	RefundMode         string `json:"refund_mode,omitempty"`
	ReturnsWithin      string `json:"returns_within,omitempty"`
	ShippingCostPaidBy string `json:"shipping_cost_paid_by,omitempty"`

	GooglePhotos []string      `json:"google_photos"`
	SimilarItems []SimilarItem `json:"similar_items"`
}

// SimilarItem is a related listing shown on the item detail page.
type SimilarItem struct {
	// Index is the position in the upstream response, used by the default sort.
	Index        int     `json:"index"`
	ID           string  `json:"id"`
	ImageURL     string  `json:"image_url,omitempty"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	ShippingCost float64 `json:"shipping_cost"`
	DaysLeft     int     `json:"days_left"`
}

// WishListItem is a normalized wish list row.
type WishListItem struct {
	ID            string `json:"id"`
	SerialNumber  string `json:"serial_number"`
	IndexNumber   string `json:"index_number"`
	ImageURL      string `json:"image_url,omitempty"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	Zipcode       string `json:"zipcode"`
	ShippingCost  string `json:"shipping_cost"`
	ConditionName string `json:"condition_name"`
}

// WishListSnapshot is a point-in-time copy of the wish list state.
type WishListSnapshot struct {
	IDs     []string       `json:"ids"`
	Items   []WishListItem `json:"items"`
	Total   float64        `json:"total"`
	Loading bool           `json:"loading"`
}

// SortKey selects the similar-items ordering.
type SortKey string

// Sort key constants.
const (
	SortDefault  SortKey = "default"
	SortName     SortKey = "name"
	SortPrice    SortKey = "price"
	SortDaysLeft SortKey = "days_left"
	SortShipping SortKey = "shipping"
)

// ParseSortKey accepts the API value or the display label ("Days Left").
// An empty string selects the default order.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return SortDefault, nil
	case "name":
		return SortName, nil
	case "price":
		return SortPrice, nil
	case "days_left", "days left", "daysleft":
		return SortDaysLeft, nil
	case "shipping":
		return SortShipping, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// SortOrder is the similar-items sort direction.
type SortOrder string

// Sort order constants.
const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// ParseSortOrder accepts "ascending"/"descending" (any case) and the
// short forms "asc"/"desc". An empty string is ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}
