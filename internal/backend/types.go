package backend

// The search and wish list responses come from an XML-to-JSON conversion
// upstream: every scalar is wrapped in a one-element array and any level
// may be missing. Slices here are "take the first element or fall back",
// never real collections.

// FindItemsAdvancedResponse is the getSearchItems response body.
type FindItemsAdvancedResponse struct {
	FindItemsAdvancedResponse []SearchResults `json:"findItemsAdvancedResponse"`
}

// SearchResults is the acknowledgement plus result envelope.
type SearchResults struct {
	Ack          []string       `json:"ack"`
	SearchResult []SearchResult `json:"searchResult"`
}

// SearchResult wraps the item list.
type SearchResult struct {
	Item []Item `json:"item"`
}

// Item is a single listing in search and wish list responses.
type Item struct {
	ItemID          []string        `json:"itemId"`
	Title           []string        `json:"title"`
	GalleryURL      []string        `json:"galleryURL"`
	PostalCode      []string        `json:"postalCode"`
	ReturnsAccepted []string        `json:"returnsAccepted"`
	SellingStatus   []SellingStatus `json:"sellingStatus"`
	ShippingInfo    []ShippingInfo  `json:"shippingInfo"`
	SellerInfo      []SellerInfo    `json:"sellerInfo"`
	Condition       []Condition     `json:"condition"`
}

// SellingStatus holds the current price.
type SellingStatus struct {
	CurrentPrice []Amount `json:"currentPrice"`
}

// ShippingInfo holds shipping cost and options.
type ShippingInfo struct {
	ShippingServiceCost     []Amount `json:"shippingServiceCost"`
	ShippingType            []string `json:"shippingType"`
	ShipToLocations         []string `json:"shipToLocations"`
	ExpeditedShipping       []string `json:"expeditedShipping"`
	OneDayShippingAvailable []string `json:"oneDayShippingAvailable"`
	HandlingTime            []string `json:"handlingTime"`
}

// SellerInfo holds the seller's username.
type SellerInfo struct {
	SellerUserName []string `json:"sellerUserName"`
}

// Condition holds the numeric condition code.
type Condition struct {
	ConditionID          []string `json:"conditionId"`
	ConditionDisplayName []string `json:"conditionDisplayName"`
}

// Amount is a money value serialized as {"__value__": "12.34"}.
type Amount struct {
	Value *string `json:"__value__"`
}

// WishListEntry is one element of the retrieveWishList response.
type WishListEntry struct {
	ItemDetails *Item `json:"itemDetails"`
}

// ItemDetailsResponse is the getItemDetails response body. Its keys use
// a different casing from the search schema.
type ItemDetailsResponse struct {
	ItemDetails  *ItemDetailsEnvelope  `json:"itemDetails"`
	SimilarItems *SimilarItemsEnvelope `json:"similarItems"`
	GooglePhotos *GooglePhotos         `json:"googlePhotos"`
}

// ItemDetailsEnvelope wraps the detailed item.
type ItemDetailsEnvelope struct {
	Item *DetailItem `json:"Item"`
}

// DetailItem is the primary listing returned by getItemDetails.
type DetailItem struct {
	ItemID                      string         `json:"ItemID"`
	Title                       string         `json:"Title"`
	ViewItemURLForNaturalSearch string         `json:"ViewItemURLForNaturalSearch"`
	PictureURL                  []string       `json:"PictureURL"`
	CurrentPrice                DetailPrice    `json:"CurrentPrice"`
	ItemSpecifics               *ItemSpecifics `json:"ItemSpecifics"`
	Seller                      *Seller        `json:"Seller"`
	Storefront                  *Storefront    `json:"Storefront"`
	ReturnPolicy                *ReturnPolicy  `json:"ReturnPolicy"`
	GlobalShipping              bool           `json:"GlobalShipping"`
	HandlingTime                int            `json:"HandlingTime"`
}

// DetailPrice is a numeric price.
type DetailPrice struct {
	Value float64 `json:"Value"`
}

// ItemSpecifics lists name/value pairs.
type ItemSpecifics struct {
	NameValueList []NameValueList `json:"NameValueList"`
}

// NameValueList is a single specific.
type NameValueList struct {
	Name  string   `json:"Name"`
	Value []string `json:"Value"`
}

// Seller holds seller feedback.
type Seller struct {
	FeedbackScore           int     `json:"FeedbackScore"`
	PositiveFeedbackPercent float64 `json:"PositiveFeedbackPercent"`
}

// Storefront holds the seller's store.
type Storefront struct {
	StoreURL  string `json:"StoreURL"`
	StoreName string `json:"StoreName"`
}

// ReturnPolicy holds return terms.
type ReturnPolicy struct {
	Refund             string `json:"Refund"`
	ReturnsWithin      string `json:"ReturnsWithin"`
	ReturnsAccepted    string `json:"ReturnsAccepted"`
	ShippingCostPaidBy string `json:"ShippingCostPaidBy"`
}

// GooglePhotos is the image search result for the item title.
type GooglePhotos struct {
	Items []GooglePhoto `json:"items"`
}

// GooglePhoto is a single image link.
type GooglePhoto struct {
	Link string `json:"link"`
}

// SimilarItemsEnvelope wraps the similar items recommendation call.
type SimilarItemsEnvelope struct {
	GetSimilarItemsResponse *GetSimilarItemsResponse `json:"getSimilarItemsResponse"`
}

// GetSimilarItemsResponse holds the recommendations.
type GetSimilarItemsResponse struct {
	ItemRecommendations *ItemRecommendations `json:"itemRecommendations"`
}

// ItemRecommendations lists similar items.
type ItemRecommendations struct {
	Item []SimilarItem `json:"item"`
}

// SimilarItem is a single recommendation.
type SimilarItem struct {
	ItemID        string  `json:"itemId"`
	ImageURL      string  `json:"imageURL"`
	Title         string  `json:"title"`
	BuyItNowPrice *Amount `json:"buyItNowPrice"`
	ShippingCost  *Amount `json:"shippingCost"`
	// TimeLeft is an ISO-8601 style duration such as "P5DT3H20M".
	TimeLeft string `json:"timeLeft"`
}

// ZipcodeResponse is the autocompleteZipcode response body.
type ZipcodeResponse struct {
	PostalCodes []PostalCode `json:"postalCodes"`
}

// PostalCode is a single autocomplete suggestion.
type PostalCode struct {
	PostalCode *string `json:"postalCode"`
}

// LocationResponse is the ip-api.com response body.
type LocationResponse struct {
	Status string `json:"status"`
	Zip    string `json:"zip"`
}
