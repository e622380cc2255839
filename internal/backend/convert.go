package backend

import (
	"strconv"
	"strings"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

const (
	ackSuccess       = "Success"
	dollar           = "$"
	freeShippingText = "FREE SHIPPING"
)

// ToSearchResults converts a getSearchItems response into display rows.
//
// The conversion is all or nothing: unless the acknowledgement is exactly
// "Success" and the result and item arrays are non-empty, the result is
// empty. Warnings records the reason.
func ToSearchResults(resp *FindItemsAdvancedResponse) *domain.SearchResults {
	out := &domain.SearchResults{
		Items:        []domain.ListItem{},
		ShippingByID: map[string]string{},
	}

	items, reason := unwrapSearchItems(resp)
	if reason != "" {
		out.Warnings = append(out.Warnings, reason)
		return out
	}

	for i := range items {
		li, shipping, hasShipping := toListItem(&items[i], i)
		if hasShipping && li.ID != "" {
			out.ShippingByID[li.ID] = shipping
		}
		out.Items = append(out.Items, li)
	}

	return out
}

func unwrapSearchItems(resp *FindItemsAdvancedResponse) ([]Item, string) {
	if resp == nil || len(resp.FindItemsAdvancedResponse) == 0 {
		return nil, "missing findItemsAdvancedResponse"
	}

	envelope := resp.FindItemsAdvancedResponse[0]
	if ack := first(envelope.Ack, ""); ack != ackSuccess {
		return nil, "ack=" + ack
	}

	if len(envelope.SearchResult) == 0 {
		return nil, "missing searchResult"
	}

	items := envelope.SearchResult[0].Item
	if len(items) == 0 {
		return nil, "no items"
	}

	return items, ""
}

func toListItem(item *Item, index int) (domain.ListItem, string, bool) {
	li := domain.ListItem{
		ID:                first(item.ItemID, ""),
		IndexNumber:       strconv.Itoa(index),
		SerialNumber:      strconv.Itoa(index + 1),
		ImageURL:          first(item.GalleryURL, ""),
		Title:             first(item.Title, domain.NotAvailable),
		Price:             priceText(item),
		Zipcode:           first(item.PostalCode, domain.NotAvailable),
		ShippingCost:      domain.NotAvailable,
		ReturnsAccepted:   domain.NotAvailable,
		ExpeditedShipping: domain.NotAvailable,
		OneDayShipping:    domain.NotAvailable,
		HandlingTime:      domain.NotAvailable,
		ShipToLocations:   domain.NotAvailable,
		SellerName:        domain.NotAvailable,
		ConditionName:     conditionFor(item),
	}

	// Returns and shipping options are only reported alongside shipping info.
	si := item.shippingInfo()
	if si != nil {
		li.ShippingCost = shippingCostText(si)
		li.ReturnsAccepted = first(item.ReturnsAccepted, domain.NotAvailable)
		li.ExpeditedShipping = first(si.ExpeditedShipping, domain.NotAvailable)
		li.OneDayShipping = first(si.OneDayShippingAvailable, domain.NotAvailable)
		li.HandlingTime = first(si.HandlingTime, domain.NotAvailable)
		li.ShipToLocations = first(si.ShipToLocations, domain.NotAvailable)
	}

	if len(item.SellerInfo) > 0 {
		li.SellerName = first(item.SellerInfo[0].SellerUserName, domain.NotAvailable)
	}

	return li, li.ShippingCost, si != nil
}

// ToWishList converts a retrieveWishList response into display rows and
// the total of their current prices. Entries without item details are
// skipped; numbering follows the entry's position in the response.
func ToWishList(entries []WishListEntry) ([]domain.WishListItem, float64) {
	items := make([]domain.WishListItem, 0, len(entries))
	var total float64

	for i := range entries {
		item := entries[i].ItemDetails
		if item == nil {
			continue
		}

		if raw, ok := item.currentPrice(); ok {
			if p, err := strconv.ParseFloat(raw, 64); err == nil {
				total += p
			}
		}

		wi := domain.WishListItem{
			ID:            first(item.ItemID, ""),
			IndexNumber:   strconv.Itoa(i),
			SerialNumber:  strconv.Itoa(i + 1),
			ImageURL:      first(item.GalleryURL, ""),
			Title:         first(item.Title, domain.NotAvailable),
			Price:         priceText(item),
			Zipcode:       first(item.PostalCode, domain.NotAvailable),
			ShippingCost:  domain.NotAvailable,
			ConditionName: conditionFor(item),
		}
		if si := item.shippingInfo(); si != nil {
			wi.ShippingCost = shippingCostText(si)
		}

		items = append(items, wi)
	}

	return items, total
}

// ToZipcodes extracts the suggested zip codes, skipping empty entries.
func ToZipcodes(resp *ZipcodeResponse) []string {
	zips := []string{}
	if resp == nil {
		return zips
	}
	for _, pc := range resp.PostalCodes {
		if pc.PostalCode != nil {
			zips = append(zips, *pc.PostalCode)
		}
	}
	return zips
}

// ParseDisplayPrice parses a "$12.34" display string back to a number.
func ParseDisplayPrice(s string) (float64, bool) {
	p, err := strconv.ParseFloat(strings.ReplaceAll(s, dollar, ""), 64)
	if err != nil {
		return 0, false
	}
	return p, true
}

func priceText(item *Item) string {
	if raw, ok := item.currentPrice(); ok {
		return dollar + raw
	}
	return domain.NotAvailable
}

// shippingCostText renders the upstream cost verbatim, or FREE SHIPPING
// when it parses to exactly zero.
func shippingCostText(si *ShippingInfo) string {
	raw, ok := firstAmount(si.ShippingServiceCost)
	if !ok {
		return domain.NotAvailable
	}
	if cost, err := strconv.ParseFloat(raw, 64); err == nil && cost == 0 {
		return freeShippingText
	}
	return dollar + raw
}

func conditionFor(item *Item) string {
	if len(item.Condition) == 0 {
		return domain.NotAvailable
	}
	code, ok := firstOK(item.Condition[0].ConditionID)
	if !ok {
		return domain.NotAvailable
	}
	return ConditionName(code)
}

func (item *Item) currentPrice() (string, bool) {
	if len(item.SellingStatus) == 0 {
		return "", false
	}
	return firstAmount(item.SellingStatus[0].CurrentPrice)
}

func (item *Item) shippingInfo() *ShippingInfo {
	if len(item.ShippingInfo) == 0 {
		return nil
	}
	return &item.ShippingInfo[0]
}

func first(xs []string, fallback string) string {
	if v, ok := firstOK(xs); ok {
		return v
	}
	return fallback
}

func firstOK(xs []string) (string, bool) {
	if len(xs) == 0 {
		return "", false
	}
	return xs[0], true
}

func firstAmount(xs []Amount) (string, bool) {
	if len(xs) == 0 || xs[0].Value == nil {
		return "", false
	}
	return *xs[0].Value, true
}
