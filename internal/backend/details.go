package backend

import (
	"strconv"
	"strings"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

const defaultSimilarPrice = "0.00"

// ToItemDetail converts a getItemDetails response into an ItemDetail.
//
// The item, the Google photos block and the similar-item recommendations
// must all be present; if any is missing no detail is produced, even when
// the item itself is complete.
func ToItemDetail(resp *ItemDetailsResponse) (*domain.ItemDetail, bool) {
	if resp == nil || resp.ItemDetails == nil || resp.ItemDetails.Item == nil {
		return nil, false
	}
	item := resp.ItemDetails.Item

	if resp.GooglePhotos == nil {
		return nil, false
	}
	photos := resp.GooglePhotos

	if resp.SimilarItems == nil ||
		resp.SimilarItems.GetSimilarItemsResponse == nil ||
		resp.SimilarItems.GetSimilarItemsResponse.ItemRecommendations == nil {
		return nil, false
	}
	recs := resp.SimilarItems.GetSimilarItemsResponse.ItemRecommendations

	d := &domain.ItemDetail{
		ID:             item.ItemID,
		Title:          item.Title,
		URL:            item.ViewItemURLForNaturalSearch,
		PictureURLs:    nonNil(item.PictureURL),
		Price:          item.CurrentPrice.Value,
		Specifics:      []domain.NameValue{},
		GlobalShipping: item.GlobalShipping,
		HandlingTime:   item.HandlingTime,
		GooglePhotos:   []string{},
		SimilarItems:   make([]domain.SimilarItem, 0, len(recs.Item)),
	}

	if item.ItemSpecifics != nil {
		for _, nv := range item.ItemSpecifics.NameValueList {
			d.Specifics = append(d.Specifics, domain.NameValue{
				Name:   nv.Name,
				Values: nonNil(nv.Value),
			})
		}
	}

	if item.Storefront != nil {
		d.StoreName = item.Storefront.StoreName
		d.StoreURL = item.Storefront.StoreURL
	}

	if item.Seller != nil {
		d.FeedbackScore = item.Seller.FeedbackScore
		d.FeedbackPercent = item.Seller.PositiveFeedbackPercent
	}

	if rp := item.ReturnPolicy; rp != nil {
		d.ReturnsAccepted = rp.ReturnsAccepted
		d.RefundMode = rp.Refund
		d.ReturnsWithin = rp.ReturnsWithin
		d.ShippingCostPaidBy = rp.ShippingCostPaidBy
	}

	// Entries pass through in order, blank links included.
	for _, p := range photos.Items {
		d.GooglePhotos = append(d.GooglePhotos, p.Link)
	}

	for i := range recs.Item {
		d.SimilarItems = append(d.SimilarItems, toSimilarItem(&recs.Item[i], i))
	}

	return d, true
}

func toSimilarItem(s *SimilarItem, index int) domain.SimilarItem {
	return domain.SimilarItem{
		Index:        index,
		ID:           s.ItemID,
		ImageURL:     s.ImageURL,
		Title:        s.Title,
		Price:        amountOrDefault(s.BuyItNowPrice),
		ShippingCost: amountOrDefault(s.ShippingCost),
		DaysLeft:     DaysLeft(s.TimeLeft),
	}
}

// amountOrDefault parses an amount, treating a missing value as "0.00"
// and an unparseable one as zero.
func amountOrDefault(a *Amount) float64 {
	raw := defaultSimilarPrice
	if a != nil && a.Value != nil {
		raw = *a.Value
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// DaysLeft reads the day count from a duration such as "P5DT3H". One
// leading "P" is stripped and the integer before the first "D" is
// returned; anything else yields 0.
func DaysLeft(timeLeft string) int {
	duration := strings.TrimPrefix(timeLeft, "P")

	before, _, found := strings.Cut(duration, "D")
	if !found {
		return 0
	}

	days, err := strconv.Atoi(before)
	if err != nil {
		return 0
	}
	return days
}

func nonNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
