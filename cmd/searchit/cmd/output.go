package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/searchit/internal/api/client"
	domain "github.com/donaldgifford/searchit/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSearchTable(w io.Writer, res *apiclient.SearchResult) error {
	tw := newTabWriter(w)
	tw.writef("#\tID\tTITLE\tPRICE\tSHIPPING\tZIP\tCONDITION\n")
	for i := range res.Items {
		it := &res.Items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			it.SerialNumber,
			it.ID,
			truncate(it.Title, 40),
			it.Price,
			it.ShippingCost,
			it.Zipcode,
			it.ConditionName,
		)
	}
	if len(res.Items) == 0 {
		tw.writef("No records.\n")
	}
	return tw.finish()
}

func printItemDetail(w io.Writer, d *domain.ItemDetail) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Title:\t%s\n", d.Title)
	tw.writef("Price:\t$%.2f\n", d.Price)
	tw.writef("URL:\t%s\n", d.URL)
	if d.StoreName != "" {
		tw.writef("Store:\t%s (%s)\n", d.StoreName, d.StoreURL)
	}
	tw.writef("Feedback:\t%d (%.1f%%)\n", d.FeedbackScore, d.FeedbackPercent)
	tw.writef("Global Shipping:\t%v\n", d.GlobalShipping)
	tw.writef("Handling Time:\t%d day(s)\n", d.HandlingTime)
	if d.ReturnsAccepted != "" {
		tw.writef("Returns:\t%s, within %s, refund as %s, shipping paid by %s\n",
			d.ReturnsAccepted, d.ReturnsWithin, d.RefundMode, d.ShippingCostPaidBy)
	}
	for _, nv := range d.Specifics {
		tw.writef("%s:\t%s\n", nv.Name, nv.ValueString())
	}

	if len(d.SimilarItems) > 0 {
		tw.writef("\nID\tTITLE\tPRICE\tSHIPPING\tDAYS LEFT\n")
		for i := range d.SimilarItems {
			s := &d.SimilarItems[i]
			tw.writef("%s\t%s\t$%.2f\t$%.2f\t%d\n",
				s.ID, truncate(s.Title, 40), s.Price, s.ShippingCost, s.DaysLeft)
		}
	}
	return tw.finish()
}

func printWishList(w io.Writer, wl *apiclient.WishList) error {
	tw := newTabWriter(w)
	tw.writef("#\tID\tTITLE\tPRICE\tSHIPPING\tCONDITION\n")
	for i := range wl.Items {
		it := &wl.Items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			it.SerialNumber,
			it.ID,
			truncate(it.Title, 40),
			it.Price,
			it.ShippingCost,
			it.ConditionName,
		)
	}
	tw.writef("\nTotal:\t$%.2f\n", wl.Total)
	if !wl.Synced {
		tw.writef("Warning:\tbackend unreachable, list may be stale\n")
	}
	return tw.finish()
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
