package query

import (
	"net/url"
	"strings"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

// DefaultDistance is the search radius used when none is entered.
const DefaultDistance = "10"

// Build assembles the getSearchItems query string for the criteria.
//
// Condition and shipping flags are emitted as repeated parameters, so
// selecting both "new" and "used" yields two condition parameters. The
// distance default applies only to the exact empty string; whitespace is
// passed through.
func Build(c domain.SearchCriteria) string {
	var b strings.Builder

	b.WriteString("keywords=")
	b.WriteString(url.QueryEscape(c.Keywords))

	b.WriteString("&categoryType=")
	b.WriteString(c.Category.Slug())

	if c.NewCondition {
		b.WriteString("&condition=new")
	}
	if c.UsedCondition {
		b.WriteString("&condition=used")
	}

	if c.LocalShipping {
		b.WriteString("&shipping=local")
	}
	if c.FreeShipping {
		b.WriteString("&shipping=free")
	}

	distance := c.Distance
	if distance == "" {
		distance = DefaultDistance
	}
	b.WriteString("&distance=")
	b.WriteString(url.QueryEscape(distance))

	b.WriteString("&zipcode=")
	b.WriteString(url.QueryEscape(c.Zipcode()))

	return b.String()
}
