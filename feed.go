package stockroom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultFeedPath extracts prices from feeds shaped like
//
//	{"prices": {"<product id>": 12.5, ...}}
//
// Suppliers with other shapes are handled by passing a different JSONPath
// template, with %s standing for the product id.
const DefaultFeedPath = `$.prices["%s"]`

// RepriceFromFeed updates unit prices in bulk from a supplier price feed.
//
// The feed is a single JSON document; for each record in the catalog, the
// new price is looked up with the JSONPath obtained by substituting the
// product id into pathTemplate (DefaultFeedPath when empty). Records absent
// from the feed are left untouched. It returns the ids that were repriced
// in catalog order, along with the joined errors for feed values that could
// not be interpreted; such values never touch the catalog.
func RepriceFromFeed(c *Catalog, r io.Reader, pathTemplate string) ([]string, error) {
	if pathTemplate == "" {
		pathTemplate = DefaultFeedPath
	}

	var jobj interface{}
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse feed: %w: %v", ErrMalformedField, err)
	}

	var repriced []string
	var errs error
	for p := range c.Products() {
		jval, err := jsonpath.Get(fmt.Sprintf(pathTemplate, p.ID()), jobj)
		if err != nil {
			// Not in the feed, keep the current price.
			continue
		}
		// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer.
		if list, ok := jval.([]interface{}); ok {
			if len(list) == 0 {
				continue
			}
			jval = list[0]
		}
		val, ok := jval.(float64)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("feed price for %q is not a number (%v): %w", p.ID(), jval, ErrMalformedField))
			continue
		}
		if val < 0 {
			errs = errors.Join(errs, fmt.Errorf("feed price for %q is negative (%v): %w", p.ID(), val, ErrMalformedField))
			continue
		}
		p.setUnitPrice(P(val))
		repriced = append(repriced, p.ID())
	}
	return repriced, errs
}
