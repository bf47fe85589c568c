package stockroom

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/stockroom/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted format is JSONL: one tagged JSON object per line, in
// catalog insertion order. Decoding sniffs the "type" tag first, then
// hands the line to the matching per-category decoder, which checks every
// required field explicitly instead of trusting the unmarshal.

// baseRecord mirrors the fields common to every persisted record. Pointer
// fields distinguish a missing field from a zero value.
type baseRecord struct {
	ID    *string          `json:"product_id"`
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"quantity_in_stock"`
}

// validate checks the common fields and returns them as plain values.
func (r baseRecord) validate() (id, name string, price Price, stock int, err error) {
	switch {
	case r.ID == nil || *r.ID == "":
		return "", "", Price{}, 0, fmt.Errorf("%w: missing %q", ErrMalformedField, "product_id")
	case r.Name == nil:
		return "", "", Price{}, 0, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, *r.ID, "name")
	case r.Price == nil:
		return "", "", Price{}, 0, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, *r.ID, "price")
	case r.Price.IsNegative():
		return "", "", Price{}, 0, fmt.Errorf("%w: record %q has negative %q: %s", ErrMalformedField, *r.ID, "price", r.Price)
	case r.Stock == nil:
		return "", "", Price{}, 0, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, *r.ID, "quantity_in_stock")
	case *r.Stock < 0:
		return "", "", Price{}, 0, fmt.Errorf("%w: record %q has negative %q: %d", ErrMalformedField, *r.ID, "quantity_in_stock", *r.Stock)
	}
	return *r.ID, *r.Name, P(*r.Price), *r.Stock, nil
}

// DecodeProduct decodes a single tagged record.
func DecodeProduct(line []byte) (Product, error) {
	var identifier struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("%w: could not parse record %q: %v", ErrMalformedField, string(line), err)
	}
	if identifier.Type == nil {
		return nil, fmt.Errorf("%w: missing %q in record %q", ErrMalformedField, "type", string(line))
	}
	cat, err := ParseCategory(*identifier.Type)
	if err != nil {
		return nil, err
	}

	switch cat {
	case CatElectronics:
		var temp struct {
			baseRecord
			Brand    *string `json:"brand"`
			Warranty *int    `json:"warranty_years"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
		}
		id, name, price, stock, err := temp.validate()
		if err != nil {
			return nil, err
		}
		if temp.Brand == nil {
			return nil, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, id, "brand")
		}
		if temp.Warranty == nil {
			return nil, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, id, "warranty_years")
		}
		if *temp.Warranty < 0 {
			return nil, fmt.Errorf("%w: record %q has negative %q: %d", ErrMalformedField, id, "warranty_years", *temp.Warranty)
		}
		return NewElectronics(id, name, price, stock, *temp.Brand, *temp.Warranty), nil

	case CatGrocery:
		var temp struct {
			baseRecord
			Expiry *string `json:"expiry_date"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
		}
		id, name, price, stock, err := temp.validate()
		if err != nil {
			return nil, err
		}
		if temp.Expiry == nil {
			return nil, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, id, "expiry_date")
		}
		expiry, err := date.Parse(*temp.Expiry)
		if err != nil {
			return nil, fmt.Errorf("%w: record %q has invalid %q: %v", ErrMalformedField, id, "expiry_date", err)
		}
		return NewGrocery(id, name, price, stock, expiry), nil

	case CatClothing:
		var temp struct {
			baseRecord
			Size     *string `json:"size"`
			Material *string `json:"material"`
		}
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
		}
		id, name, price, stock, err := temp.validate()
		if err != nil {
			return nil, err
		}
		if temp.Size == nil {
			return nil, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, id, "size")
		}
		if temp.Material == nil {
			return nil, fmt.Errorf("%w: record %q is missing %q", ErrMalformedField, id, "material")
		}
		return NewClothing(id, name, price, stock, *temp.Size, *temp.Material), nil

	default:
		// ParseCategory is the single source of truth for tags.
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
}

// DecodeCatalog decodes a full catalog snapshot from a stream of JSONL
// data. Any malformed record fails the whole decode: the caller never
// observes a partially populated catalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	catalog := NewCatalog()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue // Skip empty lines
		}
		p, err := DecodeProduct(line)
		if err != nil {
			return nil, err
		}
		if err := catalog.Add(p); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w: %w", ErrIO, err)
	}
	return catalog, nil
}

// EncodeProduct marshals a single record to JSON and writes it to the
// writer, followed by a newline, in JSONL format. Keys are in canonical
// order.
func EncodeProduct(w io.Writer, p Product) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal record %q: %w", p.ID(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record %q: %w: %w", p.ID(), ErrIO, err)
	}
	return nil
}

// EncodeCatalog persists the full catalog snapshot to an io.Writer in
// JSONL format, in insertion order.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	decimal.MarshalJSONWithoutQuotes = true
	for p := range c.Products() {
		if err := EncodeProduct(w, p); err != nil {
			return err
		}
	}
	return nil
}
