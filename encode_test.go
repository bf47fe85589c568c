package stockroom

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/stockroom/date"
)

func TestEncodeProduct(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected string
	}{
		{
			name:     "electronics",
			product:  phone(),
			expected: `{"type":"Electronics","product_id":"E1","name":"Phone","price":500,"quantity_in_stock":10,"brand":"Acme","warranty_years":2}` + "\n",
		},
		{
			name:     "grocery",
			product:  milk(date.MustParse("2026-09-01")),
			expected: `{"type":"Grocery","product_id":"G1","name":"Milk","price":2.5,"quantity_in_stock":20,"expiry_date":"2026-09-01"}` + "\n",
		},
		{
			name:     "clothing",
			product:  shirt(),
			expected: `{"type":"Clothing","product_id":"C1","name":"Shirt","price":25,"quantity_in_stock":15,"size":"M","material":"Cotton"}` + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := EncodeProduct(&sb, tt.product); err != nil {
				t.Fatalf("EncodeProduct() error = %v", err)
			}
			if got := sb.String(); got != tt.expected {
				t.Errorf("EncodeProduct() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecodeCatalog(t *testing.T) {
	input := `{"type":"Electronics","product_id":"E1","name":"Phone","price":500,"quantity_in_stock":10,"brand":"Acme","warranty_years":2}

{"type":"Grocery","product_id":"G1","name":"Milk","price":2.5,"quantity_in_stock":20,"expiry_date":"2026-09-01"}
{"type":"Clothing","product_id":"C1","name":"Shirt","price":25,"quantity_in_stock":15,"size":"M","material":"Cotton"}
`
	c, err := DecodeCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	expected := []Product{phone(), milk(date.MustParse("2026-09-01")), shirt()}
	i := 0
	for p := range c.Products() {
		if !p.Equal(expected[i]) {
			t.Errorf("record %d = %v, want %v", i, p, expected[i])
		}
		i++
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	c := NewCatalog()
	c.Add(milk(date.MustParse("2026-09-01")))
	c.Add(phone())
	c.Add(shirt())

	var sb strings.Builder
	if err := EncodeCatalog(&sb, c); err != nil {
		t.Fatalf("EncodeCatalog() error = %v", err)
	}
	got, err := DecodeCatalog(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	if got.Len() != c.Len() {
		t.Fatalf("round trip Len() = %d, want %d", got.Len(), c.Len())
	}

	// Records and their order survive the round trip.
	want := slices.Collect(c.Products())
	for i, p := range slices.Collect(got.Products()) {
		if !p.Equal(want[i]) {
			t.Errorf("round trip record %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestDecodeProduct_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected error
		contains string
	}{
		{
			name:     "not json",
			line:     `{"type": "Electronics"`,
			expected: ErrMalformedField,
		},
		{
			name:     "missing type",
			line:     `{"product_id":"E1","name":"Phone","price":500,"quantity_in_stock":10}`,
			expected: ErrMalformedField,
			contains: "type",
		},
		{
			name:     "unknown type",
			line:     `{"type":"Furniture","product_id":"F1","name":"Desk","price":120,"quantity_in_stock":3}`,
			expected: ErrUnknownCategory,
		},
		{
			name:     "missing id",
			line:     `{"type":"Electronics","name":"Phone","price":500,"quantity_in_stock":10,"brand":"Acme","warranty_years":2}`,
			expected: ErrMalformedField,
			contains: "product_id",
		},
		{
			name:     "missing price",
			line:     `{"type":"Electronics","product_id":"E1","name":"Phone","quantity_in_stock":10,"brand":"Acme","warranty_years":2}`,
			expected: ErrMalformedField,
			contains: "price",
		},
		{
			name:     "negative price",
			line:     `{"type":"Electronics","product_id":"E1","name":"Phone","price":-1,"quantity_in_stock":10,"brand":"Acme","warranty_years":2}`,
			expected: ErrMalformedField,
			contains: "price",
		},
		{
			name:     "negative stock",
			line:     `{"type":"Clothing","product_id":"C1","name":"Shirt","price":25,"quantity_in_stock":-2,"size":"M","material":"Cotton"}`,
			expected: ErrMalformedField,
			contains: "quantity_in_stock",
		},
		{
			name:     "missing brand",
			line:     `{"type":"Electronics","product_id":"E1","name":"Phone","price":500,"quantity_in_stock":10,"warranty_years":2}`,
			expected: ErrMalformedField,
			contains: "brand",
		},
		{
			name:     "negative warranty",
			line:     `{"type":"Electronics","product_id":"E1","name":"Phone","price":500,"quantity_in_stock":10,"brand":"Acme","warranty_years":-1}`,
			expected: ErrMalformedField,
			contains: "warranty_years",
		},
		{
			name:     "missing expiry",
			line:     `{"type":"Grocery","product_id":"G1","name":"Milk","price":2.5,"quantity_in_stock":20}`,
			expected: ErrMalformedField,
			contains: "expiry_date",
		},
		{
			name:     "invalid expiry",
			line:     `{"type":"Grocery","product_id":"G1","name":"Milk","price":2.5,"quantity_in_stock":20,"expiry_date":"soon"}`,
			expected: ErrMalformedField,
			contains: "expiry_date",
		},
		{
			name:     "missing material",
			line:     `{"type":"Clothing","product_id":"C1","name":"Shirt","price":25,"quantity_in_stock":15,"size":"M"}`,
			expected: ErrMalformedField,
			contains: "material",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeProduct([]byte(tt.line))
			if !errors.Is(err, tt.expected) {
				t.Fatalf("DecodeProduct() error = %v, want %v", err, tt.expected)
			}
			if p != nil {
				t.Errorf("DecodeProduct() = %v on malformed input, want nil", p)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("DecodeProduct() error %q does not name the field %q", err, tt.contains)
			}
		})
	}
}

func TestDecodeCatalog_DuplicateID(t *testing.T) {
	input := `{"type":"Clothing","product_id":"C1","name":"Shirt","price":25,"quantity_in_stock":15,"size":"M","material":"Cotton"}
{"type":"Clothing","product_id":"C1","name":"Pants","price":40,"quantity_in_stock":5,"size":"L","material":"Denim"}
`
	c, err := DecodeCatalog(strings.NewReader(input))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("DecodeCatalog() error = %v, want ErrDuplicateID", err)
	}
	if c != nil {
		t.Errorf("DecodeCatalog() = %v on duplicate id, want nil", c)
	}
}
