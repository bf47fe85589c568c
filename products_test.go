package stockroom

import (
	"errors"
	"testing"

	"github.com/etnz/stockroom/date"
)

var _ Product = (*Electronics)(nil)
var _ Product = (*Grocery)(nil)
var _ Product = (*Clothing)(nil)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		err      bool
	}{
		{"electronics", CatElectronics, false},
		{"Electronics", CatElectronics, false},
		{"GROCERY", CatGrocery, false},
		{"clothing", CatClothing, false},
		{"furniture", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if tt.err && !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProduct_Restock(t *testing.T) {
	p := phone()
	if err := p.Restock(5); err != nil {
		t.Fatalf("Restock(5) error = %v", err)
	}
	if got := p.Stock(); got != 15 {
		t.Errorf("Stock() = %d, want 15", got)
	}

	// Non-positive amounts are rejected and leave the stock unchanged.
	for _, amount := range []int{0, -3} {
		if err := p.Restock(amount); err == nil {
			t.Errorf("Restock(%d) expected an error", amount)
		}
	}
	if got := p.Stock(); got != 15 {
		t.Errorf("Stock() = %d after rejected restocks, want 15", got)
	}
}

func TestProduct_Sell(t *testing.T) {
	on := date.MustParse("2026-08-24")

	t.Run("within stock", func(t *testing.T) {
		p := shirt()
		if err := p.Sell(5, on); err != nil {
			t.Fatalf("Sell(5) error = %v", err)
		}
		if got := p.Stock(); got != 10 {
			t.Errorf("Stock() = %d, want 10", got)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		p := shirt()
		err := p.Sell(16, on)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("Sell(16) error = %v, want ErrInsufficientStock", err)
		}
		if got := p.Stock(); got != 15 {
			t.Errorf("Stock() = %d after failed sell, want 15", got)
		}
	})

	t.Run("expired grocery", func(t *testing.T) {
		// Expiry check comes before the stock check: even 1 unit of a well
		// stocked grocery cannot be sold past its expiry date.
		p := milk(on.Add(-1))
		err := p.Sell(1, on)
		if !errors.Is(err, ErrExpiredProduct) {
			t.Fatalf("Sell(1) error = %v, want ErrExpiredProduct", err)
		}
		if got := p.Stock(); got != 20 {
			t.Errorf("Stock() = %d after failed sell, want 20", got)
		}
	})

	t.Run("fresh grocery", func(t *testing.T) {
		p := milk(on.Add(5))
		if err := p.Sell(2, on); err != nil {
			t.Fatalf("Sell(2) error = %v", err)
		}
		if got := p.Stock(); got != 18 {
			t.Errorf("Stock() = %d, want 18", got)
		}
	})

	t.Run("expiry day is still sellable", func(t *testing.T) {
		// Expired means strictly after the expiry date.
		p := milk(on)
		if err := p.Sell(1, on); err != nil {
			t.Fatalf("Sell(1) on the expiry day error = %v", err)
		}
	})
}

func TestProduct_TotalValue(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected Price
	}{
		{"electronics", phone(), P(5000.0)},
		{"clothing", shirt(), P(375.0)},
		{"grocery", milk(date.MustParse("2026-09-01")), P(50.0)},
		{"empty stock", NewClothing("C2", "Hat", P(10.0), 0, "S", "Wool"), P(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.TotalValue(); !got.Equal(tt.expected) {
				t.Errorf("TotalValue() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestProduct_Describe(t *testing.T) {
	on := date.MustParse("2026-08-24")
	tests := []struct {
		name     string
		product  Product
		expected string
	}{
		{
			name:     "electronics",
			product:  phone(),
			expected: "[Electronics] ID: E1, Name: Phone, Price: $500, Stock: 10, Brand: Acme, Warranty: 2 yrs",
		},
		{
			name:     "fresh grocery",
			product:  milk(date.MustParse("2026-09-01")),
			expected: "[Grocery] ID: G1, Name: Milk, Price: $2.5, Stock: 20, Expiry: 2026-09-01, Status: Fresh",
		},
		{
			name:     "expired grocery",
			product:  milk(date.MustParse("2026-08-23")),
			expected: "[Grocery] ID: G1, Name: Milk, Price: $2.5, Stock: 20, Expiry: 2026-08-23, Status: Expired",
		},
		{
			name:     "clothing",
			product:  shirt(),
			expected: "[Clothing] ID: C1, Name: Shirt, Price: $25, Stock: 15, Size: M, Material: Cotton",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.Describe(on); got != tt.expected {
				t.Errorf("Describe() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProduct_Equal(t *testing.T) {
	on := date.MustParse("2026-09-01")
	if !phone().Equal(phone()) {
		t.Errorf("identical electronics are not Equal")
	}
	if phone().Equal(shirt()) {
		t.Errorf("records of different categories are Equal")
	}
	a, b := milk(on), milk(on.Add(1))
	if a.Equal(b) {
		t.Errorf("groceries with different expiry dates are Equal")
	}
	c := phone()
	c.Restock(1)
	if phone().Equal(c) {
		t.Errorf("records with different stock are Equal")
	}
}
