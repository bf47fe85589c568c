package stockroom

import (
	"fmt"
	"strings"

	"github.com/etnz/stockroom/date"
)

// Category is a typed tag identifying which product kind a record is.
type Category string

// Category tags, also used as the "type" discriminator in the persisted format.
const (
	CatElectronics Category = "Electronics"
	CatGrocery     Category = "Grocery"
	CatClothing    Category = "Clothing"
)

// ParseCategory parses a string into a Category, ignoring case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "electronics":
		return CatElectronics, nil
	case "grocery":
		return CatGrocery, nil
	case "clothing":
		return CatClothing, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Product defines the common contract for all records kept in a Catalog.
//
// The set of implementations is closed: Electronics, Grocery and Clothing.
// Records are mutable and exclusively owned by their catalog entry, so
// Sell and Restock mutate in place.
type Product interface {
	ID() string
	Name() string
	Category() Category
	UnitPrice() Price
	Stock() int

	// TotalValue returns unit price times quantity in stock.
	TotalValue() Price

	// Restock increments the stock by a positive amount. There is no upper bound.
	Restock(amount int) error

	// Sell decrements the stock by a positive quantity, as of the given day.
	// It fails with ErrInsufficientStock when quantity exceeds the stock,
	// and for groceries with ErrExpiredProduct when the record is expired
	// on that day, leaving the stock unchanged in both cases.
	Sell(quantity int, on date.Date) error

	// Describe produces a one-line human-readable summary as of the given day.
	Describe(on date.Date) string

	Equal(Product) bool

	// seals the interface, and lets the feed repricer adjust prices in bulk.
	setUnitPrice(p Price)
}

// base holds the fields and behavior common to all product categories.
type base struct {
	id    string
	name  string
	price Price
	stock int
}

func (p *base) ID() string       { return p.id }
func (p *base) Name() string     { return p.name }
func (p *base) UnitPrice() Price { return p.price }
func (p *base) Stock() int       { return p.stock }

func (p *base) TotalValue() Price { return p.price.Mul(p.stock) }

func (p *base) setUnitPrice(price Price) { p.price = price }

func (p *base) Restock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("restock amount must be positive, got %d", amount)
	}
	p.stock += amount
	return nil
}

// sell implements the stock check shared by all categories.
func (p *base) sell(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("sell quantity must be positive, got %d", quantity)
	}
	if quantity > p.stock {
		return fmt.Errorf("cannot sell %d of %q, only %d in stock: %w", quantity, p.id, p.stock, ErrInsufficientStock)
	}
	p.stock -= quantity
	return nil
}

func (p *base) equal(o *base) bool {
	return p.id == o.id && p.name == o.name && p.price.Equal(o.price) && p.stock == o.stock
}

// encode starts a canonically ordered JSON object with the common fields.
func (p *base) encode(cat Category) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Append("type", cat)
	w.Append("product_id", p.id)
	w.Append("name", p.name)
	w.Append("price", p.price)
	w.Append("quantity_in_stock", p.stock)
	return &w
}

// Electronics is a product with a brand and a warranty.
type Electronics struct {
	base
	brand    string
	warranty int // in years
}

// NewElectronics creates a new electronics record.
func NewElectronics(id, name string, price Price, stock int, brand string, warrantyYears int) *Electronics {
	return &Electronics{
		base:     base{id: id, name: name, price: price, stock: stock},
		brand:    brand,
		warranty: warrantyYears,
	}
}

func (p *Electronics) Category() Category { return CatElectronics }
func (p *Electronics) Brand() string      { return p.brand }
func (p *Electronics) WarrantyYears() int { return p.warranty }

func (p *Electronics) Sell(quantity int, _ date.Date) error { return p.sell(quantity) }

func (p *Electronics) Describe(_ date.Date) string {
	return fmt.Sprintf("[Electronics] ID: %s, Name: %s, Price: $%s, Stock: %d, Brand: %s, Warranty: %d yrs",
		p.id, p.name, p.price, p.stock, p.brand, p.warranty)
}

func (p *Electronics) Equal(other Product) bool {
	o, ok := other.(*Electronics)
	return ok && p.base.equal(&o.base) && p.brand == o.brand && p.warranty == o.warranty
}

// MarshalJSON implements the json.Marshaler interface for Electronics.
func (p *Electronics) MarshalJSON() ([]byte, error) {
	w := p.encode(CatElectronics)
	w.Append("brand", p.brand)
	w.Append("warranty_years", p.warranty)
	return w.MarshalJSON()
}

// Grocery is a perishable product: it carries an expiry date, and an
// expired record can no longer be sold.
type Grocery struct {
	base
	expiry date.Date
}

// NewGrocery creates a new grocery record expiring at the end of the given day.
func NewGrocery(id, name string, price Price, stock int, expiry date.Date) *Grocery {
	return &Grocery{
		base:   base{id: id, name: name, price: price, stock: stock},
		expiry: expiry,
	}
}

func (p *Grocery) Category() Category    { return CatGrocery }
func (p *Grocery) ExpiryDate() date.Date { return p.expiry }

// Expired reports whether the expiry date is strictly before the given day.
func (p *Grocery) Expired(on date.Date) bool { return on.After(p.expiry) }

// Sell rejects any sale of an expired record, before the stock check.
func (p *Grocery) Sell(quantity int, on date.Date) error {
	if p.Expired(on) {
		return fmt.Errorf("cannot sell %q, expired on %s: %w", p.id, p.expiry, ErrExpiredProduct)
	}
	return p.sell(quantity)
}

func (p *Grocery) Describe(on date.Date) string {
	status := "Fresh"
	if p.Expired(on) {
		status = "Expired"
	}
	return fmt.Sprintf("[Grocery] ID: %s, Name: %s, Price: $%s, Stock: %d, Expiry: %s, Status: %s",
		p.id, p.name, p.price, p.stock, p.expiry, status)
}

func (p *Grocery) Equal(other Product) bool {
	o, ok := other.(*Grocery)
	return ok && p.base.equal(&o.base) && p.expiry == o.expiry
}

// MarshalJSON implements the json.Marshaler interface for Grocery.
func (p *Grocery) MarshalJSON() ([]byte, error) {
	w := p.encode(CatGrocery)
	w.Append("expiry_date", p.expiry)
	return w.MarshalJSON()
}

// Clothing is a product with a size and a material.
type Clothing struct {
	base
	size     string
	material string
}

// NewClothing creates a new clothing record.
func NewClothing(id, name string, price Price, stock int, size, material string) *Clothing {
	return &Clothing{
		base:     base{id: id, name: name, price: price, stock: stock},
		size:     size,
		material: material,
	}
}

func (p *Clothing) Category() Category { return CatClothing }
func (p *Clothing) Size() string       { return p.size }
func (p *Clothing) Material() string   { return p.material }

func (p *Clothing) Sell(quantity int, _ date.Date) error { return p.sell(quantity) }

func (p *Clothing) Describe(_ date.Date) string {
	return fmt.Sprintf("[Clothing] ID: %s, Name: %s, Price: $%s, Stock: %d, Size: %s, Material: %s",
		p.id, p.name, p.price, p.stock, p.size, p.material)
}

func (p *Clothing) Equal(other Product) bool {
	o, ok := other.(*Clothing)
	return ok && p.base.equal(&o.base) && p.size == o.size && p.material == o.material
}

// MarshalJSON implements the json.Marshaler interface for Clothing.
func (p *Clothing) MarshalJSON() ([]byte, error) {
	w := p.encode(CatClothing)
	w.Append("size", p.size)
	w.Append("material", p.material)
	return w.MarshalJSON()
}
