package stockroom

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/stockroom/date"
)

// Catalog is the in-memory ledger of all product records, keyed by id.
//
// Records keep their insertion order, so listing and serialization are
// deterministic within a process run.
type Catalog struct {
	records []Product
	index   map[string]Product // index records by id
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		records: make([]Product, 0),
		index:   make(map[string]Product),
	}
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int { return len(c.records) }

// Get returns the record with this id, or nil if unknown.
func (c *Catalog) Get(id string) Product { return c.index[id] }

// Add inserts a new record into the catalog.
func (c *Catalog) Add(p Product) error {
	if _, ok := c.index[p.ID()]; ok {
		return fmt.Errorf("product id %q already exists: %w", p.ID(), ErrDuplicateID)
	}
	c.records = append(c.records, p)
	c.index[p.ID()] = p
	return nil
}

// Remove deletes the record with this id from the catalog.
func (c *Catalog) Remove(id string) error {
	if _, ok := c.index[id]; !ok {
		return fmt.Errorf("product id %q: %w", id, ErrNotFound)
	}
	delete(c.index, id)
	c.records = slices.DeleteFunc(c.records, func(p Product) bool { return p.ID() == id })
	return nil
}

// Sell looks up the record by id and delegates to its category sell rule,
// propagating its failure unchanged.
func (c *Catalog) Sell(id string, quantity int, on date.Date) error {
	p, ok := c.index[id]
	if !ok {
		return fmt.Errorf("product id %q: %w", id, ErrNotFound)
	}
	return p.Sell(quantity, on)
}

// Restock looks up the record by id and increments its stock.
func (c *Catalog) Restock(id string, amount int) error {
	p, ok := c.index[id]
	if !ok {
		return fmt.Errorf("product id %q: %w", id, ErrNotFound)
	}
	return p.Restock(amount)
}

// SearchByName returns all records whose name matches, ignoring case, in
// insertion order.
func (c *Catalog) SearchByName(name string) []Product {
	var found []Product
	for _, p := range c.records {
		if strings.EqualFold(p.Name(), name) {
			found = append(found, p)
		}
	}
	return found
}

// SearchByCategory returns all records of the given category, in insertion
// order. User input is turned into a Category with ParseCategory, so the
// comparison here is on the explicit tag, not on free-form strings.
func (c *Catalog) SearchByCategory(cat Category) []Product {
	var found []Product
	for _, p := range c.records {
		if p.Category() == cat {
			found = append(found, p)
		}
	}
	return found
}

// Products returns an iterator over all records in insertion order.
// Re-iterating yields the same sequence until the catalog mutates.
func (c *Catalog) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.records {
			if !yield(p) {
				return
			}
		}
	}
}

// TotalValue sums the total value of every record. An empty catalog is worth zero.
func (c *Catalog) TotalValue() Price {
	var total Price
	for _, p := range c.records {
		total = total.Add(p.TotalValue())
	}
	return total
}

// SweepExpired removes every grocery record expired on the given day and
// returns the removed ids in insertion order. Other categories never
// expire and are left untouched.
func (c *Catalog) SweepExpired(on date.Date) []string {
	var removed []string
	kept := make([]Product, 0, len(c.records))
	for _, p := range c.records {
		if g, ok := p.(*Grocery); ok && g.Expired(on) {
			delete(c.index, g.ID())
			removed = append(removed, g.ID())
			continue
		}
		kept = append(kept, p)
	}
	c.records = kept
	return removed
}
