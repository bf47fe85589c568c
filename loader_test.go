package stockroom

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/stockroom/date"
)

func TestSaveLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store", "catalog.jsonl")

	c := NewCatalog()
	c.Add(phone())
	c.Add(milk(date.MustParse("2026-09-01")))
	c.Add(shirt())

	if err := SaveCatalogFile(path, c); err != nil {
		t.Fatalf("SaveCatalogFile() error = %v", err)
	}
	got, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile() error = %v", err)
	}
	if got.Len() != c.Len() {
		t.Fatalf("loaded Len() = %d, want %d", got.Len(), c.Len())
	}
	for p := range c.Products() {
		q := got.Get(p.ID())
		if q == nil || !q.Equal(p) {
			t.Errorf("loaded record %q = %v, want %v", p.ID(), q, p)
		}
	}
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.jsonl"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("LoadCatalogFile() error = %v, want ErrIO", err)
	}
	// The underlying cause stays observable so callers can treat a missing
	// file as an empty catalog.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadCatalogFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadCatalogFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	content := `{"type":"Clothing","product_id":"C1","name":"Shirt","price":25,"quantity_in_stock":15,"size":"M","material":"Cotton"}
{"type":"Clothing","product_id":"C2","name":"Pants","price":40,"quantity_in_stock":5,"size":"L"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalogFile(path)
	if !errors.Is(err, ErrMalformedField) {
		t.Fatalf("LoadCatalogFile() error = %v, want ErrMalformedField", err)
	}
	// A failed load never exposes the valid records read before the failure.
	if c != nil {
		t.Errorf("LoadCatalogFile() = %v on malformed file, want nil", c)
	}
}
