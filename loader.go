package stockroom

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadCatalogFile reads the full catalog snapshot from path.
//
// The records are decoded into a fresh catalog before anything is returned,
// so a failure mid-parse never leaves a half-populated catalog behind: the
// caller keeps whatever catalog it had.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file %q: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	catalog, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode catalog file %q: %w", path, err)
	}
	return catalog, nil
}

// SaveCatalogFile overwrites path with the full catalog snapshot.
func SaveCatalogFile(path string, c *Catalog) error {
	// Ensure the directory for the catalog file exists.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for catalog %q: %w: %w", path, ErrIO, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open catalog file %q for writing: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	return EncodeCatalog(f, c)
}
