// Package cmd implements the CLI application to manage an inventory catalog.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/date"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var catalogFile = flag.String("catalog-file", "catalog.jsonl", "Path to the catalog file (JSONL format)")
var currency = flag.String("currency", "USD", "Currency used to display prices and values")

// Commands returns all the subcommands of the stk tool.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&sellCmd{},
		&restockCmd{},
		&rmCmd{},
		&listCmd{},
		&searchCmd{},
		&sweepCmd{},
		&valueCmd{},
		&fmtCmd{},
		&repriceCmd{},
		&topicCmd{},
	}
}

// decodeCatalog loads the catalog from the app catalog file.
func decodeCatalog() (*stockroom.Catalog, error) {
	c, err := stockroom.LoadCatalogFile(*catalogFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, catalog file does not exist, starting with an empty catalog")
		return stockroom.NewCatalog(), nil
	}
	return c, err
}

// encodeCatalog overwrites the app catalog file with the full snapshot.
func encodeCatalog(c *stockroom.Catalog) error {
	return stockroom.SaveCatalogFile(*catalogFile, c)
}

// onDate parses a -d flag value, defaulting to today.
func onDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// printMarkdown renders markdown to the terminal, falling back to the raw text.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
