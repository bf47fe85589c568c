package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	name     string
	category string
	date     string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search products by name or by category" }
func (*searchCmd) Usage() string {
	return `stk search [-name <name> | -type <category>] [-d <date>]

  Searches the catalog, either by exact name (ignoring case) or by category.
  Exactly one of -name and -type must be given.

`
}

func (p *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Exact product name to search for (case-insensitive).")
	f.StringVar(&p.category, "type", "", "Product category to search for (electronics, grocery, clothing).")
	f.StringVar(&p.date, "d", "", "Reference date for grocery freshness.")
}

func (p *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (p.name == "") == (p.category == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -name and -type must be given.")
		return subcommands.ExitUsageError
	}
	on, err := onDate(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var title string
	var found []stockroom.Product
	if p.name != "" {
		title = fmt.Sprintf("Products named %q", p.name)
		found = catalog.SearchByName(p.name)
	} else {
		cat, err := stockroom.ParseCategory(p.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		title = fmt.Sprintf("%s products", cat)
		found = catalog.SearchByCategory(cat)
	}

	printMarkdown(renderer.Records(title, found, on, *currency))
	return subcommands.ExitSuccess
}
