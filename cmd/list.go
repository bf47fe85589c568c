package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	date string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all products in the catalog" }
func (*listCmd) Usage() string {
	return `stk list [-d <date>]

  Lists every product record in catalog order. The date is used to display
  grocery freshness (defaults to today).

`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date for grocery freshness.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	products := slices.Collect(catalog.Products())
	printMarkdown(renderer.Records("Catalog", products, on, *currency))
	return subcommands.ExitSuccess
}
