package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type valueCmd struct {
	date string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "report the total inventory value" }
func (*valueCmd) Usage() string {
	return `stk value [-d <date>]

  Sums unit price times stock over every record in the catalog.

`
}

func (p *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Report date (defaults to today).")
}

func (p *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Value(catalog, on, *currency))
	return subcommands.ExitSuccess
}
