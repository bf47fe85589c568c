package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sweepCmd struct {
	date string
}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "remove expired grocery products" }
func (*sweepCmd) Usage() string {
	return `stk sweep [-d <date>]

  Removes every grocery record whose expiry date is strictly before the
  given date (defaults to today). Other categories never expire.

`
}

func (p *sweepCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date for the expiry check.")
}

func (p *sweepCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	removed := catalog.SweepExpired(on)
	if len(removed) == 0 {
		fmt.Println("No expired groceries.")
		return subcommands.ExitSuccess
	}
	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %d expired grocery record(s): %v\n", len(removed), removed)
	return subcommands.ExitSuccess
}
