package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	id       string
	quantity int
	date     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a quantity of a product" }
func (*sellCmd) Usage() string {
	return `stk sell -id <id> -q <quantity> [-d <date>]

  Decrements the stock of a product. Selling fails when the quantity exceeds
  the stock, or when the product is an expired grocery on the given date.

`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Product id to sell.")
	f.IntVar(&p.quantity, "q", 1, "Quantity to sell.")
	f.StringVar(&p.date, "d", "", "Sale date (defaults to today), used for the grocery expiry check.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := catalog.Sell(p.id, p.quantity, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %d of %q, %d left in stock\n", p.quantity, p.id, catalog.Get(p.id).Stock())
	return subcommands.ExitSuccess
}
