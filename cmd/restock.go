package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	id       string
	quantity int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add stock to a product" }
func (*restockCmd) Usage() string {
	return `stk restock -id <id> -q <quantity>

  Increments the stock of a product. There is no upper bound.

`
}

func (p *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Product id to restock.")
	f.IntVar(&p.quantity, "q", 1, "Quantity to add.")
}

func (p *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := catalog.Restock(p.id, p.quantity); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restocked %d of %q, %d now in stock\n", p.quantity, p.id, catalog.Get(p.id).Stock())
	return subcommands.ExitSuccess
}
