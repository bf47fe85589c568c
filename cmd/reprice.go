package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

type repriceCmd struct {
	feed string
	path string
}

func (*repriceCmd) Name() string     { return "reprice" }
func (*repriceCmd) Synopsis() string { return "update unit prices from a supplier price feed" }
func (*repriceCmd) Usage() string {
	return `stk reprice -feed <file> [-path <jsonpath template>]

  Reads a JSON price feed and updates the unit price of every catalog record
  found in it. Records absent from the feed keep their current price.
  The template's %s stands for the product id; the default expects a feed
  shaped like {"prices": {"<id>": 12.5}}.

Usage Examples:
$ stk reprice -feed vendor.json
$ stk reprice -feed vendor.json -path '$.items["%s"].unit_price'

`
}

func (p *repriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.feed, "feed", "", "Path to the JSON price feed.")
	f.StringVar(&p.path, "path", "", "JSONPath template locating the price of one product id.")
}

func (p *repriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.feed == "" {
		fmt.Fprintln(os.Stderr, "Error: -feed is required.")
		return subcommands.ExitUsageError
	}

	feed, err := os.Open(p.feed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening feed %q: %v\n", p.feed, err)
		return subcommands.ExitFailure
	}
	defer feed.Close()

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	repriced, err := stockroom.RepriceFromFeed(catalog, feed, p.path)
	if err != nil {
		// Unusable feed values are skipped, not fatal: report and keep going.
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	if len(repriced) == 0 {
		fmt.Println("No products repriced.")
		return subcommands.ExitSuccess
	}
	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Repriced %d product(s): %v\n", len(repriced), repriced)
	return subcommands.ExitSuccess
}
