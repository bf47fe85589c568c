package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	category string
	id       string
	name     string
	price    float64
	stock    int
	// Electronics
	brand    string
	warranty int
	// Grocery
	expiry string
	// Clothing
	size     string
	material string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addCmd) Usage() string {
	return `stk add -type <category> -id <id> -name <name> -price <price> -stock <n> [category flags]

  Adds a new product record to the catalog. The category decides which extra
  flags are required: -brand and -warranty for electronics, -expiry for
  grocery, -size and -material for clothing.

Usage Examples:
$ stk add -type=electronics -id=E1 -name=Phone -price=500 -stock=10 -brand=Acme -warranty=2
$ stk add -type=grocery -id=G1 -name=Milk -price=2.5 -stock=20 -expiry=2026-09-01
$ stk add -type=clothing -id=C1 -name=Shirt -price=25 -stock=15 -size=M -material=Cotton

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "type", "", "Product category (electronics, grocery, clothing).")
	f.StringVar(&p.id, "id", "", "Unique product id.")
	f.StringVar(&p.name, "name", "", "Product name.")
	f.Float64Var(&p.price, "price", 0, "Unit price.")
	f.IntVar(&p.stock, "stock", 0, "Initial quantity in stock.")
	f.StringVar(&p.brand, "brand", "", "Brand (electronics only).")
	f.IntVar(&p.warranty, "warranty", 0, "Warranty in years (electronics only).")
	f.StringVar(&p.expiry, "expiry", "", "Expiry date YYYY-MM-DD (grocery only).")
	f.StringVar(&p.size, "size", "", "Size (clothing only).")
	f.StringVar(&p.material, "material", "", "Material (clothing only).")
}

// product builds the record described by the flags.
func (p *addCmd) product() (stockroom.Product, error) {
	if p.id == "" {
		return nil, fmt.Errorf("-id is required")
	}
	if p.name == "" {
		return nil, fmt.Errorf("-name is required")
	}
	if p.price < 0 {
		return nil, fmt.Errorf("-price must not be negative, got %v", p.price)
	}
	if p.stock < 0 {
		return nil, fmt.Errorf("-stock must not be negative, got %d", p.stock)
	}

	cat, err := stockroom.ParseCategory(p.category)
	if err != nil {
		return nil, err
	}
	price := stockroom.P(p.price)

	switch cat {
	case stockroom.CatElectronics:
		if p.warranty < 0 {
			return nil, fmt.Errorf("-warranty must not be negative, got %d", p.warranty)
		}
		return stockroom.NewElectronics(p.id, p.name, price, p.stock, p.brand, p.warranty), nil
	case stockroom.CatGrocery:
		if p.expiry == "" {
			return nil, fmt.Errorf("-expiry is required for grocery products")
		}
		expiry, err := date.Parse(p.expiry)
		if err != nil {
			return nil, err
		}
		return stockroom.NewGrocery(p.id, p.name, price, p.stock, expiry), nil
	default:
		return stockroom.NewClothing(p.id, p.name, price, p.stock, p.size, p.material), nil
	}
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prod, err := p.product()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := catalog.Add(prod); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s %q to %s\n", prod.Category(), prod.ID(), *catalogFile)
	return subcommands.ExitSuccess
}
