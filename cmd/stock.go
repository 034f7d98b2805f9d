package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	inventory "github.com/blendshalaa/InventoryAgro"
	"github.com/google/subcommands"
)

// stockFlags are the flags shared by the in and out commands.
type stockFlags struct {
	id       uint64
	quantity float64
	price    float64
	note     string
	date     string
}

func (c *stockFlags) setFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.id, "id", 0, "Product id")
	f.Float64Var(&c.quantity, "q", 0, "Moved quantity, in the product's unit")
	f.Float64Var(&c.price, "p", 0, "Price per unit (defaults to the product's price)")
	f.StringVar(&c.note, "m", "", "An optional note for the movement")
	f.StringVar(&c.date, "d", "", "Movement date (YYYY-MM-DD, defaults to now)")
}

// post validates the shared flags and posts one movement of the given type.
func (c *stockFlags) post(typ string, f *flag.FlagSet) subcommands.ExitStatus {
	if c.id == 0 || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	input := inventory.TransactionInput{
		ProductID: uint(c.id),
		Type:      typ,
		Quantity:  c.quantity,
		Note:      c.note,
	}
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "p" {
			input.PricePerUnit = &c.price
		}
	})
	if c.date != "" {
		day, err := inventory.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		input.Date = day.StartOfDay()
	}

	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := ledger.AddTransaction(input); err != nil {
		return fail(err)
	}
	p, err := ledger.Product(uint(c.id))
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %g %s: %s now holds %g %s\n",
		typ, c.quantity, p.Unit, p.Name, p.CurrentStock, p.Unit)
	return subcommands.ExitSuccess
}

// --- Stock In Command ---

type inCmd struct{ stockFlags }

func (*inCmd) Name() string     { return "in" }
func (*inCmd) Synopsis() string { return "record incoming stock for a product" }
func (*inCmd) Usage() string {
	return `in -id <product_id> -q <quantity> [-p <price_per_unit>] [-m <note>] [-d <date>]

  Records an IN movement and raises the product's current stock. The total
  value of the movement is frozen at posting time.
`
}

func (c *inCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *inCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.post(inventory.StockIn, f)
}

// --- Stock Out Command ---

type outCmd struct{ stockFlags }

func (*outCmd) Name() string     { return "out" }
func (*outCmd) Synopsis() string { return "record outgoing stock for a product" }
func (*outCmd) Usage() string {
	return `out -id <product_id> -q <quantity> [-p <price_per_unit>] [-m <note>] [-d <date>]

  Records an OUT movement and lowers the product's current stock. Unless
  INVENTORY_ALLOW_NEGATIVE_STOCK is set, withdrawing more than the current
  stock is rejected.
`
}

func (c *outCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *outCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.post(inventory.StockOut, f)
}
