package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	inventory "github.com/blendshalaa/InventoryAgro"
	"github.com/blendshalaa/InventoryAgro/renderer"
	"github.com/google/subcommands"
)

// --- Low Stock Command ---

type lowStockCmd struct{}

func (*lowStockCmd) Name() string     { return "low-stock" }
func (*lowStockCmd) Synopsis() string { return "list products under their stock threshold" }
func (*lowStockCmd) Usage() string {
	return `low-stock

  Lists every product whose current stock fell under its alert threshold.
  Products with a threshold of 0 never appear.
`
}

func (c *lowStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	products, err := ledger.LowStockProducts()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.LowStock(products))
	return subcommands.ExitSuccess
}

// --- Value Command ---

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "show the total value of held stock" }
func (*valueCmd) Usage() string {
	return `value

  Computes the valuation of all held stock at current unit prices.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	total, err := ledger.TotalStockValue()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Value(total))
	return subcommands.ExitSuccess
}

// --- Report Command ---

type reportCmd struct {
	period string
	date   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "summarize stock movements over a period" }
func (*reportCmd) Usage() string {
	return `report [-p <period>] [-d <date>]

  Summarizes the stock movements of the period (day, week, month or year)
  containing the given date: total value in, total value out, and the number
  of movements.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Reporting period (day, week, month, year)")
	f.StringVar(&c.date, "d", "", "A date inside the period (YYYY-MM-DD, defaults to today)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := inventory.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	day := inventory.Today()
	if c.date != "" {
		day, err = inventory.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	summary, err := ledger.Summarize(period.Range(day))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
