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

// --- History Command ---

type historyCmd struct {
	typ     string
	product uint64
	from    string
	to      string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list stock movements, with optional filters" }
func (*historyCmd) Usage() string {
	return `history [-t IN|OUT] [-id <product_id>] [-s <from_date>] [-d <to_date>]

  Lists stock movements, most recent first. The type, product and date range
  filters combine; the date bounds are inclusive whole days.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Movement type (IN or OUT)")
	f.Uint64Var(&c.product, "id", 0, "Only movements of this product")
	f.StringVar(&c.from, "s", "", "Start date (YYYY-MM-DD)")
	f.StringVar(&c.to, "d", "", "End date (YYYY-MM-DD)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := inventory.TransactionFilter{ProductID: uint(c.product)}
	if c.typ != "" {
		filter.Type = inventory.NormalizeType(c.typ)
	}
	if c.from != "" {
		day, err := inventory.ParseDate(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.From = day
	}
	if c.to != "" {
		day, err := inventory.ParseDate(c.to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.To = day
	}

	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	transactions, err := ledger.Transactions(filter)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}

// --- Recent Command ---

type recentCmd struct {
	limit int
}

func (*recentCmd) Name() string     { return "recent" }
func (*recentCmd) Synopsis() string { return "show the latest stock movements" }
func (*recentCmd) Usage() string {
	return `recent [-n <count>]

  Shows the most recent stock movements, newest first.
`
}

func (c *recentCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of movements to show")
}

func (c *recentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	transactions, err := ledger.RecentTransactions(c.limit)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
