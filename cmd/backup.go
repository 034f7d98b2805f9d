package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a full backup of the inventory as JSON" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Dumps every product, transaction and category into one versioned JSON
  snapshot, to the given file or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file to write (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		w = file
	}
	if err := ledger.Export(w); err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Backup written to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}

// --- Import Command ---

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the whole inventory with a backup" }
func (*importCmd) Usage() string {
	return `import -i <file>

  Restores a backup snapshot. This REPLACES the whole inventory: all current
  products, transactions and categories are dropped and the snapshot's rows
  are loaded in their place, original ids included. A failed restore leaves
  the current state untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to restore")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.input)
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := ledger.Import(file); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Backup %s restored\n", c.input)
	return subcommands.ExitSuccess
}
