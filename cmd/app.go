// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"flag"
	"fmt"
	"os"

	inventory "github.com/blendshalaa/InventoryAgro"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package calls Register() first, then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addProductCmd{}, "products")
	c.Register(&productsCmd{}, "products")
	c.Register(&editProductCmd{}, "products")
	c.Register(&deleteProductCmd{}, "products")

	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&categoriesCmd{}, "categories")
	c.Register(&editCategoryCmd{}, "categories")
	c.Register(&deleteCategoryCmd{}, "categories")

	c.Register(&inCmd{}, "stock")
	c.Register(&outCmd{}, "stock")

	c.Register(&historyCmd{}, "views")
	c.Register(&recentCmd{}, "views")
	c.Register(&lowStockCmd{}, "views")
	c.Register(&valueCmd{}, "views")
	c.Register(&reportCmd{}, "views")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "", "Path to the inventory database file (overrides INVENTORY_DB)")
var verbose = flag.Bool("v", false, "Log every mutation to stderr")

// config carries the environment defaults. Flags override them.
type config struct {
	DB                 string `default:"inventory.db"`
	Currency           string `default:"EUR"`
	AllowNegativeStock bool   `split_words:"true"`
}

// OpenLedger opens the inventory database and returns the ledger engine over
// it, plus the function releasing the database handle.
func OpenLedger() (*inventory.Ledger, func(), error) {
	var cfg config
	if err := envconfig.Process("inventory", &cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid environment: %w", err)
	}
	if *dbFile != "" {
		cfg.DB = *dbFile
	}
	store, err := inventory.Open(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	log := zap.NewNop()
	if *verbose {
		// Development config prints human-readable lines on stderr.
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	ledger := inventory.NewLedger(store,
		inventory.WithLogger(log),
		inventory.WithCurrency(cfg.Currency),
		inventory.WithAllowNegativeStock(cfg.AllowNegativeStock),
	)
	return ledger, func() { store.Close() }, nil
}

// categoryNames resolves category ids to names for rendering.
func categoryNames(ledger *inventory.Ledger) (map[uint]string, error) {
	categories, err := ledger.Categories()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

// printMarkdown renders markdown for the terminal and prints it. On any
// rendering trouble the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error for the user and turns it into an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
