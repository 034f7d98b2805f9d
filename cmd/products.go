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

// --- Add Product Command ---

type addProductCmd struct {
	name     string
	unit     string
	category uint64
	stock    float64
	minStock float64
	price    float64
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "register a new product in the inventory" }
func (*addProductCmd) Usage() string {
	return `add-product -n <name> [-u <unit>] [-c <category_id>] [-s <stock>] [-min <min_stock>] [-p <price>]

  Registers a new product. The initial stock, the low-stock threshold and the
  unit price default to 0; the unit defaults to "piece".
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.StringVar(&c.unit, "u", inventory.DefaultUnit, "Unit label (kg, liter, piece, ...)")
	f.Uint64Var(&c.category, "c", 0, "Category id")
	f.Float64Var(&c.stock, "s", 0, "Initial stock level")
	f.Float64Var(&c.minStock, "min", 0, "Low-stock alert threshold (0 disables alerting)")
	f.Float64Var(&c.price, "p", 0, "Unit price")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	input := inventory.ProductInput{
		Name:         c.name,
		Unit:         c.unit,
		CurrentStock: c.stock,
		MinStock:     c.minStock,
		Price:        c.price,
	}
	if c.category != 0 {
		id := uint(c.category)
		input.CategoryID = &id
	}
	id, err := ledger.AddProduct(input)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added product %d: %s\n", id, c.name)
	return subcommands.ExitSuccess
}

// --- List Products Command ---

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list all products with their stock levels" }
func (*productsCmd) Usage() string {
	return `products

  Lists every product with its category, current stock, threshold and price.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	products, err := ledger.Products()
	if err != nil {
		return fail(err)
	}
	names, err := categoryNames(ledger)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Products(products, names))
	return subcommands.ExitSuccess
}

// --- Edit Product Command ---

type editProductCmd struct {
	id       uint64
	name     string
	unit     string
	category uint64
	stock    float64
	minStock float64
	price    float64
}

func (*editProductCmd) Name() string     { return "edit-product" }
func (*editProductCmd) Synopsis() string { return "change fields of an existing product" }
func (*editProductCmd) Usage() string {
	return `edit-product -id <id> [-n <name>] [-u <unit>] [-c <category_id>] [-s <stock>] [-min <min_stock>] [-p <price>]

  Changes only the fields whose flags are given; the others keep their value.
  A category id of 0 detaches the product from its category. The -s flag
  overrides the current stock directly and is meant for manual corrections:
  routine stock changes go through the "in" and "out" commands.
`
}

func (c *editProductCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.id, "id", 0, "Product id")
	f.StringVar(&c.name, "n", "", "New product name")
	f.StringVar(&c.unit, "u", "", "New unit label")
	f.Uint64Var(&c.category, "c", 0, "New category id (0 detaches)")
	f.Float64Var(&c.stock, "s", 0, "Corrected stock level")
	f.Float64Var(&c.minStock, "min", 0, "New low-stock alert threshold")
	f.Float64Var(&c.price, "p", 0, "New unit price")
}

func (c *editProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	// Only the flags the user actually set become part of the update.
	var u inventory.ProductUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			u.Name = &c.name
		case "u":
			u.Unit = &c.unit
		case "c":
			if c.category == 0 {
				u.ClearCategory = true
			} else {
				id := uint(c.category)
				u.CategoryID = &id
			}
		case "s":
			u.CurrentStock = &c.stock
		case "min":
			u.MinStock = &c.minStock
		case "p":
			u.Price = &c.price
		}
	})

	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := ledger.UpdateProduct(uint(c.id), u); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated product %d\n", c.id)
	return subcommands.ExitSuccess
}

// --- Delete Product Command ---

type deleteProductCmd struct {
	id uint64
}

func (*deleteProductCmd) Name() string     { return "delete-product" }
func (*deleteProductCmd) Synopsis() string { return "remove a product and its whole movement history" }
func (*deleteProductCmd) Usage() string {
	return `delete-product -id <id>

  Removes a product. All of its stock movement transactions are removed with
  it; there is no undo besides restoring a backup.
`
}

func (c *deleteProductCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.id, "id", 0, "Product id")
}

func (c *deleteProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := ledger.DeleteProduct(uint(c.id)); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Deleted product %d and its transactions\n", c.id)
	return subcommands.ExitSuccess
}
