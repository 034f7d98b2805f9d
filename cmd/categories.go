package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/blendshalaa/InventoryAgro/renderer"
	"github.com/google/subcommands"
)

// --- Add Category Command ---

type addCategoryCmd struct {
	name string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a new product category" }
func (*addCategoryCmd) Usage() string {
	return `add-category -n <name>

  Creates a category. Categories only group products for display; a product
  can live without one.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Category name")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	id, err := ledger.AddCategory(c.name)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added category %d: %s\n", id, c.name)
	return subcommands.ExitSuccess
}

// --- List Categories Command ---

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list all categories" }
func (*categoriesCmd) Usage() string {
	return `categories

  Lists every category with its id.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	categories, err := ledger.Categories()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Categories(categories))
	return subcommands.ExitSuccess
}

// --- Edit Category Command ---

type editCategoryCmd struct {
	id   uint64
	name string
}

func (*editCategoryCmd) Name() string     { return "edit-category" }
func (*editCategoryCmd) Synopsis() string { return "rename a category" }
func (*editCategoryCmd) Usage() string {
	return `edit-category -id <id> -n <name>

  Renames a category. Products keep pointing at it.
`
}

func (c *editCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.id, "id", 0, "Category id")
	f.StringVar(&c.name, "n", "", "New category name")
}

func (c *editCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := ledger.UpdateCategory(uint(c.id), c.name); err != nil {
		return fail(err)
	}
	fmt.Printf("Renamed category %d to %s\n", c.id, c.name)
	return subcommands.ExitSuccess
}

// --- Delete Category Command ---

type deleteCategoryCmd struct {
	id uint64
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "remove a category, keeping its products" }
func (*deleteCategoryCmd) Usage() string {
	return `delete-category -id <id>

  Removes a category. Products that referenced it are detached, never deleted.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.id, "id", 0, "Category id")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, closeStore, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := ledger.DeleteCategory(uint(c.id)); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted category %d\n", c.id)
	return subcommands.ExitSuccess
}
