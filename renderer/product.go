package renderer

import (
	"fmt"
	"strings"

	inventory "github.com/blendshalaa/InventoryAgro"
)

// Products renders the product list to a markdown table. The categories map
// resolves category ids to names; unknown or unset ids render blank.
func Products(products []inventory.Product, categories map[uint]string) string {
	if len(products) == 0 {
		return "No products.\n"
	}
	t := newTable("ID", "Name", "Category", "Stock", "Unit", "Min", "Price")
	for _, p := range products {
		category := ""
		if p.CategoryID != nil {
			category = categories[*p.CategoryID]
		}
		t.row(
			fmt.Sprintf("%d", p.ID),
			p.Name,
			category,
			quantity(p.CurrentStock),
			p.Unit,
			quantity(p.MinStock),
			fmt.Sprintf("%.2f", p.Price),
		)
	}
	return "# Products\n\n" + t.String()
}

// LowStock renders the low-stock alert list.
func LowStock(products []inventory.Product) string {
	if len(products) == 0 {
		return "No products under their stock threshold.\n"
	}
	t := newTable("Name", "Stock", "Min", "Unit")
	for _, p := range products {
		t.row(p.Name, quantity(p.CurrentStock), quantity(p.MinStock), p.Unit)
	}
	return "# Low stock\n\n" + t.String()
}

// Categories renders the category list.
func Categories(categories []inventory.Category) string {
	if len(categories) == 0 {
		return "No categories.\n"
	}
	var b strings.Builder
	b.WriteString("# Categories\n\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "- %d: %s\n", c.ID, c.Name)
	}
	return b.String()
}
