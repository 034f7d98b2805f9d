package renderer

import (
	"fmt"
	"strings"

	inventory "github.com/blendshalaa/InventoryAgro"
)

// Summary renders a periodic movement report.
func Summary(s *inventory.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Report — %s\n\n", s.Range.Identifier())
	fmt.Fprintf(&b, "- Stock in: %s\n", s.TotalIn)
	fmt.Fprintf(&b, "- Stock out: %s\n", s.TotalOut)
	fmt.Fprintf(&b, "- Movements: %d\n", s.Count)
	return b.String()
}

// Value renders the total stock valuation.
func Value(total inventory.Money) string {
	return fmt.Sprintf("Total stock value: **%s**\n", total)
}
