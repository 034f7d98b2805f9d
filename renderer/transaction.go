package renderer

import (
	"fmt"

	inventory "github.com/blendshalaa/InventoryAgro"
)

// Transaction renders a single stock movement to a one-line string.
func Transaction(tx inventory.Transaction) string {
	verb := "Received"
	if tx.Type == inventory.StockOut {
		verb = "Issued"
	}
	return fmt.Sprintf("%s %s of %s for %.2f on %s",
		verb, quantity(tx.Quantity), tx.ProductName, tx.TotalValue, tx.Date.Format(inventory.DateFormat))
}

// Transactions renders a movement history to a markdown table, in the order
// given (the engine returns most recent first).
func Transactions(txs []inventory.Transaction) string {
	if len(txs) == 0 {
		return "No transactions.\n"
	}
	t := newTable("Date", "Type", "Product", "Qty", "Unit price", "Total", "Note")
	for _, tx := range txs {
		t.row(
			tx.Date.Format(inventory.DateFormat),
			tx.Type,
			tx.ProductName,
			quantity(tx.Quantity),
			fmt.Sprintf("%.2f", tx.PricePerUnit),
			fmt.Sprintf("%.2f", tx.TotalValue),
			tx.Note,
		)
	}
	return "# Transactions\n\n" + t.String()
}
