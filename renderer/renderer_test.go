package renderer

import (
	"strings"
	"testing"
	"time"

	inventory "github.com/blendshalaa/InventoryAgro"
)

func TestProducts(t *testing.T) {
	cat := uint(3)
	products := []inventory.Product{
		{ID: 1, Name: "Wheat", Unit: "kg", CategoryID: &cat, CurrentStock: 40, MinStock: 10, Price: 0.8},
		{ID: 2, Name: "Hammer", Unit: "piece", CurrentStock: 2, Price: 12},
	}
	got := Products(products, map[uint]string{3: "Grains"})

	for _, want := range []string{"Wheat", "Grains", "40", "kg", "0.80", "Hammer", "12.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("output misses %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "# Products") {
		t.Errorf("output has no title:\n%s", got)
	}
}

func TestProducts_Empty(t *testing.T) {
	if got := Products(nil, nil); !strings.Contains(got, "No products") {
		t.Errorf("empty list rendered %q", got)
	}
}

func TestTransactions(t *testing.T) {
	txs := []inventory.Transaction{
		{ID: 1, ProductName: "Wheat", Type: inventory.StockOut, Quantity: 5, PricePerUnit: 0.8,
			TotalValue: 4, Note: "market day", Date: time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)},
	}
	got := Transactions(txs)
	for _, want := range []string{"2024-01-15", "OUT", "Wheat", "4.00", "market day"} {
		if !strings.Contains(got, want) {
			t.Errorf("output misses %q:\n%s", want, got)
		}
	}
}

func TestTransaction_Line(t *testing.T) {
	tx := inventory.Transaction{ProductName: "Wheat", Type: inventory.StockIn, Quantity: 2.5,
		TotalValue: 2, Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)}
	got := Transaction(tx)
	if !strings.HasPrefix(got, "Received 2.5 of Wheat") {
		t.Errorf("Transaction = %q", got)
	}
}

func TestSummary(t *testing.T) {
	s := &inventory.Summary{
		Range:    inventory.Monthly.Range(inventory.MustParseDate("2024-01-15")),
		TotalIn:  inventory.M(90, "EUR"),
		TotalOut: inventory.M(32, "EUR"),
		Count:    3,
	}
	got := Summary(s)
	for _, want := range []string{"January 2024", "Movements: 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("output misses %q:\n%s", want, got)
		}
	}
}
