package inventory

import "time"

// Movement direction of a stock transaction.
const (
	StockIn  = "IN"
	StockOut = "OUT"
)

// NormalizeType maps any value that is not exactly "OUT" to "IN". This is a
// policy choice, not a validation failure.
func NormalizeType(t string) string {
	if t == StockOut {
		return StockOut
	}
	return StockIn
}

// Transaction is one immutable stock movement. ProductName is a snapshot of
// the product's name at posting time and is intentionally not kept in sync
// with later renames. TotalValue is computed once at creation and frozen.
//
// Transactions have no update path: they are created by posting and deleted
// only as a cascade of product deletion or a wholesale backup restore.
type Transaction struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProductID    uint      `json:"productId" gorm:"index"`
	ProductName  string    `json:"productName"`
	Type         string    `json:"type" gorm:"index"`
	Quantity     float64   `json:"quantity"`
	PricePerUnit float64   `json:"pricePerUnit"`
	TotalValue   float64   `json:"totalValue"`
	Note         string    `json:"note,omitempty"`
	Date         time.Time `json:"date" gorm:"index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
}

// TransactionInput carries the fields of a new stock movement. PricePerUnit
// left nil falls back to the product's current price. A zero Date means the
// posting time.
type TransactionInput struct {
	ProductID    uint
	Type         string
	Quantity     float64
	PricePerUnit *float64
	Note         string
	Date         time.Time
}

// TransactionFilter selects transactions from the history. Zero values mean
// "not filtered". Type takes precedence over ProductID for the indexed
// lookup; the date range combines with either.
type TransactionFilter struct {
	Type      string
	ProductID uint
	From      Date
	To        Date
}
