package inventory

import "github.com/shopspring/decimal"

// Summary aggregates the stock movements of a period: the total value that
// came in, the total value that went out, and the number of movements. It is
// the plain computed source that report renderers consume.
type Summary struct {
	Range    Range
	TotalIn  Money
	TotalOut Money
	Count    int
}

// Summarize computes the movement summary for a date range.
func (l *Ledger) Summarize(r Range) (*Summary, error) {
	list, err := l.Transactions(TransactionFilter{From: r.From, To: r.To})
	if err != nil {
		return nil, err
	}
	in, out := decimal.Zero, decimal.Zero
	for _, tx := range list {
		v := decimal.NewFromFloat(tx.TotalValue)
		if tx.Type == StockOut {
			out = out.Add(v)
		} else {
			in = in.Add(v)
		}
	}
	return &Summary{
		Range:    r,
		TotalIn:  MD(in, l.currency),
		TotalOut: MD(out, l.currency),
		Count:    len(list),
	}, nil
}

// TotalStockValue computes the valuation of all held stock at current unit
// prices.
func (l *Ledger) TotalStockValue() (Money, error) {
	products, err := l.Products()
	if err != nil {
		return Money{}, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(decimal.NewFromFloat(p.CurrentStock).Mul(decimal.NewFromFloat(p.Price)))
	}
	return MD(total, l.currency), nil
}
