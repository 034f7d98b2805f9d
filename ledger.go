package inventory

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Ledger is the engine owning products, categories and the stock movement
// history. All mutations go through it; the store is only the persistence
// substrate.
type Ledger struct {
	store    *Store
	log      *zap.Logger
	now      func() time.Time
	currency string

	// allowNegativeStock disables the sufficiency check on OUT postings.
	// The default enforces it, so that stock keeps reflecting physically
	// held inventory.
	allowNegativeStock bool
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the structured logger used for mutation events.
func WithLogger(log *zap.Logger) Option {
	return func(l *Ledger) {
		if log != nil {
			l.log = log
		}
	}
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithCurrency sets the currency code used for valuations and summaries.
func WithCurrency(code string) Option {
	return func(l *Ledger) { l.currency = code }
}

// WithAllowNegativeStock switches the OUT posting policy: when true,
// over-withdrawal is permitted and stock may go negative.
func WithAllowNegativeStock(allow bool) Option {
	return func(l *Ledger) { l.allowNegativeStock = allow }
}

// NewLedger creates a ledger engine over an opened store.
func NewLedger(store *Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:    store,
		log:      zap.NewNop(),
		now:      time.Now,
		currency: "EUR",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// coerce keeps the historical leniency of the tracker: a value that is not a
// real number is stored as 0 instead of being rejected.
func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// AddProduct validates and saves a new product, returning its id.
func (l *Ledger) AddProduct(input ProductInput) (uint, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, &ValidationError{Msg: "product name is required"}
	}
	unit := input.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	now := l.now()
	p := Product{
		Name:         name,
		Unit:         unit,
		CategoryID:   input.CategoryID,
		CurrentStock: coerce(input.CurrentStock),
		MinStock:     coerce(input.MinStock),
		Price:        coerce(input.Price),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := l.store.db.Create(&p).Error; err != nil {
		return 0, fmt.Errorf("cannot save product: %w", err)
	}
	l.log.Info("product added", zap.Uint("id", p.ID), zap.String("name", p.Name))
	return p.ID, nil
}

// Product returns the product with the given id.
func (l *Ledger) Product(id uint) (*Product, error) {
	var p Product
	err := l.store.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "product", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load product %d: %w", id, err)
	}
	return &p, nil
}

// Products returns all products ordered by name.
func (l *Ledger) Products() ([]Product, error) {
	var list []Product
	if err := l.store.db.Order("name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("cannot list products: %w", err)
	}
	return list, nil
}

// UpdateProduct merges the provided fields over the existing product and
// re-stamps its update time. Editing a missing id is a no-op. CurrentStock
// may be overridden explicitly here as a manual correction; routine stock
// changes must go through AddTransaction instead.
func (l *Ledger) UpdateProduct(id uint, u ProductUpdate) error {
	var p Product
	err := l.store.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot load product %d: %w", id, err)
	}
	if u.Name != nil {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Unit != nil {
		p.Unit = *u.Unit
	}
	if u.ClearCategory {
		p.CategoryID = nil
	} else if u.CategoryID != nil {
		p.CategoryID = u.CategoryID
	}
	if u.CurrentStock != nil {
		p.CurrentStock = coerce(*u.CurrentStock)
	}
	if u.MinStock != nil {
		p.MinStock = coerce(*u.MinStock)
	}
	if u.Price != nil {
		p.Price = coerce(*u.Price)
	}
	p.UpdatedAt = l.now()
	if err := l.store.db.Save(&p).Error; err != nil {
		return fmt.Errorf("cannot save product %d: %w", id, err)
	}
	l.log.Info("product updated", zap.Uint("id", id))
	return nil
}

// DeleteProduct removes a product and all of its transactions. Transactions
// are removed first; if the product row then fails to delete, it remains
// with an empty history, which is an accepted degraded state rather than an
// error to recover from.
func (l *Ledger) DeleteProduct(id uint) error {
	if err := l.store.db.Where("product_id = ?", id).Delete(&Transaction{}).Error; err != nil {
		return fmt.Errorf("cannot delete transactions of product %d: %w", id, err)
	}
	if err := l.store.db.Delete(&Product{}, id).Error; err != nil {
		return fmt.Errorf("cannot delete product %d: %w", id, err)
	}
	l.log.Info("product deleted", zap.Uint("id", id))
	return nil
}

// AddCategory saves a new category, returning its id.
func (l *Ledger) AddCategory(name string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, &ValidationError{Msg: "category name is required"}
	}
	c := Category{Name: name}
	if err := l.store.db.Create(&c).Error; err != nil {
		return 0, fmt.Errorf("cannot save category: %w", err)
	}
	l.log.Info("category added", zap.Uint("id", c.ID), zap.String("name", c.Name))
	return c.ID, nil
}

// UpdateCategory renames a category.
func (l *Ledger) UpdateCategory(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Msg: "category name is required"}
	}
	var c Category
	err := l.store.db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: "category", ID: id}
	}
	if err != nil {
		return fmt.Errorf("cannot load category %d: %w", id, err)
	}
	c.Name = name
	if err := l.store.db.Save(&c).Error; err != nil {
		return fmt.Errorf("cannot save category %d: %w", id, err)
	}
	return nil
}

// DeleteCategory removes a category. Referencing products are unlinked
// first, so no product is ever left pointing at a missing category.
func (l *Ledger) DeleteCategory(id uint) error {
	if err := l.store.db.Model(&Product{}).Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return fmt.Errorf("cannot unlink products of category %d: %w", id, err)
	}
	if err := l.store.db.Delete(&Category{}, id).Error; err != nil {
		return fmt.Errorf("cannot delete category %d: %w", id, err)
	}
	l.log.Info("category deleted", zap.Uint("id", id))
	return nil
}

// Categories returns all categories ordered by name.
func (l *Ledger) Categories() ([]Category, error) {
	var list []Category
	if err := l.store.db.Order("name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("cannot list categories: %w", err)
	}
	return list, nil
}

// AddTransaction posts one stock movement and updates the product's current
// stock. The record and the stock change land together or not at all.
func (l *Ledger) AddTransaction(input TransactionInput) (uint, error) {
	var p Product
	err := l.store.db.First(&p, input.ProductID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, &NotFoundError{Entity: "product", ID: input.ProductID}
	}
	if err != nil {
		return 0, fmt.Errorf("cannot load product %d: %w", input.ProductID, err)
	}

	quantity := coerce(input.Quantity)
	price := p.Price
	if input.PricePerUnit != nil {
		price = coerce(*input.PricePerUnit)
	}
	// Computed once with exact arithmetic and frozen into the record.
	total := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(price)).InexactFloat64()
	typ := NormalizeType(input.Type)

	if typ == StockOut && !l.allowNegativeStock && p.CurrentStock < quantity {
		return 0, &InsufficientStockError{
			Available: p.CurrentStock,
			Requested: quantity,
			Unit:      p.Unit,
		}
	}

	now := l.now()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	date = date.UTC()

	tx := Transaction{
		ProductID:    p.ID,
		ProductName:  p.Name, // snapshot, not kept in sync with renames
		Type:         typ,
		Quantity:     quantity,
		PricePerUnit: price,
		TotalValue:   total,
		Note:         input.Note,
		Date:         date,
		CreatedAt:    now,
	}
	newStock := p.CurrentStock + quantity
	if typ == StockOut {
		newStock = p.CurrentStock - quantity
	}

	err = l.store.Atomic(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(&tx).Error; err != nil {
			return err
		}
		return dbtx.Model(&Product{}).Where("id = ?", p.ID).
			Updates(map[string]any{"current_stock": newStock, "updated_at": now}).Error
	})
	if err != nil {
		return 0, fmt.Errorf("cannot post transaction: %w", err)
	}
	l.log.Info("transaction posted",
		zap.Uint("id", tx.ID),
		zap.String("type", typ),
		zap.String("product", p.Name),
		zap.Float64("quantity", quantity),
		zap.Float64("stock", newStock))
	return tx.ID, nil
}

// Transactions returns the stock movements selected by the filter, most
// recent first. Type, when given, drives the indexed lookup; otherwise
// ProductID does; otherwise the whole history is read in date order. A date
// range combines with any of those paths: inclusive from the start of the
// From day to the end of the To day.
func (l *Ledger) Transactions(filter TransactionFilter) ([]Transaction, error) {
	var list []Transaction
	var indexed bool
	switch {
	case filter.Type != "":
		if err := l.store.db.Where("type = ?", filter.Type).Find(&list).Error; err != nil {
			return nil, fmt.Errorf("cannot list transactions: %w", err)
		}
		indexed = true
	case filter.ProductID != 0:
		if err := l.store.db.Where("product_id = ?", filter.ProductID).Find(&list).Error; err != nil {
			return nil, fmt.Errorf("cannot list transactions: %w", err)
		}
		indexed = true
	default:
		if err := l.store.db.Order("date DESC").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("cannot list transactions: %w", err)
		}
	}

	if !filter.From.IsZero() || !filter.To.IsZero() {
		kept := list[:0]
		for _, tx := range list {
			if !filter.From.IsZero() && tx.Date.Before(filter.From.StartOfDay()) {
				continue
			}
			if !filter.To.IsZero() && tx.Date.After(filter.To.EndOfDay()) {
				continue
			}
			kept = append(kept, tx)
		}
		list = kept
	}

	if indexed {
		// The indexed retrieval does not share the date ordering of the
		// default path, so re-sort explicitly.
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Date.After(list[j].Date)
		})
	}
	return list, nil
}

// RecentTransactions returns the most recent limit transactions by date,
// descending.
func (l *Ledger) RecentTransactions(limit int) ([]Transaction, error) {
	var list []Transaction
	if err := l.store.db.Order("date DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("cannot list recent transactions: %w", err)
	}
	return list, nil
}

// LowStockProducts returns the products whose stock fell under their alert
// threshold. Products with a threshold of 0 never alert.
func (l *Ledger) LowStockProducts() ([]Product, error) {
	products, err := l.Products()
	if err != nil {
		return nil, err
	}
	var low []Product
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}
