package inventory

import "time"

// DefaultUnit is the unit label assigned to products created without one.
const DefaultUnit = "piece"

// Product is a tracked inventory item.
//
// CurrentStock is always the arithmetic sum of all IN transaction quantities
// minus all OUT transaction quantities for the product. It is maintained
// incrementally by transaction posting; the only other path allowed to touch
// it is the explicit override in a product edit, kept as an escape hatch for
// manual corrections.
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"index"`
	Unit         string    `json:"unit"`
	CategoryID   *uint     `json:"categoryId,omitempty" gorm:"index"`
	CurrentStock float64   `json:"currentStock"`
	MinStock     float64   `json:"minStock"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// LowStock reports whether the product should raise a low-stock alert.
// A MinStock of 0 means alerting is disabled for the product.
func (p Product) LowStock() bool {
	return p.MinStock > 0 && p.CurrentStock < p.MinStock
}

// ProductInput carries the fields of a new product.
type ProductInput struct {
	Name         string
	Unit         string
	CategoryID   *uint
	CurrentStock float64
	MinStock     float64
	Price        float64
}

// ProductUpdate carries a partial edit of a product. Nil fields are
// preserved, not zeroed. ClearCategory unsets the category reference.
type ProductUpdate struct {
	Name          *string
	Unit          *string
	CategoryID    *uint
	ClearCategory bool
	CurrentStock  *float64
	MinStock      *float64
	Price         *float64
}
