package inventory

// Category groups products for display. Names are trimmed and non-empty but
// not unique. Deleting a category never deletes products: it only clears the
// category reference on products that pointed at it.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}
