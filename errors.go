package inventory

import "fmt"

// ValidationError reports user input that fails a structural rule, such as an
// empty required field or a malformed backup payload.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports a reference to an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InsufficientStockError rejects an OUT transaction whose quantity exceeds
// the product's current stock. It names the available quantity and unit so
// the message can be shown to the user as-is.
type InsufficientStockError struct {
	Available float64
	Requested float64
	Unit      string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("remaining stock (%g %s) is not enough, requested quantity: %g",
		e.Available, e.Unit, e.Requested)
}
