package workshop

import (
	"errors"
	"fmt"

	"github.com/etnz/workshop/date"
)

// RawMaterial is a material purchase from a supplier, with its payment status.
type RawMaterial struct {
	ID           string
	Name         string
	Supplier     string
	PurchaseDate date.Date
	Quantity     Quantity
	Unit         string
	TotalAmount  Money
	AmountPaid   Money
	Category     string
}

func (m RawMaterial) Identity() string                   { return m.ID }
func (m RawMaterial) withIdentity(id string) RawMaterial { m.ID = id; return m }

// RemainingAmount returns the part of the purchase not yet paid to the supplier.
func (m RawMaterial) RemainingAmount() Money { return m.TotalAmount.Sub(m.AmountPaid) }

// Validate checks the purchase before commit. Paying more than the total
// amount is rejected: a negative remaining balance is never committed.
func (m RawMaterial) Validate() error {
	errs := []error{
		required("name", m.Name),
		required("supplier", m.Supplier),
		required("category", m.Category),
		required("unit", m.Unit),
		nonNegativeQ("quantity", m.Quantity),
		nonNegativeM("total amount", m.TotalAmount),
		nonNegativeM("amount paid", m.AmountPaid),
	}
	if m.PurchaseDate.IsZero() {
		errs = append(errs, fmt.Errorf("purchase date is required: %w", ErrValidation))
	}
	if m.AmountPaid.GreaterThan(m.TotalAmount) {
		errs = append(errs, fmt.Errorf("amount paid exceeds total amount: %w", ErrValidation))
	}
	return errors.Join(errs...)
}
