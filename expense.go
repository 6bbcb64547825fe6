package workshop

import (
	"errors"
	"fmt"

	"github.com/etnz/workshop/date"
)

// Expense is a daily business expense.
type Expense struct {
	ID            string
	Date          date.Date
	Category      string
	Description   string
	Amount        Money
	PaymentMethod string
	BillNumber    string // optional reference to a supplier bill
}

func (e Expense) Identity() string               { return e.ID }
func (e Expense) withIdentity(id string) Expense { e.ID = id; return e }

// Validate checks the expense before commit.
func (e Expense) Validate() error {
	errs := []error{
		required("category", e.Category),
		required("description", e.Description),
		required("payment method", e.PaymentMethod),
		nonNegativeM("amount", e.Amount),
	}
	if e.Date.IsZero() {
		errs = append(errs, fmt.Errorf("date is required: %w", ErrValidation))
	}
	return errors.Join(errs...)
}
