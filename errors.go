package workshop

import (
	"errors"
	"fmt"
)

// Error conditions surfaced by the core. All failures wrap one of these
// sentinels so callers can classify them with errors.Is.
var (
	// ErrNotFound reports an operation against an identity absent from its store.
	ErrNotFound = errors.New("record not found")
	// ErrInvariant reports an operation that would break a structural invariant,
	// such as removing the last line item of a bill.
	ErrInvariant = errors.New("invariant violation")
	// ErrValidation reports a draft rejected before commit. The error message
	// names every offending field.
	ErrValidation = errors.New("validation failed")
)

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// required returns a validation error when a mandatory text field is empty.
func required(field, value string) error {
	if value != "" {
		return nil
	}
	return fmt.Errorf("%s is required: %w", field, ErrValidation)
}

// nonNegativeQ returns a validation error when a quantity is negative.
func nonNegativeQ(field string, q Quantity) error {
	if !q.IsNegative() {
		return nil
	}
	return fmt.Errorf("%s must not be negative: %w", field, ErrValidation)
}

// nonNegativeM returns a validation error when an amount is negative.
func nonNegativeM(field string, m Money) error {
	if !m.IsNegative() {
		return nil
	}
	return fmt.Errorf("%s must not be negative: %w", field, ErrValidation)
}
