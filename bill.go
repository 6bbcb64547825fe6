package workshop

import (
	"errors"
	"fmt"

	"github.com/etnz/workshop/date"
)

// BillItem is one line of a bill: a quantity of something at a rate.
// Its amount is always derived from quantity and rate, never stored.
type BillItem struct {
	ItemID   string
	Name     string
	Quantity Quantity
	Unit     string
	Rate     Money
}

// Amount returns quantity × rate for this line.
func (it BillItem) Amount() Money { return it.Rate.Mul(it.Quantity) }

// Validate checks one line item; field names are prefixed by the caller.
func (it BillItem) Validate() error {
	return errors.Join(
		required("name", it.Name),
		nonNegativeQ("quantity", it.Quantity),
		nonNegativeM("rate", it.Rate),
	)
}

// MarshalJSON emits the line with its derived amount included.
func (it BillItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", it.Name)
	w.Append("quantity", it.Quantity)
	w.Append("unit", it.Unit)
	w.Append("rate", it.Rate)
	w.Append("amount", it.Amount())
	return w.MarshalJSON()
}

// Bill is a customer invoice. A bill exclusively owns its ordered sequence
// of line items, and always holds at least one of them. Subtotal, GST and
// total are derived from the items on every read; they are never persisted
// independently of the item list that produces them.
type Bill struct {
	ID              string
	BillNumber      string
	CustomerName    string
	CustomerAddress string
	CustomerGSTN    string
	Date            date.Date
	DueDate         date.Date
	Items           []BillItem
	GSTRate         Percent
	Status          Status
}

func (b Bill) Identity() string            { return b.ID }
func (b Bill) withIdentity(id string) Bill { b.ID = id; return b }

// Subtotal returns the sum of all line amounts.
func (b Bill) Subtotal() Money {
	var total Money
	for _, it := range b.Items {
		total = total.Add(it.Amount())
	}
	return total
}

// GSTAmount returns subtotal × rate / 100, with no intermediate rounding.
func (b Bill) GSTAmount() Money { return b.GSTRate.Of(b.Subtotal()) }

// Total returns subtotal plus GST. With a zero rate it equals the subtotal exactly.
func (b Bill) Total() Money { return b.Subtotal().Add(b.GSTAmount()) }

// Validate checks the bill before commit. It reports every offending field,
// naming items by their position.
func (b Bill) Validate() error {
	errs := []error{
		required("bill number", b.BillNumber),
		required("customer name", b.CustomerName),
		required("customer address", b.CustomerAddress),
		required("customer GSTN", b.CustomerGSTN),
	}
	if b.Date.IsZero() {
		errs = append(errs, fmt.Errorf("date is required: %w", ErrValidation))
	}
	if b.DueDate.IsZero() {
		errs = append(errs, fmt.Errorf("due date is required: %w", ErrValidation))
	}
	if b.GSTRate.IsNegative() {
		errs = append(errs, fmt.Errorf("gst rate must not be negative: %w", ErrValidation))
	}
	if len(b.Items) == 0 {
		errs = append(errs, fmt.Errorf("a bill must have at least one item: %w", ErrInvariant))
	}
	for i, it := range b.Items {
		if err := it.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// MarshalJSON emits the bill as an invoice document, derived totals included.
func (b Bill) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("billNumber", b.BillNumber)
	w.Append("customerName", b.CustomerName)
	w.Append("customerAddress", b.CustomerAddress)
	w.Append("customerGSTN", b.CustomerGSTN)
	w.Append("date", b.Date)
	w.Append("dueDate", b.DueDate)
	w.Append("currency", DefaultCurrency)
	w.Append("items", b.Items)
	w.Append("subtotal", b.Subtotal())
	w.Append("gstRate", b.GSTRate)
	w.Append("gstAmount", b.GSTAmount())
	w.Append("totalAmount", b.Total())
	w.Append("status", b.Status)
	return w.MarshalJSON()
}
