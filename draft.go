package workshop

import (
	"fmt"
	"slices"
	"time"

	"github.com/etnz/workshop/date"
)

// BillDraft is the mutable scratch copy of a bill being created or edited.
// It is independently owned: editing a draft never touches the committed
// store until an explicit submit. The line-item list is kept behind methods
// so the at-least-one-item invariant cannot be broken.
type BillDraft struct {
	BillNumber      string
	CustomerName    string
	CustomerAddress string
	CustomerGSTN    string
	Date            date.Date
	DueDate         date.Date
	GSTRate         Percent
	Status          Status

	items []BillItem
}

// NewBillDraft starts a blank draft for a new bill. The bill number is
// derived from the given instant, once; it is never regenerated afterwards.
func NewBillDraft(now time.Time) *BillDraft {
	return &BillDraft{
		BillNumber: NewBillNumber(now),
		Date:       date.Of(now),
		GSTRate:    P(18),
		Status:     Draft,
		items:      []BillItem{newBillItem()},
	}
}

// DraftOf starts a draft initialized from a committed bill. The draft gets
// its own copy of the item list, so edits cannot leak into the store.
func DraftOf(b Bill) *BillDraft {
	return &BillDraft{
		BillNumber:      b.BillNumber,
		CustomerName:    b.CustomerName,
		CustomerAddress: b.CustomerAddress,
		CustomerGSTN:    b.CustomerGSTN,
		Date:            b.Date,
		DueDate:         b.DueDate,
		GSTRate:         b.GSTRate,
		Status:          b.Status,
		items:           slices.Clone(b.Items),
	}
}

func newBillItem() BillItem {
	return BillItem{ItemID: newID(), Unit: "pieces", Rate: M(0, DefaultCurrency)}
}

// Items returns a copy of the line items in order.
func (d *BillDraft) Items() []BillItem { return slices.Clone(d.items) }

// Len returns the number of line items.
func (d *BillDraft) Len() int { return len(d.items) }

// AddItem appends a fresh line item with zeroed quantity and rate. New items
// always go last.
func (d *BillDraft) AddItem() {
	d.items = append(d.items, newBillItem())
}

// RemoveItem removes the line item at index i, preserving the order of the
// rest. Removing the last remaining item fails wrapping ErrInvariant and
// leaves the list unchanged: a bill always keeps at least one item.
func (d *BillDraft) RemoveItem(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if len(d.items) == 1 {
		return fmt.Errorf("a bill must keep at least one item: %w", ErrInvariant)
	}
	d.items = slices.Delete(d.items, i, i+1)
	return nil
}

// SetItemName sets the name of the line item at index i.
func (d *BillDraft) SetItemName(i int, name string) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].Name = name
	return nil
}

// SetItemQuantity sets the quantity of the line item at index i. The line
// amount is derived, so it reflects the new quantity immediately.
func (d *BillDraft) SetItemQuantity(i int, q Quantity) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].Quantity = q
	return nil
}

// SetItemUnit sets the unit of the line item at index i.
func (d *BillDraft) SetItemUnit(i int, unit string) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].Unit = unit
	return nil
}

// SetItemRate sets the rate of the line item at index i. The line amount is
// derived, so it reflects the new rate immediately.
func (d *BillDraft) SetItemRate(i int, rate Money) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.items[i].Rate = rate
	return nil
}

func (d *BillDraft) checkIndex(i int) error {
	if i < 0 || i >= len(d.items) {
		return fmt.Errorf("item index %d out of range: %w", i, ErrInvariant)
	}
	return nil
}

// Subtotal returns the sum of all line amounts of the draft.
func (d *BillDraft) Subtotal() Money { return d.Bill().Subtotal() }

// GSTAmount returns the GST derived from the draft's current items and rate.
func (d *BillDraft) GSTAmount() Money { return d.Bill().GSTAmount() }

// Total returns the draft's subtotal plus GST.
func (d *BillDraft) Total() Money { return d.Bill().Total() }

// Bill returns a snapshot of the draft as a bill value, with its own copy
// of the item list. The snapshot has no identity; commit assigns one.
func (d *BillDraft) Bill() Bill {
	return Bill{
		BillNumber:      d.BillNumber,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		CustomerGSTN:    d.CustomerGSTN,
		Date:            d.Date,
		DueDate:         d.DueDate,
		Items:           slices.Clone(d.items),
		GSTRate:         d.GSTRate,
		Status:          d.Status,
	}
}
