package renderer

import (
	"github.com/etnz/workshop"
	"github.com/etnz/workshop/date"
)

// BillView is a struct to represent a bill for rendering.
// Numbers are handled using the exact decimal types (Money, Quantity, etc.)
// so that they already contain basic renderers (String etc.)
type BillView struct {

	// BillNumber is the human-facing invoice reference.
	BillNumber string `json:"billNumber"`
	// CustomerName is the billed party.
	CustomerName string `json:"customerName"`
	// CustomerAddress is the billed party's postal address.
	CustomerAddress string `json:"customerAddress"`
	// CustomerGSTN is the billed party's GST registration number.
	CustomerGSTN string `json:"customerGSTN"`
	// Date is the issue date.
	Date date.Date `json:"date"`
	// DueDate is the payment due date.
	DueDate date.Date `json:"dueDate"`
	// Items is the list of billed lines.
	Items []BillViewItem `json:"items"`
	// Subtotal is the sum of all item amounts before tax.
	Subtotal workshop.Money `json:"subtotal"`
	// GSTRate is the tax rate applied to the subtotal.
	GSTRate workshop.Percent `json:"gstRate"`
	// GSTAmount is the tax due on the subtotal.
	GSTAmount workshop.Money `json:"gstAmount"`
	// TotalAmount is the grand total including tax.
	TotalAmount workshop.Money `json:"totalAmount"`
	// Status is the bill's payment status.
	Status string `json:"status"`
}

// BillViewItem represents a single billed line.
type BillViewItem struct {
	Name     string            `json:"name"`
	Quantity workshop.Quantity `json:"quantity"`
	Unit     string            `json:"unit"`
	Rate     workshop.Money    `json:"rate"`
	Amount   workshop.Money    `json:"amount"`
}

// NewBillView creates a BillView from a committed bill. It populates the
// struct with all the necessary data for rendering, deriving the totals from
// the bill's line items.
func NewBillView(b workshop.Bill) *BillView {
	v := &BillView{
		BillNumber:      b.BillNumber,
		CustomerName:    b.CustomerName,
		CustomerAddress: b.CustomerAddress,
		CustomerGSTN:    b.CustomerGSTN,
		Date:            b.Date,
		DueDate:         b.DueDate,
		Subtotal:        b.Subtotal(),
		GSTRate:         b.GSTRate,
		GSTAmount:       b.GSTAmount(),
		TotalAmount:     b.Total(),
		Status:          b.Status.String(),
	}
	for _, it := range b.Items {
		v.Items = append(v.Items, BillViewItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Rate:     it.Rate,
			Amount:   it.Amount(),
		})
	}
	return v
}
