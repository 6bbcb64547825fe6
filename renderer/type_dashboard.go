package renderer

import (
	"github.com/etnz/workshop"
	"github.com/etnz/workshop/date"
)

// DashboardView aggregates the per-screen summaries into one business-wide
// view, ready for rendering.
type DashboardView struct {
	// Date is the day the dashboard was computed for.
	Date date.Date `json:"date"`

	Stock     workshop.StockSummary    `json:"stock"`
	Wages     workshop.WagesSummary    `json:"wages"`
	Materials workshop.MaterialSummary `json:"materials"`
	Expenses  workshop.ExpenseSummary  `json:"expenses"`
	Billing   workshop.BillingSummary  `json:"billing"`
}

// NewDashboardView computes every summary from the session's collections.
func NewDashboardView(s *workshop.Session, on date.Date) *DashboardView {
	return &DashboardView{
		Date:      on,
		Stock:     workshop.NewStockSummary(s.Stock.Store().List()),
		Wages:     workshop.NewWagesSummary(s.Workers.Store().List()),
		Materials: workshop.NewMaterialSummary(s.Materials.Store().List()),
		Expenses:  workshop.NewExpenseSummary(s.Expenses.Store().List()),
		Billing:   workshop.NewBillingSummary(s.Bills.Store().List()),
	}
}
