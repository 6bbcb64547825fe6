package workshop

// Summaries are the pure aggregates behind the dashboard cards. They are
// derived from a slice of records on every call and never cached.

// BillingSummary is the at-a-glance view of the billing screen.
type BillingSummary struct {
	TotalBilled Money // total amount of all listed bills
	Paid        Money // total of bills marked Paid
	Pending     Money // total of bills sent and awaiting payment
}

// NewBillingSummary totals the given bills by status.
func NewBillingSummary(bills []Bill) BillingSummary {
	var s BillingSummary
	for _, b := range bills {
		total := b.Total()
		s.TotalBilled = s.TotalBilled.Add(total)
		switch b.Status {
		case Paid:
			s.Paid = s.Paid.Add(total)
		case Sent:
			s.Pending = s.Pending.Add(total)
		}
	}
	return s
}

// MaterialSummary is the at-a-glance view of the raw-material screen.
type MaterialSummary struct {
	PurchaseValue Money
	AmountPaid    Money
	AmountPending Money
}

// NewMaterialSummary totals the given purchases and their payment status.
func NewMaterialSummary(materials []RawMaterial) MaterialSummary {
	var s MaterialSummary
	for _, m := range materials {
		s.PurchaseValue = s.PurchaseValue.Add(m.TotalAmount)
		s.AmountPaid = s.AmountPaid.Add(m.AmountPaid)
		s.AmountPending = s.AmountPending.Add(m.RemainingAmount())
	}
	return s
}

// StockSummary is the at-a-glance view of the stock screen.
type StockSummary struct {
	TotalValue    Money
	ItemCount     int
	LowStockCount int
}

// NewStockSummary totals the inventory value and counts low-stock items.
func NewStockSummary(items []StockItem) StockSummary {
	var s StockSummary
	s.ItemCount = len(items)
	for _, it := range items {
		s.TotalValue = s.TotalValue.Add(it.TotalValue())
		if it.LowStock() {
			s.LowStockCount++
		}
	}
	return s
}

// ExpenseSummary is the at-a-glance view of the expense screen.
type ExpenseSummary struct {
	Total      Money
	ByCategory map[string]Money
}

// NewExpenseSummary totals the given expenses, overall and per category.
func NewExpenseSummary(expenses []Expense) ExpenseSummary {
	s := ExpenseSummary{ByCategory: make(map[string]Money)}
	for _, e := range expenses {
		s.Total = s.Total.Add(e.Amount)
		s.ByCategory[e.Category] = s.ByCategory[e.Category].Add(e.Amount)
	}
	return s
}

// WagesSummary is the at-a-glance view of the worker screen.
type WagesSummary struct {
	WorkerCount  int
	TotalEarned  Money
	TotalPaid    Money
	TotalPending Money
}

// NewWagesSummary totals earned and outstanding wages for the given workers.
func NewWagesSummary(workers []Worker) WagesSummary {
	var s WagesSummary
	s.WorkerCount = len(workers)
	for _, w := range workers {
		s.TotalEarned = s.TotalEarned.Add(w.TotalSalaryEarned())
		s.TotalPaid = s.TotalPaid.Add(w.SalaryPaid)
		s.TotalPending = s.TotalPending.Add(w.RemainingSalary())
	}
	return s
}
