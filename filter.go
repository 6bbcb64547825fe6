package workshop

import (
	"strings"

	"github.com/etnz/workshop/date"
)

// AcceptAll is a predicate that accepts every record.
func AcceptAll[R any](R) bool { return true }

// Filter returns the ordered subsequence of records accepted by every
// predicate. It never mutates its input; with no predicates it returns all
// records in their original order.
func Filter[R any](records []R, preds ...func(R) bool) []R {
	out := make([]R, 0, len(records))
next:
	for _, r := range records {
		for _, accept := range preds {
			if !accept(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// anyFold reports whether term is a case-insensitive substring of any of the
// fields. An empty term matches everything.
func anyFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// StockCriteria selects stock items by free-text search over name and category.
type StockCriteria struct {
	Search string
}

func (c StockCriteria) Match(it StockItem) bool {
	return anyFold(c.Search, it.Name, it.Category)
}

// WorkerCriteria selects workers by free-text search over name and position.
type WorkerCriteria struct {
	Search string
}

func (c WorkerCriteria) Match(w Worker) bool {
	return anyFold(c.Search, w.Name, w.Position)
}

// MaterialCriteria selects material purchases by free-text search over name,
// supplier and category.
type MaterialCriteria struct {
	Search string
}

func (c MaterialCriteria) Match(m RawMaterial) bool {
	return anyFold(c.Search, m.Name, m.Supplier, m.Category)
}

// ExpenseCriteria selects expenses. Search matches description and category;
// Date and Category are exact filters, inactive when zero or empty. Active
// criteria are AND-combined.
type ExpenseCriteria struct {
	Search   string
	Date     date.Date
	Category string
}

func (c ExpenseCriteria) Match(e Expense) bool {
	if !anyFold(c.Search, e.Description, e.Category) {
		return false
	}
	if !c.Date.IsZero() && e.Date != c.Date {
		return false
	}
	if c.Category != "" && e.Category != c.Category {
		return false
	}
	return true
}

// BillCriteria selects bills. Search matches bill number and customer name;
// Status is an exact filter, inactive when nil.
type BillCriteria struct {
	Search string
	Status *Status
}

func (c BillCriteria) Match(b Bill) bool {
	if !anyFold(c.Search, b.BillNumber, b.CustomerName) {
		return false
	}
	if c.Status != nil && b.Status != *c.Status {
		return false
	}
	return true
}
