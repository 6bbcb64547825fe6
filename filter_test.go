package workshop

import (
	"testing"

	"github.com/etnz/workshop/date"
)

func testExpenses() []Expense {
	return []Expense{
		{Date: date.MustParse("2024-12-26"), Category: "Utilities", Description: "Electricity Bill", Amount: INR(8500), PaymentMethod: "Bank Transfer"},
		{Date: date.MustParse("2024-12-25"), Category: "Transport", Description: "Material Transportation", Amount: INR(2500), PaymentMethod: "Cash"},
		{Date: date.MustParse("2024-12-24"), Category: "Maintenance", Description: "Machine Repair", Amount: INR(5000), PaymentMethod: "UPI"},
	}
}

func TestFilter_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	expenses := testExpenses()
	got := Filter(expenses, ExpenseCriteria{}.Match)
	if len(got) != len(expenses) {
		t.Fatalf("Filter() returned %d records, want %d", len(got), len(expenses))
	}
	for i := range got {
		if got[i].Description != expenses[i].Description {
			t.Errorf("Filter()[%d] = %q, want %q", i, got[i].Description, expenses[i].Description)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	expenses := testExpenses()
	Filter(expenses, ExpenseCriteria{Category: "Transport"}.Match)
	if len(expenses) != 3 || expenses[0].Description != "Electricity Bill" {
		t.Errorf("Filter() mutated its input: %v", expenses)
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := []StockItem{
		{Name: "Raw Cotton", Category: "Materials"},
		{Name: "Polyester Thread", Category: "Materials"},
		{Name: "Buttons", Category: "Accessories"},
	}
	testCases := []struct {
		search string
		want   []string
	}{
		{"cotton", []string{"Raw Cotton"}},
		{"RAW", []string{"Raw Cotton"}},
		{"material", []string{"Raw Cotton", "Polyester Thread"}},
		{"", []string{"Raw Cotton", "Polyester Thread", "Buttons"}},
		{"zipper", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.search, func(t *testing.T) {
			got := Filter(items, StockCriteria{Search: tc.search}.Match)
			if len(got) != len(tc.want) {
				t.Fatalf("Filter(%q) returned %d items, want %d", tc.search, len(got), len(tc.want))
			}
			for i, it := range got {
				if it.Name != tc.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tc.search, i, it.Name, tc.want[i])
				}
			}
		})
	}
}

func TestExpenseCriteria_CombinesWithAnd(t *testing.T) {
	expenses := testExpenses()

	c := ExpenseCriteria{Search: "bill", Category: "Utilities"}
	got := Filter(expenses, c.Match)
	if len(got) != 1 || got[0].Description != "Electricity Bill" {
		t.Errorf("Filter() = %v, want only Electricity Bill", got)
	}

	// Same search but a non-matching category must yield nothing.
	c.Category = "Transport"
	if got := Filter(expenses, c.Match); len(got) != 0 {
		t.Errorf("Filter() = %v, want empty", got)
	}
}

func TestExpenseCriteria_DateFilter(t *testing.T) {
	expenses := testExpenses()
	c := ExpenseCriteria{Date: date.MustParse("2024-12-25")}
	got := Filter(expenses, c.Match)
	if len(got) != 1 || got[0].Description != "Material Transportation" {
		t.Errorf("Filter() = %v, want only Material Transportation", got)
	}
}

func TestBillCriteria_StatusFilter(t *testing.T) {
	paid := sampleBill()
	paid.BillNumber = "INV-002"
	paid.CustomerName = "XYZ Fashion House"
	paid.Status = Paid
	bills := []Bill{sampleBill(), paid}

	status := Paid
	got := Filter(bills, BillCriteria{Status: &status}.Match)
	if len(got) != 1 || got[0].BillNumber != "INV-002" {
		t.Errorf("Filter() = %v, want only INV-002", got)
	}

	// nil status leaves the filter inactive.
	if got := Filter(bills, BillCriteria{}.Match); len(got) != 2 {
		t.Errorf("Filter() = %v, want both bills", got)
	}
}

func TestBillCriteria_SearchMatchesNumberAndCustomer(t *testing.T) {
	bills := []Bill{sampleBill()}
	for _, term := range []string{"inv-001", "abc garments", "ABC"} {
		if got := Filter(bills, BillCriteria{Search: term}.Match); len(got) != 1 {
			t.Errorf("Filter(%q) = %v, want one bill", term, got)
		}
	}
	if got := Filter(bills, BillCriteria{Search: "nobody"}.Match); len(got) != 0 {
		t.Errorf("Filter() = %v, want empty", got)
	}
}

func TestWorkerCriteria_SearchMatchesNameAndPosition(t *testing.T) {
	workers := []Worker{
		{Name: "Rajesh Kumar", Position: "Machine Operator"},
		{Name: "Priya Sharma", Position: "Quality Inspector"},
	}
	if got := Filter(workers, WorkerCriteria{Search: "inspector"}.Match); len(got) != 1 || got[0].Name != "Priya Sharma" {
		t.Errorf("Filter() = %v, want only Priya Sharma", got)
	}
}

func TestMaterialCriteria_SearchMatchesSupplier(t *testing.T) {
	materials := []RawMaterial{
		{Name: "Cotton Fabric", Supplier: "ABC Textiles", Category: "Fabric"},
		{Name: "Polyester Thread", Supplier: "XYZ Suppliers", Category: "Thread"},
	}
	if got := Filter(materials, MaterialCriteria{Search: "xyz"}.Match); len(got) != 1 || got[0].Name != "Polyester Thread" {
		t.Errorf("Filter() = %v, want only Polyester Thread", got)
	}
}
