// Package cmd implements the CLI application to manage the workshop.
package cmd

import (
	"flag"
	"time"

	"github.com/etnz/workshop"
	"github.com/etnz/workshop/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&topicCmd{}, "reports")

	c.Register(&stockCmd{}, "collections")
	c.Register(&workersCmd{}, "collections")
	c.Register(&materialsCmd{}, "collections")
	c.Register(&expensesCmd{}, "collections")
	c.Register(&billsCmd{}, "collections")

	c.Register(&billCmd{}, "billing")
	c.Register(&attendanceCmd{}, "workers")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var empty = flag.Bool("empty", false, "Start with an empty session instead of the sample data")

// openSession returns the session every subcommand works on. All state is in
// memory: a run starts from the sample data (or empty with -empty) and is
// gone when the process exits.
func openSession() (*workshop.Session, error) {
	s := workshop.NewSession(time.Now)
	if *empty {
		return s, nil
	}
	if err := seed(s); err != nil {
		return nil, err
	}
	return s, nil
}

// seed populates the session with the sample business data.
func seed(s *workshop.Session) error {
	stock := []workshop.StockItem{
		{Name: "Raw Cotton", Category: "Materials", Quantity: workshop.Q(500), Unit: "kg", Price: workshop.M(120, "INR"), MinStock: workshop.Q(100)},
		{Name: "Cotton Shirts", Category: "Finished Goods", Quantity: workshop.Q(80), Unit: "pieces", Price: workshop.M(450, "INR"), MinStock: workshop.Q(100)},
	}
	for _, it := range stock {
		s.Stock.Create(it)
		if _, err := s.Stock.Submit(); err != nil {
			return err
		}
	}

	workers := []workshop.Worker{
		{Name: "Rajesh Kumar", Position: "Machine Operator", DailyWage: workshop.M(500, "INR"), PhoneNumber: "9876543210",
			JoinDate: date.MustParse("2024-01-15"), TotalDaysWorked: workshop.Q(22), SalaryPaid: workshop.M(8000, "INR"), Advance: workshop.M(2000, "INR")},
		{Name: "Priya Sharma", Position: "Quality Inspector", DailyWage: workshop.M(400, "INR"), PhoneNumber: "9876543211",
			JoinDate: date.MustParse("2024-03-01"), TotalDaysWorked: workshop.Q(20), SalaryPaid: workshop.M(6000, "INR")},
	}
	for _, w := range workers {
		s.Workers.Create(w)
		if _, err := s.Workers.Submit(); err != nil {
			return err
		}
	}

	materials := []workshop.RawMaterial{
		{Name: "Cotton Fabric", Supplier: "ABC Textiles", PurchaseDate: date.MustParse("2024-12-20"),
			Quantity: workshop.Q(1000), Unit: "meters", TotalAmount: workshop.M(50000, "INR"), AmountPaid: workshop.M(30000, "INR"), Category: "Fabric"},
		{Name: "Polyester Thread", Supplier: "XYZ Suppliers", PurchaseDate: date.MustParse("2024-12-22"),
			Quantity: workshop.Q(200), Unit: "rolls", TotalAmount: workshop.M(8000, "INR"), AmountPaid: workshop.M(8000, "INR"), Category: "Thread"},
	}
	for _, m := range materials {
		s.Materials.Create(m)
		if _, err := s.Materials.Submit(); err != nil {
			return err
		}
	}

	expenses := []workshop.Expense{
		{Date: date.MustParse("2024-12-26"), Category: "Utilities", Description: "Electricity Bill", Amount: workshop.M(8500, "INR"), PaymentMethod: "Bank Transfer"},
		{Date: date.MustParse("2024-12-25"), Category: "Transport", Description: "Material Transportation", Amount: workshop.M(2500, "INR"), PaymentMethod: "Cash"},
		{Date: date.MustParse("2024-12-24"), Category: "Maintenance", Description: "Machine Repair", Amount: workshop.M(5000, "INR"), PaymentMethod: "UPI"},
	}
	for _, e := range expenses {
		s.Expenses.Create(e)
		if _, err := s.Expenses.Submit(); err != nil {
			return err
		}
	}

	d := s.Bills.Create()
	d.BillNumber = "INV-001"
	d.CustomerName = "ABC Garments Ltd"
	d.CustomerAddress = "123 Market Street, Mumbai, Maharashtra 400001"
	d.CustomerGSTN = "27ABCDE1234F1Z5"
	d.Date = date.MustParse("2024-12-26")
	d.DueDate = date.MustParse("2025-01-25")
	d.Status = workshop.Sent
	d.SetItemName(0, "Cotton Shirts")
	d.SetItemQuantity(0, workshop.Q(100))
	d.SetItemUnit(0, "pieces")
	d.SetItemRate(0, workshop.M(450, "INR"))
	if _, err := s.Bills.Submit(); err != nil {
		return err
	}

	return nil
}
