package workshop

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/workshop/date"
)

func sampleStockItem() StockItem {
	return StockItem{
		Name:     "Raw Cotton",
		Category: "Materials",
		Quantity: Q(500),
		Unit:     "kg",
		Price:    INR(120),
		MinStock: Q(100),
	}
}

func sampleWorker() Worker {
	return Worker{
		Name:            "Rajesh Kumar",
		Position:        "Machine Operator",
		DailyWage:       INR(500),
		PhoneNumber:     "9876543210",
		JoinDate:        date.MustParse("2024-01-15"),
		TotalDaysWorked: Q(22),
		SalaryPaid:      INR(8000),
		Advance:         INR(2000),
	}
}

func TestScreen_CreateSubmit(t *testing.T) {
	s := NewSession(fixedClock(testInstant))

	s.Stock.Create(sampleStockItem())
	committed, err := s.Stock.Submit()
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if committed.Identity() == "" {
		t.Error("Submit() in Creating state must assign an identity")
	}
	if got := committed.LastUpdated.String(); got != "2024-12-26" {
		t.Errorf("LastUpdated = %s, want 2024-12-26", got)
	}
	if s.Stock.Store().Len() != 1 {
		t.Errorf("store has %d records, want 1", s.Stock.Store().Len())
	}
	if s.Stock.Draft() != nil {
		t.Error("Submit() must close the edit session")
	}
}

func TestScreen_SubmitValidationFailureCommitsNothing(t *testing.T) {
	s := NewSession(fixedClock(testInstant))

	item := sampleStockItem()
	item.Name = "" // mandatory
	s.Stock.Create(item)

	_, err := s.Stock.Submit()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Submit() = %v, want ErrValidation", err)
	}
	if s.Stock.Store().Len() != 0 {
		t.Error("failed Submit() must not commit a partial record")
	}
	if s.Stock.Draft() == nil {
		t.Error("failed Submit() should keep the draft open for correction")
	}
}

func TestScreen_EditIsAValueCopy(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	s.Stock.Create(sampleStockItem())
	committed, _ := s.Stock.Submit()

	draft, err := s.Stock.Edit(committed.Identity())
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	draft.Quantity = Q(50)

	// Until submit, the store must not see the edit.
	stored, _ := s.Stock.Store().Get(committed.Identity())
	if !stored.Quantity.Equal(Q(500)) {
		t.Fatal("editing the draft mutated the store before submit")
	}

	updated, err := s.Stock.Submit()
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if updated.Identity() != committed.Identity() {
		t.Error("Submit() in Editing state must preserve the identity")
	}
	if !updated.Quantity.Equal(Q(50)) {
		t.Errorf("Quantity = %v, want 50", updated.Quantity)
	}
	if s.Stock.Store().Len() != 1 {
		t.Errorf("store has %d records, want 1", s.Stock.Store().Len())
	}
}

func TestScreen_CancelDiscardsDraft(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	s.Stock.Create(sampleStockItem())
	committed, _ := s.Stock.Submit()

	draft, _ := s.Stock.Edit(committed.Identity())
	draft.Quantity = Q(1)
	s.Stock.Cancel()

	stored, _ := s.Stock.Store().Get(committed.Identity())
	if !stored.Quantity.Equal(Q(500)) {
		t.Error("Cancel() must discard the draft without partial writes")
	}
	if s.Stock.Draft() != nil {
		t.Error("Cancel() must close the edit session")
	}
}

func TestScreen_ResubmitUnchangedIsIdempotent(t *testing.T) {
	later := testInstant.Add(48 * time.Hour)
	now := testInstant
	s := NewSession(func() time.Time { return now })

	s.Stock.Create(sampleStockItem())
	before, _ := s.Stock.Submit()

	now = later
	if _, err := s.Stock.Edit(before.Identity()); err != nil {
		t.Fatal(err)
	}
	after, err := s.Stock.Submit()
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	// Identical except the refreshed LastUpdated stamp.
	if got, want := after.LastUpdated, date.Of(later); got != want {
		t.Errorf("LastUpdated = %v, want %v", got, want)
	}
	after.LastUpdated = before.LastUpdated
	if after != before {
		t.Errorf("resubmit changed the record: %+v != %+v", after, before)
	}
}

func TestScreen_EditUnknownIdentity(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	if _, err := s.Stock.Edit("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Edit() = %v, want ErrNotFound", err)
	}
}

func TestScreen_SubmitWithoutDraft(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	if _, err := s.Stock.Submit(); !errors.Is(err, ErrInvariant) {
		t.Errorf("Submit() without draft = %v, want ErrInvariant", err)
	}
}

func TestBillScreen_CreateGeneratesNumberOnce(t *testing.T) {
	s := NewSession(fixedClock(testInstant))

	d := s.Bills.Create()
	number := d.BillNumber
	if number == "" {
		t.Fatal("Create() must generate a bill number")
	}

	d.CustomerName = "ABC Garments Ltd"
	d.CustomerAddress = "123 Market Street, Mumbai"
	d.CustomerGSTN = "27ABCDE1234F1Z5"
	d.DueDate = d.Date.Add(30)
	d.SetItemName(0, "Cotton Shirts")
	d.SetItemQuantity(0, Q(100))
	d.SetItemRate(0, INR(450))

	committed, err := s.Bills.Submit()
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if committed.BillNumber != number {
		t.Errorf("Submit() changed the bill number: %q, want %q", committed.BillNumber, number)
	}
	if !committed.Total().Equal(INR(53100)) {
		t.Errorf("Total() = %v, want 53100", committed.Total())
	}

	// Editing an existing bill never regenerates the number.
	d2, err := s.Bills.Edit(committed.Identity())
	if err != nil {
		t.Fatal(err)
	}
	if d2.BillNumber != number {
		t.Errorf("Edit() changed the bill number: %q, want %q", d2.BillNumber, number)
	}
}

func TestBillScreen_SubmitInvalidDraft(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	s.Bills.Create() // customer fields left blank

	_, err := s.Bills.Submit()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Submit() = %v, want ErrValidation", err)
	}
	if s.Bills.Store().Len() != 0 {
		t.Error("failed Submit() must not commit a partial bill")
	}
}

func TestSession_UpdateAttendance(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	s.Workers.Create(sampleWorker())
	w, err := s.Workers.Submit()
	if err != nil {
		t.Fatal(err)
	}

	updated, err := s.UpdateAttendance(w.Identity(), Attendance{
		DaysWorked: Q(22),
		SalaryPaid: INR(8000),
		Advance:    INR(2000),
	})
	if err != nil {
		t.Fatalf("UpdateAttendance() error: %v", err)
	}
	if got := updated.TotalSalaryEarned(); !got.Equal(INR(11000)) {
		t.Errorf("TotalSalaryEarned() = %v, want 11000", got)
	}
	if got := updated.RemainingSalary(); !got.Equal(INR(3000)) {
		t.Errorf("RemainingSalary() = %v, want 3000", got)
	}
	// All other fields stay untouched.
	if updated.Name != w.Name || updated.Position != w.Position || updated.PhoneNumber != w.PhoneNumber || updated.JoinDate != w.JoinDate {
		t.Errorf("UpdateAttendance() touched non-attendance fields: %+v", updated)
	}
}

func TestSession_UpdateAttendanceUnknownWorker(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	s.Workers.Create(sampleWorker())
	if _, err := s.Workers.Submit(); err != nil {
		t.Fatal(err)
	}

	_, err := s.UpdateAttendance("no-such-worker", Attendance{DaysWorked: Q(1)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateAttendance() = %v, want ErrNotFound", err)
	}
	// The collection must be left unchanged.
	list := s.Workers.Store().List()
	if len(list) != 1 || !list[0].TotalDaysWorked.Equal(Q(22)) {
		t.Errorf("UpdateAttendance() on unknown id modified the collection: %v", list)
	}
}

func TestSession_UpdateAttendanceRejectsNegatives(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	s.Workers.Create(sampleWorker())
	w, _ := s.Workers.Submit()

	_, err := s.UpdateAttendance(w.Identity(), Attendance{DaysWorked: Q(-1)})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("UpdateAttendance() = %v, want ErrValidation", err)
	}
}

func TestMaterialScreen_RejectsOverpayment(t *testing.T) {
	s := NewSession(fixedClock(testInstant))
	s.Materials.Create(RawMaterial{
		Name:         "Cotton Fabric",
		Supplier:     "ABC Textiles",
		PurchaseDate: date.MustParse("2024-12-20"),
		Quantity:     Q(1000),
		Unit:         "meters",
		TotalAmount:  INR(50000),
		AmountPaid:   INR(60000),
		Category:     "Fabric",
	})
	_, err := s.Materials.Submit()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Submit() = %v, want ErrValidation for overpayment", err)
	}
}
