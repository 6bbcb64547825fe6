package workshop

import (
	"errors"
	"fmt"

	"github.com/etnz/workshop/date"
)

// Worker is an employee paid a daily wage.
type Worker struct {
	ID              string
	Name            string
	Position        string
	DailyWage       Money
	PhoneNumber     string
	JoinDate        date.Date
	TotalDaysWorked Quantity
	SalaryPaid      Money
	Advance         Money
}

func (w Worker) Identity() string              { return w.ID }
func (w Worker) withIdentity(id string) Worker { w.ID = id; return w }

// TotalSalaryEarned returns the wages earned for the days worked so far.
func (w Worker) TotalSalaryEarned() Money { return w.DailyWage.Mul(w.TotalDaysWorked) }

// RemainingSalary returns earned wages not yet paid out. It is negative
// when the worker was paid more than earned.
func (w Worker) RemainingSalary() Money { return w.TotalSalaryEarned().Sub(w.SalaryPaid) }

// Validate checks the worker record before commit.
func (w Worker) Validate() error {
	return errors.Join(
		required("name", w.Name),
		required("position", w.Position),
		required("phone number", w.PhoneNumber),
		nonNegativeM("daily wage", w.DailyWage),
		nonNegativeQ("days worked", w.TotalDaysWorked),
		nonNegativeM("salary paid", w.SalaryPaid),
		nonNegativeM("advance", w.Advance),
	)
}

// Attendance is the narrow update applied to a worker by the attendance
// flow: it replaces the days worked, salary paid and advance, leaving every
// other worker field untouched.
type Attendance struct {
	DaysWorked Quantity
	SalaryPaid Money
	Advance    Money
}

// Validate checks the attendance input.
func (a Attendance) Validate() error {
	return errors.Join(
		nonNegativeQ("days worked", a.DaysWorked),
		nonNegativeM("salary paid", a.SalaryPaid),
		nonNegativeM("advance", a.Advance),
	)
}

// apply copies the attendance fields onto the worker.
func (a Attendance) apply(w Worker) Worker {
	w.TotalDaysWorked = a.DaysWorked
	w.SalaryPaid = a.SalaryPaid
	w.Advance = a.Advance
	return w
}

// String summarizes the salary position, e.g. for the attendance form footer.
func (w Worker) String() string {
	return fmt.Sprintf("%s (%s) earned %s, remaining %s", w.Name, w.Position, w.TotalSalaryEarned(), w.RemainingSalary())
}
