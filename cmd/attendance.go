package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/workshop"
	"github.com/google/subcommands"
)

type attendanceCmd struct {
	worker  string
	days    float64
	paid    float64
	advance float64
}

func (*attendanceCmd) Name() string     { return "attendance" }
func (*attendanceCmd) Synopsis() string { return "update a worker's attendance and payments" }
func (*attendanceCmd) Usage() string {
	return `bms attendance -w <worker> -days <n> [-paid <amount>] [-advance <amount>]

  Replaces the days worked, salary paid and advance of one worker. All other
  worker fields are left untouched; earned and remaining wages are derived.
`
}

func (c *attendanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.worker, "w", "", "Worker name (exact, case-insensitive).")
	f.Float64Var(&c.days, "days", 0, "Total days worked.")
	f.Float64Var(&c.paid, "paid", 0, "Total salary paid out so far.")
	f.Float64Var(&c.advance, "advance", 0, "Advance handed out.")
}

func (c *attendanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.worker == "" {
		fmt.Fprintln(os.Stderr, "Error: -w <worker> is required")
		return subcommands.ExitUsageError
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	worker, ok := findWorker(session, c.worker)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no worker %q\n", c.worker)
		return subcommands.ExitFailure
	}

	updated, err := session.UpdateAttendance(worker.Identity(), workshop.Attendance{
		DaysWorked: workshop.Q(c.days),
		SalaryPaid: workshop.M(c.paid, workshop.DefaultCurrency),
		Advance:    workshop.M(c.advance, workshop.DefaultCurrency),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(updated)
	return subcommands.ExitSuccess
}

// findWorker looks a worker up by exact, case-insensitive name.
func findWorker(s *workshop.Session, name string) (workshop.Worker, bool) {
	for _, w := range s.Workers.Store().List() {
		if strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return workshop.Worker{}, false
}
