package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/workshop"
	"github.com/google/subcommands"
)

type workersCmd struct {
	search string
}

func (*workersCmd) Name() string     { return "workers" }
func (*workersCmd) Synopsis() string { return "list workers and their salary position" }
func (*workersCmd) Usage() string {
	return `bms workers [-search <term>]

  Lists the workers with days worked, wages earned and the remaining balance.
`
}

func (c *workersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only workers whose name or position contains the term.")
}

func (c *workersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	criteria := workshop.WorkerCriteria{Search: c.search}
	workers := workshop.Filter(session.Workers.Store().List(), criteria.Match)

	rows := make([][]string, 0, len(workers))
	for _, w := range workers {
		rows = append(rows, []string{
			w.Name, w.Position,
			w.DailyWage.String(), w.TotalDaysWorked.String(),
			w.TotalSalaryEarned().String(), w.SalaryPaid.String(),
			w.Advance.String(), w.RemainingSalary().String(),
		})
	}

	md := "# Workers\n\n" + mdTable([]string{"Name", "Position", "Daily Wage", "Days", "Earned", "Paid", "Advance", "Remaining"}, rows)
	summary := workshop.NewWagesSummary(workers)
	md += fmt.Sprintf("\n%d workers, %s earned, %s pending.\n", summary.WorkerCount, summary.TotalEarned, summary.TotalPending)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
