package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/workshop"
	"github.com/etnz/workshop/date"
	"github.com/google/subcommands"
)

type expensesCmd struct {
	search   string
	category string
	date     string
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list business expenses" }
func (*expensesCmd) Usage() string {
	return `bms expenses [-search <term>] [-category <category>] [-d <date>]

  Lists the expenses. Active filters are combined: an expense is listed only
  when it matches all of them.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only expenses whose description or category contains the term.")
	f.StringVar(&c.category, "category", "", "Only expenses of this exact category.")
	f.StringVar(&c.date, "d", "", "Only expenses on this date.")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	criteria := workshop.ExpenseCriteria{Search: c.search, Category: c.category}
	if c.date != "" {
		on, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		criteria.Date = on
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	expenses := workshop.Filter(session.Expenses.Store().List(), criteria.Match)

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Date.String(), e.Category, e.Description,
			e.Amount.String(), e.PaymentMethod, e.BillNumber,
		})
	}

	md := "# Expenses\n\n" + mdTable([]string{"Date", "Category", "Description", "Amount", "Payment", "Bill"}, rows)
	summary := workshop.NewExpenseSummary(expenses)
	md += fmt.Sprintf("\nTotal %s.\n", summary.Total)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
