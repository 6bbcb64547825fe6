package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/workshop"
	"github.com/google/subcommands"
)

type billsCmd struct {
	search string
	status string
}

func (*billsCmd) Name() string     { return "bills" }
func (*billsCmd) Synopsis() string { return "list customer bills" }
func (*billsCmd) Usage() string {
	return `bms bills [-search <term>] [-status <status>]

  Lists the bills with their totals and payment status.
`
}

func (c *billsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only bills whose number or customer contains the term.")
	f.StringVar(&c.status, "status", "", "Only bills with this status (Draft, Sent, Paid, Overdue).")
}

func (c *billsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	criteria := workshop.BillCriteria{Search: c.search}
	if c.status != "" {
		status, err := workshop.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		criteria.Status = &status
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	bills := workshop.Filter(session.Bills.Store().List(), criteria.Match)

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			b.BillNumber, b.CustomerName,
			b.Date.String(), b.DueDate.String(),
			b.Total().String(), b.Status.String(),
		})
	}

	md := "# Bills\n\n" + mdTable([]string{"Number", "Customer", "Date", "Due", "Total", "Status"}, rows)
	summary := workshop.NewBillingSummary(bills)
	md += fmt.Sprintf("\nBilled %s, paid %s, pending %s.\n", summary.TotalBilled, summary.Paid, summary.Pending)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
