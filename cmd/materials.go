package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/workshop"
	"github.com/google/subcommands"
)

type materialsCmd struct {
	search string
}

func (*materialsCmd) Name() string     { return "materials" }
func (*materialsCmd) Synopsis() string { return "list raw material purchases" }
func (*materialsCmd) Usage() string {
	return `bms materials [-search <term>]

  Lists the raw material purchases with their payment status.
`
}

func (c *materialsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only purchases whose name, supplier or category contains the term.")
}

func (c *materialsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	criteria := workshop.MaterialCriteria{Search: c.search}
	materials := workshop.Filter(session.Materials.Store().List(), criteria.Match)

	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, []string{
			m.PurchaseDate.String(), m.Name, m.Supplier, m.Category,
			fmt.Sprintf("%s %s", m.Quantity, m.Unit),
			m.TotalAmount.String(), m.AmountPaid.String(), m.RemainingAmount().String(),
		})
	}

	md := "# Raw Materials\n\n" + mdTable([]string{"Date", "Material", "Supplier", "Category", "Quantity", "Total", "Paid", "Remaining"}, rows)
	summary := workshop.NewMaterialSummary(materials)
	md += fmt.Sprintf("\nPurchases %s, paid %s, pending %s.\n", summary.PurchaseValue, summary.AmountPaid, summary.AmountPending)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
