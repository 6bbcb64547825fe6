package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/workshop"
	"github.com/google/subcommands"
)

type stockCmd struct {
	search string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "list inventory items" }
func (*stockCmd) Usage() string {
	return `bms stock [-search <term>]

  Lists the inventory with quantity on hand, value and low-stock alerts.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only items whose name or category contains the term.")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	criteria := workshop.StockCriteria{Search: c.search}
	items := workshop.Filter(session.Stock.Store().List(), criteria.Match)

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		alert := ""
		if it.LowStock() {
			alert = "LOW"
		}
		rows = append(rows, []string{
			it.Name, it.Category,
			fmt.Sprintf("%s %s", it.Quantity, it.Unit),
			it.Price.String(), it.TotalValue().String(),
			it.LastUpdated.String(), alert,
		})
	}

	md := "# Stock\n\n" + mdTable([]string{"Item", "Category", "On Hand", "Price", "Value", "Updated", "Alert"}, rows)
	summary := workshop.NewStockSummary(items)
	md += fmt.Sprintf("\n%d items, total value %s, %d low on stock.\n", summary.ItemCount, summary.TotalValue, summary.LowStockCount)
	printMarkdown(md)

	return subcommands.ExitSuccess
}
