package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/workshop"
	"github.com/etnz/workshop/export"
	"github.com/etnz/workshop/renderer"
	"github.com/google/subcommands"
)

type billCmd struct {
	number string
	query  string
	output string
	json   bool
}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "show or export a single bill" }
func (*billCmd) Usage() string {
	return `bms bill -n <number> [-q <jsonpath>] [-o <file.xlsx>] [-json]

  Shows one bill as a rendered document. With -q, evaluates a jsonpath
  expression against the bill (e.g. '$.totalAmount'). With -o, writes an
  xlsx workbook. With -json, prints the bill's JSON document.
`
}

func (c *billCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Bill number to show, e.g. INV-001.")
	f.StringVar(&c.query, "q", "", "jsonpath expression to evaluate against the bill.")
	f.StringVar(&c.output, "o", "", "Write the bill as an xlsx workbook to this file.")
	f.BoolVar(&c.json, "json", false, "Print the bill's JSON document.")
}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" {
		fmt.Fprintln(os.Stderr, "Error: -n <number> is required")
		return subcommands.ExitUsageError
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	bill, ok := findBill(session, c.number)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no bill %q\n", c.number)
		return subcommands.ExitFailure
	}

	switch {
	case c.query != "":
		val, err := export.Query(bill, c.query)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println(val)

	case c.output != "":
		wb, err := export.Workbook(bill)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer wb.Close()
		if err := wb.SaveAs(c.output); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s to %s\n", bill.BillNumber, c.output)

	case c.json:
		doc, err := export.Document(bill)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(doc))

	default:
		printMarkdown(renderer.RenderBill(renderer.NewBillView(bill)))
	}

	return subcommands.ExitSuccess
}

// findBill looks a bill up by its human-facing number.
func findBill(s *workshop.Session, number string) (workshop.Bill, bool) {
	for _, b := range s.Bills.Store().List() {
		if b.BillNumber == number {
			return b, true
		}
	}
	return workshop.Bill{}, false
}
