// Package export turns committed bills into exchange formats: an xlsx
// workbook for spreadsheets, a JSON document for other tools, and a jsonpath
// query facility over that document.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/etnz/workshop"
)

// Workbook builds an xlsx workbook for the given bill. The caller owns the
// returned file and must Close it. The totals rows carry the bill's own
// derived amounts, never a spreadsheet formula.
func Workbook(b workshop.Bill) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	head := [][]interface{}{
		{"Bill", b.BillNumber},
		{"Customer", b.CustomerName},
		{"Address", b.CustomerAddress},
		{"GSTN", b.CustomerGSTN},
		{"Date", b.Date.String()},
		{"Due Date", b.DueDate.String()},
		{"Status", b.Status.String()},
		{},
		{"Item", "Quantity", "Unit", "Rate", "Amount"},
	}
	row := 1
	for _, r := range head {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("building workbook for %s: %w", b.BillNumber, err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			f.Close()
			return nil, fmt.Errorf("building workbook for %s: %w", b.BillNumber, err)
		}
		row++
	}

	for _, it := range b.Items {
		r := []interface{}{it.Name, it.Quantity.String(), it.Unit, it.Rate.String(), it.Amount().String()}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("building workbook for %s: %w", b.BillNumber, err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			f.Close()
			return nil, fmt.Errorf("building workbook for %s: %w", b.BillNumber, err)
		}
		row++
	}

	row++ // blank line before the totals block
	totals := [][]interface{}{
		{"Subtotal", "", "", "", b.Subtotal().String()},
		{fmt.Sprintf("GST (%s)", b.GSTRate), "", "", "", b.GSTAmount().String()},
		{"Total", "", "", "", b.Total().String()},
	}
	for _, r := range totals {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("building workbook for %s: %w", b.BillNumber, err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			f.Close()
			return nil, fmt.Errorf("building workbook for %s: %w", b.BillNumber, err)
		}
		row++
	}

	return f, nil
}
