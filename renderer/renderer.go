// Package renderer turns workshop records and summaries into markdown
// documents, ready for the terminal or for export.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderBill renders a customer bill to a markdown string.
func RenderBill(v *BillView) string {
	partials := map[string]string{
		"bill_title":  "bill_title.md",
		"bill_items":  "bill_items.md",
		"bill_totals": "bill_totals.md",
	}
	return renderTemplate("bill", "bill.md", partials, v)
}

// RenderDashboard renders the business-wide dashboard to a markdown string.
func RenderDashboard(v *DashboardView) string {
	partials := map[string]string{
		"dashboard_stock":     "dashboard_stock.md",
		"dashboard_wages":     "dashboard_wages.md",
		"dashboard_materials": "dashboard_materials.md",
		"dashboard_expenses":  "dashboard_expenses.md",
		"dashboard_billing":   "dashboard_billing.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
