package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal. When no ANSI renderer can
// be built (e.g. output is not a terminal) it prints the raw markdown.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// mdTable builds a markdown table from a header and rows.
func mdTable(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return b.String()
}
