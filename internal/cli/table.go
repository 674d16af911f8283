package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	tablePadding = 2
	emptyCell    = "-"
)

// writeTable aligns headers and rows into space-padded columns.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = formatCell(cell)
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	return writer.Flush()
}

// formatCell keeps blank values visible as a placeholder column entry.
func formatCell(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return emptyCell
	}
	return value
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
