package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

func tableStyle(name string) table.Style {
	switch name {
	case "light":
		return table.StyleLight
	case "ascii":
		return table.StyleDefault
	default:
		return table.StyleRounded
	}
}

func renderTable(headers []string, rows [][]string, style string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(tableStyle(style))

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
