// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ellipsis marks text cut short by FitColumn.
const ellipsis = "..."

// columnSeparator sits between adjacent cells.
const columnSeparator = " | "

// FitColumn returns text occupying exactly width terminal cells: longer
// text is cut to width-3 cells followed by "...", shorter text is
// right-padded with spaces. Wide runes that would straddle the boundary
// are dropped and the gap padded, so the result never exceeds width.
func FitColumn(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) > width {
		if width <= len(ellipsis) {
			text = ansi.Truncate(text, width, "")
		} else {
			text = ansi.Truncate(text, width, ellipsis)
		}
	}
	if gap := width - ansi.StringWidth(text); gap > 0 {
		text += strings.Repeat(" ", gap)
	}
	return text
}

// Column is one fixed-width table column.
type Column struct {
	Title string
	Width int
}

// Cell is one value placed in a table row. The style is applied after
// the text is fitted to its column, so styling never shifts the layout.
type Cell struct {
	Text  string
	Style lipgloss.Style
}

// Plain returns an unstyled cell.
func Plain(text string) Cell {
	return Cell{Text: text}
}

// Table lays out fixed-width rows separated by " | ".
type Table struct {
	Columns []Column
}

// NewTable returns a table with the given columns.
func NewTable(columns ...Column) Table {
	return Table{Columns: columns}
}

// Width returns the total width of a row in cells.
func (table Table) Width() int {
	total := 0
	for index, column := range table.Columns {
		if index > 0 {
			total += len(columnSeparator)
		}
		total += column.Width
	}
	return total
}

// Rule returns a line of dashes as wide as the table with title
// centered in it, e.g. "------ EPICS ------".
func (table Table) Rule(title string) string {
	label := " " + title + " "
	remaining := table.Width() - ansi.StringWidth(label)
	if remaining < 2 {
		return label
	}
	left := remaining / 2
	right := remaining - left
	return strings.Repeat("-", left) + label + strings.Repeat("-", right)
}

// Header returns the column titles, each centered within its column.
func (table Table) Header() string {
	cells := make([]string, len(table.Columns))
	for index, column := range table.Columns {
		cells[index] = center(column.Title, column.Width)
	}
	return strings.Join(cells, columnSeparator)
}

// Row fits each cell to its column and joins them. Missing trailing
// cells render blank; extra cells are ignored.
func (table Table) Row(cells ...Cell) string {
	rendered := make([]string, len(table.Columns))
	for index, column := range table.Columns {
		var cell Cell
		if index < len(cells) {
			cell = cells[index]
		}
		rendered[index] = cell.Style.Render(FitColumn(cell.Text, column.Width))
	}
	return strings.Join(rendered, columnSeparator)
}

// center pads text on both sides to width cells, with the odd space on
// the right. Text wider than width is fitted instead.
func center(text string, width int) string {
	textWidth := ansi.StringWidth(text)
	if textWidth >= width {
		return FitColumn(text, width)
	}
	left := (width - textWidth) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-textWidth-left)
}
