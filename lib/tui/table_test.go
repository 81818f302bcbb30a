// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/storyboard/lib/model"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestFitColumn(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"pads short text", "abc", 6, "abc   "},
		{"exact width unchanged", "abcdef", 6, "abcdef"},
		{"truncates with ellipsis", "abcdefgh", 6, "abc..."},
		{"empty text", "", 3, "   "},
		{"zero width", "abc", 0, ""},
		{"width below ellipsis", "abcdef", 2, "ab"},
		{"width equal to ellipsis", "abcdef", 3, "abc"},
		{"wide runes measured in cells", "日本語テキスト", 8, "日本... "},
		{"wide rune straddling boundary", "日本語", 5, "日..."},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FitColumn(test.text, test.width)
			if got != test.want {
				t.Errorf("FitColumn(%q, %d) = %q, want %q", test.text, test.width, got, test.want)
			}
			if width := ansi.StringWidth(got); width != test.width {
				t.Errorf("FitColumn(%q, %d) width = %d", test.text, test.width, width)
			}
		})
	}
}

func TestTable_Layout(t *testing.T) {
	table := NewTable(
		Column{Title: "id", Width: 11},
		Column{Title: "name", Width: 32},
		Column{Title: "status", Width: 17},
	)

	if got := table.Width(); got != 66 {
		t.Errorf("Width = %d, want 66", got)
	}

	rule := table.Rule("EPICS")
	wantRule := strings.Repeat("-", 29) + " EPICS " + strings.Repeat("-", 30)
	if rule != wantRule {
		t.Errorf("Rule =\n%q\nwant\n%q", rule, wantRule)
	}

	header := table.Header()
	want := "    id     " + " | " +
		strings.Repeat(" ", 14) + "name" + strings.Repeat(" ", 14) + " | " +
		"     status      "
	if header != want {
		t.Errorf("Header =\n%q\nwant\n%q", header, want)
	}

	row := table.Row(Plain("1"), Plain("Epic - Project 1"), Plain(model.StatusInProgress.String()))
	wantRow := "1           | Epic - Project 1                 | In Progress      "
	if row != wantRow {
		t.Errorf("Row =\n%q\nwant\n%q", row, wantRow)
	}
}

func TestTable_RowMissingCells(t *testing.T) {
	table := NewTable(Column{Title: "a", Width: 3}, Column{Title: "b", Width: 3})
	if got := table.Row(Plain("x")); got != "x   |    " {
		t.Errorf("Row = %q", got)
	}
	if got := table.Row(Plain("x"), Plain("y"), Plain("ignored")); got != "x   | y  " {
		t.Errorf("Row with extra cell = %q", got)
	}
}

func TestTable_StyledCellKeepsWidth(t *testing.T) {
	table := NewTable(Column{Title: "status", Width: 13})
	row := table.Row(Cell{Text: "Resolved", Style: DefaultTheme.StatusStyle(model.StatusResolved)})
	if width := ansi.StringWidth(row); width != 13 {
		t.Errorf("styled row width = %d, want 13", width)
	}
}

func TestStatusColor(t *testing.T) {
	theme := DefaultTheme
	colors := map[model.Status]lipgloss.Color{
		model.StatusOpen:       theme.StatusOpen,
		model.StatusInProgress: theme.StatusInProgress,
		model.StatusResolved:   theme.StatusResolved,
		model.StatusClosed:     theme.StatusClosed,
		model.Status("Bogus"):  theme.FaintText,
	}
	for status, want := range colors {
		if got := theme.StatusColor(status); got != want {
			t.Errorf("StatusColor(%q) = %q, want %q", status, got, want)
		}
	}
}
