// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bureau-foundation/storyboard/lib/model"
	"github.com/bureau-foundation/storyboard/lib/store"
	"github.com/bureau-foundation/storyboard/lib/tui"
)

// ErrScreenStale means the entity a screen is bound to no longer exists.
// The returned error also wraps the store's not-found sentinel, so
// callers can distinguish a vanished epic from a vanished story.
var ErrScreenStale = errors.New("screen stale")

// Screen is one interactive view.
type Screen interface {
	// Render writes the view to w. Fails with ErrScreenStale when the
	// bound entity is gone, or with the store's error when state
	// cannot be read.
	Render(w io.Writer) error

	// Interpret maps one line of input to an Intent. Unrecognized
	// input yields (nil, nil). Input is matched exactly; the caller
	// trims it first.
	Interpret(input string) (Intent, error)
}

// Table layouts shared by the screens.
var (
	listTable = tui.NewTable(
		tui.Column{Title: "id", Width: 11},
		tui.Column{Title: "name", Width: 32},
		tui.Column{Title: "status", Width: 17},
	)
	detailTable = tui.NewTable(
		tui.Column{Title: "id", Width: 5},
		tui.Column{Title: "name", Width: 12},
		tui.Column{Title: "description", Width: 27},
		tui.Column{Title: "status", Width: 13},
	)
)

// page accumulates rendered lines so a screen writes in one call.
type page struct {
	theme   tui.Theme
	builder strings.Builder
}

func newPage() *page {
	return &page{theme: tui.DefaultTheme}
}

func (p *page) line(text string) {
	p.builder.WriteString(text)
	p.builder.WriteByte('\n')
}

func (p *page) blank() {
	p.builder.WriteByte('\n')
}

// section writes a dashed title rule and the column header for table.
func (p *page) section(table tui.Table, title string) {
	p.line(p.theme.TitleStyle().Render(table.Rule(title)))
	p.line(p.theme.HeaderStyle().Render(table.Header()))
}

// listRow writes an id | name | status row.
func (p *page) listRow(id uint32, name string, status model.Status) {
	p.line(listTable.Row(
		tui.Plain(formatID(id)),
		tui.Plain(name),
		p.statusCell(status),
	))
}

// detailRow writes an id | name | description | status row.
func (p *page) detailRow(id uint32, name, description string, status model.Status) {
	p.line(detailTable.Row(
		tui.Plain(formatID(id)),
		tui.Plain(name),
		tui.Plain(description),
		p.statusCell(status),
	))
}

func (p *page) statusCell(status model.Status) tui.Cell {
	return tui.Cell{Text: status.String(), Style: p.theme.StatusStyle(status)}
}

// help writes the key legend, preceded by two blank lines.
func (p *page) help(text string) {
	p.blank()
	p.blank()
	p.line(p.theme.HelpStyle().Render(text))
}

func (p *page) writeTo(w io.Writer) error {
	_, err := io.WriteString(w, p.builder.String())
	return err
}

func formatID(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parseID parses input as an entity id. Anything other than plain
// decimal digits fitting in 32 bits is rejected.
func parseID(input string) (uint32, bool) {
	id, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}

func staleEpic(epicID uint32) error {
	return fmt.Errorf("%w: %w: %d", ErrScreenStale, store.ErrEpicNotFound, epicID)
}

func staleStory(storyID uint32) error {
	return fmt.Errorf("%w: %w: %d", ErrScreenStale, store.ErrStoryNotFound, storyID)
}
