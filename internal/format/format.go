// Package format renders trainer reports as terminal or Markdown tables.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects how a Table renders.
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal table
	Markdown             // GitHub-flavoured Markdown
)

// Table collects rows once and renders them in the Mode it was created with.
type Table struct {
	w    table.Writer
	mode Mode
	cols map[int]*table.ColumnConfig
}

// NewTable returns an empty table for m.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{w: w, mode: m, cols: map[int]*table.ColumnConfig{}}
}

// Title sets a caption rendered above the table.
func (t *Table) Title(s string) { t.w.SetTitle(s) }

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) { t.w.AppendRow(table.Row(vals)) }

// Footer appends a footer row.
func (t *Table) Footer(vals ...any) { t.w.AppendFooter(table.Row(vals)) }

// AlignRight right-aligns the given 1-based columns.
func (t *Table) AlignRight(cols ...int) { t.align(text.AlignRight, cols) }

// AlignCenter centers the given 1-based columns.
func (t *Table) AlignCenter(cols ...int) { t.align(text.AlignCenter, cols) }

// Wrap caps the width of a free-text column. Only ASCII tables wrap;
// Markdown cells stay on one line.
func (t *Table) Wrap(col, width int) {
	if t.mode != ASCII {
		return
	}
	t.col(col).WidthMax = width
}

func (t *Table) align(a text.Align, cols []int) {
	for _, c := range cols {
		t.col(c).Align = a
	}
}

func (t *Table) col(n int) *table.ColumnConfig {
	cc, ok := t.cols[n]
	if !ok {
		cc = &table.ColumnConfig{Number: n}
		t.cols[n] = cc
	}
	return cc
}

// String renders the table.
func (t *Table) String() string {
	cfgs := make([]table.ColumnConfig, 0, len(t.cols))
	for _, cc := range t.cols {
		cfgs = append(cfgs, *cc)
	}
	t.w.SetColumnConfigs(cfgs)
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}
