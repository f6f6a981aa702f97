// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/line.go
// Summary: DisplayLine, one captured row of terminal cells.
// Usage: Built by an emulator producer, read by snapshot consumers.
// Notes: Access is lazily padding. Out-of-range reads and writes extend
//        the line with blanks carrying the line's initial attributes,
//        so callers never index out of bounds.

package screen

import (
	"strings"

	"github.com/framegrace/texelgfx/cell"
)

// DisplayLine is one row of cells plus the per-line rendering flags a
// VT-style terminal attaches to whole rows. ReverseColor is inherited
// from the terminal's mode at capture time so scrollback keeps its
// original appearance even after the mode changes.
type DisplayLine struct {
	DoubleWidth        bool
	DoubleHeightTop    bool
	DoubleHeightBottom bool
	ReverseColor       bool

	cells []*cell.Cell
	blank cell.Attributes
}

// NewDisplayLine returns an empty line whose padding cells will carry
// attr.
func NewDisplayLine(attr cell.Attributes) *DisplayLine {
	return &DisplayLine{blank: attr}
}

// NewDisplayLineFromText lays out text into cells and wraps them in a
// line. Wide clusters occupy two cells.
func NewDisplayLineFromText(text string, attr cell.Attributes) *DisplayLine {
	l := NewDisplayLine(attr)
	l.cells = cell.LayoutString(text, attr)
	return l
}

// Len returns the number of materialized cells. Padding not yet forced
// into existence does not count.
func (l *DisplayLine) Len() int { return len(l.cells) }

// Cell returns the cell at column x, extending the line with blanks as
// needed. A negative column yields a detached blank so the caller
// still gets a usable cell.
func (l *DisplayLine) Cell(x int) *cell.Cell {
	if x < 0 {
		return l.newBlank()
	}
	l.extendTo(x)
	return l.cells[x]
}

// SetCell places c at column x, extending the line with blanks as
// needed. Negative columns are dropped.
func (l *DisplayLine) SetCell(x int, c *cell.Cell) {
	if x < 0 || c == nil {
		return
	}
	l.extendTo(x)
	l.cells[x] = c
}

// Append adds cells at the end of the line.
func (l *DisplayLine) Append(cells ...*cell.Cell) {
	l.cells = append(l.cells, cells...)
}

// Cells exposes the materialized cells. Callers treating the line as a
// snapshot must not mutate them.
func (l *DisplayLine) Cells() []*cell.Cell { return l.cells }

// BlankAttributes returns the attributes padding cells are created
// with.
func (l *DisplayLine) BlankAttributes() cell.Attributes { return l.blank }

// Clone deep-copies the line, its flags and every cell.
func (l *DisplayLine) Clone() *DisplayLine {
	out := &DisplayLine{
		DoubleWidth:        l.DoubleWidth,
		DoubleHeightTop:    l.DoubleHeightTop,
		DoubleHeightBottom: l.DoubleHeightBottom,
		ReverseColor:       l.ReverseColor,
		blank:              l.blank,
	}
	if len(l.cells) > 0 {
		out.cells = make([]*cell.Cell, len(l.cells))
		for i, c := range l.cells {
			out.cells[i] = c.Clone()
		}
	}
	return out
}

// Text flattens the line back to a string for indexing and search.
// Continuation halves of wide clusters and image fragments contribute
// nothing.
func (l *DisplayLine) Text() string {
	var sb strings.Builder
	for _, c := range l.cells {
		if c.IsUnset() || c.IsImage() || c.Width == cell.WidthRight {
			continue
		}
		sb.WriteString(string(c.Runes()))
	}
	return strings.TrimRight(sb.String(), " ")
}

func (l *DisplayLine) newBlank() *cell.Cell {
	c := cell.New(' ')
	c.Attr = l.blank
	return c
}

func (l *DisplayLine) extendTo(x int) {
	for len(l.cells) <= x {
		l.cells = append(l.cells, l.newBlank())
	}
}
