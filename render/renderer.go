// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/renderer.go
// Summary: tcell backend that diff-blits cell frames and snapshot
//          viewports onto the terminal.
// Usage: One Renderer per tcell.Screen; call DrawCells or DrawState,
//        then Show.
// Notes: The previous frame is kept as deep clones so producer
//        mutation between frames cannot corrupt the diff.

package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgfx/cell"
	"github.com/framegrace/texelgfx/screen"
)

// imagePlaceholder stands in for image fragments that do not collapse
// to a single color.
const imagePlaceholder = '▒'

type styleKey struct {
	fg, bg          tcell.Color
	bold, underline bool
	reverse, blink  bool
}

// Renderer paints cell frames through tcell, repainting only cells
// that changed since the previous frame.
type Renderer struct {
	screen   tcell.Screen
	resolver cell.ColorResolver

	prev       [][]*cell.Cell
	styleCache map[styleKey]tcell.Style
	now        func() time.Time
}

// New wraps an initialized tcell.Screen. The resolver supplies the
// palette-to-RGB mapping the cell model does not own.
func New(ts tcell.Screen, resolver cell.ColorResolver) *Renderer {
	return &Renderer{
		screen:     ts,
		resolver:   resolver,
		styleCache: make(map[styleKey]tcell.Style),
		now:        time.Now,
	}
}

// Invalidate drops the previous frame so the next draw repaints
// everything.
func (r *Renderer) Invalidate() { r.prev = nil }

// Show flushes pending updates to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawCells blits a frame at the given origin. Cells equal to the
// previous frame are skipped. Image cells get their hash memoized
// before comparison so the diff stays O(1) per unchanged cell.
func (r *Renderer) DrawCells(x0, y0 int, frame [][]*cell.Cell) {
	next := make([][]*cell.Cell, len(frame))
	for y, row := range frame {
		next[y] = make([]*cell.Cell, len(row))
		for x, c := range row {
			if c == nil {
				continue
			}
			if c.IsImage() {
				c.EnsureImageHash()
			}
			if r.prevCellEqual(x, y, c) {
				next[y][x] = r.prev[y][x]
				continue
			}
			r.drawCell(x0+x, y0+y, c, false)
			next[y][x] = c.Clone()
		}
	}
	r.prev = next
}

func (r *Renderer) prevCellEqual(x, y int, c *cell.Cell) bool {
	if y >= len(r.prev) || x >= len(r.prev[y]) {
		return false
	}
	old := r.prev[y][x]
	return old != nil && old.Equal(c)
}

// DrawState paints a snapshot viewport filling the whole screen.
// scrollOffset counts lines scrolled up from the live bottom.
func (r *Renderer) DrawState(st *screen.TerminalState, scrollOffset int) {
	w, h := r.screen.Size()
	view := st.VisibleDisplay(h, scrollOffset)

	frame := make([][]*cell.Cell, len(view))
	for y, line := range view {
		row := make([]*cell.Cell, w)
		for x := 0; x < w; x++ {
			row[x] = line.Cell(x)
			if line.ReverseColor {
				row[x] = row[x].Clone()
				row[x].Attr.Reverse = !row[x].Attr.Reverse
			}
		}
		frame[y] = row
	}
	r.DrawCells(0, 0, frame)

	r.placeCursor(st, h, scrollOffset)
}

func (r *Renderer) placeCursor(st *screen.TerminalState, viewHeight, scrollOffset int) {
	if !st.Cursor.Visible || scrollOffset != 0 {
		r.screen.HideCursor()
		return
	}
	row := viewHeight - len(st.Display) + st.Cursor.Y
	if row < 0 || row >= viewHeight {
		r.screen.HideCursor()
		return
	}
	r.screen.ShowCursor(st.Cursor.X, row)
}

// drawCell paints one cell. Continuation halves of wide clusters are
// skipped; tcell spans the wide rune from the left half on its own.
func (r *Renderer) drawCell(x, y int, c *cell.Cell, reverse bool) {
	if c.Width == cell.WidthRight {
		return
	}
	if c.IsUnset() {
		r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		return
	}

	main, comb := ' ', []rune(nil)
	work := c
	if c.IsImage() {
		work = c.Clone()
		work.CheckForSingleColor(true)
	}
	if work.IsImage() {
		main = imagePlaceholder
	} else if runes := work.Runes(); len(runes) > 0 {
		main = runes[0]
		if len(runes) > 1 {
			comb = runes[1:]
		}
	}

	r.screen.SetContent(x, y, main, comb, r.styleFor(work.Attr, reverse))
}

// styleFor resolves attributes to a cached tcell style. Pulsing cells
// resolve their animated foreground for the current wall-clock step.
func (r *Renderer) styleFor(attr cell.Attributes, reverse bool) tcell.Style {
	fore := attr.ForePulseRGB(r.resolver, r.now().UnixMilli())
	back := r.resolver.ResolveBack(attr.Back)

	key := styleKey{
		fg:        tcell.NewRGBColor(int32(fore.R), int32(fore.G), int32(fore.B)),
		bg:        tcell.NewRGBColor(int32(back.R), int32(back.G), int32(back.B)),
		bold:      attr.Bold,
		underline: attr.Underline,
		reverse:   attr.Reverse != reverse,
		blink:     attr.Blink,
	}
	if st, ok := r.styleCache[key]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(key.fg).Background(key.bg)
	if key.bold {
		st = st.Bold(true)
	}
	if key.underline {
		st = st.Underline(true)
	}
	if key.reverse {
		st = st.Reverse(true)
	}
	if key.blink {
		st = st.Blink(true)
	}
	r.styleCache[key] = st
	return st
}
