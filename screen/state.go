// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/state.go
// Summary: TerminalState, an immutable-after-construction snapshot of a
//          terminal's scrollback and live display.
// Usage: Built by the emulator producer via NewTerminalState, handed to
//        a rendering consumer that treats it as read-only.
// Notes: The constructor deep-copies everything so the producer may
//        keep mutating its live buffers without racing the reader.

package screen

import (
	"time"

	"github.com/framegrace/texelgfx/cell"
)

// viewportCacheTTL bounds how stale a reused viewport may be during a
// synchronized-update burst.
const viewportCacheTTL = 125 * time.Millisecond

// Cursor is the captured cursor position and visibility.
type Cursor struct {
	X, Y    int
	Visible bool
}

// MouseProtocol identifies which mouse reporting encoding was active
// at capture time.
type MouseProtocol int

const (
	MouseOff MouseProtocol = iota
	MouseX10
	MouseNormal
	MouseSGR
)

// Source carries the live buffers a snapshot is captured from. The
// snapshot constructor copies everything it needs; the caller keeps
// ownership of the source.
type Source struct {
	Width, Height int

	Scrollback []*DisplayLine
	Display    []*DisplayLine

	Cursor             Cursor
	Title              string
	Mouse              MouseProtocol
	MouseHidden        bool
	SynchronizedUpdate bool

	// DefaultAttr is used for blank padding lines in viewport windows.
	DefaultAttr cell.Attributes
}

// TerminalState is a deep-copied point-in-time snapshot. All exported
// fields are read-only after construction; the viewport cache below is
// the consumer's private scratch state.
type TerminalState struct {
	Width, Height int

	Scrollback []*DisplayLine
	Display    []*DisplayLine

	Cursor             Cursor
	Title              string
	Mouse              MouseProtocol
	MouseHidden        bool
	SynchronizedUpdate bool

	DefaultAttr cell.Attributes

	cachedView   []*DisplayLine
	cachedHeight int
	cachedAt     time.Time
	now          func() time.Time
}

// NewTerminalState captures src into an independent snapshot. Every
// line and cell is cloned.
func NewTerminalState(src Source) *TerminalState {
	st := &TerminalState{
		Width:              src.Width,
		Height:             src.Height,
		Cursor:             src.Cursor,
		Title:              src.Title,
		Mouse:              src.Mouse,
		MouseHidden:        src.MouseHidden,
		SynchronizedUpdate: src.SynchronizedUpdate,
		DefaultAttr:        src.DefaultAttr,
		now:                time.Now,
	}
	st.Scrollback = cloneLines(src.Scrollback)
	st.Display = cloneLines(src.Display)
	return st
}

func cloneLines(lines []*DisplayLine) []*DisplayLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]*DisplayLine, len(lines))
	for i, l := range lines {
		if l == nil {
			out[i] = NewDisplayLine(cell.DefaultAttributes())
			continue
		}
		out[i] = l.Clone()
	}
	return out
}

// TotalLines is the captured history length: scrollback plus live
// display.
func (st *TerminalState) TotalLines() int {
	return len(st.Scrollback) + len(st.Display)
}

// Line addresses the combined scrollback++display sequence. Indexes
// outside the captured range yield a fresh blank line.
func (st *TerminalState) Line(i int) *DisplayLine {
	if i < 0 || i >= st.TotalLines() {
		return NewDisplayLine(st.DefaultAttr)
	}
	if i < len(st.Scrollback) {
		return st.Scrollback[i]
	}
	return st.Display[i-len(st.Scrollback)]
}

// VisibleDisplay returns exactly height lines of the combined
// scrollback++display sequence. scrollBottomOffset counts lines
// scrolled up from the live bottom; zero means the window ends at the
// last display line. Windows reaching before captured history or past
// the live display are padded with blank lines.
//
// During a synchronized update the last computed viewport is reused
// verbatim while it is under viewportCacheTTL old and the requested
// height matches, avoiding redundant recomputation during bursty
// updates.
func (st *TerminalState) VisibleDisplay(height, scrollBottomOffset int) []*DisplayLine {
	if height <= 0 {
		return nil
	}
	if st.SynchronizedUpdate && st.cachedView != nil &&
		st.cachedHeight == height &&
		st.now().Sub(st.cachedAt) < viewportCacheTTL {
		return st.cachedView
	}
	if scrollBottomOffset < 0 {
		scrollBottomOffset = 0
	}

	total := st.TotalLines()
	end := total - scrollBottomOffset
	start := end - height

	view := make([]*DisplayLine, 0, height)
	for i := start; i < end; i++ {
		view = append(view, st.Line(i))
	}

	st.cachedView = view
	st.cachedHeight = height
	st.cachedAt = st.now()
	return view
}
