// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/layout.go
// Summary: Builds cell runs from text via grapheme segmentation.
// Usage: Entry point for turning decoded codepoint streams into cells.

package cell

import "github.com/framegrace/texelgfx/grapheme"

// LayoutString segments text into grapheme clusters and returns one
// cell per cluster. A two-column cluster produces a left-half cell
// carrying the content and a right-half continuation cell. Zero-width
// clusters (a bare leading combining mark, a control rune) still get a
// cell so no input is silently dropped.
func LayoutString(text string, attr Attributes) []*Cell {
	var out []*Cell
	for _, cluster := range grapheme.ClusterString(text) {
		c := NewGrapheme(cluster)
		c.Attr = attr
		if grapheme.ClusterColumns(cluster) >= 2 {
			c.Width = WidthLeft
			right := &Cell{kind: contentChar, ch: ' ', Attr: attr, Width: WidthRight}
			out = append(out, c, right)
			continue
		}
		out = append(out, c)
	}
	return out
}
