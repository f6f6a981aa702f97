// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grapheme/segment.go
// Summary: Splits codepoint streams into grapheme clusters.
// Usage: Feeds cell construction; one cluster becomes one display cell.

package grapheme

import "github.com/mattn/go-runewidth"

// Clusters segments runes into grapheme clusters. Segmentation is
// total: concatenating the returned clusters reproduces the input
// exactly. An empty input yields zero clusters.
func Clusters(runes []rune) [][]rune {
	if len(runes) == 0 {
		return nil
	}
	var out [][]rune
	start := 0
	for i := 1; i < len(runes); i++ {
		if ShouldBreak(runes[i-1], runes[i]) {
			out = append(out, runes[start:i:i])
			start = i
		}
	}
	return append(out, runes[start:len(runes):len(runes)])
}

// ClusterString segments a string into grapheme clusters.
func ClusterString(s string) [][]rune {
	return Clusters([]rune(s))
}

// RuneColumns returns the terminal column width of a single codepoint:
// 0 for combining and zero-width codepoints, 2 for wide characters,
// otherwise 1. The width table is go-runewidth's.
func RuneColumns(r rune) int {
	switch Classify(r) {
	case ClassExtend, ClassZWJ, ClassControl, ClassEmojiCombiner, ClassEmojiComponent:
		// Marks and sequence plumbing take no columns of their own.
		return 0
	}
	return runewidth.RuneWidth(r)
}

// ClusterColumns returns the display width of a cluster as the sum of
// its codepoints' column widths.
func ClusterColumns(cluster []rune) int {
	w := 0
	for _, r := range cluster {
		w += RuneColumns(r)
	}
	return w
}
