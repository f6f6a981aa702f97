// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sixel/palette.go
// Summary: Built-in default sixel palettes.
// Notes: These are immutable constant tables selected at decoder
//        construction; palette-define commands never touch them. A
//        caller-supplied palette map, by contrast, is mutated in place
//        so multi-image streams can share palette state.

package sixel

import "github.com/framegrace/texelgfx/pixel"

// PaletteKind selects which built-in 16-entry palette a decoder starts
// from when the caller supplies none.
type PaletteKind int

const (
	// PaletteVT340 matches the DEC VT340 default colors.
	PaletteVT340 PaletteKind = iota
	// PaletteCGA matches the classic CGA 16-color set.
	PaletteCGA
)

// defaultVT340 is the VT340 power-on palette, already converted from
// the hardware's percentage space to 0..255 channels.
var defaultVT340 = [16]pixel.Rgb{
	{R: 0, G: 0, B: 0},       // black
	{R: 51, G: 51, B: 204},   // blue
	{R: 204, G: 36, B: 36},   // red
	{R: 51, G: 204, B: 51},   // green
	{R: 204, G: 51, B: 204},  // magenta
	{R: 51, G: 204, B: 204},  // cyan
	{R: 204, G: 204, B: 51},  // yellow
	{R: 135, G: 135, B: 135}, // gray 50%
	{R: 66, G: 66, B: 66},    // gray 25%
	{R: 84, G: 84, B: 153},   // dim blue
	{R: 153, G: 66, B: 66},   // dim red
	{R: 84, G: 153, B: 84},   // dim green
	{R: 153, G: 84, B: 153},  // dim magenta
	{R: 84, G: 153, B: 153},  // dim cyan
	{R: 153, G: 153, B: 84},  // dim yellow
	{R: 204, G: 204, B: 204}, // gray 75%
}

// defaultCGA is the classic CGA/EGA 16-color palette.
var defaultCGA = [16]pixel.Rgb{
	{R: 0x00, G: 0x00, B: 0x00}, // black
	{R: 0x00, G: 0x00, B: 0xAA}, // blue
	{R: 0x00, G: 0xAA, B: 0x00}, // green
	{R: 0x00, G: 0xAA, B: 0xAA}, // cyan
	{R: 0xAA, G: 0x00, B: 0x00}, // red
	{R: 0xAA, G: 0x00, B: 0xAA}, // magenta
	{R: 0xAA, G: 0x55, B: 0x00}, // brown
	{R: 0xAA, G: 0xAA, B: 0xAA}, // white
	{R: 0x55, G: 0x55, B: 0x55}, // bright black
	{R: 0x55, G: 0x55, B: 0xFF}, // bright blue
	{R: 0x55, G: 0xFF, B: 0x55}, // bright green
	{R: 0x55, G: 0xFF, B: 0xFF}, // bright cyan
	{R: 0xFF, G: 0x55, B: 0x55}, // bright red
	{R: 0xFF, G: 0x55, B: 0xFF}, // bright magenta
	{R: 0xFF, G: 0xFF, B: 0x55}, // bright yellow
	{R: 0xFF, G: 0xFF, B: 0xFF}, // bright white
}

// builtinPalette copies the selected constant table into a fresh
// mutable map for one decoder's private use.
func builtinPalette(kind PaletteKind) map[int]pixel.Rgb {
	src := &defaultVT340
	if kind == PaletteCGA {
		src = &defaultCGA
	}
	m := make(map[int]pixel.Rgb, len(src))
	for i, c := range src {
		m[i] = c
	}
	return m
}
