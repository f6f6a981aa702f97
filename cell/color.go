// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/color.go
// Summary: Cell color values and the palette resolution boundary.
// Usage: Attributes carry two of these; the render backend resolves
//        them to concrete RGB.
// Notes: This package never owns the palette-to-RGB mapping.

package cell

import "github.com/framegrace/texelgfx/pixel"

// ColorMode defines how a cell color is stored.
type ColorMode uint8

const (
	// ColorDefault is the terminal's default foreground or background.
	ColorDefault ColorMode = iota
	// ColorPalette is an indexed color, resolved by the backend.
	ColorPalette
	// ColorRGB is a 24-bit override.
	ColorRGB
)

// Color is either a palette index or an RGB override. Setting one form
// clears the other, so the two can never be ambiguous.
type Color struct {
	Mode  ColorMode
	Index uint8
	RGB   pixel.Rgb
}

// PaletteColor returns an indexed color.
func PaletteColor(index uint8) Color {
	return Color{Mode: ColorPalette, Index: index}
}

// RGBColor returns a 24-bit color override.
func RGBColor(rgb pixel.Rgb) Color {
	return Color{Mode: ColorRGB, RGB: rgb}
}

// SetIndex switches the color to palette form, clearing any RGB value.
func (c *Color) SetIndex(index uint8) {
	*c = Color{Mode: ColorPalette, Index: index}
}

// SetRGB switches the color to RGB form, clearing any palette index.
func (c *Color) SetRGB(rgb pixel.Rgb) {
	*c = Color{Mode: ColorRGB, RGB: rgb}
}

// ColorResolver maps cell colors to concrete RGB values. The render
// backend supplies one; it owns the palette and the default colors.
type ColorResolver interface {
	// ResolveFore resolves a foreground color.
	ResolveFore(c Color) pixel.Rgb
	// ResolveBack resolves a background color.
	ResolveBack(c Color) pixel.Rgb
}
