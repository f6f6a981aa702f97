// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/resolver.go
// Summary: Maps cell colors to concrete RGB via the tcell palette.
// Notes: The cell package deliberately does not own palette-to-RGB
//        mapping; this resolver is the backend's side of that contract.

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgfx/cell"
	"github.com/framegrace/texelgfx/pixel"
)

// PaletteResolver resolves palette-indexed cell colors through tcell's
// 256-color table. Default-mode colors resolve to the configured
// terminal defaults.
type PaletteResolver struct {
	DefaultFore pixel.Rgb
	DefaultBack pixel.Rgb
}

// NewPaletteResolver returns a resolver with light-on-dark defaults.
func NewPaletteResolver() *PaletteResolver {
	return &PaletteResolver{
		DefaultFore: pixel.Rgb{R: 0xC0, G: 0xC0, B: 0xC0},
		DefaultBack: pixel.Rgb{},
	}
}

func (p *PaletteResolver) ResolveFore(c cell.Color) pixel.Rgb {
	return p.resolve(c, p.DefaultFore)
}

func (p *PaletteResolver) ResolveBack(c cell.Color) pixel.Rgb {
	return p.resolve(c, p.DefaultBack)
}

func (p *PaletteResolver) resolve(c cell.Color, def pixel.Rgb) pixel.Rgb {
	switch c.Mode {
	case cell.ColorRGB:
		return c.RGB
	case cell.ColorPalette:
		r, g, b := tcell.PaletteColor(int(c.Index)).RGB()
		return pixel.Rgb{R: uint8(r), G: uint8(g), B: uint8(b)}
	}
	return def
}

var _ cell.ColorResolver = (*PaletteResolver)(nil)
