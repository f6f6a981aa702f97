// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/color.go
// Summary: Packed-RGB color value type and pure color math helpers.
// Usage: Consumed by the cell model, the sixel decoder, and the renderer.
// Notes: All inputs are masked, never validated; every function is total.

package pixel

// Rgb is an immutable red/green/blue triple, one byte per channel.
type Rgb struct {
	R, G, B uint8
}

// Packed color layout is 0x00RRGGBB. The high byte is ignored on input
// and always zero on output unless an alpha is explicitly carried.
const (
	rgbMask   = 0x00FFFFFF
	alphaMask = 0xFF000000
)

// AlphaOpacityCutoff separates "render as image" from "render as hole".
// 102 is roughly 40% of 255.
const AlphaOpacityCutoff = 102

// FromPacked extracts the RGB channels from a packed 0x00RRGGBB value.
// Any alpha byte present is discarded.
func FromPacked(p uint32) Rgb {
	return Rgb{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// Packed returns the color as a packed 0x00RRGGBB value.
func (c Rgb) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// PackedNoAlpha strips the alpha byte from a packed value.
func PackedNoAlpha(p uint32) uint32 {
	return p & rgbMask
}

// DistanceSquared returns the squared euclidean distance between two
// colors. No square root is taken; the value is only ever compared.
func (c Rgb) DistanceSquared(other Rgb) int {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

// Move linearly interpolates from start toward end. The fraction is
// clamped to [0,1]; each resulting channel is clamped to [0,255].
// Move(a, b, 0) == a and Move(a, b, 1) == b for all colors.
func Move(start, end Rgb, fraction float64) Rgb {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return Rgb{
		R: lerpChannel(start.R, end.R, fraction),
		G: lerpChannel(start.G, end.G, fraction),
		B: lerpChannel(start.B, end.B, fraction),
	}
}

func lerpChannel(from, to uint8, fraction float64) uint8 {
	v := float64(from) + fraction*(float64(to)-float64(from))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

// Blend mixes two packed colors: alpha=0 yields under, alpha=1 yields
// over, intermediate values interpolate each channel independently.
func Blend(alpha float64, under, over uint32) uint32 {
	return Move(FromPacked(under), FromPacked(over), alpha).Packed()
}

// Squared-distance threshold under which a sixel color snaps to pure
// black or pure white. Chosen so near-misses from 0..100 percent
// quantization still collapse.
const sixelSnapThreshold = 300

// Sixel converts the color to sixel space, where each channel runs
// 0..100. When snap is true, colors within the snap threshold of black
// or white collapse to exactly black or white before conversion.
func (c Rgb) Sixel(snap bool) Rgb {
	if snap {
		if c.DistanceSquared(Rgb{}) < sixelSnapThreshold {
			return Rgb{}
		}
		if c.DistanceSquared(Rgb{R: 255, G: 255, B: 255}) < sixelSnapThreshold {
			return Rgb{R: 100, G: 100, B: 100}
		}
	}
	return Rgb{
		R: uint8(int(c.R) * 100 / 255),
		G: uint8(int(c.G) * 100 / 255),
		B: uint8(int(c.B) * 100 / 255),
	}
}

// FromSixel converts a 0..100 sixel-space channel triple back to
// 0..255 RGB space.
func FromSixel(r, g, b int) Rgb {
	return Rgb{
		R: uint8(clampInt(r, 0, 100) * 255 / 100),
		G: uint8(clampInt(g, 0, 100) * 255 / 100),
		B: uint8(clampInt(b, 0, 100) * 255 / 100),
	}
}

// IsOpaque reports whether an alpha byte is above the opacity cutoff,
// meaning the pixel should be rendered as image content.
func IsOpaque(alpha byte) bool {
	return alpha >= AlphaOpacityCutoff
}

// IsTransparent reports whether an alpha byte falls below the opacity
// cutoff, meaning the pixel renders as a hole.
func IsTransparent(alpha byte) bool {
	return alpha < AlphaOpacityCutoff
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
