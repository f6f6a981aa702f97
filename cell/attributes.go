// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/attributes.go
// Summary: Style attributes and the color-pulse animation state.
// Usage: Embedded by Cell; compared on every frame by the differ.
// Notes: Attributes is a small value type so copy and compare stay
//        cheap; the pulse state is an explicit value rather than bits
//        packed next to the style flags.

package cell

import "github.com/framegrace/texelgfx/pixel"

// Pulse animation timing: steps per second for the two speeds, and the
// length of a full cycle. The phase fits in 6 bits.
const (
	pulseFastStepsPerSecond = 32
	pulseSlowStepsPerSecond = 16
	pulseCycleSteps         = 64
)

// Pulse describes a time-driven cyclic interpolation of the foreground
// color toward a target palette color.
type Pulse struct {
	Enabled bool
	Fast    bool
	Phase   uint8 // 0..63 cycle offset
	Target  uint8 // reduced-palette target color
}

// Attributes holds the style state of a cell.
type Attributes struct {
	Bold      bool
	Blink     bool
	Reverse   bool
	Underline bool
	Protect   bool

	Fore Color
	Back Color

	Pulse Pulse
}

// DefaultAttributes returns attributes with default colors and no
// styling.
func DefaultAttributes() Attributes {
	return Attributes{}
}

// ForePulseRGB computes the pulsing foreground color at the given time.
// The interpolation is a folded sawtooth: the position advances through
// a 64-step cycle and folds back after the midpoint, so the color moves
// smoothly from the base foreground to the pulse target and back.
// When the pulse is disabled the resolved base foreground is returned.
func (a Attributes) ForePulseRGB(resolver ColorResolver, timeMillis int64) pixel.Rgb {
	base := resolver.ResolveFore(a.Fore)
	if !a.Pulse.Enabled {
		return base
	}
	target := resolver.ResolveFore(PaletteColor(a.Pulse.Target))

	stepsPerSecond := int64(pulseSlowStepsPerSecond)
	if a.Pulse.Fast {
		stepsPerSecond = pulseFastStepsPerSecond
	}
	step := (timeMillis*stepsPerSecond/1000 + int64(a.Pulse.Phase)) % pulseCycleSteps
	if step < 0 {
		step += pulseCycleSteps
	}
	// Fold after the midpoint for back-and-forth motion.
	if step > pulseCycleSteps/2 {
		step = pulseCycleSteps - step
	}
	return pixel.Move(base, target, float64(step)/float64(pulseCycleSteps/2))
}

// hash mixes the attribute state into an FNV-1a accumulator.
func (a Attributes) hash(h uint64) uint64 {
	flags := uint64(0)
	if a.Bold {
		flags |= 1
	}
	if a.Blink {
		flags |= 2
	}
	if a.Reverse {
		flags |= 4
	}
	if a.Underline {
		flags |= 8
	}
	if a.Protect {
		flags |= 16
	}
	if a.Pulse.Enabled {
		flags |= 32
	}
	if a.Pulse.Fast {
		flags |= 64
	}
	h = fnvMix(h, flags)
	h = fnvMix(h, uint64(a.Pulse.Phase)<<8|uint64(a.Pulse.Target))
	h = fnvMix(h, colorWord(a.Fore))
	h = fnvMix(h, colorWord(a.Back))
	return h
}

func colorWord(c Color) uint64 {
	return uint64(c.Mode)<<32 | uint64(c.Index)<<24 | uint64(c.RGB.Packed())
}

// FNV-1a constants, as used by the glyph caches elsewhere in the
// project.
const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

func fnvMix(h, v uint64) uint64 {
	h ^= v
	h *= fnvPrime
	return h
}
