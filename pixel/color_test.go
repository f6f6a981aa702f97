// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/color_test.go
// Summary: Tests for packed-RGB color math.
// Usage: Run with `go test` to validate interpolation and conversion.

package pixel

import "testing"

func TestPackedRoundTrip(t *testing.T) {
	cases := []uint32{0x000000, 0xFFFFFF, 0x112233, 0xFF0000, 0x00FF00, 0x0000FF}
	for _, p := range cases {
		if got := FromPacked(p).Packed(); got != p {
			t.Errorf("round trip of %06x gave %06x", p, got)
		}
	}
	// Alpha byte is discarded on input.
	if got := FromPacked(0xAA112233).Packed(); got != 0x112233 {
		t.Errorf("alpha byte survived: %08x", got)
	}
}

func TestMoveEndpoints(t *testing.T) {
	colors := []Rgb{
		{0, 0, 0},
		{255, 255, 255},
		{0x11, 0x22, 0x33},
		{200, 10, 99},
	}
	for _, a := range colors {
		for _, b := range colors {
			if got := Move(a, b, 0.0); got != a {
				t.Errorf("Move(%v,%v,0) = %v, want %v", a, b, got, a)
			}
			if got := Move(a, b, 1.0); got != b {
				t.Errorf("Move(%v,%v,1) = %v, want %v", a, b, got, b)
			}
		}
	}
}

func TestMoveClampsFraction(t *testing.T) {
	a := Rgb{R: 10, G: 20, B: 30}
	b := Rgb{R: 200, G: 100, B: 50}
	if got := Move(a, b, -3.5); got != a {
		t.Errorf("negative fraction should clamp to start, got %v", got)
	}
	if got := Move(a, b, 7.0); got != b {
		t.Errorf("oversized fraction should clamp to end, got %v", got)
	}
}

func TestMoveMidpoint(t *testing.T) {
	got := Move(Rgb{}, Rgb{R: 200, G: 100, B: 50}, 0.5)
	want := Rgb{R: 100, G: 50, B: 25}
	if got != want {
		t.Errorf("midpoint = %v, want %v", got, want)
	}
}

func TestBlendEndpoints(t *testing.T) {
	under := uint32(0x102030)
	over := uint32(0xFFEEDD)
	if got := Blend(0, under, over); got != under {
		t.Errorf("alpha 0 should yield under, got %06x", got)
	}
	if got := Blend(1, under, over); got != over {
		t.Errorf("alpha 1 should yield over, got %06x", got)
	}
}

func TestDistanceSquared(t *testing.T) {
	a := Rgb{R: 1, G: 2, B: 3}
	if d := a.DistanceSquared(a); d != 0 {
		t.Errorf("distance to self = %d", d)
	}
	d := Rgb{}.DistanceSquared(Rgb{R: 3, G: 4, B: 0})
	if d != 25 {
		t.Errorf("distance = %d, want 25", d)
	}
	// Symmetry.
	b := Rgb{R: 200, G: 100, B: 50}
	if a.DistanceSquared(b) != b.DistanceSquared(a) {
		t.Error("distance is not symmetric")
	}
}

func TestSixelConversion(t *testing.T) {
	got := Rgb{R: 255, G: 255, B: 255}.Sixel(false)
	if got != (Rgb{R: 100, G: 100, B: 100}) {
		t.Errorf("white = %v, want 100/100/100", got)
	}
	if got := (Rgb{}).Sixel(false); got != (Rgb{}) {
		t.Errorf("black = %v, want 0/0/0", got)
	}
	// Snapping collapses near-black and near-white.
	if got := (Rgb{R: 5, G: 5, B: 5}).Sixel(true); got != (Rgb{}) {
		t.Errorf("near-black did not snap: %v", got)
	}
	if got := (Rgb{R: 250, G: 250, B: 250}).Sixel(true); got != (Rgb{R: 100, G: 100, B: 100}) {
		t.Errorf("near-white did not snap: %v", got)
	}
}

func TestFromSixel(t *testing.T) {
	if got := FromSixel(100, 100, 100); got != (Rgb{R: 255, G: 255, B: 255}) {
		t.Errorf("100%% = %v, want white", got)
	}
	if got := FromSixel(0, 0, 0); got != (Rgb{}) {
		t.Errorf("0%% = %v, want black", got)
	}
	// Out-of-range percentages are clamped, not rejected.
	if got := FromSixel(150, -2, 50); got.R != 255 || got.G != 0 {
		t.Errorf("clamping failed: %v", got)
	}
}

func TestOpacityCutoff(t *testing.T) {
	if !IsOpaque(255) || !IsOpaque(AlphaOpacityCutoff) {
		t.Error("high alpha should be opaque")
	}
	if !IsTransparent(0) || !IsTransparent(AlphaOpacityCutoff-1) {
		t.Error("low alpha should be transparent")
	}
	for a := 0; a <= 255; a++ {
		if IsOpaque(byte(a)) == IsTransparent(byte(a)) {
			t.Fatalf("alpha %d is both or neither", a)
		}
	}
}
