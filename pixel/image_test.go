// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/image_test.go
// Summary: Tests for the ImageRGB pixel buffer.
// Usage: Run with `go test` to validate transfer, compositing and resize.

package pixel

import "testing"

// gradient fills a buffer with a position-dependent pattern so every
// pixel is distinguishable.
func gradient(w, h int) *ImageRGB {
	img := NewImageRGB(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGB(x, y, uint32(x)<<16|uint32(y)<<8|uint32((x+y)&0xFF))
		}
	}
	return img
}

func TestBulkTransferRoundTrip(t *testing.T) {
	img := gradient(16, 12)
	rects := [][4]int{
		{0, 0, 16, 12},
		{3, 2, 5, 7},
		{15, 11, 1, 1},
		{0, 5, 16, 1},
	}
	for _, r := range rects {
		x, y, w, h := r[0], r[1], r[2], r[3]
		buf := make([]uint32, w*h)
		if err := img.GetRect(x, y, w, h, buf, 0, w); err != nil {
			t.Fatalf("GetRect(%v): %v", r, err)
		}
		dst := NewImageRGB(16, 12)
		if err := dst.SetRect(x, y, w, h, buf, 0, w); err != nil {
			t.Fatalf("SetRect(%v): %v", r, err)
		}
		for yy := y; yy < y+h; yy++ {
			for xx := x; xx < x+w; xx++ {
				if dst.GetRGB(xx, yy) != img.GetRGB(xx, yy) {
					t.Fatalf("rect %v: pixel (%d,%d) mismatch", r, xx, yy)
				}
			}
		}
	}
}

func TestBulkTransferRejectsBadRects(t *testing.T) {
	img := NewImageRGB(8, 8)
	buf := make([]uint32, 64)
	cases := [][4]int{
		{0, 0, 0, 4},   // zero width
		{0, 0, 4, -1},  // negative height
		{6, 0, 4, 4},   // past right edge
		{0, 6, 4, 4},   // past bottom edge
		{-1, 0, 4, 4},  // negative origin
	}
	for _, r := range cases {
		if err := img.GetRect(r[0], r[1], r[2], r[3], buf, 0, 8); err == nil {
			t.Errorf("GetRect(%v) should fail", r)
		}
		if err := img.SetRect(r[0], r[1], r[2], r[3], buf, 0, 8); err == nil {
			t.Errorf("SetRect(%v) should fail", r)
		}
	}
}

func TestBulkTransferScanSize(t *testing.T) {
	img := gradient(6, 4)
	// Read a 3x2 rect into a wider scan buffer with an offset.
	buf := make([]uint32, 50)
	if err := img.GetRect(1, 1, 3, 2, buf, 5, 10); err != nil {
		t.Fatalf("GetRect: %v", err)
	}
	if buf[5] != img.GetRGB(1, 1) || buf[15] != img.GetRGB(1, 2) {
		t.Error("scanSize/offset addressing is wrong")
	}
	if err := img.GetRect(0, 0, 4, 2, buf, 0, 3); err == nil {
		t.Error("scanSize shorter than width should fail")
	}
}

func TestSubImageIdentity(t *testing.T) {
	img := gradient(10, 7)
	sub := img.SubImage(0, 0, 10, 7)
	for y := 0; y < 7; y++ {
		for x := 0; x < 10; x++ {
			if sub.GetRGB(x, y) != img.GetRGB(x, y) {
				t.Fatalf("identity subimage differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestSubImageZeroFillsOutside(t *testing.T) {
	img := gradient(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.GetRGB(x, y) == 0 {
				img.SetRGB(x, y, 1) // keep in-bounds pixels nonzero
			}
		}
	}
	sub := img.SubImage(2, 2, 4, 4)
	if sub.Width() != 4 || sub.Height() != 4 {
		t.Fatalf("subimage is %dx%d, want 4x4", sub.Width(), sub.Height())
	}
	if sub.GetRGB(0, 0) != img.GetRGB(2, 2) {
		t.Error("in-bounds region not copied")
	}
	if sub.GetRGB(3, 3) != 0 || sub.GetRGB(2, 0) != 0 || sub.GetRGB(0, 2) != 0 {
		t.Error("out-of-bounds region should default to 0")
	}
}

func TestResizeCanvasRoundTrip(t *testing.T) {
	img := gradient(9, 5)
	big := img.ResizeCanvas(20, 11, 0xABCDEF)
	if big.GetRGB(19, 10) != 0xABCDEF {
		t.Error("new area should carry the background color")
	}
	back := big.ResizeCanvas(9, 5, 0)
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			if back.GetRGB(x, y) != img.GetRGB(x, y) {
				t.Fatalf("grow/shrink lost pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestAlphaBlendEndpoints(t *testing.T) {
	base := gradient(7, 7)
	over := NewImageRGB(7, 7)
	if err := over.FillRect(0, 0, 7, 7, 0x336699); err != nil {
		t.Fatalf("FillRect: %v", err)
	}

	zero := base.Clone()
	if err := zero.AlphaBlendOver(over, 0); err != nil {
		t.Fatalf("blend: %v", err)
	}
	one := base.Clone()
	if err := one.AlphaBlendOver(over, 1); err != nil {
		t.Fatalf("blend: %v", err)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			if zero.GetRGB(x, y) != base.GetRGB(x, y) {
				t.Fatalf("alpha 0 changed pixel (%d,%d)", x, y)
			}
			if one.GetRGB(x, y) != 0x336699 {
				t.Fatalf("alpha 1 did not replace pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestAlphaBlendDimensionMismatch(t *testing.T) {
	a := NewImageRGB(4, 4)
	b := NewImageRGB(4, 5)
	if err := a.AlphaBlendOver(b, 0.5); err == nil {
		t.Error("mismatched dimensions should fail")
	}
}

func TestFillRectBounds(t *testing.T) {
	img := NewImageRGB(5, 5)
	if err := img.FillRect(1, 1, 3, 3, 0x112233); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	if img.GetRGB(0, 0) != 0 || img.GetRGB(4, 4) != 0 {
		t.Error("fill leaked outside the rectangle")
	}
	if img.GetRGB(2, 2) != 0x112233 {
		t.Error("fill missed the rectangle interior")
	}
	if err := img.FillRect(3, 3, 4, 4, 0); err == nil {
		t.Error("out-of-bounds fill should fail")
	}
}

// TestParallelMatchesSequential exercises the column fan-out path with a
// buffer above the parallel threshold and checks it against the result
// computed on a small buffer tile by tile.
func TestParallelMatchesSequential(t *testing.T) {
	big := gradient(200, 100) // 20000 pixels, above threshold
	over := NewImageRGB(200, 100)
	if err := over.FillRect(0, 0, 200, 100, 0x885511); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	blended := big.Clone()
	if err := blended.AlphaBlendOver(over, 0.25); err != nil {
		t.Fatalf("blend: %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {199, 99}, {57, 31}, {100, 50}} {
		want := Blend(0.25, big.GetRGB(p[0], p[1]), 0x885511)
		if got := blended.GetRGB(p[0], p[1]); got != want {
			t.Errorf("pixel %v = %06x, want %06x", p, got, want)
		}
	}
}
