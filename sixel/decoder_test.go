// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sixel/decoder_test.go
// Summary: Tests for the sixel state machine.
// Usage: Run with `go test` to validate decoding of crafted payloads.

package sixel

import (
	"strings"
	"testing"

	"github.com/framegrace/texelgfx/pixel"
)

func decode(t *testing.T, payload string, opts Options) (*pixel.ImageRGB, bool) {
	t.Helper()
	return NewDecoder([]byte(payload), opts).Decode()
}

func TestDeclaredRasterWins(t *testing.T) {
	// Declared 100x50 but only 5 bands (30 rows) painted: the final
	// image honors the declared size.
	payload := `0;0;0q"1;1;100;50` + strings.Repeat("}-", 4) + "}"
	img, _ := decode(t, payload, Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if img.Width() != 100 || img.Height() != 50 {
		t.Fatalf("image is %dx%d, want 100x50", img.Width(), img.Height())
	}
}

func TestPaintedExtentWins(t *testing.T) {
	// Declared 2x2 but 10 columns painted: painted extent is larger,
	// so the result grows to cover it.
	payload := `q"1;1;2;2!10@`
	img, _ := decode(t, payload, Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if img.Width() != 10 || img.Height() != 2 {
		t.Fatalf("image is %dx%d, want 10x2", img.Width(), img.Height())
	}
}

func TestInvalidRasterAborts(t *testing.T) {
	cases := []string{
		`q"2;1;10;10@`,        // aspect numerator != denominator
		`q"1;1;0;10@`,         // zero width
		`q"1;1;10;0@`,         // zero height
		`q"1;1;100000;10@`,    // over the width cap
		`q"1;1;10;100000@`,    // over the height cap
	}
	for _, payload := range cases {
		if img, _ := decode(t, payload, Options{}); img != nil {
			t.Errorf("payload %q should yield no image", payload)
		}
	}
}

func TestHugeRepeatIsClamped(t *testing.T) {
	// A runaway repeat count must neither crash nor allocate past the
	// width cap.
	img, _ := decode(t, "q!999999999@", Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if img.Width() != MaxWidth {
		t.Fatalf("width = %d, want clamp at %d", img.Width(), MaxWidth)
	}
}

func TestPaletteDefineAndSelect(t *testing.T) {
	// Define color 1 as 100% red, paint one pixel, then select the
	// missing entry 12 (defaults to black) and paint another.
	payload := "q#1;2;100;0;0@#12@"
	img, _ := decode(t, payload, Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if got := img.GetRGB(0, 0); got != 0xFF0000 {
		t.Errorf("pixel 0 = %06x, want ff0000", got)
	}
	if got := img.GetRGB(1, 0); got != 0x000000 {
		t.Errorf("pixel 1 = %06x, want black for missing palette entry", got)
	}
}

func TestCallerPaletteMutatedInPlace(t *testing.T) {
	shared := map[int]pixel.Rgb{0: {R: 9}}
	_, _ = decode(t, "q#5;2;0;100;0@", Options{Palette: shared})
	want := pixel.Rgb{G: 255}
	if got := shared[5]; got != want {
		t.Errorf("caller palette entry 5 = %v, want %v", got, want)
	}
}

func TestUnknownDefineTypeIgnored(t *testing.T) {
	// Type 1 (HLS) defines are ignored; the entry stays missing and a
	// later select of it paints black.
	shared := map[int]pixel.Rgb{}
	_, _ = decode(t, "q#3;1;10;20;30@", Options{Palette: shared})
	if _, ok := shared[3]; ok {
		t.Error("HLS define should not create a palette entry")
	}
}

func TestBandAndCarriageReturn(t *testing.T) {
	// '@' paints bit 0. '$' returns to column 0 within the band; 'A'
	// (bit 1) then paints row 1 of the same column. '-' advances to
	// the next band.
	payload := "q@$A-@"
	img, _ := decode(t, payload, Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if img.Width() != 1 || img.Height() != 7 {
		t.Fatalf("image is %dx%d, want 1x7", img.Width(), img.Height())
	}
	// Default color 0 is VT340 black; define a color first would be
	// nicer but position is what matters here: rows 0, 1 and 6 exist.
	if img.GetRGB(0, 6) != img.GetRGB(0, 0) {
		t.Error("band advance should paint the same color at row 6")
	}
}

func TestSixelBitLayout(t *testing.T) {
	// 'B' is 0x42 - 0x3F = 3: bits 0 and 1 set, rows 0 and 1 painted,
	// rows 2..5 untouched.
	payload := "q#1;2;100;100;100B"
	img, _ := decode(t, payload, Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if img.GetRGB(0, 0) != 0xFFFFFF || img.GetRGB(0, 1) != 0xFFFFFF {
		t.Error("bits 0 and 1 should paint rows 0 and 1")
	}
	if img.Height() != 2 {
		t.Errorf("height = %d, want 2 (unpainted rows are not part of the extent)", img.Height())
	}
}

func TestRepeatPaintsRun(t *testing.T) {
	payload := "q#1;2;100;0;0!5@"
	img, _ := decode(t, payload, Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if img.Width() != 5 {
		t.Fatalf("width = %d, want 5", img.Width())
	}
	for x := 0; x < 5; x++ {
		if img.GetRGB(x, 0) != 0xFF0000 {
			t.Fatalf("column %d not painted", x)
		}
	}
}

func TestTransparencyFlag(t *testing.T) {
	// P2=1 requests "unspecified pixels stay transparent".
	_, transparent := decode(t, "0;1;0q@", Options{AllowTransparency: true})
	if !transparent {
		t.Error("P2=1 with caller opt-in should set the transparent flag")
	}
	_, transparent = decode(t, "0;1;0q@", Options{})
	if transparent {
		t.Error("without caller opt-in the flag must stay false")
	}
	_, transparent = decode(t, "0;0;0q@", Options{AllowTransparency: true})
	if transparent {
		t.Error("P2=0 must not set the flag")
	}
}

func TestDecoderIsSingleUse(t *testing.T) {
	d := NewDecoder([]byte("q@"), Options{})
	if img, _ := d.Decode(); img == nil {
		t.Fatal("first decode should produce an image")
	}
	if img, _ := d.Decode(); img != nil {
		t.Error("second decode should yield nothing")
	}
}

func TestEmptyAndGarbageInput(t *testing.T) {
	if img, _ := decode(t, "", Options{}); img != nil {
		t.Error("empty payload should yield no image")
	}
	// Unrecognized ground-state bytes are ignored non-fatally.
	img, _ := decode(t, "q \x07\x1b@", Options{})
	if img == nil || img.Width() != 1 {
		t.Error("garbage between commands should be skipped")
	}
}

func TestExcessParameterFieldsDropped(t *testing.T) {
	// Eight fields on a color define: fields past the fifth are
	// dropped, the define still applies.
	img, _ := decode(t, "q#1;2;100;0;0;7;8;9@", Options{})
	if img == nil {
		t.Fatal("expected an image")
	}
	if got := img.GetRGB(0, 0); got != 0xFF0000 {
		t.Errorf("pixel = %06x, want ff0000", got)
	}
}
