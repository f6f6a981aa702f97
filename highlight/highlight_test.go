// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight_test.go
// Summary: Tests for source-to-cells colorization.

package highlight

import (
	"strings"
	"testing"

	"github.com/framegrace/texelgfx/cell"
)

const goSample = `package main

import "fmt"

func main() {
	fmt.Println("hello")
}
`

func TestColorizeLineCount(t *testing.T) {
	lines := Colorize(goSample, "main.go", "monokai")
	want := strings.Count(goSample, "\n")
	if len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
}

func TestColorizeRoundTripsText(t *testing.T) {
	lines := Colorize(goSample, "main.go", "monokai")
	src := strings.Split(strings.TrimSuffix(goSample, "\n"), "\n")
	for i, l := range lines {
		if got, want := l.Text(), strings.TrimRight(src[i], " "); got != want {
			t.Errorf("line %d text = %q, want %q", i, got, want)
		}
	}
}

func TestColorizeAppliesColors(t *testing.T) {
	lines := Colorize(goSample, "main.go", "monokai")
	colored := 0
	for _, l := range lines {
		for _, c := range l.Cells() {
			if c.Attr.Fore.Mode == cell.ColorRGB {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("expected at least some cells with RGB foreground")
	}
}

func TestColorizeDetectsFromContent(t *testing.T) {
	// No filename: the content classifier has to carry detection.
	py := "import os\nclass MyApp:\n    def run(self):\n        pass\n"
	lines := Colorize(py, "", "monokai")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	colored := 0
	for _, l := range lines {
		for _, c := range l.Cells() {
			if c.Attr.Fore.Mode == cell.ColorRGB {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("python sample should pick up token colors without a filename")
	}
}

func TestColorizePreservesClusters(t *testing.T) {
	src := "x = \"e\u0301\u0308\"\n"
	lines := Colorize(src, "t.py", "monokai")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	for _, c := range lines[0].Cells() {
		runes := c.Runes()
		if len(runes) > 0 && runes[0] == 'e' {
			if len(runes) != 3 {
				t.Errorf("combining cluster split apart: %v", runes)
			}
			return
		}
	}
	t.Error("cluster cell not found")
}

func TestColorizeEmptyAndPlain(t *testing.T) {
	if lines := Colorize("", "x.go", ""); lines != nil {
		t.Error("empty source should yield no lines")
	}
	lines := Colorize("just some prose\n", "", "")
	if len(lines) != 1 || lines[0].Text() != "just some prose" {
		t.Errorf("plain text should survive untouched, got %+v", lines)
	}
}
