// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/sixelview/main.go
// Summary: Decodes a sixel payload and previews it in the terminal
//          using half-block cells.
// Usage: sixelview [-file image.six] [-palette vt340|cga]

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelgfx/cell"
	"github.com/framegrace/texelgfx/pixel"
	"github.com/framegrace/texelgfx/render"
	"github.com/framegrace/texelgfx/sixel"
)

func main() {
	file := flag.String("file", "", "sixel payload file (default stdin)")
	paletteName := flag.String("palette", "vt340", "default palette: vt340 or cga")
	transparent := flag.Bool("transparent", false, "honor the payload's transparency request")
	flag.Parse()

	payload, err := readPayload(*file)
	if err != nil {
		log.Fatalf("read payload: %v", err)
	}

	kind := sixel.PaletteVT340
	if *paletteName == "cga" {
		kind = sixel.PaletteCGA
	}

	img, _ := sixel.NewDecoder(stripDCS(payload), sixel.Options{
		DefaultPalette:    kind,
		AllowTransparency: *transparent,
	}).Decode()
	if img == nil {
		log.Fatal("payload did not decode to an image")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%dx%d pixels (no terminal attached, not displaying)\n",
			img.Width(), img.Height())
		return
	}

	if err := display(img, kind); err != nil {
		log.Fatalf("display: %v", err)
	}
}

func readPayload(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

// stripDCS unwraps an ESC P ... ESC \ envelope when present, so both
// raw payloads and full DCS captures work.
func stripDCS(data []byte) []byte {
	if i := bytes.Index(data, []byte("\x1bP")); i >= 0 {
		data = data[i+2:]
	}
	if i := bytes.Index(data, []byte("\x1b\\")); i >= 0 {
		data = data[:i]
	}
	return data
}

// display paints the image two pixel rows per terminal row using the
// upper-half block, then waits for a key.
func display(img *pixel.ImageRGB, kind sixel.PaletteKind) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := ts.Init(); err != nil {
		return err
	}
	defer ts.Fini()

	r := render.New(ts, render.NewPaletteResolver())
	r.DrawCells(0, 0, halfBlockFrame(img))
	r.Show()

	for {
		switch ts.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			ts.Sync()
			r.Invalidate()
			r.DrawCells(0, 0, halfBlockFrame(img))
			r.Show()
		}
	}
}

func halfBlockFrame(img *pixel.ImageRGB) [][]*cell.Cell {
	rows := (img.Height() + 1) / 2
	frame := make([][]*cell.Cell, rows)
	for cy := 0; cy < rows; cy++ {
		row := make([]*cell.Cell, img.Width())
		for cx := 0; cx < img.Width(); cx++ {
			c := cell.New('▀')
			c.Attr.Fore = cell.RGBColor(pixel.FromPacked(img.GetRGB(cx, cy*2)))
			if cy*2+1 < img.Height() {
				c.Attr.Back = cell.RGBColor(pixel.FromPacked(img.GetRGB(cx, cy*2+1)))
			}
			row[cx] = c
		}
		frame[cy] = row
	}
	return frame
}
