// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/sixelgrab/main.go
// Summary: Runs a command under a PTY, extracts every sixel image it
//          emits and writes them out as PNG files.
// Usage: sixelgrab [-out dir] [-cols N] [-rows N] [-wait 3s] -- cmd args

package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/framegrace/texelgfx/pixel"
	"github.com/framegrace/texelgfx/sixel"
)

func main() {
	outDir := flag.String("out", ".", "directory for extracted PNG files")
	cols := flag.Int("cols", 120, "PTY columns")
	rows := flag.Int("rows", 40, "PTY rows")
	wait := flag.Duration("wait", 3*time.Second, "how long to wait for output after start")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: sixelgrab [flags] -- command [args]")
	}

	output, err := capture(flag.Arg(0), flag.Args()[1:], *cols, *rows, *wait)
	if err != nil {
		log.Fatalf("capture: %v", err)
	}

	payloads := extractSixelPayloads(output)
	if len(payloads) == 0 {
		log.Printf("no sixel data in %d bytes of output", len(output))
		return
	}

	written := 0
	for i, payload := range payloads {
		img, _ := sixel.NewDecoder(payload, sixel.Options{}).Decode()
		if img == nil {
			log.Printf("payload %d did not decode, skipping", i)
			continue
		}
		name := filepath.Join(*outDir, fmt.Sprintf("sixel-%03d.png", i))
		if err := writePNG(name, img); err != nil {
			log.Printf("write %s: %v", name, err)
			continue
		}
		log.Printf("wrote %s (%dx%d)", name, img.Width(), img.Height())
		written++
	}
	log.Printf("extracted %d of %d payloads", written, len(payloads))
}

// capture runs the command under a PTY sized cols x rows and collects
// everything it writes until EOF or the wait deadline.
func capture(command string, args []string, cols, rows int, wait time.Duration) ([]byte, error) {
	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("COLUMNS=%d", cols),
		fmt.Sprintf("LINES=%d", rows),
		"TERM=xterm-256color",
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	// Raw mode disables echo so our own writes never pollute the
	// capture.
	if _, err := term.MakeRaw(int(ptmx.Fd())); err != nil {
		return nil, fmt.Errorf("make pty raw: %w", err)
	}

	var output bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(wait):
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		<-done
	}
	cmd.Wait()

	return output.Bytes(), nil
}

// extractSixelPayloads pulls the DCS content of every sixel sequence
// out of raw terminal output. Both the 7-bit (ESC P ... ESC \) and
// 8-bit (0x90 ... 0x9C) envelopes are recognized.
func extractSixelPayloads(data []byte) [][]byte {
	var payloads [][]byte
	for len(data) > 0 {
		start, skip := findDCS(data)
		if start < 0 {
			break
		}
		body := data[start+skip:]
		end := len(body)
		next := end
		if i := bytes.Index(body, []byte("\x1b\\")); i >= 0 {
			end, next = i, i+2
		} else if i := bytes.IndexByte(body, 0x9C); i >= 0 {
			end, next = i, i+1
		}
		if payload := body[:end]; isSixel(payload) {
			payloads = append(payloads, payload)
		}
		data = body[next:]
	}
	return payloads
}

func findDCS(data []byte) (start, skip int) {
	esc := bytes.Index(data, []byte("\x1bP"))
	c1 := bytes.IndexByte(data, 0x90)
	switch {
	case esc < 0 && c1 < 0:
		return -1, 0
	case esc < 0 || (c1 >= 0 && c1 < esc):
		return c1, 1
	default:
		return esc, 2
	}
}

// isSixel reports whether a DCS payload is sixel data: optional numeric
// parameters followed by the 'q' final.
func isSixel(payload []byte) bool {
	for _, b := range payload {
		switch {
		case b == 'q':
			return true
		case (b >= '0' && b <= '9') || b == ';':
		default:
			return false
		}
	}
	return false
}

// writePNG converts the packed buffer to a stdlib image and encodes it.
func writePNG(name string, img *pixel.ImageRGB) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := pixel.FromPacked(img.GetRGB(x, y))
			out.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}
