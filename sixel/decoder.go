// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sixel/decoder.go
// Summary: Character-driven state machine decoding sixel payloads into
//          pixel buffers.
// Usage: One decoder per escape payload; Decode may be called once.
// Notes: Untrusted remote input. The decoder never panics and never
//        returns an error: any unrecoverable condition sets an abort
//        flag and the final result is simply "no image".

package sixel

import "github.com/framegrace/texelgfx/pixel"

// Hard caps on declared and implied image dimensions. Crafted payloads
// can otherwise declare huge rasters or repeat counts and exhaust
// memory before a single pixel is painted.
const (
	MaxWidth  = 3840
	MaxHeight = 6480
)

// maxRepeat is the cap on a single repeat count, on top of the width
// cap.
const maxRepeat = 32767

// heightStep is how many rows the backing buffer grows at a time,
// amortizing reallocation across band advances.
const heightStep = 120

// maxParams is how many ';'-separated numeric fields a command keeps;
// excess fields are dropped.
const maxParams = 5

// decoder states.
type state int

const (
	stateInit state = iota // introducer parameters, before 'q'
	stateGround
	stateRaster
	stateColor
	stateRepeat
)

// Options configures a Decoder.
type Options struct {
	// Palette, when non-nil, is used and mutated in place by
	// palette-define commands so that multi-image streams can share
	// palette state across decoders.
	Palette map[int]pixel.Rgb

	// DefaultPalette selects the built-in table used when Palette is
	// nil.
	DefaultPalette PaletteKind

	// AllowTransparency requests that "unspecified pixels stay
	// transparent" (introducer P2=1) be honored in the result flag.
	AllowTransparency bool
}

// Decoder turns one sixel escape payload into a pixel buffer. A
// decoder is single-use: the input buffer is consumed and cleared by
// the first Decode call.
type Decoder struct {
	buf  []byte
	opts Options

	st      state
	abort   bool
	decoded bool

	params  [maxParams]int
	nparams int

	palette map[int]pixel.Rgb
	color   pixel.Rgb

	img    *pixel.ImageRGB
	repeat int
	x      int // current column
	bandY  int // top row of the current 6-pixel band
	width  int // maximum column painted + 1
	height int // maximum row painted + 1

	rasterWidth  int
	rasterHeight int

	p2Transparent bool
}

// NewDecoder prepares a decoder for one payload. The payload is the
// DCS content: optional introducer parameters, the 'q' final, then
// sixel data (any trailing ESC \ terminator may be included; it is
// ignored).
func NewDecoder(data []byte, opts Options) *Decoder {
	d := &Decoder{
		buf:    data,
		opts:   opts,
		st:     stateInit,
		repeat: 1,
		color:  pixel.Rgb{}, // palette 0 defaults to black
	}
	if opts.Palette != nil {
		d.palette = opts.Palette
	} else {
		d.palette = builtinPalette(opts.DefaultPalette)
	}
	if c, ok := d.palette[0]; ok {
		d.color = c
	}
	return d
}

// Decode runs the state machine over the payload and returns the image
// plus a transparency flag. The flag is true only when the caller
// requested transparency and the introducer asked for unspecified
// pixels to stay transparent. A nil image means the payload was empty
// or malformed. Decode consumes the input; a second call returns nil.
func (d *Decoder) Decode() (*pixel.ImageRGB, bool) {
	if d.decoded {
		return nil, false
	}
	d.decoded = true
	buf := d.buf
	d.buf = nil

	for _, b := range buf {
		if d.abort {
			return nil, false
		}
		d.step(b)
	}
	if d.abort {
		return nil, false
	}
	return d.finish(), d.opts.AllowTransparency && d.p2Transparent
}

// step consumes one payload byte.
func (d *Decoder) step(b byte) {
	// Parameter digits and separators are shared by every command
	// state.
	switch {
	case b >= '0' && b <= '9':
		if d.st != stateGround {
			if d.nparams == 0 {
				d.nparams = 1
			}
			if d.nparams <= maxParams {
				d.params[d.nparams-1] = d.params[d.nparams-1]*10 + int(b-'0')
			}
			return
		}
	case b == ';':
		if d.st != stateGround {
			// Fields past the limit are dropped, not shifted.
			if d.nparams <= maxParams {
				d.nparams++
			}
			return
		}
	}

	switch b {
	case 'q':
		if d.st == stateInit {
			d.introducer()
			d.enterGround()
			return
		}
	case '"':
		d.finishCommand()
		d.st = stateRaster
		return
	case '#':
		d.finishCommand()
		d.st = stateColor
		return
	case '!':
		d.finishCommand()
		d.st = stateRepeat
		return
	case '-':
		d.finishCommand()
		d.nextBand()
		return
	case '$':
		d.finishCommand()
		d.x = 0
		return
	}

	if b >= 0x3F && b < 0x7E {
		d.finishCommand()
		d.emit(b)
		return
	}
	// Anything else is ignored, non-fatally: tolerance for vendor
	// extensions and stray whitespace.
}

// introducer applies the DCS parameters seen before 'q'. P1 is the
// aspect ratio (unused here), P2 the background mode, P3 the grid
// size (unused).
func (d *Decoder) introducer() {
	if d.nparams >= 2 && d.params[1] == 1 {
		d.p2Transparent = true
	}
	d.resetParams()
}

// enterGround leaves whatever command state was active.
func (d *Decoder) enterGround() {
	d.st = stateGround
	d.resetParams()
}

// finishCommand applies any pending command parameters before the next
// command or data byte takes over.
func (d *Decoder) finishCommand() {
	switch d.st {
	case stateInit:
		// Data before 'q': treat the payload as raw sixel data.
		d.introducer()
	case stateRaster:
		d.applyRaster()
	case stateColor:
		d.applyColor()
	case stateRepeat:
		d.applyRepeat()
	}
	d.enterGround()
}

// applyRaster validates the raster attributes command
// ("pan;pad;pah;pav). Only a 1:1 aspect ratio is accepted, and the
// declared size must be positive and within the hard caps. Bad
// parameters abort the whole decode.
func (d *Decoder) applyRaster() {
	pan, pad := d.param(0, 1), d.param(1, 1)
	pah, pav := d.param(2, 0), d.param(3, 0)
	if pan != pad || pah <= 0 || pav <= 0 || pah > MaxWidth || pav > MaxHeight {
		d.abort = true
		return
	}
	d.rasterWidth = pah
	d.rasterHeight = pav
	d.ensureRows(pav)
}

// applyColor handles palette select (one field) and palette define
// (five fields, type 2 = RGB percentages). Unknown define types are
// ignored. Selecting a missing entry paints black.
func (d *Decoder) applyColor() {
	if d.nparams == 0 {
		return
	}
	idx := d.param(0, 0)
	if d.nparams >= 5 && d.param(1, 0) == 2 {
		d.palette[idx] = pixel.FromSixel(d.param(2, 0), d.param(3, 0), d.param(4, 0))
	} else if d.nparams >= 5 {
		// HLS and vendor define types: ignored, selection unchanged.
		return
	}
	c, ok := d.palette[idx]
	if !ok {
		c = pixel.Rgb{}
	}
	d.color = c
}

// applyRepeat clamps the accumulated repeat count defensively: first
// to the protocol bound, then to the maximum image width so a single
// oversized count cannot force a huge allocation.
func (d *Decoder) applyRepeat() {
	n := d.param(0, 1)
	if n < 1 {
		n = 1
	}
	if n > maxRepeat {
		n = maxRepeat
	}
	if n > MaxWidth {
		n = MaxWidth
	}
	d.repeat = n
}

// nextBand advances to the next 6-row band.
func (d *Decoder) nextBand() {
	d.bandY += 6
	d.x = 0
	if d.bandY+6 > MaxHeight {
		d.abort = true
		return
	}
	d.ensureRows(d.bandY + 6)
}

// emit paints one sixel data byte: six vertically stacked pixels, bit
// 0 on top, repeated horizontally by the pending repeat count.
func (d *Decoder) emit(b byte) {
	bits := b - 0x3F
	rep := d.repeat
	d.repeat = 1

	if d.x >= MaxWidth {
		return
	}
	if d.x+rep > MaxWidth {
		rep = MaxWidth - d.x
	}
	d.ensureRows(d.bandY + 6)

	packed := d.color.Packed()
	for bit := 0; bit < 6; bit++ {
		if bits&(1<<bit) == 0 {
			continue
		}
		y := d.bandY + bit
		for i := 0; i < rep; i++ {
			d.img.SetRGB(d.x+i, y, packed)
		}
		if y+1 > d.height {
			d.height = y + 1
		}
	}
	// An empty sixel still advances the column.
	d.x += rep
	if d.x > d.width {
		d.width = d.x
	}
}

// ensureRows grows the backing buffer so rows [0,rows) exist. Growth
// happens in fixed increments to amortize reallocation.
func (d *Decoder) ensureRows(rows int) {
	if rows > MaxHeight {
		d.abort = true
		return
	}
	if d.img == nil {
		h := heightStep
		for h < rows {
			h += heightStep
		}
		d.img = pixel.NewImageRGB(MaxWidth, min(h, MaxHeight))
		return
	}
	if rows <= d.img.Height() {
		return
	}
	h := d.img.Height()
	for h < rows {
		h += heightStep
	}
	d.img = d.img.ResizeCanvas(MaxWidth, min(h, MaxHeight), 0)
}

// finish crops the working buffer to the final logical size: per
// dimension the larger of the declared raster size and the painted
// extent, so the result is never smaller than either promise.
func (d *Decoder) finish() *pixel.ImageRGB {
	w := max(d.width, d.rasterWidth)
	h := max(d.height, d.rasterHeight)
	if w <= 0 || h <= 0 || d.img == nil {
		return nil
	}
	return d.img.SubImage(0, 0, w, h)
}

// param returns the i-th accumulated parameter, or def when the field
// was absent.
func (d *Decoder) param(i, def int) int {
	if i >= d.nparams || i >= maxParams {
		return def
	}
	return d.params[i]
}

func (d *Decoder) resetParams() {
	d.params = [maxParams]int{}
	d.nparams = 0
}
