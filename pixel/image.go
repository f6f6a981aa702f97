// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/image.go
// Summary: ImageRGB, the packed-RGB pixel buffer behind image cells.
// Usage: Produced by the sixel decoder, owned by image cells, composited
//        by the renderer.
// Notes: Rectangle arguments fail fast; clamping would corrupt the math
//        downstream. Single pixel access is deliberately unchecked.

package pixel

import (
	"fmt"
	"sync"
)

// parallelThreshold is the pixel count above which bulk operations fan
// out one goroutine per column. Results are bit-identical to the
// sequential path; columns are fully independent.
const parallelThreshold = 10000

// ImageRGB is a width×height grid of packed 0x00RRGGBB values.
// Dimensions are fixed at construction; contents are mutable. An
// ImageRGB is exclusively owned by whichever cell or decoder holds it.
type ImageRGB struct {
	width  int
	height int
	pix    []uint32
}

// NewImageRGB creates a zero-filled buffer. Non-positive dimensions are
// treated as zero.
func NewImageRGB(width, height int) *ImageRGB {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ImageRGB{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Clone returns a deep copy of the buffer.
func (img *ImageRGB) Clone() *ImageRGB {
	out := &ImageRGB{
		width:  img.width,
		height: img.height,
		pix:    make([]uint32, len(img.pix)),
	}
	copy(out.pix, img.pix)
	return out
}

// Width returns the buffer width in pixels.
func (img *ImageRGB) Width() int { return img.width }

// Height returns the buffer height in pixels.
func (img *ImageRGB) Height() int { return img.height }

// GetRGB returns the packed pixel at (x,y). Bounds are the caller's
// responsibility.
func (img *ImageRGB) GetRGB(x, y int) uint32 {
	return img.pix[y*img.width+x]
}

// SetRGB stores a packed pixel at (x,y). Bounds are the caller's
// responsibility.
func (img *ImageRGB) SetRGB(x, y int, rgb uint32) {
	img.pix[y*img.width+x] = rgb & rgbMask
}

// checkRect validates a rectangle against the buffer bounds.
func (img *ImageRGB) checkRect(x, y, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("pixel: non-positive rectangle %dx%d", w, h)
	}
	if x < 0 || y < 0 || x+w > img.width || y+h > img.height {
		return fmt.Errorf("pixel: rectangle (%d,%d %dx%d) outside %dx%d buffer",
			x, y, w, h, img.width, img.height)
	}
	return nil
}

// GetRect copies a rectangle of pixels into buf, row-major, honoring
// offset and scanSize the way the bulk transfer contract demands.
// The rectangle must be positive and fully inside the buffer.
func (img *ImageRGB) GetRect(x, y, w, h int, buf []uint32, offset, scanSize int) error {
	if err := img.checkRect(x, y, w, h); err != nil {
		return err
	}
	if scanSize < w {
		return fmt.Errorf("pixel: scan size %d shorter than rectangle width %d", scanSize, w)
	}
	if offset < 0 || offset+(h-1)*scanSize+w > len(buf) {
		return fmt.Errorf("pixel: transfer buffer too small for %dx%d rectangle", w, h)
	}
	for row := 0; row < h; row++ {
		src := (y+row)*img.width + x
		dst := offset + row*scanSize
		copy(buf[dst:dst+w], img.pix[src:src+w])
	}
	return nil
}

// SetRect copies a rectangle of pixels from buf into the image,
// row-major, honoring offset and scanSize. The rectangle must be
// positive and fully inside the buffer.
func (img *ImageRGB) SetRect(x, y, w, h int, buf []uint32, offset, scanSize int) error {
	if err := img.checkRect(x, y, w, h); err != nil {
		return err
	}
	if scanSize < w {
		return fmt.Errorf("pixel: scan size %d shorter than rectangle width %d", scanSize, w)
	}
	if offset < 0 || offset+(h-1)*scanSize+w > len(buf) {
		return fmt.Errorf("pixel: transfer buffer too small for %dx%d rectangle", w, h)
	}
	for row := 0; row < h; row++ {
		src := offset + row*scanSize
		dst := (y+row)*img.width + x
		for col := 0; col < w; col++ {
			img.pix[dst+col] = buf[src+col] & rgbMask
		}
	}
	return nil
}

// SubImage returns a new w×h buffer holding the requested region.
// Pixels outside the source bounds default to zero, which lets a
// decoder request its final declared size even when fewer rows were
// actually painted.
func (img *ImageRGB) SubImage(x, y, w, h int) *ImageRGB {
	out := NewImageRGB(w, h)
	forEachColumn(w, h, func(col int) {
		srcX := x + col
		if srcX < 0 || srcX >= img.width {
			return
		}
		for row := 0; row < h; row++ {
			srcY := y + row
			if srcY < 0 || srcY >= img.height {
				continue
			}
			out.pix[row*w+col] = img.pix[srcY*img.width+srcX]
		}
	})
	return out
}

// AlphaBlendOver blends over onto the image in place, per pixel:
// alpha=0 leaves the image untouched, alpha=1 replaces it with over.
// The two buffers must have identical dimensions.
func (img *ImageRGB) AlphaBlendOver(over *ImageRGB, alpha float64) error {
	if img.width != over.width || img.height != over.height {
		return fmt.Errorf("pixel: blend dimension mismatch %dx%d vs %dx%d",
			img.width, img.height, over.width, over.height)
	}
	forEachColumn(img.width, img.height, func(col int) {
		for row := 0; row < img.height; row++ {
			i := row*img.width + col
			img.pix[i] = Blend(alpha, img.pix[i], over.pix[i])
		}
	})
	return nil
}

// FillRect paints a solid rectangle. The rectangle must be positive
// and fully inside the buffer.
func (img *ImageRGB) FillRect(x, y, w, h int, rgb uint32) error {
	if err := img.checkRect(x, y, w, h); err != nil {
		return err
	}
	rgb &= rgbMask
	forEachColumn(w, h, func(col int) {
		for row := 0; row < h; row++ {
			img.pix[(y+row)*img.width+x+col] = rgb
		}
	})
	return nil
}

// ResizeCanvas returns a new buffer of the requested size. The
// overlapping region keeps its pixels at the same coordinates; any new
// area is filled with bg.
func (img *ImageRGB) ResizeCanvas(newW, newH int, bg uint32) *ImageRGB {
	out := NewImageRGB(newW, newH)
	bg &= rgbMask
	if bg != 0 {
		for i := range out.pix {
			out.pix[i] = bg
		}
	}
	copyW := min(newW, img.width)
	copyH := min(newH, img.height)
	forEachColumn(copyW, copyH, func(col int) {
		for row := 0; row < copyH; row++ {
			out.pix[row*newW+col] = img.pix[row*img.width+col]
		}
	})
	return out
}

// forEachColumn runs fn for every column index. Above the parallel
// threshold the columns fan out across goroutines; each column's work
// is independent and order-insensitive.
func forEachColumn(w, h int, fn func(col int)) {
	if w <= 0 || h <= 0 {
		return
	}
	if w*h < parallelThreshold {
		for col := 0; col < w; col++ {
			fn(col)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(w)
	for col := 0; col < w; col++ {
		go func(c int) {
			defer wg.Done()
			fn(c)
		}(col)
	}
	wg.Wait()
}
