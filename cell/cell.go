// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/cell.go
// Summary: The cell: one styled character, grapheme cluster, or image
//          fragment, with diff-friendly equality and hashing.
// Usage: Screen buffers hold cells; the renderer diffs them frame to
//        frame to decide what to repaint.
// Notes: Content is a tagged variant. Character and image meaning are
//        mutually exclusive; attaching one clears the other.

package cell

import (
	"github.com/framegrace/texelgfx/grapheme"
	"github.com/framegrace/texelgfx/pixel"
)

// WidthClass describes how a cell occupies terminal columns.
type WidthClass uint8

const (
	// WidthSingle is a normal one-column cell.
	WidthSingle WidthClass = iota
	// WidthLeft is the left half of a two-column character.
	WidthLeft
	// WidthRight is the continuation half of a two-column character.
	WidthRight
)

// contentKind tags the cell content variant.
type contentKind uint8

const (
	contentUnset contentKind = iota
	contentChar
	contentGrapheme
	contentImage
)

// invertMask is XORed against every pixel channel when inverting.
const invertMask = 0x00FFFFFF

// Cell is the atomic unit of terminal-style content: a styled scalar
// character, a multi-codepoint grapheme cluster, or an embedded image
// fragment.
type Cell struct {
	Attr  Attributes
	Width WidthClass

	kind  contentKind
	ch    rune
	runes []rune

	image      *pixel.ImageRGB
	inverted   *pixel.ImageRGB
	isInverted bool
	imageID    uint32
	imageHash  uint64
}

// New returns a cell displaying a single codepoint with default
// attributes.
func New(r rune) *Cell {
	return &Cell{kind: contentChar, ch: r}
}

// NewGrapheme returns a cell displaying a grapheme cluster. A cluster
// of one codepoint is stored in scalar form; an empty cluster yields an
// unset cell.
func NewGrapheme(cluster []rune) *Cell {
	switch len(cluster) {
	case 0:
		return &Cell{}
	case 1:
		return New(cluster[0])
	}
	c := &Cell{kind: contentGrapheme}
	c.runes = append(c.runes, cluster...)
	return c
}

// NewImage returns a cell displaying an image fragment. The cell takes
// ownership of the buffer. The id, when nonzero, acts as a fast
// identity proxy during comparison.
func NewImage(img *pixel.ImageRGB, id uint32) *Cell {
	return &Cell{kind: contentImage, image: img, imageID: id}
}

// Clone deep-copies the cell, including any owned pixel buffers.
func (c *Cell) Clone() *Cell {
	out := *c
	if c.runes != nil {
		out.runes = append([]rune(nil), c.runes...)
	}
	if c.image != nil {
		out.image = c.image.Clone()
	}
	if c.inverted != nil {
		out.inverted = c.inverted.Clone()
	}
	return &out
}

// Unset clears the cell. An unset cell compares unequal to everything,
// including a copy of its former state, which forces a redraw.
func (c *Cell) Unset() {
	*c = Cell{}
}

// IsUnset reports whether the cell carries no content.
func (c *Cell) IsUnset() bool { return c.kind == contentUnset }

// IsImage reports whether the cell carries an image.
func (c *Cell) IsImage() bool { return c.kind == contentImage }

// Rune returns the display codepoint of a scalar cell, or the first
// codepoint of a grapheme cell. Unset and image cells return 0.
func (c *Cell) Rune() rune {
	switch c.kind {
	case contentChar:
		return c.ch
	case contentGrapheme:
		return c.runes[0]
	}
	return 0
}

// Runes returns the full codepoint sequence of the cell. The returned
// slice must not be mutated.
func (c *Cell) Runes() []rune {
	switch c.kind {
	case contentChar:
		return []rune{c.ch}
	case contentGrapheme:
		return c.runes
	}
	return nil
}

// SetChar replaces the content with a single codepoint, detaching any
// image.
func (c *Cell) SetChar(r rune) {
	c.dropImage()
	c.kind = contentChar
	c.ch = r
	c.runes = nil
}

// SetGrapheme replaces the content with a grapheme cluster, detaching
// any image.
func (c *Cell) SetGrapheme(cluster []rune) {
	c.dropImage()
	switch len(cluster) {
	case 0:
		c.kind = contentUnset
		c.ch = 0
		c.runes = nil
	case 1:
		c.SetChar(cluster[0])
	default:
		c.kind = contentGrapheme
		c.ch = 0
		c.runes = append(c.runes[:0:0], cluster...)
	}
}

// SetImage attaches an image, taking ownership of the buffer and
// clearing any character meaning.
func (c *Cell) SetImage(img *pixel.ImageRGB, id uint32) {
	c.kind = contentImage
	c.ch = 0
	c.runes = nil
	c.image = img
	c.imageID = id
	c.inverted = nil
	c.isInverted = false
	c.imageHash = 0
}

func (c *Cell) dropImage() {
	c.image = nil
	c.inverted = nil
	c.isInverted = false
	c.imageID = 0
	c.imageHash = 0
}

// Image returns the pixel buffer to render: the cached inverted
// variant when the cell has been inverted, otherwise the base image.
// Nil for non-image cells.
func (c *Cell) Image() *pixel.ImageRGB {
	if c.kind != contentImage {
		return nil
	}
	if c.isInverted {
		return c.inverted
	}
	return c.image
}

// ImageID returns the identity proxy of an image cell, 0 if unset.
func (c *Cell) ImageID() uint32 { return c.imageID }

// InvertImage switches the cell to its inverted variant, computing and
// caching it on first use. Each pixel is XORed against 0xFFFFFF;
// pixels whose packed value equals the mask itself are left unchanged.
// (That skip is load-bearing for existing consumers; keep it.)
func (c *Cell) InvertImage() {
	if c.kind != contentImage || c.isInverted {
		return
	}
	if c.inverted == nil {
		w, h := c.image.Width(), c.image.Height()
		inv := pixel.NewImageRGB(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := c.image.GetRGB(x, y)
				if p != invertMask {
					p ^= invertMask
				}
				inv.SetRGB(x, y, p)
			}
		}
		c.inverted = inv
	}
	c.isInverted = true
	c.imageHash = 0
}

// IsInverted reports whether the cell shows its inverted variant.
func (c *Cell) IsInverted() bool { return c.isInverted }

// CheckForSingleColor collapses the cell to a plain character cell when
// doing so cannot change its rendered appearance, and reports whether
// it collapsed. A cell with no image becomes a solid block (opaque) or
// a space. An image whose pixels all share one value becomes a
// character cell with foreground and background set to that color.
// This is purely a bandwidth optimization for the wire protocol.
func (c *Cell) CheckForSingleColor(opaque bool) bool {
	if c.kind != contentImage {
		c.collapseTo(opaque, c.Attr.Fore, c.Attr.Back)
		return true
	}
	img := c.Image()
	if img.Width() == 0 || img.Height() == 0 {
		return false
	}
	first := img.GetRGB(0, 0)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.GetRGB(x, y) != first {
				return false
			}
		}
	}
	color := RGBColor(pixel.FromPacked(first))
	c.collapseTo(opaque, color, color)
	return true
}

func (c *Cell) collapseTo(opaque bool, fore, back Color) {
	ch := ' '
	if opaque {
		ch = '█'
	}
	c.dropImage()
	c.kind = contentChar
	c.ch = ch
	c.runes = nil
	c.Attr.Fore = fore
	c.Attr.Back = back
}

// Columns returns the display width of the cell content in terminal
// columns. Image cells and halves of wide characters count one column.
func (c *Cell) Columns() int {
	switch c.kind {
	case contentChar:
		if c.Width != WidthSingle {
			return 1
		}
		return grapheme.RuneColumns(c.ch)
	case contentGrapheme:
		if c.Width != WidthSingle {
			return 1
		}
		return grapheme.ClusterColumns(c.runes)
	case contentImage:
		return 1
	}
	return 0
}

// EnsureImageHash memoizes the pixel hash of an image cell so later
// comparisons run in O(1). The diff layer calls this before comparing
// frames; Equal itself never mutates either side.
func (c *Cell) EnsureImageHash() {
	if c.kind != contentImage || c.imageHash != 0 {
		return
	}
	img := c.Image()
	h := fnvOffsetBasis
	h = fnvMix(h, uint64(img.Width()))
	h = fnvMix(h, uint64(img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			h = fnvMix(h, uint64(img.GetRGB(x, y)))
		}
	}
	if h == 0 {
		h = 1 // 0 means "not computed"
	}
	c.imageHash = h
}

// Equal reports whether two cells would render identically. Unset
// cells never match anything. Image cells match on matching
// invertedness plus matching nonzero image ids, or matching nonzero
// memoized hashes, or a full pixel comparison as the last resort.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return false
	}
	if c.kind == contentUnset || other.kind == contentUnset {
		return false
	}
	if c.kind == contentImage || other.kind == contentImage {
		if c.kind != other.kind {
			return false
		}
		return c.imageEqual(other)
	}
	if c.Width != other.Width || c.Attr != other.Attr {
		return false
	}
	if c.kind != other.kind {
		return false
	}
	if c.kind == contentChar {
		return c.ch == other.ch
	}
	if len(c.runes) != len(other.runes) {
		return false
	}
	for i, r := range c.runes {
		if other.runes[i] != r {
			return false
		}
	}
	return true
}

func (c *Cell) imageEqual(other *Cell) bool {
	if c.isInverted != other.isInverted {
		return false
	}
	if c.imageID != 0 && other.imageID != 0 {
		return c.imageID == other.imageID
	}
	if c.imageHash != 0 && other.imageHash != 0 {
		return c.imageHash == other.imageHash
	}
	a, b := c.Image(), other.Image()
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.GetRGB(x, y) != b.GetRGB(x, y) {
				return false
			}
		}
	}
	return true
}

// Hash returns a value consistent with Equal: equal cells share a
// hash. For image cells the memoized pixel hash is computed on demand.
func (c *Cell) Hash() uint64 {
	h := fnvOffsetBasis
	switch c.kind {
	case contentUnset:
		return h
	case contentImage:
		c.EnsureImageHash()
		h = fnvMix(h, uint64(c.kind))
		if c.isInverted {
			h = fnvMix(h, 1)
		}
		return fnvMix(h, c.imageHash)
	case contentChar:
		h = fnvMix(h, uint64(contentChar))
		h = fnvMix(h, uint64(c.ch))
	case contentGrapheme:
		h = fnvMix(h, uint64(contentGrapheme))
		for _, r := range c.runes {
			h = fnvMix(h, uint64(r))
		}
	}
	h = fnvMix(h, uint64(c.Width))
	return c.Attr.hash(h)
}
