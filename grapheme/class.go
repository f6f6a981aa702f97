// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grapheme/class.go
// Summary: Grapheme-cluster break classification for Unicode codepoints.
// Usage: Consumed by the segmenter and, through it, by cell construction.
// Notes: Classification is table-driven; codepoints matching no table
//        entry fall through to ClassOther rather than erroring.

package grapheme

// Class is the grapheme-cluster break class of a single codepoint.
type Class uint8

const (
	// ClassOther is the fallback for codepoints matching no other class.
	ClassOther Class = iota
	ClassPrepend
	ClassCR
	ClassLF
	ClassControl
	ClassExtend
	ClassSpacingMark
	ClassHangulL
	ClassHangulV
	ClassHangulT
	ClassHangulLV
	ClassHangulLVT
	ClassZWJ
	ClassRegionalIndicator
	ClassEmojiCore
	ClassEmojiComponent
	ClassEmojiCombiner
	ClassEmojiBMP
)

var classNames = [...]string{
	"Other", "Prepend", "CR", "LF", "Control", "Extend", "SpacingMark",
	"L", "V", "T", "LV", "LVT", "ZWJ", "RegionalIndicator",
	"EmojiCore", "EmojiComponent", "EmojiCombiner", "EmojiBMP",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Hangul syllable composition constants.
const (
	hangulSyllableBase = 0xAC00
	hangulSyllableLast = 0xD7A3
	hangulTCount       = 28
)

// Classify returns the break class of a codepoint.
func Classify(r rune) Class {
	switch r {
	case '\r':
		return ClassCR
	case '\n':
		return ClassLF
	case 0x200D:
		return ClassZWJ
	}

	// Precomposed Hangul syllables are arithmetic, not table entries:
	// a syllable with no trailing consonant is LV, the rest are LVT.
	if r >= hangulSyllableBase && r <= hangulSyllableLast {
		if (r-hangulSyllableBase)%hangulTCount == 0 {
			return ClassHangulLV
		}
		return ClassHangulLVT
	}

	return lookupClass(r)
}

// lookupClass binary-searches the sorted range table.
func lookupClass(r rune) Class {
	lo, hi := 0, len(classRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		e := classRanges[mid]
		switch {
		case r < e.lo:
			hi = mid
		case r > e.hi:
			lo = mid + 1
		default:
			return e.class
		}
	}
	return ClassOther
}

// IsEmoji reports whether a class belongs to the emoji family. Regional
// indicators are deliberately excluded; they join only with each other.
func (c Class) IsEmoji() bool {
	switch c {
	case ClassEmojiCore, ClassEmojiComponent, ClassEmojiCombiner, ClassEmojiBMP:
		return true
	}
	return false
}
