// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grapheme/break.go
// Summary: Pairwise grapheme-cluster boundary decision.
// Notes: Deliberate simplifications, kept for compatibility with
//        existing consumers: consecutive regional indicators always
//        join (no pair parity), and the indic consonant-conjunct rule
//        is not applied. Do not "fix" either without checking the
//        downstream renderers first.

package grapheme

// ShouldBreak reports whether a grapheme-cluster boundary exists
// between two adjacent codepoints. It is a pure pairwise function:
// no state is carried across calls.
func ShouldBreak(first, second rune) bool {
	return shouldBreakClass(Classify(first), Classify(second))
}

func shouldBreakClass(first, second Class) bool {
	// CRLF stays together; any other pairing with CR, LF or a control
	// character breaks on both sides.
	if first == ClassCR && second == ClassLF {
		return false
	}
	if first == ClassCR || first == ClassLF || first == ClassControl {
		return true
	}
	if second == ClassCR || second == ClassLF || second == ClassControl {
		return true
	}

	// Hangul conjoining sequences.
	if first == ClassHangulL {
		switch second {
		case ClassHangulL, ClassHangulV, ClassHangulLV, ClassHangulLVT:
			return false
		}
	}
	if first == ClassHangulLV || first == ClassHangulV {
		if second == ClassHangulV || second == ClassHangulT {
			return false
		}
	}
	if first == ClassHangulLVT || first == ClassHangulT {
		if second == ClassHangulT {
			return false
		}
	}

	// Extending marks and the zero-width joiner glue to whatever
	// precedes them.
	if second == ClassExtend || second == ClassZWJ {
		return false
	}

	// Spacing marks glue backward; prepended marks glue forward.
	if second == ClassSpacingMark {
		return false
	}
	if first == ClassPrepend {
		return false
	}

	return !emojiJoins(first, second)
}

// emojiJoins handles emoji modifier and flag sequences.
func emojiJoins(first, second Class) bool {
	// Flags: consecutive regional indicators always join. This
	// intentionally ignores the UAX #29 pairs-only parity rule.
	if first == ClassRegionalIndicator {
		return second == ClassRegionalIndicator
	}

	// An emoji continuing a ZWJ sequence stays in the cluster.
	if first == ClassZWJ {
		return second.IsEmoji()
	}

	// A combiner (VS16, enclosing keycap) joins to anything; a
	// component (skin tone, hair, tags) joins only to emoji.
	if second == ClassEmojiCombiner {
		return true
	}
	if second == ClassEmojiComponent {
		return first.IsEmoji()
	}
	return false
}
