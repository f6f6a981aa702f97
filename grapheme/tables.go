// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grapheme/tables.go
// Summary: Sorted codepoint range tables backing the break classifier.
// Notes: Ranges must stay sorted and non-overlapping; lookupClass
//        binary-searches them. Precomposed Hangul syllables and the
//        CR/LF/ZWJ singletons are handled arithmetically in Classify
//        and do not appear here.

package grapheme

type classRange struct {
	lo, hi rune
	class  Class
}

var classRanges = []classRange{
	// C0 controls (minus CR/LF), DEL and C1 controls.
	{0x0000, 0x0009, ClassControl},
	{0x000B, 0x000C, ClassControl},
	{0x000E, 0x001F, ClassControl},
	{0x007F, 0x009F, ClassControl},
	{0x00AD, 0x00AD, ClassControl}, // soft hyphen

	// Combining diacritical marks.
	{0x0300, 0x036F, ClassExtend},
	{0x0483, 0x0489, ClassExtend},

	// Hebrew points.
	{0x0591, 0x05BD, ClassExtend},
	{0x05BF, 0x05BF, ClassExtend},
	{0x05C1, 0x05C2, ClassExtend},
	{0x05C4, 0x05C5, ClassExtend},
	{0x05C7, 0x05C7, ClassExtend},

	// Arabic number signs precede the digits they annotate.
	{0x0600, 0x0605, ClassPrepend},
	{0x0610, 0x061A, ClassExtend},
	{0x061C, 0x061C, ClassControl}, // Arabic letter mark
	{0x064B, 0x065F, ClassExtend},
	{0x0670, 0x0670, ClassExtend},
	{0x06D6, 0x06DC, ClassExtend},
	{0x06DD, 0x06DD, ClassPrepend},
	{0x06DF, 0x06E4, ClassExtend},
	{0x06E7, 0x06E8, ClassExtend},
	{0x06EA, 0x06ED, ClassExtend},

	// Syriac.
	{0x070F, 0x070F, ClassPrepend},
	{0x0711, 0x0711, ClassExtend},
	{0x0730, 0x074A, ClassExtend},

	// Thaana, NKo, Samaritan, Mandaic.
	{0x07A6, 0x07B0, ClassExtend},
	{0x07EB, 0x07F3, ClassExtend},
	{0x07FD, 0x07FD, ClassExtend},
	{0x0816, 0x0819, ClassExtend},
	{0x081B, 0x0823, ClassExtend},
	{0x0825, 0x0827, ClassExtend},
	{0x0829, 0x082D, ClassExtend},
	{0x0859, 0x085B, ClassExtend},

	// Arabic Extended-A.
	{0x08D3, 0x08E1, ClassExtend},
	{0x08E2, 0x08E2, ClassPrepend},
	{0x08E3, 0x0902, ClassExtend},

	// Devanagari.
	{0x0903, 0x0903, ClassSpacingMark},
	{0x093A, 0x093A, ClassExtend},
	{0x093B, 0x093B, ClassSpacingMark},
	{0x093C, 0x093C, ClassExtend},
	{0x093E, 0x0940, ClassSpacingMark},
	{0x0941, 0x0948, ClassExtend},
	{0x0949, 0x094C, ClassSpacingMark},
	{0x094D, 0x094D, ClassExtend},
	{0x094E, 0x094F, ClassSpacingMark},
	{0x0951, 0x0957, ClassExtend},
	{0x0962, 0x0963, ClassExtend},

	// Bengali.
	{0x0981, 0x0981, ClassExtend},
	{0x0982, 0x0983, ClassSpacingMark},
	{0x09BC, 0x09BC, ClassExtend},
	{0x09BE, 0x09BE, ClassExtend},
	{0x09BF, 0x09C0, ClassSpacingMark},
	{0x09C1, 0x09C4, ClassExtend},
	{0x09C7, 0x09C8, ClassSpacingMark},
	{0x09CB, 0x09CC, ClassSpacingMark},
	{0x09CD, 0x09CD, ClassExtend},
	{0x09D7, 0x09D7, ClassExtend},
	{0x09E2, 0x09E3, ClassExtend},
	{0x09FE, 0x09FE, ClassExtend},

	// Gurmukhi.
	{0x0A01, 0x0A02, ClassExtend},
	{0x0A03, 0x0A03, ClassSpacingMark},
	{0x0A3C, 0x0A3C, ClassExtend},
	{0x0A3E, 0x0A40, ClassSpacingMark},
	{0x0A41, 0x0A42, ClassExtend},
	{0x0A47, 0x0A48, ClassExtend},
	{0x0A4B, 0x0A4D, ClassExtend},
	{0x0A51, 0x0A51, ClassExtend},
	{0x0A70, 0x0A71, ClassExtend},
	{0x0A75, 0x0A75, ClassExtend},

	// Gujarati.
	{0x0A81, 0x0A82, ClassExtend},
	{0x0A83, 0x0A83, ClassSpacingMark},
	{0x0ABC, 0x0ABC, ClassExtend},
	{0x0ABE, 0x0AC0, ClassSpacingMark},
	{0x0AC1, 0x0AC5, ClassExtend},
	{0x0AC7, 0x0AC8, ClassExtend},
	{0x0AC9, 0x0AC9, ClassSpacingMark},
	{0x0ACB, 0x0ACC, ClassSpacingMark},
	{0x0ACD, 0x0ACD, ClassExtend},
	{0x0AE2, 0x0AE3, ClassExtend},
	{0x0AFA, 0x0AFF, ClassExtend},

	// Oriya.
	{0x0B01, 0x0B01, ClassExtend},
	{0x0B02, 0x0B03, ClassSpacingMark},
	{0x0B3C, 0x0B3C, ClassExtend},
	{0x0B3E, 0x0B3F, ClassExtend},
	{0x0B40, 0x0B40, ClassSpacingMark},
	{0x0B41, 0x0B44, ClassExtend},
	{0x0B47, 0x0B48, ClassSpacingMark},
	{0x0B4B, 0x0B4C, ClassSpacingMark},
	{0x0B4D, 0x0B4D, ClassExtend},
	{0x0B56, 0x0B57, ClassExtend},
	{0x0B62, 0x0B63, ClassExtend},

	// Tamil.
	{0x0B82, 0x0B82, ClassExtend},
	{0x0BBE, 0x0BBE, ClassExtend},
	{0x0BBF, 0x0BBF, ClassSpacingMark},
	{0x0BC0, 0x0BC0, ClassExtend},
	{0x0BC1, 0x0BC2, ClassSpacingMark},
	{0x0BC6, 0x0BC8, ClassSpacingMark},
	{0x0BCA, 0x0BCC, ClassSpacingMark},
	{0x0BCD, 0x0BCD, ClassExtend},
	{0x0BD7, 0x0BD7, ClassExtend},

	// Telugu.
	{0x0C00, 0x0C00, ClassExtend},
	{0x0C01, 0x0C03, ClassSpacingMark},
	{0x0C04, 0x0C04, ClassExtend},
	{0x0C3E, 0x0C40, ClassExtend},
	{0x0C41, 0x0C44, ClassSpacingMark},
	{0x0C46, 0x0C48, ClassExtend},
	{0x0C4A, 0x0C4D, ClassExtend},
	{0x0C55, 0x0C56, ClassExtend},
	{0x0C62, 0x0C63, ClassExtend},

	// Kannada.
	{0x0C81, 0x0C81, ClassExtend},
	{0x0C82, 0x0C83, ClassSpacingMark},
	{0x0CBC, 0x0CBC, ClassExtend},
	{0x0CBE, 0x0CBE, ClassSpacingMark},
	{0x0CBF, 0x0CBF, ClassExtend},
	{0x0CC0, 0x0CC1, ClassSpacingMark},
	{0x0CC2, 0x0CC2, ClassExtend},
	{0x0CC3, 0x0CC4, ClassSpacingMark},
	{0x0CC6, 0x0CC6, ClassExtend},
	{0x0CC7, 0x0CC8, ClassSpacingMark},
	{0x0CCA, 0x0CCB, ClassSpacingMark},
	{0x0CCC, 0x0CCD, ClassExtend},
	{0x0CD5, 0x0CD6, ClassExtend},
	{0x0CE2, 0x0CE3, ClassExtend},

	// Malayalam.
	{0x0D00, 0x0D01, ClassExtend},
	{0x0D02, 0x0D03, ClassSpacingMark},
	{0x0D3B, 0x0D3C, ClassExtend},
	{0x0D3E, 0x0D3E, ClassExtend},
	{0x0D3F, 0x0D40, ClassSpacingMark},
	{0x0D41, 0x0D44, ClassExtend},
	{0x0D46, 0x0D48, ClassSpacingMark},
	{0x0D4A, 0x0D4C, ClassSpacingMark},
	{0x0D4D, 0x0D4D, ClassExtend},
	{0x0D4E, 0x0D4E, ClassPrepend},
	{0x0D57, 0x0D57, ClassExtend},
	{0x0D62, 0x0D63, ClassExtend},

	// Sinhala.
	{0x0D81, 0x0D81, ClassExtend},
	{0x0D82, 0x0D83, ClassSpacingMark},
	{0x0DCA, 0x0DCA, ClassExtend},
	{0x0DCF, 0x0DCF, ClassExtend},
	{0x0DD0, 0x0DD1, ClassSpacingMark},
	{0x0DD2, 0x0DD4, ClassExtend},
	{0x0DD6, 0x0DD6, ClassExtend},
	{0x0DD8, 0x0DDE, ClassSpacingMark},
	{0x0DDF, 0x0DDF, ClassExtend},
	{0x0DF2, 0x0DF3, ClassSpacingMark},

	// Thai.
	{0x0E31, 0x0E31, ClassExtend},
	{0x0E33, 0x0E33, ClassSpacingMark},
	{0x0E34, 0x0E3A, ClassExtend},
	{0x0E47, 0x0E4E, ClassExtend},

	// Lao.
	{0x0EB1, 0x0EB1, ClassExtend},
	{0x0EB3, 0x0EB3, ClassSpacingMark},
	{0x0EB4, 0x0EBC, ClassExtend},
	{0x0EC8, 0x0ECD, ClassExtend},

	// Tibetan.
	{0x0F18, 0x0F19, ClassExtend},
	{0x0F35, 0x0F35, ClassExtend},
	{0x0F37, 0x0F37, ClassExtend},
	{0x0F39, 0x0F39, ClassExtend},
	{0x0F3E, 0x0F3F, ClassSpacingMark},
	{0x0F71, 0x0F7E, ClassExtend},
	{0x0F7F, 0x0F7F, ClassSpacingMark},
	{0x0F80, 0x0F84, ClassExtend},
	{0x0F86, 0x0F87, ClassExtend},
	{0x0F8D, 0x0F97, ClassExtend},
	{0x0F99, 0x0FBC, ClassExtend},
	{0x0FC6, 0x0FC6, ClassExtend},

	// Myanmar.
	{0x102D, 0x1030, ClassExtend},
	{0x1031, 0x1031, ClassSpacingMark},
	{0x1032, 0x1037, ClassExtend},
	{0x1039, 0x103A, ClassExtend},
	{0x103B, 0x103C, ClassSpacingMark},
	{0x103D, 0x103E, ClassExtend},
	{0x1056, 0x1057, ClassSpacingMark},
	{0x1058, 0x1059, ClassExtend},
	{0x105E, 0x1060, ClassExtend},
	{0x1071, 0x1074, ClassExtend},
	{0x1082, 0x1082, ClassExtend},
	{0x1084, 0x1084, ClassSpacingMark},
	{0x1085, 0x1086, ClassExtend},
	{0x108D, 0x108D, ClassExtend},
	{0x109D, 0x109D, ClassExtend},

	// Hangul conjoining jamo.
	{0x1100, 0x115F, ClassHangulL},
	{0x1160, 0x11A7, ClassHangulV},
	{0x11A8, 0x11FF, ClassHangulT},

	// Ethiopic.
	{0x135D, 0x135F, ClassExtend},

	// Tagalog family.
	{0x1712, 0x1714, ClassExtend},
	{0x1732, 0x1734, ClassExtend},
	{0x1752, 0x1753, ClassExtend},
	{0x1772, 0x1773, ClassExtend},

	// Khmer.
	{0x17B4, 0x17B5, ClassExtend},
	{0x17B6, 0x17B6, ClassSpacingMark},
	{0x17B7, 0x17BD, ClassExtend},
	{0x17BE, 0x17C5, ClassSpacingMark},
	{0x17C6, 0x17C6, ClassExtend},
	{0x17C7, 0x17C8, ClassSpacingMark},
	{0x17C9, 0x17D3, ClassExtend},
	{0x17DD, 0x17DD, ClassExtend},

	// Mongolian.
	{0x180B, 0x180D, ClassExtend},
	{0x180E, 0x180E, ClassControl},
	{0x1885, 0x1886, ClassExtend},
	{0x18A9, 0x18A9, ClassExtend},

	// Limbu.
	{0x1920, 0x1922, ClassExtend},
	{0x1923, 0x1926, ClassSpacingMark},
	{0x1927, 0x1928, ClassExtend},
	{0x1929, 0x192B, ClassSpacingMark},
	{0x1930, 0x1931, ClassSpacingMark},
	{0x1932, 0x1932, ClassExtend},
	{0x1933, 0x1938, ClassSpacingMark},
	{0x1939, 0x193B, ClassExtend},

	// Tai Tham.
	{0x1A17, 0x1A18, ClassExtend},
	{0x1A19, 0x1A1A, ClassSpacingMark},
	{0x1A1B, 0x1A1B, ClassExtend},
	{0x1A55, 0x1A55, ClassSpacingMark},
	{0x1A56, 0x1A56, ClassExtend},
	{0x1A57, 0x1A57, ClassSpacingMark},
	{0x1A58, 0x1A5E, ClassExtend},
	{0x1A60, 0x1A60, ClassExtend},
	{0x1A62, 0x1A62, ClassExtend},
	{0x1A65, 0x1A6C, ClassExtend},
	{0x1A6D, 0x1A72, ClassSpacingMark},
	{0x1A73, 0x1A7C, ClassExtend},
	{0x1A7F, 0x1A7F, ClassExtend},

	// Combining Diacritical Marks Extended.
	{0x1AB0, 0x1AFF, ClassExtend},

	// Balinese.
	{0x1B00, 0x1B03, ClassExtend},
	{0x1B04, 0x1B04, ClassSpacingMark},
	{0x1B34, 0x1B3A, ClassExtend},
	{0x1B3B, 0x1B3B, ClassSpacingMark},
	{0x1B3C, 0x1B3C, ClassExtend},
	{0x1B3D, 0x1B41, ClassSpacingMark},
	{0x1B42, 0x1B42, ClassExtend},
	{0x1B43, 0x1B44, ClassSpacingMark},
	{0x1B6B, 0x1B73, ClassExtend},

	// Sundanese.
	{0x1B80, 0x1B81, ClassExtend},
	{0x1B82, 0x1B82, ClassSpacingMark},
	{0x1BA1, 0x1BA1, ClassSpacingMark},
	{0x1BA2, 0x1BA5, ClassExtend},
	{0x1BA6, 0x1BA7, ClassSpacingMark},
	{0x1BA8, 0x1BA9, ClassExtend},
	{0x1BAA, 0x1BAA, ClassSpacingMark},
	{0x1BAB, 0x1BAD, ClassExtend},

	// Batak.
	{0x1BE6, 0x1BE6, ClassExtend},
	{0x1BE7, 0x1BE7, ClassSpacingMark},
	{0x1BE8, 0x1BE9, ClassExtend},
	{0x1BEA, 0x1BEC, ClassSpacingMark},
	{0x1BED, 0x1BED, ClassExtend},
	{0x1BEE, 0x1BEE, ClassSpacingMark},
	{0x1BEF, 0x1BF1, ClassExtend},
	{0x1BF2, 0x1BF3, ClassSpacingMark},

	// Lepcha.
	{0x1C24, 0x1C2B, ClassSpacingMark},
	{0x1C2C, 0x1C33, ClassExtend},
	{0x1C34, 0x1C35, ClassSpacingMark},
	{0x1C36, 0x1C37, ClassExtend},

	// Vedic extensions.
	{0x1CD0, 0x1CD2, ClassExtend},
	{0x1CD4, 0x1CE0, ClassExtend},
	{0x1CE1, 0x1CE1, ClassSpacingMark},
	{0x1CE2, 0x1CE8, ClassExtend},
	{0x1CED, 0x1CED, ClassExtend},
	{0x1CF4, 0x1CF4, ClassExtend},
	{0x1CF7, 0x1CF7, ClassSpacingMark},
	{0x1CF8, 0x1CF9, ClassExtend},

	// Combining Diacritical Marks Supplement.
	{0x1DC0, 0x1DFF, ClassExtend},

	// Format characters.
	{0x200B, 0x200B, ClassControl},
	{0x200C, 0x200C, ClassExtend}, // ZWNJ
	{0x200E, 0x200F, ClassControl},
	{0x2028, 0x202E, ClassControl},
	{0x203C, 0x203C, ClassEmojiBMP},
	{0x2049, 0x2049, ClassEmojiBMP},
	{0x2060, 0x206F, ClassControl},

	// Combining marks for symbols, with the enclosing keycap split out:
	// the keycap combines leftward regardless of what precedes it.
	{0x20D0, 0x20E2, ClassExtend},
	{0x20E3, 0x20E3, ClassEmojiCombiner},
	{0x20E4, 0x20FF, ClassExtend},

	// BMP emoji-capable symbols.
	{0x2122, 0x2122, ClassEmojiBMP},
	{0x2139, 0x2139, ClassEmojiBMP},
	{0x2194, 0x2199, ClassEmojiBMP},
	{0x21A9, 0x21AA, ClassEmojiBMP},
	{0x231A, 0x231B, ClassEmojiBMP},
	{0x2328, 0x2328, ClassEmojiBMP},
	{0x23CF, 0x23CF, ClassEmojiBMP},
	{0x23E9, 0x23F3, ClassEmojiBMP},
	{0x23F8, 0x23FA, ClassEmojiBMP},
	{0x24C2, 0x24C2, ClassEmojiBMP},
	{0x25AA, 0x25AB, ClassEmojiBMP},
	{0x25B6, 0x25B6, ClassEmojiBMP},
	{0x25C0, 0x25C0, ClassEmojiBMP},
	{0x25FB, 0x25FE, ClassEmojiBMP},
	{0x2600, 0x27BF, ClassEmojiBMP},
	{0x2934, 0x2935, ClassEmojiBMP},
	{0x2B05, 0x2B07, ClassEmojiBMP},
	{0x2B1B, 0x2B1C, ClassEmojiBMP},
	{0x2B50, 0x2B50, ClassEmojiBMP},
	{0x2B55, 0x2B55, ClassEmojiBMP},

	// Coptic, Tifinagh, Cyrillic Extended-A.
	{0x2CEF, 0x2CF1, ClassExtend},
	{0x2D7F, 0x2D7F, ClassExtend},
	{0x2DE0, 0x2DFF, ClassExtend},

	// CJK combining characters.
	{0x302A, 0x302F, ClassExtend},
	{0x3030, 0x3030, ClassEmojiBMP},
	{0x303D, 0x303D, ClassEmojiBMP},
	{0x3099, 0x309A, ClassExtend},
	{0x3297, 0x3297, ClassEmojiBMP},
	{0x3299, 0x3299, ClassEmojiBMP},

	// Cyrillic Extended-B, Bamum.
	{0xA66F, 0xA672, ClassExtend},
	{0xA674, 0xA67D, ClassExtend},
	{0xA69E, 0xA69F, ClassExtend},
	{0xA6F0, 0xA6F1, ClassExtend},

	// Syloti Nagri, Saurashtra, Devanagari Extended.
	{0xA802, 0xA802, ClassExtend},
	{0xA806, 0xA806, ClassExtend},
	{0xA80B, 0xA80B, ClassExtend},
	{0xA823, 0xA824, ClassSpacingMark},
	{0xA825, 0xA826, ClassExtend},
	{0xA827, 0xA827, ClassSpacingMark},
	{0xA880, 0xA881, ClassSpacingMark},
	{0xA8B4, 0xA8C3, ClassSpacingMark},
	{0xA8C4, 0xA8C5, ClassExtend},
	{0xA8E0, 0xA8F1, ClassExtend},
	{0xA8FF, 0xA8FF, ClassExtend},

	// Kayah Li, Rejang.
	{0xA926, 0xA92D, ClassExtend},
	{0xA947, 0xA951, ClassExtend},
	{0xA952, 0xA953, ClassSpacingMark},

	// Hangul Jamo Extended-A.
	{0xA960, 0xA97C, ClassHangulL},

	// Javanese.
	{0xA980, 0xA982, ClassExtend},
	{0xA983, 0xA983, ClassSpacingMark},
	{0xA9B3, 0xA9B3, ClassExtend},
	{0xA9B4, 0xA9B5, ClassSpacingMark},
	{0xA9B6, 0xA9B9, ClassExtend},
	{0xA9BA, 0xA9BB, ClassSpacingMark},
	{0xA9BC, 0xA9BD, ClassExtend},
	{0xA9BE, 0xA9C0, ClassSpacingMark},
	{0xA9E5, 0xA9E5, ClassExtend},

	// Cham, Myanmar Extended-A, Tai Viet, Meetei Mayek.
	{0xAA29, 0xAA2E, ClassExtend},
	{0xAA2F, 0xAA30, ClassSpacingMark},
	{0xAA31, 0xAA32, ClassExtend},
	{0xAA33, 0xAA34, ClassSpacingMark},
	{0xAA35, 0xAA36, ClassExtend},
	{0xAA43, 0xAA43, ClassExtend},
	{0xAA4C, 0xAA4C, ClassExtend},
	{0xAA4D, 0xAA4D, ClassSpacingMark},
	{0xAA7C, 0xAA7C, ClassExtend},
	{0xAAB0, 0xAAB0, ClassExtend},
	{0xAAB2, 0xAAB4, ClassExtend},
	{0xAAB7, 0xAAB8, ClassExtend},
	{0xAABE, 0xAABF, ClassExtend},
	{0xAAC1, 0xAAC1, ClassExtend},
	{0xAAEB, 0xAAEB, ClassSpacingMark},
	{0xAAEC, 0xAAED, ClassExtend},
	{0xAAEE, 0xAAEF, ClassSpacingMark},
	{0xAAF5, 0xAAF5, ClassSpacingMark},
	{0xAAF6, 0xAAF6, ClassExtend},
	{0xABE3, 0xABE4, ClassSpacingMark},
	{0xABE5, 0xABE5, ClassExtend},
	{0xABE6, 0xABE7, ClassSpacingMark},
	{0xABE8, 0xABE8, ClassExtend},
	{0xABE9, 0xABEA, ClassSpacingMark},
	{0xABEC, 0xABEC, ClassSpacingMark},
	{0xABED, 0xABED, ClassExtend},

	// Hangul Jamo Extended-B.
	{0xD7B0, 0xD7C6, ClassHangulV},
	{0xD7CB, 0xD7FB, ClassHangulT},

	// Hebrew presentation, variation selectors, half marks.
	{0xFB1E, 0xFB1E, ClassExtend},
	{0xFE00, 0xFE0E, ClassExtend},
	{0xFE0F, 0xFE0F, ClassEmojiCombiner}, // VS16, emoji presentation
	{0xFE20, 0xFE2F, ClassExtend},
	{0xFEFF, 0xFEFF, ClassControl},
	{0xFF9E, 0xFF9F, ClassExtend}, // halfwidth voiced sound marks
	{0xFFF0, 0xFFFB, ClassControl},

	// SMP combining marks.
	{0x101FD, 0x101FD, ClassExtend},
	{0x102E0, 0x102E0, ClassExtend},
	{0x10376, 0x1037A, ClassExtend},
	{0x10A01, 0x10A03, ClassExtend},
	{0x10A05, 0x10A06, ClassExtend},
	{0x10A0C, 0x10A0F, ClassExtend},
	{0x10A38, 0x10A3A, ClassExtend},
	{0x10A3F, 0x10A3F, ClassExtend},
	{0x10AE5, 0x10AE6, ClassExtend},
	{0x10D24, 0x10D27, ClassExtend},
	{0x10F46, 0x10F50, ClassExtend},

	// Brahmi, Kaithi, Chakma, Sharada and friends.
	{0x11000, 0x11000, ClassSpacingMark},
	{0x11001, 0x11001, ClassExtend},
	{0x11002, 0x11002, ClassSpacingMark},
	{0x11038, 0x11046, ClassExtend},
	{0x1107F, 0x11081, ClassExtend},
	{0x11082, 0x11082, ClassSpacingMark},
	{0x110B0, 0x110B2, ClassSpacingMark},
	{0x110B3, 0x110B6, ClassExtend},
	{0x110B7, 0x110B8, ClassSpacingMark},
	{0x110B9, 0x110BA, ClassExtend},
	{0x110BD, 0x110BD, ClassPrepend},
	{0x110CD, 0x110CD, ClassPrepend},
	{0x11100, 0x11102, ClassExtend},
	{0x11127, 0x1112B, ClassExtend},
	{0x1112C, 0x1112C, ClassSpacingMark},
	{0x1112D, 0x11134, ClassExtend},
	{0x11145, 0x11146, ClassSpacingMark},
	{0x11173, 0x11173, ClassExtend},
	{0x11180, 0x11181, ClassExtend},
	{0x11182, 0x11182, ClassSpacingMark},
	{0x111B3, 0x111B5, ClassSpacingMark},
	{0x111B6, 0x111BE, ClassExtend},
	{0x111BF, 0x111C0, ClassSpacingMark},
	{0x111C2, 0x111C3, ClassPrepend},
	{0x111C9, 0x111CC, ClassExtend},
	{0x111CE, 0x111CE, ClassSpacingMark},
	{0x111CF, 0x111CF, ClassExtend},
	{0x1122C, 0x1122E, ClassSpacingMark},
	{0x1122F, 0x11231, ClassExtend},
	{0x11232, 0x11233, ClassSpacingMark},
	{0x11234, 0x11234, ClassExtend},
	{0x11235, 0x11235, ClassSpacingMark},
	{0x11236, 0x11237, ClassExtend},
	{0x1123E, 0x1123E, ClassExtend},
	{0x112DF, 0x112DF, ClassExtend},
	{0x112E0, 0x112E2, ClassSpacingMark},
	{0x112E3, 0x112EA, ClassExtend},
	{0x11300, 0x11301, ClassExtend},
	{0x11302, 0x11303, ClassSpacingMark},
	{0x1133B, 0x1133C, ClassExtend},
	{0x1133E, 0x1133E, ClassExtend},
	{0x1133F, 0x1133F, ClassSpacingMark},
	{0x11340, 0x11340, ClassExtend},
	{0x11341, 0x11344, ClassSpacingMark},
	{0x11347, 0x11348, ClassSpacingMark},
	{0x1134B, 0x1134D, ClassSpacingMark},
	{0x11357, 0x11357, ClassExtend},
	{0x11362, 0x11363, ClassSpacingMark},
	{0x11366, 0x1136C, ClassExtend},
	{0x11370, 0x11374, ClassExtend},
	{0x11435, 0x11437, ClassSpacingMark},
	{0x11438, 0x1143F, ClassExtend},
	{0x11440, 0x11441, ClassSpacingMark},
	{0x11442, 0x11444, ClassExtend},
	{0x11445, 0x11445, ClassSpacingMark},
	{0x11446, 0x11446, ClassExtend},
	{0x1145E, 0x1145E, ClassExtend},
	{0x114B0, 0x114B0, ClassExtend},
	{0x114B1, 0x114B2, ClassSpacingMark},
	{0x114B3, 0x114B8, ClassExtend},
	{0x114B9, 0x114B9, ClassSpacingMark},
	{0x114BA, 0x114BA, ClassExtend},
	{0x114BB, 0x114BC, ClassSpacingMark},
	{0x114BD, 0x114BD, ClassExtend},
	{0x114BE, 0x114BE, ClassSpacingMark},
	{0x114BF, 0x114C1, ClassExtend},
	{0x114C2, 0x114C3, ClassExtend},
	{0x115AF, 0x115AF, ClassExtend},
	{0x115B0, 0x115B1, ClassSpacingMark},
	{0x115B2, 0x115B5, ClassExtend},
	{0x115B8, 0x115BB, ClassSpacingMark},
	{0x115BC, 0x115BD, ClassExtend},
	{0x115BE, 0x115BE, ClassSpacingMark},
	{0x115BF, 0x115C0, ClassExtend},
	{0x115DC, 0x115DD, ClassExtend},
	{0x11630, 0x11632, ClassSpacingMark},
	{0x11633, 0x1163A, ClassExtend},
	{0x1163B, 0x1163C, ClassSpacingMark},
	{0x1163D, 0x1163D, ClassExtend},
	{0x1163E, 0x1163E, ClassSpacingMark},
	{0x1163F, 0x11640, ClassExtend},
	{0x116AB, 0x116AB, ClassExtend},
	{0x116AC, 0x116AC, ClassSpacingMark},
	{0x116AD, 0x116AD, ClassExtend},
	{0x116AE, 0x116AF, ClassSpacingMark},
	{0x116B0, 0x116B5, ClassExtend},
	{0x116B6, 0x116B6, ClassSpacingMark},
	{0x116B7, 0x116B7, ClassExtend},
	{0x1171D, 0x1171F, ClassExtend},
	{0x11720, 0x11721, ClassSpacingMark},
	{0x11722, 0x11725, ClassExtend},
	{0x11726, 0x11726, ClassSpacingMark},
	{0x11727, 0x1172B, ClassExtend},
	{0x1182C, 0x1182E, ClassSpacingMark},
	{0x1182F, 0x11837, ClassExtend},
	{0x11838, 0x11838, ClassSpacingMark},
	{0x11839, 0x1183A, ClassExtend},
	{0x11930, 0x11935, ClassSpacingMark},
	{0x11937, 0x11938, ClassSpacingMark},
	{0x1193B, 0x1193C, ClassExtend},
	{0x1193D, 0x1193D, ClassSpacingMark},
	{0x1193E, 0x1193E, ClassExtend},
	{0x1193F, 0x1193F, ClassPrepend},
	{0x11940, 0x11940, ClassSpacingMark},
	{0x11941, 0x11941, ClassPrepend},
	{0x11942, 0x11942, ClassSpacingMark},
	{0x11943, 0x11943, ClassExtend},
	{0x119D1, 0x119D3, ClassSpacingMark},
	{0x119D4, 0x119D7, ClassExtend},
	{0x119DA, 0x119DB, ClassExtend},
	{0x119DC, 0x119DF, ClassSpacingMark},
	{0x119E0, 0x119E0, ClassExtend},
	{0x119E4, 0x119E4, ClassSpacingMark},
	{0x11A01, 0x11A0A, ClassExtend},
	{0x11A33, 0x11A38, ClassExtend},
	{0x11A39, 0x11A39, ClassSpacingMark},
	{0x11A3A, 0x11A3A, ClassPrepend},
	{0x11A3B, 0x11A3E, ClassExtend},
	{0x11A47, 0x11A47, ClassExtend},
	{0x11A51, 0x11A56, ClassExtend},
	{0x11A57, 0x11A58, ClassSpacingMark},
	{0x11A59, 0x11A5B, ClassExtend},
	{0x11A84, 0x11A89, ClassPrepend},
	{0x11A8A, 0x11A96, ClassExtend},
	{0x11A97, 0x11A97, ClassSpacingMark},
	{0x11A98, 0x11A99, ClassExtend},
	{0x11C2F, 0x11C2F, ClassSpacingMark},
	{0x11C30, 0x11C36, ClassExtend},
	{0x11C38, 0x11C3D, ClassExtend},
	{0x11C3E, 0x11C3E, ClassSpacingMark},
	{0x11C3F, 0x11C3F, ClassExtend},
	{0x11C92, 0x11CA7, ClassExtend},
	{0x11CA9, 0x11CA9, ClassSpacingMark},
	{0x11CAA, 0x11CB0, ClassExtend},
	{0x11CB1, 0x11CB1, ClassSpacingMark},
	{0x11CB2, 0x11CB3, ClassExtend},
	{0x11CB4, 0x11CB4, ClassSpacingMark},
	{0x11CB5, 0x11CB6, ClassExtend},
	{0x11D31, 0x11D36, ClassExtend},
	{0x11D3A, 0x11D3A, ClassExtend},
	{0x11D3C, 0x11D3D, ClassExtend},
	{0x11D3F, 0x11D45, ClassExtend},
	{0x11D46, 0x11D46, ClassPrepend},
	{0x11D47, 0x11D47, ClassExtend},
	{0x11D8A, 0x11D8E, ClassSpacingMark},
	{0x11D90, 0x11D91, ClassExtend},
	{0x11D93, 0x11D94, ClassSpacingMark},
	{0x11D95, 0x11D95, ClassExtend},
	{0x11D96, 0x11D96, ClassSpacingMark},
	{0x11D97, 0x11D97, ClassExtend},
	{0x11EF3, 0x11EF4, ClassExtend},
	{0x11EF5, 0x11EF6, ClassSpacingMark},

	// Musical symbols.
	{0x16AF0, 0x16AF4, ClassExtend},
	{0x16B30, 0x16B36, ClassExtend},
	{0x16F4F, 0x16F4F, ClassExtend},
	{0x16F51, 0x16F87, ClassSpacingMark},
	{0x16F8F, 0x16F92, ClassExtend},
	{0x1BC9D, 0x1BC9E, ClassExtend},
	{0x1BCA0, 0x1BCA3, ClassControl},
	{0x1D165, 0x1D166, ClassExtend},
	{0x1D167, 0x1D169, ClassExtend},
	{0x1D16D, 0x1D172, ClassSpacingMark},
	{0x1D173, 0x1D17A, ClassControl},
	{0x1D17B, 0x1D182, ClassExtend},
	{0x1D185, 0x1D18B, ClassExtend},
	{0x1D1AA, 0x1D1AD, ClassExtend},
	{0x1D242, 0x1D244, ClassExtend},

	// Sutton SignWriting, Glagolitic supplement, Nyiakeng, Wancho, Adlam.
	{0x1DA00, 0x1DA36, ClassExtend},
	{0x1DA3B, 0x1DA6C, ClassExtend},
	{0x1DA75, 0x1DA75, ClassExtend},
	{0x1DA84, 0x1DA84, ClassExtend},
	{0x1DA9B, 0x1DA9F, ClassExtend},
	{0x1DAA1, 0x1DAAF, ClassExtend},
	{0x1E000, 0x1E006, ClassExtend},
	{0x1E008, 0x1E018, ClassExtend},
	{0x1E01B, 0x1E021, ClassExtend},
	{0x1E023, 0x1E024, ClassExtend},
	{0x1E026, 0x1E02A, ClassExtend},
	{0x1E130, 0x1E136, ClassExtend},
	{0x1E2EC, 0x1E2EF, ClassExtend},
	{0x1E8D0, 0x1E8D6, ClassExtend},
	{0x1E944, 0x1E94A, ClassExtend},

	// SMP emoji. Regional indicators split out of the enclosed block.
	{0x1F000, 0x1F0FF, ClassEmojiCore},
	{0x1F170, 0x1F1E5, ClassEmojiCore},
	{0x1F1E6, 0x1F1FF, ClassRegionalIndicator},
	{0x1F200, 0x1F251, ClassEmojiCore},
	{0x1F300, 0x1F3FA, ClassEmojiCore},
	{0x1F3FB, 0x1F3FF, ClassEmojiComponent}, // skin tone modifiers
	{0x1F400, 0x1F9AF, ClassEmojiCore},
	{0x1F9B0, 0x1F9B3, ClassEmojiComponent}, // hair components
	{0x1F9B4, 0x1FAFF, ClassEmojiCore},

	// Tags and variation selector supplement.
	{0xE0000, 0xE001F, ClassControl},
	{0xE0020, 0xE007F, ClassEmojiComponent}, // tag characters (subdivision flags)
	{0xE0080, 0xE00FF, ClassControl},
	{0xE0100, 0xE01EF, ClassExtend},
}
