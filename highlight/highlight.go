// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Turns source text into colorized display lines.
// Usage: Colorize is the only entry point; callers hand the result to a
//        renderer or stuff it into scrollback.
// Notes: Language detection tries the filename first, then go-enry's
//        content classifier, then Chroma's analyser. Unknown input
//        degrades to plain uncolored lines, never to an error.

package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelgfx/cell"
	"github.com/framegrace/texelgfx/pixel"
	"github.com/framegrace/texelgfx/screen"
)

const defaultStyleName = "catppuccin-mocha"

// Colorize tokenizes source and returns one display line per input
// line, with token colors applied as RGB foreground attributes. Cells
// are built through grapheme segmentation so multi-codepoint clusters
// survive intact. filename may be empty; styleName falls back to the
// default style.
func Colorize(source, filename, styleName string) []*screen.DisplayLine {
	if source == "" {
		return nil
	}

	style := chromaStyle(styleName)
	lexer := chroma.Coalesce(detectLexer(filename, source))

	tokens, err := chroma.Tokenise(lexer, nil, source)
	if err != nil {
		return plainLines(source)
	}

	base := cell.DefaultAttributes()
	baseColour := style.Get(chroma.Text).Colour

	lines := []*screen.DisplayLine{screen.NewDisplayLine(base)}
	cur := lines[0]

	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		attr := tokenAttributes(style.Get(tok.Type), baseColour, base)

		rest := tok.Value
		for {
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 {
				cur.Append(cell.LayoutString(rest, attr)...)
				break
			}
			cur.Append(cell.LayoutString(rest[:nl], attr)...)
			cur = screen.NewDisplayLine(base)
			lines = append(lines, cur)
			rest = rest[nl+1:]
		}
	}

	// A trailing newline in the source leaves an empty final line;
	// callers expect one line per source line, not one extra.
	if n := len(lines); n > 1 && lines[n-1].Len() == 0 && strings.HasSuffix(source, "\n") {
		lines = lines[:n-1]
	}
	return lines
}

// chromaStyle resolves a style name, falling back to the default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// detectLexer resolves a lexer from the filename, then from go-enry's
// content classifier, then from Chroma's own analyser.
func detectLexer(filename, source string) chroma.Lexer {
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return l
		}
	}
	if lang := enry.GetLanguage(filename, []byte(source)); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}

// tokenAttributes maps a style entry onto cell attributes. Colors equal
// to the style's base text color are left as the default foreground so
// downstream theming still applies.
func tokenAttributes(entry chroma.StyleEntry, baseColour chroma.Colour, base cell.Attributes) cell.Attributes {
	attr := base
	if entry.Bold == chroma.Yes {
		attr.Bold = true
	}
	if entry.Underline == chroma.Yes {
		attr.Underline = true
	}
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		attr.Fore = cell.RGBColor(pixel.Rgb{
			R: entry.Colour.Red(),
			G: entry.Colour.Green(),
			B: entry.Colour.Blue(),
		})
	}
	return attr
}

// plainLines is the no-highlighting fallback.
func plainLines(source string) []*screen.DisplayLine {
	base := cell.DefaultAttributes()
	raw := strings.Split(strings.TrimSuffix(source, "\n"), "\n")
	lines := make([]*screen.DisplayLine, len(raw))
	for i, s := range raw {
		lines[i] = screen.NewDisplayLineFromText(s, base)
	}
	return lines
}
