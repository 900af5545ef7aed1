package builder

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// internalForms are the codepoint ranges that receive glyph slots but
// no character-map entry: the private-use runs holding shaping-internal
// presentation forms (Cyrillic locale forms, Indic and Sundanese
// internals), the composed jamo variants, and the internal control
// range. The codestyle block at U+F0520 stays user-visible.
var internalForms = rangetable.Merge(
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0xF0000, Hi: 0xF051F, Stride: 1}}},
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0xF1000, Hi: 0xF2FFF, Stride: 1}}},
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0xFFE00, Hi: 0xFFFFF, Stride: 1}}},
)

// charMapped reports whether a codepoint is user-visible and gets a
// character-map entry. Standard Unicode and the supplementary script
// blocks always do; shaping-internal forms never do.
func charMapped(cp rune) bool {
	return !unicode.Is(internalForms, cp)
}
