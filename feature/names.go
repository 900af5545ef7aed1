package feature

import (
	"fmt"
	"strings"
)

// GlyphName returns the production glyph name for a codepoint, in the
// convention the layout compiler and the font assembler share.
func GlyphName(cp rune) string {
	switch {
	case cp == 0:
		return ".notdef"
	case cp == 0x20:
		return "space"
	case cp <= 0xFFFF:
		return fmt.Sprintf("uni%04X", cp)
	case cp <= 0xFFFFF:
		return fmt.Sprintf("u%05X", cp)
	}
	return fmt.Sprintf("u%06X", cp)
}

// glyphNames joins the names of a codepoint sequence with spaces.
func glyphNames(cps []rune) string {
	names := make([]string, len(cps))
	for i, cp := range cps {
		names[i] = GlyphName(cp)
	}
	return strings.Join(names, " ")
}
