package builder

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// TTX serializes the strike as an EBDT/EBLC table pair in the XML
// interchange format the font assembler imports. Glyph images use
// bitmap format 1 (byte-aligned small-metrics); each contiguous
// glyph-id run gets its own format-1 index subtable so id gaps never
// fall inside a subtable, and the 32-bit offsets sidestep the 16-bit
// overflow a single large subtable would hit.
func (s *Strike) TTX() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<ttFont>\n")
	s.writeEBDT(&b)
	s.writeEBLC(&b)
	b.WriteString("</ttFont>\n")
	return b.String()
}

func (s *Strike) writeEBDT(b *strings.Builder) {
	b.WriteString("<EBDT>\n<header version=\"2.0\"/>\n<strikedata index=\"0\">\n")
	for _, e := range s.Entries {
		fmt.Fprintf(b, "  <ebdt_bitmap_format_1 name=%q>\n", e.Name)
		b.WriteString("    <SmallGlyphMetrics>\n")
		fmt.Fprintf(b, "      <height value=\"%d\"/>\n", e.Height)
		fmt.Fprintf(b, "      <width value=\"%d\"/>\n", e.Width)
		b.WriteString("      <BearingX value=\"0\"/>\n")
		fmt.Fprintf(b, "      <BearingY value=\"%d\"/>\n", s.Ascender)
		fmt.Fprintf(b, "      <Advance value=\"%d\"/>\n", e.Advance)
		b.WriteString("    </SmallGlyphMetrics>\n")
		b.WriteString("    <rawimagedata>\n")
		for _, row := range e.Rows {
			fmt.Fprintf(b, "      %s\n", hex.EncodeToString(row))
		}
		b.WriteString("    </rawimagedata>\n")
		b.WriteString("  </ebdt_bitmap_format_1>\n")
	}
	b.WriteString("</strikedata>\n</EBDT>\n")
}

func (s *Strike) writeEBLC(b *strings.Builder) {
	b.WriteString("<EBLC>\n<header version=\"2.0\"/>\n")
	b.WriteString("<strike index=\"0\">\n  <bitmapSizeTable>\n")
	b.WriteString("    <colorRef value=\"0\"/>\n")
	s.writeLineMetrics(b, "hori", 1)
	s.writeLineMetrics(b, "vert", 0)
	fmt.Fprintf(b, "    <startGlyphIndex value=\"%d\"/>\n", s.Entries[0].GID)
	fmt.Fprintf(b, "    <endGlyphIndex value=\"%d\"/>\n", s.Entries[len(s.Entries)-1].GID)
	fmt.Fprintf(b, "    <ppemX value=\"%d\"/>\n", s.PPEM)
	fmt.Fprintf(b, "    <ppemY value=\"%d\"/>\n", s.PPEM)
	b.WriteString("    <bitDepth value=\"1\"/>\n")
	b.WriteString("    <flags value=\"1\"/>\n")
	b.WriteString("  </bitmapSizeTable>\n")

	byGID := make(map[int]StrikeEntry, len(s.Entries))
	for _, e := range s.Entries {
		byGID[e.GID] = e
	}
	for _, run := range s.Runs {
		fmt.Fprintf(b, "  <eblc_index_sub_table_1 imageFormat=\"1\" firstGlyphIndex=\"%d\" lastGlyphIndex=\"%d\">\n",
			run.First, run.Last)
		for gid := run.First; gid <= run.Last; gid++ {
			fmt.Fprintf(b, "    <glyphLoc name=%q/>\n", byGID[gid].Name)
		}
		b.WriteString("  </eblc_index_sub_table_1>\n")
	}
	b.WriteString("</strike>\n</EBLC>\n")
}

func (s *Strike) writeLineMetrics(b *strings.Builder, direction string, caretNum int) {
	fmt.Fprintf(b, "    <sbitLineMetrics direction=%q>\n", direction)
	fmt.Fprintf(b, "      <ascender value=\"%d\"/>\n", s.Ascender)
	fmt.Fprintf(b, "      <descender value=\"%d\"/>\n", s.Descender)
	fmt.Fprintf(b, "      <widthMax value=\"%d\"/>\n", s.WidthMax)
	fmt.Fprintf(b, "      <caretSlopeNumerator value=\"%d\"/>\n", caretNum)
	b.WriteString("      <caretSlopeDenominator value=\"0\"/>\n")
	b.WriteString("      <caretOffset value=\"0\"/>\n")
	b.WriteString("      <minOriginSB value=\"0\"/>\n")
	b.WriteString("      <minAdvanceSB value=\"0\"/>\n")
	fmt.Fprintf(b, "      <maxBeforeBL value=\"%d\"/>\n", s.Ascender)
	fmt.Fprintf(b, "      <minAfterBL value=\"%d\"/>\n", s.Descender)
	b.WriteString("      <pad1 value=\"0\"/>\n")
	b.WriteString("      <pad2 value=\"0\"/>\n")
	b.WriteString("    </sbitLineMetrics>\n")
}
