package sheet

import "github.com/curioustorvald/tsbbuild/glyph"

// The johab sheet is not a plain codepoint grid: each column is one
// jamo, each row one positional variant. Default rows per jamo class:
//
//	row 0      Hangul Compatibility Jamo artwork
//	row 1      choseong (leading consonant), basic-vowel context
//	rows 2-14  choseong variants selected by the following vowel
//	row 15     jungseong (vowel), no trailing consonant
//	row 16     jungseong, with trailing consonant
//	row 17     jongseong (trailing consonant)
//	row 18     jongseong after a right-leaning vowel
//	rows 19-24 choseong variants for the giyeok remapping
//
// Column mapping of the jamo classes:
//
//	choseong   U+1100-115F → column cp-0x1100;  U+A960-A97F → 96+offset
//	jungseong  U+1160-11A7 → column cp-0x1160;  U+D7B0-D7C6 → 72+offset
//	jongseong  U+11A8-11FF → column cp-0x11A8+1; U+D7CB-D7FB → 89+offset

// JamoSheet provides cell-addressed access to the johab sheet for the
// Hangul compositor.
type JamoSheet struct {
	ras *Raster
}

// NewJamoSheet wraps a decoded johab raster.
func NewJamoSheet(ras *Raster) *JamoSheet {
	return &JamoSheet{ras: ras}
}

// Cell cuts the jamo bitmap at (col, row).
func (js *JamoSheet) Cell(col, row int) glyph.Bitmap {
	return cellBitmap(js.ras, col*WHangulBase, row*CellH, WHangulBase, CellH)
}

// MaxCol returns the number of jamo columns present in the sheet.
func (js *JamoSheet) MaxCol() int { return js.ras.Width / WHangulBase }

// MaxRow returns the number of variant rows present in the sheet.
func (js *JamoSheet) MaxRow() int { return js.ras.Height / CellH }

// DecodeHangulJamoSheet decodes the johab sheet's default-row bitmap
// for every jamo codepoint the descriptor declares. Variant rows are
// the compositor's business and are read through JamoSheet.
func DecodeHangulJamoSheet(ras *Raster, d Descriptor) []*glyph.Glyph {
	js := NewJamoSheet(ras)
	var glyphs []*glyph.Glyph
	add := func(code rune, col, row int) {
		glyphs = append(glyphs, &glyph.Glyph{
			Code:   code,
			Props:  glyph.DefaultProps(WHangulBase),
			Bitmap: js.Cell(col, row),
		})
	}

	// U+1160 jungseong filler sits at column 0 of the vowel row.
	add(0x1160, 0, 15)
	for cp := rune(0x1100); cp <= 0x115F; cp++ {
		add(cp, int(cp-0x1100), 1)
	}
	for cp := rune(0x1161); cp <= 0x11A7; cp++ {
		add(cp, int(cp-0x1160), 15)
	}
	for cp := rune(0x11A8); cp <= 0x11FF; cp++ {
		add(cp, int(cp-0x11A8)+1, 17)
	}
	for cp := rune(0xA960); cp <= 0xA97F; cp++ {
		add(cp, int(cp-0xA960)+96, 1)
	}
	for cp := rune(0xD7B0); cp <= 0xD7C6; cp++ {
		add(cp, int(cp-0xD7B0)+72, 15)
	}
	for cp := rune(0xD7CB); cp <= 0xD7FB; cp++ {
		add(cp, int(cp-0xD7CB)+89, 17)
	}

	tracer().Debugf("decoded %d jamo glyphs from %s", len(glyphs), d.File)
	return glyphs
}
