package hangul

import (
	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/sheet"
)

// VariantBase is the start of the private-use block that holds the
// positional jamo variants registered by Compose.
const VariantBase rune = 0xF1000

// VariantCode returns the private-use codepoint under which the jamo
// cell at (col, row) of the johab sheet is registered. It is a pure
// function; whether a glyph actually exists there depends on the sheet
// content and must be checked against the store.
func VariantCode(col, row int) rune {
	return VariantBase + rune(row)*256 + rune(col)
}

// Compose builds the Hangul repertoire into the store:
//
//  1. Compatibility Jamo (U+3130-318F) from row 0 of the johab sheet,
//  2. all 11,172 syllables (U+AC00-D7A3) by OR-ing the choseong,
//     jungseong and jongseong bitmaps at their context-selected rows,
//  3. every non-empty jamo cell as a private-use variant glyph, so the
//     shaping rules can re-select positional forms per syllable.
//
// Compose returns a hard error when the row-selection tables have no
// entry for a composed syllable's jamo context.
func Compose(js *sheet.JamoSheet, store *glyph.Store) error {
	for cp := rune(0x3130); cp < 0x3190; cp++ {
		store.Put(&glyph.Glyph{
			Code:   cp,
			Props:  glyph.DefaultProps(sheet.WHangulBase),
			Bitmap: js.Cell(int(cp-0x3130), 0),
		})
	}

	for cp := rune(SyllableBase); cp < SyllableEnd; cp++ {
		g, err := composeSyllable(js, cp)
		if err != nil {
			return err
		}
		store.Put(g)
	}

	registerVariants(js, store)
	tracer().Infof("composed %d Hangul syllables", SyllableEnd-SyllableBase)
	return nil
}

func composeSyllable(js *sheet.JamoSheet, cp rune) (*glyph.Glyph, error) {
	n := int(cp - SyllableBase)
	choIdx := n / (JungCount * JongCount)
	jungIdx := n / JongCount % JungCount
	jongIdx := n % JongCount

	// Sheet columns: the modern choseong block starts at column 0, the
	// vowel block has the U+1160 filler in column 0, the jongseong
	// block starts at column 1.
	iCho, _ := ChoseongIndex(0x1100 + rune(choIdx))
	iJung, _ := JungseongIndex(0x1161 + rune(jungIdx))
	iJong := 0
	if jongIdx > 0 {
		iJong, _ = JongseongIndex(0x11A8 + rune(jongIdx) - 1)
	}

	choRow, err := InitialRow(iCho, iJung, iJong)
	if err != nil {
		return nil, err
	}

	composed := js.Cell(iCho, choRow).Clone()
	composed.Or(js.Cell(iJung, MedialRow(iJong)))
	if iJong > 0 {
		composed.Or(js.Cell(iJong, FinalRow(iJung)))
	}

	width := sheet.WHangulBase
	if HasExtraWidth(iJung) {
		width++
	}
	return &glyph.Glyph{
		Code:   cp,
		Props:  glyph.DefaultProps(width),
		Bitmap: composed,
	}, nil
}

// registerVariants scans the whole johab sheet and stores every
// non-empty cell under its private-use variant codepoint, independent
// of whether any composed syllable uses it. The shaping rules need the
// full variant inventory to re-select jamo glyphs at shaping time.
func registerVariants(js *sheet.JamoSheet, store *glyph.Store) {
	count := 0
	for row := 0; row < js.MaxRow(); row++ {
		for col := 0; col < js.MaxCol(); col++ {
			bm := js.Cell(col, row)
			if bm.IsEmpty() {
				continue
			}
			store.Put(&glyph.Glyph{
				Code:   VariantCode(col, row),
				Props:  glyph.DefaultProps(sheet.WHangulBase),
				Bitmap: bm,
			})
			count++
		}
	}
	tracer().Debugf("registered %d positional jamo variants", count)
}
