package sheet

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/curioustorvald/tsbbuild/glyph"
)

const opaque = 0xFFFFFFFF

func TestDecodeTagColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	cellW := WVar + HGapVar
	ras := NewRaster(cellW, CellH)
	tagX := cellW - 1

	// width bits: rows 0 and 2 set -> 0b101 = 5
	ras.SetPixel(tagX, 0, opaque)
	ras.SetPixel(tagX, 2, opaque)
	// low-height flag
	ras.SetPixel(tagX, 5, opaque)
	// kerning word: y-type flag in bit 31, 24-bit mask in the colour bytes
	ras.SetPixel(tagX, 6, 0x801234FF)
	// nudge: x = -1, y = +2
	ras.SetPixel(tagX, 10, 0xFF0200FF)
	// anchor 0: y in row 13, x in row 14, high byte of the word
	ras.SetPixel(tagX, 13, 0x850000FF)
	ras.SetPixel(tagX, 14, 0x870000FF)
	// anchor 3: y in row 11, x in row 12
	ras.SetPixel(tagX, 11, 0x830000FF)
	ras.SetPixel(tagX, 12, 0x820000FF)
	// alignment bits rows 15-16: only row 16 set -> centre
	ras.SetPixel(tagX, 16, opaque)
	// mark class in the top nibble of row 17
	ras.SetPixel(tagX, 17, 0xC00000FF)
	// stacking escape: both words 0x00FF00FF -> no stacking
	ras.SetPixel(tagX, 18, 0x00FF00FF)
	ras.SetPixel(tagX, 19, 0x00FF00FF)

	props := decodeTagColumn(ras, 0, 0, cellW)

	if props.Width != 5 {
		t.Errorf("Width = %d, expected 5", props.Width)
	}
	if !props.IsLowHeight {
		t.Errorf("IsLowHeight not decoded")
	}
	if !props.HasKernData || !props.IsKernYType {
		t.Errorf("kerning flags = (%v, %v), expected (true, true)", props.HasKernData, props.IsKernYType)
	}
	if props.KerningMask != 0x801234 {
		t.Errorf("KerningMask = %#x, expected 0x801234", props.KerningMask)
	}
	if props.NudgeX != -1 || props.NudgeY != 2 {
		t.Errorf("nudge = (%d, %d), expected (-1, 2)", props.NudgeX, props.NudgeY)
	}
	if a := props.Anchors[0]; !a.XUsed || !a.YUsed || a.X != 7 || a.Y != 5 {
		t.Errorf("anchor 0 = %+v, expected X=7 Y=5 both used", a)
	}
	if a := props.Anchors[3]; !a.XUsed || !a.YUsed || a.X != 2 || a.Y != 3 {
		t.Errorf("anchor 3 = %+v, expected X=2 Y=3 both used", a)
	}
	if a := props.Anchors[1]; a.XUsed || a.YUsed {
		t.Errorf("anchor 1 = %+v, expected unused", a)
	}
	if props.Align != glyph.AlignCentre {
		t.Errorf("Align = %d, expected centre", props.Align)
	}
	if props.WriteOnTop != 12 {
		t.Errorf("WriteOnTop = %d, expected mark class 12", props.WriteOnTop)
	}
	if props.Stack != glyph.StackNone {
		t.Errorf("Stack = %d, expected none", props.Stack)
	}
	if props.IsIllegal() {
		t.Errorf("glyph with zero directive word flagged illegal")
	}
}

func TestDecodeTagColumnDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	cellW := WVar + HGapVar
	ras := NewRaster(cellW, CellH)
	props := decodeTagColumn(ras, 0, 0, cellW)

	if props.Width != 0 {
		t.Errorf("Width = %d, expected 0 for a blank tag column", props.Width)
	}
	if props.HasKernData {
		t.Errorf("blank tag column decoded kern data")
	}
	if props.KerningMask != 0xFF {
		t.Errorf("KerningMask = %#x, expected default 0xFF", props.KerningMask)
	}
	if props.WriteOnTop != -1 {
		t.Errorf("WriteOnTop = %d, expected -1 (not a mark)", props.WriteOnTop)
	}
}

func TestDecodeTagColumnMarkClassZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	cellW := WVar + HGapVar
	ras := NewRaster(cellW, CellH)
	ras.SetPixel(cellW-1, 17, opaque) // all-white means mark class 0
	props := decodeTagColumn(ras, 0, 0, cellW)
	if props.WriteOnTop != 0 {
		t.Errorf("WriteOnTop = %d, expected mark class 0", props.WriteOnTop)
	}
}

func TestDecodeExpansionDirective(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	cellW := WVar + HGapVar
	ras := NewRaster(cellW, CellH)
	tagX := cellW - 1
	ras.SetPixel(tagX, 9, 0x800000FF) // opcode 0x80: expand
	// extension word 0 in the cell's leftmost column: bits 0 and 6 -> 0x41
	ras.SetPixel(0, 0, opaque)
	ras.SetPixel(0, 6, opaque)

	props := decodeTagColumn(ras, 0, 0, cellW)
	if !props.IsExpansion() {
		t.Fatalf("opcode 0x80 not decoded as expansion")
	}
	targets := props.ExpansionTargets()
	if len(targets) != 1 || targets[0] != 0x41 {
		t.Errorf("expansion targets = %v, expected [U+0041]", targets)
	}
}

func TestDecodeIllegalDirective(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	cellW := WVar + HGapVar
	ras := NewRaster(cellW, CellH)
	ras.SetPixel(cellW-1, 9, 0xFF0000FF)
	props := decodeTagColumn(ras, 0, 0, cellW)
	if !props.IsIllegal() {
		t.Errorf("opcode 0xFF not decoded as illegal")
	}
}

func TestDecodeVariableSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	cellW := WVar + HGapVar
	d := Descriptor{
		File: "test", CellW: cellW, CellH: CellH, Columns: 2,
		Variable: true,
		Ranges:   []CodeRange{{0x41, 0x43}},
	}
	ras := NewRaster(2*cellW, CellH)
	// cell 0: width 3, one glyph pixel at (1, 2)
	ras.SetPixel(cellW-1, 0, opaque)
	ras.SetPixel(cellW-1, 1, opaque)
	ras.SetPixel(1, 2, opaque)
	// cell 1: blank, zero width

	glyphs := DecodeSheet(ras, d)
	if len(glyphs) != 2 {
		t.Fatalf("decoded %d glyphs, expected 2", len(glyphs))
	}
	if glyphs[0].Code != 0x41 || glyphs[1].Code != 0x42 {
		t.Errorf("codes = %#x, %#x", glyphs[0].Code, glyphs[1].Code)
	}
	if glyphs[0].Props.Width != 3 {
		t.Errorf("glyph 0 width = %d, expected 3", glyphs[0].Props.Width)
	}
	if !glyphs[0].Bitmap.At(2, 1) {
		t.Errorf("glyph 0 pixel (2, 1) missing")
	}
	if glyphs[0].Bitmap.Cols() != 3 {
		t.Errorf("glyph 0 bitmap cropped to %d columns, expected 3", glyphs[0].Bitmap.Cols())
	}
	if glyphs[1].Bitmap.Cols() != 0 {
		t.Errorf("zero-width glyph decoded a %d-column bitmap", glyphs[1].Bitmap.Cols())
	}
}

func TestDecodeVariableSheetXYSwapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	cellW := WVar + HGapVar
	d := Descriptor{
		File: "test", CellW: cellW, CellH: CellH, Columns: 2,
		Variable: true, XYSwapped: true,
		Ranges: []CodeRange{{0x41, 0x43}},
	}
	// cell 1 lives below cell 0 in the swapped layout
	ras := NewRaster(cellW, 2*CellH)
	ras.SetPixel(cellW-1, CellH+0, opaque) // width 1 for the second glyph
	ras.SetPixel(0, CellH+4, opaque)

	glyphs := DecodeSheet(ras, d)
	if glyphs[1].Props.Width != 1 {
		t.Errorf("swapped glyph 1 width = %d, expected 1", glyphs[1].Props.Width)
	}
	if !glyphs[1].Bitmap.At(4, 0) {
		t.Errorf("swapped glyph 1 pixel (4, 0) missing")
	}
}

func TestDecodeFixedSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	d := Descriptor{
		File: "test", CellW: WLatinWide, CellH: CellH, Columns: 2,
		FixedWidth: WLatinWide,
		Ranges:     []CodeRange{{0x16A0, 0x16A2}},
	}
	ras := NewRaster(2*WLatinWide, CellH)
	ras.SetPixel(WLatinWide+2, 3, opaque) // second cell

	glyphs := DecodeSheet(ras, d)
	if len(glyphs) != 2 {
		t.Fatalf("decoded %d glyphs, expected 2", len(glyphs))
	}
	if glyphs[1].Props.Width != WLatinWide {
		t.Errorf("fixed glyph width = %d, expected %d", glyphs[1].Props.Width, WLatinWide)
	}
	if !glyphs[1].Bitmap.At(3, 2) {
		t.Errorf("fixed glyph pixel (3, 2) missing")
	}
	if glyphs[0].Props.HasKernData {
		t.Errorf("fixed sheets carry no kern data")
	}
}

func TestJamoSheetCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	ras := NewRaster(3*WHangulBase, 2*CellH)
	ras.SetPixel(2*WHangulBase+1, CellH+4, opaque)
	js := NewJamoSheet(ras)
	if js.MaxCol() != 3 || js.MaxRow() != 2 {
		t.Errorf("sheet extent = (%d, %d), expected (3, 2)", js.MaxCol(), js.MaxRow())
	}
	if !js.Cell(2, 1).At(4, 1) {
		t.Errorf("cell (2, 1) pixel (4, 1) missing")
	}
	if !js.Cell(0, 0).IsEmpty() {
		t.Errorf("cell (0, 0) should be empty")
	}
}
