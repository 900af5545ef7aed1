package builder

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/outline"
	"github.com/curioustorvald/tsbbuild/sheet"
)

func inkedGlyph(code rune, width int) *glyph.Glyph {
	g := &glyph.Glyph{Code: code, Props: glyph.DefaultProps(width), Bitmap: glyph.NewBitmap(width, sheet.CellH)}
	g.Bitmap[0][0] = true
	return g
}

func TestCharMapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	cases := []struct {
		cp   rune
		want bool
	}{
		{0x41, true},
		{0xAC00, true},
		{0xE000, true},    // plain private use stays visible
		{0xF0140, false},  // Devanagari internal forms
		{0xF0500, false},  // Sundanese internal forms
		{0xF0520, true},   // codestyle block stays visible
		{0xF1100, false},  // composed jamo variants
		{0xFFE00, false},  // internal control range
		{0x1F150, true},   // enclosed alphanumerics
	}
	for _, c := range cases {
		if got := charMapped(c.cp); got != c.want {
			t.Errorf("charMapped(%#x) = %v, expected %v", c.cp, got, c.want)
		}
	}
}

func TestDevaFormRemaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	remaps := devaFormRemaps()
	// 37 consonants plus 8 nukta forms
	if len(remaps) != 37+8 {
		t.Fatalf("got %d remaps, expected 45", len(remaps))
	}
	if remaps[0] != (glyph.FormRemap{Public: 0x915, Internal: 0xF0140}) {
		t.Errorf("first remap = %+v", remaps[0])
	}
	if remaps[37] != (glyph.FormRemap{Public: 0x958, Internal: 0xF0170}) {
		t.Errorf("first nukta remap = %+v", remaps[37])
	}
}

func TestBuildGlyphOrderAndCMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	store := glyph.NewStore()
	store.Put(&glyph.Glyph{Code: 0, Props: glyph.DefaultProps(0), Bitmap: glyph.NewBitmap(1, 1)})
	store.Put(inkedGlyph(0x41, 5))
	bad := inkedGlyph(0x42, 5)
	bad.Props.Directive.Opcode = glyph.OpIllegal
	store.Put(bad)
	store.Put(inkedGlyph(0xF0140, 7)) // internal form: glyph slot, no cmap entry
	store.Freeze()

	art := &Artifacts{Store: store, CMap: make(map[rune]string)}
	art.buildGlyphOrder()

	want := []string{".notdef", "uni0041", "uF0140"}
	if len(art.GlyphOrder) != len(want) {
		t.Fatalf("glyph order %v, expected %v", art.GlyphOrder, want)
	}
	for i := range want {
		if art.GlyphOrder[i] != want[i] {
			t.Errorf("glyph %d = %q, expected %q", i, art.GlyphOrder[i], want[i])
		}
	}
	if art.CMap[0x41] != "uni0041" {
		t.Errorf("cmap[U+0041] = %q", art.CMap[0x41])
	}
	if _, ok := art.CMap[0xF0140]; ok {
		t.Errorf("internal form received a cmap entry")
	}
	if _, ok := art.CMap[0x42]; ok {
		t.Errorf("illegal glyph received a cmap entry")
	}
}

func TestBuildOutlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	store := glyph.NewStore()
	store.Put(inkedGlyph(0x41, 5))
	space := &glyph.Glyph{Code: 0x20, Props: glyph.DefaultProps(5), Bitmap: glyph.NewBitmap(5, sheet.CellH)}
	store.Put(space)
	store.Freeze()

	art := &Artifacts{
		Store:    store,
		CMap:     make(map[rune]string),
		Outlines: make(map[string][]outline.Contour),
		Metrics:  make(map[string]Metric),
	}
	art.buildGlyphOrder()
	art.buildOutlines()

	if len(art.Outlines["uni0041"]) == 0 {
		t.Errorf("inked glyph traced to no contours")
	}
	if len(art.Outlines["space"]) != 0 {
		t.Errorf("blank glyph traced to %d contours", len(art.Outlines["space"]))
	}
	if m := art.Metrics["space"]; m.Advance != 5*sheet.Scale {
		t.Errorf("space advance = %d, expected %d", m.Advance, 5*sheet.Scale)
	}
	if m := art.Metrics[".notdef"]; m.Advance != sheet.UnitsPerEm/2 {
		t.Errorf(".notdef advance = %d, expected %d", m.Advance, sheet.UnitsPerEm/2)
	}
}

func TestNotdefOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	contours := notdefOutline()
	if len(contours) != 4 {
		t.Fatalf("notdef box has %d contours, expected 4 bars", len(contours))
	}
	for i, c := range contours {
		if c.X0 < 0 || c.Y0 < 0 || c.X1 > sheet.UnitsPerEm/2 || c.Y1 > sheet.Ascent {
			t.Errorf("bar %d = %+v exceeds the notdef box", i, c)
		}
		if c.X0 >= c.X1 || c.Y0 >= c.Y1 {
			t.Errorf("bar %d = %+v is degenerate", i, c)
		}
	}
}

func TestBuildStrikeRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	store := glyph.NewStore()
	store.Put(inkedGlyph(0x41, 5))
	store.Put(inkedGlyph(0x42, 5))
	store.Put(inkedGlyph(0x44, 5))
	store.Freeze()

	// glyph id 3 has no bitmap entry, splitting the strike into two runs
	order := []string{".notdef", "uni0041", "uni0042", "uni0043", "uni0044"}
	strike := buildStrike(store, order)
	if strike == nil {
		t.Fatalf("no strike built")
	}
	if strike.PPEM != sheet.PPEM {
		t.Errorf("PPEM = %d, expected %d", strike.PPEM, sheet.PPEM)
	}
	if strike.Ascender != sheet.BaselineRow || strike.Descender != -(sheet.CellH-sheet.BaselineRow) {
		t.Errorf("line metrics = (%d, %d)", strike.Ascender, strike.Descender)
	}
	if len(strike.Entries) != 3 {
		t.Fatalf("strike has %d entries, expected 3", len(strike.Entries))
	}
	wantRuns := []Run{{First: 1, Last: 2}, {First: 4, Last: 4}}
	if len(strike.Runs) != len(wantRuns) {
		t.Fatalf("strike runs %v, expected %v", strike.Runs, wantRuns)
	}
	for i := range wantRuns {
		if strike.Runs[i] != wantRuns[i] {
			t.Errorf("run %d = %+v, expected %+v", i, strike.Runs[i], wantRuns[i])
		}
	}
}

func TestStrikeTTX(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	store := glyph.NewStore()
	g := inkedGlyph(0x41, 5)
	store.Put(g)
	store.Freeze()
	strike := buildStrike(store, []string{".notdef", "uni0041"})

	ttx := strike.TTX()
	for _, want := range []string{
		"<EBDT>",
		"<EBLC>",
		`<ebdt_bitmap_format_1 name="uni0041">`,
		`<eblc_index_sub_table_1 imageFormat="1" firstGlyphIndex="1" lastGlyphIndex="1">`,
		`<glyphLoc name="uni0041"/>`,
		`<startGlyphIndex value="1"/>`,
		`<ppemX value="20"/>`,
		"80", // the single set pixel, packed MSB first
	} {
		if !strings.Contains(ttx, want) {
			t.Errorf("TTX output missing %q", want)
		}
	}
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	r := &Report{}
	if r.HasErrors() || r.HasCriticalErrors() {
		t.Errorf("fresh report has errors")
	}
	r.AddWarning("sheets", "kana_variable.tga", "file not found, sheet skipped")
	r.AddError("sheets", "ascii_variable.tga", "decode failed", SeverityMajor)
	if r.HasCriticalErrors() {
		t.Errorf("major error counted as critical")
	}
	r.AddError("features", "", "store not frozen", SeverityCritical)
	if !r.HasCriticalErrors() {
		t.Errorf("critical error not detected")
	}
	if len(r.Errors()) != 2 || len(r.Warnings()) != 1 {
		t.Errorf("report holds %d errors, %d warnings", len(r.Errors()), len(r.Warnings()))
	}

	if got := r.Errors()[0].Error(); got != "[MAJOR] sheets/ascii_variable.tga: decode failed" {
		t.Errorf("error string = %q", got)
	}
	if got := r.Errors()[1].Error(); got != "[CRITICAL] features: store not frozen" {
		t.Errorf("error string = %q", got)
	}
	if got := r.Warnings()[0].String(); got != "[WARNING] sheets/kana_variable.tga: file not found, sheet skipped" {
		t.Errorf("warning string = %q", got)
	}
}
