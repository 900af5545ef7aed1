package builder

import (
	"sort"

	"github.com/curioustorvald/tsbbuild/feature"
	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/sheet"
)

// StrikeEntry is one glyph's payload in the embedded bitmap strike:
// raw 1-bit rows packed MSB first, plus the small-glyph metrics.
type StrikeEntry struct {
	Name    string
	GID     int
	Height  int
	Width   int
	Advance int // pixels, not font units
	Rows    [][]byte
}

// Run is a contiguous glyph-id interval [First, Last] within the
// strike. The assembler emits one index subtable per run so gaps in
// the glyph-id space never appear inside a subtable.
type Run struct {
	First, Last int
}

// Strike is the monochrome embedded bitmap payload at one fixed
// rendering size.
type Strike struct {
	PPEM      int
	Ascender  int // pixels above the baseline
	Descender int // negative, pixels below the baseline
	WidthMax  int
	Entries   []StrikeEntry
	Runs      []Run
}

// buildStrike collects the bitmap payload for every repertoire glyph
// that has pixels and a nonzero advance, sorted by glyph id, and
// splits the result into contiguous id runs.
func buildStrike(store *glyph.Store, glyphOrder []string) *Strike {
	nameToID := make(map[string]int, len(glyphOrder))
	for id, name := range glyphOrder {
		nameToID[name] = id
	}

	var entries []StrikeEntry
	for _, cp := range store.Codes() {
		if !store.Exists(cp) || cp == 0 {
			continue
		}
		g, _ := store.Get(cp)
		if g.Props.Width == 0 {
			continue
		}
		name := feature.GlyphName(cp)
		id, ok := nameToID[name]
		if !ok {
			continue
		}
		h, w := g.Bitmap.Rows(), g.Bitmap.Cols()
		if h == 0 || w == 0 {
			continue
		}
		entries = append(entries, StrikeEntry{
			Name:    name,
			GID:     id,
			Height:  h,
			Width:   w,
			Advance: g.Props.Width,
			Rows:    g.Bitmap.PackRows(),
		})
	}
	if len(entries) == 0 {
		tracer().Infof("no bitmap data to embed")
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].GID < entries[j].GID })

	var runs []Run
	cur := Run{First: entries[0].GID, Last: entries[0].GID}
	for _, e := range entries[1:] {
		if e.GID == cur.Last+1 {
			cur.Last = e.GID
			continue
		}
		runs = append(runs, cur)
		cur = Run{First: e.GID, Last: e.GID}
	}
	runs = append(runs, cur)

	tracer().Infof("bitmap strike at %dppem with %d glyphs (%d index runs)", sheet.PPEM, len(entries), len(runs))
	return &Strike{
		PPEM:      sheet.PPEM,
		Ascender:  sheet.BaselineRow,
		Descender: -(sheet.CellH - sheet.BaselineRow),
		WidthMax:  sheet.WWideVar,
		Entries:   entries,
		Runs:      runs,
	}
}
