package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/curioustorvald/tsbbuild/feature"
	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/hangul"
	"github.com/curioustorvald/tsbbuild/kern"
	"github.com/curioustorvald/tsbbuild/outline"
	"github.com/curioustorvald/tsbbuild/sheet"
)

// Config selects the inputs and optional outputs of a build.
type Config struct {
	AssetsDir  string // directory holding the sprite sheets
	Concurrent bool   // decode sheets in parallel
	NoBitmap   bool   // skip the embedded bitmap strike
	NoFeatures bool   // skip kerning and shaping-rule synthesis
}

// Metric is a glyph's horizontal metric pair in font units.
type Metric struct {
	Advance int
	LSB     int
}

// Artifacts is everything the font assembler consumes, all by value.
// No shared mutable state crosses this boundary.
type Artifacts struct {
	Store       *glyph.Store
	GlyphOrder  []string
	CMap        map[rune]string
	Outlines    map[string][]outline.Contour
	Metrics     map[string]Metric
	Kern        kern.Table
	FeatureText string
	Strike      *Strike
	Report      *Report
}

// Build runs the whole pipeline against the configured asset
// directory. The returned artifacts are complete even when the report
// carries warnings; a non-nil error means the build aborted.
func Build(cfg Config) (*Artifacts, error) {
	report := &Report{}
	store := glyph.NewStore()

	js, err := loadSheets(cfg, store, report)
	if err != nil {
		return nil, err
	}
	applyOverrides(store)

	// Composition barrier: every sheet glyph is in the store before the
	// first syllable is composed, and the store stays unfrozen until
	// the mutation passes below have run.
	if js != nil {
		if err := hangul.Compose(js, store); err != nil {
			return nil, err
		}
	} else {
		report.AddWarning("hangul", "", "jamo sheet missing, no syllables composed")
	}

	store.PromoteInternalForms(devaFormRemaps())
	store.ComposeFallback()
	store.Freeze()

	art := &Artifacts{
		Store:    store,
		CMap:     make(map[rune]string),
		Outlines: make(map[string][]outline.Contour),
		Metrics:  make(map[string]Metric),
		Report:   report,
	}
	art.buildGlyphOrder()
	art.buildOutlines()

	if !cfg.NoFeatures {
		art.Kern = kern.Generate(store)
		tracer().Infof("%d kerning pairs", len(art.Kern))
		art.FeatureText = feature.Generate(&feature.Context{
			Store:      store,
			Kern:       art.Kern,
			Expansions: store.Expansions(),
		})
	}
	if !cfg.NoBitmap {
		art.Strike = buildStrike(store, art.GlyphOrder)
	}
	return art, nil
}

// loadSheets decodes every catalogue sheet into the store and returns
// the jamo sheet for the composition stage. Missing sheet files are
// reported and skipped; an unreadable or unsupported image aborts the
// build.
func loadSheets(cfg Config, store *glyph.Store, report *Report) (*sheet.JamoSheet, error) {
	type decoded struct {
		glyphs []*glyph.Glyph
		jamo   *sheet.JamoSheet
		err    error
	}
	results := make([]decoded, len(sheet.Catalog))

	decodeOne := func(d sheet.Descriptor) decoded {
		path := filepath.Join(cfg.AssetsDir, d.File)
		if _, statErr := os.Stat(path); statErr != nil {
			return decoded{} // reported by the caller
		}
		ras, err := sheet.LoadRaster(path)
		if err != nil {
			return decoded{err: fmt.Errorf("sheet %s: %w", d.File, err)}
		}
		if d.HangulJamo {
			return decoded{
				glyphs: sheet.DecodeHangulJamoSheet(ras, d),
				jamo:   sheet.NewJamoSheet(ras),
			}
		}
		return decoded{glyphs: sheet.DecodeSheet(ras, d)}
	}

	if cfg.Concurrent {
		var wg sync.WaitGroup
		for i, d := range sheet.Catalog {
			wg.Add(1)
			go func(i int, d sheet.Descriptor) {
				defer wg.Done()
				results[i] = decodeOne(d)
			}(i, d)
		}
		wg.Wait()
	} else {
		for i, d := range sheet.Catalog {
			results[i] = decodeOne(d)
		}
	}

	// Commit in catalogue order regardless of decode order.
	var js *sheet.JamoSheet
	for i, d := range sheet.Catalog {
		res := results[i]
		if res.err != nil {
			report.AddError("sheets", d.File, res.err.Error(), SeverityCritical)
			return nil, res.err
		}
		if res.glyphs == nil {
			report.AddWarning("sheets", d.File, "file not found, sheet skipped")
			tracer().Infof("skipping missing sheet %s", d.File)
			continue
		}
		for _, g := range res.glyphs {
			store.Put(g)
		}
		if res.jamo != nil {
			js = res.jamo
		}
	}
	tracer().Infof("decoded %d glyphs from %d sheets", store.Len(), len(sheet.Catalog))
	return js, nil
}

// applyOverrides patches the decoded repertoire: compatibility jamo get
// empty fixed-width placeholders until composition fills them, the
// internal control range and NUL are zero-width, and the replacement
// glyph at U+007F is forced to full width.
func applyOverrides(store *glyph.Store) {
	for cp := sheet.HangulCompatRange.Lo; cp < sheet.HangulCompatRange.Hi; cp++ {
		if _, ok := store.Get(cp); !ok {
			store.Put(&glyph.Glyph{
				Code:   cp,
				Props:  glyph.DefaultProps(sheet.WHangulBase),
				Bitmap: glyph.NewBitmap(sheet.WHangulBase, sheet.CellH),
			})
		}
	}
	for cp := rune(0xFFFA0); cp < 0x100000; cp++ {
		store.Put(&glyph.Glyph{
			Code:   cp,
			Props:  glyph.DefaultProps(0),
			Bitmap: glyph.NewBitmap(1, 1),
		})
	}
	store.Put(&glyph.Glyph{
		Code:   0,
		Props:  glyph.DefaultProps(0),
		Bitmap: glyph.NewBitmap(1, 1),
	})
	if g, ok := store.Get(0x7F); ok {
		g.Props.Width = sheet.WVar
	}
}

// devaFormRemaps links the public Devanagari consonants to the internal
// presentation forms that carry the artwork. The public codepoints are
// authored empty in the sheet.
func devaFormRemaps() []glyph.FormRemap {
	nuktaForms := [8]rune{0xF0170, 0xF0171, 0xF0172, 0xF0177, 0xF017C, 0xF017D, 0xF0186, 0xF018A}
	var remaps []glyph.FormRemap
	for cp := rune(0x0915); cp <= 0x0939; cp++ {
		remaps = append(remaps, glyph.FormRemap{Public: cp, Internal: cp - 0x0915 + 0xF0140})
	}
	for i, internal := range nuktaForms {
		remaps = append(remaps, glyph.FormRemap{Public: rune(0x0958 + i), Internal: internal})
	}
	return remaps
}

// buildGlyphOrder assembles the final glyph order (.notdef first, then
// ascending codepoints, illegal glyphs excluded) and the character map
// restricted to user-visible codepoints.
func (art *Artifacts) buildGlyphOrder() {
	art.GlyphOrder = append(art.GlyphOrder, ".notdef")
	seen := map[string]bool{".notdef": true}
	for _, cp := range art.Store.Codes() {
		if !art.Store.Exists(cp) {
			continue
		}
		name := feature.GlyphName(cp)
		if seen[name] {
			continue
		}
		art.GlyphOrder = append(art.GlyphOrder, name)
		seen[name] = true
		if charMapped(cp) {
			art.CMap[cp] = name
		}
	}
	tracer().Infof("glyph order: %d glyphs, cmap: %d entries", len(art.GlyphOrder), len(art.CMap))
}

// buildOutlines traces every repertoire glyph and records its metrics.
// Glyphs without set pixels get an empty contour list; the assembler
// still emits a zero-length path for them so advance-only glyphs stay
// present.
func (art *Artifacts) buildOutlines() {
	art.Outlines[".notdef"] = notdefOutline()
	art.Metrics[".notdef"] = Metric{Advance: sheet.UnitsPerEm / 2}

	traced := 0
	for _, cp := range art.Store.Codes() {
		if !art.Store.Exists(cp) || cp == 0 {
			continue
		}
		name := feature.GlyphName(cp)
		if _, ok := art.Outlines[name]; ok {
			continue
		}
		g, _ := art.Store.Get(cp)
		contours := outline.Trace(g.Bitmap)
		art.Outlines[name] = contours
		art.Metrics[name] = Metric{Advance: g.Props.Width * sheet.Scale}
		if len(contours) > 0 {
			traced++
		}
	}
	tracer().Infof("traced %d glyphs with outlines", traced)
}

// notdefOutline is a hollow box: four bars forming a frame, expressed
// as plain rectangles so no contour needs reversed winding.
func notdefOutline() []outline.Contour {
	w := sheet.UnitsPerEm / 2
	h := sheet.Ascent
	m := 2 * sheet.Scale
	return []outline.Contour{
		{X0: 0, Y0: 0, X1: m, Y1: h},         // left bar
		{X0: w - m, Y0: 0, X1: w, Y1: h},     // right bar
		{X0: m, Y0: h - m, X1: w - m, Y1: h}, // top bar
		{X0: m, Y0: 0, X1: w - m, Y1: m},     // bottom bar
	}
}
