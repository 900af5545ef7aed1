package glyph

import "sort"

// Glyph binds a codepoint to its decoded properties and bitmap.
type Glyph struct {
	Code   rune
	Props  Props
	Bitmap Bitmap
}

// Expansion records one expansion directive: Source is replaced by the
// concatenation of Targets during shaping.
type Expansion struct {
	Source  rune
	Targets []rune
}

// FormRemap links a public Unicode codepoint to the internal
// presentation-form codepoint where its real bitmap lives.
type FormRemap struct {
	Public   rune
	Internal rune
}

// Store is the codepoint → glyph mapping shared by all pipeline
// stages. It is populated by sheet decoding, mutated by the Hangul
// composition, promote-internal-forms and compose-fallback passes, and
// then frozen. After Freeze only read access is legal.
type Store struct {
	glyphs map[rune]*Glyph
	frozen bool
	codes  []rune // ascending, cached at freeze time
}

// NewStore returns an empty, unfrozen store.
func NewStore() *Store {
	return &Store{glyphs: make(map[rune]*Glyph)}
}

// Put inserts or overwrites a glyph. Put panics if the store has been
// frozen; mutation after the barrier is a pipeline bug, not an input
// error.
func (s *Store) Put(g *Glyph) {
	assertThat(!s.frozen, "store mutated after freeze (codepoint U+%04X)", g.Code)
	s.glyphs[g.Code] = g
}

// Get returns the glyph for a codepoint.
func (s *Store) Get(code rune) (*Glyph, bool) {
	g, ok := s.glyphs[code]
	return g, ok
}

// Len returns the number of stored glyphs, illegal ones included.
func (s *Store) Len() int { return len(s.glyphs) }

// Exists reports whether the codepoint survives into the final glyph
// repertoire: it is present and not marked illegal. Rule generators
// must gate every referenced codepoint on this predicate.
func (s *Store) Exists(code rune) bool {
	g, ok := s.glyphs[code]
	return ok && !g.Props.IsIllegal()
}

// Codes returns all stored codepoints in ascending order. Emission
// must iterate this, never the map, for deterministic output.
func (s *Store) Codes() []rune {
	if s.frozen && s.codes != nil {
		return s.codes
	}
	codes := make([]rune, 0, len(s.glyphs))
	for c := range s.glyphs {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	if s.frozen {
		s.codes = codes
	}
	return codes
}

// Freeze seals the store. Subsequent Put calls panic.
func (s *Store) Freeze() {
	s.frozen = true
	s.codes = nil
	s.codes = s.Codes()
	tracer().Infof("glyph store frozen with %d entries", len(s.glyphs))
}

// Frozen reports whether the store has been sealed.
func (s *Store) Frozen() bool { return s.frozen }

// PromoteInternalForms copies bitmap and advance width from an internal
// presentation-form codepoint into its public codepoint wherever the
// public glyph exists but is empty. The public codepoints are
// intentionally authored zero-width in the sheets; the real artwork
// lives at the internal form.
func (s *Store) PromoteInternalForms(remaps []FormRemap) {
	assertThat(!s.frozen, "promote pass after freeze")
	promoted := 0
	for _, m := range remaps {
		pub, ok := s.glyphs[m.Public]
		if !ok || !pub.Bitmap.IsEmpty() {
			continue
		}
		internal, ok := s.glyphs[m.Internal]
		if !ok || internal.Props.IsIllegal() {
			continue
		}
		pub.Bitmap = internal.Bitmap.Clone()
		pub.Props.Width = internal.Props.Width
		promoted++
	}
	tracer().Debugf("promoted %d internal presentation forms", promoted)
}

// Expansions collects all expansion directives whose source and targets
// all survive into the repertoire, in ascending source order.
func (s *Store) Expansions() []Expansion {
	var out []Expansion
	for _, code := range s.Codes() {
		g := s.glyphs[code]
		if !g.Props.IsExpansion() || g.Props.IsIllegal() {
			continue
		}
		targets := g.Props.ExpansionTargets()
		if len(targets) == 0 {
			continue
		}
		ok := true
		for _, t := range targets {
			if !s.Exists(t) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, Expansion{Source: code, Targets: targets})
		}
	}
	return out
}

// ComposeFallback synthesizes a side-by-side composite bitmap for every
// glyph carrying an expansion directive, by concatenating its targets'
// bitmaps at their native advance widths. The composite serves
// renderers that do not run the shaping rules.
func (s *Store) ComposeFallback() {
	assertThat(!s.frozen, "compose-fallback pass after freeze")
	composed := 0
	for _, exp := range s.Expansions() {
		src := s.glyphs[exp.Source]
		width := 0
		height := 0
		for _, t := range exp.Targets {
			tg := s.glyphs[t]
			width += tg.Props.Width
			if tg.Bitmap.Rows() > height {
				height = tg.Bitmap.Rows()
			}
		}
		if width == 0 || height == 0 {
			continue
		}
		composite := NewBitmap(width, height)
		x := 0
		for _, t := range exp.Targets {
			tg := s.glyphs[t]
			composite.Blit(tg.Bitmap, x, 0)
			x += tg.Props.Width
		}
		src.Bitmap = composite
		src.Props.Width = width
		composed++
	}
	tracer().Debugf("composed %d fallback bitmaps for expansion directives", composed)
}
