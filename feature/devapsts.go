package feature

import "sort"

// devaPsts selects length variants for the i- and ii-matra. The
// artwork holds sixteen variants of each, one per stem distance; the
// right one depends on the stem anchor of the base consonant and, for
// the i-matra, the widths of any half forms standing between matra and
// base. psts is applied to every glyph in the syllable, which makes it
// usable for the pre-base i-matra and the post-base ii-matra alike.
func (ctx *Context) devaPsts() string {
	if !ctx.Has(0x093F) && !ctx.Has(0x0940) {
		return ""
	}
	hasIVariant, hasIIVariant := false, false
	for v := rune(0); v < 16; v++ {
		hasIVariant = hasIVariant || ctx.Has(0xF0110+v)
		hasIIVariant = hasIIVariant || ctx.Has(0xF0120+v)
	}
	if !hasIVariant && !hasIIVariant {
		return ""
	}

	anchorX := func(cp rune) int {
		g := ctx.Glyph(cp)
		if g == nil {
			return 0
		}
		if a := g.Props.Anchors[0]; a.XUsed {
			return a.X
		}
		return 0
	}
	width := func(cp rune) int {
		g := ctx.Glyph(cp)
		if g == nil {
			return 0
		}
		return g.Props.Width
	}

	// Base consonants: full forms, ra-appended forms, conjunct results.
	baseSet := make(map[rune]bool)
	for cp := devaPresBase; cp < devaPresHalf; cp++ {
		if ctx.Has(cp) {
			baseSet[cp] = true
		}
	}
	for cp := devaPresWithRa; cp < devaPresWithRaHalf; cp++ {
		if ctx.Has(cp) {
			baseSet[cp] = true
		}
	}
	for _, cj := range devaConjuncts {
		if ctx.Has(cj.result) {
			baseSet[cj.result] = true
		}
	}
	if len(baseSet) == 0 {
		return ""
	}
	bases := sortedRunes(baseSet)

	// Half forms only contribute their advance width, so they group
	// into width classes.
	halfByWidth := make(map[int][]rune)
	for cp := devaPresHalf; cp < devaPresWithRa; cp++ {
		if ctx.Has(cp) {
			halfByWidth[width(cp)] = append(halfByWidth[width(cp)], cp)
		}
	}
	for cp := devaPresWithRaHalf; cp < devaPresEnd; cp++ {
		if ctx.Has(cp) {
			halfByWidth[width(cp)] = append(halfByWidth[width(cp)], cp)
		}
	}
	for w := range halfByWidth {
		hs := halfByWidth[w]
		sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	}
	halfWidths := make([]int, 0, len(halfByWidth))
	for w := range halfByWidth {
		halfWidths = append(halfWidths, w)
	}
	sort.Ints(halfWidths)

	iVarIdx := func(stem int) int {
		return clamp(stem+2, 6, 21) - 6
	}

	lookups := &lineWriter{}
	feat := &lineWriter{}

	if ctx.Has(0x093F) && hasIVariant {
		for v := rune(0); v < 16; v++ {
			if target := 0xF0110 + v; ctx.Has(target) {
				lookups.add("lookup IMatraVar%d {", v)
				lookups.add("    sub %s by %s;", GlyphName(0x093F), GlyphName(target))
				lookups.add("} IMatraVar%d;", v)
			}
		}

		iMatra := GlyphName(0x093F)

		// Longest context first: the first matching rule wins, so the
		// half+half+base case must shadow half+base, which in turn
		// shadows the plain base case.
		hhIdx := 0
		for _, hw1 := range halfWidths {
			for _, hw2 := range halfWidths {
				groups := make(map[int][]rune)
				for _, cp := range bases {
					v := iVarIdx(hw1 + hw2 + anchorX(cp))
					groups[v] = append(groups[v], cp)
				}
				for _, v := range sortedInts(groups) {
					if !ctx.Has(0xF0110 + rune(v)) {
						continue
					}
					feat.add("    @iHH%d = [%s];", hhIdx, glyphNames(groups[v]))
					feat.add("    @iHH1_%d = [%s];", hhIdx, glyphNames(halfByWidth[hw1]))
					feat.add("    @iHH2_%d = [%s];", hhIdx, glyphNames(halfByWidth[hw2]))
					feat.add("    sub %s' lookup IMatraVar%d @iHH1_%d @iHH2_%d @iHH%d;",
						iMatra, v, hhIdx, hhIdx, hhIdx)
					hhIdx++
				}
			}
		}

		hbIdx := 0
		for _, hw := range halfWidths {
			groups := make(map[int][]rune)
			for _, cp := range bases {
				v := iVarIdx(hw + anchorX(cp))
				groups[v] = append(groups[v], cp)
			}
			for _, v := range sortedInts(groups) {
				if !ctx.Has(0xF0110 + rune(v)) {
					continue
				}
				feat.add("    @iHB%d = [%s];", hbIdx, glyphNames(groups[v]))
				feat.add("    @iH%d = [%s];", hbIdx, glyphNames(halfByWidth[hw]))
				feat.add("    sub %s' lookup IMatraVar%d @iH%d @iHB%d;", iMatra, v, hbIdx, hbIdx)
				hbIdx++
			}
		}

		groups := make(map[int][]rune)
		for _, cp := range bases {
			v := iVarIdx(anchorX(cp))
			groups[v] = append(groups[v], cp)
		}
		for _, v := range sortedInts(groups) {
			if !ctx.Has(0xF0110 + rune(v)) {
				continue
			}
			feat.add("    @iB%d = [%s];", v, glyphNames(groups[v]))
			feat.add("    sub %s' lookup IMatraVar%d @iB%d;", iMatra, v, v)
		}
	}

	if ctx.Has(0x0940) && hasIIVariant {
		for v := rune(0); v < 16; v++ {
			if target := 0xF0120 + v; ctx.Has(target) {
				lookups.add("lookup IIMatraVar%d {", v)
				lookups.add("    sub %s by %s;", GlyphName(0x0940), GlyphName(target))
				lookups.add("} IIMatraVar%d;", v)
			}
		}

		// The ii-matra trails the base; the stem distance is measured
		// from the right edge, so the variant index counts down.
		groups := make(map[int][]rune)
		for _, cp := range bases {
			w := width(cp) - anchorX(cp)
			v := 15 - (clamp(w+1, 4, 19) - 4)
			groups[v] = append(groups[v], cp)
		}
		iiMatra := GlyphName(0x0940)
		for _, v := range sortedInts(groups) {
			if !ctx.Has(0xF0120 + rune(v)) {
				continue
			}
			feat.add("    @iiB%d = [%s];", v, glyphNames(groups[v]))
			feat.add("    sub @iiB%d %s' lookup IIMatraVar%d;", v, iiMatra, v)
		}
	}

	if feat.empty() {
		return ""
	}
	out := &lineWriter{}
	out.lines = append(out.lines, lookups.lines...)
	out.add("")
	out.add("feature psts {")
	out.add("    script dev2;")
	out.lines = append(out.lines, feat.lines...)
	out.add("} psts;")
	return out.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sortedRunes(set map[rune]bool) []rune {
	out := make([]rune, 0, len(set))
	for cp := range set {
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedInts(groups map[int][]rune) []int {
	out := make([]int, 0, len(groups))
	for k := range groups {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
