package feature

import (
	"fmt"
	"sort"

	"github.com/curioustorvald/tsbbuild/hangul"
)

// generateHangul emits the ljmo/vjmo/tjmo features that assemble
// syllables from conjoining jamo at shaping time. Each lookup
// substitutes a jamo's default glyph with the positional variant the
// compositor registered in the private-use block; context classes on
// the contextual rules select which variant row applies.
//
//	ljmo: choseong row selected by the class of the following vowel
//	vjmo: jungseong gets its with-final variant before a jongseong
//	tjmo: jongseong gets its row-18 variant after a right-leaning vowel
func generateHangul(ctx *Context) string {
	lookups := &lineWriter{}
	features := &lineWriter{}

	// Group vowel sheet indices by the choseong row they select
	// (no-jongseong case; choseong index 1 sidesteps the giyeok
	// remapping, which is context we cannot know at rule-build time).
	rowToJung := make(map[int][]int)
	for p := 0; p < 96; p++ {
		row, err := hangul.InitialRow(1, p, 0)
		if err != nil {
			continue
		}
		rowToJung[row] = append(rowToJung[row], p)
	}
	rows := make([]int, 0, len(rowToJung))
	for row := range rowToJung {
		if row != 1 { // row 1 is the default artwork, no substitution
			rows = append(rows, row)
		}
	}
	sort.Ints(rows)

	type ljmoLookup struct {
		name        string
		jungIndices []int
	}
	var ljmoLookups []ljmoLookup

	for _, row := range rows {
		name := fmt.Sprintf("ljmo_row%d", row)
		subs := &lineWriter{}
		for cho := rune(0x1100); cho < 0x115F; cho++ {
			col := int(cho - 0x1100)
			variant := hangul.VariantCode(col, row)
			if ctx.Has(cho) && ctx.Has(variant) {
				subs.add("        sub %s by %s;", GlyphName(cho), GlyphName(variant))
			}
		}
		if subs.empty() {
			continue
		}
		lookups.add("lookup %s {", name)
		lookups.lines = append(lookups.lines, subs.lines...)
		lookups.add("} %s;", name)
		ljmoLookups = append(ljmoLookups, ljmoLookup{name: name, jungIndices: rowToJung[row]})
	}

	// vjmo: with-final variants live in row 16.
	vjmoSubs := &lineWriter{}
	for jung := rune(0x1161); jung < 0x11A8; jung++ {
		col := int(jung - 0x1160)
		variant := hangul.VariantCode(col, 16)
		if ctx.Has(jung) && ctx.Has(variant) {
			vjmoSubs.add("    sub %s by %s;", GlyphName(jung), GlyphName(variant))
		}
	}
	if !vjmoSubs.empty() {
		lookups.add("lookup vjmo_withfinal {")
		lookups.lines = append(lookups.lines, vjmoSubs.lines...)
		lookups.add("} vjmo_withfinal;")
	}

	// tjmo: after-rightie variants live in row 18.
	tjmoSubs := &lineWriter{}
	for jong := rune(0x11A8); jong < 0x1200; jong++ {
		col := int(jong-0x11A8) + 1
		variant := hangul.VariantCode(col, 18)
		if ctx.Has(jong) && ctx.Has(variant) {
			tjmoSubs.add("    sub %s by %s;", GlyphName(jong), GlyphName(variant))
		}
	}
	if !tjmoSubs.empty() {
		lookups.add("lookup tjmo_rightie {")
		lookups.lines = append(lookups.lines, tjmoSubs.lines...)
		lookups.add("} tjmo_rightie;")
	}

	// Feature blocks with the contextual rules.
	if len(ljmoLookups) > 0 {
		features.add("feature ljmo {")
		features.add("    script hang;")
		choClass := ctx.glyphClass(runeRange(0x1100, 0x115F))
		for _, lu := range ljmoLookups {
			jungClass := ctx.jungClassFor(lu.jungIndices)
			if jungClass == "" {
				continue
			}
			features.add("    @jung_for_%s = [%s];", lu.name, jungClass)
		}
		for _, lu := range ljmoLookups {
			jungClass := ctx.jungClassFor(lu.jungIndices)
			if jungClass == "" || choClass == "" {
				continue
			}
			features.add("    @choseong = [%s];", choClass)
			features.add("    sub @choseong' lookup %s @jung_for_%s;", lu.name, lu.name)
		}
		features.add("} ljmo;")
	}

	if !vjmoSubs.empty() {
		jongClass := ctx.glyphClass(runeRange(0x11A8, 0x1200))
		jungClass := ctx.glyphClass(runeRange(0x1161, 0x11A8))
		if jongClass != "" && jungClass != "" {
			features.add("feature vjmo {")
			features.add("    script hang;")
			features.add("    @jongseong = [%s];", jongClass)
			features.add("    @jungseong = [%s];", jungClass)
			features.add("    sub @jungseong' lookup vjmo_withfinal @jongseong;")
			features.add("} vjmo;")
		}
	}

	if !tjmoSubs.empty() {
		var righties []rune
		for idx := 0; idx < 96; idx++ {
			if !hangul.IsRightieVowel(idx) {
				continue
			}
			if cp := rune(0x1160 + idx); ctx.Has(cp) {
				righties = append(righties, cp)
			}
			// The with-final variant of a rightie vowel is rightie too.
			if v := hangul.VariantCode(idx, 16); ctx.Has(v) {
				righties = append(righties, v)
			}
		}
		jongClass := ctx.glyphClass(runeRange(0x11A8, 0x1200))
		if len(righties) > 0 && jongClass != "" {
			features.add("feature tjmo {")
			features.add("    script hang;")
			features.add("    @rightie_jung = [%s];", glyphNames(righties))
			features.add("    @jongseong_all = [%s];", jongClass)
			features.add("    sub @rightie_jung @jongseong_all' lookup tjmo_rightie;")
			features.add("} tjmo;")
		}
	}

	if lookups.empty() && features.empty() {
		return ""
	}
	out := &lineWriter{}
	out.lines = append(out.lines, lookups.lines...)
	out.add("")
	out.lines = append(out.lines, features.lines...)
	return out.String()
}

// jungClassFor renders the glyph-class member list for a set of vowel
// sheet indices, dropping absent codepoints.
func (ctx *Context) jungClassFor(indices []int) string {
	var cps []rune
	for _, idx := range indices {
		if cp := rune(0x1160 + idx); ctx.Has(cp) {
			cps = append(cps, cp)
		}
	}
	return glyphNames(cps)
}

// glyphClass renders the member list of all present codepoints in cps.
func (ctx *Context) glyphClass(cps []rune) string {
	var present []rune
	for _, cp := range cps {
		if ctx.Has(cp) {
			present = append(present, cp)
		}
	}
	return glyphNames(present)
}

// runeRange lists the codepoints of [lo, hi).
func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo)
	for c := lo; c < hi; c++ {
		out = append(out, c)
	}
	return out
}
