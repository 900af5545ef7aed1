package feature

import (
	"fmt"
	"sort"

	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/sheet"
)

// generateMark emits mark-to-base positioning from the anchors of the
// tag column. Marks are grouped into one class per overlay type; a base
// exposes one attachment anchor per type. The same lookups register
// under the generic mark feature and, for the Indic shaper, under abvm.
func generateMark(ctx *Context) string {
	type markGlyph struct {
		cp rune
		g  *glyph.Glyph
	}
	markClasses := make(map[int][]markGlyph)
	var baseCps []rune

	for _, cp := range ctx.Store.Codes() {
		if !ctx.Has(cp) {
			continue
		}
		g := ctx.Glyph(cp)
		if g.Props.WriteOnTop >= 0 {
			t := g.Props.WriteOnTop
			markClasses[t] = append(markClasses[t], markGlyph{cp, g})
			continue
		}
		for _, a := range g.Props.Anchors {
			if a.XUsed || a.YUsed {
				baseCps = append(baseCps, cp)
				break
			}
		}
	}
	if len(baseCps) == 0 || len(markClasses) == 0 {
		return ""
	}

	markTypes := make([]int, 0, len(markClasses))
	for t := range markClasses {
		markTypes = append(markTypes, t)
	}
	sort.Ints(markTypes)

	w := &lineWriter{}
	for _, t := range markTypes {
		className := sprintfClass(t)
		for _, m := range markClasses[t] {
			w.add("markClass %s <anchor %d %d> %s;", GlyphName(m.cp), markAnchorX(m.g, m.cp), sheet.Ascent, className)
		}
	}

	var lookupNames []string
	for _, t := range markTypes {
		className := sprintfClass(t)
		lookupName := className[1:]
		w.add("lookup %s {", lookupName)
		for _, cp := range baseCps {
			if t >= glyph.AnchorCount {
				continue
			}
			g := ctx.Glyph(cp)
			a := g.Props.Anchors[t]
			if !a.XUsed && !a.YUsed {
				continue
			}
			ax := a.X
			if !a.XUsed {
				ax = g.Props.Width / 2
			}
			ay := (sheet.Ascent/sheet.Scale - a.Y) * sheet.Scale
			w.add("    pos base %s <anchor %d %d> mark %s;", GlyphName(cp), ax*sheet.Scale, ay, className)
		}
		w.add("} %s;", lookupName)
		w.add("")
		lookupNames = append(lookupNames, lookupName)
	}

	w.add("feature mark {")
	for _, name := range lookupNames {
		w.add("    lookup %s;", name)
	}
	w.add("} mark;")

	// The Indic v2 shaper positions marks via abvm/blwm, not mark.
	w.add("")
	w.add("feature abvm {")
	w.add("    script dev2;")
	for _, name := range lookupNames {
		w.add("    lookup %s;", name)
	}
	w.add("} abvm;")

	return w.String()
}

// markAnchorX mirrors the rasterizer's horizontal mark placement so the
// class anchor lands on the same column the bitmap overlay uses.
func markAnchorX(g *glyph.Glyph, cp rune) int {
	if g.Props.Align == glyph.AlignCentre {
		bmCols := g.Bitmap.Cols()
		half := (sheet.WVar - 1) / 2
		if 0x0900 <= cp && cp <= 0x0902 {
			half = (sheet.WVar + 1) / 2
		}
		xOffset := ceilHalf(g.Props.Width-bmCols) * sheet.Scale
		xOffset -= g.Props.NudgeX * sheet.Scale
		return xOffset + half*sheet.Scale
	}
	return ((g.Props.Width + 1) / 2) * sheet.Scale
}

func sprintfClass(t int) string { return fmt.Sprintf("@mark_type%d", t) }

// ceilHalf is ceil(v / 2) for possibly negative v.
func ceilHalf(v int) int {
	if v >= 0 {
		return (v + 1) / 2
	}
	return v / 2
}
