package feature

import (
	"fmt"
	"sort"
)

type rightAdjust struct {
	right rune
	value int
}

// generateKern emits class-based pair positioning. Left glyphs sharing
// an identical adjustment signature collapse into one class, giving one
// compact PairPosFormat2 lookup per class. A single flat pair list
// would overflow the 16-bit PairSetOffset once the pair count grows
// into the hundreds of thousands.
func generateKern(ctx *Context) string {
	if len(ctx.Kern) == 0 {
		return ""
	}

	byLeft := make(map[rune][]rightAdjust)
	for pair, value := range ctx.Kern {
		if ctx.Has(pair.Left) && ctx.Has(pair.Right) {
			byLeft[pair.Left] = append(byLeft[pair.Left], rightAdjust{pair.Right, value})
		}
	}
	if len(byLeft) == 0 {
		return ""
	}

	// Canonical signature string per left glyph, then group lefts by it.
	sigToLefts := make(map[string][]rune)
	sigAdjusts := make(map[string][]rightAdjust)
	for left, adjusts := range byLeft {
		sort.Slice(adjusts, func(i, j int) bool { return adjusts[i].right < adjusts[j].right })
		sig := ""
		for _, a := range adjusts {
			sig += fmt.Sprintf("%x:%d;", a.right, a.value)
		}
		sigToLefts[sig] = append(sigToLefts[sig], left)
		sigAdjusts[sig] = adjusts
	}

	sigs := make([]string, 0, len(sigToLefts))
	for sig := range sigToLefts {
		sigs = append(sigs, sig)
	}
	sort.Slice(sigs, func(i, j int) bool {
		return minRune(sigToLefts[sigs[i]]) < minRune(sigToLefts[sigs[j]])
	})

	tracer().Infof("kern: %d left-glyph classes from %d left glyphs", len(sigs), len(byLeft))

	classDefs := &lineWriter{}
	lookupDefs := &lineWriter{}
	var lookupNames []string

	for i, sig := range sigs {
		lefts := sigToLefts[sig]
		sort.Slice(lefts, func(a, b int) bool { return lefts[a] < lefts[b] })
		leftName := fmt.Sprintf("@kL%d", i)
		classDefs.add("%s = [%s];", leftName, glyphNames(lefts))

		// Group right glyphs by adjustment value.
		valToRights := make(map[int][]rune)
		for _, a := range sigAdjusts[sig] {
			valToRights[a.value] = append(valToRights[a.value], a.right)
		}
		values := make([]int, 0, len(valToRights))
		for v := range valToRights {
			values = append(values, v)
		}
		sort.Ints(values)

		lkName := fmt.Sprintf("kern_%d", i)
		lookupDefs.add("lookup %s {", lkName)
		lookupDefs.add("    lookupflag IgnoreMarks;")
		for _, value := range values {
			rights := valToRights[value]
			sort.Slice(rights, func(a, b int) bool { return rights[a] < rights[b] })
			rightName := fmt.Sprintf("@kR%dv%d", i, abs(value))
			classDefs.add("%s = [%s];", rightName, glyphNames(rights))
			lookupDefs.add("    pos %s %s %d;", leftName, rightName, value)
		}
		lookupDefs.add("} %s;", lkName)
		lookupNames = append(lookupNames, lkName)
	}

	out := &lineWriter{}
	out.lines = append(out.lines, classDefs.lines...)
	out.add("")
	out.lines = append(out.lines, lookupDefs.lines...)
	out.add("")
	out.add("feature kern {")
	for _, name := range lookupNames {
		out.add("    lookup %s;", name)
	}
	out.add("} kern;")
	return out.String()
}

func minRune(rs []rune) rune {
	m := rs[0]
	for _, r := range rs[1:] {
		if r < m {
			m = r
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
