/*
Package kern derives pair kerning from glyph shape tags. Every glyph
with kerning data carries a 24-bit shape mask in its tag column; rules
match bit patterns of a left and a right mask and, on the first match,
contract the pair by a fixed number of pixels. Half of the rule table
is derived mechanically by mirroring the hand-written half, covering
the right-to-left-symmetric shape classes.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package kern

import (
	"sort"

	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/sheet"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tsb.kern'
func tracer() tracing.Trace {
	return tracing.Select("tsb.kern")
}

// maskBits maps the ten matcher positions onto bit positions of the
// kerning shape mask.
var maskBits = [10]uint32{
	1 << 7, 1 << 6, 1 << 5, 1 << 4, 1 << 3,
	1 << 2, 1 << 1, 1 << 0, 1 << 15, 1 << 14,
}

// matcher tests a 10-position bit pattern against a shape mask. In the
// template string '@' demands a 1 bit, '`' demands a 0 bit, and any
// other character ('_' by convention) is don't-care.
type matcher struct {
	pattern  string
	careBits uint32
	ruleBits uint32
}

func newMatcher(pattern string) matcher {
	m := matcher{pattern: pattern}
	for i, ch := range pattern {
		switch ch {
		case '@':
			m.careBits |= maskBits[i]
			m.ruleBits |= maskBits[i]
		case '`':
			m.careBits |= maskBits[i]
		}
	}
	return m
}

func (m matcher) matches(mask uint32) bool {
	return mask&m.careBits == m.ruleBits
}

// rule pairs a left and a right matcher with two contraction
// magnitudes: bb applies when neither glyph is of the vertical-kerning
// type, yy when at least one is. A zero magnitude means the rule
// matches but applies no gap.
type rule struct {
	left  matcher
	right matcher
	bb    int
	yy    int
}

func newRule(left, right string, bb, yy int) rule {
	return rule{left: newMatcher(left), right: newMatcher(right), bb: bb, yy: yy}
}

// mirror derives the right-to-left twin of a rule: matchers swap
// sides, and within each matcher the bit positions swap pairwise.
func (r rule) mirror() rule {
	return rule{
		left:  newMatcher(swapPairwise(r.right.pattern)),
		right: newMatcher(swapPairwise(r.left.pattern)),
		bb:    r.bb,
		yy:    r.yy,
	}
}

func swapPairwise(s string) string {
	out := make([]byte, len(s))
	for i := 0; i+1 < len(s); i += 2 {
		out[i] = s[i+1]
		out[i+1] = s[i]
	}
	return string(out)
}

// rules is the fixed rule table: six hand-written rules followed by
// their six mirrors. Order matters; the first match wins.
var rules = buildRules()

func buildRules() []rule {
	base := []rule{
		newRule("_`_@___`__", "`_`___@___", 2, 1),
		newRule("_@_`___`__", "`_________", 2, 1),
		newRule("_@_@___`__", "`___@_@___", 1, 1),
		newRule("_@_@_`_`__", "`_____@___", 2, 1),
		newRule("___`_`____", "`___@_`___", 2, 1),
		newRule("___`_`____", "`_@___`___", 2, 1),
	}
	all := make([]rule, 0, 2*len(base))
	all = append(all, base...)
	for _, r := range base {
		all = append(all, r.mirror())
	}
	return all
}

// Rules exposes the rule count for tests.
func Rules() int { return len(rules) }

// Pair is an ordered glyph pair.
type Pair struct {
	Left, Right rune
}

// Table maps ordered pairs to kerning offsets in font units. Values
// are negative: kerning only ever tightens.
type Table map[Pair]int

// Glyphs with a rounded lowercase-r bowl, kerned tightly against a
// following dot or comma regardless of the rule engine.
var lowercaseRs = []rune{0x72, 0x155, 0x157, 0x159, 0x211, 0x213, 0x27C, 0x1E58, 0x1E59, 0x1E5F}
var dots = []rune{0x2C, 0x2E}

// Generate matches every ordered pair of kern-tagged glyphs against
// the rule table and returns the resulting pair table. Entries are
// first-match-wins: once a pair has an offset, no later rule (nor the
// rule engine, for the exception pairs) may overwrite it.
func Generate(store *glyph.Store) Table {
	result := make(Table)

	put := func(left, right rune, offset int) {
		key := Pair{left, right}
		if _, exists := result[key]; !exists {
			result[key] = offset
		}
	}

	for _, r := range lowercaseRs {
		for _, d := range dots {
			if store.Exists(r) && store.Exists(d) {
				put(r, d, -1*sheet.Scale)
			}
		}
	}

	var kernable []rune
	for _, code := range store.Codes() {
		g, _ := store.Get(code)
		if g.Props.HasKernData && !g.Props.IsIllegal() {
			kernable = append(kernable, code)
		}
	}
	sort.Slice(kernable, func(i, j int) bool { return kernable[i] < kernable[j] })
	if len(kernable) == 0 {
		tracer().Infof("no glyphs with kerning data")
		return result
	}
	tracer().Infof("%d glyphs with kerning data", len(kernable))

	pairs := 0
	for _, left := range kernable {
		lg, _ := store.Get(left)
		for _, right := range kernable {
			rg, _ := store.Get(right)
			for _, r := range rules {
				if !r.left.matches(lg.Props.KerningMask) || !r.right.matches(rg.Props.KerningMask) {
					continue
				}
				contraction := r.bb
				if lg.Props.IsKernYType || rg.Props.IsKernYType {
					contraction = r.yy
				}
				if contraction > 0 {
					put(left, right, -contraction*sheet.Scale)
					pairs++
				}
				break // first matching rule wins
			}
		}
	}
	tracer().Infof("generated %d kerning pairs", pairs)
	return result
}

// SortedPairs returns the table's keys ordered by left then right
// codepoint, for deterministic emission.
func (t Table) SortedPairs() []Pair {
	pairs := make([]Pair, 0, len(t))
	for p := range t {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Left != pairs[j].Left {
			return pairs[i].Left < pairs[j].Left
		}
		return pairs[i].Right < pairs[j].Right
	})
	return pairs
}
