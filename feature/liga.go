package feature

// ligaRules are the standard Latin presentation-form ligatures plus the
// long-s pair, followed by the Armenian presentation forms.
var ligaRules = []struct {
	seq    []rune
	result rune
	note   string
}{
	{[]rune{0x66, 0x66, 0x69}, 0xFB03, "ffi"},
	{[]rune{0x66, 0x66, 0x6C}, 0xFB04, "ffl"},
	{[]rune{0x66, 0x66}, 0xFB00, "ff"},
	{[]rune{0x66, 0x69}, 0xFB01, "fi"},
	{[]rune{0x66, 0x6C}, 0xFB02, "fl"},
	{[]rune{0x17F, 0x74}, 0xFB05, "long-s t"},
	{[]rune{0x73, 0x74}, 0xFB06, "st"},
	{[]rune{0x574, 0x576}, 0xFB13, "Armenian men now"},
	{[]rune{0x574, 0x565}, 0xFB14, "Armenian men ech"},
	{[]rune{0x574, 0x56B}, 0xFB15, "Armenian men ini"},
	{[]rune{0x57E, 0x576}, 0xFB16, "Armenian vew now"},
	{[]rune{0x574, 0x56D}, 0xFB17, "Armenian men xeh"},
}

// generateLiga emits the liga feature for the presentation-form
// ligatures the artwork actually carries.
func generateLiga(ctx *Context) string {
	subs := &lineWriter{}
	for _, rule := range ligaRules {
		ok := ctx.Has(rule.result)
		for _, c := range rule.seq {
			ok = ok && ctx.Has(c)
		}
		if !ok {
			continue
		}
		subs.add("    sub %s by %s; # %s", glyphNames(rule.seq), GlyphName(rule.result), rule.note)
	}
	if subs.empty() {
		return ""
	}
	w := &lineWriter{}
	w.add("feature liga {")
	w.lines = append(w.lines, subs.lines...)
	w.add("} liga;")
	return w.String()
}
