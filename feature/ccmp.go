package feature

// generateCcmp turns expansion directives into multiple-substitution
// rules: the authored glyph is replaced by the concatenation of its
// target codepoints during shaping.
func generateCcmp(ctx *Context) string {
	subs := &lineWriter{}
	for _, exp := range ctx.Expansions {
		if !ctx.Has(exp.Source) {
			continue
		}
		ok := true
		for _, t := range exp.Targets {
			if !ctx.Has(t) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		subs.add("    sub %s by %s;", GlyphName(exp.Source), glyphNames(exp.Targets))
	}
	if subs.empty() {
		return ""
	}

	w := &lineWriter{}
	w.add("feature ccmp {")
	w.add("    lookup ReplacewithExpansion {")
	w.lines = append(w.lines, subs.lines...)
	w.add("    } ReplacewithExpansion;")
	w.add("} ccmp;")
	return w.String()
}
