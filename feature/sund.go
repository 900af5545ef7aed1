package feature

// generateSundanese emits the sund pres feature: stacked diacritic
// pairs collapse into the precomposed forms of the private-use block.
func generateSundanese(ctx *Context) string {
	rules := []struct {
		c1, c2, result rune
		name           string
	}{
		{0x1BA4, 0x1B80, 0xF0500, "panghulu+panyecek=ing"},
		{0x1BA8, 0x1B80, 0xF0501, "pamepet+panyecek=eng"},
		{0x1BA9, 0x1B80, 0xF0502, "paneuleung+panyecek=eung"},
		{0x1BA4, 0x1B81, 0xF0503, "panghulu+panglayar=ir"},
		{0x1BA8, 0x1B81, 0xF0504, "pamepet+panglayar=er"},
		{0x1BA9, 0x1B81, 0xF0505, "paneuleung+panglayar=eur"},
		{0x1BA3, 0x1BA5, 0xF0506, "panyuku+panglayar=lu"},
	}

	subs := &lineWriter{}
	for _, r := range rules {
		if ctx.Has(r.c1) && ctx.Has(r.c2) && ctx.Has(r.result) {
			subs.add("    sub %s %s by %s; # %s", GlyphName(r.c1), GlyphName(r.c2), GlyphName(r.result), r.name)
		}
	}
	if subs.empty() {
		return ""
	}
	w := &lineWriter{}
	w.add("feature pres {")
	w.add("    script sund;")
	w.lines = append(w.lines, subs.lines...)
	w.add("} pres;")
	return w.String()
}
