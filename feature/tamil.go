package feature

const (
	tamilKssa  = rune(0xF00ED)
	tamilShrii = rune(0xF00EE)
	tamilI     = rune(0x0BBF)
)

// tamilLigatingConsonants take ligated u/uu matra forms, in the order
// the presentation block assigns their slots.
var tamilLigatingConsonants = []rune{
	0x0B95, 0x0B99, 0x0B9A, 0x0B9E, 0x0B9F, 0x0BA3, 0x0BA4, 0x0BA8,
	0x0BA9, 0x0BAA, 0x0BAE, 0x0BAF, 0x0BB0, 0x0BB1, 0x0BB2, 0x0BB3,
	0x0BB4, 0x0BB5,
}

// generateTamil emits the tml2 pres feature: i-matra ligatures for the
// consonants whose shapes fuse with it, the ligated u/uu series, and
// the KSSA and SHRII ligatures.
func generateTamil(ctx *Context) string {
	subs := &lineWriter{}

	iRules := []struct {
		cons, result rune
		name         string
	}{
		{0x0B99, 0xF00F0, "nga+i"},
		{0x0BAA, 0xF00F1, "pa+i"},
		{0x0BAF, 0xF00F2, "ya+i"},
		{0x0BB2, 0xF00F3, "la+i"},
		{0x0BB5, 0xF00F4, "va+i"},
		{0x0BB8, 0xF00F5, "sa+i"},
	}
	for _, r := range iRules {
		if ctx.Has(r.cons) && ctx.Has(tamilI) && ctx.Has(r.result) {
			subs.add("    sub %s %s by %s; # %s", GlyphName(r.cons), GlyphName(tamilI), GlyphName(r.result), r.name)
		}
	}

	if ctx.Has(0x0B9F) && ctx.Has(0x0BBF) && ctx.Has(0xF00C0) {
		subs.add("    sub %s %s by %s; # tta+i", GlyphName(0x0B9F), GlyphName(0x0BBF), GlyphName(0xF00C0))
	}
	if ctx.Has(0x0B9F) && ctx.Has(0x0BC0) && ctx.Has(0xF00C1) {
		subs.add("    sub %s %s by %s; # tta+ii", GlyphName(0x0B9F), GlyphName(0x0BC0), GlyphName(0xF00C1))
	}

	for idx, cons := range tamilLigatingConsonants {
		uForm := rune(0xF00C2 + idx)
		uuForm := rune(0xF00D4 + idx)
		if ctx.Has(cons) && ctx.Has(0x0BC1) && ctx.Has(uForm) {
			subs.add("    sub %s %s by %s;", GlyphName(cons), GlyphName(0x0BC1), GlyphName(uForm))
		}
		if ctx.Has(cons) && ctx.Has(0x0BC2) && ctx.Has(uuForm) {
			subs.add("    sub %s %s by %s;", GlyphName(cons), GlyphName(0x0BC2), GlyphName(uuForm))
		}
	}

	if ctx.hasAll([]rune{0x0B95, 0x0BCD, 0x0BB7}) && ctx.Has(tamilKssa) {
		subs.add("    sub %s by %s; # KSSA", glyphNames([]rune{0x0B95, 0x0BCD, 0x0BB7}), GlyphName(tamilKssa))
	}
	if ctx.hasAll([]rune{0x0BB6, 0x0BCD, 0x0BB0, 0x0BC0}) && ctx.Has(tamilShrii) {
		subs.add("    sub %s by %s; # SHRII (sha)", glyphNames([]rune{0x0BB6, 0x0BCD, 0x0BB0, 0x0BC0}), GlyphName(tamilShrii))
	}
	if ctx.hasAll([]rune{0x0BB8, 0x0BCD, 0x0BB0, 0x0BC0}) && ctx.Has(tamilShrii) {
		subs.add("    sub %s by %s; # SHRII (sa)", glyphNames([]rune{0x0BB8, 0x0BCD, 0x0BB0, 0x0BC0}), GlyphName(tamilShrii))
	}

	if subs.empty() {
		return ""
	}
	w := &lineWriter{}
	w.add("feature pres {")
	w.add("    script tml2;")
	w.lines = append(w.lines, subs.lines...)
	w.add("} pres;")
	return w.String()
}
