package feature

// generateLocl emits localized Cyrillic forms. The Bulgarian and
// Serbian alternates live in two private-use runs parallel to the
// U+0400 block; a substitution is only worth emitting when the
// alternate artwork actually differs from the default.
func generateLocl(ctx *Context) string {
	bgSubs := ctx.loclSubs(0xF0000, 0xF0060)
	srSubs := ctx.loclSubs(0xF0060, 0xF00C0)
	if bgSubs.empty() && srSubs.empty() {
		return ""
	}

	w := &lineWriter{}
	w.add("feature locl {")
	w.add("    script cyrl;")
	if !bgSubs.empty() {
		w.add("    language BGR;")
		w.add("    lookup BulgarianForms {")
		w.lines = append(w.lines, bgSubs.lines...)
		w.add("    } BulgarianForms;")
	}
	if !srSubs.empty() {
		w.add("    language SRB;")
		w.add("    lookup SerbianForms {")
		w.lines = append(w.lines, srSubs.lines...)
		w.add("    } SerbianForms;")
	}
	w.add("} locl;")
	return w.String()
}

func (ctx *Context) loclSubs(puaLo, puaHi rune) *lineWriter {
	subs := &lineWriter{}
	for pua := puaLo; pua < puaHi; pua++ {
		cyrillic := pua - puaLo + 0x0400
		if !ctx.Has(pua) || !ctx.Has(cyrillic) {
			continue
		}
		pg, cg := ctx.Glyph(pua), ctx.Glyph(cyrillic)
		if pg.Bitmap.Equal(cg.Bitmap) {
			continue
		}
		subs.add("        sub %s by %s;", GlyphName(cyrillic), GlyphName(pua))
	}
	return subs
}
