package feature

import "sort"

// Devanagari internal encoding. Shaping rewrites the Unicode consonant
// block into a private-use presentation range early (the dev2 ccmp
// lookup), and every later feature operates on those forms.
const (
	devaVirama = rune(0x094D)
	devaNukta  = rune(0x093C)

	devaU  = rune(0x0941)
	devaUU = rune(0x0942)

	devaSyllRu   = rune(0xF0100)
	devaSyllRuu  = rune(0xF0101)
	devaSyllRRu  = rune(0xF0102)
	devaSyllRRuu = rune(0xF0103)
	devaSyllHu   = rune(0xF0104)
	devaSyllHuu  = rune(0xF0105)

	devaRaSub          = rune(0xF010A)
	devaRaSuper        = rune(0xF010C)
	devaRaSuperComplex = rune(0xF010D)

	devaLigKSs = rune(0xF01A1)
	devaLigJNy = rune(0xF01A2)
	devaLigTT  = rune(0xF01A3)
	devaLigNT  = rune(0xF01A4)
	devaLigNN  = rune(0xF01A5)
	devaLigSV  = rune(0xF01A6)
	devaLigSsP = rune(0xF01A7)
	devaLigShC = rune(0xF01A8)
	devaLigShN = rune(0xF01A9)
	devaLigShV = rune(0xF01AA)
	devaLigJY  = rune(0xF01AB)
	devaLigKT  = rune(0xF01BC)

	devaPresBase       = rune(0xF0140) // full consonant forms
	devaPresHalf       = rune(0xF0230) // half forms (+240)
	devaPresWithRa     = rune(0xF0320) // rakaar-appended forms (+480)
	devaPresWithRaHalf = rune(0xF0410)
	devaPresEnd        = rune(0xF0500)
)

// devaNuktaForms maps U+0958..U+095F (precomposed nukta consonants) to
// their internal presentation forms.
var devaNuktaForms = [8]rune{0xF0170, 0xF0171, 0xF0172, 0xF0177, 0xF017C, 0xF017D, 0xF0186, 0xF018A}

// toDevaInternal returns the internal presentation form of a Unicode
// Devanagari consonant, or false when the codepoint has none.
func toDevaInternal(cp rune) (rune, bool) {
	switch {
	case 0x0915 <= cp && cp <= 0x0939:
		return cp - 0x0915 + devaPresBase, true
	case 0x0958 <= cp && cp <= 0x095F:
		return devaNuktaForms[cp-0x0958], true
	}
	return 0, false
}

// devaInternal is toDevaInternal for codepoints already known to be
// consonants; anything unmapped passes through unchanged.
func devaInternal(cp rune) rune {
	if internal, ok := toDevaInternal(cp); ok {
		return internal
	}
	return cp
}

// devaConjuncts lists the two-consonant ligatures. Both consonants are
// Unicode codepoints; the emitted rule references their internal forms.
var devaConjuncts = []struct {
	c1, c2, result rune
	name           string
}{
	{0x0915, 0x0924, devaLigKT, "K.T"},
	{0x0918, 0x091F, 0xF01BD, "GH.TT"},
	{0x0918, 0x0920, 0xF01BE, "GH.TTH"},
	{0x0918, 0x0922, 0xF01BF, "GH.DDH"},
	{0x0919, 0x0915, 0xF01CE, "NG.K"},
	{0x0919, 0x0916, 0xF01CF, "NG.KH"},
	{0x0919, 0x0917, 0xF01D2, "NG.G"},
	{0x0919, 0x0918, 0xF01D3, "NG.GH"},
	{0x0919, 0x0928, 0xF01CD, "NG.N"},
	{0x0919, 0x092E, 0xF01D4, "NG.M"},
	{0x091B, 0x0935, 0xF01D5, "CH.V"},
	{0x091C, 0x092F, devaLigJY, "J.Y"},
	{0x091F, 0x0915, 0xF01E0, "TT.K"},
	{0x091F, 0x091F, 0xF01D6, "TT.TT"},
	{0x091F, 0x0920, 0xF01D7, "TT.TTH"},
	{0x091F, 0x092A, 0xF01E1, "TT.P"},
	{0x091F, 0x0935, 0xF01D8, "TT.V"},
	{0x091F, 0x0936, 0xF01E2, "TT.SH"},
	{0x091F, 0x0938, 0xF01E3, "TT.S"},
	{0x0920, 0x0920, 0xF01D9, "TTH.TTH"},
	{0x0920, 0x0935, 0xF01DA, "TTH.V"},
	{0x0921, 0x0917, 0xF01D0, "DD.G"},
	{0x0921, 0x0921, 0xF01DB, "DD.DD"},
	{0x0921, 0x0922, 0xF01DC, "DD.DDH"},
	{0x0921, 0x092D, 0xF01D1, "DD.BH"},
	{0x0921, 0x0935, 0xF01DD, "DD.V"},
	{0x0922, 0x0922, 0xF01DE, "DDH.DDH"},
	{0x0922, 0x0935, 0xF01DF, "DDH.V"},
	{0x0924, 0x0924, devaLigTT, "T.T"},
	{0x0926, 0x0917, 0xF01B0, "D.G"},
	{0x0926, 0x0918, 0xF01B1, "D.GH"},
	{0x0926, 0x0926, 0xF01B2, "D.D"},
	{0x0926, 0x0927, 0xF01B3, "D.DH"},
	{0x0926, 0x0928, 0xF01B4, "D.N"},
	{0x0926, 0x092C, 0xF01B5, "D.B"},
	{0x0926, 0x092D, 0xF01B6, "D.BH"},
	{0x0926, 0x092E, 0xF01B7, "D.M"},
	{0x0926, 0x092F, 0xF01B8, "D.Y"},
	{0x0926, 0x0935, 0xF01B9, "D.V"},
	{0x0928, 0x0924, devaLigNT, "N.T"},
	{0x0928, 0x0928, devaLigNN, "N.N"},
	{0x092A, 0x091F, 0xF01C0, "P.TT"},
	{0x092A, 0x0920, 0xF01C1, "P.TTH"},
	{0x092A, 0x0922, 0xF01C2, "P.DDH"},
	{0x0936, 0x091A, devaLigShC, "SH.C"},
	{0x0936, 0x0928, devaLigShN, "SH.N"},
	{0x0936, 0x0935, devaLigShV, "SH.V"},
	{0x0937, 0x091F, 0xF01C3, "SS.TT"},
	{0x0937, 0x0920, 0xF01C4, "SS.TTH"},
	{0x0937, 0x0922, 0xF01C5, "SS.DDH"},
	{0x0937, 0x092A, devaLigSsP, "SS.P"},
	{0x0938, 0x0935, devaLigSV, "S.V"},
	{0x0939, 0x0923, 0xF01C6, "H.NN"},
	{0x0939, 0x0928, 0xF01C7, "H.N"},
	{0x0939, 0x092E, 0xF01C8, "H.M"},
	{0x0939, 0x092F, 0xF01C9, "H.Y"},
	{0x0939, 0x0932, 0xF01CA, "H.L"},
	{0x0939, 0x0935, 0xF01CB, "H.V"},
}

// generateDevanagari emits the dev2 GSUB feature chain: ccmp (internal
// consonant mapping and vowel decomposition), nukt, akhn (akhand
// ligatures plus all conjuncts), half, blwf, cjct, blws, rphf, abvs
// and psts. Feature order within the output mirrors the order the
// Indic shaper applies them in.
func generateDevanagari(ctx *Context) string {
	var blocks []string

	if b := ctx.devaCcmp(); b != "" {
		blocks = append(blocks, b)
	}

	// nukt: internal consonant + nukta sign to the nukta form.
	nukt := &lineWriter{}
	for uni := rune(0x0915); uni < 0x093A; uni++ {
		internal := devaInternal(uni)
		nuktaForm := internal + 48
		if ctx.Has(internal) && ctx.Has(devaNukta) && ctx.Has(nuktaForm) {
			nukt.add("    sub %s %s by %s;", GlyphName(internal), GlyphName(devaNukta), GlyphName(nuktaForm))
		}
	}
	if b := devaFeature("nukt", nukt); b != "" {
		blocks = append(blocks, b)
	}

	// akhn: akhand ligatures and all conjuncts. Conjuncts live here
	// rather than in half because the shaper applies akhn globally to
	// the syllable while half masks to pre-base consonants only, which
	// would keep 3-glyph matches from crossing the base boundary.
	akhn := &lineWriter{}
	kssa := [3]rune{devaInternal(0x0915), devaVirama, devaInternal(0x0937)}
	jny := [3]rune{devaInternal(0x091C), devaVirama, devaInternal(0x091E)}
	if ctx.hasAll(kssa[:]) && ctx.Has(devaLigKSs) {
		akhn.add("    sub %s by %s;", glyphNames(kssa[:]), GlyphName(devaLigKSs))
	}
	if ctx.hasAll(jny[:]) && ctx.Has(devaLigJNy) {
		akhn.add("    sub %s by %s;", glyphNames(jny[:]), GlyphName(devaLigJNy))
	}
	for _, cj := range devaConjuncts {
		seq := []rune{devaInternal(cj.c1), devaVirama, devaInternal(cj.c2)}
		if ctx.hasAll(seq) && ctx.Has(cj.result) {
			akhn.add("    sub %s by %s; # %s", glyphNames(seq), GlyphName(cj.result), cj.name)
		}
	}
	if b := devaFeature("akhn", akhn); b != "" {
		blocks = append(blocks, b)
	}

	// half: internal consonant + virama to the half form.
	half := &lineWriter{}
	for uni := rune(0x0915); uni < 0x093A; uni++ {
		internal := devaInternal(uni)
		halfForm := internal + 240
		if ctx.Has(internal) && ctx.Has(devaVirama) && ctx.Has(halfForm) {
			half.add("    sub %s %s by %s;", GlyphName(internal), GlyphName(devaVirama), GlyphName(halfForm))
		}
	}
	if b := devaFeature("half", half); b != "" {
		blocks = append(blocks, b)
	}

	// blwf: virama + RA to the below-base rakaar. The Unicode-form rule
	// exists so the shaper's would-substitute probe (which runs before
	// ccmp) classifies RA as below-base; the internal-form rule does the
	// actual work.
	raInt := devaInternal(0x0930)
	blwf := &lineWriter{}
	if ctx.Has(devaVirama) && ctx.Has(0x0930) && ctx.Has(devaRaSub) {
		blwf.add("    sub %s %s by %s;", GlyphName(devaVirama), GlyphName(0x0930), GlyphName(devaRaSub))
	}
	if ctx.Has(devaVirama) && ctx.Has(raInt) && ctx.Has(devaRaSub) {
		blwf.add("    sub %s %s by %s;", GlyphName(devaVirama), GlyphName(raInt), GlyphName(devaRaSub))
	}
	if b := devaFeature("blwf", blwf); b != "" {
		blocks = append(blocks, b)
	}

	// cjct: consonant + rakaar to the ra-appended form.
	cjct := &lineWriter{}
	for internal := devaPresBase; internal < devaPresHalf; internal++ {
		raForm := internal + 480
		if ctx.Has(internal) && ctx.Has(devaRaSub) && ctx.Has(raForm) {
			cjct.add("    sub %s %s by %s;", GlyphName(internal), GlyphName(devaRaSub), GlyphName(raForm))
		}
	}
	if b := devaFeature("cjct", cjct); b != "" {
		blocks = append(blocks, b)
	}

	// blws: RA/RRA/HA plus U/UU matra form precomposed syllables.
	blws := &lineWriter{}
	blwsRules := []struct {
		c1, c2, result rune
		name           string
	}{
		{devaInternal(0x0930), devaU, devaSyllRu, "Ru"},
		{devaInternal(0x0930), devaUU, devaSyllRuu, "Ruu"},
		{devaInternal(0x0931), devaU, devaSyllRRu, "RRu"},
		{devaInternal(0x0931), devaUU, devaSyllRRuu, "RRuu"},
		{devaInternal(0x0939), devaU, devaSyllHu, "Hu"},
		{devaInternal(0x0939), devaUU, devaSyllHuu, "Huu"},
	}
	for _, r := range blwsRules {
		if ctx.Has(r.c1) && ctx.Has(r.c2) && ctx.Has(r.result) {
			blws.add("    sub %s %s by %s; # %s", GlyphName(r.c1), GlyphName(r.c2), GlyphName(r.result), r.name)
		}
	}
	if b := devaFeature("blws", blws); b != "" {
		blocks = append(blocks, b)
	}

	// rphf: RA + virama to the reph mark.
	if ctx.Has(raInt) && ctx.Has(devaVirama) && ctx.Has(devaRaSuper) {
		rphf := &lineWriter{}
		rphf.add("    sub %s %s by %s;", GlyphName(raInt), GlyphName(devaVirama), GlyphName(devaRaSuper))
		blocks = append(blocks, devaFeature("rphf", rphf))
	}

	if b := ctx.devaAbvs(); b != "" {
		blocks = append(blocks, b)
	}

	// psts runs last: abvs keys off the raw i-matra as context, so the
	// length-variant substitution must not fire before it.
	if b := ctx.devaPsts(); b != "" {
		blocks = append(blocks, b)
	}

	return joinBlocks(blocks)
}

// devaCcmp maps Unicode consonants to internal forms and decomposes
// independent vowels. Both lookups sit in the dev2 ccmp: when a dev2
// shaping table exists the shaper ignores the DFLT ccmp for this
// script.
func (ctx *Context) devaCcmp() string {
	consonants := &lineWriter{}
	for uni := rune(0x0915); uni < 0x093A; uni++ {
		internal := devaInternal(uni)
		if ctx.Has(uni) && ctx.Has(internal) {
			consonants.add("        sub %s by %s;", GlyphName(uni), GlyphName(internal))
		}
	}
	for uni := rune(0x0958); uni < 0x0960; uni++ {
		internal, ok := toDevaInternal(uni)
		if ok && ctx.Has(uni) && ctx.Has(internal) {
			consonants.add("        sub %s by %s;", GlyphName(uni), GlyphName(internal))
		}
	}

	decomps := &lineWriter{}
	for _, exp := range ctx.Expansions {
		src := exp.Source
		if src < 0x0900 || src > 0x097F {
			continue
		}
		if (0x0915 <= src && src <= 0x0939) || (0x0958 <= src && src <= 0x095F) {
			continue
		}
		if len(exp.Targets) < 2 || !ctx.Has(src) || !ctx.hasAll(exp.Targets) {
			continue
		}
		decomps.add("        sub %s by %s;", GlyphName(src), glyphNames(exp.Targets))
	}

	if consonants.empty() && decomps.empty() {
		return ""
	}
	w := &lineWriter{}
	w.add("feature ccmp {")
	w.add("    script dev2;")
	if !consonants.empty() {
		w.add("    lookup DevaConsonantMap {")
		w.lines = append(w.lines, consonants.lines...)
		w.add("    } DevaConsonantMap;")
	}
	if !decomps.empty() {
		w.add("    lookup DevaVowelDecomp {")
		w.lines = append(w.lines, decomps.lines...)
		w.add("    } DevaVowelDecomp;")
	}
	w.add("} ccmp;")
	return w.String()
}

// devaAbvs swaps the plain reph for the complex one when a superscript
// sign immediately precedes it, or when an i-matra sits earlier in the
// reordered syllable with up to three glyphs in between.
func (ctx *Context) devaAbvs() string {
	if !ctx.Has(devaRaSuper) || !ctx.Has(devaRaSuperComplex) {
		return ""
	}

	var triggerCps []rune
	triggerCps = append(triggerCps, runeRange(0x0900, 0x0903)...)
	triggerCps = append(triggerCps, runeRange(0x093A, 0x093D)...)
	triggerCps = append(triggerCps, runeRange(0x093E, 0x094D)...)
	triggerCps = append(triggerCps, 0x094E, 0x094F, 0x0951)
	triggerCps = append(triggerCps, runeRange(0x0953, 0x0956)...)
	triggers := ctx.glyphClass(triggerCps)

	anySet := make(map[rune]bool)
	for _, cp := range runeRange(0xF0140, 0xF0165) {
		anySet[cp] = true
	}
	for _, cp := range runeRange(0xF0170, 0xF0195) {
		anySet[cp] = true
	}
	for _, cp := range runeRange(0xF0230, 0xF0255) {
		anySet[cp] = true
	}
	for _, cp := range runeRange(0xF0320, 0xF0405) {
		anySet[cp] = true
	}
	for _, cp := range runeRange(0x093A, 0x094D) {
		anySet[cp] = true
	}
	for _, cp := range runeRange(0x0900, 0x0903) {
		anySet[cp] = true
	}
	anySet[0x094E] = true
	anySet[0x094F] = true
	anySet[0x0951] = true
	for _, cp := range runeRange(0x0953, 0x0956) {
		anySet[cp] = true
	}
	anySet[devaRaSub] = true
	for _, cj := range devaConjuncts {
		anySet[cj.result] = true
	}
	anyCps := make([]rune, 0, len(anySet))
	for cp := range anySet {
		anyCps = append(anyCps, cp)
	}
	sort.Slice(anyCps, func(i, j int) bool { return anyCps[i] < anyCps[j] })
	devaAny := ctx.glyphClass(anyCps)

	if triggers == "" || devaAny == "" {
		return ""
	}

	reph := GlyphName(devaRaSuper)
	w := &lineWriter{}
	w.add("lookup ComplexReph {")
	w.add("    sub %s by %s;", reph, GlyphName(devaRaSuperComplex))
	w.add("} ComplexReph;")
	w.add("")
	w.add("feature abvs {")
	w.add("    script dev2;")
	w.add("    @complexRephTriggers = [%s];", triggers)
	w.add("    @devaAny = [%s];", devaAny)
	w.add("    sub @complexRephTriggers %s' lookup ComplexReph;", reph)
	iMatra := GlyphName(0x093F)
	w.add("    sub %s @devaAny %s' lookup ComplexReph;", iMatra, reph)
	w.add("    sub %s @devaAny @devaAny %s' lookup ComplexReph;", iMatra, reph)
	w.add("    sub %s @devaAny @devaAny @devaAny %s' lookup ComplexReph;", iMatra, reph)
	w.add("} abvs;")
	return w.String()
}

func (ctx *Context) hasAll(cps []rune) bool {
	for _, cp := range cps {
		if !ctx.Has(cp) {
			return false
		}
	}
	return true
}

// devaFeature wraps a sub list into a dev2 feature block.
func devaFeature(tag string, subs *lineWriter) string {
	if subs.empty() {
		return ""
	}
	w := &lineWriter{}
	w.add("feature %s {", tag)
	w.add("    script dev2;")
	w.lines = append(w.lines, subs.lines...)
	w.add("} %s;", tag)
	return w.String()
}

func joinBlocks(blocks []string) string {
	out := ""
	for i, b := range blocks {
		if i > 0 {
			out += "\n\n"
		}
		out += b
	}
	return out
}
