package feature

import (
	"fmt"
	"strings"

	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/kern"
)

// Context is the read-only input of the rule generators: the frozen
// glyph store, the generated kerning table, and the expansion
// directives collected from the store.
type Context struct {
	Store      *glyph.Store
	Kern       kern.Table
	Expansions []glyph.Expansion
}

// Has reports whether a codepoint survived into the final repertoire.
// Every generator gates every glyph reference on this.
func (ctx *Context) Has(cp rune) bool {
	return ctx.Store.Exists(cp)
}

// Glyph returns the stored glyph for a codepoint, or nil.
func (ctx *Context) Glyph(cp rune) *glyph.Glyph {
	g, ok := ctx.Store.Get(cp)
	if !ok {
		return nil
	}
	return g
}

// A Generator emits the rule text for one feature (or a related group
// of features, named by the group's leading tag). Generators are pure;
// an empty result means the feature has nothing to say for this
// repertoire.
type Generator struct {
	Name string
	Tag  Tag
	Emit func(*Context) string
}

// Generators is the fixed emission order. Application order inside the
// shaping pipeline depends on the order of the emitted blocks, so this
// list is part of the contract, not a convenience.
var Generators = []Generator{
	{"ccmp", T("ccmp"), generateCcmp},
	{"hangul", T("ljmo"), generateHangul},
	{"kern", T("kern"), generateKern},
	{"liga", T("liga"), generateLiga},
	{"locl", T("locl"), generateLocl},
	{"devanagari", T("nukt"), generateDevanagari},
	{"tamil", T("pres"), generateTamil},
	{"sundanese", T("pres"), generateSundanese},
	{"mark", T("mark"), generateMark},
}

// Generate runs all generators against the context and joins their
// non-empty fragments. The store must be frozen; output is a pure
// function of the inputs.
func Generate(ctx *Context) string {
	var parts []string
	for _, gen := range Generators {
		fragment := gen.Emit(ctx)
		if fragment == "" {
			tracer().Debugf("feature generator %s produced no rules", gen.Name)
			continue
		}
		tracer().Debugf("feature generator %s: %d bytes of rule text", gen.Name, len(fragment))
		parts = append(parts, fragment)
	}
	return strings.Join(parts, "\n\n")
}

// lineWriter accumulates rule text line by line.
type lineWriter struct {
	lines []string
}

func (w *lineWriter) add(format string, args ...interface{}) {
	if len(args) == 0 {
		w.lines = append(w.lines, format)
		return
	}
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func (w *lineWriter) empty() bool { return len(w.lines) == 0 }

func (w *lineWriter) String() string { return strings.Join(w.lines, "\n") }
