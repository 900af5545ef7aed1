/*
Package glyph holds the per-glyph data model of the build pipeline: the
property record decoded from a sheet's tag column, the 1-bit glyph
bitmap, and the glyph store which every pipeline stage populates and
which is frozen before any artifact is emitted.

A glyph is addressed by its Unicode codepoint. Codepoints in the
Private Use planes are used for internal presentation forms (positional
Hangul jamo, Devanagari half forms and conjuncts, matra length
variants); they receive glyph slots but are invisible to the character
map.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package glyph

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tsb.glyph'
func tracer() tracing.Trace {
	return tracing.Select("tsb.glyph")
}

func assertThat(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
