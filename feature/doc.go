/*
Package feature synthesizes shaping-rule source text for the layout
compiler: one generator per OpenType feature tag, each a pure function
over the frozen glyph store, the kerning table and the Hangul variant
inventory. Generators emit declarative `feature`/`lookup`/`sub`/`pos`
blocks and are defensive throughout: a referenced codepoint that did
not survive into the final repertoire silences the rule that would
mention it, never producing dangling references.

The order of the emitted blocks matters: later features of the shaping
pipeline (for example the matra length-variant selection) rely on
substitutions of earlier ones having already run.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package feature

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tsb.feature'
func tracer() tracing.Trace {
	return tracing.Select("tsb.feature")
}

// Tag identifies an OpenType layout feature, script or language
// system: four uint8s packed big-endian, exactly as in the binary
// tables the emitted text compiles into.
type Tag uint32

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(uint32(t[0])<<24 | uint32(t[1])<<16 | uint32(t[2])<<8 | uint32(t[3]))
}

func (t Tag) String() string {
	return string([]byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	})
}
