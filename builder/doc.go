/*
Package builder drives the batch pipeline: decode every sheet of the
catalogue into the glyph store, compose Hangul, run the store mutation
passes, freeze, and then derive the artifacts handed to the font
assembler (glyph order, character map, outlines, metrics, kerning,
shaping-rule text and the embedded bitmap strike).

The stages are strictly ordered. Sheet decoding fully populates the
store before composition runs, and composition completes before any
emission stage reads the store; the freeze is the barrier. Per-sheet
decoding may run concurrently since sheets cover disjoint codepoint
ranges, but results are always committed in catalogue order so the
output is identical either way.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package builder

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tsb.builder'
func tracer() tracing.Trace {
	return tracing.Select("tsb.builder")
}
