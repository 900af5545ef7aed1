/*
Package sheet reads hand-authored pixel sprite sheets and decodes them
into glyphs. A sheet is an uncompressed true-colour raster image laid
out as a grid of cells; for variable-width sheets the last pixel column
of each cell is a tag column whose pixels bit-pack the glyph's property
record (advance width, kerning shape mask, diacritics anchors,
alignment, compiler directives).

Sheet geometry is not discovered from the image but declared by an
immutable Descriptor; the full catalogue of sheets ships with the
package. Decoding is deterministic: cells are visited in codepoint
enumeration order.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package sheet

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tsb.sheet'
func tracer() tracing.Trace {
	return tracing.Select("tsb.sheet")
}
