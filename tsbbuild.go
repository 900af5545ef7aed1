/*
Package tsbbuild compiles bitmap sprite sheets into font-assembler
artifacts for the Terrarum Sans Bitmap typeface.

The sheets are uncompressed true-colour images, one per script or
Unicode block, with glyphs laid out on a cell grid. Variable-width
sheets reserve the last pixel column of every cell as a "tag column"
that encodes per-glyph metadata (advance width, kerning shape mask,
mark anchors, compiler directives) in its pixels. The pipeline decodes
all sheets into a glyph store, composes the Hangul syllable block from
its jamo parts, traces every bitmap into rectangle outlines, derives a
kerning table from shape masks, and synthesizes OpenType feature
source text for contextual shaping (Hangul jamo positioning, Indic
conjunct formation, ligatures, locale forms, mark attachment).

Subpackages hold the pipeline stages: sheet (raster decoding and the
tag column), glyph (the store and its mutation passes), hangul (the
syllable compositor), outline (the rectangle tracer), kern (the shape
rule engine), feature (the rule synthesizer) and builder (the driver).

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package tsbbuild

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/curioustorvald/tsbbuild/builder"
)

// tracer writes to trace with key 'tsb'
func tracer() tracing.Trace {
	return tracing.Select("tsb")
}

// Build runs the full pipeline against an asset directory and returns
// the assembler artifacts. It is a convenience wrapper around
// builder.Build with the default configuration; clients needing to
// skip stages or decode concurrently use the builder package directly.
func Build(assetsDir string) (*builder.Artifacts, error) {
	art, err := builder.Build(builder.Config{AssetsDir: assetsDir})
	if err != nil {
		return nil, err
	}
	tracer().Infof("built %d glyphs", len(art.GlyphOrder))
	return art, nil
}

// BuildTo runs the pipeline and serializes the artifacts into outDir.
func BuildTo(assetsDir, outDir string) error {
	art, err := Build(assetsDir)
	if err != nil {
		return err
	}
	return builder.WriteArtifacts(art, outDir)
}
