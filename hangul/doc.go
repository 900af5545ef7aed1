/*
Package hangul composes the 11,172 syllables of the Hangul Syllables
block (and the Compatibility Jamo block) from jamo pieces of the johab
sheet, and registers every positional jamo variant under a private-use
codepoint for later contextual substitution.

A syllable decomposes into a leading consonant (choseong), a vowel
(jungseong) and an optional trailing consonant (jongseong). Which row
of the johab sheet holds the right artwork for each piece depends on
its neighbours; the row-selection tables in this package are the crux
of composition correctness and are carried verbatim from the sheet
author's classification.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package hangul

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tsb.hangul'
func tracer() tracing.Trace {
	return tracing.Select("tsb.hangul")
}
