package hangul

import "fmt"

// Syllable block arithmetic: a syllable's offset n into U+AC00..U+D7A3
// decomposes as choseong = n / (JungCount*JongCount), jungseong =
// (n / JongCount) % JungCount, jongseong = n % JongCount.
const (
	SyllableBase = 0xAC00
	SyllableEnd  = 0xD7A4
	JungCount    = 21
	JongCount    = 28 // index 0 = no trailing consonant
)

type indexSet map[int]bool

func newSet(indices ...int) indexSet {
	s := make(indexSet, len(indices))
	for _, i := range indices {
		s[i] = true
	}
	return s
}

func span(lo, hi int) []int { // [lo, hi)
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

func union(sets ...[]int) []int {
	var out []int
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// Vowel classification by johab sheet column index. Each set picks a
// choseong variant row; see InitialRow.
var (
	jungseongI         = newSet(21, 61)
	jungseongOU        = newSet(9, 13, 14, 18, 34, 35, 39, 45, 51, 53, 54, 64, 73, 80, 83)
	jungseongOUComplex = newSet(union(
		[]int{10, 11, 16}, span(22, 34), []int{36, 37, 38}, span(41, 45),
		span(46, 51), span(56, 60), []int{63}, span(67, 73),
		span(74, 80), span(81, 84), span(85, 92), []int{93, 94})...)
	jungseongRightie = newSet(2, 4, 6, 8, 11, 16, 32, 33, 37, 42, 44, 48, 50, 71, 72, 75, 78, 79, 83, 86, 87, 88, 94)
	jungseongOewi    = newSet(12, 15, 17, 40, 52, 55, 89, 90, 91)
	jungseongEU      = newSet(19, 62, 66)
	jungseongYI      = newSet(20, 60, 65)
	jungseongUU      = newSet(union(
		span(14, 19), []int{27, 30}, span(41, 56), []int{59},
		[]int{67, 68, 73}, span(77, 85), []int{91})...)

	choseongGiyeoks = newSet(0, 1, 15, 23, 30, 34, 45, 51, 56, 65, 82, 90, 100, 101, 110, 111, 115)

	// Vowels whose peak sticks out to the right; syllables built on them
	// get one extra cell of advance.
	peaksWithExtraWidth = newSet(2, 4, 6, 8, 11, 16, 32, 33, 37, 42, 44, 48, 50, 71, 75, 78, 79, 83, 86, 87, 88, 94)
)

// giyeokRemapping re-routes specific (choseong, row) combinations for
// the "wide vowel under a giyeok-class leading consonant" cases. A
// computed row with no entry here is an authoring gap in the sheet and
// must abort the build.
var giyeokRemapping = map[int]int{5: 19, 6: 20, 7: 21, 8: 22, 11: 23, 12: 24}

// IsRightieVowel reports whether the jungseong sheet index belongs to
// the right-leaning vowel class (drives jongseong row selection and
// the tjmo contextual lookup).
func IsRightieVowel(jungIndex int) bool { return jungseongRightie[jungIndex] }

// HasExtraWidth reports whether syllables over this jungseong sheet
// index take one extra cell of advance.
func HasExtraWidth(jungIndex int) bool { return peaksWithExtraWidth[jungIndex] }

// InitialRow selects the johab sheet row for a choseong, given the
// choseong sheet index i, the following jungseong sheet index p, and
// the jongseong sheet index f (0 = none). An unmapped giyeok remapping
// row is a hard error: it signals an unhandled jamo combination, and
// silently defaulting would bake wrong artwork into thousands of
// syllables.
func InitialRow(i, p, f int) (int, error) {
	var row int
	switch {
	case jungseongI[p]:
		row = 3
	case jungseongOewi[p]:
		row = 11
	case jungseongOUComplex[p]:
		row = 7
	case jungseongOU[p]:
		row = 5
	case jungseongEU[p]:
		row = 9
	case jungseongYI[p]:
		row = 13
	default:
		row = 1
	}
	if f != 0 {
		row++
	}
	if jungseongUU[p] && choseongGiyeoks[i] {
		mapped, ok := giyeokRemapping[row]
		if !ok {
			return 0, fmt.Errorf("hangul: no giyeok remapping for choseong %d, jungseong %d, jongseong %d (row %d)", i, p, f, row)
		}
		return mapped, nil
	}
	return row, nil
}

// MedialRow selects the jungseong row: 15 without a trailing
// consonant, 16 with one.
func MedialRow(f int) int {
	if f == 0 {
		return 15
	}
	return 16
}

// FinalRow selects the jongseong row: 18 after a right-leaning vowel,
// 17 otherwise.
func FinalRow(p int) int {
	if jungseongRightie[p] {
		return 18
	}
	return 17
}

// ChoseongIndex maps a leading-consonant codepoint to its johab sheet
// column.
func ChoseongIndex(cp rune) (int, bool) {
	switch {
	case cp >= 0x1100 && cp <= 0x115F:
		return int(cp - 0x1100), true
	case cp >= 0xA960 && cp <= 0xA97F:
		return int(cp-0xA960) + 96, true
	}
	return 0, false
}

// JungseongIndex maps a vowel codepoint to its johab sheet column.
// Column 0 is the U+1160 filler.
func JungseongIndex(cp rune) (int, bool) {
	switch {
	case cp >= 0x1160 && cp <= 0x11A7:
		return int(cp - 0x1160), true
	case cp >= 0xD7B0 && cp <= 0xD7C6:
		return int(cp-0xD7B0) + 72, true
	}
	return 0, false
}

// JongseongIndex maps a trailing-consonant codepoint to its johab
// sheet column. Index 1 is U+11A8; 0 means "no trailing consonant".
func JongseongIndex(cp rune) (int, bool) {
	switch {
	case cp >= 0x11A8 && cp <= 0x11FF:
		return int(cp-0x11A8) + 1, true
	case cp >= 0xD7CB && cp <= 0xD7FB:
		return int(cp-0xD7CB) + 89, true
	}
	return 0, false
}

// IsChoseong reports whether cp is a leading-consonant jamo.
func IsChoseong(cp rune) bool {
	return (cp >= 0x1100 && cp <= 0x115F) || (cp >= 0xA960 && cp <= 0xA97F)
}

// IsJungseong reports whether cp is a vowel jamo.
func IsJungseong(cp rune) bool {
	return (cp >= 0x1160 && cp <= 0x11A7) || (cp >= 0xD7B0 && cp <= 0xD7C6)
}

// IsJongseong reports whether cp is a trailing-consonant jamo.
func IsJongseong(cp rune) bool {
	return (cp >= 0x11A8 && cp <= 0x11FF) || (cp >= 0xD7CB && cp <= 0xD7FB)
}
