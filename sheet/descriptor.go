package sheet

// CodeRange is a half-open codepoint interval [Lo, Hi).
type CodeRange struct {
	Lo, Hi rune
}

// Descriptor declares the geometry and repertoire of one sprite sheet.
// Descriptors are plain values; the decoder never consults global
// state. The cell pitch CellW includes the tag column for variable
// sheets.
type Descriptor struct {
	File       string
	CellW      int
	CellH      int
	Columns    int
	Variable   bool // last pixel column of each cell is the tag column
	XYSwapped  bool // cells indexed column-major instead of row-major
	ExtraWide  bool
	HangulJamo bool        // special johab layout, see DecodeHangulJamoSheet
	FixedWidth int         // advance for fixed sheets; 0 = cell width
	Ranges     []CodeRange // enumeration order defines cell order
}

// Codes enumerates the descriptor's codepoints in range order. The
// i-th codepoint lives in the i-th cell.
func (d Descriptor) Codes() []rune {
	var codes []rune
	for _, r := range d.Ranges {
		for c := r.Lo; c < r.Hi; c++ {
			codes = append(codes, c)
		}
	}
	return codes
}

func varw(file string, ranges ...CodeRange) Descriptor {
	return Descriptor{
		File: file, CellW: WVar + HGapVar, CellH: CellH, Columns: 16,
		Variable: true, Ranges: ranges,
	}
}

func varwWide(file string, ranges ...CodeRange) Descriptor {
	return Descriptor{
		File: file, CellW: WWideVar + HGapVar, CellH: CellH, Columns: 16,
		Variable: true, ExtraWide: true, Ranges: ranges,
	}
}

// Catalog is the full sheet catalogue, in decode order. Codepoint
// ranges across sheets are disjoint, which is what makes per-sheet
// decoding safely parallel.
var Catalog = []Descriptor{
	varw("ascii_variable.tga", CodeRange{0x00, 0x100}),
	{
		File: "hangul_johab.tga", CellW: WHangulBase, CellH: CellH, Columns: 16,
		HangulJamo: true,
		Ranges: []CodeRange{
			{0x1100, 0x1200}, {0xA960, 0xA980}, {0xD7B0, 0xD800},
		},
	},
	varw("latinExtA_variable.tga", CodeRange{0x100, 0x180}),
	varw("latinExtB_variable.tga", CodeRange{0x180, 0x250}),
	varw("kana_variable.tga", CodeRange{0x3040, 0x3100}, CodeRange{0x31F0, 0x3200}),
	varw("cjkpunct_variable.tga", CodeRange{0x3000, 0x3040}),
	{
		File: "wenquanyi.tga", CellW: WUnihan, CellH: CellHUnihan, Columns: 256,
		FixedWidth: WUnihan,
		Ranges:     []CodeRange{{0x3400, 0xA000}},
	},
	varw("cyrilic_variable.tga", CodeRange{0x400, 0x530}),
	varw("halfwidth_fullwidth_variable.tga", CodeRange{0xFF00, 0x10000}),
	varw("unipunct_variable.tga", CodeRange{0x2000, 0x20A0}),
	varw("greek_variable.tga", CodeRange{0x370, 0x3CF}),
	varw("thai_variable.tga", CodeRange{0xE00, 0xE60}),
	varw("hayeren_variable.tga", CodeRange{0x530, 0x590}),
	varw("kartuli_variable.tga", CodeRange{0x10D0, 0x1100}),
	varw("ipa_ext_variable.tga", CodeRange{0x250, 0x300}),
	{
		File: "futhark.tga", CellW: WLatinWide, CellH: CellH, Columns: 16,
		FixedWidth: WLatinWide,
		Ranges:     []CodeRange{{0x16A0, 0x1700}},
	},
	varw("latinExt_additional_variable.tga", CodeRange{0x1E00, 0x1F00}),
	{
		File: "puae000-e0ff.tga", CellW: SizeSym, CellH: SizeSym, Columns: 16,
		FixedWidth: SizeSym,
		Ranges:     []CodeRange{{0xE000, 0xE100}},
	},
	varw("cyrilic_bulgarian_variable.tga", CodeRange{0xF0000, 0xF0060}),
	varw("cyrilic_serbian_variable.tga", CodeRange{0xF0060, 0xF00C0}),
	varw("tsalagi_variable.tga", CodeRange{0x13A0, 0x13F6}),
	varw("phonetic_extensions_variable.tga", CodeRange{0x1D00, 0x1DC0}),
	varw("devanagari_variable.tga", CodeRange{0x900, 0x980}, CodeRange{0xF0100, 0xF0500}),
	varw("kartuli_allcaps_variable.tga", CodeRange{0x1C90, 0x1CC0}),
	varw("diacritical_marks_variable.tga", CodeRange{0x300, 0x370}),
	func() Descriptor {
		d := varw("greek_polytonic_xyswap_variable.tga", CodeRange{0x1F00, 0x2000})
		d.XYSwapped = true
		return d
	}(),
	varw("latinExtC_variable.tga", CodeRange{0x2C60, 0x2C80}),
	varw("latinExtD_variable.tga", CodeRange{0xA720, 0xA800}),
	varw("currencies_variable.tga", CodeRange{0x20A0, 0x20D0}),
	varw("internal_variable.tga", CodeRange{0xFFE00, 0xFFFA0}),
	varw("letterlike_symbols_variable.tga", CodeRange{0x2100, 0x2150}),
	varw("enclosed_alphanumeric_supplement_variable.tga", CodeRange{0x1F100, 0x1F200}),
	varwWide("tamil_extrawide_variable.tga", CodeRange{0x0B80, 0x0C00}, CodeRange{0xF00C0, 0xF0100}),
	varw("bengali_variable.tga", CodeRange{0x980, 0xA00}),
	varw("braille_variable.tga", CodeRange{0x2800, 0x2900}),
	varw("sundanese_variable.tga", CodeRange{0x1B80, 0x1BC0}, CodeRange{0x1CC0, 0x1CD0}, CodeRange{0xF0500, 0xF0510}),
	varwWide("devanagari_internal_extrawide_variable.tga", CodeRange{0xF0110, 0xF0130}),
	varw("pua_codestyle_ascii_variable.tga", CodeRange{0xF0520, 0xF0580}),
	varwWide("alphabetic_presentation_forms_extrawide_variable.tga", CodeRange{0xFB00, 0xFB18}),
	varw("hentaigana_variable.tga", CodeRange{0x1B000, 0x1B170}),
}

// HangulCompatRange is the Hangul Compatibility Jamo block, composed
// from row 0 of the johab sheet rather than decoded from a cell grid.
var HangulCompatRange = CodeRange{0x3130, 0x3190}
