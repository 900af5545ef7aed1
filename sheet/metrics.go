package sheet

// Pixel-grid metrics shared by every sheet.
const (
	CellH       = 20 // tall default cell height
	CellHUnihan = 16 // short CJK cell height
	WHangulBase = 13
	WUnihan     = 16
	WLatinWide  = 9
	WVar        = 15 // variable cell width without the gap column
	WWideVar    = 31 // extra-wide variable cell width without the gap column
	HGapVar     = 1  // the tag column
	SizeSym     = 20 // custom symbol sheet cell size

	LineHeight = 24
)

// Font-unit metrics (1000 units per em, 50 units per pixel).
const (
	UnitsPerEm  = 1000
	Scale       = 50
	BaselineRow = 16 // pixels from cell top to baseline
	Ascent      = BaselineRow * Scale
	Descent     = (CellH - BaselineRow) * Scale
	XHeight     = 8 * Scale
	CapHeight   = 12 * Scale
	LineGap     = (LineHeight - CellH) * Scale
)

// PPEM is the rendering size of the embedded bitmap strike.
const PPEM = 20
