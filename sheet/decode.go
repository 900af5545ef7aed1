package sheet

import (
	"github.com/curioustorvald/tsbbuild/glyph"
)

// signedByte reinterprets the low 8 bits of v as a signed byte.
func signedByte(v uint32) int {
	return int(int8(uint8(v)))
}

// tagWord reads a 32-bit tag word from colour channels at (x, y); a
// zero alpha byte forces the whole word to zero.
func (r *Raster) tagWord(x, y int) uint32 {
	return tagify(r.PixelAt(x, y))
}

// tagBits ORs (1 << row) for every opaque pixel in the vertical stripe
// starting at (x, y0), rows long.
func (r *Raster) tagBits(x, y0, rows int) int {
	v := 0
	for row := 0; row < rows; row++ {
		if r.OpaqueAt(x, y0+row) {
			v |= 1 << row
		}
	}
	return v
}

// decodeAnchors reads the six diacritics anchors from tag rows 11-14.
// Anchors are packed three to a word pair: bit 7 of each byte flags the
// component as used, the low 7 bits carry the coordinate.
func decodeAnchors(ras *Raster, tagX, cellY int) [glyph.AnchorCount]glyph.Anchor {
	var anchors [glyph.AnchorCount]glyph.Anchor
	for i := 0; i < glyph.AnchorCount; i++ {
		yPos := 13 - (i/3)*2
		shift := uint((3 - i%3) * 8)
		yPixel := ras.tagWord(tagX, cellY+yPos)
		xPixel := ras.tagWord(tagX, cellY+yPos+1)
		yUsed := (yPixel>>shift)&0x80 != 0
		xUsed := (xPixel>>shift)&0x80 != 0
		a := glyph.Anchor{XUsed: xUsed, YUsed: yUsed}
		if yUsed {
			a.Y = int((yPixel >> shift) & 0x7F)
		}
		if xUsed {
			a.X = int((xPixel >> shift) & 0x7F)
		}
		anchors[i] = a
	}
	return anchors
}

// decodeTagColumn extracts the full property record from the tag
// column of the cell at (cellX, cellY).
func decodeTagColumn(ras *Raster, cellX, cellY, cellW int) glyph.Props {
	tagX := cellX + cellW - 1

	props := glyph.Props{}
	props.Width = ras.tagBits(tagX, cellY, 5)
	props.IsLowHeight = ras.OpaqueAt(tagX, cellY+5)

	// Kerning word at row 6; rows 7-8 are reserved.
	kerning := ras.tagWord(tagX, cellY+6)
	props.HasKernData = kerning&0xFF != 0
	if props.HasKernData {
		props.IsKernYType = kerning&0x80000000 != 0
		props.KerningMask = (kerning >> 8) & 0xFFFFFF
	} else {
		props.KerningMask = 0xFF
	}

	directives := ras.tagWord(tagX, cellY+9)
	props.Directive = glyph.Directive{
		Opcode: uint8(directives >> 24),
		Arg1:   uint8(directives >> 16),
		Arg2:   uint8(directives >> 8),
	}

	nudge := ras.tagWord(tagX, cellY+10)
	props.NudgeX = signedByte(nudge >> 24)
	props.NudgeY = signedByte(nudge >> 16)

	props.Anchors = decodeAnchors(ras, tagX, cellY)

	props.Align = glyph.Alignment(ras.tagBits(tagX, cellY+15, 2))

	// WriteOnTop at row 17 is deliberately read without tagify: a
	// transparent pixel means "not a mark", an all-white colour means
	// mark class 0, anything else carries the class in the top nibble.
	writeOnTop := ras.PixelAt(tagX, cellY+17)
	switch {
	case writeOnTop&0xFF == 0:
		props.WriteOnTop = -1
	case writeOnTop>>8 == 0xFFFFFF:
		props.WriteOnTop = 0
	default:
		props.WriteOnTop = int((writeOnTop >> 28) & 0xF)
	}

	stack0 := ras.tagWord(tagX, cellY+18)
	stack1 := ras.tagWord(tagX, cellY+19)
	if stack0 == 0x00FF00FF && stack1 == 0x00FF00FF {
		props.Stack = glyph.StackNone
	} else {
		props.Stack = glyph.Stacking(ras.tagBits(tagX, cellY+18, 2))
	}

	// Extension words live in the cell's leftmost columns, one word per
	// column, bit r set by an opaque pixel in row r.
	if n := props.ExtInfoCount(); n > 0 {
		for x := 0; x < n; x++ {
			props.ExtInfo[x] = uint32(ras.tagBits(cellX+x, cellY, 20))
		}
	}

	return props
}

// cellBitmap cuts the glyph bitmap out of a cell: w columns starting at
// (cellX, cellY), h rows, one bit per opaque pixel.
func cellBitmap(ras *Raster, cellX, cellY, w, h int) glyph.Bitmap {
	bm := glyph.NewBitmap(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			bm[row][col] = ras.OpaqueAt(cellX+col, cellY+row)
		}
	}
	return bm
}

// DecodeSheet decodes one sheet according to its descriptor and
// returns the glyphs in codepoint enumeration order. Hangul johab
// sheets use DecodeHangulJamoSheet instead of the cell grid.
func DecodeSheet(ras *Raster, d Descriptor) []*glyph.Glyph {
	if d.HangulJamo {
		return DecodeHangulJamoSheet(ras, d)
	}
	if d.Variable {
		return decodeVariableSheet(ras, d)
	}
	return decodeFixedSheet(ras, d)
}

func decodeVariableSheet(ras *Raster, d Descriptor) []*glyph.Glyph {
	codes := d.Codes()
	glyphs := make([]*glyph.Glyph, 0, len(codes))
	for i, code := range codes {
		var cellX, cellY int
		if d.XYSwapped {
			cellX = (i / d.Columns) * d.CellW
			cellY = (i % d.Columns) * d.CellH
		} else {
			cellX = (i % d.Columns) * d.CellW
			cellY = (i / d.Columns) * d.CellH
		}

		props := decodeTagColumn(ras, cellX, cellY, d.CellW)

		// The bitmap is everything left of the tag column, cropped to
		// the declared advance.
		bitmapW := 0
		if props.Width > 0 {
			bitmapW = props.Width
			if max := d.CellW - 1; bitmapW > max {
				bitmapW = max
			}
		}
		bm := cellBitmap(ras, cellX, cellY, bitmapW, d.CellH)
		glyphs = append(glyphs, &glyph.Glyph{Code: code, Props: props, Bitmap: bm})
	}
	tracer().Debugf("decoded %d glyphs from variable sheet %s", len(glyphs), d.File)
	return glyphs
}

func decodeFixedSheet(ras *Raster, d Descriptor) []*glyph.Glyph {
	codes := d.Codes()
	width := d.FixedWidth
	if width == 0 {
		width = d.CellW
	}
	glyphs := make([]*glyph.Glyph, 0, len(codes))
	for i, code := range codes {
		cellX := (i % d.Columns) * d.CellW
		cellY := (i / d.Columns) * d.CellH
		bm := cellBitmap(ras, cellX, cellY, d.CellW, d.CellH)
		glyphs = append(glyphs, &glyph.Glyph{
			Code:   code,
			Props:  glyph.DefaultProps(width),
			Bitmap: bm,
		})
	}
	tracer().Debugf("decoded %d glyphs from fixed sheet %s", len(glyphs), d.File)
	return glyphs
}
