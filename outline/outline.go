/*
Package outline traces 1-bit glyph bitmaps into axis-aligned rectangle
contours in font units. Horizontal pixel runs are merged vertically
into a minimal rectangle set; each rectangle is later emitted as one
clockwise closed path of four on-curve points. Fewer rectangles means
smaller outline tables and cheaper rendering.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package outline

import (
	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/sheet"
)

// Contour is one rectangle of a glyph outline in font units.
// (X0, Y0) is the bottom-left corner, (X1, Y1) the top-right.
type Contour struct {
	X0, Y0, X1, Y1 int
}

// Offset returns the contour shifted by (dx, dy) font units.
func (c Contour) Offset(dx, dy int) Contour {
	return Contour{c.X0 + dx, c.Y0 + dy, c.X1 + dx, c.Y1 + dy}
}

// Point is one on-curve outline point.
type Point struct {
	X, Y int
}

// Points returns the rectangle's four corners in drawing order:
// clockwise from the bottom-left (bottom-left, top-left, top-right,
// bottom-right), forming a closed path.
func (c Contour) Points() [4]Point {
	return [4]Point{
		{c.X0, c.Y0},
		{c.X0, c.Y1},
		{c.X1, c.Y1},
		{c.X1, c.Y0},
	}
}

// run is a maximal horizontal stretch of set pixels in one row.
type run struct {
	row      int
	colStart int
	colEnd   int // exclusive
}

// Trace converts a bitmap into rectangle contours. An empty bitmap
// traces to nil; the caller still owes the glyph a zero-length path so
// advance-width-only glyphs (space and friends) stay in the font.
func Trace(bm glyph.Bitmap) []Contour {
	h := bm.Rows()
	w := bm.Cols()
	if h == 0 || w == 0 {
		return nil
	}

	// Pass 1: collect horizontal runs row by row.
	var runs []run
	for row := 0; row < h; row++ {
		col := 0
		for col < w {
			if !bm.At(row, col) {
				col++
				continue
			}
			start := col
			for col < w && bm.At(row, col) {
				col++
			}
			runs = append(runs, run{row: row, colStart: start, colEnd: col})
		}
	}

	// Pass 2: greedily extend each unconsumed run downward through
	// identical-column runs exactly one row below. Runs are referenced
	// by index; nothing is copied.
	used := make([]bool, len(runs))
	var contours []Contour
	for i, r := range runs {
		if used[i] {
			continue
		}
		rowEnd := r.row + 1
		for j := i + 1; j < len(runs); j++ {
			if runs[j].row > rowEnd {
				break
			}
			if runs[j].row == rowEnd && !used[j] &&
				runs[j].colStart == r.colStart && runs[j].colEnd == r.colEnd {
				used[j] = true
				rowEnd = runs[j].row + 1
			}
		}
		contours = append(contours, toFontUnits(r.row, rowEnd, r.colStart, r.colEnd))
	}
	return contours
}

// toFontUnits converts a pixel rectangle to font units. The vertical
// axis flips around the baseline row.
func toFontUnits(rowStart, rowEnd, colStart, colEnd int) Contour {
	return Contour{
		X0: colStart * sheet.Scale,
		Y0: (sheet.BaselineRow - rowEnd) * sheet.Scale,
		X1: colEnd * sheet.Scale,
		Y1: (sheet.BaselineRow - rowStart) * sheet.Scale,
	}
}
