package outline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/curioustorvald/tsbbuild/glyph"
	"github.com/curioustorvald/tsbbuild/sheet"
)

func bitmapOf(rows ...string) glyph.Bitmap {
	bm := make(glyph.Bitmap, len(rows))
	for r, row := range rows {
		bm[r] = make([]bool, len(row))
		for c, ch := range row {
			bm[r][c] = ch == '#'
		}
	}
	return bm
}

func TestTraceEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	if got := Trace(nil); got != nil {
		t.Errorf("tracing a nil bitmap yields %v, expected nil", got)
	}
	if got := Trace(glyph.NewBitmap(4, 4)); got != nil {
		t.Errorf("tracing an all-clear bitmap yields %v, expected nil", got)
	}
}

func TestTraceSolidBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	bm := bitmapOf(
		"###",
		"###",
	)
	contours := Trace(bm)
	if len(contours) != 1 {
		t.Fatalf("solid block traced to %d contours, expected 1", len(contours))
	}
	want := Contour{
		X0: 0,
		Y0: (sheet.BaselineRow - 2) * sheet.Scale,
		X1: 3 * sheet.Scale,
		Y1: sheet.BaselineRow * sheet.Scale,
	}
	if contours[0] != want {
		t.Errorf("solid block contour = %+v, expected %+v", contours[0], want)
	}
}

func TestTraceColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	bm := bitmapOf(
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	)
	contours := Trace(bm)
	if len(contours) != 1 {
		t.Fatalf("column traced to %d contours, expected 1", len(contours))
	}
	want := Contour{
		X0: 2 * sheet.Scale,
		Y0: (sheet.BaselineRow - 4) * sheet.Scale,
		X1: 3 * sheet.Scale,
		Y1: sheet.BaselineRow * sheet.Scale,
	}
	if contours[0] != want {
		t.Errorf("column contour = %+v, expected %+v", contours[0], want)
	}
}

func TestTraceMergesOnlyIdenticalRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	// The stem rows merge into one rectangle, the foot stays separate.
	bm := bitmapOf(
		"#..",
		"#..",
		"###",
	)
	contours := Trace(bm)
	if len(contours) != 2 {
		t.Fatalf("L shape traced to %d contours, expected 2", len(contours))
	}
}

// rasterize paints the contours back into a pixel grid so round-trip
// tests can compare against the source bitmap.
func rasterize(contours []Contour, w, h int) glyph.Bitmap {
	bm := glyph.NewBitmap(w, h)
	for _, c := range contours {
		colStart := c.X0 / sheet.Scale
		colEnd := c.X1 / sheet.Scale
		rowStart := sheet.BaselineRow - c.Y1/sheet.Scale
		rowEnd := sheet.BaselineRow - c.Y0/sheet.Scale
		for row := rowStart; row < rowEnd; row++ {
			for col := colStart; col < colEnd; col++ {
				if bm[row][col] {
					// overlap would double-paint and break winding
					return nil
				}
				bm[row][col] = true
			}
		}
	}
	return bm
}

func TestTraceRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	bm := bitmapOf(
		".####.",
		"#....#",
		"#....#",
		"######",
		"#....#",
		"#....#",
	)
	contours := Trace(bm)
	back := rasterize(contours, bm.Cols(), bm.Rows())
	if back == nil {
		t.Fatalf("contours overlap")
	}
	if !back.Equal(bm) {
		t.Errorf("rasterized contours do not reproduce the source bitmap")
	}
}

func TestContourOffsetAndPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.sheet")
	defer teardown()
	c := Contour{X0: 0, Y0: 0, X1: 100, Y1: 200}
	moved := c.Offset(50, -25)
	if moved != (Contour{X0: 50, Y0: -25, X1: 150, Y1: 175}) {
		t.Errorf("Offset = %+v", moved)
	}
	pts := c.Points()
	want := [4]Point{{0, 0}, {0, 200}, {100, 200}, {100, 0}}
	if pts != want {
		t.Errorf("Points = %v, expected %v", pts, want)
	}
}
