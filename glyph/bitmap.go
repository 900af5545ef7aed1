package glyph

// Bitmap is a 1-bit glyph image, indexed [row][col]. Rows may be of
// equal length but a Bitmap is not required to be rectangularly backed;
// At treats out-of-range coordinates as unset.
type Bitmap [][]bool

// NewBitmap allocates an empty bitmap of h rows by w columns.
func NewBitmap(w, h int) Bitmap {
	bm := make(Bitmap, h)
	for r := range bm {
		bm[r] = make([]bool, w)
	}
	return bm
}

// Rows returns the bitmap height in pixels.
func (bm Bitmap) Rows() int { return len(bm) }

// Cols returns the bitmap width in pixels, taken from the first row.
func (bm Bitmap) Cols() int {
	if len(bm) == 0 {
		return 0
	}
	return len(bm[0])
}

// At reports whether the pixel at (row, col) is set. Coordinates
// outside the bitmap are unset.
func (bm Bitmap) At(row, col int) bool {
	if row < 0 || row >= len(bm) || col < 0 || col >= len(bm[row]) {
		return false
	}
	return bm[row][col]
}

// IsEmpty reports whether no pixel is set.
func (bm Bitmap) IsEmpty() bool {
	for _, row := range bm {
		for _, px := range row {
			if px {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two bitmaps have identical extent and pixels.
func (bm Bitmap) Equal(other Bitmap) bool {
	if len(bm) != len(other) {
		return false
	}
	for r, row := range bm {
		if len(row) != len(other[r]) {
			return false
		}
		for c, px := range row {
			if px != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (bm Bitmap) Clone() Bitmap {
	out := make(Bitmap, len(bm))
	for r, row := range bm {
		out[r] = make([]bool, len(row))
		copy(out[r], row)
	}
	return out
}

// Or sets every pixel of bm that is set in other. Pixels of other
// outside bm's extent are ignored.
func (bm Bitmap) Or(other Bitmap) {
	for r := 0; r < len(bm) && r < len(other); r++ {
		for c := 0; c < len(bm[r]) && c < len(other[r]); c++ {
			if other[r][c] {
				bm[r][c] = true
			}
		}
	}
}

// Blit copies set pixels of src into bm with the given offset.
// Pixels falling outside bm are dropped.
func (bm Bitmap) Blit(src Bitmap, dx, dy int) {
	for r := range src {
		for c := range src[r] {
			if !src[r][c] {
				continue
			}
			tr, tc := r+dy, c+dx
			if tr < 0 || tr >= len(bm) || tc < 0 || tc >= len(bm[tr]) {
				continue
			}
			bm[tr][tc] = true
		}
	}
}

// PackRows packs the bitmap into 1-bit rows, MSB first, for the
// embedded bitmap strike payload.
func (bm Bitmap) PackRows() [][]byte {
	w := bm.Cols()
	if w == 0 {
		return nil
	}
	packed := make([][]byte, len(bm))
	stride := (w + 7) / 8
	for r, row := range bm {
		bytes := make([]byte, stride)
		for c, px := range row {
			if px {
				bytes[c/8] |= 0x80 >> uint(c%8)
			}
		}
		packed[r] = bytes
	}
	return packed
}
