package sheet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedImage is the fatal condition for malformed or
// unsupported sheet encodings (compressed, colour-mapped, unsupported
// bit depth). The build must abort rather than decode wrong glyphs.
var ErrUnsupportedImage = errors.New("unsupported sheet image encoding")

func errUnsupported(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnsupportedImage)...)
}

// Raster is a decoded sheet image. Pixels are packed RGBA8888 with red
// in the high byte and alpha in the low byte; a pixel participates in a
// glyph bitmap or a tag word iff its alpha byte is nonzero.
type Raster struct {
	Width  int
	Height int
	pixels []uint32 // row-major
}

// PixelAt returns the packed pixel at (x, y), or 0 outside the image.
func (r *Raster) PixelAt(x, y int) uint32 {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return 0
	}
	return r.pixels[y*r.Width+x]
}

// OpaqueAt reports whether the pixel at (x, y) has a nonzero alpha byte.
func (r *Raster) OpaqueAt(x, y int) bool {
	return r.PixelAt(x, y)&0xFF != 0
}

// SetPixel is used by tests to author rasters in memory.
func (r *Raster) SetPixel(x, y int, px uint32) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	r.pixels[y*r.Width+x] = px
}

// NewRaster allocates a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	return &Raster{Width: w, Height: h, pixels: make([]uint32, w*h)}
}

// tagify returns 0 if the pixel's alpha byte is zero, else the pixel
// unchanged. A fully transparent pixel must not contribute stray colour
// bytes to a multi-row tag word.
func tagify(px uint32) uint32 {
	if px&0xFF == 0 {
		return 0
	}
	return px
}

// DecodeTGA decodes an uncompressed true-colour TGA stream (type 2,
// 24- or 32-bit). Anything else is ErrUnsupportedImage.
func DecodeTGA(data []byte) (*Raster, error) {
	if len(data) < 18 {
		return nil, errUnsupported("TGA header truncated (%d bytes)", len(data))
	}
	idLength := int(data[0])
	colourMapType := data[1]
	imageType := data[2]
	width := int(binary.LittleEndian.Uint16(data[12:14]))
	height := int(binary.LittleEndian.Uint16(data[14:16]))
	bitsPerPixel := int(data[16])
	descriptor := data[17]

	if colourMapType != 0 {
		return nil, errUnsupported("colour-mapped TGA")
	}
	if imageType != 2 {
		return nil, errUnsupported("TGA image type %d (want uncompressed true-colour, type 2)", imageType)
	}
	if bitsPerPixel != 24 && bitsPerPixel != 32 {
		return nil, errUnsupported("%d-bit TGA (want 24 or 32)", bitsPerPixel)
	}

	bytesPerPixel := bitsPerPixel / 8
	topToBottom := descriptor&0x20 != 0
	pos := 18 + idLength
	if len(data) < pos+width*height*bytesPerPixel {
		return nil, errUnsupported("TGA pixel data truncated")
	}

	ras := NewRaster(width, height)
	for row := 0; row < height; row++ {
		y := row
		if !topToBottom {
			y = height - 1 - row
		}
		for x := 0; x < width; x++ {
			b := uint32(data[pos])
			g := uint32(data[pos+1])
			r := uint32(data[pos+2])
			a := uint32(0xFF)
			if bytesPerPixel == 4 {
				a = uint32(data[pos+3])
			}
			pos += bytesPerPixel
			ras.pixels[y*width+x] = r<<24 | g<<16 | b<<8 | a
		}
	}
	return ras, nil
}

// FromImage converts a decoded image.Image into a Raster.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	ras := NewRaster(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			ras.pixels[y*ras.Width+x] = uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
		}
	}
	return ras
}

// LoadRaster reads a sheet image from disk. TGA sheets are decoded by
// DecodeTGA; BMP sheets go through golang.org/x/image/bmp. Other
// extensions are ErrUnsupportedImage.
func LoadRaster(path string) (*Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		return DecodeTGA(data)
	case ".bmp":
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errUnsupported("BMP decode failed (%v)", err)
		}
		return FromImage(img), nil
	}
	return nil, errUnsupported("sheet file %q", filepath.Base(path))
}
