package watermarklab

import (
	"image"
	"image/color"
	"math"
)

// Plane is a single image channel stored as a row-major float64 grid.
// Codecs never modify the plane they receive; every embed operates on
// a copy and returns it.
type Plane struct {
	W, H int
	Pix  []float64
}

// NewPlane allocates a zeroed w x h plane.
func NewPlane(w, h int) Plane {
	return Plane{W: w, H: h, Pix: make([]float64, w*h)}
}

// PlaneFromImage extracts the BT.601 luma channel of src as a plane.
func PlaneFromImage(src image.Image) (Plane, error) {
	if src == nil {
		return Plane{}, ErrInvalidInput
	}
	b := src.Bounds()
	p := NewPlane(b.Dx(), b.Dy())
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.Pix[idx] = luma(src.At(x, y))
			idx++
		}
	}
	return p, nil
}

func (p Plane) At(x, y int) float64     { return p.Pix[y*p.W+x] }
func (p Plane) Set(x, y int, v float64) { p.Pix[y*p.W+x] = v }

// Clone returns a deep copy of the plane.
func (p Plane) Clone() Plane {
	tmp := make([]float64, len(p.Pix))
	copy(tmp, p.Pix)
	p.Pix = tmp
	return p
}

// Image renders the plane as an 8-bit grayscale image, clamping samples
// to the valid intensity range.
func (p Plane) Image() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, p.W, p.H))
	for i, v := range p.Pix {
		dst.Pix[i] = clamp8(v)
	}
	return dst
}

// Bitmap is a binary watermark payload stored as a row-major bool grid.
type Bitmap struct {
	W, H int
	Bits []bool
}

// NewBitmap allocates a cleared w x h bitmap.
func NewBitmap(w, h int) Bitmap {
	return Bitmap{W: w, H: h, Bits: make([]bool, w*h)}
}

func (m Bitmap) At(x, y int) bool     { return m.Bits[y*m.W+x] }
func (m Bitmap) Set(x, y int, b bool) { m.Bits[y*m.W+x] = b }

// Clone returns a deep copy of the bitmap.
func (m Bitmap) Clone() Bitmap {
	tmp := make([]bool, len(m.Bits))
	copy(tmp, m.Bits)
	m.Bits = tmp
	return m
}

// Image renders set bits as full-intensity pixels and cleared bits as black.
func (m Bitmap) Image() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for i, b := range m.Bits {
		if b {
			dst.Pix[i] = 255
		}
	}
	return dst
}

// binaryThreshold is the luma value above which a pixel counts as a set bit.
const binaryThreshold = 128

// BitmapFromImage binarizes src into a watermark bitmap: a bit is set when
// the BT.601 luma of the pixel exceeds 128.
func BitmapFromImage(src image.Image) (Bitmap, error) {
	if src == nil {
		return Bitmap{}, ErrInvalidInput
	}
	b := src.Bounds()
	m := NewBitmap(b.Dx(), b.Dy())
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.Bits[idx] = luma(src.At(x, y)) > binaryThreshold
			idx++
		}
	}
	return m, nil
}

// BitmapFromPlane binarizes a plane with the same luma threshold.
func BitmapFromPlane(p Plane) Bitmap {
	m := NewBitmap(p.W, p.H)
	for i, v := range p.Pix {
		m.Bits[i] = v > binaryThreshold
	}
	return m
}

func luma(c color.Color) float64 {
	r32, g32, b32, _ := c.RGBA()
	r := float64(r32 >> 8)
	g := float64(g32 >> 8)
	b := float64(b32 >> 8)
	return 0.299*r + 0.587*g + 0.114*b
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
