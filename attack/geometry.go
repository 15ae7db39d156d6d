package attack

import (
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Rotate turns the image by p.Degrees. Exact multiples of 90 degrees remap
// pixels directly and keep the full content (the canvas swaps dimensions
// for 90 and 270). Arbitrary angles rotate about the image center on an
// enlarged canvas sized to contain the rotated rectangle, then re-crop to
// the original dimensions, losing corner content.
func Rotate(img image.Image, p Params) image.Image {
	deg := math.Mod(p.Degrees, 360)
	if deg < 0 {
		deg += 360
	}
	src := toRGBA(img)
	switch deg {
	case 0:
		return src
	case 90, 180, 270:
		return rotateExact(src, int(deg))
	}
	return rotateArbitrary(src, deg)
}

func rotateExact(src *image.RGBA, deg int) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	var dst *image.RGBA
	switch deg {
	case 90:
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetRGBA(h-1-y, x, src.RGBAAt(x, y))
			}
		}
	case 180:
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetRGBA(w-1-x, h-1-y, src.RGBAAt(x, y))
			}
		}
	case 270:
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetRGBA(y, w-1-x, src.RGBAAt(x, y))
			}
		}
	}
	return dst
}

func rotateArbitrary(src *image.RGBA, deg float64) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	absSin, absCos := math.Abs(sin), math.Abs(cos)

	// Canvas large enough to contain the rotated rectangle.
	nw := int(math.Ceil(float64(w)*absCos + float64(h)*absSin))
	nh := int(math.Ceil(float64(w)*absSin + float64(h)*absCos))
	canvas := image.NewRGBA(image.Rect(0, 0, nw, nh))

	cx, cy := float64(w)/2, float64(h)/2
	ncx, ncy := float64(nw)/2, float64(nh)/2

	// Inverse mapping with bilinear sampling.
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			dx := float64(x) + 0.5 - ncx
			dy := float64(y) + 0.5 - ncy
			sx := dx*cos + dy*sin + cx - 0.5
			sy := -dx*sin + dy*cos + cy - 0.5
			canvas.SetRGBA(x, y, bilinear(src, sx, sy))
		}
	}

	// Re-crop the center back to the original dimensions.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	ox, oy := (nw-w)/2, (nh-h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(x, y, canvas.RGBAAt(x+ox, y+oy))
		}
	}
	return dst
}

func bilinear(src *image.RGBA, x, y float64) color.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	sample := func(px, py int) (float64, float64, float64, float64) {
		if px < 0 || py < 0 || px >= w || py >= h {
			return 0, 0, 0, 0
		}
		c := src.RGBAAt(px, py)
		return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
	}

	r00, g00, b00, a00 := sample(x0, y0)
	r10, g10, b10, a10 := sample(x0+1, y0)
	r01, g01, b01, a01 := sample(x0, y0+1)
	r11, g11, b11, a11 := sample(x0+1, y0+1)

	lerp2 := func(v00, v10, v01, v11 float64) uint8 {
		top := v00*(1-fx) + v10*fx
		bot := v01*(1-fx) + v11*fx
		return uint8(math.Round(top*(1-fy) + bot*fy))
	}
	return color.RGBA{
		R: lerp2(r00, r10, r01, r11),
		G: lerp2(g00, g10, g01, g11),
		B: lerp2(b00, b10, b01, b11),
		A: lerp2(a00, a10, a01, a11),
	}
}

// Resize downsamples to p.Scale times the dimensions (minimum 1x1) and
// upsamples back, inducing interpolation loss.
func Resize(img image.Image, p Params) image.Image {
	scale := clampFloat(p.Scale, 0, 1)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	sw := max(1, int(math.Round(float64(w)*scale)))
	sh := max(1, int(math.Round(float64(h)*scale)))
	small := resize.Resize(uint(sw), uint(sh), img, resize.Bilinear)
	return resize.Resize(uint(w), uint(h), small, resize.Bilinear)
}

// Mirror reflects the image about the axis named by p.Direction:
// horizontal flips left-right, vertical flips top-bottom.
func Mirror(img image.Image, p Params) image.Image {
	src := toRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if p.Direction == Vertical {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetRGBA(x, h-1-y, src.RGBAAt(x, y))
			}
		}
		return dst
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(w-1-x, y, src.RGBAAt(x, y))
		}
	}
	return dst
}

// Crop removes p.Percentage of each dimension from every edge and rescales
// the remainder back to the original size. A percentage of 0.1 on a 100x100
// image keeps an 80x80 center region before the rescale.
func Crop(img image.Image, p Params) image.Image {
	pct := clampFloat(p.Percentage, 0, 0.5)
	src := toRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	rect := cropRegion(w, h, pct)
	if rect.Dx() < 1 || rect.Dy() < 1 {
		return src
	}
	region := src.SubImage(rect)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), region, region.Bounds(), xdraw.Src, nil)
	return dst
}

// cropRegion is the center region kept by Crop: pct of each dimension is
// removed from every edge.
func cropRegion(w, h int, pct float64) image.Rectangle {
	px := int(pct * float64(w))
	py := int(pct * float64(h))
	return image.Rect(px, py, w-px, h-py)
}
