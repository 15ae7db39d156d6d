// Package yuv converts between RGB pixels and full-range BT.601 YCbCr
// sample planes. The round trip is near-lossless up to 8-bit rounding.
package yuv

import "image/color"

const delta = 128.0

const (
	yr = 0.299
	yg = 0.587
	yb = 0.114
	cb = 0.564 // 0.5 / (1 - yb)
	cr = 0.713 // 0.5 / (1 - yr)
)

// ColorToYCbCrBatch fills the y, u (Cb) and v (Cr) planes from pixels,
// recording the alpha channel separately so image reconstruction keeps it.
func ColorToYCbCrBatch(pixels []color.Color, y, u, v []float64, alpha []uint8) {
	for i, pixel := range pixels {
		r32, g32, b32, a32 := pixel.RGBA()
		r := float64(r32 >> 8)
		g := float64(g32 >> 8)
		b := float64(b32 >> 8)

		yVal := yr*r + yg*g + yb*b
		y[i] = yVal
		u[i] = cb*(b-yVal) + delta
		v[i] = cr*(r-yVal) + delta
		alpha[i] = uint8(a32 >> 8)
	}
}

const (
	vr = 1.403 // 2 - 2*yr
	ug = -0.344
	vg = -0.714
	ub = 1.773 // 2 - 2*yb
)

// YCbCrToRGBABatch rebuilds RGBA pixels from the three sample planes.
func YCbCrToRGBABatch(y, u, v []float64, alpha []uint8, pixels []color.RGBA) {
	for i := range pixels {
		yVal := y[i]
		uDelta := u[i] - delta
		vDelta := v[i] - delta

		r := yVal + vr*vDelta
		g := yVal + ug*uDelta + vg*vDelta
		b := yVal + ub*uDelta

		pixels[i] = color.RGBA{
			R: clip8(r),
			G: clip8(g),
			B: clip8(b),
			A: alpha[i],
		}
	}
}

func clip8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
