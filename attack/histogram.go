package attack

import (
	"image"
	"image/color"
	"math"

	"github.com/martinszuc/watermarklab/internal/yuv"
)

// HistogramEq equalizes the luma histogram: it builds the cumulative
// distribution of the 8-bit luma values, derives the normalization lookup
// table LUT[v] = round(255*cdf[v]/totalPixels) and remaps luma through it.
// Chroma is left untouched.
func HistogramEq(img image.Image, p Params) image.Image {
	src := toRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	area := w * h

	yPlane := make([]float64, area)
	uPlane := make([]float64, area)
	vPlane := make([]float64, area)
	alpha := make([]uint8, area)
	pixels := make([]color.Color, area)
	idx := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixels[idx] = src.At(x, y)
			idx++
		}
	}
	yuv.ColorToYCbCrBatch(pixels, yPlane, uPlane, vPlane, alpha)

	var hist [256]int
	for _, v := range yPlane {
		hist[clampInt(int(math.Round(v)), 0, 255)]++
	}
	var lut [256]float64
	cdf := 0
	for v, n := range hist {
		cdf += n
		lut[v] = math.Round(255 * float64(cdf) / float64(area))
	}
	for i, v := range yPlane {
		yPlane[i] = lut[clampInt(int(math.Round(v)), 0, 255)]
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	rgba := make([]color.RGBA, area)
	yuv.YCbCrToRGBABatch(yPlane, uPlane, vPlane, alpha, rgba)
	idx = 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(x, y, rgba[idx])
			idx++
		}
	}
	return dst
}
