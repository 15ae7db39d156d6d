package attack

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"

	"github.com/martinszuc/watermarklab/internal/dct"
	"github.com/martinszuc/watermarklab/internal/yuv"
)

// JPEG round-trips the image through the stdlib lossy codec at the given
// quality (1-100). Encode or decode failures return the input unchanged.
func JPEG(img image.Image, p Params) image.Image {
	quality := clampInt(p.Quality, 1, 100)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return img
	}
	out, err := jpeg.Decode(&buf)
	if err != nil {
		return img
	}
	return out
}

// Base quantization tables from the JPEG standard, Annex K.
var quantLuma = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var quantChroma = [64]int{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// JPEGPipeline runs the internal transform-quantize-inverse pipeline: each
// YCbCr channel is tiled into 8x8 blocks, transformed, divided by the
// quality-scaled quantization table, rounded, multiplied back and inverse
// transformed. No entropy coding, so the distortion matches JPEG's lossy
// stage without the container format.
func JPEGPipeline(img image.Image, p Params) image.Image {
	quality := clampInt(p.Quality, 1, 100)
	lumaTbl := scaleQuant(quantLuma, quality)
	chromaTbl := scaleQuant(quantChroma, quality)

	src := toRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	area := w * h
	planes := [][]float64{
		make([]float64, area),
		make([]float64, area),
		make([]float64, area),
	}
	alpha := make([]uint8, area)
	pixels := make([]color.Color, area)
	idx := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixels[idx] = src.At(x, y)
			idx++
		}
	}
	yuv.ColorToYCbCrBatch(pixels, planes[0], planes[1], planes[2], alpha)

	const n = 8
	bm := dct.NewBlockMap(w, h, n, n)
	dcos := dct.New(n, n)
	area8 := bm.BlockArea()
	for ch, plane := range planes {
		tbl := chromaTbl
		if ch == 0 {
			tbl = lumaTbl
		}
		buf := bm.Gather(plane)
		for at := 0; at < bm.TotalBlocks(); at++ {
			block := buf[at*area8 : (at+1)*area8 : (at+1)*area8]
			coefs, idct := dcos.Exec(block)
			for i := range coefs {
				q := float64(tbl[i])
				coefs[i] = float64(int(coefs[i]/q+roundBias(coefs[i]))) * q
			}
			idct()
		}
		planes[ch] = bm.Scatter(buf)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	rgba := make([]color.RGBA, area)
	yuv.YCbCrToRGBABatch(planes[0], planes[1], planes[2], alpha, rgba)
	idx = 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetRGBA(x, y, rgba[idx])
			idx++
		}
	}
	return out
}

func roundBias(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}

// scaleQuant applies the standard quality scaling to a base table.
func scaleQuant(base [64]int, quality int) [64]int {
	var scale int
	if quality < 50 {
		scale = 5000 / quality
	} else {
		scale = 200 - quality*2
	}
	var tbl [64]int
	for i, v := range base {
		q := (v*scale + 50) / 100
		tbl[i] = clampInt(q, 1, 255)
	}
	return tbl
}
