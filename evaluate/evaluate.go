// Package evaluate turns a pair of images or bitmaps into a robustness
// verdict: bit-error rate, normalized correlation, peak signal-to-noise
// ratio and watermark-to-noise ratio, plus derived quality and robustness
// ratings.
package evaluate

import (
	"image"
	"math"

	watermarklab "github.com/martinszuc/watermarklab"
)

// PerfectPSNR is the sentinel returned when two images are identical.
const PerfectPSNR = 100.0

// BER is the fraction of mismatched bits between two bitmaps. Unequal
// dimensions report ErrDimensionMismatch along with 1.0, the safe worst
// case.
func BER(a, b watermarklab.Bitmap) (float64, error) {
	if a.W != b.W || a.H != b.H {
		return 1.0, watermarklab.ErrDimensionMismatch
	}
	if len(a.Bits) == 0 {
		return 0, nil
	}
	errs := 0
	for i := range a.Bits {
		if a.Bits[i] != b.Bits[i] {
			errs++
		}
	}
	return float64(errs) / float64(len(a.Bits)), nil
}

// ImageBER binarizes both images with the luma threshold and computes BER.
func ImageBER(a, b image.Image) (float64, error) {
	ba, err := watermarklab.BitmapFromImage(a)
	if err != nil {
		return 1.0, err
	}
	bb, err := watermarklab.BitmapFromImage(b)
	if err != nil {
		return 1.0, err
	}
	return BER(ba, bb)
}

// NC is the normalized correlation of two bitmaps with bits mapped to
// {-1,+1}: sum(a*b) / sqrt(sum(a^2)*sum(b^2)). Zero energy on either side
// yields 0.
func NC(a, b watermarklab.Bitmap) (float64, error) {
	if a.W != b.W || a.H != b.H {
		return 0, watermarklab.ErrDimensionMismatch
	}
	var dot, ea, eb float64
	for i := range a.Bits {
		va, vb := bipolar(a.Bits[i]), bipolar(b.Bits[i])
		dot += va * vb
		ea += va * va
		eb += vb * vb
	}
	if ea == 0 || eb == 0 {
		return 0, nil
	}
	return dot / math.Sqrt(ea*eb), nil
}

func bipolar(b bool) float64 {
	if b {
		return 1
	}
	return -1
}

// PSNR is the peak signal-to-noise ratio in dB over all channels and
// pixels: 10*log10(255^2/MSE). Identical images return PerfectPSNR.
func PSNR(original, processed image.Image) (float64, error) {
	se, n, err := channelDiff(original, processed)
	if err != nil {
		return 0, err
	}
	if se == 0 {
		return PerfectPSNR, nil
	}
	mse := se / float64(n)
	return 10 * math.Log10(255*255/mse), nil
}

// WNR is the watermark-to-noise ratio in dB: total original signal energy
// over total per-channel squared difference energy. Zero difference energy
// yields 0.
func WNR(original, watermarked image.Image) (float64, error) {
	if original == nil || watermarked == nil {
		return 0, watermarklab.ErrInvalidInput
	}
	ob, wb := original.Bounds(), watermarked.Bounds()
	if ob.Dx() != wb.Dx() || ob.Dy() != wb.Dy() {
		return 0, watermarklab.ErrDimensionMismatch
	}
	var signal, noise float64
	for y := 0; y < ob.Dy(); y++ {
		for x := 0; x < ob.Dx(); x++ {
			or, og, obl := rgb8(original.At(ob.Min.X+x, ob.Min.Y+y))
			wr, wg, wbl := rgb8(watermarked.At(wb.Min.X+x, wb.Min.Y+y))
			signal += or*or + og*og + obl*obl
			dr, dg, db := or-wr, og-wg, obl-wbl
			noise += dr*dr + dg*dg + db*db
		}
	}
	if noise == 0 {
		return 0, nil
	}
	return 10 * math.Log10(signal/noise), nil
}

func channelDiff(a, b image.Image) (se float64, n int, err error) {
	if a == nil || b == nil {
		return 0, 0, watermarklab.ErrInvalidInput
	}
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, 0, watermarklab.ErrDimensionMismatch
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl := rgb8(a.At(ab.Min.X+x, ab.Min.Y+y))
			br, bg, bbl := rgb8(b.At(bb.Min.X+x, bb.Min.Y+y))
			dr, dg, db := ar-br, ag-bg, abl-bbl
			se += dr*dr + dg*dg + db*db
			n += 3
		}
	}
	return se, n, nil
}

func rgb8(c interface{ RGBA() (r, g, b, a uint32) }) (float64, float64, float64) {
	r, g, b, _ := c.RGBA()
	return float64(r >> 8), float64(g >> 8), float64(b >> 8)
}
