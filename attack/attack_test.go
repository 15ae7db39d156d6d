package attack

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func noisyImage(rd *rand.Rand, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(rd.Intn(256)),
				G: uint8(rd.Intn(256)),
				B: uint8(rd.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func sameDims(t *testing.T, a, b image.Image) {
	t.Helper()
	require.Equal(t, a.Bounds().Dx(), b.Bounds().Dx())
	require.Equal(t, a.Bounds().Dy(), b.Bounds().Dy())
}

func TestCropRegion(t *testing.T) {
	// removing 10% from each edge of 100x100 keeps an 80x80 center
	r := cropRegion(100, 100, 0.1)
	assert.Equal(t, 80, r.Dx())
	assert.Equal(t, 80, r.Dy())
	assert.Equal(t, image.Rect(10, 10, 90, 90), r)
}

func TestCrop_RestoresDimensions(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	src := noisyImage(rd, 100, 60)
	out := Crop(src, Params{Percentage: 0.1})
	sameDims(t, src, out)
}

func TestMedian_UniformImageUnchanged(t *testing.T) {
	src := uniformImage(20, 20, color.RGBA{57, 120, 201, 255})
	out := Median(src, Params{Radius: 1})
	sameDims(t, src, out)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			assert.Equal(t, src.RGBAAt(x, y), out.(*image.RGBA).RGBAAt(x, y))
		}
	}
}

func TestMedian_ClampsRadius(t *testing.T) {
	rd := rand.New(rand.NewSource(2))
	src := noisyImage(rd, 8, 8)
	// radius 99 clamps to 5 rather than failing
	out := Median(src, Params{Radius: 99})
	sameDims(t, src, out)
}

func TestMedian_RemovesImpulse(t *testing.T) {
	src := uniformImage(9, 9, color.RGBA{100, 100, 100, 255})
	src.SetRGBA(4, 4, color.RGBA{255, 255, 255, 255})
	out := Median(src, Params{Radius: 1}).(*image.RGBA)
	assert.Equal(t, uint8(100), out.RGBAAt(4, 4).R)
}

func TestMirror_Involution(t *testing.T) {
	rd := rand.New(rand.NewSource(3))
	src := noisyImage(rd, 13, 7)
	for _, dir := range []Direction{Horizontal, Vertical} {
		p := Params{Direction: dir}
		out := Mirror(Mirror(src, p), p).(*image.RGBA)
		assert.Equal(t, src.Pix, out.Pix, string(dir))
	}
}

func TestMirror_Horizontal(t *testing.T) {
	src := uniformImage(2, 1, color.RGBA{0, 0, 0, 255})
	src.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	out := Mirror(src, Params{Direction: Horizontal}).(*image.RGBA)
	assert.Equal(t, uint8(255), out.RGBAAt(1, 0).R)
	assert.Equal(t, uint8(0), out.RGBAAt(0, 0).R)
}

func TestRotate_QuarterTurnsAreExact(t *testing.T) {
	rd := rand.New(rand.NewSource(4))
	src := noisyImage(rd, 12, 8)

	out := Rotate(src, Params{Degrees: 90})
	assert.Equal(t, 8, out.Bounds().Dx())
	assert.Equal(t, 12, out.Bounds().Dy())

	// four quarter turns restore the image exactly
	img := image.Image(src)
	for range 4 {
		img = Rotate(img, Params{Degrees: 90})
	}
	assert.Equal(t, src.Pix, img.(*image.RGBA).Pix)

	full := Rotate(src, Params{Degrees: 360}).(*image.RGBA)
	assert.Equal(t, src.Pix, full.Pix)
}

func TestRotate_ArbitraryKeepsDimensions(t *testing.T) {
	rd := rand.New(rand.NewSource(5))
	src := noisyImage(rd, 30, 20)
	out := Rotate(src, Params{Degrees: 13.5})
	sameDims(t, src, out)
}

func TestResize_KeepsDimensions(t *testing.T) {
	rd := rand.New(rand.NewSource(6))
	src := noisyImage(rd, 40, 30)
	out := Resize(src, Params{Scale: 0.5})
	sameDims(t, src, out)

	// scale clamps: 0 still yields a valid image via the 1x1 floor
	out = Resize(src, Params{Scale: 0})
	sameDims(t, src, out)
}

func TestGaussianNoise_SeededReproducible(t *testing.T) {
	rd := rand.New(rand.NewSource(7))
	src := noisyImage(rd, 16, 16)
	p := Params{Stddev: 10, Seed: 99}
	a := GaussianNoise(src, p).(*image.RGBA)
	b := GaussianNoise(src, p).(*image.RGBA)
	assert.Equal(t, a.Pix, b.Pix)

	c := GaussianNoise(src, Params{Stddev: 10, Seed: 100}).(*image.RGBA)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestSharpen_ZeroAmountIsIdentity(t *testing.T) {
	rd := rand.New(rand.NewSource(8))
	src := noisyImage(rd, 10, 10)
	out := Sharpen(src, Params{Amount: 0}).(*image.RGBA)
	assert.Equal(t, src.Pix, out.Pix)
}

func TestSharpen_KeepsDimensions(t *testing.T) {
	rd := rand.New(rand.NewSource(9))
	src := noisyImage(rd, 10, 10)
	out := Sharpen(src, Params{Amount: 1.5})
	sameDims(t, src, out)
}

func TestJPEG_KeepsDimensions(t *testing.T) {
	rd := rand.New(rand.NewSource(10))
	src := noisyImage(rd, 32, 32)
	for _, quality := range []int{1, 50, 100} {
		out := JPEG(src, Params{Quality: quality})
		sameDims(t, src, out)
	}
}

func TestJPEGPipeline_HighQualityLowDistortion(t *testing.T) {
	src := uniformImage(32, 32, color.RGBA{120, 130, 140, 255})
	out := JPEGPipeline(src, Params{Quality: 95}).(*image.RGBA)
	sameDims(t, src, out)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			want := src.RGBAAt(x, y)
			got := out.RGBAAt(x, y)
			assert.InDelta(t, float64(want.R), float64(got.R), 4)
			assert.InDelta(t, float64(want.G), float64(got.G), 4)
			assert.InDelta(t, float64(want.B), float64(got.B), 4)
		}
	}
}

func TestPNGCycle_IsLosslessForRGBA(t *testing.T) {
	rd := rand.New(rand.NewSource(11))
	src := noisyImage(rd, 16, 16)
	out := PNGCycle(src, Params{Level: 9})
	sameDims(t, src, out)
	r0, g0, b0, _ := src.At(3, 3).RGBA()
	r1, g1, b1, _ := out.At(3, 3).RGBA()
	assert.Equal(t, r0, r1)
	assert.Equal(t, g0, g1)
	assert.Equal(t, b0, b1)
}

func TestHistogramEq_KeepsDimensions(t *testing.T) {
	rd := rand.New(rand.NewSource(12))
	src := noisyImage(rd, 24, 24)
	out := HistogramEq(src, Params{})
	sameDims(t, src, out)
}

func TestHistogramEq_StretchesNarrowRange(t *testing.T) {
	// an image whose luma occupies a narrow band must spread after
	// equalization
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(100 + x) // luma in [100,115]
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	out := HistogramEq(img, Params{}).(*image.RGBA)
	lo, _, _, _ := out.At(0, 0).RGBA()
	hi, _, _, _ := out.At(15, 0).RGBA()
	assert.Greater(t, hi>>8, lo>>8)
	assert.Greater(t, hi>>8, uint32(200), "brightest band should stretch towards white")
}

func TestRegistry(t *testing.T) {
	d, ok := Lookup(KindJPEG)
	require.True(t, ok)
	assert.Equal(t, ClassCompression, d.Class)
	assert.Equal(t, 75, d.Defaults.Quality)
	assert.Equal(t, "quality=75", d.Describe(d.Defaults))

	_, ok = Lookup(Kind("bogus"))
	assert.False(t, ok)

	all := All()
	require.Len(t, all, 11)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Kind, all[i].Kind, "sorted by kind")
	}
	for _, d := range all {
		assert.NotNil(t, d.Apply, "%s has an implementation", d.Kind)
	}
}
