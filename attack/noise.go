package attack

import (
	"image"
	"math/rand"
	"time"
)

// GaussianNoise adds normally distributed noise with p.Stddev to every
// color channel, clamped to the valid intensity range. The generator is
// seeded per call: with p.Seed zero a fresh seed is drawn, so repeated runs
// differ unless the caller fixes the seed.
func GaussianNoise(img image.Image, p Params) image.Image {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rd := rand.New(rand.NewSource(seed))

	src := toRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.RGBAAt(x, y)
			c.R = addNoise(c.R, rd.NormFloat64()*p.Stddev)
			c.G = addNoise(c.G, rd.NormFloat64()*p.Stddev)
			c.B = addNoise(c.B, rd.NormFloat64()*p.Stddev)
			dst.SetRGBA(x, y, c)
		}
	}
	return dst
}

func addNoise(v uint8, noise float64) uint8 {
	nv := float64(v) + noise
	if nv < 0 {
		return 0
	}
	if nv > 255 {
		return 255
	}
	return uint8(nv + 0.5)
}
