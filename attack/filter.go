package attack

import (
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/gift"
)

// Median replaces each channel of every pixel with the median of its
// (2*radius+1)^2 neighborhood. The radius clamps to 1-5 and border pixels
// clamp their neighborhood coordinates to the image edges; the median is
// the count/2 element of the sorted neighborhood.
func Median(img image.Image, p Params) image.Image {
	radius := clampInt(p.Radius, 1, 5)
	src := toRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	side := 2*radius + 1
	count := side * side
	rs := make([]uint8, count)
	gs := make([]uint8, count)
	bs := make([]uint8, count)
	as := make([]uint8, count)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx := clampInt(x+dx, 0, w-1)
					ny := clampInt(y+dy, 0, h-1)
					c := src.RGBAAt(nx, ny)
					rs[i], gs[i], bs[i], as[i] = c.R, c.G, c.B, c.A
					i++
				}
			}
			dst.SetRGBA(x, y, color.RGBA{
				R: medianOf(rs),
				G: medianOf(gs),
				B: medianOf(bs),
				A: medianOf(as),
			})
		}
	}
	return dst
}

func medianOf(vals []uint8) uint8 {
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals[len(vals)/2]
}

// Sharpen convolves the image with a 3x3 kernel built from p.Amount
// (clamped to 0-2): center 1+4a, edge-adjacent -a, corners -a/4.
func Sharpen(img image.Image, p Params) image.Image {
	a := float32(clampFloat(p.Amount, 0, 2))
	kernel := []float32{
		-a / 4, -a, -a / 4,
		-a, 1 + 4*a, -a,
		-a / 4, -a, -a / 4,
	}
	g := gift.New(gift.Convolution(kernel, false, false, false, 0))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
