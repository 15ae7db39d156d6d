package watermarklab

import (
	"image"
	"image/color"

	"github.com/martinszuc/watermarklab/internal/yuv"
)

// Channel selects which YCbCr plane of an image a codec operates on.
type Channel int

const (
	ChannelY Channel = iota
	ChannelCb
	ChannelCr
)

func (c Channel) String() string {
	switch c {
	case ChannelCb:
		return "Cb"
	case ChannelCr:
		return "Cr"
	}
	return "Y"
}

type imageCore struct {
	bounds        image.Rectangle
	width, height int
	area          int

	alpha []uint8
	// Y, Cb, Cr
	colors [][]float64
}

func newImageCore(src image.Image) imageCore {
	var c imageCore
	c.bounds = src.Bounds()
	c.width, c.height = c.bounds.Dx(), c.bounds.Dy()
	c.area = c.width * c.height
	c.colors = [][]float64{
		make([]float64, c.area), // Y
		make([]float64, c.area), // Cb
		make([]float64, c.area), // Cr
	}
	c.alpha = make([]uint8, c.area)

	pixels := make([]color.Color, c.area)
	idx := 0
	for y := range c.height {
		for x := range c.width {
			pixels[idx] = src.At(c.bounds.Min.X+x, c.bounds.Min.Y+y)
			idx++
		}
	}
	yuv.ColorToYCbCrBatch(pixels, c.colors[0], c.colors[1], c.colors[2], c.alpha)
	return c
}

func (c imageCore) plane(ch Channel) Plane {
	p := NewPlane(c.width, c.height)
	copy(p.Pix, c.colors[ch])
	return p
}

func (c imageCore) setPlane(ch Channel, p Plane) {
	copy(c.colors[ch], p.Pix)
}

func (c imageCore) build() image.Image {
	var dist = image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	pixels := make([]color.RGBA, c.area)
	yuv.YCbCrToRGBABatch(c.colors[0], c.colors[1], c.colors[2], c.alpha, pixels)
	idx := 0
	for y := range c.height {
		for x := range c.width {
			dist.SetRGBA(x, y, pixels[idx])
			idx++
		}
	}
	return dist
}
