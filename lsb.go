package watermarklab

import (
	"fmt"
	"math"
)

// LSBCodec hides one watermark bit in a chosen bit plane of each covered
// pixel. The scheme is blind: extraction needs only the watermarked plane
// and the same parameters.
type LSBCodec struct {
	// BitPlane selects the binary digit position, 0 (least significant)
	// through 7. Out-of-range values are clamped.
	BitPlane int
	// Permute scrambles the bitmap with Key before embedding and restores
	// it after extraction.
	Permute bool
	Key     string
}

func (c *LSBCodec) Name() string { return "spatial-lsb" }

func (c *LSBCodec) Embed(host Plane, wm Bitmap) (Plane, *SideChannel, error) {
	if host.Pix == nil || wm.Bits == nil {
		return Plane{}, nil, ErrInvalidInput
	}
	if wm.W > host.W || wm.H > host.H {
		return Plane{}, nil, fmt.Errorf("%w: %dx%d into %dx%d", ErrOversizeWatermark, wm.W, wm.H, host.W, host.H)
	}
	bits := wm
	if c.Permute {
		bits = Permute(wm, c.Key)
	}
	plane := c.plane()
	out := host.Clone()
	for y := 0; y < wm.H; y++ {
		for x := 0; x < wm.W; x++ {
			v := int(math.Floor(out.At(x, y)))
			v &^= 1 << plane
			if bits.At(x, y) {
				v |= 1 << plane
			}
			out.Set(x, y, float64(v))
		}
	}
	return out, nil, nil
}

func (c *LSBCodec) Extract(marked Plane, w, h int, _ *SideChannel) (Bitmap, error) {
	if marked.Pix == nil {
		return Bitmap{}, ErrInvalidInput
	}
	if w > marked.W || h > marked.H {
		return Bitmap{}, fmt.Errorf("%w: %dx%d from %dx%d", ErrOversizeWatermark, w, h, marked.W, marked.H)
	}
	plane := c.plane()
	out := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(math.Floor(marked.At(x, y)))
			out.Set(x, y, v>>plane&1 == 1)
		}
	}
	if c.Permute {
		out = Unpermute(out, c.Key)
	}
	return out, nil
}

func (c *LSBCodec) plane() int {
	if c.BitPlane < 0 {
		return 0
	}
	if c.BitPlane > 7 {
		return 7
	}
	return c.BitPlane
}
