package watermarklab

import (
	"fmt"

	"github.com/martinszuc/watermarklab/internal/dct"
)

// DefaultBlockSize is the block tiling used by the pair codec when none is
// configured.
const DefaultBlockSize = 8

// DCTPairCodec hides one bit per block in the order relation of two mid-band
// coefficients. The plane is tiled into non-overlapping blocks scanned
// row-major, in lockstep with the row-major bit scan of the bitmap; embed
// and extract share the same tiling so the two scans cannot diverge.
//
// The invariant per block is: bit=0 means coefA > coefB, bit=1 means
// coefA <= coefB. When the natural order disagrees the two values are
// swapped, and pairs closer than Strength are pushed apart by Strength/2 on
// each side so the margin survives quantization noise. Blind.
type DCTPairCodec struct {
	// BlockSize is the tile edge; DefaultBlockSize when zero.
	BlockSize int
	// CoefA and CoefB are (row, col) positions inside a transformed block.
	CoefA, CoefB [2]int
	// Strength is the minimum coefficient separation, > 0.
	Strength float64

	// Cache shares precomputed transform bases between codec instances.
	// Optional; a private basis is built when nil.
	Cache *dct.Cache
}

func (c *DCTPairCodec) Name() string { return "frequency-dct-pair" }

func (c *DCTPairCodec) Embed(host Plane, wm Bitmap) (Plane, *SideChannel, error) {
	if host.Pix == nil || wm.Bits == nil {
		return Plane{}, nil, ErrInvalidInput
	}
	n := c.blockSize()
	bm := dct.NewBlockMap(host.W, host.H, n, n)
	bits := len(wm.Bits)
	if bm.TotalBlocks() < bits {
		return Plane{}, nil, fmt.Errorf("%w: %d bits into %d blocks", ErrOversizeWatermark, bits, bm.TotalBlocks())
	}
	ai, bi := c.CoefA[0]*n+c.CoefA[1], c.CoefB[0]*n+c.CoefB[1]

	out := host.Clone()
	buf := bm.Gather(out.Pix)
	area := bm.BlockArea()
	dcos := c.transform(n)
	for at := 0; at < bits; at++ {
		block := buf[at*area : (at+1)*area : (at+1)*area]
		coefs, idct := dcos.Exec(block)
		va, vb := coefs[ai], coefs[bi]
		bit := wm.Bits[at]
		// bit=0 requires va > vb, bit=1 requires va <= vb
		if (bit && va > vb) || (!bit && va <= vb) {
			va, vb = vb, va
		}
		if diff := va - vb; diff <= c.Strength && -c.Strength <= diff {
			if bit {
				va -= c.Strength / 2
				vb += c.Strength / 2
			} else {
				va += c.Strength / 2
				vb -= c.Strength / 2
			}
		}
		coefs[ai], coefs[bi] = va, vb
		idct()
	}
	out.Pix = bm.Scatter(buf)
	return out, nil, nil
}

func (c *DCTPairCodec) Extract(marked Plane, w, h int, _ *SideChannel) (Bitmap, error) {
	if marked.Pix == nil {
		return Bitmap{}, ErrInvalidInput
	}
	n := c.blockSize()
	bm := dct.NewBlockMap(marked.W, marked.H, n, n)
	bits := w * h
	if bm.TotalBlocks() < bits {
		return Bitmap{}, fmt.Errorf("%w: %d bits from %d blocks", ErrOversizeWatermark, bits, bm.TotalBlocks())
	}
	ai, bi := c.CoefA[0]*n+c.CoefA[1], c.CoefB[0]*n+c.CoefB[1]

	buf := bm.Gather(marked.Pix)
	area := bm.BlockArea()
	dcos := c.transform(n)
	out := NewBitmap(w, h)
	for at := 0; at < bits; at++ {
		block := buf[at*area : (at+1)*area : (at+1)*area]
		coefs, _ := dcos.Exec(block)
		out.Bits[at] = coefs[ai] <= coefs[bi]
	}
	return out, nil
}

func (c *DCTPairCodec) blockSize() int {
	if c.BlockSize <= 0 {
		return DefaultBlockSize
	}
	return c.BlockSize
}

func (c *DCTPairCodec) transform(n int) *dct.DCT {
	if c.Cache != nil {
		return c.Cache.New(n, n)
	}
	return dct.New(n, n)
}
