// Package mark builds watermark bitmaps from byte or string payloads and
// decodes recovered bitmaps back. Payloads can be protected with the Golay
// error-correcting code and deterministically shuffled so burst damage from
// a localized attack spreads over many codewords. When the bitmap holds
// more bits than one codeword, the codeword repeats cyclically and decoding
// takes a majority vote across the repetitions.
package mark

import (
	"fmt"

	watermarklab "github.com/martinszuc/watermarklab"
	"github.com/martinszuc/watermarklab/internal/bitconv"
)

// DefaultShuffleSeed drives the deterministic shuffle of WithGolay when the
// caller has no seed preference.
const DefaultShuffleSeed int64 = 1234567890

type (
	// Option selects the payload encoding.
	Option  func(*factory)
	factory struct {
		f coder
	}
	// coder transforms payload bits (most significant bit of each byte
	// first) into channel bits and back.
	coder interface {
		encode(bits []bool) []bool
		decode(bits []bool, size int) []bool
		encodedLen(size int) int
	}
)

// WithoutECC uses the payload bits as-is, without error correction.
func WithoutECC() Option {
	return func(f *factory) {
		f.f = withoutecc{}
	}
}

// WithGolay protects the payload with the Golay code and shuffles the
// encoded bits with the seeded permutation.
func WithGolay(seed int64) Option {
	return func(f *factory) {
		f.f = shuffledgolay(seed)
	}
}

func newFactory(opts []Option) factory {
	if len(opts) == 0 {
		opts = []Option{WithGolay(DefaultShuffleSeed)}
	}
	var f factory
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// FromString encodes s into a w x h bitmap.
func FromString(s string, w, h int, opts ...Option) (watermarklab.Bitmap, error) {
	return FromBytes([]byte(s), w, h, opts...)
}

// FromBytes encodes data into a w x h bitmap, filling the bitmap row-major
// with the (possibly ECC-expanded) payload bits, repeated cyclically.
func FromBytes(data []byte, w, h int, opts ...Option) (watermarklab.Bitmap, error) {
	if len(data) == 0 || w <= 0 || h <= 0 {
		return watermarklab.Bitmap{}, watermarklab.ErrInvalidInput
	}
	f := newFactory(opts)

	encoded := f.f.encode(bitconv.BytesToBools(data))
	if len(encoded) > w*h {
		return watermarklab.Bitmap{}, fmt.Errorf("%w: %d encoded bits into %d cells", watermarklab.ErrOversizeWatermark, len(encoded), w*h)
	}

	out := watermarklab.NewBitmap(w, h)
	for i := range out.Bits {
		out.Bits[i] = encoded[i%len(encoded)]
	}
	return out, nil
}

// ToString decodes a recovered bitmap back to the original size-byte string.
func ToString(bm watermarklab.Bitmap, size int, opts ...Option) (string, error) {
	b, err := ToBytes(bm, size, opts...)
	return string(b), err
}

// ToBytes decodes a recovered bitmap back to its size-byte payload. The
// same options used for encoding must be supplied.
func ToBytes(bm watermarklab.Bitmap, size int, opts ...Option) ([]byte, error) {
	if len(bm.Bits) == 0 || size <= 0 {
		return nil, watermarklab.ErrInvalidInput
	}
	f := newFactory(opts)
	encLen := f.f.encodedLen(size * 8)
	if encLen > len(bm.Bits) {
		return nil, fmt.Errorf("%w: %d encoded bits from %d cells", watermarklab.ErrOversizeWatermark, encLen, len(bm.Bits))
	}

	// Majority vote across the cyclic repetitions.
	ones := make([]int, encLen)
	total := make([]int, encLen)
	for i, b := range bm.Bits {
		pos := i % encLen
		total[pos]++
		if b {
			ones[pos]++
		}
	}
	bits := make([]bool, encLen)
	for i := range bits {
		bits[i] = ones[i]*2 > total[i]
	}

	decoded := f.f.decode(bits, size*8)
	return bitconv.BoolsToBytes(decoded)[:size], nil
}
