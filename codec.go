package watermarklab

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidInput reports a nil or otherwise unusable argument.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOversizeWatermark reports a watermark that exceeds the host capacity.
	ErrOversizeWatermark = errors.New("watermark exceeds host capacity")
	// ErrDimensionMismatch reports a comparison between unequal-sized data.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrMissingSideChannel reports a non-blind extract without the matching
	// embed-time state.
	ErrMissingSideChannel = errors.New("missing side channel")
	// ErrCodecFailure reports an external encode/decode error.
	ErrCodecFailure = errors.New("codec failure")
)

// Codec is the common capability of the four embedding schemes.
//
// Embed returns the watermarked plane and, for the non-blind schemes, a
// SideChannel that must be passed verbatim to Extract. Blind schemes return
// a nil SideChannel and ignore the one given to Extract.
//
// Extract recovers a w x h bitmap from a watermarked plane. Parameters are
// fixed at construction and must match between the embed and extract calls.
type Codec interface {
	Name() string
	Embed(host Plane, wm Bitmap) (Plane, *SideChannel, error)
	Extract(marked Plane, w, h int, side *SideChannel) (Bitmap, error)
}

// SideChannel carries embed-time state required by the non-blind schemes.
// It is created by Embed, read by Extract and never mutated, so a single
// value can back several concurrent extract calls. Each embedding session
// owns its own instance; there is no process-global state.
type SideChannel struct {
	// Wavelet path: the selected subband and its pre-embedding samples.
	Subband Subband
	Coeffs  []float64

	// Singular-value path: the embed-time factorization and strength.
	U, V  *mat.Dense
	S     []float64
	Alpha float64
}
