// Package attack simulates image-processing degradations against a
// watermarked image. Every attack is a stateless image-to-image transform;
// all are deterministic except Gaussian noise, which draws from a per-call
// seed. Attacks that round-trip through an external codec degrade to
// returning the input unchanged when the codec fails, and out-of-range
// numeric parameters are clamped rather than rejected.
package attack

import (
	"image"
	"image/draw"
)

// Kind identifies one attack implementation in the registry.
type Kind string

const (
	KindJPEG         Kind = "jpeg"
	KindJPEGPipeline Kind = "jpeg-pipeline"
	KindPNGCycle     Kind = "png-cycle"
	KindRotate       Kind = "rotate"
	KindResize       Kind = "resize"
	KindMirror       Kind = "mirror"
	KindCrop         Kind = "crop"
	KindNoise        Kind = "noise"
	KindMedian       Kind = "median"
	KindHistogramEq  Kind = "histogram-eq"
	KindSharpen      Kind = "sharpen"
)

// Class groups attacks for robustness-threshold purposes.
type Class int

const (
	ClassOther Class = iota
	ClassCompression
	ClassRotation
	ClassCropping
	ClassNoise
	ClassFiltering
)

func (c Class) String() string {
	switch c {
	case ClassCompression:
		return "compression"
	case ClassRotation:
		return "rotation"
	case ClassCropping:
		return "cropping"
	case ClassNoise:
		return "noise"
	case ClassFiltering:
		return "filtering"
	}
	return "other"
}

// Direction selects the mirror axis.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Params is the per-attack configuration bag. Each attack reads only the
// fields it documents; the rest are ignored.
type Params struct {
	Quality    int       `yaml:"quality"`    // jpeg: 1-100
	Level      int       `yaml:"level"`      // png-cycle: 1-9
	Degrees    float64   `yaml:"degrees"`    // rotate
	Scale      float64   `yaml:"scale"`      // resize: 0-1
	Direction  Direction `yaml:"direction"`  // mirror
	Percentage float64   `yaml:"percentage"` // crop: 0-0.5 per edge
	Stddev     float64   `yaml:"stddev"`     // noise
	Seed       int64     `yaml:"seed"`       // noise: 0 draws a fresh seed
	Radius     int       `yaml:"radius"`     // median: 1-5
	Amount     float64   `yaml:"amount"`     // sharpen: 0-2
}

// Attack transforms an image into its degraded counterpart.
type Attack func(img image.Image, p Params) image.Image

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toRGBA normalizes any image to *image.RGBA with a zero-origin rectangle.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
