package attack

import (
	"fmt"
	"sort"
)

// Definition binds an attack kind to its implementation, default
// parameters and robustness class.
type Definition struct {
	Kind     Kind
	Class    Class
	Apply    Attack
	Defaults Params
}

// Describe renders the effective parameters of the definition's attack in
// a short human-readable form.
func (d Definition) Describe(p Params) string {
	switch d.Kind {
	case KindJPEG, KindJPEGPipeline:
		return fmt.Sprintf("quality=%d", clampInt(p.Quality, 1, 100))
	case KindPNGCycle:
		return fmt.Sprintf("level=%d", clampInt(p.Level, 1, 9))
	case KindRotate:
		return fmt.Sprintf("degrees=%g", p.Degrees)
	case KindResize:
		return fmt.Sprintf("scale=%g", clampFloat(p.Scale, 0, 1))
	case KindMirror:
		return fmt.Sprintf("direction=%s", p.Direction)
	case KindCrop:
		return fmt.Sprintf("percentage=%g", clampFloat(p.Percentage, 0, 0.5))
	case KindNoise:
		return fmt.Sprintf("stddev=%g", p.Stddev)
	case KindMedian:
		return fmt.Sprintf("radius=%d", clampInt(p.Radius, 1, 5))
	case KindSharpen:
		return fmt.Sprintf("amount=%g", clampFloat(p.Amount, 0, 2))
	}
	return ""
}

var registry = map[Kind]Definition{
	KindJPEG:         {Kind: KindJPEG, Class: ClassCompression, Apply: JPEG, Defaults: Params{Quality: 75}},
	KindJPEGPipeline: {Kind: KindJPEGPipeline, Class: ClassCompression, Apply: JPEGPipeline, Defaults: Params{Quality: 75}},
	KindPNGCycle:     {Kind: KindPNGCycle, Class: ClassCompression, Apply: PNGCycle, Defaults: Params{Level: 6}},
	KindRotate:       {Kind: KindRotate, Class: ClassRotation, Apply: Rotate, Defaults: Params{Degrees: 45}},
	KindResize:       {Kind: KindResize, Class: ClassOther, Apply: Resize, Defaults: Params{Scale: 0.5}},
	KindMirror:       {Kind: KindMirror, Class: ClassOther, Apply: Mirror, Defaults: Params{Direction: Horizontal}},
	KindCrop:         {Kind: KindCrop, Class: ClassCropping, Apply: Crop, Defaults: Params{Percentage: 0.1}},
	KindNoise:        {Kind: KindNoise, Class: ClassNoise, Apply: GaussianNoise, Defaults: Params{Stddev: 10}},
	KindMedian:       {Kind: KindMedian, Class: ClassFiltering, Apply: Median, Defaults: Params{Radius: 1}},
	KindHistogramEq:  {Kind: KindHistogramEq, Class: ClassFiltering, Apply: HistogramEq, Defaults: Params{}},
	KindSharpen:      {Kind: KindSharpen, Class: ClassFiltering, Apply: Sharpen, Defaults: Params{Amount: 1}},
}

// Lookup resolves an attack kind to its definition.
func Lookup(k Kind) (Definition, bool) {
	d, ok := registry[k]
	return d, ok
}

// All returns every registered definition sorted by kind.
func All() []Definition {
	defs := make([]Definition, 0, len(registry))
	for _, d := range registry {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Kind < defs[j].Kind })
	return defs
}
