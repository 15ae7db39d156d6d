// Package dwt implements a single-level averaging Haar decomposition over
// flat row-major planes. Each 2x2 pixel group (a b / c d) produces one
// sample per subband:
//
//	LL = (a+b+c+d)/4   LH = (a+b-c-d)/4
//	HL = (a-b+c-d)/4   HH = (a-b-c+d)/4
//
// Reconstruct is the exact algebraic inverse of Decompose.
package dwt

// Subbands holds the four quadrants of a decomposition, each of size
// (w/2) x (h/2) in row-major order.
type Subbands struct {
	W, H           int // subband dimensions (half the source)
	LL, LH, HL, HH []float64
}

// Get returns the samples of the named quadrant: "LL", "LH", "HL" or "HH".
// Unknown names return nil.
func (s *Subbands) Get(name string) []float64 {
	switch name {
	case "LL":
		return s.LL
	case "LH":
		return s.LH
	case "HL":
		return s.HL
	case "HH":
		return s.HH
	}
	return nil
}

// Decompose splits an even-dimensioned w x h plane into its four subbands.
func Decompose(data []float64, w, h int) *Subbands {
	hw, hh := w/2, h/2
	l := hw * hh
	s := &Subbands{
		W: hw, H: hh,
		LL: make([]float64, l),
		LH: make([]float64, l),
		HL: make([]float64, l),
		HH: make([]float64, l),
	}
	for y := 0; y < hh; y++ {
		for x := 0; x < hw; x++ {
			a := data[(2*y)*w+(2*x)]
			b := data[(2*y)*w+(2*x+1)]
			c := data[(2*y+1)*w+(2*x)]
			d := data[(2*y+1)*w+(2*x+1)]

			idx := y*hw + x
			s.LL[idx] = (a + b + c + d) / 4
			s.LH[idx] = (a + b - c - d) / 4
			s.HL[idx] = (a - b + c - d) / 4
			s.HH[idx] = (a - b - c + d) / 4
		}
	}
	return s
}

// Reconstruct rebuilds the w x h plane from its subbands.
func Reconstruct(s *Subbands, w, h int) []float64 {
	data := make([]float64, w*h)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			idx := y*s.W + x
			ll := s.LL[idx]
			lh := s.LH[idx]
			hl := s.HL[idx]
			hh := s.HH[idx]

			data[(2*y)*w+(2*x)] = ll + lh + hl + hh
			data[(2*y)*w+(2*x+1)] = ll + lh - hl - hh
			data[(2*y+1)*w+(2*x)] = ll - lh + hl - hh
			data[(2*y+1)*w+(2*x+1)] = ll - lh - hl + hh
		}
	}
	return data
}
