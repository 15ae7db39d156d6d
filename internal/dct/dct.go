package dct

import "math"

// DCT computes the type-II discrete cosine transform of a w x h block from
// a precomputed 2-D basis. Building the basis is the expensive part, so an
// instance is meant to be reused across every block of a plane (see Cache).
type DCT struct {
	w, h  int
	phi2d []float64
}

func New(w, h int) *DCT {
	dct := &DCT{w: w, h: h}

	wf := float64(w)
	hf := float64(h)

	// 1D basis functions for width (horizontal)
	phiW := make([]float64, w*w)
	for j := range w {
		// i = 0
		phiW[j] = 1.0 / math.Sqrt(wf)
	}
	for i := 1; i < w; i++ {
		for j := range w {
			phiW[i*w+j] = math.Sqrt(2.0/wf) *
				math.Cos(
					(float64(i)*math.Pi*(float64(j)*2+1))/
						(2.0*wf),
				)
		}
	}

	// 1D basis functions for height (vertical)
	phiH := make([]float64, h*h)
	for j := range h {
		// i = 0
		phiH[j] = 1.0 / math.Sqrt(hf)
	}
	for i := 1; i < h; i++ {
		for j := range h {
			phiH[i*h+j] = math.Sqrt(2.0/hf) *
				math.Cos(
					(float64(i)*math.Pi*(float64(j)*2+1))/
						(2.0*hf),
				)
		}
	}

	// 2D basis functions
	dct.phi2d = make([]float64, w*h*w*h)
	for i := range h { // coefficient row
		for j := range w { // coefficient column
			for x := range h { // sample row
				for y := range w { // sample column
					idx := i*w*w*h + j*w*h + x*w + y
					dct.phi2d[idx] = phiH[i*h+x] * phiW[j*w+y]
				}
			}
		}
	}

	return dct
}

// Exec transforms data and returns the coefficient block together with an
// inverse closure that writes the (possibly modified) coefficients back
// into data.
func (dct *DCT) Exec(data []float64) ([]float64, func()) {
	w := dct.w
	h := dct.h
	phi := dct.phi2d
	result := make([]float64, w*h)

	for i := range h { // coefficient row
		for j := range w { // coefficient column
			sum := 0.0
			for x := range h {
				for y := range w {
					phiIdx := i*w*w*h + j*w*h + x*w + y
					sum += phi[phiIdx] * data[x*w+y]
				}
			}
			result[i*w+j] = sum
		}
	}

	idct := func() {
		for i := range h { // sample row
			for j := range w { // sample column
				sum := 0.0
				for x := range h {
					for y := range w {
						phiIdx := x*w*w*h + y*w*h + i*w + j
						sum += phi[phiIdx] * result[x*w+y]
					}
				}
				data[i*w+j] = sum
			}
		}
	}
	return result, idct
}
