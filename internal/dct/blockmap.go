package dct

// BlockMap maps row-major plane indices into a layout where every
// blockWidth x blockHeight tile is contiguous, tiles following each other
// in row-major scan order. Gathering a plane through the map lets block
// transforms slice tiles directly; margins that do not fill a whole tile
// are carried after the tiled area so Scatter can restore them untouched.
type BlockMap struct {
	width, height           int // plane dimensions
	blockWidth, blockHeight int // tile dimensions

	allocWidth, allocHeight int // dimensions covered by whole tiles
	marginWidth             int // width of the right margin
	blockArea               int // blockWidth * blockHeight
	totalAllocArea          int // allocWidth * allocHeight
	blockRowArea            int // allocWidth * blockHeight
}

func NewBlockMap(w, h, bw, bh int) BlockMap {
	var m = BlockMap{
		width:       w,
		height:      h,
		blockWidth:  bw,
		blockHeight: bh,
	}
	countBlockX, countBlockY := w/bw, h/bh
	m.allocWidth, m.allocHeight = countBlockX*bw, countBlockY*bh
	m.marginWidth = w - m.allocWidth
	m.blockArea = m.blockWidth * m.blockHeight
	m.totalAllocArea = m.allocWidth * m.allocHeight
	m.blockRowArea = m.allocWidth * m.blockHeight
	return m
}

// TotalBlocks is the number of whole tiles the plane holds.
func (m BlockMap) TotalBlocks() int {
	return (m.width / m.blockWidth) * (m.height / m.blockHeight)
}

// BlockArea is the sample count of one tile.
func (m BlockMap) BlockArea() int { return m.blockArea }

// Gather copies the plane into a tile-contiguous buffer.
func (m BlockMap) Gather(plane []float64) []float64 {
	buf := make([]float64, len(plane))
	for i, v := range plane {
		buf[m.get(i)] = v
	}
	return buf
}

// Scatter writes a tile-contiguous buffer back into row-major plane order.
func (m BlockMap) Scatter(buf []float64) []float64 {
	plane := make([]float64, len(buf))
	for i := range plane {
		plane[i] = buf[m.get(i)]
	}
	return plane
}

func (m BlockMap) get(i int) int {
	x, y := i%m.width, i/m.width
	if m.allocHeight <= y {
		// bottom margin
		return i
	}
	if mx := x - m.allocWidth; mx >= 0 {
		// right margin
		return m.totalAllocArea +
			y*m.marginWidth + mx
	}
	// in block
	brow, bcol := y/m.blockHeight, x/m.blockWidth
	start := brow*m.blockRowArea + bcol*m.blockArea
	bx, by := x%m.blockWidth, y%m.blockHeight
	return start + by*m.blockWidth + bx
}
