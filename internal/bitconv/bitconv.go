// Package bitconv packs bit slices into bytes and back, MSB first.
package bitconv

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

func BoolsToBytes(bits []bool) []byte {
	// pad to a whole byte without modifying the input
	n := len(bits)
	paddedLen := n
	if n%8 != 0 {
		paddedLen += 8 - (n % 8)
	}
	padded := make([]bool, paddedLen)
	copy(padded, bits)

	out := make([]byte, paddedLen/8)
	for i := range out {
		var v byte
		for j := range 8 {
			if padded[i*8+j] {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out
}
