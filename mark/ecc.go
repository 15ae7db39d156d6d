package mark

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ coder = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) encode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}

	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), len(bits))
	encodedLen := enc.Bits()

	index := sg.generatePermutation(encodedLen)

	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, encodedLen)
	for i := range out {
		out[i], _ = r.ReadBitAt(index[i])
	}
	return out
}

func (sg shuffledgolay) decode(bits []bool, size int) []bool {
	// same permutation, applied inverted
	index := sg.generatePermutation(len(bits))

	w := bitstream.NewBitWriter[uint64](0, 0)
	for i, v := range bits {
		w.WriteBitAt(index[i], v)
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	r := bitstream.NewBitReader(decoded, 0, 0)
	out := make([]bool, size)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out
}

func (sg shuffledgolay) encodedLen(size int) int {
	return golay.EncodedBits(size)
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}

var _ coder = (*withoutecc)(nil)

type withoutecc struct{}

func (we withoutecc) encode(bits []bool) []bool {
	return bits
}

func (we withoutecc) decode(bits []bool, size int) []bool {
	out := make([]bool, size)
	copy(out, bits)
	return out
}

func (we withoutecc) encodedLen(size int) int {
	return size
}
