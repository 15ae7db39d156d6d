package watermarklab

import (
	"hash/fnv"
	"math/rand"
)

// Permute scrambles the bitmap with a pseudo-random permutation derived
// from key. The same key always produces the same permutation, so
// Unpermute with that key restores the original bitmap exactly.
func Permute(m Bitmap, key string) Bitmap {
	p := permutation(key, len(m.Bits))
	out := NewBitmap(m.W, m.H)
	for i, b := range m.Bits {
		out.Bits[p[i]] = b
	}
	return out
}

// Unpermute is the exact inverse of Permute for the same key.
func Unpermute(m Bitmap, key string) Bitmap {
	p := permutation(key, len(m.Bits))
	out := NewBitmap(m.W, m.H)
	for i := range out.Bits {
		out.Bits[i] = m.Bits[p[i]]
	}
	return out
}

// permutation builds the permutation table for a key: the key is hashed to
// a seed, then a Fisher-Yates shuffle of the identity sequence is driven by
// the seeded source. i runs from the top down to 1, j is uniform in [0,i].
func permutation(key string, size int) []int {
	p := make([]int, size)
	for i := range p {
		p[i] = i
	}
	rd := rand.New(rand.NewSource(keySeed(key)))
	for i := size - 1; i >= 1; i-- {
		j := rd.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

func keySeed(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}
