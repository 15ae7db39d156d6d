package watermarklab

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermute_RoundTrip(t *testing.T) {
	rd := rand.New(rand.NewSource(42))
	sizes := [][2]int{{1, 1}, {3, 5}, {8, 8}, {32, 32}, {31, 17}}
	keys := []string{"", "k", "secret-key", "日本語の鍵"}
	for _, size := range sizes {
		for _, key := range keys {
			t.Run(fmt.Sprintf("%dx%d_%q", size[0], size[1], key), func(t *testing.T) {
				m := NewBitmap(size[0], size[1])
				for i := range m.Bits {
					m.Bits[i] = rd.Intn(2) == 1
				}
				back := Unpermute(Permute(m, key), key)
				assert.Equal(t, m.Bits, back.Bits)
			})
		}
	}
}

func TestPermute_Deterministic(t *testing.T) {
	m := NewBitmap(16, 16)
	for i := range m.Bits {
		m.Bits[i] = i%3 == 0
	}
	a := Permute(m, "key")
	b := Permute(m, "key")
	assert.Equal(t, a.Bits, b.Bits)

	c := Permute(m, "other")
	assert.NotEqual(t, a.Bits, c.Bits)
}

func TestPermute_IsBijection(t *testing.T) {
	p := permutation("any", 1000)
	seen := make([]bool, len(p))
	for _, dst := range p {
		require.GreaterOrEqual(t, dst, 0)
		require.Less(t, dst, len(p))
		require.False(t, seen[dst], "index %d mapped twice", dst)
		seen[dst] = true
	}
}
