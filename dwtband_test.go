package watermarklab

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDWTBand_RoundTripSideChannel(t *testing.T) {
	rd := rand.New(rand.NewSource(31))
	for _, band := range []Subband{SubbandLL, SubbandLH, SubbandHL, SubbandHH} {
		t.Run(string(band), func(t *testing.T) {
			host := randomPlane(rd, 64, 64)
			wm := randomBitmap(rd, 32, 32)

			codec := &DWTBandCodec{Strength: 5, Subband: band}
			marked, side, err := codec.Embed(host, wm)
			require.NoError(t, err)
			require.NotNil(t, side)
			assert.Equal(t, band, side.Subband)

			got, err := codec.Extract(marked, wm.W, wm.H, side)
			require.NoError(t, err)
			assert.Equal(t, wm.Bits, got.Bits)
		})
	}
}

func TestDWTBand_BlindFallback(t *testing.T) {
	// A strong embedding into a flat host separates the two bit classes far
	// enough for the subband-mean heuristic to recover every bit.
	host := NewPlane(32, 32)
	for i := range host.Pix {
		host.Pix[i] = 128
	}
	rd := rand.New(rand.NewSource(32))
	wm := randomBitmap(rd, 16, 16)
	wm.Bits[0] = true
	wm.Bits[1] = false

	codec := &DWTBandCodec{Strength: 20, Subband: SubbandHL}
	marked, _, err := codec.Embed(host, wm)
	require.NoError(t, err)

	got, err := codec.Extract(marked, wm.W, wm.H, nil)
	require.NoError(t, err)
	assert.Equal(t, wm.Bits, got.Bits)
}

func TestDWTBand_ExtractPath(t *testing.T) {
	codec := &DWTBandCodec{Strength: 5, Subband: SubbandHL}
	assert.Equal(t, "blind-mean", codec.ExtractPath(nil))
	assert.Equal(t, "side-channel", codec.ExtractPath(&SideChannel{}))
}

func TestDWTBand_MismatchedSideChannel(t *testing.T) {
	rd := rand.New(rand.NewSource(33))
	host := randomPlane(rd, 32, 32)
	wm := randomBitmap(rd, 8, 8)

	codec := &DWTBandCodec{Strength: 5, Subband: SubbandHL}
	marked, _, err := codec.Embed(host, wm)
	require.NoError(t, err)

	other := &SideChannel{Subband: SubbandLL, Coeffs: make([]float64, 16*16)}
	_, err = codec.Extract(marked, wm.W, wm.H, other)
	assert.ErrorIs(t, err, ErrMissingSideChannel)
}

func TestDWTBand_CapacityAndParity(t *testing.T) {
	codec := &DWTBandCodec{Strength: 5, Subband: SubbandLL}

	// watermark must fit in half the host extent
	_, _, err := codec.Embed(NewPlane(32, 32), NewBitmap(17, 16))
	assert.ErrorIs(t, err, ErrOversizeWatermark)

	// odd host dimensions are rejected
	_, _, err = codec.Embed(NewPlane(31, 32), NewBitmap(8, 8))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDWTBand_DefaultSubband(t *testing.T) {
	codec := &DWTBandCodec{Strength: 5}
	assert.Equal(t, "frequency-dwt-HL", codec.Name())
}
