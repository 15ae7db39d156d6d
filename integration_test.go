package watermarklab_test

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	watermarklab "github.com/martinszuc/watermarklab"
	"github.com/martinszuc/watermarklab/attack"
	"github.com/martinszuc/watermarklab/evaluate"
	"github.com/martinszuc/watermarklab/mark"
)

// gradientImage is a grayscale diagonal ramp kept away from the clipping
// range at both ends.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(32 + (x+y)*192/(w+h-2))
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func checkerBitmap(w, h int) watermarklab.Bitmap {
	bm := watermarklab.NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bm.Bits[y*w+x] = (x+y)%2 == 0
		}
	}
	return bm
}

func colorNoiseImage(rd *rand.Rand, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(32 + rd.Intn(192)),
				G: uint8(32 + rd.Intn(192)),
				B: uint8(32 + rd.Intn(192)),
				A: 255,
			})
		}
	}
	return img
}

func TestDCTPairSurvivesPNGCycle(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	host := colorNoiseImage(rd, 64, 64)
	wm := checkerBitmap(8, 8)

	marker, err := watermarklab.NewMarker(&watermarklab.DCTPairCodec{
		CoefA:    [2]int{3, 1},
		CoefB:    [2]int{4, 1},
		Strength: 10,
	})
	require.NoError(t, err)

	marked, side, err := marker.Embed(host, wm)
	require.NoError(t, err)
	assert.Nil(t, side, "pair codec is blind")

	psnr, err := evaluate.PSNR(host, marked)
	require.NoError(t, err)
	assert.Greater(t, psnr, 30.0, "embedding stays imperceptible")

	attacked := attack.PNGCycle(marked, attack.Params{Level: 9})
	got, err := marker.Extract(attacked, 8, 8, nil)
	require.NoError(t, err)

	ber, err := evaluate.BER(wm, got)
	require.NoError(t, err)
	assert.Less(t, ber, 0.05)

	nc, err := evaluate.NC(wm, got)
	require.NoError(t, err)
	assert.Greater(t, nc, 0.9)
}

func TestLSBFragileUnderNoise(t *testing.T) {
	host := gradientImage(64, 64)
	wm := checkerBitmap(64, 64)

	marker, err := watermarklab.NewMarker(&watermarklab.LSBCodec{BitPlane: 0})
	require.NoError(t, err)

	marked, _, err := marker.Embed(host, wm)
	require.NoError(t, err)

	// no attack: the grayscale host keeps luma exact through the rebuild
	clean, err := marker.Extract(marked, 64, 64, nil)
	require.NoError(t, err)
	ber, err := evaluate.BER(wm, clean)
	require.NoError(t, err)
	assert.Zero(t, ber)

	// additive noise randomizes the lowest bit plane
	attacked := attack.GaussianNoise(marked, attack.Params{Stddev: 10, Seed: 5})
	noisy, err := marker.Extract(attacked, 64, 64, nil)
	require.NoError(t, err)
	ber, err = evaluate.BER(wm, noisy)
	require.NoError(t, err)
	assert.Greater(t, ber, 0.2, "spatial bit plane does not survive noise")
}

func TestPayloadRoundTripThroughImage(t *testing.T) {
	rd := rand.New(rand.NewSource(2))
	host := colorNoiseImage(rd, 128, 128)

	const payload = "wmlab"
	wm, err := mark.FromString(payload, 16, 16)
	require.NoError(t, err)

	marker, err := watermarklab.NewMarker(&watermarklab.DCTPairCodec{
		CoefA:    [2]int{3, 1},
		CoefB:    [2]int{4, 1},
		Strength: 20,
	}, watermarklab.WithChannel(watermarklab.ChannelY))
	require.NoError(t, err)

	marked, _, err := marker.Embed(host, wm)
	require.NoError(t, err)

	attacked := attack.PNGCycle(marked, attack.Params{Level: 6})
	got, err := marker.Extract(attacked, 16, 16, nil)
	require.NoError(t, err)

	decoded, err := mark.ToString(got, len(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestMarkerChannels(t *testing.T) {
	rd := rand.New(rand.NewSource(3))
	host := colorNoiseImage(rd, 64, 64)
	wm := checkerBitmap(8, 8)

	for _, ch := range []watermarklab.Channel{watermarklab.ChannelY, watermarklab.ChannelCb, watermarklab.ChannelCr} {
		marker, err := watermarklab.NewMarker(&watermarklab.DCTPairCodec{
			CoefA:    [2]int{3, 1},
			CoefB:    [2]int{4, 1},
			Strength: 30,
		}, watermarklab.WithChannel(ch))
		require.NoError(t, err)

		marked, _, err := marker.Embed(host, wm)
		require.NoError(t, err)
		got, err := marker.Extract(marked, 8, 8, nil)
		require.NoError(t, err)

		ber, err := evaluate.BER(wm, got)
		require.NoError(t, err)
		assert.Less(t, ber, 0.05, "channel %s", ch)
	}
}

func TestDWTSideChannelThroughImage(t *testing.T) {
	host := gradientImage(64, 64)
	wm := checkerBitmap(16, 16)

	marker, err := watermarklab.NewMarker(&watermarklab.DWTBandCodec{Strength: 20})
	require.NoError(t, err)

	marked, side, err := marker.Embed(host, wm)
	require.NoError(t, err)
	require.NotNil(t, side, "subband codec returns its reference coefficients")

	got, err := marker.Extract(marked, 16, 16, side)
	require.NoError(t, err)
	ber, err := evaluate.BER(wm, got)
	require.NoError(t, err)
	assert.Less(t, ber, 0.05)
}

func TestNewMarker_Validation(t *testing.T) {
	_, err := watermarklab.NewMarker(nil)
	assert.ErrorIs(t, err, watermarklab.ErrInvalidInput)

	_, err = watermarklab.NewMarker(&watermarklab.LSBCodec{}, watermarklab.WithChannel(watermarklab.Channel(9)))
	assert.ErrorIs(t, err, watermarklab.ErrInvalidInput)
}
