package attack

import (
	"bytes"
	"image"
	"image/png"
)

// PNGCycle performs max(1, 10-level) lossless encode/decode round trips.
// PNG itself is lossless; distortion accumulates only from the color-model
// conversions of each cycle, so higher levels mean fewer cycles and less
// drift. Any codec failure returns the image processed so far.
func PNGCycle(img image.Image, p Params) image.Image {
	level := clampInt(p.Level, 1, 9)
	cycles := 10 - level
	if cycles < 1 {
		cycles = 1
	}
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	out := img
	for range cycles {
		var buf bytes.Buffer
		if err := enc.Encode(&buf, out); err != nil {
			return out
		}
		decoded, err := png.Decode(&buf)
		if err != nil {
			return out
		}
		out = decoded
	}
	return out
}
