// Package watermarklab embeds, extracts and evaluates digital watermarks in
// raster images across four representation domains: spatial bit planes,
// block-frequency coefficient pairs, wavelet subbands and singular-value
// spectra. The attack subpackage deforms watermarked images with simulated
// degradations and the evaluate subpackage scores how well a watermark
// survived.
package watermarklab

import (
	"image"
)

// Marker runs a codec against one color channel of a whole image: the image
// is converted to YCbCr planes, the codec operates on the selected plane and
// the image is rebuilt. The zero channel is luma.
type Marker struct {
	codec   Codec
	channel Channel
}

// NewMarker wraps a codec for image-level embedding.
func NewMarker(codec Codec, opts ...MarkerOption) (*Marker, error) {
	if codec == nil {
		return nil, ErrInvalidInput
	}
	m := &Marker{codec: codec}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Codec returns the wrapped codec.
func (m *Marker) Codec() Codec { return m.codec }

// Channel returns the channel the codec operates on.
func (m *Marker) Channel() Channel { return m.channel }

// Embed hides wm in the selected channel of src. The returned SideChannel
// is nil for blind codecs and must be kept for the matching Extract call
// otherwise.
func (m *Marker) Embed(src image.Image, wm Bitmap) (image.Image, *SideChannel, error) {
	if src == nil {
		return nil, nil, ErrInvalidInput
	}
	core := newImageCore(src)
	marked, side, err := m.codec.Embed(core.plane(m.channel), wm)
	if err != nil {
		return nil, nil, err
	}
	core.setPlane(m.channel, marked)
	return core.build(), side, nil
}

// Extract recovers a w x h bitmap from the selected channel of src.
func (m *Marker) Extract(src image.Image, w, h int, side *SideChannel) (Bitmap, error) {
	if src == nil {
		return Bitmap{}, ErrInvalidInput
	}
	core := newImageCore(src)
	return m.codec.Extract(core.plane(m.channel), w, h, side)
}

// MarkerOption configures a Marker.
type MarkerOption func(*Marker) error

// WithChannel selects the YCbCr channel the codec operates on.
// The default is luma.
func WithChannel(ch Channel) MarkerOption {
	return func(m *Marker) error {
		switch ch {
		case ChannelY, ChannelCb, ChannelCr:
			m.channel = ch
			return nil
		}
		return ErrInvalidInput
	}
}
