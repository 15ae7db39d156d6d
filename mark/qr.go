package mark

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	watermarklab "github.com/martinszuc/watermarklab"
)

// QR renders content as a size x size QR code bitmap. Light modules become
// set bits, dark modules cleared ones, matching the luma binarization used
// for image watermarks. The QR code's own redundancy makes the payload
// recoverable from a partially damaged extraction.
func QR(content string, size int) (watermarklab.Bitmap, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return watermarklab.Bitmap{}, fmt.Errorf("%w: %v", watermarklab.ErrInvalidInput, err)
	}
	return watermarklab.BitmapFromImage(q.Image(size))
}
