package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

const (
	imageBound  = 500
	jpegQuality = 90
)

// BoundImage applies the fixed upload transformation: proportionally
// limited to 500x500, never cropped to fill and never upscaled, then
// re-encoded as JPEG.
func BoundImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	bounded := resize.Thumbnail(imageBound, imageBound, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, bounded, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
