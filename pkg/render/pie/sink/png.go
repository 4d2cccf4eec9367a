package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// RenderPNG crops img to bounds and encodes the result as PNG. An empty
// bounds, or one that does not overlap img, encodes the whole image.
func RenderPNG(img image.Image, bounds image.Rectangle) ([]byte, error) {
	if r := bounds.Intersect(img.Bounds()); !r.Empty() && r != img.Bounds() {
		img = imaging.Crop(img, r)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
