package asset

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// Asset is a decoded card image. Assets are never mutated after creation;
// [Crop] returns a new Asset.
type Asset struct {
	Key   string      // Cache key the image was resolved under
	Image image.Image // Decoded pixels
}

// Bounds returns the image bounds.
func (a *Asset) Bounds() image.Rectangle { return a.Image.Bounds() }

// Width returns the image width in pixels.
func (a *Asset) Width() int { return a.Image.Bounds().Dx() }

// Height returns the image height in pixels.
func (a *Asset) Height() int { return a.Image.Bounds().Dy() }

// Decode decodes image bytes (JPEG, PNG, GIF, BMP or TIFF) into an Asset.
func Decode(key string, data []byte) (*Asset, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return &Asset{Key: key, Image: img}, nil
}
