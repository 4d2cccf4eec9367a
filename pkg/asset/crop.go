package asset

import (
	"image"

	"github.com/disintegration/imaging"

	perrors "github.com/matzehuels/cardpie/pkg/errors"
)

// Artwork region of a card scan, in pixels from the top-left corner.
const (
	CropTop    = 110
	CropBottom = 400
	CropLeft   = 45
	CropRight  = 375
)

// CropRect is the artwork region of a card scan: rows [CropTop, CropBottom),
// columns [CropLeft, CropRight).
var CropRect = image.Rect(CropLeft, CropTop, CropRight, CropBottom)

// Crop returns a new Asset holding only the artwork region of a. The result
// has its origin at (0,0) and the size of [CropRect]. a is not modified.
//
// The rectangle is never clamped: an image smaller than CropRight×CropBottom
// fails with INVALID_ASSET_DIMENSIONS.
func Crop(a *Asset) (*Asset, error) {
	b := a.Bounds()
	r := CropRect.Add(b.Min)
	if !r.In(b) {
		return nil, perrors.New(perrors.ErrCodeInvalidAssetDimensions,
			"card image %s is %dx%d, need at least %dx%d to crop the artwork",
			a.Key, b.Dx(), b.Dy(), CropRight, CropBottom)
	}
	return &Asset{Key: a.Key, Image: imaging.Crop(a.Image, r)}, nil
}
