// Package asset resolves card names to decoded images and prepares them as
// wedge fills.
//
// # Resolution
//
// A [Provider] turns a card name into an [Asset] with a cache-or-fetch
// policy:
//
//  1. The name is normalized into a cache key ("Dark Magician" →
//     "dark_magician.jpg") by a [cache.Keyer].
//  2. If the cache holds bytes for the key they are decoded and returned.
//     There is no staleness check.
//  3. Otherwise the card-data service is asked for the card's image URL, the
//     image is downloaded, stored under the key, decoded and returned.
//
// Each key is fetched at most once per Provider: decoded assets are memoized
// and concurrent resolves of the same key share one fetch.
//
// # Cropping
//
// Card scans carry a frame, name bar and effect text around the artwork.
// [Crop] cuts the fixed rectangle [CropRect] (rows 110–400, columns 45–375)
// out of a card image, leaving just the artwork. The rectangle is a constant;
// an image too small to contain it is an INVALID_ASSET_DIMENSIONS error.
//
// [cache.Keyer]: github.com/matzehuels/cardpie/pkg/cache.Keyer
package asset
