// Package ygoprodeck provides a client for the YGOPRODeck card database API.
//
// The API is queried by card name and returns card records; each record lists
// one or more artworks under card_images. cardpie only needs the first
// artwork of the first record:
//
//	client := ygoprodeck.NewClient(0)
//	url, err := client.ImageURL(ctx, "Dark Magician")
//	data, err := client.Download(ctx, url)
//
// Any failure to produce a usable image URL (no results, missing fields,
// service errors) is reported as ASSET_UNAVAILABLE; the underlying cause is
// kept in the error chain for logging.
package ygoprodeck
