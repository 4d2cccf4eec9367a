package cache

import (
	"strings"
)

// ImageExt is the file extension of cached card images. The card-data service
// serves JPEGs; the decoder sniffs the real format regardless.
const ImageExt = ".jpg"

// maxKeyLength keeps generated file names well below the 255-byte limit of
// common filesystems.
const maxKeyLength = 128

// Keyer maps logical names to cache keys.
type Keyer interface {
	// ImageKey returns the cache key for a card's image.
	ImageKey(card string) string
}

// DefaultKeyer produces file-name-safe keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer with the standard normalization.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

var keyReplacer = strings.NewReplacer(
	" ", "_",
	"/", "_",
	`\`, "_",
)

// ImageKey lowercases the card name, replaces spaces (and path separators)
// with underscores and appends [ImageExt].
//
//	"Dark Magician"          → "dark_magician.jpg"
//	"D/D/D Wave King Caesar" → "d_d_d_wave_king_caesar.jpg"
//
// Names longer than the key limit are truncated and suffixed with a hash of
// the full name so distinct cards never share a file.
func (DefaultKeyer) ImageKey(card string) string {
	name := keyReplacer.Replace(strings.ToLower(card))
	if len(name) > maxKeyLength {
		name = name[:maxKeyLength-17] + "_" + Hash([]byte(card))[:16]
	}
	return name + ImageExt
}
