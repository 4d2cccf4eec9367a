package errors

import (
	"strings"
	"unicode"
)

// maxCardNameLength bounds card names accepted from deck files.
const maxCardNameLength = 256

// ValidateCardName validates a card name before it is used as a lookup
// query and as the basis of a cache file name.
//
// The validation rules are:
//   - No empty or whitespace-only names
//   - Maximum length of 256 characters
//   - No control characters or null bytes
//   - No path traversal sequences (..)
//
// Slashes are allowed ("D/D/D Wave King Caesar" is a real card); the cache
// key normalization replaces them.
func ValidateCardName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "card name cannot be empty")
	}

	if len(name) > maxCardNameLength {
		return New(ErrCodeInvalidInput, "card name too long (max %d characters)", maxCardNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "card name contains invalid control characters")
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "card name contains invalid characters: %q", "..")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
