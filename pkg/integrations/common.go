package integrations

import (
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/cardpie/pkg/buildinfo"
	perrors "github.com/matzehuels/cardpie/pkg/errors"
)

const httpTimeout = 10 * time.Second

// maxBodySize caps response bodies; card images are well under 1 MiB.
const maxBodySize = 20 << 20

// UserAgent identifies cardpie and its version to the services it calls.
var UserAgent = buildinfo.UserAgent()

var (
	// ErrNotFound is returned when a resource doesn't exist on the remote service.
	ErrNotFound = perrors.New(perrors.ErrCodeNotFound, "resource not found")

	// ErrBadRequest is returned when the service rejects the query (HTTP 400).
	// Some services use it for "no results".
	ErrBadRequest = perrors.New(perrors.ErrCodeInvalidInput, "bad request")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = perrors.New(perrors.ErrCodeNetwork, "network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
