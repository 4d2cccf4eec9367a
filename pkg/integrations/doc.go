// Package integrations provides HTTP clients for the remote services cardpie
// talks to.
//
// The [Client] type provides shared HTTP functionality: default headers,
// request timeouts, status-code classification, response size limits and
// optional retry via [httputil.Retry]. Service-specific clients embed it:
//
//   - [ygoprodeck]: card lookup and image download from the YGOPRODeck API
//
// Status codes map onto sentinel errors:
//
//   - 404 → [ErrNotFound]
//   - 400 → [ErrBadRequest]
//   - 429 and 5xx → [ErrNetwork], wrapped as retryable
//   - other non-200 → [ErrNetwork]
//
// [ygoprodeck]: github.com/matzehuels/cardpie/pkg/integrations/ygoprodeck
// [httputil.Retry]: github.com/matzehuels/cardpie/pkg/httputil.Retry
package integrations
