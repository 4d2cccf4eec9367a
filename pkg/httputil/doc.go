// Package httputil provides HTTP helpers shared by the lookup clients.
//
// # Retry
//
// [Retry] wraps an operation with retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses (honoring Retry-After)
//
// Only errors wrapped with [RetryableError] are retried. Everything else,
// including "card not found", is returned on the first attempt:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return client.Get(ctx, url, &v)
//	})
//
// cardpie runs with a single attempt by default; the deck file's "retries"
// setting raises it.
package httputil
