// Package httputil provides HTTP helpers for fetching alphabet catalogs.
//
// # Retry
//
// [Retry] re-runs an operation on transient failures with exponential
// backoff. Only errors wrapped in [RetryableError] are retried, so callers
// decide what is transient:
//
//   - Transport errors (connection refused, timeouts)
//   - 5xx server errors
//
// A 404 or a malformed catalog is returned immediately:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// # Status Checks
//
// [CheckStatus] maps an HTTP status code to nil, a retryable error, or a
// permanent error.
package httputil
