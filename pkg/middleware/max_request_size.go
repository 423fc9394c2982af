package middleware

import (
	"net/http"
)

// MaxRequestSize caps request bodies at maxBytes. Nothing is rejected here:
// reads past the cap fail with *http.MaxBytesError, which httputil.DecodeJSON
// reports as a 413. Handlers that never read the body, like a token check
// that fails first, answer as if no cap existed.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
