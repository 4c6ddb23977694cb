package middleware

import "net/http"

// BodyLimit caps mutating request bodies at maxBytes (MAX_BODY_BYTES,
// default 1 MiB). Card and expense payloads are a few hundred bytes, so
// anything near the cap is abuse, not data.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
