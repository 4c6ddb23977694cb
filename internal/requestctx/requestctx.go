// Package requestctx carries per-request identifiers through context. The
// request ID placed here by the middleware ends up in every log line and in
// the requestId field of the response envelope.
package requestctx

import "context"

type ctxKey string

const requestIDKey ctxKey = "request_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID set by WithRequestID, or "" for
// contexts outside the HTTP path (jobs, tests).
func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}
