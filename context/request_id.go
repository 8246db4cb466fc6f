// Package context carries the per-request ID that ties one chat turn's
// log lines together.
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

// requestIDKey is unexported so the ID can only be set and read through
// this package; every consumer then agrees on the same key.
type requestIDKey struct{}

// NewRequestID generates a new unique request ID
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID adds a request ID to the context
func WithRequestID(parent stdctx.Context, requestID string) stdctx.Context {
	return stdctx.WithValue(parent, requestIDKey{}, requestID)
}

// RequestIDFromContext extracts the request ID from the context.
// A nil context or a context without an ID yields "".
func RequestIDFromContext(ctx stdctx.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}
