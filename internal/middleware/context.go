package middleware

import "context"

type (
	requestIDKey struct{}
	htmxKey      struct{}
)

// WithRequestID stores the request id for error responses.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(requestIDKey{}).(string)
	return v, ok
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	_, ok := HTMXFrom(ctx)
	return ok
}

func withHTMXRequest(ctx context.Context, req HTMXRequest) context.Context {
	return context.WithValue(ctx, htmxKey{}, req)
}

// HTMXFrom returns the htmx headers of the request; ok is false for plain
// browser requests.
func HTMXFrom(ctx context.Context) (HTMXRequest, bool) {
	v, ok := ctx.Value(htmxKey{}).(HTMXRequest)
	return v, ok
}
