// Package requestcontext carries request-scoped values through
// context.Context so services can read them without importing net/http.
// Middleware writes them; tests set them directly with the With* helpers.
package requestcontext

import (
	"context"
	"time"
)

type key int

const (
	keyClientIP key = iota
	keyUserAgent
	keyClientAgent
	keyRequestID
	keyRequestTime
)

func lookup[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

func stringValue(ctx context.Context, k key) string {
	s, _ := lookup[string](ctx, k)
	return s
}

// ClientIP is the caller address resolved by the metadata middleware.
func ClientIP(ctx context.Context) string { return stringValue(ctx, keyClientIP) }

// UserAgent is the raw User-Agent header.
func UserAgent(ctx context.Context) string { return stringValue(ctx, keyUserAgent) }

// ClientAgent is the short "browser/version (os)" form of the User-Agent.
func ClientAgent(ctx context.Context) string { return stringValue(ctx, keyClientAgent) }

// RequestID returns "" outside an HTTP request.
func RequestID(ctx context.Context) string { return stringValue(ctx, keyRequestID) }

// Now returns the time pinned for this request, or the wall clock when
// nothing was pinned (background workers).
func Now(ctx context.Context) time.Time {
	if t, ok := lookup[time.Time](ctx, keyRequestTime); ok {
		return t
	}
	return time.Now()
}

func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	return context.WithValue(context.WithValue(ctx, keyClientIP, clientIP), keyUserAgent, userAgent)
}

func WithClientAgent(ctx context.Context, agent string) context.Context {
	return context.WithValue(ctx, keyClientAgent, agent)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, keyRequestTime, t)
}
