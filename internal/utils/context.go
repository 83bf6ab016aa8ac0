// Package utils provides general-purpose helper utilities
// used across different parts of the messagely server.
// Includes tools for working with context, JSON response writing,
// HTTP client initialization, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated username is
// stored in the request context.
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, "alice")
var PrincipalCtxKey = contextKey("principal")

// TraceIDCtxKey is the key under which the request trace ID is stored.
var TraceIDCtxKey = contextKey("traceID")

// WithPrincipal returns a copy of ctx carrying the authenticated username.
func WithPrincipal(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, username)
}

// GetPrincipalFromContext retrieves the authenticated username from the context.
//
// ok is false when the value is missing, empty or has an unexpected type.
func GetPrincipalFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(PrincipalCtxKey).(string)
	return username, ok && username != ""
}

// GetTraceIDFromContext returns the trace ID attached by the tracing
// middleware, or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
