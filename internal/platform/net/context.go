// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyClient ctxKey = "client"

// WithRequest annotates context with the request id and the calling client
func WithRequest(ctx context.Context, reqID, client string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return WithClient(ctx, client)
}

// WithClient annotates context with the authenticated client (API key id)
func WithClient(ctx context.Context, client string) context.Context {
	if client != "" {
		ctx = context.WithValue(ctx, keyClient, client)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Client returns the client id on the context if present
func Client(ctx context.Context) string {
	if v, ok := ctx.Value(keyClient).(string); ok {
		return v
	}
	return ""
}
