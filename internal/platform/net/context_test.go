package net_test

import (
	"context"
	"testing"

	pnet "linguaforge/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets both ids", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123", "key-ops")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.Client(ctx); got != "key-ops" {
			t.Fatalf("Client got %q want %q", got, "key-ops")
		}
	})

	t.Run("sets only request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "r-only", "")

		if got := pnet.RequestID(ctx); got != "r-only" {
			t.Fatalf("RequestID got %q want %q", got, "r-only")
		}
		if got := pnet.Client(ctx); got != "" {
			t.Fatalf("Client got %q want empty", got)
		}
	})

	t.Run("sets only client", func(t *testing.T) {
		ctx := pnet.WithClient(base, "c-only")

		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.Client(ctx); got != "c-only" {
			t.Fatalf("Client got %q want %q", got, "c-only")
		}
	})

	t.Run("no ids returns same ctx and empty getters", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")

		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both ids empty")
		}
		if pnet.RequestID(ctx) != "" || pnet.Client(ctx) != "" {
			t.Fatalf("expected empty getters")
		}
	})
}
