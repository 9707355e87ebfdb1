package testkit

import (
	"os"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {
		// no panic
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "alpha beta gamma"
	MustContain(t, haystack, "beta")
	MustNotContain(t, haystack, "delta")
}

func TestTempFile(t *testing.T) {
	t.Parallel()

	p := TempFile(t, "x.toml", "top_k = 2\n")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "top_k = 2\n" {
		t.Fatalf("content = %q", b)
	}
}
