package module

import (
	"slices"
	"sync"
	"testing"
)

type portSet struct {
	Name string
	ID   int
}

// registry tests share process state, so they run serially

func TestRegistry_RegisterAndPortsAs(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	want := portSet{Name: "languages", ID: 1}
	Register("languages", want)

	got, ok := PortsAs[portSet]("languages")
	if !ok || got != want {
		t.Fatalf("PortsAs = %v,%v want %v,true", got, ok, want)
	}

	if _, ok := PortsAs[portSet]("missing"); ok {
		t.Fatal("expected ok=false for missing name")
	}
	if _, ok := PortsAs[int]("languages"); ok {
		t.Fatal("expected ok=false for type mismatch")
	}
}

func TestRegistry_OverwriteAndNames(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("text", portSet{Name: "a", ID: 1})
	Register("text", portSet{Name: "b", ID: 2})
	Register("meta", nil)
	Register("languages", nil)

	got, _ := PortsAs[portSet]("text")
	if got.Name != "b" {
		t.Fatalf("expected overwritten value got=%v", got)
	}
	if names := Names(); !slices.Equal(names, []string{"languages", "meta", "text"}) {
		t.Fatalf("Names = %v", names)
	}

	Reset()
	if len(Names()) != 0 {
		t.Fatal("expected empty registry after Reset")
	}
}

func TestRegistry_ConcurrentRegisterAndRead(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			Register("concurrent", portSet{Name: "k", ID: i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = PortsAs[portSet]("concurrent")
			_ = Names()
		}
	}()
	wg.Wait()

	got, ok := PortsAs[portSet]("concurrent")
	if !ok || got.ID != n-1 {
		t.Fatalf("unexpected final value got=%v", got)
	}
}
