package expr

import (
	"testing"

	"github.com/cwbudde/algo-expr/internal/config"
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

// forEachEngine runs fn once per registered backend. Every backend model
// is pure Go at its core, so all of them run on any processor.
func forEachEngine[T isa.Float](t *testing.T, fn func(t *testing.T, e *Engine[T]), opts ...Option) {
	t.Helper()
	entries := registry.Global.ListEntries()
	if len(entries) == 0 {
		t.Fatal("no backends registered")
	}
	for _, entry := range entries {
		t.Run(entry.Name, func(t *testing.T) {
			e, err := NewEngine[T](append([]Option{WithBackend(entry.Name)}, opts...)...)
			if err != nil {
				t.Fatalf("NewEngine(%s): %v", entry.Name, err)
			}
			fn(t, e)
		})
	}
}

// newArray allocates an n element array for e, filled from vals if given.
func newArray[T isa.Float](t *testing.T, e *Engine[T], n int, vals ...T) *Array[T] {
	t.Helper()
	a, err := New[T](n, WithBackend(e.Backend()))
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	copy(a.Data(), vals)
	return a
}

func filled[T isa.Float](t *testing.T, e *Engine[T], n int, v T) *Array[T] {
	t.Helper()
	a, err := NewFilled[T](n, v, WithBackend(e.Backend()))
	if err != nil {
		t.Fatalf("NewFilled(%d): %v", n, err)
	}
	return a
}

// isolate gives a test its own configuration and CPU features and drops
// cached default engines before and after.
func isolate(t *testing.T, cfg *config.Config, features *cpu.Features) {
	t.Helper()
	if cfg != nil {
		config.Set(*cfg)
	}
	if features != nil {
		cpu.SetForcedFeatures(*features)
	}
	resetDefaults()
	t.Cleanup(func() {
		config.Reset()
		cpu.ResetDetection()
		resetDefaults()
	})
}

// lengths returns the interesting lengths around pack boundaries.
func lengths(pack int) []int {
	return []int{0, 1, pack - 1, pack, pack + 1, 2*pack + 1, pack*16*3 + pack - 1, 1000}
}
