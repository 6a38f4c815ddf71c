// Package registry keeps the instruction-set backends the evaluator can use.
//
// Each backend package registers one Entry from its init function. An entry
// bundles the float32 and float64 models of one SIMD tier. At runtime the
// expression engine asks Lookup for the highest-priority entry the detected
// CPU supports, or LookupName when configuration forces a backend.
package registry

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
)

// Entry is one registered backend.
type Entry struct {
	// Name identifies the backend ("generic", "sse2", "avx2", "neon", ...).
	Name string

	// SIMDLevel is the extension the backend's models need.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries, higher first. Suggested values:
	//   - generic: 0
	//   - SSE2: 10
	//   - AVX/NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	Float32 isa.Model[float32]
	Float64 isa.Model[float64]
}

// Validate checks that both models are present and structurally sound.
func (e Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("registry: entry without name")
	}
	if err := isa.Check(e.Float32); err != nil {
		return fmt.Errorf("registry: %s float32: %w", e.Name, err)
	}
	if err := isa.Check(e.Float64); err != nil {
		return fmt.Errorf("registry: %s float64: %w", e.Name, err)
	}
	return nil
}

// Model returns the entry's model for element type T.
func Model[T isa.Float](e *Entry) isa.Model[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(e.Float32).(isa.Model[T])
	default:
		return any(e.Float64).(isa.Model[T])
	}
}

// Registry stores backend entries.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool
}

// Global is the registry the arch packages register into.
var Global = &Registry{}

// Register adds an entry. It panics on an invalid entry or a duplicate
// name; both are programming errors caught at init time.
func (r *Registry) Register(entry Entry) {
	if err := entry.Validate(); err != nil {
		panic(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			panic(fmt.Sprintf("registry: duplicate backend %q", entry.Name))
		}
	}
	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil
// when nothing compatible is registered.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry called name regardless of CPU support, or
// nil. Forcing an unsupported backend is allowed: the models are pure Go
// and produce correct results on any processor.
func (r *Registry) LookupName(name string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *Registry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// sortByPriority orders entries by descending priority. Caller holds r.mu.
func (r *Registry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all entries sorted by priority.
func (r *Registry) ListEntries() []Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
