package generic

import (
	"testing"

	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

func TestGenericRegistered(t *testing.T) {
	e := registry.Global.LookupName("generic")
	if e == nil {
		t.Fatal("generic backend not registered")
	}
	if e.SIMDLevel != cpu.SIMDNone {
		t.Errorf("SIMDLevel = %v, want None", e.SIMDLevel)
	}
	if e.Float32.PackSize() != 1 || e.Float64.PackSize() != 1 {
		t.Errorf("pack sizes %d/%d, want 1/1", e.Float32.PackSize(), e.Float64.PackSize())
	}

	got := registry.Global.Lookup(cpu.Features{HasAVX2: true, ForceGeneric: true})
	if got == nil || got.Name != "generic" {
		t.Fatalf("Lookup with ForceGeneric = %#v", got)
	}
}
