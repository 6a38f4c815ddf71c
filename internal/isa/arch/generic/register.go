// Package generic registers the pure Go width-1 backend. It is the
// fallback on every architecture and the only backend under the purego
// build tag or when SIMD is disabled by configuration.
package generic

import (
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

const (
	alignment = 16
	registers = 8
)

func init() {
	registry.Global.Register(registry.Entry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Float32:   isa.NewLanes[float32]("generic", 1, alignment, registers, false),
		Float64:   isa.NewLanes[float64]("generic", 1, alignment, registers, false),
	})
}
