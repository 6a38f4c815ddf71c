//go:build arm64 && !purego

// Package neon registers the 128-bit ARM backend. Float64 Add and Mul run
// on the algo-vecmath NEON kernels.
package neon

import (
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

// AArch64 has 32 vector registers.
const registers = 32

func init() {
	bytes := cpu.SIMDNEON.RegisterBytes()
	registry.Global.Register(registry.Entry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Float32:   isa.ForRegister[float32]("neon", bytes, registers, true),
		Float64:   isa.WithVecmath(isa.ForRegister[float64]("neon", bytes, registers, true)),
	})
}
