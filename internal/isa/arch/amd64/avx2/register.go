//go:build amd64 && !purego

// Package avx2 registers the 256-bit x86 backend whose float64 Add and Mul
// run on the algo-vecmath AVX2 kernels.
package avx2

import (
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

const registers = 16

func init() {
	bytes := cpu.SIMDAVX2.RegisterBytes()
	registry.Global.Register(registry.Entry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Float32:   isa.ForRegister[float32]("avx2", bytes, registers, true),
		Float64:   isa.WithVecmath(isa.ForRegister[float64]("avx2", bytes, registers, true)),
	})
}
