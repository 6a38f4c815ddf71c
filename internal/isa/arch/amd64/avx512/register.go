//go:build amd64 && !purego

// Package avx512 registers the 512-bit x86 backend.
package avx512

import (
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

// AVX-512 doubles the register file to 32 zmm registers.
const registers = 32

func init() {
	bytes := cpu.SIMDAVX512.RegisterBytes()
	registry.Global.Register(registry.Entry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,
		Float32:   isa.ForRegister[float32]("avx512", bytes, registers, true),
		Float64:   isa.WithVecmath(isa.ForRegister[float64]("avx512", bytes, registers, true)),
	})
}
