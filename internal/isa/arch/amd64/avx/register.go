//go:build amd64 && !purego

// Package avx registers the 256-bit x86 backend for CPUs with AVX but
// without AVX2.
package avx

import (
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

const registers = 16

func init() {
	bytes := cpu.SIMDAVX.RegisterBytes()
	registry.Global.Register(registry.Entry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  15,
		Float32:   isa.ForRegister[float32]("avx", bytes, registers, true),
		Float64:   isa.WithVecmath(isa.ForRegister[float64]("avx", bytes, registers, true)),
	})
}
