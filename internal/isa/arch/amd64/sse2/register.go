//go:build amd64 && !purego

// Package sse2 registers the 128-bit x86 backend. Its float64 Add and Mul
// go through algo-vecmath, which picks its own kernel for the running CPU.
package sse2

import (
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

// The cost model assumes the eight xmm registers of the 32-bit ABI, which
// leaves room for spills on amd64.
const registers = 8

func init() {
	bytes := cpu.SIMDSSE2.RegisterBytes()
	registry.Global.Register(registry.Entry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Float32:   isa.ForRegister[float32]("sse2", bytes, registers, true),
		Float64:   isa.WithVecmath(isa.ForRegister[float64]("sse2", bytes, registers, true)),
	})
}
