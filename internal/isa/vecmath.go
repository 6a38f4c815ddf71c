package isa

import (
	"github.com/cwbudde/algo-vecmath"
)

// vecmathModel routes float64 Add and Mul packs through the algo-vecmath
// block kernels, which carry hand-written AVX2 and NEON assembly. The other
// primitives stay on the lane loops.
type vecmathModel struct {
	*Lanes[float64]
}

// WithVecmath wraps a float64 lane model with the algo-vecmath kernels.
func WithVecmath(base *Lanes[float64]) Model[float64] {
	return vecmathModel{Lanes: base}
}

func (m vecmathModel) Binary(op Op, dst, a, b []float64) {
	n := m.pack
	switch op {
	case OpAdd:
		vecmath.AddBlock(dst[:n], a[:n], b[:n])
	case OpMul:
		vecmath.MulBlock(dst[:n], a[:n], b[:n])
	default:
		m.Lanes.Binary(op, dst, a, b)
	}
}

// Kernel names the implementation behind a model's Add and Mul packs:
// "algo-vecmath" for models wrapped by WithVecmath, "lanes" otherwise.
func Kernel[T Float](m Model[T]) string {
	if _, ok := any(m).(vecmathModel); ok {
		return "algo-vecmath"
	}
	return "lanes"
}
