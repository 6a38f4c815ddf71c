package isa

import (
	"fmt"
	"math"
)

// Lanes is a Model implemented with plain Go loops over the lanes of a
// pack. Backends embed it and override the primitives they have faster
// kernels for.
type Lanes[T Float] struct {
	name      string
	pack      int
	alignment int
	registers int
	approx    bool
}

// NewLanes returns a lane model. It panics if the parameters violate the
// invariants enforced by Check, since backends are built at init time.
func NewLanes[T Float](name string, packSize, alignment, registers int, approx bool) *Lanes[T] {
	m := &Lanes[T]{
		name:      name,
		pack:      packSize,
		alignment: alignment,
		registers: registers,
		approx:    approx,
	}
	if err := Check[T](m); err != nil {
		panic(err)
	}
	return m
}

// ForRegister returns a lane model filling a register of registerBytes,
// aligned to the register width.
func ForRegister[T Float](name string, registerBytes, registers int, approx bool) *Lanes[T] {
	return NewLanes[T](name, LanesFor[T](registerBytes), registerBytes, registers, approx)
}

func (m *Lanes[T]) Name() string      { return m.name }
func (m *Lanes[T]) PackSize() int     { return m.pack }
func (m *Lanes[T]) Alignment() int    { return m.alignment }
func (m *Lanes[T]) Registers() int    { return m.registers }
func (m *Lanes[T]) Approximate() bool { return m.approx }

// Set broadcasts v into every lane of dst.
func (m *Lanes[T]) Set(dst []T, v T) {
	dst = dst[:m.pack]
	for i := range dst {
		dst[i] = v
	}
}

// Load copies the pack at src[off:] into dst.
func (m *Lanes[T]) Load(dst, src []T, off int) {
	copy(dst[:m.pack], src[off:off+m.pack])
}

// Store writes v into dst[off:].
func (m *Lanes[T]) Store(dst []T, off int, v []T) {
	copy(dst[off:off+m.pack], v[:m.pack])
}

// Stream has the observable effect of Store. Go cannot emit non-temporal
// hints, so the write goes through the cache like any other.
func (m *Lanes[T]) Stream(dst []T, off int, v []T) {
	copy(dst[off:off+m.pack], v[:m.pack])
}

// Unary applies a single-operand primitive lane by lane.
func (m *Lanes[T]) Unary(op Op, dst, a []T) {
	dst = dst[:m.pack]
	a = a[:len(dst)]

	switch op {
	case OpSqrt:
		for i := range dst {
			dst[i] = T(math.Sqrt(float64(a[i])))
		}
	case OpRsqrt:
		if m.approx {
			for i := range dst {
				dst[i] = rsqrtApprox(a[i])
			}
			return
		}
		for i := range dst {
			dst[i] = 1 / T(math.Sqrt(float64(a[i])))
		}
	case OpRcp:
		for i := range dst {
			dst[i] = 1 / a[i]
		}
	default:
		panic(fmt.Sprintf("isa: %v is not a unary op", op))
	}
}

// Binary applies a two-operand primitive lane by lane.
//
// Min and Max return the second operand when the comparison is unordered,
// the same rule as the x86 minps/maxps instructions, on every model.
func (m *Lanes[T]) Binary(op Op, dst, a, b []T) {
	dst = dst[:m.pack]
	a = a[:len(dst)]
	b = b[:len(dst)]

	switch op {
	case OpAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case OpSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case OpMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case OpDiv:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	case OpMin:
		for i := range dst {
			dst[i] = MinLane(a[i], b[i])
		}
	case OpMax:
		for i := range dst {
			dst[i] = MaxLane(a[i], b[i])
		}
	default:
		panic(fmt.Sprintf("isa: %v is not a binary op", op))
	}
}

// MinLane is the single-lane Min rule shared by all models.
func MinLane[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// MaxLane is the single-lane Max rule shared by all models.
func MaxLane[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}
