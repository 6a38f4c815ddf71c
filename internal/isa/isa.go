// Package isa describes the instruction sets the expression evaluator runs on.
//
// A Model is a value-less descriptor of one register width for one element
// type: how many lanes fit in a register, what alignment loads and stores
// need, how many registers the cost model may assume, and the primitive
// operations (broadcast, load, store, unary and binary arithmetic).
//
// A pack is the contents of one register. Go has no portable vector types,
// so a pack is a []T of exactly PackSize elements owned by the evaluator;
// every primitive reads and writes packs in place and never allocates.
//
// Two models are in play for every execution: the vector model selected
// from the registry for the running CPU, and the scalar model (PackSize 1)
// used for the remainder that does not fill a whole register.
package isa

import (
	"errors"
	"fmt"
	"unsafe"
)

// Float is the set of element types the models operate on.
type Float interface {
	float32 | float64
}

// Op is an arithmetic primitive.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMin
	OpMax
	OpSqrt
	OpRsqrt
	OpRcp

	numOps
)

var opNames = [numOps]string{
	OpAdd:   "add",
	OpSub:   "sub",
	OpMul:   "mul",
	OpDiv:   "div",
	OpMin:   "min",
	OpMax:   "max",
	OpSqrt:  "sqrt",
	OpRsqrt: "rsqrt",
	OpRcp:   "rcp",
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// Unary reports whether op takes a single operand.
func (op Op) Unary() bool {
	return op == OpSqrt || op == OpRsqrt || op == OpRcp
}

// Model is one instruction-set width tier for element type T.
//
// Load, Store and Stream move exactly PackSize elements starting at element
// offset off. Unary and Binary write PackSize results into dst; dst never
// aliases an input in the evaluator but implementations must not rely on it.
type Model[T Float] interface {
	Name() string
	PackSize() int
	Alignment() int
	Registers() int

	// Approximate reports whether Rsqrt trades precision for speed.
	Approximate() bool

	Set(dst []T, v T)
	Load(dst, src []T, off int)
	Store(dst []T, off int, v []T)
	Stream(dst []T, off int, v []T)

	Unary(op Op, dst, a []T)
	Binary(op Op, dst, a, b []T)
}

// ErrInvalidModel is returned by Check.
var ErrInvalidModel = errors.New("isa: invalid model")

// Check validates the structural invariants of a model: positive pack size
// and register count, and a pack byte width that divides the alignment.
func Check[T Float](m Model[T]) error {
	if m == nil {
		return fmt.Errorf("%w: nil", ErrInvalidModel)
	}
	if m.PackSize() < 1 {
		return fmt.Errorf("%w: %s pack size %d", ErrInvalidModel, m.Name(), m.PackSize())
	}
	if m.Registers() < 1 {
		return fmt.Errorf("%w: %s register count %d", ErrInvalidModel, m.Name(), m.Registers())
	}
	packBytes := m.PackSize() * SizeOf[T]()
	if m.Alignment() < packBytes || m.Alignment()%packBytes != 0 {
		return fmt.Errorf("%w: %s pack of %d bytes does not divide alignment %d",
			ErrInvalidModel, m.Name(), packBytes, m.Alignment())
	}
	return nil
}

// SizeOf returns the size of T in bytes.
func SizeOf[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// LanesFor returns how many T fit in a register of the given byte width.
func LanesFor[T Float](registerBytes int) int {
	n := registerBytes / SizeOf[T]()
	if n < 1 {
		return 1
	}
	return n
}
