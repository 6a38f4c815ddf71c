package expr

import (
	"fmt"
	"iter"

	"github.com/cwbudde/algo-expr/internal/isa"
)

// noCopy lets go vet flag copies of an Array value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array is a contiguous float array aligned for its Engine's vector model.
//
// Arrays are handled by pointer. Reading and writing single elements goes
// through At, Set, All and Data; whole-array arithmetic goes through the
// assignment methods, which fuse the right-hand side into one pass.
type Array[T isa.Float] struct {
	noCopy noCopy

	data   []T
	leaf   *Node[T]
	engine *Engine[T]
}

func engineFor[T isa.Float](opts []Option) (*Engine[T], error) {
	if len(opts) == 0 {
		return Default[T](), nil
	}
	return NewEngine[T](opts...)
}

// New allocates a zeroed array of n elements. Options select the Engine
// the array executes with; without options the shared default is used.
func New[T isa.Float](n int, opts ...Option) (*Array[T], error) {
	return NewFilled[T](n, 0, opts...)
}

// NewFilled allocates an array of n elements set to v.
func NewFilled[T isa.Float](n int, v T, opts ...Option) (*Array[T], error) {
	e, err := engineFor[T](opts)
	if err != nil {
		return nil, err
	}

	data, err := alignedSlice[T](n, e.Alignment())
	if err != nil {
		return nil, err
	}
	if v != 0 {
		for i := range data {
			data[i] = v
		}
	}
	return &Array[T]{data: data, leaf: arrayLeaf(data), engine: e}, nil
}

// Wrap adopts buf as the storage of an array without copying. It is the
// way to place an array in storage whose length is fixed by the caller.
//
// buf must start on the Engine's Alignment boundary, otherwise Wrap
// returns ErrMisaligned. Go only aligns a [N]T to the size of T, so a
// plain fixed-size array is not aligned in general: its placement depends
// on the allocator size class and differs between sizes and builds. For
// storage that is aligned for certain, view the Data of an array from New
// as a fixed-size array, e.g. (*[16]float32)(a.Data()), or wrap a
// sub-slice of an over-allocated buffer at an aligned offset.
func Wrap[T isa.Float](buf []T, opts ...Option) (*Array[T], error) {
	e, err := engineFor[T](opts)
	if err != nil {
		return nil, err
	}
	if off := misalignment(buf, e.Alignment()); off != 0 {
		return nil, fmt.Errorf("%w: %d bytes past a %d-byte boundary", ErrMisaligned, off, e.Alignment())
	}
	return &Array[T]{data: buf, leaf: arrayLeaf(buf), engine: e}, nil
}

// Must returns a or panics with err. It is meant for tests and examples
// with constant lengths.
func Must[T isa.Float](a *Array[T], err error) *Array[T] {
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Array[T]) node() *Node[T] { return a.leaf }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Data returns the aligned backing slice.
func (a *Array[T]) Data() []T { return a.data }

// At returns element i.
func (a *Array[T]) At(i int) T { return a.data[i] }

// Set stores v at element i.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// All iterates over index and value pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Engine returns the engine the array executes with.
func (a *Array[T]) Engine() *Engine[T] { return a.engine }

// Swap exchanges the storage and engines of a and b.
func (a *Array[T]) Swap(b *Array[T]) {
	a.data, b.data = b.data, a.data
	a.leaf, b.leaf = b.leaf, a.leaf
	a.engine, b.engine = b.engine, a.engine
}

func (a *Array[T]) exec(root *Node[T]) *Array[T] {
	a.engine.Execute(root, len(a.data))
	return a
}

// Assign evaluates src into a: a = src.
func (a *Array[T]) Assign(src Expr[T]) *Array[T] {
	return a.exec(Store(a.data, src))
}

// Fill sets every element to v: a = v.
func (a *Array[T]) Fill(v T) *Array[T] {
	return a.exec(StoreScalar(a.data, v))
}

// CopyFrom copies b into a: a = b.
func (a *Array[T]) CopyFrom(b *Array[T]) *Array[T] {
	return a.exec(Store[T](a.data, b))
}

// AddAssign is a += src.
func (a *Array[T]) AddAssign(src Expr[T]) *Array[T] {
	return a.exec(Store(a.data, Add[T](a, src)))
}

// SubAssign is a -= src.
func (a *Array[T]) SubAssign(src Expr[T]) *Array[T] {
	return a.exec(Store(a.data, Sub[T](a, src)))
}

// MulAssign is a *= src.
func (a *Array[T]) MulAssign(src Expr[T]) *Array[T] {
	return a.exec(Store(a.data, Mul[T](a, src)))
}

// DivAssign is a /= src.
func (a *Array[T]) DivAssign(src Expr[T]) *Array[T] {
	return a.exec(Store(a.data, Div[T](a, src)))
}

// AddAssignScalar is a += v.
func (a *Array[T]) AddAssignScalar(v T) *Array[T] {
	return a.exec(Store(a.data, AddScalar[T](a, v)))
}

// SubAssignScalar is a -= v.
func (a *Array[T]) SubAssignScalar(v T) *Array[T] {
	return a.exec(Store(a.data, SubScalar[T](a, v)))
}

// MulAssignScalar is a *= v.
func (a *Array[T]) MulAssignScalar(v T) *Array[T] {
	return a.exec(Store(a.data, MulScalar[T](a, v)))
}

// DivAssignScalar is a /= v.
func (a *Array[T]) DivAssignScalar(v T) *Array[T] {
	return a.exec(Store(a.data, DivScalar[T](a, v)))
}
