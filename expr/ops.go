package expr

import "github.com/cwbudde/algo-expr/internal/isa"

func binary[T isa.Float](tag Tag, a, b *Node[T]) *Node[T] {
	return &Node[T]{tag: tag, left: a, right: b}
}

func unary[T isa.Float](tag Tag, a *Node[T]) *Node[T] {
	return &Node[T]{tag: tag, left: a}
}

// Add is a + b.
func Add[T isa.Float](a, b Expr[T]) *Node[T] { return binary(TagAdd, a.node(), b.node()) }

// AddScalar is a + s.
func AddScalar[T isa.Float](a Expr[T], s T) *Node[T] { return binary(TagAdd, a.node(), scalarLeaf(s)) }

// ScalarAdd is s + b.
func ScalarAdd[T isa.Float](s T, b Expr[T]) *Node[T] { return binary(TagAdd, scalarLeaf(s), b.node()) }

// Sub is a - b.
func Sub[T isa.Float](a, b Expr[T]) *Node[T] { return binary(TagSub, a.node(), b.node()) }

// SubScalar is a - s.
func SubScalar[T isa.Float](a Expr[T], s T) *Node[T] { return binary(TagSub, a.node(), scalarLeaf(s)) }

// ScalarSub is s - b.
func ScalarSub[T isa.Float](s T, b Expr[T]) *Node[T] { return binary(TagSub, scalarLeaf(s), b.node()) }

// Mul is a * b.
func Mul[T isa.Float](a, b Expr[T]) *Node[T] { return binary(TagMul, a.node(), b.node()) }

// MulScalar is a * s.
func MulScalar[T isa.Float](a Expr[T], s T) *Node[T] { return binary(TagMul, a.node(), scalarLeaf(s)) }

// ScalarMul is s * b.
func ScalarMul[T isa.Float](s T, b Expr[T]) *Node[T] { return binary(TagMul, scalarLeaf(s), b.node()) }

// Div is a / b.
func Div[T isa.Float](a, b Expr[T]) *Node[T] { return binary(TagDiv, a.node(), b.node()) }

// DivScalar is a / s.
func DivScalar[T isa.Float](a Expr[T], s T) *Node[T] { return binary(TagDiv, a.node(), scalarLeaf(s)) }

// ScalarDiv is s / b.
func ScalarDiv[T isa.Float](s T, b Expr[T]) *Node[T] { return binary(TagDiv, scalarLeaf(s), b.node()) }

// Min is the elementwise minimum of a and b.
func Min[T isa.Float](a, b Expr[T]) *Node[T] { return binary(TagMin, a.node(), b.node()) }

// MinScalar is min(a, s).
func MinScalar[T isa.Float](a Expr[T], s T) *Node[T] { return binary(TagMin, a.node(), scalarLeaf(s)) }

// ScalarMin is min(s, b).
func ScalarMin[T isa.Float](s T, b Expr[T]) *Node[T] { return binary(TagMin, scalarLeaf(s), b.node()) }

// Max is the elementwise maximum of a and b.
func Max[T isa.Float](a, b Expr[T]) *Node[T] { return binary(TagMax, a.node(), b.node()) }

// MaxScalar is max(a, s).
func MaxScalar[T isa.Float](a Expr[T], s T) *Node[T] { return binary(TagMax, a.node(), scalarLeaf(s)) }

// ScalarMax is max(s, b).
func ScalarMax[T isa.Float](s T, b Expr[T]) *Node[T] { return binary(TagMax, scalarLeaf(s), b.node()) }

// Sqrt is the elementwise square root.
func Sqrt[T isa.Float](a Expr[T]) *Node[T] { return unary(TagSqrt, a.node()) }

// Rsqrt is 1/sqrt(a), approximate on vector backends.
func Rsqrt[T isa.Float](a Expr[T]) *Node[T] { return unary(TagRsqrt, a.node()) }

// Rcp is 1/a.
func Rcp[T isa.Float](a Expr[T]) *Node[T] { return unary(TagRcp, a.node()) }

// Store builds the root that writes src into dst. dst must hold at least as
// many elements as the execution covers.
func Store[T isa.Float](dst []T, src Expr[T]) *Node[T] {
	return &Node[T]{tag: TagStore, data: dst, left: src.node()}
}

// StoreScalar builds the root that broadcasts v into dst.
func StoreScalar[T isa.Float](dst []T, v T) *Node[T] {
	return &Node[T]{tag: TagStore, data: dst, left: scalarLeaf(v)}
}
