package expr

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-expr/internal/isa"
)

// Tag identifies what a Node does.
type Tag uint8

const (
	// TagArray is a leaf reading an array.
	TagArray Tag = iota
	// TagScalar is a leaf holding an immediate value.
	TagScalar

	// Arithmetic tags follow isa.Op order; see Tag.op.
	TagAdd
	TagSub
	TagMul
	TagDiv
	TagMin
	TagMax
	TagSqrt
	TagRsqrt
	TagRcp

	// TagStore writes its child into a destination.
	TagStore
)

var tagNames = [...]string{
	TagArray:  "array",
	TagScalar: "scalar",
	TagAdd:    "add",
	TagSub:    "sub",
	TagMul:    "mul",
	TagDiv:    "div",
	TagMin:    "min",
	TagMax:    "max",
	TagSqrt:   "sqrt",
	TagRsqrt:  "rsqrt",
	TagRcp:    "rcp",
	TagStore:  "store",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "tag(" + strconv.Itoa(int(t)) + ")"
}

// IsOperator reports whether t is an arithmetic operation.
func (t Tag) IsOperator() bool {
	return t >= TagAdd && t <= TagRcp
}

func (t Tag) op() isa.Op {
	return isa.Op(t - TagAdd)
}

var infix = map[Tag]string{
	TagAdd: "+",
	TagSub: "-",
	TagMul: "*",
	TagDiv: "/",
}

// Expr is a value with array semantics: an *Array or a *Node built from
// arrays. Scalars are not Exprs.
type Expr[T isa.Float] interface {
	node() *Node[T]
}

// Node is one immutable vertex of an expression tree.
//
// Nodes reference array storage, they never copy it. A tree is only
// meaningful while the arrays it references are alive and unchanged in
// length.
type Node[T isa.Float] struct {
	tag   Tag
	left  *Node[T]
	right *Node[T]

	// data is the source of an array leaf or the destination of a store.
	data []T

	// value is the immediate of a scalar leaf.
	value T
}

func (n *Node[T]) node() *Node[T] { return n }

// Tag returns the node's operation.
func (n *Node[T]) Tag() Tag { return n.tag }

func arrayLeaf[T isa.Float](data []T) *Node[T] {
	return &Node[T]{tag: TagArray, data: data}
}

func scalarLeaf[T isa.Float](v T) *Node[T] {
	return &Node[T]{tag: TagScalar, value: v}
}

// String renders the tree in infix form, e.g.
// "store(array[10], (array[10] + (3.14159 * array[10])))".
func (n *Node[T]) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node[T]) format(b *strings.Builder) {
	switch {
	case n.tag == TagArray:
		b.WriteString("array[")
		b.WriteString(strconv.Itoa(len(n.data)))
		b.WriteByte(']')
	case n.tag == TagScalar:
		b.WriteString(strconv.FormatFloat(float64(n.value), 'g', -1, isa.SizeOf[T]()*8))
	case n.tag == TagStore:
		b.WriteString("store(array[")
		b.WriteString(strconv.Itoa(len(n.data)))
		b.WriteString("], ")
		n.left.format(b)
		b.WriteByte(')')
	case infix[n.tag] != "":
		b.WriteByte('(')
		n.left.format(b)
		b.WriteByte(' ')
		b.WriteString(infix[n.tag])
		b.WriteByte(' ')
		n.right.format(b)
		b.WriteByte(')')
	case n.right != nil:
		b.WriteString(n.tag.String())
		b.WriteByte('(')
		n.left.format(b)
		b.WriteString(", ")
		n.right.format(b)
		b.WriteByte(')')
	default:
		b.WriteString(n.tag.String())
		b.WriteByte('(')
		n.left.format(b)
		b.WriteByte(')')
	}
}
