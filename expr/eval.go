package expr

import "github.com/cwbudde/algo-expr/internal/isa"

// evaluator mirrors one Node for one model. It lives for a single
// execution and owns exactly one pack of working storage per node that
// produces a value.
type evaluator[T isa.Float] struct {
	node  *Node[T]
	model isa.Model[T]

	// pack is the node's register: the loaded, broadcast or computed value.
	pack []T
	// base is the array leaf's source or the store's destination, captured
	// by prepare.
	base []T
	// stream selects the non-temporal store primitive.
	stream bool

	left  *evaluator[T]
	right *evaluator[T]
}

func newEvaluator[T isa.Float](n *Node[T], m isa.Model[T], stream bool) *evaluator[T] {
	e := &evaluator[T]{node: n, model: m, stream: stream}
	if n.left != nil {
		e.left = newEvaluator(n.left, m, stream)
	}
	if n.right != nil {
		e.right = newEvaluator(n.right, m, stream)
	}
	if n.tag != TagStore {
		e.pack = make([]T, m.PackSize())
	}
	return e
}

// prepare runs once before the loop: array leaves remember their base,
// scalar leaves broadcast their immediate, stores remember the destination.
func (e *evaluator[T]) prepare() {
	switch e.node.tag {
	case TagArray:
		e.base = e.node.data
	case TagScalar:
		e.model.Set(e.pack, e.node.value)
	case TagStore:
		e.base = e.node.data
	}
	if e.left != nil {
		e.left.prepare()
	}
	if e.right != nil {
		e.right.prepare()
	}
}

// load reads one pack at off for every array leaf below e. It is the only
// place memory is read.
func (e *evaluator[T]) load(off int) {
	if e.node.tag == TagArray {
		e.model.Load(e.pack, e.base, off)
		return
	}
	if e.left != nil {
		e.left.load(off)
	}
	if e.right != nil {
		e.right.load(off)
	}
}

// evaluate computes the node's pack from the already loaded leaves and
// returns it. A store keeps its child's pack for the store phase.
func (e *evaluator[T]) evaluate(off int) []T {
	switch tag := e.node.tag; {
	case tag == TagStore:
		e.pack = e.left.evaluate(off)
		return e.pack
	case !tag.IsOperator():
		return e.pack
	case tag.op().Unary():
		e.model.Unary(tag.op(), e.pack, e.left.evaluate(off))
		return e.pack
	default:
		e.model.Binary(tag.op(), e.pack, e.left.evaluate(off), e.right.evaluate(off))
		return e.pack
	}
}

// store writes the pack of every store node at off. Children are stored
// first so that nested stores land before the enclosing one.
func (e *evaluator[T]) store(off int) {
	if e.left != nil {
		e.left.store(off)
	}
	if e.right != nil {
		e.right.store(off)
	}
	if e.node.tag != TagStore {
		return
	}
	if e.stream {
		e.model.Stream(e.base, off, e.pack)
	} else {
		e.model.Store(e.base, off, e.pack)
	}
}

// step runs the whole protocol for one offset.
func (e *evaluator[T]) step(off int) {
	e.load(off)
	e.evaluate(off)
	e.store(off)
}
