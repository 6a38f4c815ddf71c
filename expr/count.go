package expr

import "github.com/cwbudde/algo-expr/internal/isa"

// Stats is the structural cost of an expression tree. It depends only on
// the shape of the tree, never on array lengths.
type Stats struct {
	// Loads counts array leaves. An array referenced twice counts twice.
	Loads int
	// Stores counts store nodes.
	Stores int
	// Operations counts arithmetic nodes.
	Operations int
	// Immediates counts scalar leaves.
	Immediates int
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Loads:      s.Loads + o.Loads,
		Stores:     s.Stores + o.Stores,
		Operations: s.Operations + o.Operations,
		Immediates: s.Immediates + o.Immediates,
	}
}

// Count returns the structural cost of e.
func Count[T isa.Float](e Expr[T]) Stats {
	return count(e.node())
}

func count[T isa.Float](n *Node[T]) Stats {
	switch {
	case n.tag == TagArray:
		return Stats{Loads: 1}
	case n.tag == TagScalar:
		return Stats{Immediates: 1}
	case n.tag == TagStore:
		s := count(n.left)
		s.Stores++
		return s
	case n.tag.IsOperator() && n.tag.op().Unary():
		s := count(n.left)
		s.Operations++
		return s
	default:
		s := count(n.left).add(count(n.right))
		s.Operations++
		return s
	}
}

// UnrollFactor is the number of evaluator slots the register budget allows:
// registers divided by the loads of one slot, at least 1.
func UnrollFactor(s Stats, registers int) int {
	u := registers / max(s.Loads, 1)
	return max(u, 1)
}
