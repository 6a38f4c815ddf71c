package expr

import "github.com/cwbudde/algo-expr/internal/isa"

// tier is one implemented unrolling shape.
//
// The main loop walks blocks of block packs. Each block is processed in
// groups of len(slots) packs: every slot loads, then every slot evaluates,
// then every slot stores. The tail loop repeats the pattern with blocks of
// tail packs and the first tail slots, before the single-pack loop.
type tier struct {
	slots int
	block int
	tail  int
}

var tiers = [...]tier{
	{slots: 1, block: 1, tail: 0},
	{slots: 2, block: 8, tail: 2},
	{slots: 4, block: 16, tail: 4},
	{slots: 8, block: 16, tail: 4},
}

// tierFor clamps an unroll factor to an implemented tier:
// 1, [2,4), [4,8) and [8,∞).
func tierFor(unroll int) tier {
	switch {
	case unroll >= 8:
		return tiers[3]
	case unroll >= 4:
		return tiers[2]
	case unroll >= 2:
		return tiers[1]
	default:
		return tiers[0]
	}
}

// split divides [0,n) among the loop phases of t for a given pack size.
// The phases are contiguous and in this order.
func (t tier) split(n, pack int) (blocked, tail, single, remainder int) {
	i := 0
	if t.slots > 1 {
		blocked = floorTo(n, t.block*pack)
		i = blocked
		tail = floorTo(n-i, t.tail*pack)
		i += tail
	}
	single = floorTo(n-i, pack)
	i += single
	remainder = n - i
	return blocked, tail, single, remainder
}

func floorTo(n, width int) int {
	return n - n%width
}

// sweep processes [from, to) in blocks of packs packs using the given
// slots. to-from must be a multiple of packs*pack and packs a multiple of
// len(slots).
func sweep[T isa.Float](slots []*evaluator[T], from, to, packs, pack int) {
	width := packs * pack
	for i := from; i < to; i += width {
		for g := 0; g < packs; g += len(slots) {
			base := i + g*pack
			for s, e := range slots {
				e.load(base + s*pack)
			}
			for s, e := range slots {
				e.evaluate(base + s*pack)
			}
			for s, e := range slots {
				e.store(base + s*pack)
			}
		}
	}
}

// run executes root over [0,n) with the vector model at tier t and the
// scalar model for the remainder.
func run[T isa.Float](root *Node[T], n int, vector, scalar isa.Model[T], t tier, stream bool) {
	if n <= 0 {
		return
	}

	pack := vector.PackSize()
	blocked, tail, single, remainder := t.split(n, pack)

	i := 0
	if blocked+tail+single > 0 {
		slots := make([]*evaluator[T], t.slots)
		for s := range slots {
			slots[s] = newEvaluator(root, vector, stream)
			slots[s].prepare()
		}

		if blocked > 0 {
			sweep(slots, i, i+blocked, t.block, pack)
			i += blocked
		}
		if tail > 0 {
			sweep(slots[:t.tail], i, i+tail, t.tail, pack)
			i += tail
		}
		if single > 0 {
			sweep(slots[:1], i, i+single, 1, pack)
			i += single
		}
	}

	if remainder > 0 {
		// A fresh prepare per element keeps each remainder step
		// independent of the previous one.
		e := newEvaluator(root, scalar, stream)
		for ; i < n; i++ {
			e.prepare()
			e.step(i)
		}
	}
}
