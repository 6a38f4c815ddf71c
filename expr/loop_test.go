package expr

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/testutil"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		unroll int
		want   tier
	}{
		{0, tier{1, 1, 0}},
		{1, tier{1, 1, 0}},
		{2, tier{2, 8, 2}},
		{3, tier{2, 8, 2}},
		{4, tier{4, 16, 4}},
		{7, tier{4, 16, 4}},
		{8, tier{8, 16, 4}},
		{32, tier{8, 16, 4}},
	}

	for _, tt := range tests {
		if got := tierFor(tt.unroll); got != tt.want {
			t.Errorf("tierFor(%d) = %+v, want %+v", tt.unroll, got, tt.want)
		}
	}
}

func TestTierSplit(t *testing.T) {
	tests := []struct {
		tier                             tier
		n, pack                          int
		blocked, tail, single, remainder int
	}{
		{tiers[0], 10, 4, 0, 0, 8, 2},
		{tiers[0], 3, 4, 0, 0, 0, 3},
		{tiers[1], 100, 4, 96, 0, 4, 0},
		{tiers[1], 45, 4, 32, 8, 4, 1},
		{tiers[2], 45, 4, 0, 32, 12, 1},
		{tiers[3], 200, 4, 192, 0, 8, 0},
		{tiers[3], 10, 1, 0, 8, 2, 0},
		{tiers[2], 0, 8, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		b, ta, s, r := tt.tier.split(tt.n, tt.pack)
		if b != tt.blocked || ta != tt.tail || s != tt.single || r != tt.remainder {
			t.Errorf("%+v.split(%d, %d) = %d,%d,%d,%d, want %d,%d,%d,%d",
				tt.tier, tt.n, tt.pack, b, ta, s, r, tt.blocked, tt.tail, tt.single, tt.remainder)
		}
	}
}

// TestRunPackSizes drives the loop with models of explicit pack sizes and
// checks the fused result against a plain loop for every tier.
func TestRunPackSizes(t *testing.T) {
	scalar := isa.Scalar[float64]()

	for _, pack := range []int{1, 2, 4, 8, 16} {
		vector := isa.NewLanes[float64](fmt.Sprintf("p%d", pack), pack, pack*8, 16, false)
		for _, t0 := range tiers {
			for _, n := range lengths(pack) {
				name := fmt.Sprintf("pack=%d/slots=%d/n=%d", pack, t0.slots, n)
				t.Run(name, func(t *testing.T) {
					x := testutil.Noise[float64](1, -10, 10, n)
					y := testutil.Noise[float64](2, -10, 10, n)
					want := testutil.Map(y, func(i int, v float64) float64 {
						return v + float64(2.5*x[i])
					})

					root := Store(y, Add[float64](arrayLeaf(y), ScalarMul[float64](2.5, arrayLeaf(x))))
					run(root, n, vector, scalar, t0, false)
					testutil.RequireEqual(t, y, want)
				})
			}
		}
	}
}

// TestRunVisitsEachElementOnce increments every element by one; any element
// visited twice or skipped shows up as a value other than one.
func TestRunVisitsEachElementOnce(t *testing.T) {
	scalar := isa.Scalar[float32]()
	vector := isa.NewLanes[float32]("p4", 4, 16, 8, false)

	for _, stream := range []bool{false, true} {
		for _, t0 := range tiers {
			for n := 0; n <= 300; n += 7 {
				y := make([]float32, n)
				run(Store(y, AddScalar[float32](arrayLeaf(y), 1)), n, vector, scalar, t0, stream)
				for i, v := range y {
					if v != 1 {
						t.Fatalf("stream=%v slots=%d n=%d: y[%d] = %v, want 1", stream, t0.slots, n, i, v)
					}
				}
			}
		}
	}
}

func TestRunLeavesTailUntouched(t *testing.T) {
	vector := isa.NewLanes[float64]("p8", 8, 64, 16, false)
	y := testutil.Constant(-1.0, 40)
	run(StoreScalar(y, 7), 33, vector, isa.Scalar[float64](), tiers[3], false)

	for i, v := range y {
		want := 7.0
		if i >= 33 {
			want = -1
		}
		if v != want {
			t.Fatalf("y[%d] = %v, want %v", i, v, want)
		}
	}
}
