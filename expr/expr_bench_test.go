package expr

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-expr/internal/testutil"
)

var benchSizes = []int{64, 1024, 16384}

func BenchmarkScaledAccumulate(b *testing.B) {
	for _, n := range benchSizes {
		x := Must(NewFilled[float32](n, 23))
		y := Must(NewFilled[float32](n, 42))
		src := ScalarMul[float32](3.14159, x)

		b.Run(fmt.Sprintf("fused/%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 4))
			for b.Loop() {
				y.AddAssign(src)
			}
		})

		b.Run(fmt.Sprintf("loop/%d", n), func(b *testing.B) {
			xs, ys := x.Data(), y.Data()
			b.SetBytes(int64(n * 4))
			for b.Loop() {
				for i := range ys {
					ys[i] += 3.14159 * xs[i]
				}
			}
		})
	}
}

func BenchmarkBackends(b *testing.B) {
	const n = 4096
	xs := testutil.Noise[float64](1, 1, 2, n)
	ys := testutil.Noise[float64](2, 1, 2, n)

	for _, name := range []string{"generic", "sse2", "avx", "avx2", "avx512", "neon"} {
		e, err := NewEngine[float64](WithBackend(name))
		if err != nil {
			continue
		}
		dst := make([]float64, n)
		root := Store(dst, Add[float64](Mul[float64](arrayLeaf(xs), arrayLeaf(ys)), Sqrt[float64](arrayLeaf(xs))))

		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				e.Execute(root, n)
			}
		})
	}
}

func BenchmarkUnrollTiers(b *testing.B) {
	const n = 4096
	xs := testutil.Noise[float32](3, -1, 1, n)
	dst := make([]float32, n)
	root := Store(dst, MulScalar[float32](arrayLeaf(xs), 0.5))

	for _, u := range []int{1, 2, 4, 8} {
		e, err := NewEngine[float32](WithUnroll(u))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("unroll=%d", u), func(b *testing.B) {
			for b.Loop() {
				e.Execute(root, n)
			}
		})
	}
}
