package main

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-expr/expr"
	"github.com/cwbudde/algo-expr/internal/isa"
)

func (a *app) benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time fused expressions against plain loops",
		Long: `Run a few elementwise expressions through the engine and through
equivalent hand-written Go loops, and print the time per element of each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			typ, err := a.elementType("bench.type")
			if err != nil {
				return err
			}
			n := a.v.GetInt("bench.size")
			rounds := a.v.GetInt("bench.rounds")
			if n < 1 || rounds < 1 {
				return fmt.Errorf("need --size and --rounds >= 1, got %d and %d", n, rounds)
			}
			if typ == "float32" {
				return runBench[float32](cmd, n, rounds)
			}
			return runBench[float64](cmd, n, rounds)
		},
	}
	cmd.Flags().Int("size", 1<<16, "number of elements")
	cmd.Flags().Int("rounds", 200, "repetitions per case")
	cmd.Flags().String("type", "float32", "element type (float32 or float64)")
	a.bind(cmd.Flags(), "bench", "size", "rounds", "type")
	return cmd
}

type benchCase struct {
	name  string
	fused func()
	loop  func()
}

func benchCases[T isa.Float](x, y, z *expr.Array[T]) []benchCase {
	xs, ys, zs := x.Data(), y.Data(), z.Data()
	return []benchCase{
		{
			name:  "y += 0.5*x",
			fused: func() { y.AddAssign(expr.ScalarMul[T](0.5, x)) },
			loop: func() {
				for i := range ys {
					ys[i] += 0.5 * xs[i]
				}
			},
		},
		{
			name:  "z = sqrt(x*x + y*y)",
			fused: func() { z.Assign(expr.Sqrt[T](expr.Add[T](expr.Mul[T](x, x), expr.Mul[T](y, y)))) },
			loop: func() {
				for i := range zs {
					zs[i] = T(math.Sqrt(float64(xs[i]*xs[i] + ys[i]*ys[i])))
				}
			},
		},
		{
			name:  "z = min(x, y) / 3",
			fused: func() { z.Assign(expr.DivScalar[T](expr.Min[T](x, y), 3)) },
			loop: func() {
				for i := range zs {
					zs[i] = min(xs[i], ys[i]) / 3
				}
			},
		},
	}
}

// nsPerElement runs fn once to warm up, then rounds times, and returns the
// mean time per element in nanoseconds.
func nsPerElement(fn func(), n, rounds int) float64 {
	fn()
	start := time.Now()
	for range rounds {
		fn()
	}
	return float64(time.Since(start).Nanoseconds()) / float64(n*rounds)
}

func runBench[T isa.Float](cmd *cobra.Command, n, rounds int) error {
	opts := options()
	x, err := expr.NewFilled[T](n, 1.5, opts...)
	if err != nil {
		return err
	}
	y, err := expr.NewFilled[T](n, 2.5, opts...)
	if err != nil {
		return err
	}
	z, err := expr.New[T](n, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "backend %s, %d elements of %T, %d rounds\n\n", x.Engine().Backend(), n, *new(T), rounds)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EXPRESSION\tFUSED ns/elem\tLOOP ns/elem\tRATIO")
	for _, c := range benchCases(x, y, z) {
		fused := nsPerElement(c.fused, n, rounds)
		loop := nsPerElement(c.loop, n, rounds)
		ratio := math.NaN()
		if fused > 0 {
			ratio = loop / fused
		}
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.2f\n", c.name, fused, loop, ratio)
	}
	return tw.Flush()
}
