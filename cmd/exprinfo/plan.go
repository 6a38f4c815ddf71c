package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-expr/expr"
	"github.com/cwbudde/algo-expr/internal/isa"
)

func (a *app) planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the unroll plan for a synthetic expression",
		Long: `Build dst = a1 + a2 + ... + aL over arrays of the given size and print
the cost model counts, the unroll factor and how many elements each loop
phase handles. Nothing is executed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			typ, err := a.elementType("plan.type")
			if err != nil {
				return err
			}
			n := a.v.GetInt("plan.size")
			loads := a.v.GetInt("plan.loads")
			if n < 0 || loads < 1 {
				return fmt.Errorf("need --size >= 0 and --loads >= 1, got %d and %d", n, loads)
			}
			if typ == "float32" {
				return runPlan[float32](cmd, n, loads)
			}
			return runPlan[float64](cmd, n, loads)
		},
	}
	cmd.Flags().Int("size", 1000, "number of elements")
	cmd.Flags().Int("loads", 2, "number of array operands")
	cmd.Flags().String("type", "float32", "element type (float32 or float64)")
	a.bind(cmd.Flags(), "plan", "size", "loads", "type")
	return cmd
}

// sumOf builds a1 + a2 + ... over operands.
func sumOf[T isa.Float](operands []*expr.Array[T]) expr.Expr[T] {
	var sum expr.Expr[T] = operands[0]
	for _, op := range operands[1:] {
		sum = expr.Add[T](sum, op)
	}
	return sum
}

func runPlan[T isa.Float](cmd *cobra.Command, n, loads int) error {
	e, err := expr.NewEngine[T](options()...)
	if err != nil {
		return err
	}

	operands := make([]*expr.Array[T], loads)
	for i := range operands {
		if operands[i], err = expr.New[T](n, options()...); err != nil {
			return err
		}
	}
	dst := make([]T, n)
	root := expr.Store(dst, sumOf(operands))
	p := e.Plan(root, n)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v\n\n", root)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value any
	}{
		{"backend", p.Backend},
		{"pack size", p.PackSize},
		{"registers", e.Registers()},
		{"loads", p.Stats.Loads},
		{"stores", p.Stats.Stores},
		{"operations", p.Stats.Operations},
		{"immediates", p.Stats.Immediates},
		{"unroll", p.Unroll},
		{"slots", p.Slots},
		{"blocked", p.Blocked},
		{"tail", p.Tail},
		{"single", p.Single},
		{"remainder", p.Remainder},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", r.name, r.value)
	}
	return tw.Flush()
}
