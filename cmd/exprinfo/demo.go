package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-expr/expr"
	"github.com/cwbudde/algo-expr/internal/isa"
)

const demoScale = 3.14159

func (a *app) demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run y += 3.14159*x and print y",
		Long: `Fill x with 23 and y with 42, evaluate y += 3.14159*x in one fused pass
and print every element of y. Each element should read 114.25657.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			typ, err := a.elementType("demo.type")
			if err != nil {
				return err
			}
			n := a.v.GetInt("demo.size")
			if typ == "float32" {
				return runDemo[float32](cmd, n)
			}
			return runDemo[float64](cmd, n)
		},
	}
	cmd.Flags().Int("size", 10, "number of elements")
	cmd.Flags().String("type", "float32", "element type (float32 or float64)")
	a.bind(cmd.Flags(), "demo", "size", "type")
	return cmd
}

func runDemo[T isa.Float](cmd *cobra.Command, n int) error {
	opts := options()
	x, err := expr.NewFilled[T](n, 23, opts...)
	if err != nil {
		return err
	}
	y, err := expr.NewFilled[T](n, 42, opts...)
	if err != nil {
		return err
	}

	src := expr.ScalarMul[T](demoScale, x)
	y.AddAssign(src)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "backend %s, %d elements of %T\n", y.Engine().Backend(), n, *new(T))
	fmt.Fprintf(out, "y += %v\n\n", src)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "INDEX\tY\t")
	for i, v := range y.All() {
		fmt.Fprintf(tw, "%d\t%s\t\n", i, formatFloat(v))
	}
	return tw.Flush()
}
