package main

import (
	"fmt"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-expr/expr"
	"github.com/cwbudde/algo-expr/internal/config"
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
)

func (a *app) backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered backends",
		Long: `List every registered instruction-set backend with its SIMD level,
priority, pack sizes, alignment and register budget. The backend the
engine selects under the current flags is marked with '*'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printBackends(cmd)
		},
	}
}

func printBackends(cmd *cobra.Command) error {
	features := cpu.DetectFeatures()
	if config.Load().NoSIMD {
		features.ForceGeneric = true
	}

	selected, err := expr.NewEngine[float64](options()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "CPU: %s/%s, best level %s\n\n", runtime.GOOS, runtime.GOARCH, features.Best())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tLEVEL\tPRIORITY\tF32 PACK\tF64 PACK\tALIGN\tREGS\tRSQRT\tF64 KERNEL\tSUPPORTED")
	for _, e := range registry.Global.ListEntries() {
		mark := ""
		if e.Name == selected.Backend() {
			mark = "*"
		}
		rsqrt := "exact"
		if e.Float64.Approximate() {
			rsqrt = "approx"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			mark,
			e.Name,
			e.SIMDLevel,
			e.Priority,
			e.Float32.PackSize(),
			e.Float64.PackSize(),
			e.Float64.Alignment(),
			e.Float64.Registers(),
			rsqrt,
			isa.Kernel(e.Float64),
			strconv.FormatBool(cpu.Supports(features, e.SIMDLevel)),
		)
	}
	return tw.Flush()
}
