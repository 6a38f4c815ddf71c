package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-expr/expr"
	"github.com/cwbudde/algo-expr/internal/config"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/logging"
)

const envPrefix = "ALGO_EXPR"

// app carries the viper instance shared by the subcommands of one root.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "exprinfo",
		Short: "Inspect the fused expression engine",
		Long: `exprinfo reports which instruction-set backend the expression engine
selects on this machine, how it unrolls an expression, and how fast fused
evaluation runs compared to plain loops.

Every flag can also be set through an ALGO_EXPR_* environment variable,
for example ALGO_EXPR_BACKEND=generic or ALGO_EXPR_UNROLL=4.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
	}

	flags := root.PersistentFlags()
	flags.String("backend", "", "force a backend by name (default: detect)")
	flags.Bool("no-simd", false, "restrict selection to the generic backend (conflicts with --backend)")
	flags.Int("unroll", 0, "force the unroll factor (0 = cost model)")
	flags.Bool("stream", false, "use streaming stores")
	flags.Bool("debug", false, "validate operand lengths before executing")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	a.bind(flags, "", "backend", "no-simd", "unroll", "stream", "debug", "log-level")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.backendsCmd(),
		a.demoCmd(),
		a.planCmd(),
		a.benchCmd(),
	)
	return root
}

// bind registers flags with viper under prefix.name, or name when prefix
// is empty. Subcommands use their own prefix so that equally named flags do
// not shadow each other.
func (a *app) bind(flags *pflag.FlagSet, prefix string, names ...string) {
	for _, name := range names {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// configure layers flags and environment over the library configuration
// before any subcommand runs.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	cfg.Backend = strings.ToLower(a.v.GetString("backend"))
	cfg.NoSIMD = a.v.GetBool("no-simd")
	cfg.Unroll = a.v.GetInt("unroll")
	cfg.Stream = a.v.GetBool("stream")
	cfg.Debug = a.v.GetBool("debug")
	cfg.LogLevel = a.v.GetString("log-level")
	if cfg.Unroll < 0 {
		return fmt.Errorf("--unroll must not be negative, got %d", cfg.Unroll)
	}
	if cfg.NoSIMD && cfg.Backend != "" && cfg.Backend != "generic" {
		return fmt.Errorf("--no-simd conflicts with --backend %q", cfg.Backend)
	}

	config.Set(cfg)
	logging.Init(cfg.LogLevel, cmd.ErrOrStderr())
	return nil
}

// elementType resolves a --type flag stored under key.
func (a *app) elementType(key string) (string, error) {
	switch t := strings.ToLower(a.v.GetString(key)); t {
	case "float32", "f32":
		return "float32", nil
	case "float64", "f64":
		return "float64", nil
	default:
		return "", fmt.Errorf("unknown element type %q (use float32 or float64)", t)
	}
}

func formatFloat[T isa.Float](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, isa.SizeOf[T]()*8)
}

// options turns the configuration set by configure into engine options, so
// every subcommand builds fresh engines instead of the cached defaults.
func options() []expr.Option {
	cfg := config.Load()
	return []expr.Option{
		expr.WithBackend(cfg.Backend),
		expr.WithUnroll(cfg.Unroll),
		expr.WithStreamingStores(cfg.Stream),
		expr.WithDebug(cfg.Debug),
	}
}
