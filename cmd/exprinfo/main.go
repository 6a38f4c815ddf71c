// Command exprinfo inspects the fused expression engine on this machine.
//
// Usage:
//
//	exprinfo [flags] <command>
//
// Commands:
//
//	backends   list registered backends and the one selected for this CPU
//	demo       run y += 3.14159*x and print y
//	plan       show the unroll plan for a synthetic expression
//	bench      time fused expressions against plain Go loops
//
// Examples:
//
//	exprinfo backends
//	exprinfo demo --size 10 --type float32
//	exprinfo --backend generic plan --size 1000 --loads 3
//	ALGO_EXPR_UNROLL=4 exprinfo bench --size 65536
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
