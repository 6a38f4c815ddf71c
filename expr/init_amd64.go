//go:build amd64 && !purego

package expr

// Blank imports run the init functions that register the amd64 backends.
import (
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/amd64/avx"
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/amd64/avx512"
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/generic"
)
