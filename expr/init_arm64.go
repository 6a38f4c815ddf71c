//go:build arm64 && !purego

package expr

import (
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/arm64/neon"
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/generic"
)
