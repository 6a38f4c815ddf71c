//go:build purego || !(amd64 || arm64)

package expr

import (
	_ "github.com/cwbudde/algo-expr/internal/isa/arch/generic"
)
