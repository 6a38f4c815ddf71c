package isa

import (
	approx "github.com/meko-christian/algo-approx"
)

// RsqrtMaxRelError bounds the relative error of Rsqrt on models that report
// Approximate, for positive normal inputs.
const RsqrtMaxRelError = 1.0 / 2048

// rsqrtApprox is the fast reciprocal square root used by vector models.
func rsqrtApprox[T Float](x T) T {
	return T(1 / approx.FastSqrt(float64(x)))
}
