package isa

var (
	scalar32 = NewLanes[float32]("scalar", 1, 16, 8, false)
	scalar64 = NewLanes[float64]("scalar", 1, 16, 8, false)
)

// Scalar returns the width-1 model used for remainder elements. Its Rsqrt
// and Rcp are exact.
func Scalar[T Float]() Model[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(scalar32).(Model[T])
	default:
		return any(scalar64).(Model[T])
	}
}
