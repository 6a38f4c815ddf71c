// Package expr fuses elementwise arithmetic over float arrays into a single
// pass over memory.
//
// Operator functions build a small expression tree without touching any
// data:
//
//	x, _ := expr.NewFilled[float32](n, 23)
//	y, _ := expr.NewFilled[float32](n, 42)
//	y.AddAssign(expr.ScalarMul[float32](3.14159, x)) // y += 3.14159*x
//
// Only the mutating entry points of Array (Assign, Fill, CopyFrom and the
// compound assignments) evaluate. They wrap the tree in a store root and
// hand it to an Engine, which:
//
//   - counts the loads, stores, operations and immediates of the tree,
//   - derives an unroll factor from the vector model's register budget,
//   - runs independent evaluator slots over the aligned main part of the
//     arrays, one register-width pack at a time, issuing every slot's loads
//     before any computation and every computation before any store,
//   - finishes the elements that do not fill a register with the width-1
//     scalar model.
//
// No temporary arrays are created: each tree node owns a single pack.
//
// Binary operators exist in three shapes, for example Add(a, b),
// AddScalar(a, s) and ScalarAdd(s, b). None accepts two scalars, so an
// expression without array semantics cannot be written.
//
// # Precision
//
// Add, Sub, Mul, Div and Sqrt are IEEE operations on every backend. Min and
// Max return the second operand when either input is NaN. Rcp is exact.
// Rsqrt is exact on the scalar model; vector backends use a fast
// approximation with relative error at most 2^-11.
package expr
