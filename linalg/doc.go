// Package linalg provides the sparse linear-algebra kernel used by the
// placement pass: a row-major sparse symmetric matrix
// built incrementally via coefficient accumulation, and a
// Jacobi-preconditioned conjugate-gradient solver over it.
//
// Purpose:
//   - Give callers a coeffRef-style accumulation API (repeatedly add into
//     a (row, col) entry) and a one-shot CSR finalization step before
//     solving.
//   - Solve Ax=b for symmetric positive-(semi)definite A without pulling
//     in a dense/eigen decomposition stack the passes never need.
//
// Notes:
//   - All kernels return plain sentinels or wrap them via linalgErrorf at
//     the facade, following the same wrapped-sentinel error convention
//     used across this module.
package linalg
