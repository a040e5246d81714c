// SPDX-License-Identifier: MIT

// Package gauss implements Gauss–Jordan elimination, linear solving and
// matrix inversion over any field-like numeric type (field.Num).
//
// The kernels are generic: run them on rational.Rational for exact results
// (pivot choice then only affects the size of intermediate fractions) or on
// field.Float64 where largest-|pivot| partial pivoting buys numerical
// stability. Pivot comparison against zero is exact equality — appropriate
// for exact arithmetic, and intentionally NOT a tolerance-based scheme.
//
// Functions:
//
//	– Eliminate(a) — reduced row-echelon form in place; returns the attained
//	  rank so rank deficiency is visible instead of silently skipped.
//	– Solve(a, b)  — unique solution of the square system a·x = b.
//	– Invert(a)    — inverse of a square matrix via the augmented identity.
//
// Solve and Invert never mutate their inputs; Eliminate reduces its
// argument in place (clone first via Clone to keep the original).
//
// Errors (sentinel, matched via errors.Is):
//
//	– ErrBadShape          — empty or ragged input matrix
//	– ErrNonSquare         — Solve/Invert on a non-square matrix
//	– ErrDimensionMismatch — right-hand side length differs from the matrix
//	– ErrSingular          — rank-deficient system in Solve/Invert
//
// Complexity: O(M·N·min(M,N)) field operations for Eliminate; O(N³) for
// Solve and Invert. Memory: one augmented copy for Solve/Invert.
package gauss
