// SPDX-License-Identifier: MIT

// Package gauss: sentinel errors, matrix constructors and shape validation.
// All kernels validate first and return plain sentinels; panics are
// reserved for programmer errors (none exist on this surface).
package gauss

import (
	"errors"

	"github.com/katalvlaran/stencil/field"
)

// Sentinel errors returned by the gauss kernels.
var (
	// ErrBadShape is returned when a matrix is empty or ragged
	// (rows of differing lengths).
	ErrBadShape = errors.New("gauss: invalid matrix shape")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("gauss: matrix is not square")

	// ErrDimensionMismatch signals that the right-hand side length does
	// not match the matrix dimension.
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")

	// ErrSingular is returned by Solve/Invert when elimination cannot
	// produce a pivot in every structural column — the system has no
	// unique solution. Rank deficiency is always surfaced, never
	// silently absorbed.
	ErrSingular = errors.New("gauss: singular matrix")
)

// NewMatrix allocates a rows×cols matrix filled with the additive identity
// of T. Returns ErrBadShape when either dimension is not positive.
// Complexity: O(rows·cols).
func NewMatrix[T field.Num[T]](rows, cols int) ([][]T, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	zero := field.Zero[T]()
	a := make([][]T, rows)
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		a[i] = make([]T, cols)
		for j = 0; j < cols; j++ {
			a[i][j] = zero
		}
	}

	return a, nil
}

// Identity allocates the n×n identity matrix over T.
// Returns ErrBadShape when n is not positive. Complexity: O(n²).
func Identity[T field.Num[T]](n int) ([][]T, error) {
	a, err := NewMatrix[T](n, n)
	if err != nil {
		return nil, err
	}

	one := field.One[T]()
	for i := 0; i < n; i++ {
		a[i][i] = one
	}

	return a, nil
}

// Clone returns a deep copy of a. The copy shares nothing with the
// original, so in-place Eliminate on one leaves the other intact.
// Complexity: O(rows·cols).
func Clone[T field.Num[T]](a [][]T) [][]T {
	out := make([][]T, len(a))
	for i, row := range a {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}

	return out
}

// validateRect checks that a is non-empty and rectangular.
func validateRect[T field.Num[T]](a [][]T) error {
	if len(a) == 0 || len(a[0]) == 0 {
		return ErrBadShape
	}

	cols := len(a[0])
	for _, row := range a[1:] {
		if len(row) != cols {
			return ErrBadShape
		}
	}

	return nil
}

// validateSquare checks rectangularity and squareness.
func validateSquare[T field.Num[T]](a [][]T) error {
	if err := validateRect(a); err != nil {
		return err
	}
	if len(a) != len(a[0]) {
		return ErrNonSquare
	}

	return nil
}
