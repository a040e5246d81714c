// SPDX-License-Identifier: MIT

// Package gauss: elimination, solve and inversion kernels.
//
// All three kernels share one elimination core with deterministic loop
// order (column-major pivot sweep, row-major updates) — no data-dependent
// branching beyond pivot selection, so results are reproducible across runs.
package gauss

import "github.com/katalvlaran/stencil/field"

// Eliminate reduces a to reduced row-echelon form in place and returns the
// attained rank (the number of pivot columns found).
//
// For each column, the entry of greatest magnitude at or below the working
// row is chosen as pivot; a column whose best candidate is exactly zero is
// skipped without advancing the working row, which is what leaves rank
// deficiency observable in the return value. The pivot row is normalized
// to a unit pivot, swapped into position, then eliminated from every other
// row.
//
// Returns 0 (and leaves a untouched) on an empty or ragged matrix; callers
// needing the distinction should validate with the public constructors
// first. Complexity: O(M·N·min(M,N)) field operations.
func Eliminate[T field.Num[T]](a [][]T) int {
	if validateRect(a) != nil {
		return 0
	}

	rank, _ := eliminate(a)

	return rank
}

// eliminate is the shared kernel: RREF in place, returning the attained
// rank and the ascending list of pivot column indices.
// Precondition: a is rectangular and non-empty.
func eliminate[T field.Num[T]](a [][]T) (int, []int) {
	rows, cols := len(a), len(a[0])
	pivots := make([]int, 0, min(rows, cols))

	var (
		r    int // working (pivot) row
		j    int // pivot column under consideration
		i, c int // sweep iterators
	)
	for j = 0; j < cols && r < rows; j++ {
		// Select the entry of greatest magnitude at or below row r.
		k, kv := r, a[r][j]
		for i = r + 1; i < rows; i++ {
			if a[i][j].Abs().Cmp(kv.Abs()) > 0 {
				k, kv = i, a[i][j]
			}
		}

		// Exactly-zero best candidate: no pivot in this column.
		if kv.IsZero() {
			continue
		}

		// Normalize the pivot row to a unit pivot.
		for c = 0; c < cols; c++ {
			a[k][c] = a[k][c].Div(kv)
		}

		// Swap the pivot row into position.
		if k != r {
			a[k], a[r] = a[r], a[k]
		}

		// Eliminate the pivot column from every other row.
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			f := a[i][j]
			if f.IsZero() {
				continue
			}
			for c = 0; c < cols; c++ {
				a[i][c] = a[i][c].Sub(a[r][c].Mul(f))
			}
		}

		pivots = append(pivots, j)
		r++
	}

	return r, pivots
}

// Solve returns the unique x with a·x = b for a square n×n system.
// The input matrix and right-hand side are not mutated.
//
// The system is augmented with b, eliminated, and the solution read off
// the augmented column scaled by the diagonal (the scaling is a no-op
// here because elimination normalizes pivots, but it is kept so the
// read-off stays correct under non-normalizing elimination variants).
//
// Errors: ErrBadShape / ErrNonSquare / ErrDimensionMismatch on malformed
// input, ErrSingular when the matrix has no unique solution.
// Complexity: O(n³) field operations.
func Solve[T field.Num[T]](a [][]T, b []T) ([]T, error) {
	if err := validateSquare(a); err != nil {
		return nil, err
	}
	n := len(a)
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}

	aug := make([][]T, n)
	var i int
	for i = 0; i < n; i++ {
		aug[i] = make([]T, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]
	}

	if err := requireStructuralPivots(aug, n); err != nil {
		return nil, err
	}

	x := make([]T, n)
	for i = 0; i < n; i++ {
		x[i] = aug[i][n].Div(aug[i][i])
	}

	return x, nil
}

// Invert returns the inverse of a square n×n matrix without mutating it.
//
// The matrix is augmented with the identity, eliminated, and the right
// half read off as the inverse. A matrix is invertible exactly when
// elimination places its pivots in the left (structural) columns; any
// pivot escaping into the identity half means rank deficiency and is
// reported as ErrSingular — never a silently wrong inverse.
//
// Errors: ErrBadShape / ErrNonSquare on malformed input, ErrSingular on a
// rank-deficient matrix. Complexity: O(n³) field operations.
func Invert[T field.Num[T]](a [][]T) ([][]T, error) {
	if err := validateSquare(a); err != nil {
		return nil, err
	}
	n := len(a)

	zero, one := field.Zero[T](), field.One[T]()
	aug := make([][]T, n)
	var i, j int
	for i = 0; i < n; i++ {
		aug[i] = make([]T, 2*n)
		copy(aug[i], a[i])
		for j = 0; j < n; j++ {
			if i == j {
				aug[i][n+j] = one
			} else {
				aug[i][n+j] = zero
			}
		}
	}

	if err := requireStructuralPivots(aug, n); err != nil {
		return nil, err
	}

	inv := make([][]T, n)
	for i = 0; i < n; i++ {
		inv[i] = make([]T, n)
		copy(inv[i], aug[i][n:])
	}

	return inv, nil
}

// requireStructuralPivots eliminates aug in place and verifies that the
// first n pivots landed in the first n (structural) columns — i.e. the
// structural block reduced to the identity. Ascending distinct pivot
// columns make the check a single index comparison.
func requireStructuralPivots[T field.Num[T]](aug [][]T, n int) error {
	rank, pivots := eliminate(aug)
	if rank < n || pivots[n-1] != n-1 {
		return ErrSingular
	}

	return nil
}
