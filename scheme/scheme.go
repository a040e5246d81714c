// SPDX-License-Identifier: MIT

// Package scheme: constraint accumulation and solving.
package scheme

import (
	"fmt"

	"github.com/katalvlaran/stencil/gauss"
	"github.com/katalvlaran/stencil/poly"
)

// Basis returns the canonical monomial basis of the builder's order:
// channel i is x^i. Available in any builder state; constraint rows are
// expressed against this basis via Evaluate/Derivate/Integrate.
func (b Builder[T]) Basis() poly.Poly[T] {
	return poly.Basis[T](b.order)
}

// AddEqn returns a new builder extended with one constraint row —
// typically the output of evaluating, differentiating or integrating the
// basis polynomial at a chosen abscissa or interval.
//
// The row is deep-copied; previously accumulated rows are shared between
// snapshots (they are never mutated, so sharing is safe).
//
// Errors: ErrRowLength when len(row) != Order+1, ErrBuilderFull when the
// builder already holds Order+1 constraints.
func (b Builder[T]) AddEqn(row []T) (Builder[T], error) {
	if len(row) != b.order+1 {
		return Builder[T]{}, ErrRowLength
	}
	if b.Complete() {
		return Builder[T]{}, ErrBuilderFull
	}

	own := make([]T, len(row))
	copy(own, row)

	rows := make([][]T, len(b.rows)+1)
	copy(rows, b.rows)
	rows[len(b.rows)] = own

	return Builder[T]{order: b.order, rows: rows}, nil
}

// Solve inverts the accumulated (Order+1)×(Order+1) constraint matrix and
// packages the inverse as the solved scheme: channel i of the returned
// polynomial is the unique polynomial of degree ≤ Order that is 1 on
// constraint i and 0 on every other constraint.
//
// Errors: ErrIncomplete when fewer than Order+1 constraints are in;
// a wrapped gauss.ErrSingular when the constraints are linearly dependent
// (matched via errors.Is).
// Complexity: O(Order³) field operations.
func (b Builder[T]) Solve() (poly.Poly[T], error) {
	if !b.Complete() {
		return poly.Poly[T]{}, ErrIncomplete
	}

	inv, err := gauss.Invert(b.rows)
	if err != nil {
		return poly.Poly[T]{}, fmt.Errorf("scheme: solve: %w", err)
	}

	// Column i of the inverse is the coefficient vector of channel i,
	// which is exactly the (Degree+1)×N table layout of poly.
	s, err := poly.FromCoeffs(inv)
	if err != nil {
		return poly.Poly[T]{}, fmt.Errorf("scheme: solve: %w", err)
	}

	return s, nil
}
