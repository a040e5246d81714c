// SPDX-License-Identifier: MIT

// Package scheme: preset symmetric layouts over the default exact type.
//
// The two ubiquitous even-order layouts are wired end to end here so
// callers deriving standard interior schemes never touch the builder:
// point values on integer abscissae (finite differences) and unit-cell
// averages on half-integer faces (finite volumes, the layout behind
// multi-resolution prediction operators).
package scheme

import (
	"github.com/katalvlaran/stencil/poly"
	"github.com/katalvlaran/stencil/rational"
)

// FiniteDifference derives the symmetric point-value scheme of the given
// even order: constraints are the basis evaluated at the integer
// abscissae -order/2 … order/2. Channel i of the result is the weight
// polynomial of sample u_{i-order/2}.
//
// Errors: ErrBadOrder on a negative or odd order; a wrapped
// gauss.ErrSingular cannot occur for this layout (distinct abscissae form
// a Vandermonde system) but is propagated if it ever did.
func FiniteDifference(order int) (poly.Poly[Rat], error) {
	if order < 0 || order%2 != 0 {
		return poly.Poly[Rat]{}, ErrBadOrder
	}

	b := New[Rat](order)
	basis := b.Basis()

	var err error
	half := order / 2
	for i := -half; i <= half; i++ {
		b, err = b.AddEqn(basis.Evaluate(rational.FromInt(int64(i))))
		if err != nil {
			return poly.Poly[Rat]{}, err
		}
	}

	return b.Solve()
}

// FiniteVolume derives the symmetric cell-average scheme of the given
// even order: constraints are the basis integrated over the unit cells
// [i-1/2, i+1/2] for i in -order/2 … order/2. Channel i of the result is
// the weight polynomial of cell average u_{i-order/2} — integrating the
// solved scheme over half-cells yields the classic multi-resolution
// prediction weights (e.g. [1/16, 1/2, -1/16] over [-1/2, 0] at order 2).
//
// Errors: ErrBadOrder on a negative or odd order.
func FiniteVolume(order int) (poly.Poly[Rat], error) {
	if order < 0 || order%2 != 0 {
		return poly.Poly[Rat]{}, ErrBadOrder
	}

	b := New[Rat](order)
	basis := b.Basis()

	var err error
	half := order / 2
	for i := -half; i <= half; i++ {
		left := rational.New[int64](int64(2*i-1), 2)
		right := rational.New[int64](int64(2*i+1), 2)
		b, err = b.AddEqn(basis.Integrate(left, right))
		if err != nil {
			return poly.Poly[Rat]{}, err
		}
	}

	return b.Solve()
}
