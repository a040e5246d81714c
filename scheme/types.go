// SPDX-License-Identifier: MIT

// Package scheme: Builder type, sentinel errors and introspection.
package scheme

import (
	"errors"

	"github.com/katalvlaran/stencil/field"
	"github.com/katalvlaran/stencil/rational"
)

// Sentinel errors returned by the Builder.
var (
	// ErrRowLength indicates an AddEqn row whose length differs from
	// Order+1 (one coefficient per unknown polynomial coefficient).
	ErrRowLength = errors.New("scheme: constraint row length must be order+1")

	// ErrBuilderFull indicates AddEqn on a builder that already holds
	// Order+1 constraints. This is a contract violation, rejected
	// explicitly — never an out-of-bounds write.
	ErrBuilderFull = errors.New("scheme: builder already holds order+1 constraints")

	// ErrIncomplete indicates Solve on a builder with fewer than Order+1
	// constraints; undefined rows must never feed into inversion.
	ErrIncomplete = errors.New("scheme: builder is not fully constrained")

	// ErrBadOrder indicates a preset constructor called with an order the
	// layout cannot realize (negative, or odd for symmetric layouts).
	ErrBadOrder = errors.New("scheme: order not supported by this layout")
)

const panicNegativeOrder = "scheme: order must be >= 0"

// Rat is the default exact coefficient type for scheme derivation,
// mirroring the common case of the library: int64-backed reduced
// fractions. Narrower or wider widths remain available through the
// generic Builder directly.
type Rat = rational.Rational[int64]

// Builder accumulates one constraint row per call until the system is
// square, then solves it. The zero value is not usable; start from New.
//
// Builders are immutable values: AddEqn returns a fresh builder and never
// touches the receiver, so any snapshot can seed several divergent
// constraint sets.
type Builder[T field.Num[T]] struct {
	order int
	rows  [][]T // len(rows) == number of constraints accumulated so far
}

// New opens an empty builder for polynomials of degree ≤ order
// (order+1 unknown coefficients, order+1 constraints to fill).
// Panics on a negative order (programmer error).
func New[T field.Num[T]](order int) Builder[T] {
	if order < 0 {
		panic(panicNegativeOrder)
	}

	return Builder[T]{order: order}
}

// Order returns the polynomial order the builder was opened with.
func (b Builder[T]) Order() int { return b.order }

// Len returns the number of constraints accumulated so far.
func (b Builder[T]) Len() int { return len(b.rows) }

// Complete reports whether the builder holds all Order+1 constraints and
// is ready to Solve.
func (b Builder[T]) Complete() bool { return len(b.rows) == b.order+1 }
