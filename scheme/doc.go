// SPDX-License-Identifier: MIT

// Package scheme accumulates linear constraints on an unknown polynomial
// and solves for the unique polynomial family satisfying them — the core
// derivation step behind finite-difference stencils, finite-volume
// reconstruction weights and Hermite splines.
//
// 🚀 How derivation works
//
//	Open a Builder for a chosen order. Its Basis() is the identity-channel
//	monomial polynomial (channel i ≡ x^i); evaluating, differentiating or
//	integrating the basis at a chosen abscissa/interval yields one
//	constraint row. AddEqn appends rows one at a time; once Order+1 rows
//	are in, Solve inverts the accumulated square system and packages the
//	inverse as a polynomial: channel i of the result is the unique
//	polynomial of degree ≤ Order equal to 1 on constraint i and 0 on all
//	others (the dual basis of the supplied constraints).
//
// Value semantics:
//
//	A Builder is immutable. AddEqn returns a NEW builder with one more row;
//	snapshots stay independent, so partially filled builders can be reused
//	as branch points for several related schemes (e.g. one interior and
//	several boundary closures sharing their first constraints).
//
// Errors (sentinel, matched via errors.Is):
//
//	– ErrRowLength   — AddEqn row is not Order+1 long
//	– ErrBuilderFull — AddEqn on an already full builder
//	– ErrIncomplete  — Solve before all Order+1 rows are in
//	– gauss.ErrSingular (wrapped) — the constraints are linearly dependent
//
// Example — the classic central difference stencil:
//
//	b := scheme.New[scheme.Rat](2)
//	P := b.Basis()
//	b, _ = b.AddEqn(P.Evaluate(rational.FromInt[int64](-1)))
//	b, _ = b.AddEqn(P.Evaluate(rational.FromInt[int64](0)))
//	b, _ = b.AddEqn(P.Evaluate(rational.FromInt[int64](1)))
//	S, err := b.Solve()
//	// S.Derivate(1).Evaluate(0) == [-1/2, 0, 1/2]
//
// FiniteDifference and FiniteVolume wrap the two ubiquitous symmetric
// layouts end to end for the default exact type Rat (= Rational[int64]).
package scheme
