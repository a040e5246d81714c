// Package stencil derives closed-form polynomial approximation schemes —
// finite-difference stencils, finite-volume reconstruction weights and
// Hermite splines — with exact rational arithmetic from end to end.
//
// 🚀 What is stencil?
//
//	A compact, dependency-light library that turns linear constraints on an
//	unknown polynomial into exact stencil coefficients:
//		• Exact fractions: reduced rationals over any signed integer width
//		• Generic Gauss–Jordan: eliminate, solve and invert over any field-like type
//		• Polynomial algebra: evaluate, derivate, antiderivative, definite integrals
//		• Scheme builder: accumulate point/derivative/integral constraints, solve once
//
// ✨ Why choose stencil?
//
//   - Exact by construction – weights come out as fractions like 1/8, never 0.12499…
//   - Value semantics – every operation returns a fresh value; share freely across goroutines
//   - Pure Go – no cgo, no hidden deps
//   - Generic – the same kernels run on exact rationals or plain floating point
//
// Under the hood, everything is organized under five subpackages:
//
//	field/    — the Num contract every coefficient type satisfies (+ Float64 adapter)
//	rational/ — canonical reduced fractions of signed integers
//	gauss/    — Gauss–Jordan elimination, linear solve and matrix inversion
//	scheme/   — constraint accumulation and scheme derivation (uses poly/)
//	poly/     — vector-valued polynomials sharing one monomial basis
//
// Quick taste — the classic central difference stencil:
//
//	b := scheme.New[rational.Rational[int64]](2)
//	P := b.Basis()
//	b, _ = b.AddEqn(P.Evaluate(rational.FromInt[int64](-1))) // u_{-1}
//	b, _ = b.AddEqn(P.Evaluate(rational.FromInt[int64](0)))  // u_0
//	b, _ = b.AddEqn(P.Evaluate(rational.FromInt[int64](1)))  // u_1
//	S, _ := b.Solve()
//	S.Derivate(1).Evaluate(rational.FromInt[int64](0))       // [-1/2,0,1/2]
//
// Dive into examples/ for finite-volume prediction operators, Neumann
// boundary schemes and cubic Hermite splines.
//
//	go get github.com/katalvlaran/stencil
package stencil
