// Package field declares the numeric contract shared by every stencil
// kernel: the self-referential generic constraint Num, satisfied by any
// type that behaves like a field element.
//
// Both exact types (rational.Rational) and floating point (field.Float64)
// satisfy Num, so the Gauss–Jordan kernels in gauss/ and the polynomial
// algebra in poly/ are written exactly once and run unchanged on either.
//
// Design rules:
//
//   - Every operation returns a fresh value; a Num type is immutable.
//   - Zero and One must be callable on the zero value of the type — they
//     seed freshly allocated coefficient tables.
//   - Div by the additive identity is a programmer error and panics;
//     callers that may divide by arbitrary values (pivot selection in
//     gauss/) must test IsZero first.
//
// Complexity: every method of a Num implementation is expected O(1)
// (amortized; exact rationals pay one gcd per operation).
package field
