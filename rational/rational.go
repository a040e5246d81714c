// Package rational: type definition, canonicalization and constructors.
package rational

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Panic messages for programmer errors (invalid construction / zero divide).
// Kept as constants so call sites and tests never drift on wording.
const (
	panicZeroDenominator = "rational: zero denominator"
	panicDivisionByZero  = "rational: division by zero"
)

// Rational is an exact fraction p/q over the signed integer width T,
// always stored canonical: q > 0 and gcd(|p|, q) == 1 (zero is 0/1).
//
// The zero value of the type is NOT a valid rational (its denominator is
// zero); obtain values through New, FromInt, Zero or One, or through
// arithmetic on existing values. Every operation returns a fresh,
// canonical value; a Rational is never mutated in place.
type Rational[T constraints.Signed] struct {
	p, q T
}

// New constructs the canonical rational p/q.
// Panics when q == 0 (assertion-level precondition, not a recoverable error).
// Complexity: O(log min(|p|,|q|)) for the gcd.
func New[T constraints.Signed](p, q T) Rational[T] {
	if q == 0 {
		panic(panicZeroDenominator)
	}

	return reduce(p, q)
}

// FromInt constructs the canonical rational n/1.
// Complexity: O(1).
func FromInt[T constraints.Signed](n T) Rational[T] {
	return Rational[T]{p: n, q: 1}
}

// reduce divides out gcd(|p|, |q|) and moves the sign to the numerator.
// Precondition (checked by callers): q != 0.
func reduce[T constraints.Signed](p, q T) Rational[T] {
	g := gcd(absInt(p), absInt(q))
	p, q = p/g, q/g
	if q < 0 {
		p, q = -p, -q
	}

	return Rational[T]{p: p, q: q}
}

// gcd is Euclid's algorithm on non-negative operands.
// gcd(0, 0) never occurs here: reduce is only reached with q != 0.
func gcd[T constraints.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// absInt returns |n| on the raw integer width.
func absInt[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}

	return n
}

// Num returns the canonical numerator (carries the sign).
func (r Rational[T]) Num() T { return r.p }

// Den returns the canonical denominator (always > 0).
func (r Rational[T]) Den() T { return r.q }

// IsZero reports whether r equals 0 (canonical numerator is zero).
func (r Rational[T]) IsZero() bool { return r.p == 0 }

// Signbit reports whether r is strictly negative. Under the canonical
// invariant the denominator is always positive, so only the numerator's
// sign matters — the historical pre-canonical xor branch is dead here.
func (r Rational[T]) Signbit() bool { return r.p < 0 }

// Zero returns the additive identity 0/1. Usable on the zero value.
func (Rational[T]) Zero() Rational[T] { return Rational[T]{p: 0, q: 1} }

// One returns the multiplicative identity 1/1. Usable on the zero value.
func (Rational[T]) One() Rational[T] { return Rational[T]{p: 1, q: 1} }

// Float64 converts r to floating point as p/q. Exactness is lost here by
// design; use it only at the boundary (display, plotting, comparisons
// against measured data).
func (r Rational[T]) Float64() float64 {
	return float64(r.p) / float64(r.q)
}

// String renders the canonical form: "p" when the denominator is 1,
// otherwise "p/q".
func (r Rational[T]) String() string {
	if r.q == 1 {
		return fmt.Sprintf("%d", r.p)
	}

	return fmt.Sprintf("%d/%d", r.p, r.q)
}
