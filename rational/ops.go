// Package rational: arithmetic, comparisons and mixed integer operations.
//
// Every binary operation reduces its result, so values stay as small as the
// chosen width allows. Mixed rational⊕integer arithmetic goes through the
// single coercion path FromInt — the integer is promoted to n/1 once and
// the rational⊕rational code runs; no operator logic is duplicated.
package rational

import "golang.org/x/exp/constraints"

// Add returns r + o, canonical.
// Denominators are combined over their lcm (not the plain product) to keep
// intermediate numerators as small as possible before reduction.
func (r Rational[T]) Add(o Rational[T]) Rational[T] {
	l := lcm(r.q, o.q)

	return reduce(r.p*(l/r.q)+o.p*(l/o.q), l)
}

// Sub returns r - o, canonical.
func (r Rational[T]) Sub(o Rational[T]) Rational[T] {
	l := lcm(r.q, o.q)

	return reduce(r.p*(l/r.q)-o.p*(l/o.q), l)
}

// Mul returns r * o, canonical.
func (r Rational[T]) Mul(o Rational[T]) Rational[T] {
	return reduce(r.p*o.p, r.q*o.q)
}

// Div returns r / o, canonical.
// Panics when o is zero: inverting 0/1 would smuggle a zero denominator
// into reduction, so the precondition is enforced here instead.
func (r Rational[T]) Div(o Rational[T]) Rational[T] {
	if o.p == 0 {
		panic(panicDivisionByZero)
	}

	return reduce(r.p*o.q, r.q*o.p)
}

// Neg returns -r, canonical (negating a canonical value stays canonical).
func (r Rational[T]) Neg() Rational[T] {
	return Rational[T]{p: -r.p, q: r.q}
}

// Abs returns |r|. Under the canonical invariant the denominator is
// already positive, so only the numerator may flip.
func (r Rational[T]) Abs() Rational[T] {
	return Rational[T]{p: absInt(r.p), q: r.q}
}

// Equal reports exact equality by cross-multiplication (a·d == c·b).
// On canonical values this coincides with field-wise equality; the
// cross-multiplied form is kept so the predicate stays correct even if a
// caller compares values of independent provenance.
func (r Rational[T]) Equal(o Rational[T]) bool {
	return r.p*o.q == o.p*r.q
}

// Cmp compares r against o: -1 if r < o, 0 if equal, +1 if r > o.
// A plain cross-multiply is sufficient: both denominators are positive
// under the canonical invariant, so the comparison never flips.
func (r Rational[T]) Cmp(o Rational[T]) int {
	a, b := r.p*o.q, o.p*r.q
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Less reports r < o under the strict total order of Cmp.
func (r Rational[T]) Less(o Rational[T]) bool { return r.Cmp(o) < 0 }

// AddInt returns r + k/1 through the single coercion path.
func (r Rational[T]) AddInt(k int) Rational[T] { return r.Add(FromInt(T(k))) }

// SubInt returns r - k/1 through the single coercion path.
func (r Rational[T]) SubInt(k int) Rational[T] { return r.Sub(FromInt(T(k))) }

// MulInt returns r scaled by a plain integer k (k is converted onto the
// rational's own width first; pick T wide enough for the scale factors).
func (r Rational[T]) MulInt(k int) Rational[T] { return r.Mul(FromInt(T(k))) }

// DivInt returns r divided by a plain integer k. Panics when k == 0.
func (r Rational[T]) DivInt(k int) Rational[T] {
	if k == 0 {
		panic(panicDivisionByZero)
	}

	return r.Div(FromInt(T(k)))
}

// lcm is the least common multiple of two positive denominators.
// Dividing before multiplying keeps the intermediate inside T's range
// whenever the final lcm itself fits.
func lcm[T constraints.Signed](a, b T) T {
	return a / gcd(a, b) * b
}
