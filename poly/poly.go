// Package poly: the Poly type, constructors and algebraic transforms.
package poly

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/stencil/field"
)

// ErrBadShape is returned by FromCoeffs when the coefficient table is
// empty or ragged.
var ErrBadShape = errors.New("poly: invalid coefficient table shape")

const panicBadSize = "poly: degree must be >= 0 and channels > 0"

// Poly is a polynomial of maximum degree Degree whose coefficients are
// N-vectors: coeffs[d][i] is the coefficient of x^d for channel i.
// The zero value is not usable; construct through New, FromCoeffs or Basis.
type Poly[T field.Num[T]] struct {
	degree int
	n      int
	coeffs [][]T // (degree+1) × n, owned, never exposed
}

// New returns the zero polynomial of the given maximum degree with n
// channels. Panics on a negative degree or non-positive n.
// Complexity: O(degree·n).
func New[T field.Num[T]](degree, n int) Poly[T] {
	if degree < 0 || n <= 0 {
		panic(panicBadSize)
	}

	zero := field.Zero[T]()
	coeffs := make([][]T, degree+1)
	var d, i int // loop iterators
	for d = 0; d <= degree; d++ {
		coeffs[d] = make([]T, n)
		for i = 0; i < n; i++ {
			coeffs[d][i] = zero
		}
	}

	return Poly[T]{degree: degree, n: n, coeffs: coeffs}
}

// FromCoeffs builds a Poly from an explicit (degree+1)×n table.
// The table is deep-copied; the caller keeps ownership of its slices.
// Returns ErrBadShape on an empty or ragged table.
func FromCoeffs[T field.Num[T]](coeffs [][]T) (Poly[T], error) {
	if len(coeffs) == 0 || len(coeffs[0]) == 0 {
		return Poly[T]{}, ErrBadShape
	}

	n := len(coeffs[0])
	own := make([][]T, len(coeffs))
	for d, row := range coeffs {
		if len(row) != n {
			return Poly[T]{}, ErrBadShape
		}
		own[d] = make([]T, n)
		copy(own[d], row)
	}

	return Poly[T]{degree: len(coeffs) - 1, n: n, coeffs: own}, nil
}

// Basis returns the canonical identity-channel polynomial of the given
// order: channel i is the monomial x^i (coeffs[d][d] = 1, zero elsewhere).
// Constraint rows for scheme derivation are produced by evaluating,
// differentiating or integrating this polynomial.
// Panics on a negative order.
func Basis[T field.Num[T]](order int) Poly[T] {
	p := New[T](order, order+1)
	one := field.One[T]()
	for d := 0; d <= order; d++ {
		p.coeffs[d][d] = one
	}

	return p
}

// Degree returns the maximum exponent of the polynomial.
func (p Poly[T]) Degree() int { return p.degree }

// Channels returns the number of parallel output channels N.
func (p Poly[T]) Channels() int { return p.n }

// At returns the coefficient of x^d for channel i.
// Panics on out-of-range indices (slice bounds), as indexing a value type
// with known compile-time-ish shape is a programmer error when misused.
func (p Poly[T]) At(d, i int) T { return p.coeffs[d][i] }

// Coeffs returns a deep copy of the coefficient table.
func (p Poly[T]) Coeffs() [][]T {
	out := make([][]T, len(p.coeffs))
	for d, row := range p.coeffs {
		out[d] = make([]T, len(row))
		copy(out[d], row)
	}

	return out
}

// Evaluate computes p(x) channel-wise: result[i] = Σ_d coeffs[d][i]·x^d,
// accumulating powers of x as it sweeps the degrees.
// Evaluation at plain integers goes through the numeric type's promotion
// path (e.g. rational.FromInt). Complexity: O(degree·n).
func (p Poly[T]) Evaluate(x T) []T {
	result := make([]T, p.n)
	copy(result, p.coeffs[0])

	xi := x
	var d, i int
	for d = 1; d <= p.degree; d++ {
		for i = 0; i < p.n; i++ {
			result[i] = result[i].Add(p.coeffs[d][i].Mul(xi))
		}
		xi = xi.Mul(x)
	}

	return result
}

// Derivate returns the order-th derivative as a same-shape polynomial:
// vacated top rows become structurally zero rather than shrinking the
// table, so repeated differentiation of a degree-1 polynomial yields the
// zero polynomial of the same shape. order <= 0 (or a degree-0 receiver)
// returns the receiver unchanged. One derivative step is applied order
// times in a plain loop. Complexity: O(order·degree·n).
func (p Poly[T]) Derivate(order int) Poly[T] {
	if order <= 0 || p.degree == 0 {
		return p
	}

	out := p
	for s := 0; s < order; s++ {
		out = out.derivateOnce()
	}

	return out
}

// derivateOnce applies the single derivative step:
// coeffs'[d-1][i] = d · coeffs[d][i] for d in [1, degree].
func (p Poly[T]) derivateOnce() Poly[T] {
	out := New[T](p.degree, p.n)
	var d, i int
	for d = 1; d <= p.degree; d++ {
		for i = 0; i < p.n; i++ {
			out.coeffs[d-1][i] = p.coeffs[d][i].MulInt(d)
		}
	}

	return out
}

// Primitive returns the antiderivative normalized to vanish at the
// origin: a polynomial of one higher maximum degree with
// coeffs'[d][i] = coeffs[d-1][i] / d and a zero constant row.
// Complexity: O(degree·n).
func (p Poly[T]) Primitive() Poly[T] {
	out := New[T](p.degree+1, p.n)
	var d, i int
	for d = 1; d <= p.degree+1; d++ {
		for i = 0; i < p.n; i++ {
			out.coeffs[d][i] = p.coeffs[d-1][i].DivInt(d)
		}
	}

	return out
}

// Integrate computes the definite integral over [a, b] channel-wise, as
// Primitive evaluated at b minus Primitive evaluated at a. Antisymmetric
// in its endpoints: Integrate(a, b) == -Integrate(b, a). Exact at
// rational endpoints (e.g. half-integer cell faces in finite volumes).
// Complexity: O(degree·n).
func (p Poly[T]) Integrate(a, b T) []T {
	prim := p.Primitive()
	pa, pb := prim.Evaluate(a), prim.Evaluate(b)

	result := make([]T, p.n)
	for i := 0; i < p.n; i++ {
		result[i] = pb[i].Sub(pa[i])
	}

	return result
}

// String renders the polynomial as bracketed coefficient vectors with
// exponent annotations, e.g. "[0,1,0] + [-1/2,0,1/2] X + [1/2,-1,1/2] X^2".
// Display convenience for drivers and goldens, not an algebraic contract.
func (p Poly[T]) String() string {
	var sb strings.Builder
	for d := 0; d <= p.degree; d++ {
		if d > 0 {
			sb.WriteString(" + ")
		}
		writeVector(&sb, p.coeffs[d])
		if d == 1 {
			sb.WriteString(" X")
		} else if d > 1 {
			sb.WriteString(" X^")
			sb.WriteString(strconv.Itoa(d))
		}
	}

	return sb.String()
}

// writeVector renders one coefficient vector as "[c0,c1,...]".
func writeVector[T field.Num[T]](sb *strings.Builder, v []T) {
	sb.WriteByte('[')
	for i, c := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')
}
