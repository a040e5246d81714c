// Package field: floating-point adapter for the Num contract.
package field

import "strconv"

// Float64 adapts plain float64 to the Num contract, for callers that want
// the kernels without exact arithmetic (pivot magnitudes then matter for
// stability, not fraction growth).
//
// Unlike raw IEEE float64, Div and DivInt panic on a zero divisor: the
// kernels treat a zero divide as a programmer error and never rely on
// ±Inf/NaN propagation.
type Float64 float64

// Add returns a + b.
func (a Float64) Add(b Float64) Float64 { return a + b }

// Sub returns a - b.
func (a Float64) Sub(b Float64) Float64 { return a - b }

// Mul returns a * b.
func (a Float64) Mul(b Float64) Float64 { return a * b }

// Div returns a / b. Panics when b == 0.
func (a Float64) Div(b Float64) Float64 {
	if b == 0 {
		panic("field: division by zero")
	}

	return a / b
}

// Neg returns -a.
func (a Float64) Neg() Float64 { return -a }

// Abs returns the magnitude of a.
func (a Float64) Abs() Float64 {
	if a < 0 {
		return -a
	}

	return a
}

// MulInt returns a scaled by k.
func (a Float64) MulInt(k int) Float64 { return a * Float64(k) }

// DivInt returns a divided by k. Panics when k == 0.
func (a Float64) DivInt(k int) Float64 {
	if k == 0 {
		panic("field: division by zero")
	}

	return a / Float64(k)
}

// IsZero reports whether a is exactly 0.
func (a Float64) IsZero() bool { return a == 0 }

// Cmp compares a against b: -1 if less, 0 if equal, +1 if greater.
func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Zero returns the additive identity.
func (Float64) Zero() Float64 { return 0 }

// One returns the multiplicative identity.
func (Float64) One() Float64 { return 1 }

// String renders a with the shortest representation that round-trips.
func (a Float64) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}
