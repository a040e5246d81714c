// Package field: the Num constraint and identity helpers.
package field

import "fmt"

// Num is the self-referential constraint every coefficient type must
// satisfy to flow through the gauss/ and poly/ kernels.
//
// The method set mirrors the operations a field element supports:
// ring arithmetic (Add/Sub/Mul/Neg), division (Div, partial — panics on a
// zero divisor), integer scaling (MulInt/DivInt, the single promotion
// path for mixed integer arithmetic), magnitude and ordering (Abs/Cmp),
// and the two identities (Zero/One).
//
// Zero and One must not depend on the receiver's state: they are invoked
// on freshly allocated (zero-value) elements when seeding tables.
type Num[T any] interface {
	// Add returns receiver + other.
	Add(T) T

	// Sub returns receiver - other.
	Sub(T) T

	// Mul returns receiver * other.
	Mul(T) T

	// Div returns receiver / other. Dividing by the additive identity is
	// a programmer error and panics; guard with IsZero when the divisor
	// is data-dependent.
	Div(T) T

	// Neg returns the additive inverse of the receiver.
	Neg() T

	// Abs returns the magnitude of the receiver (never negative under Cmp).
	Abs() T

	// MulInt returns receiver scaled by a plain integer k.
	MulInt(k int) T

	// DivInt returns receiver divided by a plain non-zero integer k.
	// Panics when k == 0.
	DivInt(k int) T

	// IsZero reports whether the receiver equals the additive identity.
	IsZero() bool

	// Cmp compares receiver against other: -1 if less, 0 if equal, +1 if greater.
	// Must implement a strict total order consistent with the numeric value.
	Cmp(T) int

	// Zero returns the additive identity of the type.
	Zero() T

	// One returns the multiplicative identity of the type.
	One() T

	fmt.Stringer
}

// Zero returns the additive identity of any Num type.
// Complexity: O(1).
func Zero[T Num[T]]() T {
	var t T

	return t.Zero()
}

// One returns the multiplicative identity of any Num type.
// Complexity: O(1).
func One[T Num[T]]() T {
	var t T

	return t.One()
}

// FromInt builds the Num value k·1 by the single integer-promotion path
// shared with Num.MulInt. Complexity: O(1).
func FromInt[T Num[T]](k int) T {
	var t T

	return t.One().MulInt(k)
}
