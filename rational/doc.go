// Package rational implements exact fractions of signed integers, always
// held in canonical (fully reduced) form.
//
// 🚀 What is a canonical rational?
//
//	A pair p/q with q > 0 and gcd(|p|, q) == 1. Every constructor and every
//	arithmetic operation returns a canonical value, so equality is exact,
//	ordering is a strict total order, and repeated fraction arithmetic never
//	drifts the way floating point does.
//
// The integer width is a type parameter: Rational[int64] for everyday
// schemes, Rational[int32] (or narrower) when the caller knows the
// coefficients stay small. Rational[T] satisfies field.Num[Rational[T]],
// so it flows directly through the gauss/ and poly/ kernels.
//
// Overflow:
//
//	Reduction after every operation keeps values as small as they can be,
//	but products of numerators/denominators can still exceed the chosen
//	width for high-order constraint systems. That is an accepted,
//	documented limitation — pick a wide enough T for the expected order;
//	there is no arbitrary-precision fallback (and deliberately no
//	math/big.Rat: the type must stay a flat value over a caller-chosen
//	fixed width).
//
// Errors (programmer errors, panic — never sentinel errors):
//
//	– constructing with a zero denominator
//	– dividing by a zero rational (or by the integer 0)
//
// Example:
//
//	a := rational.New[int64](6, -8) // canonicalized to -3/4
//	b := a.MulInt(2)               // -3/2
//	fmt.Println(b)                 // "-3/2"
package rational
