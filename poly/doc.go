// Package poly implements vector-valued polynomials: one object of fixed
// maximum degree whose coefficients are fixed-size vectors, so N related
// polynomials share a single monomial basis.
//
// 🚀 Why vector-valued?
//
//	A derived scheme answers "what weight does sample i carry" for every i
//	at once. Channel i of a Poly is the i-th weight polynomial; evaluating,
//	differentiating or integrating the Poly produces, channel-wise, the
//	whole stencil in one pass. The canonical Basis polynomial is the
//	identity-channel form where channel i IS the monomial x^i — its rows
//	under evaluation/derivation/integration are exactly the constraint rows
//	a scheme.Builder accumulates.
//
// Shape contract:
//
//	coeffs[d][i] is the coefficient of x^d for channel i; the table is
//	(Degree+1) × N. Derivate keeps the shape (vacated top rows become
//	structurally zero); Primitive grows the degree by one and fixes the
//	constant of integration at zero (the antiderivative vanishing at the
//	origin, not a general indefinite integral).
//
// Value semantics:
//
//	Every transform returns a fresh Poly; the receiver is never mutated and
//	no internal slice ever escapes (Coeffs returns a deep copy). Safe to
//	share across goroutines without locking.
//
// Errors:
//
//	– ErrBadShape (sentinel) — FromCoeffs on an empty or ragged table
//	– New panics on a negative degree or non-positive channel count
//	  (programmer error, same rule as invalid constructor parameters
//	  elsewhere in this module)
//
// Complexity: Evaluate O(Degree·N); Derivate O(order·Degree·N);
// Primitive O(Degree·N); Integrate O(Degree·N).
package poly
