// Package poly_test contains unit tests for the vector-valued polynomial
// algebra: evaluation, differentiation, antiderivative and definite
// integration over exact rationals.
package poly_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stencil/field"
	"github.com/katalvlaran/stencil/poly"
	"github.com/katalvlaran/stencil/rational"
)

type rat = rational.Rational[int64]

func r(p, q int64) rat { return rational.New(p, q) }
func ri(n int64) rat   { return rational.FromInt(n) }

// ratCmp lets go-cmp diff rational-valued tables through exact equality.
var ratCmp = cmp.Comparer(func(a, b rat) bool { return a.Equal(b) })

// requireTableEqual diffs two coefficient tables and fails with the diff.
func requireTableEqual(t *testing.T, want, got [][]rat) {
	t.Helper()
	if diff := cmp.Diff(want, got, ratCmp); diff != "" {
		t.Fatalf("coefficient table mismatch (-want +got):\n%s", diff)
	}
}

// TestBasis_IdentityChannels verifies that channel i of the canonical
// basis is the monomial x^i.
func TestBasis_IdentityChannels(t *testing.T) {
	t.Parallel()

	p := poly.Basis[rat](2)
	require.Equal(t, 2, p.Degree())
	require.Equal(t, 3, p.Channels())

	requireTableEqual(t, [][]rat{
		{ri(1), ri(0), ri(0)},
		{ri(0), ri(1), ri(0)},
		{ri(0), ri(0), ri(1)},
	}, p.Coeffs())

	// P(3) = [1, 3, 9]: channel i evaluates the monomial x^i.
	require.Equal(t, []rat{ri(1), ri(3), ri(9)}, p.Evaluate(ri(3)))
}

// TestEvaluate_RationalPoint checks evaluation at non-integer abscissae.
func TestEvaluate_RationalPoint(t *testing.T) {
	t.Parallel()

	p := poly.Basis[rat](2)
	require.Equal(t, []rat{ri(1), r(-1, 2), r(1, 4)}, p.Evaluate(r(-1, 2)))
}

// TestDerivate covers order-0 identity, the one-step rule, structural
// zeroing of the top rows, and collapse to the zero polynomial.
func TestDerivate(t *testing.T) {
	t.Parallel()

	p := poly.Basis[rat](2)

	require.Equal(t, p, p.Derivate(0), "order 0 returns the receiver unchanged")

	d1 := p.Derivate(1)
	requireTableEqual(t, [][]rat{
		{ri(0), ri(1), ri(0)},
		{ri(0), ri(0), ri(2)},
		{ri(0), ri(0), ri(0)},
	}, d1.Coeffs())

	d2 := p.Derivate(2)
	requireTableEqual(t, [][]rat{
		{ri(0), ri(0), ri(2)},
		{ri(0), ri(0), ri(0)},
		{ri(0), ri(0), ri(0)},
	}, d2.Coeffs())

	// Differentiating past the degree yields the structurally zero
	// polynomial of the same shape.
	zero := poly.New[rat](2, 3)
	require.Equal(t, zero.Coeffs(), p.Derivate(3).Coeffs())
	require.Equal(t, zero.Coeffs(), p.Derivate(4).Coeffs())
}

// TestDerivate_DoesNotMutateReceiver pins value semantics.
func TestDerivate_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	p := poly.Basis[rat](3)
	before := p.Coeffs()
	_ = p.Derivate(2)
	_ = p.Primitive()
	_ = p.Integrate(ri(0), ri(1))
	requireTableEqual(t, before, p.Coeffs())
}

// TestPrimitive verifies the antiderivative normalized to vanish at the
// origin, and the fundamental theorem Primitive().Derivate(1) == receiver
// (exact on rational coefficients).
func TestPrimitive(t *testing.T) {
	t.Parallel()

	p := poly.Basis[rat](2)
	prim := p.Primitive()
	require.Equal(t, 3, prim.Degree())

	requireTableEqual(t, [][]rat{
		{ri(0), ri(0), ri(0)},
		{ri(1), ri(0), ri(0)},
		{ri(0), r(1, 2), ri(0)},
		{ri(0), ri(0), r(1, 3)},
	}, prim.Coeffs())

	// d/dx of the primitive gives back p, padded with a zero top row.
	back := prim.Derivate(1)
	require.Equal(t, []rat{ri(1), ri(3), ri(9)}, back.Evaluate(ri(3)))
	requireTableEqual(t, [][]rat{
		{ri(1), ri(0), ri(0)},
		{ri(0), ri(1), ri(0)},
		{ri(0), ri(0), ri(1)},
		{ri(0), ri(0), ri(0)},
	}, back.Coeffs())
}

// TestIntegrate covers the reference fixture and antisymmetry in the
// interval endpoints.
func TestIntegrate(t *testing.T) {
	t.Parallel()

	p := poly.Basis[rat](2)

	// ∫ over [1/2, 3/2] of the derivative channels (0, 1, 2x) = [0, 1, 2].
	d1 := p.Derivate(1)
	require.Equal(t, []rat{ri(0), ri(1), ri(2)}, d1.Integrate(r(1, 2), r(3, 2)))

	// Antisymmetry: Integrate(a, b) == -Integrate(b, a), channel-wise.
	a, b := r(-3, 2), r(-1, 2)
	fwd, rev := p.Integrate(a, b), p.Integrate(b, a)
	require.Len(t, rev, len(fwd))
	for i := range fwd {
		require.True(t, fwd[i].Equal(rev[i].Neg()), "channel %d", i)
	}

	// Exact cell averages at half-integer faces: ∫_{-3/2}^{-1/2} x^d.
	require.Equal(t, []rat{ri(1), ri(-1), r(13, 12)}, fwd)
}

// TestFromCoeffs covers table ingestion, deep-copy ownership and the
// shape sentinel.
func TestFromCoeffs(t *testing.T) {
	t.Parallel()

	table := [][]rat{
		{ri(0), ri(1)},
		{r(-1, 2), r(1, 2)},
	}
	p, err := poly.FromCoeffs(table)
	require.NoError(t, err)
	require.Equal(t, 1, p.Degree())
	require.Equal(t, 2, p.Channels())
	require.Equal(t, r(-1, 2), p.At(1, 0))

	// Mutating the caller's table must not reach the polynomial.
	table[0][0] = ri(99)
	require.Equal(t, ri(0), p.At(0, 0))

	_, err = poly.FromCoeffs([][]rat{})
	require.ErrorIs(t, err, poly.ErrBadShape)
	_, err = poly.FromCoeffs([][]rat{{ri(1), ri(2)}, {ri(3)}})
	require.ErrorIs(t, err, poly.ErrBadShape)
}

// TestNew_PanicsOnBadSize pins the programmer-error panic.
func TestNew_PanicsOnBadSize(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { _ = poly.New[rat](-1, 3) })
	require.Panics(t, func() { _ = poly.New[rat](2, 0) })
}

// TestString pins the canonical rendering used by drivers and goldens.
func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[1,0,0] + [0,1,0] X + [0,0,1] X^2", poly.Basis[rat](2).String())
	require.Equal(t, "[0]", poly.New[rat](0, 1).String())

	s, err := poly.FromCoeffs([][]rat{
		{ri(0), ri(1), ri(0)},
		{r(-1, 2), ri(0), r(1, 2)},
		{r(1, 2), ri(-1), r(1, 2)},
	})
	require.NoError(t, err)
	require.Equal(t, "[0,1,0] + [-1/2,0,1/2] X + [1/2,-1,1/2] X^2", s.String())
}

// TestFloatChannel runs the algebra on the floating adapter to keep the
// generic path honest.
func TestFloatChannel(t *testing.T) {
	t.Parallel()

	p := poly.Basis[field.Float64](1)
	got := p.Integrate(0, 2)
	require.Len(t, got, 2)
	require.InDelta(t, 2.0, float64(got[0]), 1e-12)
	require.InDelta(t, 2.0, float64(got[1]), 1e-12)
}
