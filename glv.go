// Package glv implements scalar decomposition and endomorphism accelerated
// scalar multiplication, for elliptic curve groups that admit an efficiently
// computable non-trivial endomorphism.
//
// GLV decomposition is first documented in "Faster Point Multiplication
// on Elliptic Curves with Efficient Endomorphisms" by Gallant, Lambert,
// and Vanstone.
//
// Given P on the curve, in the prime order subgroup of order r, and an
// endomorphism phi, where phi(P) = lambda * P, an arbitrary scalar k is
// decomposed into k = k1 + k2 * lambda mod r, with |k1|, |k2| ~ sqrt(r),
// and then:
//
//	k * P = k1 * P + k2 * lambda * P
//	      = k1 * P + k2 * phi(P)
//
// The two half-length multiplies are done simultaneously, which roughly
// halves the number of doublings.
//
// See:
// - https://www.iacr.org/archive/crypto2001/21390189.pdf
// - https://link.springer.com/book/10.1007/b97644
// - https://eprint.iacr.org/2021/1152.pdf (Bandersnatch)
//
// Nothing in this package is constant time.
package glv

// Group is the group law of an elliptic curve group, over points of
// type P.  All arguments and receivers are allowed to alias.
type Group[P any] interface {
	// Identity sets `v = id`, and returns `v`.
	Identity(v *P) *P

	// IsIdentity returns true iff `p == id`.
	IsIdentity(p *P) bool

	// Set sets `v = p`, and returns `v`.
	Set(v, p *P) *P

	// Add sets `v = p + q`, and returns `v`.
	Add(v, p, q *P) *P

	// Double sets `v = p + p`, and returns `v`.
	Double(v, p *P) *P

	// Negate sets `v = -p`, and returns `v`.
	Negate(v, p *P) *P

	// Equal returns true iff `p == q`.
	Equal(p, q *P) bool
}

// Curve is a Group equipped with an efficiently computable endomorphism
// phi, and the parameters required to decompose scalars with respect
// to phi's eigenvalue.
type Curve[P any] interface {
	Group[P]

	// Endomorphism sets `v = phi(p)`, and returns `v`.  For all `p`
	// in the prime order subgroup, `phi(p) = lambda * p`.
	Endomorphism(v, p *P) *P

	// Params returns the curve's GLV parameters.
	Params() *Params
}
