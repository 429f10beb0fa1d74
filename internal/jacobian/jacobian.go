// Package jacobian adapts gnark-crypto's Jacobian short Weierstrass
// points to glv.Curve.
package jacobian

import "gitlab.com/yawning/glv-voi"

// Point is the subset of the gnark-crypto `G1Jac`/`G2Jac` API used by
// the adapter.
type Point[T any] interface {
	*T

	Set(a *T) *T
	Equal(a *T) bool
	Neg(a *T) *T
	AddAssign(a *T) *T
	Double(q *T) *T
}

// Curve is a glv.Curve over the gnark-crypto point type T.  All
// arguments and receivers are allowed to alias.
type Curve[T any, PT Point[T]] struct {
	params       *glv.Params
	identity     T
	endomorphism func(v, p *T) *T
}

// Identity sets `v = id`, and returns `v`.
func (c *Curve[T, PT]) Identity(v *T) *T {
	return PT(v).Set(&c.identity)
}

// IsIdentity returns true iff `p == id`.
func (c *Curve[T, PT]) IsIdentity(p *T) bool {
	return PT(p).Equal(&c.identity)
}

// Set sets `v = p`, and returns `v`.
func (c *Curve[T, PT]) Set(v, p *T) *T {
	return PT(v).Set(p)
}

// Add sets `v = p + q`, and returns `v`.
func (c *Curve[T, PT]) Add(v, p, q *T) *T {
	// AddAssign reads q after writing to the receiver, so go through a
	// temporary in case v and q alias.
	var tmp T
	PT(&tmp).Set(p)
	PT(&tmp).AddAssign(q)
	return PT(v).Set(&tmp)
}

// Double sets `v = p + p`, and returns `v`.
func (c *Curve[T, PT]) Double(v, p *T) *T {
	return PT(v).Double(p)
}

// Negate sets `v = -p`, and returns `v`.
func (c *Curve[T, PT]) Negate(v, p *T) *T {
	return PT(v).Neg(p)
}

// Equal returns true iff `p == q`.
func (c *Curve[T, PT]) Equal(p, q *T) bool {
	return PT(p).Equal(q)
}

// Endomorphism sets `v = phi(p)`, and returns `v`.
func (c *Curve[T, PT]) Endomorphism(v, p *T) *T {
	return c.endomorphism(v, p)
}

// Params returns the curve's GLV parameters.
func (c *Curve[T, PT]) Params() *glv.Params {
	return c.params
}

// New creates a new Curve.  `identity` is copied, and `endomorphism`
// MUST be safe to call with aliased arguments.
func New[T any, PT Point[T]](params *glv.Params, identity *T, endomorphism func(v, p *T) *T) *Curve[T, PT] {
	c := &Curve[T, PT]{
		params:       params,
		endomorphism: endomorphism,
	}
	PT(&c.identity).Set(identity)
	return c
}
