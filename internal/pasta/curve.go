package pasta

import (
	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/pasta/field"
)

// Curve adapts Point to the glv.Curve interface.
type Curve[M field.Modulus] struct {
	params *glv.Params
}

// NewCurve returns a new Curve using the provided GLV parameters.
func NewCurve[M field.Modulus](params *glv.Params) *Curve[M] {
	return &Curve[M]{
		params: params,
	}
}

func (c *Curve[M]) Identity(v *Point[M]) *Point[M] {
	return v.Identity()
}

func (c *Curve[M]) IsIdentity(p *Point[M]) bool {
	return p.IsIdentity() == 1
}

func (c *Curve[M]) Set(v, p *Point[M]) *Point[M] {
	return v.Set(p)
}

func (c *Curve[M]) Add(v, p, q *Point[M]) *Point[M] {
	return v.Add(p, q)
}

func (c *Curve[M]) Double(v, p *Point[M]) *Point[M] {
	return v.Double(p)
}

func (c *Curve[M]) Negate(v, p *Point[M]) *Point[M] {
	return v.Negate(p)
}

func (c *Curve[M]) Equal(p, q *Point[M]) bool {
	return p.Equal(q) == 1
}

func (c *Curve[M]) Endomorphism(v, p *Point[M]) *Point[M] {
	return v.Endomorphism(p)
}

func (c *Curve[M]) Params() *glv.Params {
	return c.params
}
