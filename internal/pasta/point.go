// Package pasta implements the group law of the Pasta curves
// (`y^2 = x^3 + 5`), over either of the two Pasta fields.
package pasta

import (
	"errors"

	"gitlab.com/yawning/glv-voi/internal/disalloweq"
	"gitlab.com/yawning/glv-voi/internal/pasta/field"
)

var errNotOnCurve = errors.New("pasta: point not on curve")

// Point represents a point on a Pasta curve.  All arguments and
// receivers are allowed to alias.  The zero value is NOT valid, and
// may only be used as a receiver.
type Point[M field.Modulus] struct {
	_ disalloweq.DisallowEqual

	// The point internally is represented in projective coordinates
	// (X, Y, Z) where x = X/Z y = Y/Z.
	x, y, z field.Element[M]

	isValid bool
}

// Identity sets `v = id`, and returns `v`.
func (v *Point[M]) Identity() *Point[M] {
	v.x.Zero()
	v.y.One()
	v.z.Zero()

	v.isValid = true
	return v
}

// Generator sets `v = G`, and returns `v`, where `G = (-1, 2)`.
func (v *Point[M]) Generator() *Point[M] {
	v.x.Negate(v.x.One())
	v.y.SetUint64(2)
	v.z.One()

	v.isValid = true
	return v
}

// Add sets `v = p + q`, and returns `v`.
func (v *Point[M]) Add(p, q *Point[M]) *Point[M] {
	assertPointsValid(p, q)

	v.addComplete(p, q)

	v.isValid = p.isValid && q.isValid
	return v
}

// Double sets `v = p + p`, and returns `v`.  Calling `Add(p, p)` will
// also return correct results, however this method is faster.
func (v *Point[M]) Double(p *Point[M]) *Point[M] {
	assertPointsValid(p)

	v.doubleComplete(p)

	v.isValid = p.isValid
	return v
}

// Subtract sets `v = p - q`, and returns `v`.
func (v *Point[M]) Subtract(p, q *Point[M]) *Point[M] {
	assertPointsValid(p, q)
	return v.Add(p, newRcvr[M]().Negate(q))
}

// Negate sets `v = -p`, and returns `v`.
func (v *Point[M]) Negate(p *Point[M]) *Point[M] {
	assertPointsValid(p)

	v.x.Set(&p.x)
	v.y.Negate(&p.y)
	v.z.Set(&p.z)

	v.isValid = p.isValid
	return v
}

// Endomorphism sets `v = phi(p)`, and returns `v`, where
// `phi(x, y) = (beta * x, y)`, and beta is a fixed primitive cube root
// of unity in the base field.
func (v *Point[M]) Endomorphism(p *Point[M]) *Point[M] {
	assertPointsValid(p)

	v.x.MultiplyByCubeRootOfUnity(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)

	v.isValid = p.isValid
	return v
}

// ConditionalSelect sets `v = a` iff `ctrl == 0`, `v = b` otherwise,
// and returns `v`.
func (v *Point[M]) ConditionalSelect(a, b *Point[M], ctrl uint64) *Point[M] {
	assertPointsValid(a, b)

	v.uncheckedConditionalSelect(a, b, ctrl)
	v.isValid = a.isValid && b.isValid

	return v
}

func (v *Point[M]) uncheckedConditionalSelect(a, b *Point[M], ctrl uint64) *Point[M] {
	v.x.ConditionalSelect(&a.x, &b.x, ctrl)
	v.y.ConditionalSelect(&a.y, &b.y, ctrl)
	v.z.ConditionalSelect(&a.z, &b.z, ctrl)
	return v
}

// Equal returns 1 iff `v == p`, 0 otherwise.
func (v *Point[M]) Equal(p *Point[M]) uint64 {
	assertPointsValid(v, p)

	// Check X1Z2 == X2Z1 Y1Z2 == Y2Z1
	x1z2 := field.NewElement[M]().Multiply(&v.x, &p.z)
	x2z1 := field.NewElement[M]().Multiply(&p.x, &v.z)

	y1z2 := field.NewElement[M]().Multiply(&v.y, &p.z)
	y2z1 := field.NewElement[M]().Multiply(&p.y, &v.z)

	return x1z2.Equal(x2z1) & y1z2.Equal(y2z1)
}

// IsIdentity returns 1 iff v is the identity point, 0 otherwise.
func (v *Point[M]) IsIdentity() uint64 {
	assertPointsValid(v)

	return v.z.IsZero()
}

// Set sets `v = p`, and returns `v`.
func (v *Point[M]) Set(p *Point[M]) *Point[M] {
	assertPointsValid(p)

	v.x.Set(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.isValid = p.isValid

	return v
}

// SetAffine sets `v = (x, y)`, and returns `v`.  If `(x, y)` is not on
// the curve, SetAffine returns nil and an error, and the receiver is
// unchanged.  The Pasta curves have prime order, so every point on the
// curve is in the group.
func (v *Point[M]) SetAffine(x, y *field.Element[M]) (*Point[M], error) {
	// y^2 = x^3 + 5
	lhs := field.NewElement[M]().Square(y)
	rhs := field.NewElement[M]().Square(x)
	rhs.Multiply(rhs, x)
	rhs.Add(rhs, field.NewElement[M]().SetUint64(curveB))
	if lhs.Equal(rhs) != 1 {
		return nil, errNotOnCurve
	}

	v.x.Set(x)
	v.y.Set(y)
	v.z.One()
	v.isValid = true

	return v, nil
}

// Affine returns the affine coordinates of `v`, or an error if `v` is
// the point at infinity.
func (v *Point[M]) Affine() (*field.Element[M], *field.Element[M], error) {
	assertPointsValid(v)

	if v.IsIdentity() == 1 {
		return nil, nil, errors.New("pasta: point is the point at infinity")
	}

	scaled := newRcvr[M]().rescale(v)
	return field.NewElementFrom(&scaled.x), field.NewElementFrom(&scaled.y), nil
}

// rescale sets `v = p` with `Z = 1` (or `(0, 1, 0)` for the identity),
// and returns `v`.
func (v *Point[M]) rescale(p *Point[M]) *Point[M] {
	assertPointsValid(p)

	if p.IsIdentity() == 1 {
		return v.Identity()
	}

	zInv := field.NewElement[M]().Invert(&p.z)
	v.x.Multiply(&p.x, zInv)
	v.y.Multiply(&p.y, zInv)
	v.z.One()
	v.isValid = true

	return v
}

// NewGeneratorPoint returns a new Point set to the canonical generator.
func NewGeneratorPoint[M field.Modulus]() *Point[M] {
	return newRcvr[M]().Generator()
}

// NewIdentityPoint returns a new Point set to the identity (point at infinity).
func NewIdentityPoint[M field.Modulus]() *Point[M] {
	return newRcvr[M]().Identity()
}

// NewPointFrom creates a new Point from another.
func NewPointFrom[M field.Modulus](p *Point[M]) *Point[M] {
	assertPointsValid(p)

	return newRcvr[M]().Set(p)
}

// NewPointFromAffine creates a new Point from affine coordinates.
func NewPointFromAffine[M field.Modulus](x, y *field.Element[M]) (*Point[M], error) {
	return newRcvr[M]().SetAffine(x, y)
}

// assertPointsValid ensures that the points have been initialized.
func assertPointsValid[M field.Modulus](points ...*Point[M]) {
	for _, p := range points {
		if !p.isValid {
			panic("pasta: use of uninitialized Point")
		}
	}
}

func newRcvr[M field.Modulus]() *Point[M] {
	return &Point[M]{}
}
