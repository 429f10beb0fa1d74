// Package bandersnatch implements GLV scalar multiplication for the
// Bandersnatch curve, a twisted Edwards curve defined over the BLS12-381
// scalar field.
//
// Unlike the j=0 curves, Bandersnatch's efficient endomorphism has
// degree 2, and satisfies phi^2 = [-2] on the prime order subgroup,
// so phi has no finite order.
//
// See: https://eprint.iacr.org/2021/1152.pdf
package bandersnatch

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/helpers"
)

var (
	// c0 and c1 are the endomorphism coefficients.
	c0 = mustElementFromDecimal("37446463827641770816307242315180085052603635617490163568005256780843403514036")
	c1 = mustElementFromDecimal("49199877423542878313146170939139662862850515542392585932876811575731455068989")

	params = func() *glv.Params {
		p, err := glv.NewParams(
			helpers.MustBigFromDecimal("13108968793781547619861935127046491459309155893440570251786403306729687672801"),
			helpers.MustBigFromDecimal("8913659658109529928382530854484400854125314752504019737736543920008458395397"),
			&glv.Lattice{
				N: [4]*big.Int{
					helpers.MustBigFromDecimal("113482231691339203864511368254957623327"),
					helpers.MustBigFromDecimal("10741319382058138887739339959866629956"),
					helpers.MustBigFromDecimal("21482638764116277775478679919733259912"),
					helpers.MustBigFromDecimal("113482231691339203864511368254957623327"),
				},
				Neg: [4]bool{false, false, true, false},
			},
		)
		if err != nil {
			panic("bandersnatch: invalid GLV parameters: " + err.Error())
		}
		return p
	}()

	// Curve is the Bandersnatch prime order subgroup.
	Curve glv.Curve[curve.PointProj] = &bandersnatchCurve{}
)

// Params returns the GLV parameters.
func Params() *glv.Params {
	return params
}

// Decompose splits `k` into `(k1, k2)`, such that
// `k = s1 * k1 + s2 * k2 * lambda mod r`, where `s1` is -1 iff `neg1`
// is set, 1 otherwise (and likewise for `s2`).  `k` is reduced mod r.
func Decompose(k *big.Int) (k1 *big.Int, neg1 bool, k2 *big.Int, neg2 bool) {
	return params.Decompose(k)
}

// Endomorphism sets `v = phi(p)`, and returns `v`.
func Endomorphism(v, p *curve.PointProj) *curve.PointProj {
	// The map is undefined at the identity (the numerator and the
	// denominator both vanish), which is fixed by every endomorphism.
	if p.IsZero() {
		return setIdentity(v)
	}

	// f = c1 * (Z^2 - Y^2)
	// g = c0 * (Y^2 + c0 * Z^2)
	// h = Y^2 - c0 * Z^2
	//
	// phi(X:Y:Z) = (f * h : g * X * Y : h * X * Y)
	var zz, yy, xy, c0zz, f, g, h fr.Element
	zz.Square(&p.Z)
	yy.Square(&p.Y)
	xy.Mul(&p.X, &p.Y)
	c0zz.Mul(&c0, &zz)

	f.Sub(&zz, &yy).Mul(&f, &c1)
	g.Add(&yy, &c0zz).Mul(&g, &c0)
	h.Sub(&yy, &c0zz)

	v.X.Mul(&f, &h)
	v.Y.Mul(&g, &xy)
	v.Z.Mul(&h, &xy)

	return v
}

// ScalarMult sets `v = k * p`, and returns `v` in variable time.
func ScalarMult(v, p *curve.PointProj, k *big.Int) *curve.PointProj {
	return glv.ScalarMult(Curve, v, p, k)
}

type bandersnatchCurve struct{}

func (c *bandersnatchCurve) Identity(v *curve.PointProj) *curve.PointProj {
	return setIdentity(v)
}

func (c *bandersnatchCurve) IsIdentity(p *curve.PointProj) bool {
	return p.IsZero()
}

func (c *bandersnatchCurve) Set(v, p *curve.PointProj) *curve.PointProj {
	return v.Set(p)
}

func (c *bandersnatchCurve) Add(v, p, q *curve.PointProj) *curve.PointProj {
	// The formulas are complete, and only write to v after all reads.
	return v.Add(p, q)
}

func (c *bandersnatchCurve) Double(v, p *curve.PointProj) *curve.PointProj {
	return v.Double(p)
}

func (c *bandersnatchCurve) Negate(v, p *curve.PointProj) *curve.PointProj {
	return v.Neg(p)
}

func (c *bandersnatchCurve) Equal(p, q *curve.PointProj) bool {
	return p.Equal(q)
}

func (c *bandersnatchCurve) Endomorphism(v, p *curve.PointProj) *curve.PointProj {
	return Endomorphism(v, p)
}

func (c *bandersnatchCurve) Params() *glv.Params {
	return params
}

func setIdentity(v *curve.PointProj) *curve.PointProj {
	v.X.SetZero()
	v.Y.SetOne()
	v.Z.SetOne()
	return v
}

func mustElementFromDecimal(s string) fr.Element {
	var z fr.Element
	z.SetBigInt(helpers.MustBigFromDecimal(s))
	return z
}
