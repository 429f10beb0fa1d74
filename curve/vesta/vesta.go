// Package vesta implements GLV scalar multiplication for the Vesta
// curve (`y^2 = x^3 + 5` over Fq, of order p).
//
// See: https://electriccoin.co/blog/the-pasta-curves-for-halo-2-and-beyond/
package vesta

import (
	"math/big"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/helpers"
	"gitlab.com/yawning/glv-voi/internal/pasta"
	"gitlab.com/yawning/glv-voi/internal/pasta/field"
)

// Point is a Vesta point.
type Point = pasta.Point[field.Fq]

// Scalar is a Vesta scalar.
type Scalar = field.Element[field.Fp]

var (
	params = func() *glv.Params {
		p, err := glv.NewParams(
			field.ModulusBig[field.Fp](),
			helpers.MustBigFromDecimal("20444556541222657078399132219657928148671392403212669005631716460534733845831"),
			&glv.Lattice{
				N: [4]*big.Int{
					helpers.MustBigFromDecimal("98231058071100081932162823354453065729"),
					helpers.MustBigFromDecimal("98231058071186745657228807397848383488"),
					helpers.MustBigFromDecimal("196462116142286827589391630752301449217"),
					helpers.MustBigFromDecimal("98231058071100081932162823354453065729"),
				},
				Neg: [4]bool{false, true, false, false},
			},
		)
		if err != nil {
			panic("vesta: invalid GLV parameters: " + err.Error())
		}
		return p
	}()

	// Curve is the Vesta group.
	Curve glv.Curve[Point] = pasta.NewCurve[field.Fq](params)
)

// Params returns the GLV parameters.
func Params() *glv.Params {
	return params
}

// NewGeneratorPoint returns a new Point set to the generator `(-1, 2)`.
func NewGeneratorPoint() *Point {
	return pasta.NewGeneratorPoint[field.Fq]()
}

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint() *Point {
	return pasta.NewIdentityPoint[field.Fq]()
}

// Decompose splits `k` into `(k1, k2)`, such that
// `k = s1 * k1 + s2 * k2 * lambda mod p`, where `s1` is -1 iff `neg1`
// is set, 1 otherwise (and likewise for `s2`).
func Decompose(k *Scalar) (k1 *Scalar, neg1 bool, k2 *Scalar, neg2 bool) {
	bk1, neg1, bk2, neg2 := params.Decompose(k.BigInt())
	return field.NewElementFromBigInt[field.Fp](bk1), neg1, field.NewElementFromBigInt[field.Fp](bk2), neg2
}

// Endomorphism sets `v = phi(p)`, and returns `v`.
func Endomorphism(v, p *Point) *Point {
	return v.Endomorphism(p)
}

// ScalarMult sets `v = k * p`, and returns `v` in variable time.
func ScalarMult(v, p *Point, k *Scalar) *Point {
	return glv.ScalarMult(Curve, v, p, k.BigInt())
}
