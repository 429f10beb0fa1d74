// Package bn254 implements GLV scalar multiplication for the BN254
// (alt_bn128) G1 and G2 groups.
package bn254

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/helpers"
	"gitlab.com/yawning/glv-voi/internal/jacobian"
)

var (
	// Beta = 21888242871839275220042445260109153167277707414472061641714758635765020556616
	beta = func() fp.Element {
		var z fp.Element
		z.SetBigInt(helpers.MustBigFromDecimal("21888242871839275220042445260109153167277707414472061641714758635765020556616"))
		return z
	}()

	// Beta^2, which acts on the twist's x-coordinate with the same
	// eigenvalue.
	beta2 = func() fp.Element {
		var z fp.Element
		z.Square(&beta)
		return z
	}()

	params = func() *glv.Params {
		p, err := glv.NewParams(
			fr.Modulus(),
			helpers.MustBigFromDecimal("21888242871839275217838484774961031246154997185409878258781734729429964517155"),
			&glv.Lattice{
				N: [4]*big.Int{
					helpers.MustBigFromDecimal("147946756881789319000765030803803410728"),
					helpers.MustBigFromDecimal("9931322734385697763"),
					helpers.MustBigFromDecimal("9931322734385697763"),
					helpers.MustBigFromDecimal("147946756881789319010696353538189108491"),
				},
				Neg: [4]bool{false, true, false, false},
			},
		)
		if err != nil {
			panic("bn254: invalid GLV parameters: " + err.Error())
		}
		return p
	}()

	// G1 is the G1 group.
	G1 glv.Curve[curve.G1Jac] = jacobian.New[curve.G1Jac](params, &g1Identity, G1Endomorphism)

	// G2 is the G2 group.
	G2 glv.Curve[curve.G2Jac] = jacobian.New[curve.G2Jac](params, &g2Identity, G2Endomorphism)

	g1Identity = func() curve.G1Jac {
		var p curve.G1Jac
		p.X.SetOne()
		p.Y.SetOne()
		return p
	}()

	g2Identity = func() curve.G2Jac {
		var p curve.G2Jac
		p.X.SetOne()
		p.Y.SetOne()
		return p
	}()
)

// Params returns the GLV parameters shared by G1 and G2.
func Params() *glv.Params {
	return params
}

// Decompose splits `k` into `(k1, k2)`, such that
// `k = s1 * k1 + s2 * k2 * lambda mod r`, where `s1` is -1 iff `neg1`
// is set, 1 otherwise (and likewise for `s2`).
func Decompose(k *fr.Element) (k1 *fr.Element, neg1 bool, k2 *fr.Element, neg2 bool) {
	kBig1, neg1, kBig2, neg2 := params.Decompose(k.BigInt(new(big.Int)))
	return new(fr.Element).SetBigInt(kBig1), neg1, new(fr.Element).SetBigInt(kBig2), neg2
}

// G1Endomorphism sets `v = phi(p) = (beta * x, y)`, and returns `v`.
func G1Endomorphism(v, p *curve.G1Jac) *curve.G1Jac {
	// In Jacobian coordinates x = X/Z^2, so scaling X suffices.
	v.Set(p)
	v.X.Mul(&v.X, &beta)
	return v
}

// G2Endomorphism sets `v = phi(p) = (beta^2 * x, y)`, and returns `v`.
func G2Endomorphism(v, p *curve.G2Jac) *curve.G2Jac {
	v.Set(p)
	v.X.MulByElement(&v.X, &beta2)
	return v
}

// G1ScalarMult sets `v = k * p`, and returns `v` in variable time.
func G1ScalarMult(v, p *curve.G1Jac, k *fr.Element) *curve.G1Jac {
	return glv.ScalarMult(G1, v, p, k.BigInt(new(big.Int)))
}

// G2ScalarMult sets `v = k * p`, and returns `v` in variable time.
func G2ScalarMult(v, p *curve.G2Jac, k *fr.Element) *curve.G2Jac {
	return glv.ScalarMult(G2, v, p, k.BigInt(new(big.Int)))
}
