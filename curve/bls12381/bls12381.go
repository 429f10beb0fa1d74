// Package bls12381 implements GLV scalar multiplication for the
// BLS12-381 G1 and G2 groups.
package bls12381

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/helpers"
	"gitlab.com/yawning/glv-voi/internal/jacobian"
)

// For BLS12 curves r = x^4 - x^2 + 1, where x is the curve's seed, so
// both -x^2 and x^2 - 1 are cube roots of unity mod r, and the lattice
// has a particularly simple basis.  Here lambda = -x^2 mod r, with the
// basis {(-x^2, -1), (1, -(x^2 - 1))}.

var (
	beta = func() fp.Element {
		var z fp.Element
		z.SetBigInt(helpers.MustBigFromDecimal("793479390729215512621379701633421447060886740281060493010456487427281649075476305620758731620350"))
		return z
	}()
	beta2 = func() fp.Element {
		var z fp.Element
		z.Square(&beta)
		return z
	}()

	params = func() *glv.Params {
		p, err := glv.NewParams(
			fr.Modulus(),
			helpers.MustBigFromDecimal("52435875175126190479447740508185965837461563690374988244538805122978187051009"),
			&glv.Lattice{
				N: [4]*big.Int{
					helpers.MustBigFromDecimal("228988810152649578064853576960394133504"), // x^2
					big.NewInt(1),
					big.NewInt(1),
					helpers.MustBigFromDecimal("228988810152649578064853576960394133503"), // x^2 - 1
				},
				Neg: [4]bool{true, true, false, true},
			},
		)
		if err != nil {
			panic("bls12381: invalid GLV parameters: " + err.Error())
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
