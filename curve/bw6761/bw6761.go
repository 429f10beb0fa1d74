// Package bw6761 implements GLV scalar multiplication for the BW6-761
// G1 and G2 groups.
//
// Both groups are defined over the 761-bit base field (G2 is a sextic
// twist, with b = 4), so the endomorphism of both is a multiplication
// of the x-coordinate by a cube root of unity in Fp.
package bw6761

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bw6-761"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fp"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/helpers"
	"gitlab.com/yawning/glv-voi/internal/jacobian"
)

var (
	beta = func() fp.Element {
		var z fp.Element
		z.SetBigInt(helpers.MustBigFromDecimal("4922464560225523242118178942575080391082002530232324381063048548642823052024664478336818169867474395270858391911405337707247735739826664939444490469542109391530482826728203582549674992333383150446779312029624171857054392282775648"))
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
			helpers.MustBigFromDecimal("258664426012969093929703085429980814127835149614277183275038967946009968870203535512256352201271898244626862047231"),
			&glv.Lattice{
				N: [4]*big.Int{
					helpers.MustBigFromDecimal("293634935485640680722085584138834120324914961969255022593"),
					helpers.MustBigFromDecimal("293634935485640680722085584138834120315328839056164388863"),
					helpers.MustBigFromDecimal("293634935485640680722085584138834120315328839056164388863"),
					helpers.MustBigFromDecimal("587269870971281361444171168277668240640243801025419411456"),
				},
				Neg: [4]bool{false, true, false, false},
			},
		)
		if err != nil {
			panic("bw6761: invalid GLV parameters: " + err.Error())
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
	v.X.Mul(&v.X, &beta2)
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
