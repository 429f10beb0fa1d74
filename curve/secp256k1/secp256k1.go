// Package secp256k1 implements GLV scalar multiplication for the
// secp256k1 curve.
package secp256k1

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/helpers"
	"gitlab.com/yawning/glv-voi/internal/jacobian"
)

// This is the infamous endomorphism-based secp256k1 acceleration.  The
// constants are the same as libsecp256k1's.
//
// See: https://bitcointalk.org/index.php?topic=3238.0

var (
	// Beta = 0x7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee
	beta = func() fp.Element {
		var z fp.Element
		z.SetBigInt(helpers.MustBigFromHex("0x7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee"))
		return z
	}()

	params = func() *glv.Params {
		p, err := glv.NewParams(
			fr.Modulus(),
			// Lambda = 0x5363ad4cc05c30e0a5261c028812645a122e22ea20816678df02967c1b23bd72
			helpers.MustBigFromHex("0x5363ad4cc05c30e0a5261c028812645a122e22ea20816678df02967c1b23bd72"),
			&glv.Lattice{
				// (a1, b1) = ( 0x3086d221a7d46bcde86c90e49284eb15, -0xe4437ed6010e88286f547fa90abfe4c3)
				// (a2, b2) = (0x114ca50f7a8e2f3f657c1108d9d44cfd8,  0x3086d221a7d46bcde86c90e49284eb15)
				N: [4]*big.Int{
					helpers.MustBigFromHex("0x3086d221a7d46bcde86c90e49284eb15"),
					helpers.MustBigFromHex("0xe4437ed6010e88286f547fa90abfe4c3"),
					helpers.MustBigFromHex("0x114ca50f7a8e2f3f657c1108d9d44cfd8"),
					helpers.MustBigFromHex("0x3086d221a7d46bcde86c90e49284eb15"),
				},
				Neg: [4]bool{false, true, false, false},
			},
		)
		if err != nil {
			panic("secp256k1: invalid GLV parameters: " + err.Error())
		}
		return p
	}()

	// G1 is the secp256k1 group.
	G1 glv.Curve[curve.G1Jac] = jacobian.New[curve.G1Jac](params, &identity, Endomorphism)

	identity = func() curve.G1Jac {
		var p curve.G1Jac
		p.X.SetOne()
		p.Y.SetOne()
		return p
	}()
)

// Params returns the GLV parameters.
func Params() *glv.Params {
	return params
}

// Decompose splits `k` into `(k1, k2)`, such that
// `k = s1 * k1 + s2 * k2 * lambda mod n`, where `s1` is -1 iff `neg1`
// is set, 1 otherwise (and likewise for `s2`).  Both k1 and k2 are
// less than 2^128.
func Decompose(k *fr.Element) (k1 *fr.Element, neg1 bool, k2 *fr.Element, neg2 bool) {
	kBig1, neg1, kBig2, neg2 := params.Decompose(k.BigInt(new(big.Int)))
	return new(fr.Element).SetBigInt(kBig1), neg1, new(fr.Element).SetBigInt(kBig2), neg2
}

// Endomorphism sets `v = phi(p) = (beta * x, y)`, and returns `v`.
func Endomorphism(v, p *curve.G1Jac) *curve.G1Jac {
	v.Set(p)
	v.X.Mul(&v.X, &beta)
	return v
}

// ScalarMult sets `v = k * p`, and returns `v` in variable time.
func ScalarMult(v, p *curve.G1Jac, k *fr.Element) *curve.G1Jac {
	return glv.ScalarMult(G1, v, p, k.BigInt(new(big.Int)))
}
