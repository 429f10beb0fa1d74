package bn254

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/glvtest"
)

func TestG1(t *testing.T) {
	g1Gen, _, _, _ := curve.Generators()

	glvtest.Run(t, &glvtest.Config[curve.G1Jac]{
		Name:      "bn254/G1",
		Curve:     G1,
		Generator: &g1Gen,
		RandomPoint: func(v *curve.G1Jac) *curve.G1Jac {
			return v.ScalarMultiplication(&g1Gen, mustRandomScalar())
		},
		Oracle: func(v, p *curve.G1Jac, k *big.Int) *curve.G1Jac {
			return v.ScalarMultiplication(p, k)
		},
		EndomorphismOrder: 3,
	})

	t.Run("Endomorphism/KAT", func(t *testing.T) {
		// G = (1, 2), phi(G) = (beta, 2)
		var gAff, phiAff curve.G1Affine
		gAff.FromJacobian(&g1Gen)
		require.True(t, gAff.X.IsOne(), "G.x = 1")

		var phiG curve.G1Jac
		G1Endomorphism(&phiG, &g1Gen)
		phiAff.FromJacobian(&phiG)
		require.True(t, phiAff.X.Equal(&beta), "phi(G).x = beta")
		require.True(t, phiAff.Y.Equal(&gAff.Y), "phi(G).y = G.y")
		require.True(t, phiAff.IsInSubGroup(), "phi(G) in G1")
	})
}

func TestG2(t *testing.T) {
	_, g2Gen, _, _ := curve.Generators()

	glvtest.Run(t, &glvtest.Config[curve.G2Jac]{
		Name:      "bn254/G2",
		Curve:     G2,
		Generator: &g2Gen,
		RandomPoint: func(v *curve.G2Jac) *curve.G2Jac {
			return v.ScalarMultiplication(&g2Gen, mustRandomScalar())
		},
		Oracle: func(v, p *curve.G2Jac, k *big.Int) *curve.G2Jac {
			return v.ScalarMultiplication(p, k)
		},
		EndomorphismOrder: 3,
	})

	t.Run("Endomorphism/SubGroup", func(t *testing.T) {
		var p curve.G2Jac
		G2Endomorphism(&p, &g2Gen)
		require.True(t, p.IsOnCurve(), "phi(G2) on curve")
		require.True(t, p.IsInSubGroup(), "phi(G2) in G2")
	})
}

func TestDecompose(t *testing.T) {
	lambda := new(fr.Element).SetBigInt(params.Lambda())

	parameters := gopter.DefaultTestParameters()
	if testing.Short() {
		parameters.MinSuccessfulTests = 100
	} else {
		parameters.MinSuccessfulTests = 1000
	}

	properties := gopter.NewProperties(parameters)
	properties.Property("[BN254] k = s1 * k1 + s2 * k2 * lambda", prop.ForAll(
		func(k fr.Element) bool {
			k1, neg1, k2, neg2 := Decompose(&k)
			if neg1 {
				k1.Neg(k1)
			}
			if neg2 {
				k2.Neg(k2)
			}

			var check fr.Element
			check.Mul(k2, lambda).Add(&check, k1)
			return check.Equal(&k)
		},
		genFr(),
	))
	properties.Property("[BN254] Decompose(k) matches Params().Decompose(k)", prop.ForAll(
		func(k fr.Element) bool {
			k1, neg1, k2, neg2 := Decompose(&k)
			bK1, bNeg1, bK2, bNeg2 := Params().Decompose(k.BigInt(new(big.Int)))
			return k1.BigInt(new(big.Int)).Cmp(bK1) == 0 && neg1 == bNeg1 &&
				k2.BigInt(new(big.Int)).Cmp(bK2) == 0 && neg2 == bNeg2
		},
		genFr(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	t.Run("PrecomputeLattice", func(t *testing.T) {
		var l ecc.Lattice
		ecc.PrecomputeLattice(fr.Modulus(), params.Lambda(), &l)
		require.Zero(t, new(big.Int).Abs(&l.Det).Cmp(fr.Modulus()), "gnark |det| = r")

		// Both bases span the same lattice.
		for i, v := range [][2]big.Int{l.V1, l.V2} {
			k := new(big.Int).Mul(&v[1], params.Lambda())
			k.Add(k, &v[0])
			require.Zero(t, k.Mod(k, fr.Modulus()).Sign(), "gnark V%d in kernel", i+1)
		}
	})
}

func TestScalarMult(t *testing.T) {
	g1Gen, g2Gen, _, _ := curve.Generators()

	for i := 0; i < 10; i++ {
		var k fr.Element
		_, err := k.SetRandom()
		require.NoError(t, err, "SetRandom")
		kBig := k.BigInt(new(big.Int))

		var p1, q1 curve.G1Jac
		G1ScalarMult(&p1, &g1Gen, &k)
		q1.ScalarMultiplication(&g1Gen, kBig)
		require.True(t, p1.Equal(&q1), "[%d]: G1ScalarMult", i)

		var p2, q2 curve.G2Jac
		G2ScalarMult(&p2, &g2Gen, &k)
		q2.ScalarMultiplication(&g2Gen, kBig)
		require.True(t, p2.Equal(&q2), "[%d]: G2ScalarMult", i)
	}
}

func BenchmarkG1(b *testing.B) {
	g1Gen, _, _, _ := curve.Generators()
	var p curve.G1Jac
	p.ScalarMultiplication(&g1Gen, mustRandomScalar())
	k := mustRandomScalar()

	b.Run("ScalarMult/GLV", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			glv.ScalarMult(G1, &p, &p, k)
		}
	})
	b.Run("ScalarMult/GLV/Windowed", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			glv.ScalarMultWindowed(G1, &p, &p, k)
		}
	})
	b.Run("ScalarMult/Naive", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			glvtest.ScalarMultNaive[curve.G1Jac](G1, &p, &p, k)
		}
	})
	b.Run("Decompose", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _, _, _ = params.Decompose(k)
		}
	})
}

func genFr() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var elmt fr.Element
		if _, err := elmt.SetRandom(); err != nil {
			panic(err)
		}
		return gopter.NewGenResult(elmt, gopter.NoShrinker)
	}
}

func mustRandomScalar() *big.Int {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		panic("bn254: entropy source failure: " + err.Error())
	}
	return s.BigInt(new(big.Int))
}
