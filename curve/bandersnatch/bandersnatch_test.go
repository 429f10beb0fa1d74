package bandersnatch

import (
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/glvtest"
	"gitlab.com/yawning/glv-voi/internal/helpers"
)

func TestBandersnatch(t *testing.T) {
	edwards := mustEdwardsCurve(t)

	var g curve.PointProj
	g.FromAffine(&edwards.Base)

	stream := helpers.NewScalarStream(params.Order(), "bandersnatch/RandomPoint")
	randomPoint := func(v *curve.PointProj) *curve.PointProj {
		return v.ScalarMultiplication(&g, stream.Next())
	}

	glvtest.Run(t, &glvtest.Config[curve.PointProj]{
		Name:        "bandersnatch",
		Curve:       Curve,
		Generator:   &g,
		RandomPoint: randomPoint,
		Oracle: func(v, p *curve.PointProj, k *big.Int) *curve.PointProj {
			return v.ScalarMultiplication(p, k)
		},
	})

	t.Run("Order", func(t *testing.T) {
		require.Zero(t, params.Order().Cmp(&edwards.Order), "r")
	})
	t.Run("Lambda", func(t *testing.T) {
		// lambda^2 = -2 mod r
		r := params.Order()
		l2 := new(big.Int).Mul(params.Lambda(), params.Lambda())
		l2.Add(l2, big.NewInt(2))
		require.Zero(t, l2.Mod(l2, r).Sign(), "lambda^2 + 2 = 0 mod r")
	})
	t.Run("Endomorphism/MinusTwo", func(t *testing.T) {
		var p, phi2, expected curve.PointProj
		for i := 0; i < 100; i++ {
			randomPoint(&p)

			Endomorphism(&phi2, &p)
			Endomorphism(&phi2, &phi2)

			expected.Double(&p)
			expected.Neg(&expected)

			glvtest.RequirePointEquals[curve.PointProj](t, Curve, &expected, &phi2, "phi(phi(P)) = -2 * P")
		}
	})
	t.Run("Vector", testVector)
}

func testVector(t *testing.T) {
	p0 := mustPoint(
		"29627151942733444043031429156003786749302466371339015363120350521834195802525",
		"27488387519748396681411951718153463804682561779047093991696427532072116857978",
	)
	k := helpers.MustBigFromDecimal("4257185345094557079734489188109952172285839137338142340240392707284963971010")

	t.Run("Decompose", func(t *testing.T) {
		k1, neg1, k2, neg2 := Decompose(k)
		require.Zero(t, k1.Cmp(helpers.MustBigFromDecimal("30417741863887432744214758610616508258")), "k1")
		require.False(t, neg1, "k1 sign")
		require.Zero(t, k2.Cmp(helpers.MustBigFromDecimal("6406990765953933188067911864924578940")), "k2")
		require.True(t, neg2, "k2 sign")
	})
	t.Run("Endomorphism", func(t *testing.T) {
		expected := mustPoint(
			"3995099504672814451457646880854530097687530507181962222512229786736061793535",
			"33370049900732270411777328808452912493896532385897059012214433666611661340894",
		)

		var phi curve.PointProj
		Endomorphism(&phi, p0)
		glvtest.RequirePointEquals[curve.PointProj](t, Curve, expected, &phi, "phi(P0)")
	})
	t.Run("ScalarMult", func(t *testing.T) {
		expected := mustPoint(
			"6018810645516749504657411940673266094850700554607419759628157493373766067122",
			"13929928331741974885869757126422340790588975043986274897468601817898742989376",
		)

		var naive, q, qW curve.PointProj
		glvtest.ScalarMultNaive[curve.PointProj](Curve, &naive, p0, k)
		ScalarMult(&q, p0, k)
		glv.ScalarMultWindowed(Curve, &qW, p0, k)

		glvtest.RequirePointEquals[curve.PointProj](t, Curve, expected, &naive, "k * P0 (naive)")
		glvtest.RequirePointEquals[curve.PointProj](t, Curve, expected, &q, "k * P0")
		glvtest.RequirePointEquals[curve.PointProj](t, Curve, expected, &qW, "k * P0 (windowed)")
	})
}

func BenchmarkBandersnatch(b *testing.B) {
	edwards := curve.GetEdwardsCurve()

	var p curve.PointProj
	p.FromAffine(&edwards.Base)
	k := helpers.NewScalarStream(params.Order(), "bandersnatch/Benchmark").Next()

	b.Run("ScalarMult/GLV", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ScalarMult(&p, &p, k)
		}
	})
	b.Run("ScalarMult/Naive", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			glvtest.ScalarMultNaive[curve.PointProj](Curve, &p, &p, k)
		}
	})
}

func mustEdwardsCurve(t *testing.T) curve.CurveParams {
	edwards := curve.GetEdwardsCurve()
	require.True(t, edwards.Base.IsOnCurve(), "base point on curve")
	return edwards
}

func mustPoint(x, y string) *curve.PointProj {
	var pAff curve.PointAffine
	pAff.X.SetBigInt(helpers.MustBigFromDecimal(x))
	pAff.Y.SetBigInt(helpers.MustBigFromDecimal(y))
	if !pAff.IsOnCurve() {
		panic("bandersnatch: test point not on curve")
	}

	var p curve.PointProj
	return p.FromAffine(&pAff)
}
