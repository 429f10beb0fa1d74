package pallas

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/glvtest"
	"gitlab.com/yawning/glv-voi/internal/helpers"
	"gitlab.com/yawning/glv-voi/internal/pasta"
	"gitlab.com/yawning/glv-voi/internal/pasta/field"
)

func TestPallas(t *testing.T) {
	stream := helpers.NewScalarStream(params.Order(), "pallas/RandomPoint")

	glvtest.Run(t, &glvtest.Config[Point]{
		Name:      "pallas",
		Curve:     Curve,
		Generator: NewGeneratorPoint(),
		RandomPoint: func(v *Point) *Point {
			return scalarMultCT(v, NewGeneratorPoint(), stream.Next())
		},
		Oracle:            scalarMultCT,
		EndomorphismOrder: 3,
	})

	t.Run("Order", func(t *testing.T) {
		// Pallas and Vesta form a cycle, the scalar field of one is the
		// base field of the other.
		require.Zero(t, params.Order().Cmp(field.ModulusBig[field.Fq]()), "r == q")

		var rBytes [field.ElementSize]byte
		params.Order().FillBytes(rBytes[:])
		q := NewIdentityPoint().ScalarMult(&rBytes, NewGeneratorPoint())
		require.True(t, Curve.IsIdentity(q), "q * G == id")
	})
	t.Run("Decompose/Scalar", func(t *testing.T) {
		var k Scalar
		for i := 0; i < 100; i++ {
			k.MustRandomize()

			k1, neg1, k2, neg2 := Decompose(&k)
			recomposed := glvtest.Recompose(params, k1.BigInt(), neg1, k2.BigInt(), neg2)
			require.Zero(t, recomposed.Cmp(k.BigInt()), "k = k1 + k2 * lambda")
			require.LessOrEqual(t, k1.BigInt().BitLen(), 128, "|k1| <= 128 bits")
			require.LessOrEqual(t, k2.BigInt().BitLen(), 128, "|k2| <= 128 bits")
		}
	})
	t.Run("Vector", testVector)
}

func testVector(t *testing.T) {
	k := field.NewElementFromBigInt[field.Fq](
		helpers.MustBigFromHex("0x2f6a3b0c1d8e9f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a"),
	)

	t.Run("Decompose", func(t *testing.T) {
		k1, neg1, k2, neg2 := Decompose(k)
		require.Zero(t, k1.BigInt().Cmp(helpers.MustBigFromDecimal("33362881762558431295253721323805418175")), "k1")
		require.True(t, neg1, "k1 sign")
		require.Zero(t, k2.BigInt().Cmp(helpers.MustBigFromDecimal("19578310980448867776094293515441040349")), "k2")
		require.False(t, neg2, "k2 sign")
	})
	t.Run("Endomorphism", func(t *testing.T) {
		expected := mustPoint(
			"0x12ccca834acdba712caad5dc57aab1b01d1f8bd237ad31491dad5ebdfdfe4aba",
			"0x2",
		)

		phi := Endomorphism(NewIdentityPoint(), NewGeneratorPoint())
		glvtest.RequirePointEquals[Point](t, Curve, expected, phi, "phi(G)")
	})
	t.Run("ScalarMult", func(t *testing.T) {
		expected := mustPoint(
			"0xa999f80ff429beb0e1d0a097a750a516ff859e4b66475ce9019430ec62880e",
			"0x235f36ad25bd93b74d0fd51b6b8a07d8c0bf1f967240fd1b68df75ec703e7ce8",
		)

		g := NewGeneratorPoint()
		q := ScalarMult(NewIdentityPoint(), g, k)
		qW := glv.ScalarMultWindowed(Curve, NewIdentityPoint(), g, k.BigInt())
		qCT := scalarMultCT(NewIdentityPoint(), g, k.BigInt())

		glvtest.RequirePointEquals[Point](t, Curve, expected, q, "k * G")
		glvtest.RequirePointEquals[Point](t, Curve, expected, qW, "k * G (windowed)")
		glvtest.RequirePointEquals[Point](t, Curve, expected, qCT, "k * G (constant time)")
	})
}

func BenchmarkPallas(b *testing.B) {
	k := newBenchScalar(b)
	p := NewGeneratorPoint()

	b.Run("ScalarMult/GLV", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ScalarMult(p, p, k)
		}
	})
	b.Run("ScalarMult/GLV/Windowed", func(b *testing.B) {
		kBig := k.BigInt()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			glv.ScalarMultWindowed(Curve, p, p, kBig)
		}
	})
	b.Run("ScalarMult/ConstantTime", func(b *testing.B) {
		kBytes := (*[field.ElementSize]byte)(k.Bytes())
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p.ScalarMult(kBytes, p)
		}
	})
}

// newBenchScalar returns a deterministic benchmark scalar.
func newBenchScalar(b *testing.B) *Scalar {
	b.Helper()
	return field.NewElementFromBigInt[field.Fq](
		helpers.NewScalarStream(params.Order(), "pallas/Benchmark").Next(),
	)
}

func scalarMultCT(v, p *Point, k *big.Int) *Point {
	s := field.NewElementFromBigInt[field.Fq](k)
	return v.ScalarMult((*[field.ElementSize]byte)(s.Bytes()), p)
}

func mustPoint(x, y string) *Point {
	p, err := pasta.NewPointFromAffine(
		field.NewElementFromBigInt[field.Fp](helpers.MustBigFromHex(x)),
		field.NewElementFromBigInt[field.Fp](helpers.MustBigFromHex(y)),
	)
	if err != nil {
		panic(err)
	}
	return p
}
