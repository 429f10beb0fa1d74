package field

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/glv-voi/internal/helpers"
)

func TestField(t *testing.T) {
	t.Run("Fp", testField[Fp])
	t.Run("Fq", testField[Fq])
}

func testField[M Modulus](t *testing.T) {
	m := ModulusBig[M]()

	t.Run("Modulus", func(t *testing.T) {
		// m = 2^254 + small, so every canonical encoding has the top
		// bit clear.
		require.Equal(t, 255, m.BitLen(), "bitlen(m)")
		require.True(t, m.ProbablyPrime(20), "m is prime")
	})
	t.Run("CubeRootOfUnity", func(t *testing.T) {
		beta := CubeRootOfUnity[M]()
		one := NewElement[M]().One()

		require.EqualValues(t, 0, beta.Equal(one), "beta != 1")

		cubed := NewElement[M]().Square(beta)
		cubed.Multiply(cubed, beta)
		require.EqualValues(t, 1, cubed.Equal(one), "beta^3 == 1")
	})
	t.Run("MultiplyByCubeRootOfUnity", func(t *testing.T) {
		a := NewElement[M]().MustRandomize()
		expected := NewElement[M]().Multiply(a, CubeRootOfUnity[M]())

		fe := NewElement[M]()
		require.EqualValues(t, 1, fe.MultiplyByCubeRootOfUnity(a).Equal(expected), "a * beta")

		allocs := testing.AllocsPerRun(100, func() {
			fe.MultiplyByCubeRootOfUnity(fe)
		})
		require.Zero(t, allocs, "allocations")
	})
	t.Run("SetUint64", func(t *testing.T) {
		fe := NewElement[M]().SetUint64(5)
		require.Zero(t, fe.BigInt().Cmp(big.NewInt(5)), "BigInt()")

		var b [ElementSize]byte
		b[ElementSize-1] = 5
		require.Equal(t, b[:], fe.Bytes(), "Bytes() is big-endian")
	})
	t.Run("SetCanonicalBytes", func(t *testing.T) {
		var b [ElementSize]byte
		m.FillBytes(b[:])

		fe := NewElement[M]().One()
		_, err := fe.SetCanonicalBytes(&b)
		require.ErrorIs(t, err, errOutOfRange, "SetCanonicalBytes(m)")
		require.EqualValues(t, 1, fe.Equal(NewElement[M]().One()), "receiver unchanged")

		mMinusOne := new(big.Int).Sub(m, big.NewInt(1))
		mMinusOne.FillBytes(b[:])
		_, err = fe.SetCanonicalBytes(&b)
		require.NoError(t, err, "SetCanonicalBytes(m - 1)")
		require.Equal(t, b[:], fe.Bytes(), "Bytes()")

		minusOne := NewElement[M]().Negate(NewElement[M]().One())
		require.EqualValues(t, 1, fe.Equal(minusOne), "m - 1 == -1")
	})
	t.Run("Zero", func(t *testing.T) {
		var fe Element[M]
		require.EqualValues(t, 1, fe.IsZero(), "zero value")
		require.EqualValues(t, 1, NewElement[M]().Negate(&fe).IsZero(), "-0 == 0")
		require.EqualValues(t, 1, NewElement[M]().Invert(&fe).IsZero(), "1/0 == 0")
	})
	t.Run("ConditionalSelect", func(t *testing.T) {
		a := NewElement[M]().MustRandomize()
		b := NewElement[M]().MustRandomize()

		fe := NewElement[M]().ConditionalSelect(a, b, 0)
		require.EqualValues(t, 1, fe.Equal(a), "ctrl == 0")
		fe.ConditionalSelect(a, b, 1)
		require.EqualValues(t, 1, fe.Equal(b), "ctrl == 1")
	})

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	genElement := func(genParams *gopter.GenParameters) *gopter.GenResult {
		var b [ElementSize + 16]byte
		_, _ = genParams.Rng.Read(b[:])
		fe := NewElementFromBigInt[M](new(big.Int).SetBytes(b[:]))
		return gopter.NewGenResult(fe, gopter.NoShrinker)
	}

	properties.Property("Add/Subtract matches big.Int", prop.ForAll(
		func(a, b *Element[M]) bool {
			sum := new(big.Int).Add(a.BigInt(), b.BigInt())
			diff := new(big.Int).Sub(a.BigInt(), b.BigInt())
			return NewElement[M]().Add(a, b).BigInt().Cmp(sum.Mod(sum, m)) == 0 &&
				NewElement[M]().Subtract(a, b).BigInt().Cmp(diff.Mod(diff, m)) == 0
		},
		genElement, genElement,
	))
	properties.Property("Multiply matches big.Int", prop.ForAll(
		func(a, b *Element[M]) bool {
			prod := new(big.Int).Mul(a.BigInt(), b.BigInt())
			return NewElement[M]().Multiply(a, b).BigInt().Cmp(prod.Mod(prod, m)) == 0
		},
		genElement, genElement,
	))
	properties.Property("Square == Multiply(a, a)", prop.ForAll(
		func(a *Element[M]) bool {
			return NewElement[M]().Square(a).Equal(NewElement[M]().Multiply(a, a)) == 1
		},
		genElement,
	))
	properties.Property("Invert", prop.ForAll(
		func(a *Element[M]) bool {
			if a.IsZero() == 1 {
				return true
			}
			inv := NewElement[M]().Invert(a)
			return inv.BigInt().Cmp(new(big.Int).ModInverse(a.BigInt(), m)) == 0 &&
				NewElement[M]().Multiply(a, inv).Equal(NewElement[M]().One()) == 1
		},
		genElement,
	))
	properties.Property("Aliasing", prop.ForAll(
		func(a, b *Element[M]) bool {
			expected := NewElement[M]().Subtract(a, b)
			expected.Multiply(expected, a)

			fe := NewElementFrom(a)
			fe.Subtract(fe, b)
			fe.Multiply(fe, a)

			return fe.Equal(expected) == 1
		},
		genElement, genElement,
	))
	properties.Property("Bytes round trip", prop.ForAll(
		func(a *Element[M]) bool {
			b := (*[ElementSize]byte)(a.Bytes())
			fe, err := NewElement[M]().SetCanonicalBytes(b)
			return err == nil && fe.Equal(a) == 1 && fe.String() == a.String()
		},
		genElement,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestModulus(t *testing.T) {
	require.Zero(t, ModulusBig[Fp]().Cmp(helpers.MustBigFromHex("0x40000000000000000000000000000000224698fc094cf91b992d30ed00000001")), "p")
	require.Zero(t, ModulusBig[Fq]().Cmp(helpers.MustBigFromHex("0x40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001")), "q")
}
