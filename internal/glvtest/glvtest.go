// Package glvtest provides the shared test suite run against every
// glv.Curve implementation.
package glvtest

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/internal/helpers"
)

const (
	randomTestIters = 1000
	pointTestIters  = 100
)

// Config is a curve under test.
type Config[P any] struct {
	// Name is used to label the deterministic test vector streams.
	Name string

	// Curve is the implementation under test.
	Curve glv.Curve[P]

	// Generator is the canonical generator of the prime order subgroup.
	Generator *P

	// RandomPoint sets `v` to a random point in the prime order
	// subgroup, and returns `v`.
	RandomPoint func(v *P) *P

	// Oracle, if set, sets `v = k * p` and returns `v` with an
	// independent implementation (typically the backing library's
	// own scalar multiplication).
	Oracle func(v, p *P, k *big.Int) *P

	// EndomorphismOrder is the smallest n > 0 such that phi^n is the
	// identity map, or 0 if there is no such n.
	EndomorphismOrder int
}

// Run runs the test suite.
func Run[P any](t *testing.T, cfg *Config[P]) {
	t.Run("Params", func(t *testing.T) { testParams(t, cfg) })
	t.Run("Decompose", func(t *testing.T) { testDecompose(t, cfg) })
	t.Run("Endomorphism", func(t *testing.T) { testEndomorphism(t, cfg) })
	t.Run("ScalarMult", func(t *testing.T) { testScalarMult(t, cfg) })
}

// ScalarMultNaive sets `v = k * p`, and returns `v`.
func ScalarMultNaive[P any](g glv.Group[P], v, p *P, k *big.Int) *P {
	// This is slow but trivially correct, and is used for
	// cross-checking results of the more sophisticated
	// implementations.  It only depends on the group law.

	var pee P
	g.Set(&pee, p)
	if k.Sign() < 0 {
		g.Negate(&pee, &pee)
	}

	g.Identity(v)
	for i := k.BitLen() - 1; i >= 0; i-- {
		g.Double(v, v)
		if k.Bit(i) == 1 {
			g.Add(v, v, &pee)
		}
	}

	return v
}

// GenScalar returns a gopter generator of integers in `[0, r)`.
func GenScalar(r *big.Int) gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		k := new(big.Int).Rand(genParams.Rng, r)
		return gopter.NewGenResult(k, gopter.NoShrinker)
	}
}

// Recompose returns `s1 * k1 + s2 * k2 * lambda mod r`.
func Recompose(params *glv.Params, k1 *big.Int, neg1 bool, k2 *big.Int, neg2 bool) *big.Int {
	a := new(big.Int).Set(k1)
	if neg1 {
		a.Neg(a)
	}
	b := new(big.Int).Mul(k2, params.Lambda())
	if neg2 {
		b.Neg(b)
	}
	a.Add(a, b)
	return a.Mod(a, params.Order())
}

// RequirePointEquals fails the test iff `expected != actual`.
func RequirePointEquals[P any](t *testing.T, g glv.Group[P], expected, actual *P, descr string) {
	t.Helper()
	require.True(t, g.Equal(expected, actual), "%s: %+v != %+v", descr, expected, actual)
}

func checkDecomposition(params *glv.Params, k *big.Int) error {
	k1, neg1, k2, neg2 := params.Decompose(k)

	kReduced := new(big.Int).Mod(k, params.Order())
	if Recompose(params, k1, neg1, k2, neg2).Cmp(kReduced) != 0 {
		return fmt.Errorf("k != s1 * k1 + s2 * k2 * lambda, k = %v", k)
	}
	if k1.Sign() < 0 || k2.Sign() < 0 {
		return fmt.Errorf("k1, k2 not magnitudes, k = %v", k)
	}
	if maxBits := params.MaxBits(); k1.BitLen() > maxBits || k2.BitLen() > maxBits {
		return fmt.Errorf("k1 or k2 >= 2^%d, k = %v (%d, %d)", maxBits, k, k1.BitLen(), k2.BitLen())
	}
	return nil
}

func iters(n int) int {
	if testing.Short() {
		return n / 10
	}
	return n
}

func testParams[P any](t *testing.T, cfg *Config[P]) {
	params := cfg.Curve.Params()
	r, lambda := params.Order(), params.Lambda()

	require.Equal(t, (r.BitLen()+1)/2+2, params.MaxBits(), "MaxBits")

	t.Run("Lambda", func(t *testing.T) {
		if cfg.EndomorphismOrder == 0 {
			t.Skip("phi has infinite order")
		}
		lPow := new(big.Int).Exp(lambda, big.NewInt(int64(cfg.EndomorphismOrder)), r)
		require.Zero(t, lPow.Cmp(big.NewInt(1)), "lambda^n = 1 mod r")
	})
	t.Run("Lattice", func(t *testing.T) {
		n := params.Lattice().Signed()
		for row := 0; row < 2; row++ {
			tmp := new(big.Int).Mul(n[2*row+1], lambda)
			tmp.Add(tmp, n[2*row])
			require.Zero(t, tmp.Mod(tmp, r).Sign(), "row %d: a + b * lambda = 0 mod r", row+1)

			// The basis vectors are short.
			require.LessOrEqual(t, n[2*row].BitLen(), params.MaxBits(), "row %d: |a|", row+1)
			require.LessOrEqual(t, n[2*row+1].BitLen(), params.MaxBits(), "row %d: |b|", row+1)
		}
	})
	t.Run("DeriveLattice", func(t *testing.T) {
		l, err := glv.DeriveLattice(r, lambda)
		require.NoError(t, err, "DeriveLattice")

		derived, err := glv.NewParams(r, lambda, l)
		require.NoError(t, err, "NewParams(derived)")

		stream := helpers.NewScalarStream(r, cfg.Name+"/DeriveLattice")
		for i := 0; i < iters(randomTestIters); i++ {
			k := stream.Next()
			require.NoError(t, checkDecomposition(derived, k), "[%d]: derived", i)
		}
	})
}

func testDecompose[P any](t *testing.T, cfg *Config[P]) {
	params := cfg.Curve.Params()
	r, lambda := params.Order(), params.Lambda()

	t.Run("Zero", func(t *testing.T) {
		k1, neg1, k2, neg2 := params.Decompose(new(big.Int))
		require.Zero(t, k1.Sign(), "k1 = 0")
		require.Zero(t, k2.Sign(), "k2 = 0")
		require.False(t, neg1, "k1 non-negative")
		require.False(t, neg2, "k2 non-negative")
	})
	t.Run("Boundaries", func(t *testing.T) {
		rMinus := func(x int64) *big.Int {
			return new(big.Int).Sub(r, big.NewInt(x))
		}
		half := new(big.Int).Rsh(r, 1)

		for i, k := range []*big.Int{
			big.NewInt(0),
			big.NewInt(1),
			big.NewInt(2),
			rMinus(1),
			rMinus(2),
			half,
			new(big.Int).Add(half, big.NewInt(1)),
			lambda,
			new(big.Int).Sub(r, lambda),
			new(big.Int).Mul(lambda, lambda),
			new(big.Int).Lsh(big.NewInt(1), uint(params.MaxBits())),
			r,
			new(big.Int).Neg(big.NewInt(1)),
		} {
			require.NoError(t, checkDecomposition(params, k), "Case %d", i)
		}
	})
	t.Run("Random", func(t *testing.T) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = iters(randomTestIters)

		properties := gopter.NewProperties(parameters)
		properties.Property("k = s1 * k1 + s2 * k2 * lambda mod r, |k1|, |k2| short", prop.ForAll(
			func(k *big.Int) bool {
				return checkDecomposition(params, k) == nil
			},
			GenScalar(r),
		))

		properties.TestingRun(t, gopter.ConsoleReporter(false))
	})
	t.Run("Stream", func(t *testing.T) {
		stream := helpers.NewScalarStream(r, cfg.Name+"/Decompose")
		for i := 0; i < iters(randomTestIters); i++ {
			k := stream.Next()
			require.NoError(t, checkDecomposition(params, k), "[%d]", i)
		}
	})
}

func testEndomorphism[P any](t *testing.T, cfg *Config[P]) {
	c := cfg.Curve
	params := c.Params()
	r, lambda := params.Order(), params.Lambda()
	lambda2 := new(big.Int).Mul(lambda, lambda)
	lambda2.Mod(lambda2, r)

	var p, q, expected, actual, tmp P

	t.Run("Identity", func(t *testing.T) {
		c.Identity(&p)
		c.Endomorphism(&q, &p)
		require.True(t, c.IsIdentity(&q), "phi(id) = id")
	})
	t.Run("Generator", func(t *testing.T) {
		c.Endomorphism(&actual, cfg.Generator)
		ScalarMultNaive[P](c, &expected, cfg.Generator, lambda)
		RequirePointEquals[P](t, c, &expected, &actual, "phi(G) = lambda * G")
	})
	t.Run("Eigenvalue", func(t *testing.T) {
		for i := 0; i < iters(pointTestIters); i++ {
			cfg.RandomPoint(&p)
			c.Endomorphism(&actual, &p)
			ScalarMultNaive[P](c, &expected, &p, lambda)
			RequirePointEquals[P](t, c, &expected, &actual, fmt.Sprintf("[%d]: phi(P) = lambda * P", i))
		}
	})
	t.Run("Characteristic", func(t *testing.T) {
		for i := 0; i < iters(pointTestIters); i++ {
			cfg.RandomPoint(&p)
			c.Endomorphism(&actual, &p)
			c.Endomorphism(&actual, &actual)
			ScalarMultNaive[P](c, &expected, &p, lambda2)
			RequirePointEquals[P](t, c, &expected, &actual, fmt.Sprintf("[%d]: phi(phi(P)) = lambda^2 * P", i))
		}
	})
	t.Run("Order", func(t *testing.T) {
		if cfg.EndomorphismOrder == 0 {
			t.Skip("phi has infinite order")
		}
		for i := 0; i < iters(pointTestIters); i++ {
			cfg.RandomPoint(&p)
			c.Set(&q, &p)
			for j := 1; j <= cfg.EndomorphismOrder; j++ {
				c.Endomorphism(&q, &q)
				if j < cfg.EndomorphismOrder {
					require.False(t, c.Equal(&p, &q), "[%d]: phi^%d(P) != P", i, j)
				}
			}
			RequirePointEquals[P](t, c, &p, &q, fmt.Sprintf("[%d]: phi^n(P) = P", i))
		}
	})
	t.Run("Homomorphism", func(t *testing.T) {
		for i := 0; i < iters(pointTestIters); i++ {
			cfg.RandomPoint(&p)
			cfg.RandomPoint(&q)

			c.Add(&tmp, &p, &q)
			c.Endomorphism(&actual, &tmp)

			c.Endomorphism(&expected, &p)
			c.Endomorphism(&tmp, &q)
			c.Add(&expected, &expected, &tmp)

			RequirePointEquals[P](t, c, &expected, &actual, fmt.Sprintf("[%d]: phi(P + Q) = phi(P) + phi(Q)", i))
		}
	})
}

func testScalarMult[P any](t *testing.T, cfg *Config[P]) {
	c := cfg.Curve
	g := cfg.Generator
	r := c.Params().Order()

	impls := []struct {
		name string
		fn   func(glv.Curve[P], *P, *P, *big.Int) *P
	}{
		{"GLV", glv.ScalarMult[P]},
		{"GLV/Windowed", glv.ScalarMultWindowed[P]},
	}

	var q, expected, id P
	c.Identity(&id)

	for _, impl := range impls {
		mul := impl.fn
		t.Run(impl.name, func(t *testing.T) {
			t.Run("0 * G", func(t *testing.T) {
				mul(c, &q, g, new(big.Int))
				require.True(t, c.IsIdentity(&q), "0 * G = id")
			})
			t.Run("k * id", func(t *testing.T) {
				stream := helpers.NewScalarStream(r, cfg.Name+"/ScalarMult/Identity")
				for i := 0; i < 10; i++ {
					mul(c, &q, &id, stream.Next())
					require.True(t, c.IsIdentity(&q), "[%d]: k * id = id", i)
				}
			})
			t.Run("1 * G", func(t *testing.T) {
				mul(c, &q, g, big.NewInt(1))
				RequirePointEquals[P](t, c, g, &q, "1 * G = G")
			})
			t.Run("2 * G", func(t *testing.T) {
				mul(c, &q, g, big.NewInt(2))
				c.Double(&expected, g)
				RequirePointEquals[P](t, c, &expected, &q, "2 * G = G + G")
			})
			t.Run("-1 * G", func(t *testing.T) {
				c.Negate(&expected, g)

				mul(c, &q, g, new(big.Int).Sub(r, big.NewInt(1)))
				RequirePointEquals[P](t, c, &expected, &q, "(r - 1) * G = -G")

				mul(c, &q, g, big.NewInt(-1))
				RequirePointEquals[P](t, c, &expected, &q, "-1 * G = -G")
			})
			t.Run("r * G", func(t *testing.T) {
				mul(c, &q, g, r)
				require.True(t, c.IsIdentity(&q), "r * G = id")
			})
			t.Run("Small", func(t *testing.T) {
				for k := int64(0); k < 40; k++ {
					kBig := big.NewInt(k)
					mul(c, &q, g, kBig)
					ScalarMultNaive[P](c, &expected, g, kBig)
					RequirePointEquals[P](t, c, &expected, &q, fmt.Sprintf("%d * G", k))
				}
			})
			t.Run("Consistency", func(t *testing.T) {
				var p, check, alias, oracle P

				stream := helpers.NewScalarStream(r, cfg.Name+"/ScalarMult/"+impl.name)
				for i := 0; i < iters(pointTestIters); i++ {
					k := stream.Next()
					cfg.RandomPoint(&p)

					ScalarMultNaive[P](c, &check, &p, k)
					mul(c, &q, &p, k)
					RequirePointEquals[P](t, c, &check, &q, fmt.Sprintf("[%d]: k * P (naive) = k * P", i))

					c.Set(&alias, &p)
					mul(c, &alias, &alias, k)
					RequirePointEquals[P](t, c, &check, &alias, fmt.Sprintf("[%d]: k * P (aliased)", i))

					if cfg.Oracle != nil {
						cfg.Oracle(&oracle, &p, k)
						RequirePointEquals[P](t, c, &oracle, &q, fmt.Sprintf("[%d]: k * P (oracle) = k * P", i))
					}
				}
			})
		})
	}
}
