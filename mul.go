package glv

import "math/big"

// ScalarMult sets `v = k * p`, and returns `v` in variable time.  `k`
// may be any integer, and is reduced modulo the group order.
func ScalarMult[P any](c Curve[P], v, p *P, k *big.Int) *P {
	pee, peePrime, k1, k2 := split(c, p, k)

	// Precompute P' + Q', so that a set bit in both scalars only
	// costs one addition.
	var sum P
	c.Add(&sum, pee, peePrime)

	// Past this point p is no longer used, so it is safe to trample
	// over v, even if they alias.
	c.Identity(v)
	for i := max(k1.BitLen(), k2.BitLen()) - 1; i >= 0; i-- {
		c.Double(v, v)

		switch k1.Bit(i) | k2.Bit(i)<<1 {
		case 0:
		case 1:
			c.Add(v, v, pee)
		case 2:
			c.Add(v, v, peePrime)
		case 3:
			c.Add(v, v, &sum)
		}
	}

	return v
}

// split decomposes `k`, and returns `(P', Q', |k1|, |k2|)`, where `P'`
// and `Q' = phi(P)` are negated as required such that
// `k * p = |k1| * P' + |k2| * Q'`.
func split[P any](c Curve[P], p *P, k *big.Int) (*P, *P, *big.Int, *big.Int) {
	k1, neg1, k2, neg2 := c.Params().Decompose(k)

	var pee, peePrime P
	c.Set(&pee, p)
	c.Endomorphism(&peePrime, p)

	// Pick the shorter representation for each of the returned
	// scalars by negating the corresponding point.
	if neg1 {
		c.Negate(&pee, &pee)
	}
	if neg2 {
		c.Negate(&peePrime, &peePrime)
	}

	return &pee, &peePrime, k1, k2
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
