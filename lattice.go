package glv

import (
	"fmt"
	"math/big"
)

// DeriveLattice derives a short basis of the lattice
// `{(a, b) : a + b * lambda = 0 mod r}`, suitable for use with
// NewParams.  This is intended for generating and checking constant
// tables, and is not particularly fast.
//
// See "Guide to Elliptic Curve Cryptography" by Hankerson, Menezes,
// Vanstone, Algorithm 3.74 "Balanced length-two representation of a
// multiplier".
func DeriveLattice(r, lambda *big.Int) (*Lattice, error) {
	if r == nil || r.Cmp(bigThree) < 0 {
		return nil, ErrInvalidOrder
	}
	if lambda == nil || lambda.Cmp(bigOne) <= 0 || lambda.Cmp(r) >= 0 {
		return nil, ErrInvalidLambda
	}

	// Run the extended Euclidean algorithm on (r, lambda), which
	// produces a sequence of relations s_i * r + t_i * lambda = r_i,
	// and thus vectors (r_i, -t_i) in the lattice.  Stop at the
	// first remainder below sqrt(r).
	sqrtR := new(big.Int).Sqrt(r)

	r0, t0 := new(big.Int).Set(r), new(big.Int)
	r1, t1 := new(big.Int).Set(lambda), big.NewInt(1)
	q, tmp := new(big.Int), new(big.Int)
	for r1.Cmp(sqrtR) > 0 {
		q.Div(r0, r1)

		tmp.Mul(q, r1)
		r2 := new(big.Int).Sub(r0, tmp)
		tmp.Mul(q, t1)
		t2 := new(big.Int).Sub(t0, tmp)

		r0, t0, r1, t1 = r1, t1, r2, t2
	}
	if r1.Sign() == 0 {
		return nil, fmt.Errorf("%w: degenerate remainder sequence", ErrInvalidLattice)
	}

	q.Div(r0, r1)
	tmp.Mul(q, r1)
	r2 := new(big.Int).Sub(r0, tmp)
	tmp.Mul(q, t1)
	t2 := new(big.Int).Sub(t0, tmp)

	// v1 = (r_{l+1}, -t_{l+1})
	// v2 = the shorter of (r_l, -t_l) and (r_{l+2}, -t_{l+2})
	v1 := [2]*big.Int{r1, new(big.Int).Neg(t1)}
	v2 := [2]*big.Int{r0, new(big.Int).Neg(t0)}
	if normSquared(r0, t0).Cmp(normSquared(r2, t2)) > 0 {
		v2 = [2]*big.Int{r2, new(big.Int).Neg(t2)}
	}

	var l Lattice
	for i, v := range []*big.Int{v1[0], v1[1], v2[0], v2[1]} {
		l.Neg[i] = v.Sign() < 0
		l.N[i] = new(big.Int).Abs(v)
	}

	return &l, nil
}

func normSquared(a, b *big.Int) *big.Int {
	aa := new(big.Int).Mul(a, a)
	bb := new(big.Int).Mul(b, b)
	return aa.Add(aa, bb)
}
