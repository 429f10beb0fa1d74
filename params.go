package glv

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidOrder is the error returned when the group order is
	// out of range.
	ErrInvalidOrder = errors.New("glv: invalid group order")

	// ErrInvalidLambda is the error returned when the endomorphism
	// eigenvalue is out of range.
	ErrInvalidLambda = errors.New("glv: invalid eigenvalue")

	// ErrInvalidLattice is the error returned when the lattice basis
	// is malformed, or does not span the eigenvalue lattice.
	ErrInvalidLattice = errors.New("glv: invalid lattice basis")

	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)

	latticeNames = [4]string{"n11", "n12", "n21", "n22"}
)

// Lattice is a basis {(n11, n12), (n21, n22)} of the lattice
// `{(a, b) : a + b * lambda = 0 mod r}`.  The entries are stored in
// row-major order as unsigned magnitudes, with the sign of each entry
// stored separately (`Neg[i]` is true iff the entry is negative).
type Lattice struct {
	N   [4]*big.Int
	Neg [4]bool
}

// Signed returns the basis entries as signed integers, in row-major
// order.
func (l *Lattice) Signed() [4]*big.Int {
	var n [4]*big.Int
	for i := range n {
		n[i] = new(big.Int).Set(l.N[i])
		if l.Neg[i] {
			n[i].Neg(n[i])
		}
	}
	return n
}

// Params is the set of per-curve constants required to decompose
// scalars.  Params is immutable once constructed, and is safe for
// concurrent use.
type Params struct {
	r      *big.Int
	lambda *big.Int

	lattice Lattice
	n       [4]*big.Int

	// |det|, 2 * |det|, and the sign of the determinant.
	det    *big.Int
	twoDet *big.Int
	detNeg bool

	maxBits int
}

// NewParams creates a new Params from the group order `r`, the
// endomorphism eigenvalue `lambda`, and a lattice basis.  The
// basis MUST span the entire lattice (`|det| = r`), so that the
// rounding done by Decompose is exact.
func NewParams(r, lambda *big.Int, lattice *Lattice) (*Params, error) {
	if r == nil || r.Cmp(bigThree) < 0 {
		return nil, ErrInvalidOrder
	}
	if lambda == nil || lambda.Cmp(bigOne) <= 0 || lambda.Cmp(r) >= 0 {
		return nil, ErrInvalidLambda
	}
	if lattice == nil {
		return nil, fmt.Errorf("%w: missing basis", ErrInvalidLattice)
	}

	// Decompose only yields short scalars if the basis is reduced.
	maxBits := (r.BitLen()+1)/2 + 2
	for i, v := range lattice.N {
		if v == nil {
			return nil, fmt.Errorf("%w: %s missing", ErrInvalidLattice, latticeNames[i])
		}
		if v.Sign() < 0 {
			return nil, fmt.Errorf("%w: %s is not a magnitude", ErrInvalidLattice, latticeNames[i])
		}
		if v.BitLen() > maxBits {
			return nil, fmt.Errorf("%w: %s is too long", ErrInvalidLattice, latticeNames[i])
		}
	}

	p := &Params{
		r:      new(big.Int).Set(r),
		lambda: new(big.Int).Set(lambda),
	}
	for i := range lattice.N {
		p.lattice.N[i] = new(big.Int).Set(lattice.N[i])
		p.lattice.Neg[i] = lattice.Neg[i]
	}
	p.n = p.lattice.Signed()

	// Each row (a, b) must satisfy a + b * lambda = 0 mod r.
	tmp := new(big.Int)
	for row := 0; row < 2; row++ {
		a, b := p.n[2*row], p.n[2*row+1]
		tmp.Mul(b, lambda)
		tmp.Add(tmp, a)
		if tmp.Mod(tmp, r).Sign() != 0 {
			return nil, fmt.Errorf("%w: row %d not in the kernel", ErrInvalidLattice, row+1)
		}
	}

	// det = n11 * n22 - n12 * n21
	det := new(big.Int).Mul(p.n[0], p.n[3])
	tmp.Mul(p.n[1], p.n[2])
	det.Sub(det, tmp)
	p.detNeg = det.Sign() < 0
	p.det = det.Abs(det)
	if p.det.Cmp(r) != 0 {
		return nil, fmt.Errorf("%w: |det| != r", ErrInvalidLattice)
	}
	p.twoDet = new(big.Int).Lsh(p.det, 1)

	p.maxBits = maxBits

	return p, nil
}

// Order returns a copy of the group order `r`.
func (p *Params) Order() *big.Int {
	return new(big.Int).Set(p.r)
}

// Lambda returns a copy of the endomorphism eigenvalue.
func (p *Params) Lambda() *big.Int {
	return new(big.Int).Set(p.lambda)
}

// Lattice returns a copy of the lattice basis.
func (p *Params) Lattice() *Lattice {
	var l Lattice
	for i := range l.N {
		l.N[i] = new(big.Int).Set(p.lattice.N[i])
		l.Neg[i] = p.lattice.Neg[i]
	}
	return &l
}

// MaxBits returns the bit length bound of the decomposed scalars.
// Every `k1`, `k2` returned by Decompose is strictly less than
// `2^MaxBits`.
func (p *Params) MaxBits() int {
	return p.maxBits
}

// Decompose splits `k` into `(k1, k2)`, such that
// `k = s1 * k1 + s2 * k2 * lambda mod r`, where `s1` is -1 iff `neg1`
// is set, 1 otherwise (and likewise for `s2`).  `k` is reduced mod `r`
// first, so any integer is accepted.  `k1` and `k2` are magnitudes.
func (p *Params) Decompose(k *big.Int) (k1 *big.Int, neg1 bool, k2 *big.Int, neg2 bool) {
	// This is Babai's rounding of the target vector (k, 0) against
	// the basis:
	//
	//   (c1, c2) = round((k, 0) * B^-1)
	//            = round((k * n22 / det, -k * n12 / det))
	//   (k1, k2) = (k, 0) - (c1, c2) * B
	//
	// Since the rows of B are in the kernel, k1 + k2 * lambda = k mod r,
	// and since B is reduced, |k1|, |k2| ~ sqrt(r).
	kk := new(big.Int).Mod(k, p.r)

	c1 := new(big.Int).Mul(kk, p.n[3])
	c2 := new(big.Int).Mul(kk, p.n[1])
	c2.Neg(c2)
	if p.detNeg {
		c1.Neg(c1)
		c2.Neg(c2)
	}
	p.roundDet(c1, c1)
	p.roundDet(c2, c2)

	tmp := new(big.Int)

	// k1 = k - (c1 * n11 + c2 * n21)
	k1 = new(big.Int).Mul(c1, p.n[0])
	tmp.Mul(c2, p.n[2])
	k1.Add(k1, tmp)
	k1.Sub(kk, k1)

	// k2 = -(c1 * n12 + c2 * n22)
	k2 = new(big.Int).Mul(c1, p.n[1])
	tmp.Mul(c2, p.n[3])
	k2.Add(k2, tmp)
	k2.Neg(k2)

	neg1, neg2 = k1.Sign() < 0, k2.Sign() < 0

	return k1.Abs(k1), neg1, k2.Abs(k2), neg2
}

// roundDet sets `z = round(a / |det|)` with ties rounded up, and
// returns `z`.
func (p *Params) roundDet(z, a *big.Int) *big.Int {
	// round(a / d) = floor((2a + d) / 2d)
	//
	// big.Int.Div is Euclidean division, which is floor division for
	// a positive divisor, so this holds for negative a as well.
	z.Lsh(a, 1)
	z.Add(z, p.det)
	return z.Div(z, p.twoDet)
}
