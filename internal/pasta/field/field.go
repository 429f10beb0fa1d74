// Package field implements arithmetic modulo the Pasta primes:
//
//	p = 2^254 + 45560315531419706090280762371685220353
//	q = 2^254 + 45560315531506369815346746415080538113
//
// Pallas is defined over Fp and has order q, Vesta is defined over Fq
// and has order p.  The arithmetic itself is kryptology's fiat-crypto
// generated Montgomery code, this package provides a single generic
// element type over both moduli.
package field

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/coinbase/kryptology/pkg/core/curves/native/pasta/fp"
	"github.com/coinbase/kryptology/pkg/core/curves/native/pasta/fq"
	"github.com/holiman/uint256"

	"gitlab.com/yawning/glv-voi/internal/disalloweq"
	"gitlab.com/yawning/glv-voi/internal/helpers"
)

// ElementSize is the size of a field element in bytes.
const ElementSize = 32

var (
	errOutOfRange = errors.New("internal/pasta/field: value out of range")

	fpParams = newFieldParams[Fp](
		"0x40000000000000000000000000000000224698fc094cf91b992d30ed00000001",
		"20444556541222657078399132219657928148671392403212669005631716460534733845831",
	)
	fqParams = newFieldParams[Fq](
		"0x40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001",
		"26005156700822196841419187675678338661165322343552424574062261873906994770353",
	)
)

// limbs is a field element in the Montgomery domain, which is the
// underlying representation of both fp.Fp and fq.Fq.
type limbs = [4]uint64

// Fp is the Pallas base field, and the Vesta scalar field.
type Fp struct{}

// Fq is the Vesta base field, and the Pallas scalar field.
type Fq struct{}

func (Fp) params() *fieldParams { return fpParams }
func (Fq) params() *fieldParams { return fqParams }

func (Fp) add(out, a, b *limbs)             { (*fp.Fp)(out).Add((*fp.Fp)(a), (*fp.Fp)(b)) }
func (Fp) sub(out, a, b *limbs)             { (*fp.Fp)(out).Sub((*fp.Fp)(a), (*fp.Fp)(b)) }
func (Fp) mul(out, a, b *limbs)             { (*fp.Fp)(out).Mul((*fp.Fp)(a), (*fp.Fp)(b)) }
func (Fp) square(out, a *limbs)             { (*fp.Fp)(out).Square((*fp.Fp)(a)) }
func (Fp) neg(out, a *limbs)                { (*fp.Fp)(out).Neg((*fp.Fp)(a)) }
func (Fp) one(out *limbs)                   { (*fp.Fp)(out).SetOne() }
func (Fp) setUint64(out *limbs, u uint64)   { (*fp.Fp)(out).SetUint64(u) }
func (Fp) setBigInt(out *limbs, b *big.Int) { (*fp.Fp)(out).SetBigInt(b) }
func (Fp) bigInt(a *limbs) *big.Int         { return (*fp.Fp)(a).BigInt() }
func (Fp) bytes(a *limbs) [32]byte          { return (*fp.Fp)(a).Bytes() }

func (Fp) setBytes(out *limbs, b *[32]byte) error {
	_, err := (*fp.Fp)(out).SetBytes(b)
	return err
}

func (Fp) invert(out, a *limbs) bool {
	_, ok := (*fp.Fp)(out).Invert((*fp.Fp)(a))
	return ok
}

func (Fq) add(out, a, b *limbs)             { (*fq.Fq)(out).Add((*fq.Fq)(a), (*fq.Fq)(b)) }
func (Fq) sub(out, a, b *limbs)             { (*fq.Fq)(out).Sub((*fq.Fq)(a), (*fq.Fq)(b)) }
func (Fq) mul(out, a, b *limbs)             { (*fq.Fq)(out).Mul((*fq.Fq)(a), (*fq.Fq)(b)) }
func (Fq) square(out, a *limbs)             { (*fq.Fq)(out).Square((*fq.Fq)(a)) }
func (Fq) neg(out, a *limbs)                { (*fq.Fq)(out).Neg((*fq.Fq)(a)) }
func (Fq) one(out *limbs)                   { (*fq.Fq)(out).SetOne() }
func (Fq) setUint64(out *limbs, u uint64)   { (*fq.Fq)(out).SetUint64(u) }
func (Fq) setBigInt(out *limbs, b *big.Int) { (*fq.Fq)(out).SetBigInt(b) }
func (Fq) bigInt(a *limbs) *big.Int         { return (*fq.Fq)(a).BigInt() }
func (Fq) bytes(a *limbs) [32]byte          { return (*fq.Fq)(a).Bytes() }

func (Fq) setBytes(out *limbs, b *[32]byte) error {
	_, err := (*fq.Fq)(out).SetBytes(b)
	return err
}

func (Fq) invert(out, a *limbs) bool {
	_, ok := (*fq.Fq)(out).Invert((*fq.Fq)(a))
	return ok
}

// Modulus is the set of supported moduli.  Every operation takes and
// returns little-endian byte strings and Montgomery domain limbs, as
// per the kryptology field types.
type Modulus interface {
	Fp | Fq

	params() *fieldParams

	add(out, a, b *limbs)
	sub(out, a, b *limbs)
	mul(out, a, b *limbs)
	square(out, a *limbs)
	neg(out, a *limbs)
	invert(out, a *limbs) bool
	one(out *limbs)
	setUint64(out *limbs, u uint64)
	setBigInt(out *limbs, b *big.Int)
	setBytes(out *limbs, b *[32]byte) error
	bigInt(a *limbs) *big.Int
	bytes(a *limbs) [32]byte
}

type fieldParams struct {
	m    uint256.Int
	mBig *big.Int

	// cubeRoot is in the Montgomery domain.
	cubeRoot limbs
}

func newFieldParams[M Modulus](m, cubeRoot string) *fieldParams {
	var mod M

	params := &fieldParams{
		mBig: helpers.MustBigFromHex(m),
	}
	params.m.Set(uint256.MustFromHex(m))
	mod.setBigInt(&params.cubeRoot, helpers.MustBigFromDecimal(cubeRoot))
	return params
}

func paramsOf[M Modulus]() *fieldParams {
	var m M
	return m.params()
}

// Element is a field element.  All arguments and receivers are allowed
// to alias.  The zero value is a valid zero element.
//
// Note: The arithmetic is constant time, but the conversions to and
// from big.Int are not.
type Element[M Modulus] struct {
	_ disalloweq.DisallowEqual

	// n is always fully reduced, in the Montgomery domain.
	n limbs
}

// Zero sets `fe = 0` and returns `fe`.
func (fe *Element[M]) Zero() *Element[M] {
	fe.n = limbs{}
	return fe
}

// One sets `fe = 1` and returns `fe`.
func (fe *Element[M]) One() *Element[M] {
	var m M
	m.one(&fe.n)
	return fe
}

// SetUint64 sets `fe = u mod m` and returns `fe`.
func (fe *Element[M]) SetUint64(u uint64) *Element[M] {
	var m M
	m.setUint64(&fe.n, u)
	return fe
}

// Add sets `fe = a + b` and returns `fe`.
func (fe *Element[M]) Add(a, b *Element[M]) *Element[M] {
	var m M
	m.add(&fe.n, &a.n, &b.n)
	return fe
}

// Subtract sets `fe = a - b` and returns `fe`.
func (fe *Element[M]) Subtract(a, b *Element[M]) *Element[M] {
	var m M
	m.sub(&fe.n, &a.n, &b.n)
	return fe
}

// Negate sets `fe = -a` and returns `fe`.
func (fe *Element[M]) Negate(a *Element[M]) *Element[M] {
	var m M
	m.neg(&fe.n, &a.n)
	return fe
}

// Multiply sets `fe = a * b` and returns `fe`.
func (fe *Element[M]) Multiply(a, b *Element[M]) *Element[M] {
	var m M
	m.mul(&fe.n, &a.n, &b.n)
	return fe
}

// MultiplyByCubeRootOfUnity sets `fe = a * beta`, where beta is the
// value returned by CubeRootOfUnity, and returns `fe`.
func (fe *Element[M]) MultiplyByCubeRootOfUnity(a *Element[M]) *Element[M] {
	var m M
	m.mul(&fe.n, &a.n, &paramsOf[M]().cubeRoot)
	return fe
}

// Square sets `fe = a * a` and returns `fe`.
func (fe *Element[M]) Square(a *Element[M]) *Element[M] {
	var m M
	m.square(&fe.n, &a.n)
	return fe
}

// Invert sets `fe = 1/a` and returns `fe`.  If a is 0, fe is set to 0.
func (fe *Element[M]) Invert(a *Element[M]) *Element[M] {
	var (
		m   M
		inv limbs
	)
	ok := m.invert(&inv, &a.n)
	fe.n = inv
	if !ok {
		fe.Zero()
	}
	return fe
}

// Set sets `fe = a` and returns `fe`.
func (fe *Element[M]) Set(a *Element[M]) *Element[M] {
	fe.n = a.n
	return fe
}

// SetCanonicalBytes sets `fe = src`, where `src` is a 32-byte big-endian
// encoding of `fe`, and returns `fe`.  If `src` is not a canonical
// encoding of `fe`, SetCanonicalBytes returns nil and an error, and the
// receiver is unchanged.
func (fe *Element[M]) SetCanonicalBytes(src *[ElementSize]byte) (*Element[M], error) {
	var n uint256.Int
	n.SetBytes32(src[:])
	if !n.Lt(&paramsOf[M]().m) {
		return nil, errOutOfRange
	}

	var (
		m   M
		le  [ElementSize]byte
		tmp limbs
	)
	for i := range le {
		le[i] = src[ElementSize-1-i]
	}
	if err := m.setBytes(&tmp, &le); err != nil {
		return nil, errOutOfRange
	}

	fe.n = tmp
	return fe, nil
}

// SetBigInt sets `fe = b mod m` and returns `fe`.
func (fe *Element[M]) SetBigInt(b *big.Int) *Element[M] {
	var m M
	tmp := new(big.Int).Mod(b, paramsOf[M]().mBig)
	m.setBigInt(&fe.n, tmp)
	return fe
}

// Bytes returns the canonical big-endian encoding of `fe`.
func (fe *Element[M]) Bytes() []byte {
	var m M
	le := m.bytes(&fe.n)

	dst := make([]byte, ElementSize)
	for i := range dst {
		dst[i] = le[ElementSize-1-i]
	}
	return dst
}

// BigInt returns `fe` as a big.Int.
func (fe *Element[M]) BigInt() *big.Int {
	var m M
	return m.bigInt(&fe.n)
}

// ConditionalSelect sets `fe = a` iff `ctrl == 0`, `fe = b` otherwise,
// and returns `fe`.
func (fe *Element[M]) ConditionalSelect(a, b *Element[M], ctrl uint64) *Element[M] {
	mask := -helpers.Uint64IsNonzero(ctrl)
	for i := range fe.n {
		fe.n[i] = a.n[i] ^ (mask & (a.n[i] ^ b.n[i]))
	}
	return fe
}

// Equal returns 1 iff `fe == a`, 0 otherwise.
func (fe *Element[M]) Equal(a *Element[M]) uint64 {
	return helpers.LimbsAreEqual(&fe.n, &a.n)
}

// IsZero returns 1 iff `fe == 0`, 0 otherwise.
func (fe *Element[M]) IsZero() uint64 {
	return helpers.Uint64IsZero(fe.n[0] | fe.n[1] | fe.n[2] | fe.n[3])
}

// String returns the big-endian hex representation of `fe`.
func (fe *Element[M]) String() string {
	return hex.EncodeToString(fe.Bytes())
}

// MustRandomize randomizes and returns `fe`, or panics.
func (fe *Element[M]) MustRandomize() *Element[M] {
	var b [ElementSize]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			panic("internal/pasta/field: entropy source failure")
		}
		b[0] &= 0x7f // m < 2^255
		if _, err := fe.SetCanonicalBytes(&b); err == nil {
			return fe
		}
	}
}

// NewElement returns a new zero Element.
func NewElement[M Modulus]() *Element[M] {
	return &Element[M]{}
}

// NewElementFrom creates a new Element from another.
func NewElementFrom[M Modulus](other *Element[M]) *Element[M] {
	return NewElement[M]().Set(other)
}

// NewElementFromBigInt creates a new Element from a big.Int, reduced
// mod m.
func NewElementFromBigInt[M Modulus](b *big.Int) *Element[M] {
	return NewElement[M]().SetBigInt(b)
}

// CubeRootOfUnity returns a new Element set to a fixed primitive cube
// root of unity.
func CubeRootOfUnity[M Modulus]() *Element[M] {
	fe := NewElement[M]()
	fe.n = paramsOf[M]().cubeRoot
	return fe
}

// ModulusBig returns a copy of the modulus as a big.Int.
func ModulusBig[M Modulus]() *big.Int {
	return new(big.Int).Set(paramsOf[M]().mBig)
}
