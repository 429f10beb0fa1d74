// Copyright 2023 Yawning Angel.  All Rights Reserved.
//
// glv-voi can be used in non-commercial projects of any kind,
// excluding those relating to or containing non-fungible tokens
// ("NFT") or blockchain-related projects.
//
// The package can not be modified to suit your needs. You may not
// redistribute or resell it, even if modified.

// Package helpers provides miscellaneous helpers.
package helpers

import (
	"math/big"
	"math/bits"

	"gitlab.com/yawning/tuplehash"
	"golang.org/x/crypto/sha3"
)

const streamDomain = "glv-voi/ScalarStream"

// Uint64IsZero returns 1 iff `u == 0`, 0 otherwise, in constant time.
func Uint64IsZero(u uint64) uint64 {
	_, borrow := bits.Sub64(u, 1, 0)
	return borrow
}

// Uint64IsNonzero returns 1 iff `u != 0`, 0 otherwise, in constant time.
func Uint64IsNonzero(u uint64) uint64 {
	return 1 ^ Uint64IsZero(u)
}

// Uint64Equal returns 1 iff `a == b`, 0 otherwise, in constant time.
func Uint64Equal(a, b uint64) uint64 {
	return Uint64IsZero(a ^ b)
}

// LimbsAreEqual returns 1 iff `a == b`, 0 otherwise, in constant time.
func LimbsAreEqual(a, b *[4]uint64) uint64 {
	var ctrl uint64
	for i := range a {
		ctrl |= a[i] ^ b[i]
	}
	return Uint64IsZero(ctrl)
}

// MustBigFromDecimal parses a base 10 integer, or panics.
func MustBigFromDecimal(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("helpers: invalid decimal integer: " + s)
	}
	return z
}

// MustBigFromHex parses a `0x` prefixed base 16 integer, or panics.
func MustBigFromHex(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("helpers: invalid hex integer: " + s)
	}
	return z
}

// ScalarStream is a deterministic stream of integers in `[0, r)`,
// derived from a label.  This is intended for reproducible test
// vectors, and MUST NOT be used to generate secrets.
type ScalarStream struct {
	xof sha3.ShakeHash
	r   *big.Int
	buf []byte
}

// Next returns the next integer in the stream.
func (s *ScalarStream) Next() *big.Int {
	// Sample 128 extra bits, so that the bias from the reduction is
	// negligible.
	_, _ = s.xof.Read(s.buf)
	z := new(big.Int).SetBytes(s.buf)
	return z.Mod(z, s.r)
}

// NewScalarStream creates a new ScalarStream over `[0, r)`, from the
// label.
func NewScalarStream(r *big.Int, label string) *ScalarStream {
	// Bind the label and the modulus unambiguously via TupleHash, and
	// use the digest to key the cSHAKE256 instance that provides the
	// stream.
	th := tuplehash.NewTupleHash256([]byte(streamDomain), 32)
	_, _ = th.Write([]byte(label))
	_, _ = th.Write(r.Bytes())

	return &ScalarStream{
		xof: sha3.NewCShake256([]byte(streamDomain), th.Sum(nil)),
		r:   new(big.Int).Set(r),
		buf: make([]byte, (r.BitLen()+7)/8+16),
	}
}
