package pasta

import "gitlab.com/yawning/glv-voi/internal/pasta/field"

// ScalarMult sets `v = s * p`, and returns `v`, where `s` is a 32-byte
// big-endian integer.  `s` is not required to be reduced.
//
// This is a 4-bit fixed window multiply with no endomorphism, and is
// the baseline that the GLV routines are checked against.
func (v *Point[M]) ScalarMult(s *[field.ElementSize]byte, p *Point[M]) *Point[M] {
	// Past this precomputation, it is safe to trample over v, as p is
	// no longer used so it doesn't matter if they alias.
	tbl := newProjectivePointMultTable(p)

	v.Identity()
	for i, b := range s {
		// Skip the very first set of doubles, as v is guaranteed to be
		// the point at infinity.
		if i != 0 {
			v.doubleComplete(v)
			v.doubleComplete(v)
			v.doubleComplete(v)
			v.doubleComplete(v)
		}

		tbl.SelectAndAdd(v, uint64(b>>4))

		v.doubleComplete(v)
		v.doubleComplete(v)
		v.doubleComplete(v)
		v.doubleComplete(v)

		tbl.SelectAndAdd(v, uint64(b&0xf))
	}

	return v
}
