package pasta

import (
	"gitlab.com/yawning/glv-voi/internal/helpers"
	"gitlab.com/yawning/glv-voi/internal/pasta/field"
)

// projectivePointMultTable stores pre-computed multiples [1P, ... 15P],
// with support for `0P` implicitly as part of the table lookup.
//
// The Z coordinate for entries is not guaranteed to be 1.
type projectivePointMultTable[M field.Modulus] [15]Point[M]

// SelectAndAdd sets `sum = sum + idx * P`, and returns `sum`.  idx
// MUST be in the range of `[0, 15]`.
func (tbl *projectivePointMultTable[M]) SelectAndAdd(sum *Point[M], idx uint64) *Point[M] {
	addend := NewIdentityPoint[M]()
	for i := uint64(1); i < 16; i++ {
		addend.uncheckedConditionalSelect(addend, &tbl[i-1], helpers.Uint64Equal(idx, i))
	}
	return sum.addComplete(sum, addend)
}

func newProjectivePointMultTable[M field.Modulus](p *Point[M]) *projectivePointMultTable[M] {
	var tbl projectivePointMultTable[M]
	tbl[0].Set(p) // will call `assertPointsValid(p)`
	for i := 1; i < len(tbl); i += 2 {
		tbl[i].doubleComplete(&tbl[i/2])
		tbl[i+1].addComplete(&tbl[i], p)
	}

	return &tbl
}
