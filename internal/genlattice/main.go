//go:build ignore

// genlattice derives a short lattice basis for each supported curve,
// and prints it as a glv.Lattice literal, along with a note if it
// differs from the basis that is actually used.
package main

import (
	"fmt"
	"os"

	"gitlab.com/yawning/glv-voi"
	"gitlab.com/yawning/glv-voi/curve/bandersnatch"
	"gitlab.com/yawning/glv-voi/curve/bls12377"
	"gitlab.com/yawning/glv-voi/curve/bls12381"
	"gitlab.com/yawning/glv-voi/curve/bn254"
	"gitlab.com/yawning/glv-voi/curve/bw6761"
	"gitlab.com/yawning/glv-voi/curve/pallas"
	"gitlab.com/yawning/glv-voi/curve/secp256k1"
	"gitlab.com/yawning/glv-voi/curve/vesta"
)

func main() {
	curves := []struct {
		name   string
		params *glv.Params
	}{
		{"bn254", bn254.Params()},
		{"bls12381", bls12381.Params()},
		{"bls12377", bls12377.Params()},
		{"bw6761", bw6761.Params()},
		{"secp256k1", secp256k1.Params()},
		{"pallas", pallas.Params()},
		{"vesta", vesta.Params()},
		{"bandersnatch", bandersnatch.Params()},
	}

	for _, c := range curves {
		l, err := glv.DeriveLattice(c.params.Order(), c.params.Lambda())
		if err != nil {
			fmt.Printf("%s: failed to derive lattice: %v\n", c.name, err)
			os.Exit(1)
		}

		// Make sure the derived basis is actually usable.
		if _, err = glv.NewParams(c.params.Order(), c.params.Lambda(), l); err != nil {
			fmt.Printf("%s: derived lattice is invalid: %v\n", c.name, err)
			os.Exit(1)
		}

		fmt.Printf("// %s\n", c.name)
		if !latticeEqual(l, c.params.Lattice()) {
			fmt.Printf("// NOTE: differs from the basis in use.\n")
		}
		fmt.Printf("&glv.Lattice{\n\tN: [4]*big.Int{\n")
		for _, n := range l.N {
			fmt.Printf("\t\thelpers.MustBigFromDecimal(%q),\n", n.String())
		}
		fmt.Printf("\t},\n\tNeg: [4]bool{%v, %v, %v, %v},\n}\n\n", l.Neg[0], l.Neg[1], l.Neg[2], l.Neg[3])
	}
}

func latticeEqual(a, b *glv.Lattice) bool {
	na, nb := a.Signed(), b.Signed()
	for i := range na {
		if na[i].Cmp(nb[i]) != 0 {
			return false
		}
	}
	return true
}
