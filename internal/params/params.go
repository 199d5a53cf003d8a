package params

import (
	"math/big"
	"sync"
)

var bls381T5 = struct {
	once sync.Once
	p    *Parameters
}{}

// BLS12381T5 returns the reference width-5 parameter set over the BLS12-381
// scalar field (R_F=8, R_P=60). The returned set is shared and read-only.
func BLS12381T5() *Parameters {
	bls381T5.once.Do(func() {
		bls381T5.p = &Parameters{
			Config:         Config{Width: 5, FullRounds: 8, PartialRounds: 60},
			RoundConstants: parseHexTable(bls381T5RoundConstants[:]),
			MDS:            parseHexTable(bls381T5MDS[:]),
		}
	})
	return bls381T5.p
}

func parseHexTable(table []string) []*big.Int {
	out := make([]*big.Int, len(table))
	for i, s := range table {
		v, ok := new(big.Int).SetString(s, 16)
		if !ok {
			panic("poseidon255: malformed constant table entry " + s)
		}
		out[i] = v
	}
	return out
}
