// Package poseidon255 applies the Poseidon permutation to emulated
// BLS12-381 scalar field elements, so host circuits over other curves can
// verify digests produced by the native engine.
package poseidon255

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"

	"github.com/vocdoni/poseidon255/internal/params"
)

// FrParams selects the emulated BLS12-381 scalar field.
type FrParams = emparams.BLS12381Fr

// Permute applies the reference permutation to a width-5 emulated state and
// returns the new state in canonical form.
func Permute(api frontend.API, state []emulated.Element[FrParams]) ([]emulated.Element[FrParams], error) {
	p := params.BLS12381T5()
	if len(state) != p.Width {
		return nil, fmt.Errorf("poseidon255: state has %d words, instance needs %d", len(state), p.Width)
	}
	f, err := emulated.NewField[FrParams](api)
	if err != nil {
		return nil, err
	}

	cur := make([]*emulated.Element[FrParams], p.Width)
	for i := range cur {
		v := state[i]
		cur[i] = &v
	}

	alpha := uint64(p.Width)
	half := p.FullRounds / 2
	cursor := 0

	for r := 0; r < half; r++ {
		cursor = addConstants(f, cur, p, cursor)
		for i := range cur {
			cur[i] = expWord(f, cur[i], alpha)
		}
		cur = mix(f, cur, p)
	}
	for r := 0; r < p.PartialRounds; r++ {
		cursor = addConstants(f, cur, p, cursor)
		cur[0] = expWord(f, cur[0], alpha)
		cur = mix(f, cur, p)
	}
	for r := 0; r < half; r++ {
		cursor = addConstants(f, cur, p, cursor)
		for i := range cur {
			cur[i] = expWord(f, cur[i], alpha)
		}
		cur = mix(f, cur, p)
	}

	out := make([]emulated.Element[FrParams], p.Width)
	for i := range out {
		out[i] = *f.Reduce(cur[i])
	}
	return out, nil
}

func addConstants(f *emulated.Field[FrParams], state []*emulated.Element[FrParams], p *params.Parameters, cursor int) int {
	for i := range state {
		state[i] = f.Add(state[i], f.NewElement(p.RoundConstants[cursor+i]))
	}
	return cursor + len(state)
}

func expWord(f *emulated.Field[FrParams], v *emulated.Element[FrParams], k uint64) *emulated.Element[FrParams] {
	if k == 0 {
		return f.One()
	}
	res := v
	for i := bits.Len64(k) - 2; i >= 0; i-- {
		res = f.Mul(res, res)
		if k&(1<<uint(i)) != 0 {
			res = f.Mul(res, v)
		}
	}
	return res
}

func mix(f *emulated.Field[FrParams], state []*emulated.Element[FrParams], p *params.Parameters) []*emulated.Element[FrParams] {
	t := p.Width
	out := make([]*emulated.Element[FrParams], t)
	for i := 0; i < t; i++ {
		row := i * t
		acc := f.Mul(f.NewElement(p.MDS[row]), state[0])
		for j := 1; j < t; j++ {
			acc = f.Add(acc, f.Mul(f.NewElement(p.MDS[row+j]), state[j]))
		}
		out[i] = acc
	}
	return out
}
