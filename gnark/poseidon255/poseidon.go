// Package poseidon255 emits the Poseidon permutation as gnark constraints
// for the reference BLS12-381 instance. It mirrors the native engine's
// schedule constraint for constraint; use it from circuits compiled over the
// BLS12-381 scalar field.
package poseidon255

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/poseidon255/internal/params"
)

// Permute applies the reference permutation to a width-5 state inside a
// circuit and returns the new state.
func Permute(api frontend.API, state []frontend.Variable) ([]frontend.Variable, error) {
	p := params.BLS12381T5()
	if len(state) != p.Width {
		return nil, fmt.Errorf("poseidon255: state has %d words, instance needs %d", len(state), p.Width)
	}
	out := make([]frontend.Variable, p.Width)
	copy(out, state)

	alpha := uint64(p.Width)
	half := p.FullRounds / 2
	cursor := 0

	for r := 0; r < half; r++ {
		cursor = circuitAddConstants(api, out, p, cursor)
		circuitFullSBox(api, out, alpha)
		out = circuitMix(api, out, p)
	}
	for r := 0; r < p.PartialRounds; r++ {
		cursor = circuitAddConstants(api, out, p, cursor)
		out[0] = circuitExp(api, out[0], alpha)
		out = circuitMix(api, out, p)
	}
	for r := 0; r < half; r++ {
		cursor = circuitAddConstants(api, out, p, cursor)
		circuitFullSBox(api, out, alpha)
		out = circuitMix(api, out, p)
	}
	return out, nil
}

func circuitAddConstants(api frontend.API, state []frontend.Variable, p *params.Parameters, cursor int) int {
	for i := range state {
		state[i] = api.Add(state[i], p.RoundConstants[cursor+i])
	}
	return cursor + len(state)
}

func circuitFullSBox(api frontend.API, state []frontend.Variable, alpha uint64) {
	for i := range state {
		state[i] = circuitExp(api, state[i], alpha)
	}
}

func circuitMix(api frontend.API, state []frontend.Variable, p *params.Parameters) []frontend.Variable {
	t := p.Width
	out := make([]frontend.Variable, t)
	for i := 0; i < t; i++ {
		row := i * t
		sum := api.Mul(state[0], p.MDS[row])
		for j := 1; j < t; j++ {
			sum = api.Add(sum, api.Mul(state[j], p.MDS[row+j]))
		}
		out[i] = sum
	}
	return out
}

// circuitExp computes v^k by square and multiply, keeping the constraint
// count linear in the bit length of k.
func circuitExp(api frontend.API, v frontend.Variable, k uint64) frontend.Variable {
	if k == 0 {
		return frontend.Variable(1)
	}
	res := v
	for i := bits.Len64(k) - 2; i >= 0; i-- {
		res = api.Mul(res, res)
		if k&(1<<uint(i)) != 0 {
			res = api.Mul(res, v)
		}
	}
	return res
}
