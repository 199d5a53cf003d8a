// Package poseidon255 implements the Poseidon permutation for the reference
// x^5 instance over the BLS12-381 scalar field (state width 5, 8 full and 60
// partial rounds). The engine is generic over a prime-field backend so the
// same round schedule runs on gnark-crypto elements, plain big integers, or
// any other implementation of field.Field.
package poseidon255

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/poseidon255/field"
	"github.com/vocdoni/poseidon255/field/bls381"
	"github.com/vocdoni/poseidon255/internal/params"
)

// Engine applies the permutation for one parameter set. After construction
// it holds only immutable data, so a single Engine may serve concurrent
// Permute calls as long as each call owns its state slice.
type Engine[E any] struct {
	f   field.Field[E]
	cfg params.Config

	arc []E // round constants, reduced once at construction
	mds []E // row-major Width x Width matrix, reduced once at construction

	rounds []round
}

// round is one schedule entry: the state words that go through the S-box
// after the round constants are added.
type round struct {
	sboxWords []int
}

// NewEngine validates the parameter shape, reduces both tables through the
// backend and precomputes the round schedule. A table value the backend
// cannot represent surfaces as a *field.ArithmeticError.
func NewEngine[E any](f field.Field[E], p *params.Parameters) (*Engine[E], error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	e := &Engine[E]{f: f, cfg: p.Config}
	var err error
	if e.arc, err = reduceTable(f, p.RoundConstants); err != nil {
		return nil, err
	}
	if e.mds, err = reduceTable(f, p.MDS); err != nil {
		return nil, err
	}
	e.rounds = schedule(p.Config)
	return e, nil
}

// NewBLS12381 builds the engine for the reference instance on the
// gnark-crypto backend.
func NewBLS12381() (*Engine[fr.Element], error) {
	return NewEngine[fr.Element](bls381.Backend{}, params.BLS12381T5())
}

func reduceTable[E any](f field.Field[E], raw []*big.Int) ([]E, error) {
	out := make([]E, len(raw))
	for i, v := range raw {
		e, err := f.FromBig(v)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// schedule lays out R_F/2 full rounds, R_P partial rounds and another R_F/2
// full rounds. Full rounds substitute every word, partial rounds word 0
// only.
func schedule(cfg params.Config) []round {
	all := make([]int, cfg.Width)
	for i := range all {
		all[i] = i
	}
	half := cfg.FullRounds / 2
	rounds := make([]round, 0, cfg.FullRounds+cfg.PartialRounds)
	for i := 0; i < half; i++ {
		rounds = append(rounds, round{sboxWords: all})
	}
	for i := 0; i < cfg.PartialRounds; i++ {
		rounds = append(rounds, round{sboxWords: all[:1]})
	}
	for i := 0; i < half; i++ {
		rounds = append(rounds, round{sboxWords: all})
	}
	return rounds
}

// Width returns the configured state width.
func (e *Engine[E]) Width() int {
	return e.cfg.Width
}

// Permute runs the full round schedule over state, mutating it in place and
// returning the same slice. The input values are not preserved.
func (e *Engine[E]) Permute(state []E) ([]E, error) {
	if len(state) != e.cfg.Width {
		return nil, fmt.Errorf("poseidon255: state has %d words, engine is configured for %d", len(state), e.cfg.Width)
	}
	e.permute(state)
	return state, nil
}

// permute returns the final round-constant cursor so tests can pin the
// consumption invariant.
func (e *Engine[E]) permute(state []E) int {
	cursor := 0
	for _, r := range e.rounds {
		cursor = e.addRoundConstants(state, cursor)
		e.subWords(state, r.sboxWords)
		e.mixLayer(state)
	}
	return cursor
}

// addRoundConstants adds the next Width table entries to the state, word i
// receiving entry cursor+i, and returns the advanced cursor. The cursor
// threads through all three schedule phases without resetting.
func (e *Engine[E]) addRoundConstants(state []E, cursor int) int {
	for i := range state {
		state[i] = e.f.Add(state[i], e.arc[cursor+i])
	}
	return cursor + len(state)
}

// subWords raises each targeted word to the power Width.
func (e *Engine[E]) subWords(state []E, words []int) {
	alpha := uint64(e.cfg.Width)
	for _, i := range words {
		state[i] = e.f.Exp(state[i], alpha)
	}
}

// mixLayer replaces state with MDS x state. Every accumulator reads only
// pre-mix values; the writeback happens after the last read.
func (e *Engine[E]) mixLayer(state []E) {
	t := e.cfg.Width
	out := make([]E, t)
	for i := 0; i < t; i++ {
		row := i * t
		acc := e.f.Mul(e.mds[row], state[0])
		for j := 1; j < t; j++ {
			acc = e.f.Add(acc, e.f.Mul(e.mds[row+j], state[j]))
		}
		out[i] = acc
	}
	copy(state, out)
}
