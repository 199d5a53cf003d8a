package params

import (
	"fmt"
	"math/big"
)

// Config fixes the shape of a Poseidon instance: state width t, number of
// full rounds R_F and number of partial rounds R_P. The S-box exponent of
// an instance equals its width.
type Config struct {
	Width         int
	FullRounds    int
	PartialRounds int
}

// Parameters bundles a Config with the raw integer tables the permutation
// consumes. RoundConstants is a flat sequence read strictly left to right,
// one entry per state word per round; MDS is a row-major Width x Width
// matrix.
type Parameters struct {
	Config

	RoundConstants []*big.Int
	MDS            []*big.Int
}

func (c Config) check() error {
	if c.Width < 1 {
		return fmt.Errorf("poseidon255: state width must be at least 1, got %d", c.Width)
	}
	if c.FullRounds < 0 || c.FullRounds%2 != 0 {
		return fmt.Errorf("poseidon255: full rounds must be even and non-negative, got %d", c.FullRounds)
	}
	if c.PartialRounds < 0 {
		return fmt.Errorf("poseidon255: partial rounds must be non-negative, got %d", c.PartialRounds)
	}
	return nil
}
