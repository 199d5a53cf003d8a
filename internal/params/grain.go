package params

import (
	"fmt"
	"math/big"
)

// Header field widths of the 80-bit Grain initialization sequence.
const (
	grainFieldBits   = 12
	grainWidthBits   = 12
	grainRoundBits   = 10
	grainPaddingBits = 30
)

// grain is the 80-bit LFSR the Poseidon reference uses to derive round
// constants and the MDS sampling points. Bit 0 is the oldest state bit;
// every clock drops it and appends the new feedback bit.
type grain struct {
	bits [80]byte
}

func newGrain(n int, cfg Config) *grain {
	g := &grain{}
	pos := 0
	push := func(v uint64, width int) {
		for i := width - 1; i >= 0; i-- {
			g.bits[pos] = byte((v >> uint(i)) & 1)
			pos++
		}
	}
	push(1, 2) // field tag: GF(p)
	push(0, 4) // s-box tag: x^alpha
	push(uint64(n), grainFieldBits)
	push(uint64(cfg.Width), grainWidthBits)
	push(uint64(cfg.FullRounds), grainRoundBits)
	push(uint64(cfg.PartialRounds), grainRoundBits)
	push(1<<grainPaddingBits-1, grainPaddingBits)

	// Warm up: the first 160 output bits are discarded.
	for i := 0; i < 160; i++ {
		g.next()
	}
	return g
}

// next clocks the register once and returns the raw feedback bit.
func (g *grain) next() byte {
	b := g.bits[62] ^ g.bits[51] ^ g.bits[38] ^ g.bits[23] ^ g.bits[13] ^ g.bits[0]
	copy(g.bits[:], g.bits[1:])
	g.bits[79] = b
	return b
}

// bit returns the next filtered stream bit: raw bits are consumed in pairs
// and the second of a pair is emitted only when the first is set.
func (g *grain) bit() byte {
	for {
		b1 := g.next()
		b2 := g.next()
		if b1 == 1 {
			return b2
		}
	}
}

// readBits assembles n filtered bits into an integer, most significant bit
// first.
func (g *grain) readBits(n int) *big.Int {
	v := new(big.Int)
	for i := 0; i < n; i++ {
		v.Lsh(v, 1)
		if g.bit() == 1 {
			v.SetBit(v, 0, 1)
		}
	}
	return v
}

// readElement rejection-samples a canonical residue of prime from the
// stream, drawing n bits per attempt.
func (g *grain) readElement(prime *big.Int, n int) *big.Int {
	for {
		v := g.readBits(n)
		if v.Cmp(prime) < 0 {
			return v
		}
	}
}

// Generate derives a complete parameter set for the given prime and shape,
// reproducing the reference Grain derivation: the t*(R_F+R_P) round
// constants come first, then the two Cauchy vectors x and y; the MDS entry
// at (i, j) is (x_i + y_j)^-1 mod prime.
func Generate(prime *big.Int, cfg Config) (*Parameters, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if prime == nil || prime.Sign() <= 0 {
		return nil, fmt.Errorf("poseidon255: modulus must be a positive integer")
	}
	n := prime.BitLen()
	if n >= 1<<grainFieldBits || cfg.Width >= 1<<grainWidthBits ||
		cfg.FullRounds >= 1<<grainRoundBits || cfg.PartialRounds >= 1<<grainRoundBits {
		return nil, fmt.Errorf("poseidon255: shape does not fit the grain header (n=%d, t=%d, R_F=%d, R_P=%d)",
			n, cfg.Width, cfg.FullRounds, cfg.PartialRounds)
	}

	g := newGrain(n, cfg)

	rc := make([]*big.Int, cfg.Width*(cfg.FullRounds+cfg.PartialRounds))
	for i := range rc {
		rc[i] = g.readElement(prime, n)
	}

	xs := make([]*big.Int, cfg.Width)
	ys := make([]*big.Int, cfg.Width)
	for i := range xs {
		xs[i] = new(big.Int).Mod(g.readBits(n), prime)
	}
	for i := range ys {
		ys[i] = new(big.Int).Mod(g.readBits(n), prime)
	}
	mds := make([]*big.Int, cfg.Width*cfg.Width)
	for i := 0; i < cfg.Width; i++ {
		for j := 0; j < cfg.Width; j++ {
			sum := new(big.Int).Add(xs[i], ys[j])
			sum.Mod(sum, prime)
			inv := new(big.Int).ModInverse(sum, prime)
			if inv == nil {
				return nil, fmt.Errorf("poseidon255: mds entry (%d, %d) is not invertible mod the supplied modulus", i, j)
			}
			mds[i*cfg.Width+j] = inv
		}
	}

	return &Parameters{Config: cfg, RoundConstants: rc, MDS: mds}, nil
}
