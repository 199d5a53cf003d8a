// Package modular backs the permutation engine with math/big arithmetic
// over an arbitrary prime held in a fixed bit width. It is the generic
// (and reference) counterpart of the curve-specific backends.
package modular

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/poseidon255/field"
)

// Field performs arithmetic modulo a prime bounded by a fixed bit width.
// Primality of the modulus is not checked; binding a composite modulus is a
// caller error with unspecified permutation output.
type Field struct {
	p *big.Int
}

// New binds a modulus. It returns a *field.ArithmeticError when the modulus
// is not a positive integer or does not fit bitWidth bits.
func New(bitWidth int, prime *big.Int) (*Field, error) {
	if prime == nil || prime.Sign() <= 0 {
		return nil, &field.ArithmeticError{Msg: "modulus must be a positive integer"}
	}
	if prime.BitLen() > bitWidth {
		return nil, &field.ArithmeticError{
			Msg: fmt.Sprintf("modulus needs %d bits, backend holds %d", prime.BitLen(), bitWidth),
		}
	}
	return &Field{p: new(big.Int).Set(prime)}, nil
}

// Modulus returns a copy of the bound prime.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// FromBig reduces v into the field. The result never aliases v.
func (f *Field) FromBig(v *big.Int) (*big.Int, error) {
	if v == nil {
		return nil, &field.ArithmeticError{Msg: "cannot build a field element from a nil integer"}
	}
	return new(big.Int).Mod(v, f.p), nil
}

func (f *Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

func (f *Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

func (f *Field) Exp(base *big.Int, k uint64) *big.Int {
	return new(big.Int).Exp(base, new(big.Int).SetUint64(k), f.p)
}
