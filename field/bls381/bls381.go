// Package bls381 backs the permutation engine with gnark-crypto's BLS12-381
// scalar field.
package bls381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Backend implements field.Field[fr.Element]. The zero value is ready to
// use; the modulus is fixed by the curve.
type Backend struct{}

// Modulus returns the order of the BLS12-381 scalar field.
func Modulus() *big.Int {
	return fr.Modulus()
}

func (Backend) FromBig(v *big.Int) (fr.Element, error) {
	var e fr.Element
	e.SetBigInt(v)
	return e, nil
}

func (Backend) Add(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Add(&a, &b)
	return r
}

func (Backend) Mul(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Mul(&a, &b)
	return r
}

func (Backend) Exp(base fr.Element, k uint64) fr.Element {
	var r fr.Element
	r.Exp(base, new(big.Int).SetUint64(k))
	return r
}
