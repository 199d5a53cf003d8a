// Package field defines the modular-arithmetic capability the permutation
// engine is generic over, and the error arithmetic backends report when a
// value cannot be represented.
package field

import "math/big"

// Field is the capability surface a prime-field backend provides. Every
// result is a canonical residue of the backend's modulus.
type Field[E any] interface {
	// FromBig reduces an arbitrary integer into the field.
	FromBig(v *big.Int) (E, error)
	Add(a, b E) E
	Mul(a, b E) E
	// Exp raises base to a small non-negative exponent.
	Exp(base E, k uint64) E
}

// ArithmeticError reports a value the arithmetic backend cannot represent,
// such as a modulus wider than the backend's fixed integer width. The
// failure is deterministic: retrying the same operation fails the same way.
type ArithmeticError struct {
	Msg string
}

func (e *ArithmeticError) Error() string {
	return "poseidon255: " + e.Msg
}
