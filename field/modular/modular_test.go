package modular

import (
	"errors"
	"math/big"
	"testing"

	"github.com/vocdoni/poseidon255/field"
)

func newTestField(t *testing.T) *Field {
	t.Helper()
	f, err := New(8, big.NewInt(251))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNewRejectsOversizedModulus(t *testing.T) {
	_, err := New(7, big.NewInt(251)) // 251 needs 8 bits
	if err == nil {
		t.Fatal("expected error")
	}
	var ae *field.ArithmeticError
	if !errors.As(err, &ae) {
		t.Fatalf("want *field.ArithmeticError, got %T", err)
	}
}

func TestNewRejectsNonPositiveModulus(t *testing.T) {
	for _, prime := range []*big.Int{nil, new(big.Int), big.NewInt(-7)} {
		if _, err := New(64, prime); err == nil {
			t.Fatalf("expected error for modulus %v", prime)
		}
	}
}

func TestFromBigReducesCanonically(t *testing.T) {
	f := newTestField(t)

	v, err := f.FromBig(big.NewInt(500)) // 500 mod 251 = 249
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64() != 249 {
		t.Fatalf("got %d, want 249", v.Int64())
	}

	v, err = f.FromBig(big.NewInt(-1)) // Go's Mod is Euclidean, so -1 -> 250
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64() != 250 {
		t.Fatalf("got %d, want 250", v.Int64())
	}
}

func TestOpsDoNotAliasInputs(t *testing.T) {
	f := newTestField(t)
	a := big.NewInt(200)
	b := big.NewInt(100)

	sum := f.Add(a, b)
	if a.Int64() != 200 || b.Int64() != 100 {
		t.Fatal("Add mutated its inputs")
	}
	if sum.Int64() != 49 { // 300 mod 251
		t.Fatalf("Add: got %d, want 49", sum.Int64())
	}

	prod := f.Mul(a, b)
	if prod.Int64() != (200*100)%251 {
		t.Fatalf("Mul: got %d, want %d", prod.Int64(), (200*100)%251)
	}

	pow := f.Exp(a, 5)
	want := new(big.Int).Exp(big.NewInt(200), big.NewInt(5), big.NewInt(251))
	if pow.Cmp(want) != 0 {
		t.Fatalf("Exp: got %v, want %v", pow, want)
	}
	if a.Int64() != 200 {
		t.Fatal("Exp mutated its base")
	}
}
