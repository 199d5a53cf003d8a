package params

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func TestGenerateReproducesEmbeddedTables(t *testing.T) {
	got, err := Generate(fr.Modulus(), Config{Width: 5, FullRounds: 8, PartialRounds: 60})
	if err != nil {
		t.Fatal(err)
	}
	want := BLS12381T5()
	if len(got.RoundConstants) != len(want.RoundConstants) {
		t.Fatalf("generated %d round constants, table holds %d", len(got.RoundConstants), len(want.RoundConstants))
	}
	for i := range want.RoundConstants {
		if got.RoundConstants[i].Cmp(want.RoundConstants[i]) != 0 {
			t.Fatalf("round constant %d mismatch\nwant %x\ngot  %x", i, want.RoundConstants[i], got.RoundConstants[i])
		}
	}
	for i := range want.MDS {
		if got.MDS[i].Cmp(want.MDS[i]) != 0 {
			t.Fatalf("mds entry %d mismatch\nwant %x\ngot  %x", i, want.MDS[i], got.MDS[i])
		}
	}
}

func TestGenerateSmallInstance(t *testing.T) {
	prime := big.NewInt((1 << 61) - 1) // 2^61-1, Mersenne prime
	cfg := Config{Width: 3, FullRounds: 4, PartialRounds: 2}
	p, err := Generate(prime, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := 3 * (4 + 2); len(p.RoundConstants) != want {
		t.Fatalf("got %d round constants, want %d", len(p.RoundConstants), want)
	}
	if len(p.MDS) != 9 {
		t.Fatalf("got %d mds entries, want 9", len(p.MDS))
	}
	for i, c := range p.RoundConstants {
		if c.Sign() < 0 || c.Cmp(prime) >= 0 {
			t.Fatalf("round constant %d out of range: %x", i, c)
		}
	}
	for i, m := range p.MDS {
		if m.Sign() <= 0 || m.Cmp(prime) >= 0 {
			t.Fatalf("mds entry %d out of range: %x", i, m)
		}
	}
	if err := Validate(p); err != nil {
		t.Fatalf("generated set fails validation: %v", err)
	}
}

func TestGenerateRejectsBadShapes(t *testing.T) {
	prime := fr.Modulus()
	cases := []struct {
		name string
		p    *big.Int
		cfg  Config
	}{
		{"nil modulus", nil, Config{Width: 3, FullRounds: 4, PartialRounds: 2}},
		{"zero modulus", new(big.Int), Config{Width: 3, FullRounds: 4, PartialRounds: 2}},
		{"zero width", prime, Config{Width: 0, FullRounds: 4, PartialRounds: 2}},
		{"odd full rounds", prime, Config{Width: 3, FullRounds: 5, PartialRounds: 2}},
		{"negative partial rounds", prime, Config{Width: 3, FullRounds: 4, PartialRounds: -1}},
		{"header overflow", prime, Config{Width: 3, FullRounds: 1024, PartialRounds: 2}},
	}
	for _, tc := range cases {
		if _, err := Generate(tc.p, tc.cfg); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestValidateTableSizes(t *testing.T) {
	ok := BLS12381T5()
	if err := Validate(ok); err != nil {
		t.Fatalf("reference set fails validation: %v", err)
	}

	short := &Parameters{Config: ok.Config, RoundConstants: ok.RoundConstants[:339], MDS: ok.MDS}
	if err := Validate(short); err == nil {
		t.Error("expected error for short round constant table")
	}
	badMDS := &Parameters{Config: ok.Config, RoundConstants: ok.RoundConstants, MDS: ok.MDS[:20]}
	if err := Validate(badMDS); err == nil {
		t.Error("expected error for truncated mds")
	}
}
