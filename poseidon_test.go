package poseidon255

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/poseidon255/field"
	"github.com/vocdoni/poseidon255/field/bls381"
	"github.com/vocdoni/poseidon255/field/modular"
	"github.com/vocdoni/poseidon255/internal/params"
)

// Digest of the state [0, 1, 2, 3, 4] under the reference instance, from the
// Poseidon reference implementation's test vectors.
var referenceDigest = [5]string{
	"2a918b9c9f9bd7bb509331c81e297b5707f6fc7393dcee1b13901a0b22202e18",
	"65ebf8671739eeb11fb217f2d5c5bf4a0c3f210e3f3cd3b08b5db75675d797f7",
	"2cc176fc26bc70737a696a9dfd1b636ce360ee76926d182390cdb7459cf585ce",
	"4dc4e29d283afd2a491fe6aef122b9a968e74eff05341f3cc23fda1781dcb566",
	"03ff622da276830b9451b88b85e6184fd6ae15c8ab3ee25a5667be8592cce3b1",
}

func mustBig(t *testing.T, hex string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		t.Fatalf("parse %q", hex)
	}
	return v
}

func mustElement(t *testing.T, hex string) fr.Element {
	t.Helper()
	var e fr.Element
	e.SetBigInt(mustBig(t, hex))
	return e
}

func counterState(n int) []fr.Element {
	state := make([]fr.Element, n)
	for i := range state {
		state[i].SetUint64(uint64(i))
	}
	return state
}

func TestReferenceVector(t *testing.T) {
	engine, err := NewBLS12381()
	if err != nil {
		t.Fatal(err)
	}
	state := counterState(5)
	out, err := engine.Permute(state)
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		want := mustElement(t, referenceDigest[i])
		if !out[i].Equal(&want) {
			t.Fatalf("word %d mismatch\nwant %s\ngot  %s", i, want.Text(16), out[i].Text(16))
		}
	}
	if &out[0] != &state[0] {
		t.Fatal("permute must hand back the caller's storage")
	}
}

func TestReferenceVectorBigIntBackend(t *testing.T) {
	f, err := modular.New(256, bls381.Modulus())
	if err != nil {
		t.Fatal(err)
	}
	engine, err := NewEngine[*big.Int](f, params.BLS12381T5())
	if err != nil {
		t.Fatal(err)
	}
	state := make([]*big.Int, 5)
	for i := range state {
		state[i] = big.NewInt(int64(i))
	}
	out, err := engine.Permute(state)
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		if want := mustBig(t, referenceDigest[i]); out[i].Cmp(want) != 0 {
			t.Fatalf("word %d mismatch\nwant %x\ngot  %x", i, want, out[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	engine, err := NewBLS12381()
	if err != nil {
		t.Fatal(err)
	}
	a, err := engine.Permute(counterState(5))
	if err != nil {
		t.Fatal(err)
	}
	b, err := engine.Permute(counterState(5))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			t.Fatalf("word %d differs between identical calls", i)
		}
	}
}

func TestTablesUntouchedAcrossCalls(t *testing.T) {
	p := params.BLS12381T5()
	rcBefore := make([]*big.Int, len(p.RoundConstants))
	for i, v := range p.RoundConstants {
		rcBefore[i] = new(big.Int).Set(v)
	}
	mdsBefore := make([]*big.Int, len(p.MDS))
	for i, v := range p.MDS {
		mdsBefore[i] = new(big.Int).Set(v)
	}

	engine, err := NewBLS12381()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := engine.Permute(counterState(5)); err != nil {
			t.Fatal(err)
		}
	}

	for i, v := range p.RoundConstants {
		if v.Cmp(rcBefore[i]) != 0 {
			t.Fatalf("round constant %d changed across calls", i)
		}
	}
	for i, v := range p.MDS {
		if v.Cmp(mdsBefore[i]) != 0 {
			t.Fatalf("mds entry %d changed across calls", i)
		}
	}
}

func TestMixLayerLinearity(t *testing.T) {
	engine, err := NewBLS12381()
	if err != nil {
		t.Fatal(err)
	}
	x := make([]fr.Element, 5)
	y := make([]fr.Element, 5)
	sum := make([]fr.Element, 5)
	for i := range x {
		x[i].SetUint64(uint64(1000 + 37*i))
		y[i].SetUint64(uint64(7777 + 91*i))
		sum[i].Add(&x[i], &y[i])
	}

	engine.mixLayer(x)
	engine.mixLayer(y)
	engine.mixLayer(sum)

	for i := range sum {
		var got fr.Element
		got.Add(&x[i], &y[i])
		if !got.Equal(&sum[i]) {
			t.Fatalf("mix(x)+mix(y) != mix(x+y) at word %d", i)
		}
	}
}

func TestRoundConstantConsumption(t *testing.T) {
	engine, err := NewBLS12381()
	if err != nil {
		t.Fatal(err)
	}
	cursor := engine.permute(counterState(5))
	if want := 5 * (8 + 60); cursor != want {
		t.Fatalf("consumed %d round constants, schedule requires %d", cursor, want)
	}
}

// A width-1 instance collapses the full-round S-box to the partial-round
// S-box and the mix layer to a scalar multiply; the schedule must still hold.
func TestWidthOneBoundary(t *testing.T) {
	prime := bls381.Modulus()
	cfg := params.Config{Width: 1, FullRounds: 2, PartialRounds: 3}
	p, err := params.Generate(prime, cfg)
	if err != nil {
		t.Fatal(err)
	}
	f, err := modular.New(256, prime)
	if err != nil {
		t.Fatal(err)
	}
	engine, err := NewEngine[*big.Int](f, p)
	if err != nil {
		t.Fatal(err)
	}

	out, err := engine.Permute([]*big.Int{big.NewInt(9)})
	if err != nil {
		t.Fatal(err)
	}

	// Recompute with the schedule spelled out: every round is
	// add-constant, x^1, scalar multiply by the 1x1 matrix.
	want := big.NewInt(9)
	for r := 0; r < cfg.FullRounds+cfg.PartialRounds; r++ {
		want.Add(want, p.RoundConstants[r])
		want.Mod(want, prime)
		want.Exp(want, big.NewInt(1), prime)
		want.Mul(want, p.MDS[0])
		want.Mod(want, prime)
	}
	if out[0].Cmp(want) != 0 {
		t.Fatalf("width-1 output mismatch\nwant %x\ngot  %x", want, out[0])
	}
}

func TestConcurrentPermute(t *testing.T) {
	engine, err := NewBLS12381()
	if err != nil {
		t.Fatal(err)
	}
	want := make([]fr.Element, 5)
	for i := range want {
		want[i] = mustElement(t, referenceDigest[i])
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := engine.Permute(counterState(5))
			if err != nil {
				t.Error(err)
				return
			}
			for i := range out {
				if !out[i].Equal(&want[i]) {
					t.Errorf("word %d mismatch in concurrent call", i)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPermuteRejectsWrongWidth(t *testing.T) {
	engine, err := NewBLS12381()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := engine.Permute(counterState(4)); err == nil {
		t.Fatal("expected error for 4-word state on a width-5 engine")
	}
	if _, err := engine.Permute(nil); err == nil {
		t.Fatal("expected error for nil state")
	}
}

func TestNewEngineValidation(t *testing.T) {
	f := bls381.Backend{}
	good := params.BLS12381T5()

	bad := &params.Parameters{
		Config:         params.Config{Width: 5, FullRounds: 7, PartialRounds: 60},
		RoundConstants: good.RoundConstants,
		MDS:            good.MDS,
	}
	if _, err := NewEngine[fr.Element](f, bad); err == nil {
		t.Fatal("expected error for odd full round count")
	}

	bad = &params.Parameters{
		Config:         good.Config,
		RoundConstants: good.RoundConstants[:10],
		MDS:            good.MDS,
	}
	if _, err := NewEngine[fr.Element](f, bad); err == nil {
		t.Fatal("expected error for short round constant table")
	}

	bad = &params.Parameters{
		Config:         good.Config,
		RoundConstants: good.RoundConstants,
		MDS:            good.MDS[:24],
	}
	if _, err := NewEngine[fr.Element](f, bad); err == nil {
		t.Fatal("expected error for truncated mds matrix")
	}
}

func TestModulusOverflowIsArithmeticError(t *testing.T) {
	_, err := modular.New(64, bls381.Modulus())
	if err == nil {
		t.Fatal("expected error binding a 255-bit modulus into 64 bits")
	}
	var ae *field.ArithmeticError
	if !errors.As(err, &ae) {
		t.Fatalf("want *field.ArithmeticError, got %T", err)
	}
}
