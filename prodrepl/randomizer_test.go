package prodrepl_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/prodrepl"
)

// symGens returns {(1 2), (1 2 .. n)} generating Sym(n).
func symGens(t *testing.T, n int) perm.Set {
	t.Helper()

	swap, err := perm.FromCycles(n, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	cycle := make([]int, n)
	for i := range cycle {
		cycle[i] = i + 1
	}
	rot, err := perm.FromCycles(n, cycle)
	if err != nil {
		t.Fatal(err)
	}
	s, err := perm.NewSet(swap, rot)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

// TestNew_Errors verifies construction validation.
func TestNew_Errors(t *testing.T) {
	if _, err := prodrepl.New(perm.Set{}); !errors.Is(err, prodrepl.ErrEmptyGenerators) {
		t.Errorf("empty set: want ErrEmptyGenerators, got %v", err)
	}
	if _, err := prodrepl.New(symGens(t, 4), prodrepl.WithSlots(1)); !errors.Is(err, prodrepl.ErrOptionViolation) {
		t.Errorf("slots 1: want ErrOptionViolation, got %v", err)
	}
	if _, err := prodrepl.New(symGens(t, 4), prodrepl.WithWarmup(-1)); !errors.Is(err, prodrepl.ErrOptionViolation) {
		t.Errorf("warmup -1: want ErrOptionViolation, got %v", err)
	}
}

// TestNext_StaysInGroup verifies that products of generators never
// leave the generated group (here: parity is preserved for Alt gens).
func TestNext_StaysInGroup(t *testing.T) {
	// Alt(5) generators: 3-cycles, all even.
	a, _ := perm.FromCycles(5, []int{1, 2, 3})
	b, _ := perm.FromCycles(5, []int{1, 2, 4})
	c, _ := perm.FromCycles(5, []int{1, 2, 5})
	gens, _ := perm.NewSet(a, b, c)

	r, err := prodrepl.New(gens, prodrepl.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 200; i++ {
		if p := r.Next(); p.Parity() != 0 {
			t.Fatalf("draw %d has odd parity %v; products of even perms must stay even", i, p)
		}
	}
}

// TestNext_CoversSmallGroup draws from the Klein-style group
// <(1 2), (3 4)> and expects all four elements to appear.
func TestNext_CoversSmallGroup(t *testing.T) {
	a, _ := perm.FromCycles(4, []int{1, 2})
	b, _ := perm.FromCycles(4, []int{3, 4})
	gens, _ := perm.NewSet(a, b)

	r, err := prodrepl.New(gens, prodrepl.WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[r.Next().Key()] = true
	}
	if len(seen) != 4 {
		t.Errorf("drew %d distinct elements; want all 4", len(seen))
	}
}

// TestAltSymCertificates exercises the cycle-structure certificates.
func TestAltSymCertificates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	gens := symGens(t, 10)
	r, err := prodrepl.New(gens, prodrepl.WithRand(rng))
	if err != nil {
		t.Fatal(err)
	}
	if !r.TestSymmetric(gens, 200) {
		t.Error("Sym(10) generators must pass the symmetric certificate")
	}
	if r.TestAlternating(gens, 200) {
		t.Error("Sym(10) generators include an odd one; alternating certificate must fail")
	}

	// Alt(10): 3-cycle generators.
	var altGens perm.Set
	for i := 3; i <= 10; i++ {
		p, errCycle := perm.FromCycles(10, []int{1, 2, i})
		if errCycle != nil {
			t.Fatal(errCycle)
		}
		altGens.Push(p)
	}
	ra, err := prodrepl.New(altGens, prodrepl.WithRand(rng))
	if err != nil {
		t.Fatal(err)
	}
	if !ra.TestAlternating(altGens, 400) {
		t.Error("Alt(10) generators must pass the alternating certificate")
	}
	if ra.TestSymmetric(altGens, 200) {
		t.Error("all-even generators must fail the symmetric certificate")
	}
}
