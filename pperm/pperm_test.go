package pperm_test

import (
	"errors"
	"testing"

	"github.com/archsym/archsym/pperm"
)

// pv builds a partial permutation from a forward vector or fails.
func pv(t *testing.T, word ...int) pperm.PartialPerm {
	t.Helper()
	p, err := pperm.FromVector(word)
	if err != nil {
		t.Fatalf("FromVector(%v): %v", word, err)
	}

	return p
}

// TestFromVector_Validation rejects duplicates and negatives.
func TestFromVector_Validation(t *testing.T) {
	if _, err := pperm.FromVector([]int{1, 1}); !errors.Is(err, pperm.ErrInvalidImage) {
		t.Errorf("duplicate image: want ErrInvalidImage, got %v", err)
	}
	if _, err := pperm.FromVector([]int{-1}); !errors.Is(err, pperm.ErrInvalidImage) {
		t.Errorf("negative image: want ErrInvalidImage, got %v", err)
	}
}

// TestNormalization trims trailing zeros so equal actions compare
// equal.
func TestNormalization(t *testing.T) {
	a := pv(t, 2, 1, 0, 0)
	b := pv(t, 2, 1)

	if !a.Equal(b) {
		t.Error("trailing zeros must not affect equality")
	}
	if a.Key() != b.Key() {
		t.Error("trailing zeros must not affect Key")
	}
	if a.DomMax() != 2 {
		t.Errorf("DomMax() = %d; want 2", a.DomMax())
	}
}

// TestDomIm verifies domain/image bookkeeping.
func TestDomIm(t *testing.T) {
	p := pv(t, 0, 4, 0, 2) // 2→4, 4→2

	wantDom := []int{2, 4}
	wantIm := []int{2, 4}
	for i, x := range p.Dom() {
		if x != wantDom[i] {
			t.Fatalf("Dom() = %v; want %v", p.Dom(), wantDom)
		}
	}
	for i, y := range p.Im() {
		if y != wantIm[i] {
			t.Fatalf("Im() = %v; want %v", p.Im(), wantIm)
		}
	}
	if p.DomMin() != 2 || p.DomMax() != 4 || p.ImMin() != 2 || p.ImMax() != 4 {
		t.Error("dom/im bounds wrong")
	}
	if p.Apply(1) != 0 || p.Apply(2) != 4 || p.Apply(9) != 0 {
		t.Error("Apply must report 0 outside the domain")
	}
}

// TestInverse verifies dom/im swap and involution.
func TestInverse(t *testing.T) {
	p := pv(t, 3, 0, 5, 1) // 1→3, 3→5, 4→1
	inv := p.Inverse()

	for _, x := range p.Dom() {
		if inv.Apply(p.Apply(x)) != x {
			t.Errorf("~p(p(%d)) = %d; want %d", x, inv.Apply(p.Apply(x)), x)
		}
	}
	if !p.Inverse().Inverse().Equal(p) {
		t.Error("double inverse must restore the original")
	}
}

// TestMul_RefinedDomain verifies composition drops points undefined on
// either side.
func TestMul_RefinedDomain(t *testing.T) {
	p := pv(t, 2, 3, 4)    // 1→2, 2→3, 3→4
	q := pv(t, 0, 3, 0, 1) // 2→3, 4→1
	prod := p.Mul(q)       // 1→3, 3→1; 2 drops (q undefined at 3)

	if prod.Apply(1) != 3 || prod.Apply(3) != 1 {
		t.Errorf("product maps 1→%d, 3→%d; want 3, 1", prod.Apply(1), prod.Apply(3))
	}
	if prod.Apply(2) != 0 {
		t.Errorf("product must be undefined at 2, got %d", prod.Apply(2))
	}
	if len(prod.Dom()) != 2 {
		t.Errorf("Dom() = %v; want two points", prod.Dom())
	}
}

// TestIdentityPredicates covers total and partial identities.
func TestIdentityPredicates(t *testing.T) {
	if !pperm.Identity(4).IsIdentity() {
		t.Error("total identity must satisfy IsIdentity")
	}

	partial, err := pperm.IdentityOn([]int{2, 5})
	if err != nil {
		t.Fatal(err)
	}
	if !partial.IsIdentity() {
		t.Error("partial identity must satisfy IsIdentity")
	}
	if partial.Apply(3) != 0 {
		t.Error("partial identity undefined outside its domain")
	}

	if pv(t, 2, 1).IsIdentity() {
		t.Error("(1 2) is not an identity")
	}
}

// TestImage verifies sorted unique image computation.
func TestImage(t *testing.T) {
	p := pv(t, 3, 0, 1)

	img := p.Image([]int{1, 2, 3})
	if len(img) != 2 || img[0] != 1 || img[1] != 3 {
		t.Errorf("Image = %v; want [1 3]", img)
	}
}

// TestToPerm covers extension success and failure.
func TestToPerm(t *testing.T) {
	ok := pv(t, 2, 1) // (1 2) as a partial perm
	p, err := ok.ToPerm(4)
	if err != nil {
		t.Fatalf("ToPerm: %v", err)
	}
	if p.Apply(1) != 2 || p.Apply(3) != 3 {
		t.Error("extension must fix points outside the domain")
	}

	bad := pv(t, 0, 1) // 2→1 collides with fixed 1
	if _, err = bad.ToPerm(2); !errors.Is(err, pperm.ErrNotBijective) {
		t.Errorf("want ErrNotBijective, got %v", err)
	}
}
