package schreier_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/schreier"
)

// labels4Cycle returns the generator set {(1 2 3 4), (2 4)} of D_8.
func labels4Cycle(t *testing.T) perm.Set {
	t.Helper()
	rot, err := perm.FromCycles(4, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	refl, err := perm.FromCycles(4, []int{2, 4})
	if err != nil {
		t.Fatal(err)
	}
	s, err := perm.NewSet(rot, refl)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

// TestBuild_Errors verifies root validation.
func TestBuild_Errors(t *testing.T) {
	if _, err := schreier.Build(schreier.Tree, 4, 0, perm.Set{}); !errors.Is(err, schreier.ErrRootOutOfRange) {
		t.Errorf("root 0: want ErrRootOutOfRange, got %v", err)
	}
	if _, err := schreier.Build(schreier.Tree, 4, 5, perm.Set{}); !errors.Is(err, schreier.ErrRootOutOfRange) {
		t.Errorf("root 5: want ErrRootOutOfRange, got %v", err)
	}
}

// TestBuild_EmptyLabels covers the singleton orbit.
func TestBuild_EmptyLabels(t *testing.T) {
	for _, kind := range []schreier.Kind{schreier.Tree, schreier.Explicit} {
		s, err := schreier.Build(kind, 5, 3, perm.Set{})
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		}
		if nodes := s.Nodes(); len(nodes) != 1 || nodes[0] != 3 {
			t.Errorf("%v: Nodes() = %v; want [3]", kind, nodes)
		}
		if !s.Contains(3) || s.Contains(1) {
			t.Errorf("%v: membership wrong for singleton orbit", kind)
		}
		if !s.Transversal(3).IsIdentity() {
			t.Errorf("%v: root transversal must be identity", kind)
		}
	}
}

// TestBuild_FullOrbit covers a transitive label set on 4 points.
func TestBuild_FullOrbit(t *testing.T) {
	labels := labels4Cycle(t)

	for _, kind := range []schreier.Kind{schreier.Tree, schreier.Explicit} {
		s, err := schreier.Build(kind, 4, 1, labels)
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		}

		nodes := s.Nodes()
		if len(nodes) != 4 || nodes[0] != 1 {
			t.Fatalf("%v: Nodes() = %v; want all 4 points, root first", kind, nodes)
		}

		// Every transversal must map the root to its point.
		for _, x := range nodes {
			u := s.Transversal(x)
			if u.Apply(1) != x {
				t.Errorf("%v: transversal(%d)(1) = %d; want %d", kind, x, u.Apply(1), x)
			}
		}
	}
}

// TestVariantEquivalence checks the contract that both stores yield
// identical transversals for every orbit point.
func TestVariantEquivalence(t *testing.T) {
	labels := labels4Cycle(t)

	tr, err := schreier.Build(schreier.Tree, 4, 1, labels)
	if err != nil {
		t.Fatal(err)
	}
	ex, err := schreier.Build(schreier.Explicit, 4, 1, labels)
	if err != nil {
		t.Fatal(err)
	}

	for x := 1; x <= 4; x++ {
		if !tr.Transversal(x).Equal(ex.Transversal(x)) {
			t.Errorf("transversal(%d) differs: tree %v vs explicit %v",
				x, tr.Transversal(x), ex.Transversal(x))
		}
	}
}

// TestTransversalPanicsOutsideOrbit documents the programmer-error
// contract.
func TestTransversalPanicsOutsideOrbit(t *testing.T) {
	fix, _ := perm.FromCycles(4, []int{1, 2})
	labels, _ := perm.NewSet(fix)

	s, err := schreier.Build(schreier.Tree, 4, 1, labels)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, schreier.ErrNotInOrbit) {
			t.Fatalf("panic value = %v; want ErrNotInOrbit", r)
		}
	}()
	s.Transversal(3)
}

// TestOrbitPartition verifies orbit splitting.
func TestOrbitPartition(t *testing.T) {
	a, _ := perm.FromCycles(5, []int{1, 2})
	b, _ := perm.FromCycles(5, []int{3, 4})
	labels, _ := perm.NewSet(a, b)

	parts := schreier.OrbitPartition(labels)
	if len(parts) != 3 {
		t.Fatalf("OrbitPartition yielded %d orbits; want 3", len(parts))
	}
	for _, orbit := range parts {
		sort.Ints(orbit)
	}
	want := [][]int{{1, 2}, {3, 4}, {5}}
	for i := range want {
		if len(parts[i]) != len(want[i]) {
			t.Fatalf("orbit %d = %v; want %v", i, parts[i], want[i])
		}
		for j := range want[i] {
			if parts[i][j] != want[i][j] {
				t.Fatalf("orbit %d = %v; want %v", i, parts[i], want[i])
			}
		}
	}
}
