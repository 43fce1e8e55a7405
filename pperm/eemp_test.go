package pperm_test

import (
	"errors"
	"testing"

	"github.com/archsym/archsym/pperm"
)

// cycle3 is the total 3-cycle (1 2 3) as a partial permutation.
func cycle3(t *testing.T) pperm.PartialPerm {
	t.Helper()

	return pv(t, 2, 3, 1)
}

// TestActionComponent_Errors rejects empty generator lists.
func TestActionComponent_Errors(t *testing.T) {
	_, _, _, err := pperm.ActionComponent([]int{1}, nil)
	if !errors.Is(err, pperm.ErrEmptyGenerators) {
		t.Fatalf("want ErrEmptyGenerators, got %v", err)
	}
}

// TestActionComponent_TotalGenerator keeps the full set fixed.
func TestActionComponent_TotalGenerator(t *testing.T) {
	comp, st, og, err := pperm.ActionComponent([]int{1, 2, 3}, []pperm.PartialPerm{cycle3(t)})
	if err != nil {
		t.Fatal(err)
	}

	if len(comp) != 1 {
		t.Fatalf("component size = %d; want 1 (total generator)", len(comp))
	}
	if len(st.Edges) != 0 {
		t.Fatalf("tree edges = %d; want 0", len(st.Edges))
	}
	if og.Rows[0][0] != 0 {
		t.Fatalf("orbit graph self-loop expected, got %d", og.Rows[0][0])
	}
}

// TestActionComponent_TraceConsistency checks the defining property of
// the Schreier tree: tracing element i carries the root to comp[i].
func TestActionComponent_TraceConsistency(t *testing.T) {
	gens := []pperm.PartialPerm{
		cycle3(t),
		mustIDOn(t, []int{1, 2}),
	}
	alpha := []int{1, 2, 3}

	comp, st, og, err := pperm.ActionComponent(alpha, gens)
	if err != nil {
		t.Fatal(err)
	}
	if len(comp) < 2 {
		t.Fatalf("component size = %d; want several image sets", len(comp))
	}

	for i := range comp {
		trace := pperm.SchreierTrace(i, st, gens)
		img := trace.Image(alpha)
		if !intsEq(img, comp[i]) {
			t.Errorf("trace(%d) image = %v; want %v", i, img, comp[i])
		}
	}

	// Orbit graph consistency: applying generator j to comp[i] lands
	// at comp[og.Rows[j][i]].
	for i := range comp {
		for j, gen := range gens {
			img := gen.Image(comp[i])
			if !intsEq(img, comp[og.Rows[j][i]]) {
				t.Errorf("og[%d][%d] inconsistent: image %v, recorded %v",
					j, i, img, comp[og.Rows[j][i]])
			}
		}
	}
}

// TestStronglyConnectedComponents labels a hand-built orbit graph.
func TestStronglyConnectedComponents(t *testing.T) {
	// Nodes 0↔1 form a cycle; node 2 is a sink.
	og := pperm.OrbitGraph{
		DomMax: 3,
		Rows: [][]int{
			{1, 0, 2},
			{2, 2, 2},
		},
	}

	count, comp := pperm.StronglyConnectedComponents(og)
	if count != 2 {
		t.Fatalf("SCC count = %d; want 2", count)
	}
	if comp[0] != comp[1] {
		t.Error("nodes 0 and 1 must share a component")
	}
	if comp[2] == comp[0] {
		t.Error("node 2 must be its own component")
	}
}

// TestInverseSemigroup_CyclicGroup treats C_3 as an inverse semigroup.
func TestInverseSemigroup_CyclicGroup(t *testing.T) {
	s, err := pperm.NewInverseSemigroup([]pperm.PartialPerm{cycle3(t)})
	if err != nil {
		t.Fatal(err)
	}

	c := cycle3(t)
	if !s.Contains(c) {
		t.Error("generator must be contained")
	}
	if !s.Contains(c.Mul(c)) {
		t.Error("square of generator must be contained")
	}
	if !s.Contains(pperm.Identity(3)) {
		t.Error("identity (cube of generator) must be contained")
	}

	if s.Contains(pv(t, 2, 1, 3)) {
		t.Error("(1 2) is not a power of the 3-cycle")
	}
	if s.Contains(mustIDOn(t, []int{1})) {
		t.Error("partial identities are not elements of a group of total perms")
	}
}

// TestInverseSemigroup_Restrictions covers genuinely partial elements.
func TestInverseSemigroup_Restrictions(t *testing.T) {
	gens := []pperm.PartialPerm{cycle3(t), mustIDOn(t, []int{1, 2})}
	s, err := pperm.NewInverseSemigroup(gens)
	if err != nil {
		t.Fatal(err)
	}

	// id_{1,2} · (1 2 3) maps 1→2, 2→3: a product of generators.
	restriction, err := pperm.FromDomImage([]int{1, 2}, []int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains(restriction) {
		t.Error("restriction of the cycle to {1,2} must be contained")
	}

	// 1→3, 2→2 is no restriction of any cycle power.
	outsider, err := pperm.FromDomImage([]int{1, 2}, []int{3, 2})
	if err != nil {
		t.Fatal(err)
	}
	if s.Contains(outsider) {
		t.Error("non-restriction must be rejected")
	}
}

// TestInverseSemigroup_Empty rejects everything.
func TestInverseSemigroup_Empty(t *testing.T) {
	s, err := pperm.NewInverseSemigroup(nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Contains(pperm.Identity(1)) {
		t.Error("empty semigroup contains nothing")
	}
}

// mustIDOn builds a partial identity or fails the test.
func mustIDOn(t *testing.T, dom []int) pperm.PartialPerm {
	t.Helper()
	p, err := pperm.IdentityOn(dom)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

// intsEq compares two sorted int slices.
func intsEq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
