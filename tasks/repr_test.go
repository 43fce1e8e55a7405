package tasks_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archsym/archsym/group"
	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/tasks"
)

// squareGroup is D_8, the automorphism group of the 2×2 mesh.
func squareGroup(t *testing.T) *group.PermGroup {
	t.Helper()

	a, err := perm.FromCycles(4, []int{2, 4})
	require.NoError(t, err)
	b, err := perm.FromCycles(4, []int{1, 2}, []int{3, 4})
	require.NoError(t, err)
	gens, err := perm.NewSet(a, b)
	require.NoError(t, err)

	g, err := group.FromGenerators(4, gens)
	require.NoError(t, err)

	return g
}

// chainsGroup is <(1 2), (3 4)>: two independent length-2 chains.
func chainsGroup(t *testing.T) *group.PermGroup {
	t.Helper()

	a, err := perm.FromCycles(4, []int{1, 2})
	require.NoError(t, err)
	b, err := perm.FromCycles(4, []int{3, 4})
	require.NoError(t, err)
	gens, err := perm.NewSet(a, b)
	require.NoError(t, err)

	g, err := group.FromGenerators(4, gens)
	require.NoError(t, err)

	return g
}

// TestRepr_SquareScenarios pins the 4-cycle representative scenarios
// under the ORBITS method.
func TestRepr_SquareScenarios(t *testing.T) {
	g := squareGroup(t)

	cases := []struct {
		in, want tasks.Allocation
	}{
		{tasks.Allocation{1, 1}, tasks.Allocation{1, 1}},
		{tasks.Allocation{3, 2}, tasks.Allocation{1, 2}},
		{tasks.Allocation{4, 3}, tasks.Allocation{1, 2}},
	}

	for _, tc := range cases {
		m, err := tasks.Repr(g, tc.in, nil, tasks.WithMethod(tasks.MethodOrbits))
		require.NoError(t, err)
		require.True(t, m.Representative.Equal(tc.want),
			"repr(%v) = %v; want %v", tc.in, m.Representative, tc.want)
	}
}

// TestRepr_IterateAndOrbitsAgree cross-checks the two exact methods on
// every 2-task allocation (match mode off).
func TestRepr_IterateAndOrbitsAgree(t *testing.T) {
	g := squareGroup(t)

	tasks.EnumAllAllocations(2, 4, func(a tasks.Allocation) bool {
		it, err := tasks.Repr(g, a, nil,
			tasks.WithMethod(tasks.MethodIterate), tasks.WithMatch(false))
		require.NoError(t, err)

		orb, err := tasks.Repr(g, a, nil,
			tasks.WithMethod(tasks.MethodOrbits), tasks.WithMatch(false))
		require.NoError(t, err)

		require.True(t, it.Representative.Equal(orb.Representative),
			"methods disagree on %v: %v vs %v", a, it.Representative, orb.Representative)

		return true
	})
}

// TestRepr_Idempotent checks repr(repr(x)) = repr(x) for every method.
func TestRepr_Idempotent(t *testing.T) {
	g := squareGroup(t)

	methods := []tasks.Method{tasks.MethodIterate, tasks.MethodOrbits, tasks.MethodLocalSearch}
	for _, method := range methods {
		tasks.EnumAllAllocations(2, 4, func(a tasks.Allocation) bool {
			first, err := tasks.Repr(g, a, nil,
				tasks.WithMethod(method), tasks.WithMatch(false))
			require.NoError(t, err)

			second, err := tasks.Repr(g, first.Representative, nil,
				tasks.WithMethod(method), tasks.WithMatch(false))
			require.NoError(t, err)

			require.True(t, second.Representative.Equal(first.Representative),
				"%v not idempotent on %v", method, a)

			return true
		})
	}
}

// TestRepr_SoundnessLocalSearch verifies the approximate method stays
// inside the orbit.
func TestRepr_SoundnessLocalSearch(t *testing.T) {
	g := squareGroup(t)

	// Exact orbits for cross-checking.
	orbitOf := func(a tasks.Allocation) map[string]bool {
		seen := map[string]bool{a.Key(): true}
		queue := []tasks.Allocation{a}
		gens := g.Generators()
		for qi := 0; qi < len(queue); qi++ {
			for i := 0; i < gens.Len(); i++ {
				next := queue[qi].Permuted(gens.At(i), 1, 4)
				if !seen[next.Key()] {
					seen[next.Key()] = true
					queue = append(queue, next)
				}
			}
		}

		return seen
	}

	variants := []tasks.Variant{tasks.VariantBFS, tasks.VariantDFS, tasks.VariantSALinear}
	for _, variant := range variants {
		tasks.EnumAllAllocations(2, 4, func(a tasks.Allocation) bool {
			m, err := tasks.Repr(g, a, nil,
				tasks.WithMethod(tasks.MethodLocalSearch),
				tasks.WithVariant(variant),
				tasks.WithInverses(),
				tasks.WithRand(rand.New(rand.NewSource(5))))
			require.NoError(t, err)

			require.True(t, orbitOf(a)[m.Representative.Key()],
				"variant %v left the orbit of %v: %v", variant, a, m.Representative)

			return true
		})
	}
}

// TestRepr_ChainsScenario pins the two-chain cluster group scenario:
// the orbit minimum respects the chain structure.
func TestRepr_ChainsScenario(t *testing.T) {
	g := chainsGroup(t)

	m, err := tasks.Repr(g, tasks.Allocation{2, 4}, nil, tasks.WithMethod(tasks.MethodOrbits))
	require.NoError(t, err)
	require.True(t, m.Representative.Equal(tasks.Allocation{1, 3}))

	// [3,1] can only map within {3,4}×{1,2}: its minimum is itself.
	m, err = tasks.Repr(g, tasks.Allocation{3, 1}, nil, tasks.WithMethod(tasks.MethodOrbits))
	require.NoError(t, err)
	require.True(t, m.Representative.Equal(tasks.Allocation{3, 1}))
}

// TestRepr_Offset leaves out-of-window entries untouched.
func TestRepr_Offset(t *testing.T) {
	// C_2 acting on PEs {3,4} via offset 2.
	c2, err := group.Cyclic(2)
	require.NoError(t, err)

	m, err := tasks.Repr(c2, tasks.Allocation{1, 4, 2}, nil,
		tasks.WithMethod(tasks.MethodOrbits), tasks.WithOffset(2))
	require.NoError(t, err)

	require.True(t, m.Representative.Equal(tasks.Allocation{1, 3, 2}),
		"got %v", m.Representative)
}

// TestRepr_MatchMode returns a registered representative of the orbit
// when one is met during enumeration.
func TestRepr_MatchMode(t *testing.T) {
	g := squareGroup(t)
	var cache tasks.Orbits

	first, err := tasks.Repr(g, tasks.Allocation{3, 2}, &cache, tasks.WithMethod(tasks.MethodOrbits))
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	// Another member of the same orbit must resolve to the cached
	// representative, not a new one.
	second, err := tasks.Repr(g, tasks.Allocation{2, 3}, &cache, tasks.WithMethod(tasks.MethodOrbits))
	require.NoError(t, err)
	require.True(t, second.Representative.Equal(first.Representative))
	require.Equal(t, 1, cache.Len(), "no new orbit may be registered")
}

// TestOrbitsCache covers insertion classes and IsRepr.
func TestOrbitsCache(t *testing.T) {
	var cache tasks.Orbits

	novel, class := cache.Insert(tasks.Mapping{Representative: tasks.Allocation{1, 2}})
	require.True(t, novel)
	require.Equal(t, 0, class)

	novel, class = cache.Insert(tasks.Mapping{Representative: tasks.Allocation{1, 2}})
	require.False(t, novel)
	require.Equal(t, 0, class)

	novel, class = cache.Insert(tasks.Mapping{Representative: tasks.Allocation{1, 1}})
	require.True(t, novel)
	require.Equal(t, 1, class)

	require.True(t, cache.IsRepr(tasks.Allocation{1, 2}))
	require.False(t, cache.IsRepr(tasks.Allocation{2, 1}))
	require.Equal(t, 2, cache.Len())
}

// TestEnumAllocations counts distinct-PE allocations.
func TestEnumAllocations(t *testing.T) {
	count := 0
	tasks.EnumAllocations(2, 4, func(a tasks.Allocation) bool {
		require.Len(t, a, 2)
		require.NotEqual(t, a[0], a[1])
		count++

		return true
	})
	require.Equal(t, 6, count, "C(4,2) combinations")
}
