package archgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archsym/archsym/archgraph"
	"github.com/archsym/archsym/group"
	"github.com/archsym/archsym/tasks"
)

// chain2 builds a two-processor chain leaf.
func chain2(t *testing.T) archgraph.System {
	t.Helper()

	ag := archgraph.New()
	pe := ag.AddProcessorType("PE")
	link := ag.AddChannelType("link")
	for i := 0; i < 2; i++ {
		_, err := ag.AddProcessor(pe)
		require.NoError(t, err)
	}
	require.NoError(t, ag.AddChannel(1, 2, link))

	return archgraph.NewLeaf(ag)
}

// triangle builds a three-processor complete leaf.
func triangle(t *testing.T) archgraph.System {
	t.Helper()

	return archgraph.NewLeaf(archgraph.NewCycle(3))
}

// TestLeaf_StateMachine walks UNINITIALIZED → AUTO_READY → REPR_READY.
func TestLeaf_StateMachine(t *testing.T) {
	leaf := chain2(t)

	require.False(t, leaf.AutomorphismsReady())
	require.False(t, leaf.ReprReady())

	autom, err := leaf.Automorphisms()
	require.NoError(t, err)
	require.Equal(t, "2", autom.Order().String())
	require.True(t, leaf.AutomorphismsReady())
	require.False(t, leaf.ReprReady())

	require.NoError(t, leaf.InitRepr())
	require.True(t, leaf.ReprReady())

	leaf.ResetRepr()
	require.False(t, leaf.ReprReady())
	require.True(t, leaf.AutomorphismsReady())

	leaf.ResetAutomorphisms()
	require.False(t, leaf.AutomorphismsReady())
}

// TestLeaf_CacheInvalid hits the programmer-error path: resetting the
// automorphism cache underneath an initialized repr state.
func TestLeaf_CacheInvalid(t *testing.T) {
	leaf := chain2(t)
	require.NoError(t, leaf.InitRepr())

	leaf.ResetAutomorphisms()

	_, err := leaf.Repr(tasks.Allocation{1}, nil)
	require.ErrorIs(t, err, archgraph.ErrCacheInvalid)

	// InitRepr repairs the cache.
	require.NoError(t, leaf.InitRepr())
	_, err = leaf.Repr(tasks.Allocation{1}, nil)
	require.NoError(t, err)
}

// TestLeaf_ImplicitInit lets Repr initialize lazily.
func TestLeaf_ImplicitInit(t *testing.T) {
	leaf := chain2(t)

	m, err := leaf.Repr(tasks.Allocation{2, 2}, nil)
	require.NoError(t, err)
	require.True(t, m.Representative.Equal(tasks.Allocation{1, 1}))
	require.True(t, leaf.ReprReady())
}

// TestCluster_TwoChains covers the cluster scenario: two length-2
// chains composing to ⟨(1 2), (3 4)⟩.
func TestCluster_TwoChains(t *testing.T) {
	cluster := archgraph.NewCluster(chain2(t), chain2(t))

	require.Equal(t, 4, cluster.NumProcessors())
	require.Equal(t, 2, cluster.NumChannels())

	autom, err := cluster.Automorphisms()
	require.NoError(t, err)
	require.Equal(t, "4", autom.Order().String())

	// Each child maps its own PE window: [2,4] minimizes to [1,3].
	m, err := cluster.Repr(tasks.Allocation{2, 4}, nil)
	require.NoError(t, err)
	require.True(t, m.Representative.Equal(tasks.Allocation{1, 3}),
		"repr([2,4]) = %v", m.Representative)

	// [3,1] is already minimal: no child can move PE 3 to PE 1.
	m, err = cluster.Repr(tasks.Allocation{3, 1}, nil)
	require.NoError(t, err)
	require.True(t, m.Representative.Equal(tasks.Allocation{3, 1}),
		"repr([3,1]) = %v", m.Representative)
}

// TestCluster_OrbitPartition reproduces the 2-task orbit structure of
// the minimal cluster from the reference behavior: six orbits.
func TestCluster_OrbitPartition(t *testing.T) {
	cluster := archgraph.NewCluster(chain2(t), chain2(t))

	var orbits tasks.Orbits
	tasks.EnumAllAllocations(2, 4, func(a tasks.Allocation) bool {
		_, err := cluster.Repr(a, &orbits)
		require.NoError(t, err)

		return true
	})

	require.Equal(t, 6, orbits.Len(), "16 allocations fall into 6 orbits")
}

// TestSuper_TrianglesOnCycle covers the uniform super-graph scenario:
// four triangles arranged in an outer 4-cycle.
func TestSuper_TrianglesOnCycle(t *testing.T) {
	super := archgraph.NewSuper(archgraph.NewLeaf(archgraph.NewCycle(4)), triangle(t))

	require.Equal(t, 12, super.NumProcessors())
	require.Equal(t, 16, super.NumChannels())

	autom, err := super.Automorphisms()
	require.NoError(t, err)
	require.Equal(t, 12, autom.Degree())
	require.Equal(t, "10368", autom.Order().String(), "|S_3 ≀ D_8| = 6⁴·8")
}

// TestLeafGroup wraps an explicit group.
func TestLeafGroup(t *testing.T) {
	g, err := group.Symmetric(3)
	require.NoError(t, err)

	leaf := archgraph.NewLeafGroup(g)
	require.Equal(t, 3, leaf.NumProcessors())
	require.Equal(t, 0, leaf.NumChannels())
	require.True(t, leaf.AutomorphismsReady())

	autom, err := leaf.Automorphisms()
	require.NoError(t, err)
	require.Equal(t, "6", autom.Order().String())

	// Reset is a no-op for explicit groups.
	leaf.ResetAutomorphisms()
	require.True(t, leaf.AutomorphismsReady())
}

// TestGAPRendering smoke-checks the GAP expressions.
func TestGAPRendering(t *testing.T) {
	cluster := archgraph.NewCluster(chain2(t), chain2(t))
	gap := cluster.GAP()
	require.Contains(t, gap, "DirectProduct(")
	require.Contains(t, gap, "Group(")

	super := archgraph.NewSuper(chain2(t), chain2(t))
	require.Contains(t, super.GAP(), "WreathProduct(")
}
