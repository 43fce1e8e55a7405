package archgraph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archsym/archsym/archgraph"
	"github.com/archsym/archsym/perm"
)

// square builds the 4-cycle mesh of the end-to-end scenarios:
// PEs {1,2,3,4}, edges 1-2, 2-3, 3-4, 4-1, one type each.
func square(t *testing.T) *archgraph.ArchGraph {
	t.Helper()

	return archgraph.NewCycle(4)
}

// coloredSquare is the same topology with alternating processor types
// P1, P2, P1, P2.
func coloredSquare(t *testing.T) *archgraph.ArchGraph {
	t.Helper()

	ag := archgraph.New()
	p1 := ag.AddProcessorType("P1")
	p2 := ag.AddProcessorType("P2")
	link := ag.AddChannelType("link")

	for i := 0; i < 4; i++ {
		typ := p1
		if i%2 == 1 {
			typ = p2
		}
		_, err := ag.AddProcessor(typ)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		require.NoError(t, ag.AddChannel(e[0], e[1], link))
	}

	return ag
}

// cyc builds a permutation or fails the test.
func cyc(t *testing.T, degree int, cycles ...[]int) perm.Perm {
	t.Helper()
	p, err := perm.FromCycles(degree, cycles...)
	require.NoError(t, err)

	return p
}

// TestSquareAutomorphisms covers the uncolored 2×2 scenario: the
// automorphism group is D_8.
func TestSquareAutomorphisms(t *testing.T) {
	ag := square(t)
	require.Equal(t, 4, ag.NumProcessors())
	require.Equal(t, 4, ag.NumChannels())

	autom, err := ag.Automorphisms()
	require.NoError(t, err)

	require.Equal(t, "8", autom.Order().String())
	require.True(t, autom.Contains(cyc(t, 4, []int{2, 4})))
	require.True(t, autom.Contains(cyc(t, 4, []int{1, 2}, []int{3, 4})))
	require.True(t, autom.Contains(cyc(t, 4, []int{1, 2, 3, 4})))
	require.False(t, autom.Contains(cyc(t, 4, []int{1, 2})))
}

// TestColoredSquareAutomorphisms covers the vertex-colored scenario:
// types [P1,P2,P1,P2] cut the group down to ⟨(1 3), (2 4)⟩ of order 4.
func TestColoredSquareAutomorphisms(t *testing.T) {
	autom, err := coloredSquare(t).Automorphisms()
	require.NoError(t, err)

	require.Equal(t, "4", autom.Order().String())
	require.True(t, autom.Contains(cyc(t, 4, []int{1, 3})))
	require.True(t, autom.Contains(cyc(t, 4, []int{2, 4})))
	require.True(t, autom.Contains(cyc(t, 4, []int{1, 3}, []int{2, 4})))
	require.False(t, autom.Contains(cyc(t, 4, []int{1, 2, 3, 4})),
		"the rotation swaps processor types")
}

// TestChannelTypesRestrict colors the square's edges with two channel
// protocols: opposite edges share a type, which kills the rotation and
// leaves the Klein four-group of double transpositions.
func TestChannelTypesRestrict(t *testing.T) {
	ag := archgraph.New()
	pe := ag.AddProcessorType("PE")
	fast := ag.AddChannelType("fast")
	slow := ag.AddChannelType("slow")

	for i := 0; i < 4; i++ {
		_, err := ag.AddProcessor(pe)
		require.NoError(t, err)
	}
	// 1-2 and 3-4 fast; 2-3 and 4-1 slow.
	require.NoError(t, ag.AddChannel(1, 2, fast))
	require.NoError(t, ag.AddChannel(3, 4, fast))
	require.NoError(t, ag.AddChannel(2, 3, slow))
	require.NoError(t, ag.AddChannel(4, 1, slow))

	autom, err := ag.Automorphisms()
	require.NoError(t, err)

	// Remaining symmetries: identity, (1 2)(3 4), (1 4)(2 3),
	// (1 3)(2 4) — the Klein four-group.
	require.Equal(t, "4", autom.Order().String())
	require.True(t, autom.Contains(cyc(t, 4, []int{1, 2}, []int{3, 4})))
	require.False(t, autom.Contains(cyc(t, 4, []int{1, 2, 3, 4})),
		"the rotation maps fast edges onto slow ones")
}

// TestMesh2x2 checks the helper topology.
func TestMesh2x2(t *testing.T) {
	ag := archgraph.NewMesh(2, 2)
	require.Equal(t, 4, ag.NumProcessors())
	require.Equal(t, 4, ag.NumChannels())

	autom, err := ag.Automorphisms()
	require.NoError(t, err)
	require.Equal(t, "8", autom.Order().String())
}

// TestGraphValidation covers construction errors.
func TestGraphValidation(t *testing.T) {
	ag := archgraph.New()

	_, err := ag.AddProcessor(0)
	require.ErrorIs(t, err, archgraph.ErrUnknownType)

	pe := ag.AddProcessorType("PE")
	idx, err := ag.AddProcessor(pe)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	link := ag.AddChannelType("link")
	require.ErrorIs(t, ag.AddChannel(1, 2, link), archgraph.ErrUnknownProcessor)
	require.ErrorIs(t, ag.AddChannel(1, 1, 7), archgraph.ErrUnknownType)

	_, err = archgraph.New().Automorphisms()
	require.ErrorIs(t, err, archgraph.ErrEmptyGraph)
}

// TestDOTExport smoke-checks the rendering.
func TestDOTExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, square(t).DOT(&buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "graph {"))
	require.Contains(t, out, "1 -- 2")
	require.Contains(t, out, "PE4")
	require.True(t, strings.HasSuffix(out, "}\n"))
}
