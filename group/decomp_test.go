package group_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archsym/archsym/blocks"
	"github.com/archsym/archsym/group"
	"github.com/archsym/archsym/perm"
)

// TestDisjointDecomposition_Splits splits <(1 2), (3 4)> into two
// order-2 factors.
func TestDisjointDecomposition_Splits(t *testing.T) {
	gens, err := perm.NewSet(cyc(t, 4, []int{1, 2}), cyc(t, 4, []int{3, 4}))
	require.NoError(t, err)
	g, err := group.FromGenerators(4, gens)
	require.NoError(t, err)

	factors, err := g.DisjointDecomposition(group.WithVerify())
	require.NoError(t, err)
	require.Len(t, factors, 2)

	product := big.NewInt(1)
	for _, f := range factors {
		require.Equal(t, 4, f.Degree(), "factors keep the original degree")
		require.Equal(t, "2", f.Order().String())
		product.Mul(product, f.Order())

		// Every factor generator belongs to the original group.
		fg := f.Generators()
		for i := 0; i < fg.Len(); i++ {
			require.True(t, g.Contains(fg.At(i)))
		}
	}
	require.Equal(t, g.Order().String(), product.String())
}

// TestDisjointDecomposition_DiagonalStaysWhole keeps the diagonal
// subgroup <(1 2)(3 4)> in one piece: its orbit restrictions escape
// the group.
func TestDisjointDecomposition_DiagonalStaysWhole(t *testing.T) {
	gens, err := perm.NewSet(cyc(t, 4, []int{1, 2}, []int{3, 4}))
	require.NoError(t, err)
	g, err := group.FromGenerators(4, gens)
	require.NoError(t, err)

	factors, err := g.DisjointDecomposition()
	require.NoError(t, err)
	require.Len(t, factors, 1)
	require.Equal(t, "2", factors[0].Order().String())
}

// TestDisjointDecomposition_DependencyClasses merges the dependent
// orbits of the diagonal group before searching, with the same
// outcome.
func TestDisjointDecomposition_DependencyClasses(t *testing.T) {
	gens, err := perm.NewSet(cyc(t, 4, []int{1, 2}, []int{3, 4}))
	require.NoError(t, err)
	g, err := group.FromGenerators(4, gens)
	require.NoError(t, err)

	factors, err := g.DisjointDecomposition(group.WithDependencyClasses())
	require.NoError(t, err)
	require.Len(t, factors, 1)
}

// TestWreathDecomposition_D8 splits the square's symmetry group over
// its diagonal blocks and reassembles it (reconstruction property).
func TestWreathDecomposition_D8(t *testing.T) {
	g := d8(t)

	dec, ok := g.WreathDecomposition()
	require.True(t, ok, "D_8 = C_2 ≀ C_2 must decompose")

	require.Equal(t, 2, dec.System.Size())
	require.Equal(t, "2", dec.Top.Order().String())
	require.Len(t, dec.Bottom, 2)
	for _, b := range dec.Bottom {
		require.Equal(t, "2", b.Order().String())
	}

	// Reconstruction: lifted top generators plus embedded bottom
	// generators generate the original group.
	var union perm.Set
	for i := 0; i < dec.TopEmbedding.Len(); i++ {
		union.Push(dec.TopEmbedding.At(i))
	}
	for _, b := range dec.Bottom {
		bg := b.Generators()
		for i := 0; i < bg.Len(); i++ {
			union.Push(bg.At(i))
		}
	}

	regenerated, err := group.FromGenerators(g.Degree(), union)
	require.NoError(t, err)
	require.Equal(t, g.Order().String(), regenerated.Order().String())

	for i := 0; i < union.Len(); i++ {
		require.True(t, g.Contains(union.At(i)))
	}
}

// TestBlockPermuter wraps the induced block action as a group.
func TestBlockPermuter(t *testing.T) {
	g := d8(t)

	systems, err := blocks.NonTrivial(g.BSGS(), false)
	require.NoError(t, err)
	require.Len(t, systems, 1)

	top, err := group.BlockPermuter(systems[0], g.Generators())
	require.NoError(t, err)
	require.Equal(t, 2, top.Degree())
	require.Equal(t, "2", top.Order().String())
}

// TestWreathDecomposition_CyclicFails rejects C_4, whose block
// structure does not satisfy the wreath order equation.
func TestWreathDecomposition_CyclicFails(t *testing.T) {
	g, err := group.Cyclic(4)
	require.NoError(t, err)

	_, ok := g.WreathDecomposition()
	require.False(t, ok)
}
