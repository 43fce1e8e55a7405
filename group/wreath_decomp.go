// This file implements the wreath-product decomposition: recognizing
// a uniform block structure and splitting the group into a block
// permuter (top) and per-block stabilizers (bottom).
package group

import (
	"math/big"

	"github.com/archsym/archsym/blocks"
	"github.com/archsym/archsym/bsgs"
	"github.com/archsym/archsym/perm"
)

// BlockPermuter returns the group induced on the blocks of bs by the
// given generators, acting on {1..bs.Size()}.
func BlockPermuter(bs blocks.BlockSystem, gens perm.Set, opts ...bsgs.Option) (*PermGroup, error) {
	return FromGenerators(bs.Size(), bs.PermuterGenerators(gens), opts...)
}

// WreathDecomposition is the result of a successful wreath split.
type WreathDecomposition struct {
	// System is the block system the split is built on.
	System blocks.BlockSystem

	// Top is the block permuter group on System.Size() points.
	Top *PermGroup

	// TopEmbedding generates the heuristically lifted copy of Top on
	// the original degree, mapping block to block and preserving
	// intra-block order.
	TopEmbedding perm.Set

	// Bottom holds one block stabilizer per block, each of the
	// original degree, restricted to (and fixing everything outside)
	// its block.
	Bottom []*PermGroup
}

// WreathDecomposition attempts to split the group as Bot ≀ Top over
// one of its non-trivial block systems. For each candidate system the
// block permuter and the first block stabilizer are computed and the
// order equation |G| = |Bot|^m · |Top| checked; on a match, the top
// group is lifted back to the original degree and verified to induce
// the same block permuter. The first system passing all checks wins.
//
// The second result is false when no candidate system yields a
// (heuristically recognizable) wreath structure — including the
// non-transitive case.
func (g *PermGroup) WreathDecomposition() (*WreathDecomposition, bool) {
	systems, err := blocks.NonTrivial(g.BSGS(), false)
	if err != nil {
		return nil, false
	}

	gens := g.Generators()

	for _, bs := range systems {
		top, errTop := BlockPermuter(bs, gens)
		if errTop != nil {
			continue
		}

		// Stabilizer of the first block, restricted into the block.
		bottom0, ok := g.blockStabilizerRestricted(bs, 0)
		if !ok {
			continue
		}

		// |G| = |Bot|^m · |Top| gates the candidate system.
		expected := new(big.Int).Exp(bottom0.Order(), big.NewInt(int64(bs.Size())), nil)
		expected.Mul(expected, top.Order())
		if expected.Cmp(g.Order()) != 0 {
			continue
		}

		bottom := make([]*PermGroup, bs.Size())
		bottom[0] = bottom0
		valid := true
		for i := 1; i < bs.Size(); i++ {
			if bottom[i], ok = g.blockStabilizerRestricted(bs, i); !ok {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		embedding, ok := liftBlockPermuter(bs, top, g.Degree())
		if !ok {
			// A wreath structure exists but the heuristic lift missed
			// it; per contract the decomposition is abandoned.
			return nil, false
		}

		return &WreathDecomposition{
			System:       bs,
			Top:          top,
			TopEmbedding: embedding,
			Bottom:       bottom,
		}, true
	}

	return nil, false
}

// blockStabilizerRestricted computes the setwise stabilizer of the
// given block via Schreier generators of the block action, restricted
// into the block.
func (g *PermGroup) blockStabilizerRestricted(bs blocks.BlockSystem, blockIdx int) (*PermGroup, bool) {
	gens := g.Generators()
	stabilizer := blockStabilizerGens(gens, bs, blockIdx)

	var restricted perm.Set
	for i := 0; i < stabilizer.Len(); i++ {
		r, err := stabilizer.At(i).Restricted(bs.Block(blockIdx))
		if err != nil {
			return nil, false
		}
		if !r.IsIdentity() {
			restricted.Push(r)
		}
	}

	sub, err := FromGenerators(g.Degree(), restricted)
	if err != nil {
		return nil, false
	}

	return sub, true
}

// blockStabilizerGens returns Schreier generators of the action on
// blocks rooted at blockIdx: a generating set of the setwise
// stabilizer of that block.
func blockStabilizerGens(gens perm.Set, bs blocks.BlockSystem, blockIdx int) perm.Set {
	m := bs.Size()

	// Induced images: blockImage[gi][i] is the block index gens[gi]
	// sends block i to.
	blockImage := make([][]int, gens.Len())
	for gi := range blockImage {
		blockImage[gi] = make([]int, m)
		for i := 0; i < m; i++ {
			blockImage[gi][i] = bs.BlockIndex(gens.At(gi).Apply(bs.Block(i)[0]))
		}
	}

	// BFS Schreier tree over block indices.
	parent := make([]int, m)
	label := make([]int, m)
	reached := make([]bool, m)
	for i := range parent {
		parent[i] = -1
	}

	order := []int{blockIdx}
	reached[blockIdx] = true
	for qi := 0; qi < len(order); qi++ {
		i := order[qi]
		for gi := 0; gi < gens.Len(); gi++ {
			j := blockImage[gi][i]
			if reached[j] {
				continue
			}
			reached[j] = true
			parent[j] = i
			label[j] = gi
			order = append(order, j)
		}
	}

	transversal := func(i int) perm.Perm {
		u := perm.Identity(gens.Degree())
		for cur := i; cur != blockIdx; cur = parent[cur] {
			u = gens.At(label[cur]).Mul(u)
		}

		return u
	}

	var res perm.Set
	for _, i := range order {
		ui := transversal(i)
		for gi := 0; gi < gens.Len(); gi++ {
			sg := ui.Mul(gens.At(gi)).Mul(transversal(blockImage[gi][i]).Inverse())
			if !sg.IsIdentity() {
				res.Push(sg)
			}
		}
	}
	res.MakeUnique()

	return res
}

// liftBlockPermuter maps each top generator to a degree-n permutation
// sending block i to block σ(i) position-by-position, then verifies
// that the lifts induce exactly the top group.
func liftBlockPermuter(bs blocks.BlockSystem, top *PermGroup, degree int) (perm.Set, bool) {
	var lifted perm.Set
	topGens := top.Generators()

	for gi := 0; gi < topGens.Len(); gi++ {
		sigma := topGens.At(gi)

		images := make([]int, degree)
		for i := 0; i < bs.Size(); i++ {
			src := bs.Block(i)
			dst := bs.Block(sigma.Apply(i+1) - 1)
			for j := range src {
				images[src[j]-1] = dst[j]
			}
		}

		lift, err := perm.New(images)
		if err != nil {
			return perm.Set{}, false
		}
		lifted.Push(lift)
	}

	// Reconstruct the induced block action and compare with top.
	var reconstructed perm.Set
	for i := 0; i < lifted.Len(); i++ {
		induced := make([]int, bs.Size())
		for b := 0; b < bs.Size(); b++ {
			induced[b] = bs.BlockIndex(lifted.At(i).Apply(bs.Block(b)[0])) + 1
		}
		p, err := perm.New(induced)
		if err != nil || !top.Contains(p) {
			return perm.Set{}, false
		}
		reconstructed.Push(p)
	}

	check, err := FromGenerators(bs.Size(), reconstructed)
	if err != nil || check.Order().Cmp(top.Order()) != 0 {
		return perm.Set{}, false
	}

	return lifted, true
}
