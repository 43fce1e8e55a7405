// This file declares the BlockSystem type, the minimal-system
// union-find search and the non-trivial enumeration.
//
// Errors:
//
//	ErrInvalidSeed   - seed smaller than two points or out of range.
//	ErrNotTransitive - non-trivial enumeration on a non-transitive
//	                   group (out of scope).
package blocks

import (
	"errors"
	"fmt"

	"github.com/archsym/archsym/bsgs"
	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/schreier"
)

// Sentinel errors for block-system discovery.
var (
	// ErrInvalidSeed indicates a minimal-system seed with fewer than
	// two points or points outside {1..n}.
	ErrInvalidSeed = errors.New("blocks: invalid seed class")

	// ErrNotTransitive indicates non-trivial enumeration of a
	// non-transitive group, which is not implemented.
	ErrNotTransitive = errors.New("blocks: non-transitive enumeration not implemented")
)

// BlockSystem is a partition of {1..n} into equally sized blocks
// permuted setwise by a group. Blocks are ordered by smallest
// contained point; points inside a block are ascending.
type BlockSystem struct {
	degree     int
	blocks     [][]int
	blockIndex []int // point-1 → block position
}

// fromClasses normalizes a representative-per-point vector into a
// block system. classes[i] is any canonical label of point i+1's
// class.
func fromClasses(classes []int) BlockSystem {
	n := len(classes)

	bs := BlockSystem{
		degree:     n,
		blockIndex: make([]int, n),
	}

	position := make(map[int]int, n)
	for i := 0; i < n; i++ {
		c := classes[i]
		at, ok := position[c]
		if !ok {
			at = len(bs.blocks)
			position[c] = at
			bs.blocks = append(bs.blocks, nil)
		}
		bs.blocks[at] = append(bs.blocks[at], i+1)
		bs.blockIndex[i] = at
	}

	return bs
}

// Degree reports the number of points partitioned.
func (bs BlockSystem) Degree() int { return bs.degree }

// Size reports the number of blocks.
func (bs BlockSystem) Size() int { return len(bs.blocks) }

// Block returns the i-th block. The slice is shared; do not mutate.
func (bs BlockSystem) Block(i int) []int { return bs.blocks[i] }

// Blocks returns all blocks. The slices are shared; do not mutate.
func (bs BlockSystem) Blocks() [][]int { return bs.blocks }

// BlockIndex returns the position of the block containing point x.
func (bs BlockSystem) BlockIndex(x int) int { return bs.blockIndex[x-1] }

// Trivial reports whether the system is one of the two trivial
// partitions (all singletons or a single block).
func (bs BlockSystem) Trivial() bool {
	return bs.Size() == 1 || bs.Size() == bs.degree
}

// String renders the system as nested braces.
func (bs BlockSystem) String() string {
	out := "{"
	for i, block := range bs.blocks {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%v", block)
	}

	return out + "}"
}

// Minimal computes the smallest block system (of the group generated
// by gens) in which all seed points share a block. Union-find with
// path compression and union by size; merged class representatives
// are re-processed through every generator until closure.
//
// Returns ErrInvalidSeed for seeds of fewer than two points or with
// out-of-range members.
// Complexity: near-linear in degree·|gens| by the usual union-find
// bounds.
func Minimal(gens perm.Set, seed []int) (BlockSystem, error) {
	if len(seed) < 2 {
		return BlockSystem{}, fmt.Errorf("%w: %d point(s)", ErrInvalidSeed, len(seed))
	}
	degree := gens.Degree()
	for _, x := range seed {
		if x < 1 || x > degree {
			return BlockSystem{}, fmt.Errorf("%w: point %d outside 1..%d", ErrInvalidSeed, x, degree)
		}
	}

	classpath := make([]int, degree+1)
	cardinalities := make([]int, degree+1)
	for i := 1; i <= degree; i++ {
		classpath[i] = i
		cardinalities[i] = 1
	}

	// rep finds the class representative with path compression.
	rep := func(k int) int {
		root := k
		for classpath[root] != root {
			root = classpath[root]
		}
		for classpath[k] != root {
			classpath[k], k = root, classpath[k]
		}

		return root
	}

	var queue []int

	// merge unions two classes by size and enqueues the absorbed
	// representative; reports whether a union happened.
	merge := func(k1, k2 int) bool {
		r1, r2 := rep(k1), rep(k2)
		if r1 == r2 {
			return false
		}
		if cardinalities[r1] < cardinalities[r2] {
			r1, r2 = r2, r1
		}

		classpath[r2] = r1
		cardinalities[r1] += cardinalities[r2]
		queue = append(queue, r2)

		return true
	}

	// Seed: union everything into seed[0].
	for _, x := range seed[1:] {
		classpath[x] = seed[0]
		queue = append(queue, x)
	}
	cardinalities[seed[0]] = len(seed)

	for qi := 0; qi < len(queue); qi++ {
		gamma := queue[qi]
		for gi := 0; gi < gens.Len(); gi++ {
			gen := gens.At(gi)
			merge(gen.Apply(gamma), gen.Apply(rep(gamma)))
		}
	}

	classes := make([]int, degree)
	for i := 1; i <= degree; i++ {
		classes[i-1] = rep(i)
	}

	return fromClasses(classes), nil
}

// NonTrivial enumerates the non-trivial block systems of the
// transitive group behind b. For every orbit of the first-level
// stabilizer, the orbit representative together with the first base
// point seeds a minimal system; trivial outcomes are dropped.
//
// assumeTransitive skips the transitivity check. A non-transitive
// group yields ErrNotTransitive.
func NonTrivial(b *bsgs.BSGS, assumeTransitive bool) ([]BlockSystem, error) {
	sgs := b.StrongGenerators()

	if !assumeTransitive {
		if sgs.Empty() || len(schreier.Orbit(1, sgs)) != b.Degree() {
			return nil, ErrNotTransitive
		}
	}

	if b.BaseSize() == 0 {
		return nil, nil
	}
	beta1 := b.BasePoint(0)

	var stab perm.Set
	if b.BaseSize() > 1 {
		stab = b.Stabilizers(1)
	}

	// Orbits of the stabilizer; a trivial stabilizer decays into
	// singletons.
	var stabOrbits [][]int
	if stab.Empty() {
		for x := 1; x <= b.Degree(); x++ {
			stabOrbits = append(stabOrbits, []int{x})
		}
	} else {
		stabOrbits = schreier.OrbitPartition(stab)
	}

	var res []BlockSystem
	for _, orbit := range stabOrbits {
		repr := orbit[0]
		if repr == beta1 {
			continue
		}

		bs, err := Minimal(sgs, []int{beta1, repr})
		if err != nil {
			return nil, err
		}
		if !bs.Trivial() {
			res = append(res, bs)
		}
	}

	return res, nil
}

// IsBlock reports whether block is a block of the group generated by
// gens: each generator maps it onto itself or a disjoint set.
func IsBlock(gens perm.Set, block []int) bool {
	inBlock := make(map[int]bool, len(block))
	for _, x := range block {
		inBlock[x] = true
	}

	for gi := 0; gi < gens.Len(); gi++ {
		gen := gens.At(gi)

		hits := 0
		for _, x := range block {
			if inBlock[gen.Apply(x)] {
				hits++
			}
		}
		if hits != 0 && hits != len(block) {
			return false
		}
	}

	return true
}

// PermuterGenerators returns the generators of the action induced on
// the blocks: each generator of degree n maps block i to the block
// containing the image of its first point. Identity images are
// dropped and duplicates removed.
func (bs BlockSystem) PermuterGenerators(gens perm.Set) perm.Set {
	var res perm.Set
	for gi := 0; gi < gens.Len(); gi++ {
		gen := gens.At(gi)

		images := make([]int, bs.Size())
		for i, block := range bs.blocks {
			images[i] = bs.BlockIndex(gen.Apply(block[0])) + 1
		}

		induced, err := perm.New(images)
		if err != nil {
			// gens does not permute the blocks of bs; programmer error.
			panic(err)
		}
		res.Push(induced)
	}

	res.DropIdentity()
	res.MakeUnique()

	return res
}
