// This file implements the disjoint (direct-product) decomposition:
// splitting a group along orbit bipartitions whose generator
// restrictions stay inside the group.
package group

import (
	"math/big"

	"github.com/archsym/archsym/perm"
)

// maxDecomposableOrbits bounds the bipartition bitmask width; groups
// with more orbit classes are returned undecomposed.
const maxDecomposableOrbits = 62

// DisjointOptions tunes the disjoint decomposition.
type DisjointOptions struct {
	// DependencyClasses merges interdependent orbits before searching
	// bipartitions, shrinking the search space.
	DependencyClasses bool

	// Verify re-multiplies the factors and checks the order product
	// against the original group.
	Verify bool
}

// DisjointOption configures DisjointDecomposition.
type DisjointOption func(*DisjointOptions)

// WithDependencyClasses enables orbit dependency-class merging.
func WithDependencyClasses() DisjointOption {
	return func(o *DisjointOptions) { o.DependencyClasses = true }
}

// WithVerify enables the order cross-check on the result.
func WithVerify() DisjointOption {
	return func(o *DisjointOptions) { o.Verify = true }
}

// DisjointDecomposition splits the group into a direct product of
// subgroups moving disjoint point sets. Every returned factor has the
// original degree and fixes all points outside its support; their
// product (in any order) is the original group. A group that admits no
// split is returned as its own single factor.
func (g *PermGroup) DisjointDecomposition(opts ...DisjointOption) ([]*PermGroup, error) {
	var o DisjointOptions
	for _, opt := range opts {
		opt(&o)
	}

	orbits := g.Orbits()

	// Moved orbits only; fixed points can never contribute a factor.
	ids := make([]int, g.Degree()) // point-1 → orbit class, 0 = fixed
	nClasses := 0
	for _, orbit := range orbits {
		if len(orbit) == 1 {
			continue
		}
		nClasses++
		for _, x := range orbit {
			ids[x-1] = nClasses
		}
	}

	if o.DependencyClasses && nClasses > 1 {
		nClasses = g.mergeDependencyClasses(ids, nClasses)
	}

	factors := g.disjointRecurse(ids, nClasses)

	if o.Verify {
		product := big.NewInt(1)
		for _, f := range factors {
			product.Mul(product, f.Order())
		}
		if product.Cmp(g.Order()) != 0 {
			// The split is sound by construction; a mismatch means the
			// factors interdepend and the decomposition is abandoned.
			return []*PermGroup{g}, nil
		}
	}

	return factors, nil
}

// disjointRecurse tries every bipartition of the orbit classes; the
// first one whose generator restrictions stay inside the group splits
// the work recursively.
func (g *PermGroup) disjointRecurse(ids []int, nClasses int) []*PermGroup {
	if nClasses <= 1 || nClasses > maxDecomposableOrbits {
		return []*PermGroup{g}
	}

	gens := g.Generators()

	// Masks without the top class bit enumerate each complementary
	// pair exactly once.
	for part := uint64(1); part&(1<<(nClasses-1)) == 0; part++ {
		side1 := make([]int, 0, len(ids))
		side2 := make([]int, 0, len(ids))
		for x := 1; x <= len(ids); x++ {
			switch {
			case ids[x-1] == 0:
			case part&(1<<(ids[x-1]-1)) != 0:
				side2 = append(side2, x)
			default:
				side1 = append(side1, x)
			}
		}

		restricted1, ok1 := restrictAll(gens, side1, g)
		if !ok1 {
			continue
		}
		restricted2, ok2 := restrictAll(gens, side2, g)
		if !ok2 {
			continue
		}

		left, errL := FromGenerators(g.Degree(), restricted1)
		right, errR := FromGenerators(g.Degree(), restricted2)
		if errL != nil || errR != nil {
			continue
		}

		return append(
			left.disjointRecurse(maskIDs(ids, part, false), countIDs(ids, part, false)),
			right.disjointRecurse(maskIDs(ids, part, true), countIDs(ids, part, true))...,
		)
	}

	return []*PermGroup{g}
}

// restrictAll restricts every generator to the side's point set and
// checks membership of each restriction; the identity restrictions are
// dropped.
func restrictAll(gens perm.Set, side []int, g *PermGroup) (perm.Set, bool) {
	var res perm.Set
	for i := 0; i < gens.Len(); i++ {
		restricted, err := gens.At(i).Restricted(side)
		if err != nil {
			// Orbits are invariant, so a side (a union of orbits) is
			// closed; reaching this means side construction is wrong.
			panic(err)
		}
		if restricted.IsIdentity() {
			continue
		}
		if !g.Contains(restricted) {
			return perm.Set{}, false
		}
		res.Push(restricted)
	}

	return res, true
}

// maskIDs renumbers the orbit classes surviving on one side of the
// bipartition, zeroing the rest.
func maskIDs(ids []int, part uint64, inPart bool) []int {
	renumber := map[int]int{}
	res := make([]int, len(ids))
	for i, id := range ids {
		if id == 0 || (part&(1<<(id-1)) != 0) != inPart {
			continue
		}
		next, ok := renumber[id]
		if !ok {
			next = len(renumber) + 1
			renumber[id] = next
		}
		res[i] = next
	}

	return res
}

// countIDs counts the classes on one side of the bipartition.
func countIDs(ids []int, part uint64, inPart bool) int {
	seen := map[int]bool{}
	for _, id := range ids {
		if id == 0 || (part&(1<<(id-1)) != 0) != inPart {
			continue
		}
		seen[id] = true
	}

	return len(seen)
}

// mergeDependencyClasses unions orbit classes that depend on each
// other: classes A and B are dependent when fixing B pointwise cuts
// down the set of restrictions to A. Returns the new class count and
// renumbers ids in place.
func (g *PermGroup) mergeDependencyClasses(ids []int, nClasses int) int {
	classes := make([][]int, nClasses)
	for x := 1; x <= len(ids); x++ {
		if id := ids[x-1]; id != 0 {
			classes[id-1] = append(classes[id-1], x)
		}
	}

	merged := make([]int, nClasses) // old class-1 → new class, 0 = unset
	next := 0

	for i := 0; i < nClasses; i++ {
		if merged[i] != 0 {
			continue
		}
		next++
		merged[i] = next

		for j := i + 1; j < nClasses; j++ {
			if merged[j] != 0 {
				continue
			}
			if g.orbitsDependent(classes[i], classes[j]) {
				merged[j] = next
			}
		}
	}

	for x := range ids {
		if ids[x] != 0 {
			ids[x] = merged[ids[x]-1]
		}
	}

	return next
}

// orbitsDependent iterates the whole group once, comparing the count
// of distinct restrictions to orbit1 against the count restricted to
// elements fixing orbit2 pointwise.
func (g *PermGroup) orbitsDependent(orbit1, orbit2 []int) bool {
	stabilizers := map[string]bool{}
	elements := map[string]bool{}

	g.ForEach(func(p perm.Perm) bool {
		restricted, err := p.Restricted(orbit1)
		if err != nil || restricted.IsIdentity() {
			return true
		}

		elements[restricted.Key()] = true
		if p.Stabilizes(orbit2...) {
			stabilizers[restricted.Key()] = true
		}

		return true
	})

	return len(stabilizers) < len(elements)
}
