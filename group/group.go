// This file declares PermGroup, its constructors and query methods.
package group

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/archsym/archsym/bsgs"
	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/schreier"
)

// Sentinel errors for group construction.
var (
	// ErrBadDegree indicates a factory degree outside its documented
	// range.
	ErrBadDegree = errors.New("group: degree out of range")

	// ErrNoFactors indicates a product of zero groups.
	ErrNoFactors = errors.New("group: product needs at least one factor")
)

// PermGroup is a finite permutation group on {1..n}, backed by a BSGS.
// Immutable after construction; safe to share between readers as long
// as no reader mutates the underlying BSGS.
type PermGroup struct {
	b *bsgs.BSGS
}

// FromGenerators constructs the group generated by the given
// permutations of the given degree. Options are forwarded to the BSGS
// construction.
func FromGenerators(degree int, generators perm.Set, opts ...bsgs.Option) (*PermGroup, error) {
	b, err := bsgs.New(degree, generators, opts...)
	if err != nil {
		return nil, err
	}

	return &PermGroup{b: b}, nil
}

// FromBSGS wraps an existing BSGS. The group takes ownership: the
// caller must not mutate b afterwards.
func FromBSGS(b *bsgs.BSGS) *PermGroup { return &PermGroup{b: b} }

// Trivial returns the trivial group of the given degree.
func Trivial(degree int) *PermGroup {
	b, err := bsgs.New(degree, perm.Set{})
	if err != nil {
		panic(err) // degree < 1 is a programmer error here
	}

	return &PermGroup{b: b}
}

// Symmetric returns Sym(degree), generated by a transposition and the
// full cycle. Returns ErrBadDegree for degree < 1.
func Symmetric(degree int) (*PermGroup, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: symmetric degree %d", ErrBadDegree, degree)
	}
	if degree == 1 {
		return Trivial(1), nil
	}

	full := make([]int, degree)
	for i := range full {
		full[i] = i + 1
	}

	swap, err := perm.FromCycles(degree, []int{1, 2})
	if err != nil {
		return nil, err
	}
	cycle, err := perm.FromCycles(degree, full)
	if err != nil {
		return nil, err
	}

	gens, err := perm.NewSet(swap, cycle)
	if err != nil {
		return nil, err
	}

	return FromGenerators(degree, gens)
}

// Cyclic returns the cyclic group generated by the full cycle on
// degree points. Returns ErrBadDegree for degree < 1.
func Cyclic(degree int) (*PermGroup, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: cyclic degree %d", ErrBadDegree, degree)
	}
	if degree == 1 {
		return Trivial(1), nil
	}

	full := make([]int, degree)
	for i := range full {
		full[i] = i + 1
	}
	cycle, err := perm.FromCycles(degree, full)
	if err != nil {
		return nil, err
	}
	gens, err := perm.NewSet(cycle)
	if err != nil {
		return nil, err
	}

	return FromGenerators(degree, gens)
}

// Alternating returns Alt(degree), generated by the 3-cycles
// (1 2 i). Returns ErrBadDegree for degree < 3.
func Alternating(degree int) (*PermGroup, error) {
	if degree < 3 {
		return nil, fmt.Errorf("%w: alternating degree %d", ErrBadDegree, degree)
	}

	var gens perm.Set
	for i := 3; i <= degree; i++ {
		p, err := perm.FromCycles(degree, []int{1, 2, i})
		if err != nil {
			return nil, err
		}
		gens.Push(p)
	}

	return FromGenerators(degree, gens)
}

// Dihedral returns the dihedral group of the given order acting on
// order/2 points: the symmetries of the regular (order/2)-gon. Orders 2
// and 4 do not fit on order/2 points and act on 2 and 4 points
// instead. The order must be even and at least 2; ErrBadDegree
// otherwise.
func Dihedral(order int) (*PermGroup, error) {
	if order < 2 || order%2 != 0 {
		return nil, fmt.Errorf("%w: dihedral order %d", ErrBadDegree, order)
	}

	n := order / 2
	switch n {
	case 1:
		// Order 2 on one point degenerates to the trivial group's
		// degree; represent it on 2 points as the swap.
		return Cyclic(2)
	case 2:
		// Order 4 (the Klein four-group) does not fit on 2 points;
		// represent it on 4 points as two disjoint swaps.
		gens, err := perm.NewSet(mustCycle(4, []int{1, 2}), mustCycle(4, []int{3, 4}))
		if err != nil {
			return nil, err
		}
		return FromGenerators(4, gens)
	}

	full := make([]int, n)
	for i := range full {
		full[i] = i + 1
	}
	rotation := mustCycle(n, full)

	// Reflection fixing point 1: i ↦ n+2-i.
	images := make([]int, n)
	images[0] = 1
	for i := 2; i <= n; i++ {
		images[i-1] = n + 2 - i
	}
	reflection, err := perm.New(images)
	if err != nil {
		return nil, err
	}

	gens, err := perm.NewSet(rotation, reflection)
	if err != nil {
		return nil, err
	}

	return FromGenerators(n, gens)
}

// mustCycle builds a cycle permutation for internally validated input.
func mustCycle(degree int, cycles ...[]int) perm.Perm {
	p, err := perm.FromCycles(degree, cycles...)
	if err != nil {
		panic(err)
	}

	return p
}

// Degree reports the number of points the group acts on.
func (g *PermGroup) Degree() int { return g.b.Degree() }

// Order returns |G| as an arbitrary-precision integer.
func (g *PermGroup) Order() *big.Int { return g.b.Order() }

// IsTrivial reports whether the group contains only the identity.
func (g *PermGroup) IsTrivial() bool { return g.b.BaseSize() == 0 }

// BSGS exposes the underlying BSGS. Callers must not mutate it.
func (g *PermGroup) BSGS() *bsgs.BSGS { return g.b }

// Generators returns the strong generating set. For a trivial group
// the set is empty.
func (g *PermGroup) Generators() perm.Set { return g.b.StrongGenerators() }

// Contains reports group membership via the BSGS strip test.
func (g *PermGroup) Contains(p perm.Perm) bool { return g.b.Contains(p) }

// RandomElement draws a uniformly distributed element by composing one
// uniformly chosen transversal per base level. A nil rng falls back to
// the global math/rand source.
func (g *PermGroup) RandomElement(rng *rand.Rand) perm.Perm {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	res := perm.Identity(g.Degree())
	for i := 0; i < g.b.BaseSize(); i++ {
		orbit := g.b.Orbit(i)
		res = g.b.Transversal(i, orbit[intn(len(orbit))]).Mul(res)
	}

	return res
}

// Transitive reports whether the group acts transitively on {1..n}.
func (g *PermGroup) Transitive() bool {
	gens := g.Generators()
	if gens.Empty() {
		return g.Degree() == 1
	}

	return len(schreier.Orbit(1, gens)) == g.Degree()
}

// Orbits returns the orbit partition of {1..n} under the group.
func (g *PermGroup) Orbits() [][]int {
	gens := g.Generators()
	if gens.Empty() {
		orbits := make([][]int, g.Degree())
		for i := range orbits {
			orbits[i] = []int{i + 1}
		}

		return orbits
	}

	return schreier.OrbitPartition(gens)
}

// String renders the group's degree and order.
func (g *PermGroup) String() string {
	return fmt.Sprintf("PermGroup{degree: %d, order: %s}", g.Degree(), g.Order())
}
