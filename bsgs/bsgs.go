// This file declares the BSGS type, its accessors and the membership
// machinery (strip, contains, order).
package bsgs

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/schreier"
)

// BSGS is a base and strong generating set with one Schreier structure
// per base point. Mutating operations (BaseChange, SwapBasePoints,
// ReduceGenerators) preserve the represented group.
//
// Not safe for concurrent use; no mutation is permitted while derived
// iterators (see package group) are live.
type BSGS struct {
	degree  int
	base    []int
	gens    perm.Set // strong generating set, identity-free
	structs []schreier.Structure
	variant schreier.Kind
	log     zerolog.Logger
}

// New constructs a BSGS for the group generated by the given
// permutations, all of the given degree. Identity generators are
// dropped; an empty (or all-identity) set produces the trivial group.
//
// The construction variant, transversal store, confidence parameters
// and logger are taken from the options.
func New(degree int, generators perm.Set, opts ...Option) (*BSGS, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: degree %d", perm.ErrOutOfRange, degree)
	}
	if !generators.Empty() && generators.Degree() != degree {
		return nil, fmt.Errorf("%w: generators have degree %d, want %d",
			perm.ErrDegreeMismatch, generators.Degree(), degree)
	}

	b := &BSGS{
		degree:  degree,
		gens:    generators.Clone(),
		variant: o.Transversals,
		log:     o.Logger,
	}
	b.gens.DropIdentity()

	if b.gens.Empty() {
		// Trivial group: empty base, no structures.
		return b, nil
	}

	var err error
	switch o.Construction {
	case Random:
		err = b.schreierSimsRandom(o.RandomWindow, o.RandomIterations, o.Rand)
	case Solve:
		err = b.solve(generators)
	default:
		err = b.schreierSims()
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Degree reports the degree of the represented group.
func (b *BSGS) Degree() int { return b.degree }

// BaseSize reports the number of base points.
func (b *BSGS) BaseSize() int { return len(b.base) }

// Base returns a copy of the base.
func (b *BSGS) Base() []int {
	base := make([]int, len(b.base))
	copy(base, b.base)

	return base
}

// BasePoint returns the i-th base point (0-indexed).
func (b *BSGS) BasePoint(i int) int { return b.base[i] }

// StrongGenerators returns the strong generating set. The set is
// shared; callers must not mutate it.
func (b *BSGS) StrongGenerators() perm.Set { return b.gens }

// Orbit returns the fundamental orbit at level i in discovery order.
func (b *BSGS) Orbit(i int) []int { return b.structs[i].Nodes() }

// Transversal returns the transversal u with u(β_i) = x.
func (b *BSGS) Transversal(i, x int) perm.Perm { return b.structs[i].Transversal(x) }

// Transversals returns all transversals of level i, aligned with
// Orbit(i).
func (b *BSGS) Transversals(i int) []perm.Perm {
	orbit := b.Orbit(i)
	res := make([]perm.Perm, len(orbit))
	for j, x := range orbit {
		res[j] = b.structs[i].Transversal(x)
	}

	return res
}

// Stabilizers returns the generator labels of the Schreier structure
// at level i — the generating set of the i-th stabilizer used during
// construction.
func (b *BSGS) Stabilizers(i int) perm.Set { return b.structs[i].Labels() }

// Structure exposes the Schreier structure at level i (read-only).
func (b *BSGS) Structure(i int) schreier.Structure { return b.structs[i] }

// Strip factors p through the transversals along the base: at each
// level i, if p(β_i) lies in the fundamental orbit, p is multiplied by
// the inverse transversal; otherwise stripping stops. Returns the
// residue and the 1-based level at which stripping stopped
// (BaseSize()+1 when it ran through all levels).
//
// p is in the group iff the depth is BaseSize()+1 and the residue is
// the identity.
// Complexity: O(BaseSize()·n) plus transversal lookups.
func (b *BSGS) Strip(p perm.Perm) (perm.Perm, int) {
	return b.stripFrom(p, 0)
}

// stripFrom strips starting at 0-based level from.
func (b *BSGS) stripFrom(p perm.Perm, from int) (perm.Perm, int) {
	res := p
	for i := from; i < len(b.base); i++ {
		beta := res.Apply(b.base[i])
		if !b.structs[i].Contains(beta) {
			return res, i + 1
		}
		res = res.Mul(b.structs[i].Transversal(beta).Inverse())
	}

	return res, len(b.base) + 1
}

// Contains reports whether p belongs to the represented group.
func (b *BSGS) Contains(p perm.Perm) bool {
	if p.Degree() != b.degree {
		return false
	}
	res, depth := b.Strip(p)

	return depth == len(b.base)+1 && res.IsIdentity()
}

// stripsCompletely reports Contains without the degree guard; used by
// the construction paths where the degree is fixed.
func (b *BSGS) stripsCompletely(p perm.Perm) bool {
	res, depth := b.Strip(p)

	return depth == len(b.base)+1 && res.IsIdentity()
}

// Order returns the group order ∏ |orbit(i)| as an arbitrary-precision
// integer.
func (b *BSGS) Order() *big.Int {
	order := big.NewInt(1)
	for i := range b.structs {
		order.Mul(order, big.NewInt(int64(len(b.structs[i].Nodes()))))
	}

	return order
}

// Clone returns an independent snapshot. Schreier structures are
// shared: they are immutable once built and replaced wholesale on
// mutation, never edited in place.
func (b *BSGS) Clone() *BSGS {
	c := &BSGS{
		degree:  b.degree,
		base:    append([]int(nil), b.base...),
		gens:    b.gens.Clone(),
		structs: append([]schreier.Structure(nil), b.structs...),
		variant: b.variant,
		log:     b.log,
	}

	return c
}

// extendBase appends a base point with a placeholder singleton-orbit
// structure.
func (b *BSGS) extendBase(bp int) {
	b.extendBaseAt(bp, len(b.base))
}

// extendBaseAt inserts a base point (and placeholder structure) at
// position i.
func (b *BSGS) extendBaseAt(bp, i int) {
	b.base = append(b.base, 0)
	copy(b.base[i+1:], b.base[i:])
	b.base[i] = bp

	placeholder, err := schreier.Build(b.variant, b.degree, bp, perm.Set{})
	if err != nil {
		panic(err) // bp validated by callers
	}
	b.structs = append(b.structs, nil)
	copy(b.structs[i+1:], b.structs[i:])
	b.structs[i] = placeholder
}

// updateSchreierStructure rebuilds the structure at level i from the
// given stabilizer generators. The label set is cloned so later
// mutation of gens cannot alias into the structure.
func (b *BSGS) updateSchreierStructure(i int, gens perm.Set) {
	s, err := schreier.Build(b.variant, b.degree, b.base[i], gens.Clone())
	if err != nil {
		panic(err) // base points are validated on insertion
	}
	b.structs[i] = s
}

// strongGeneratorsAt filters the strong generating set down to the
// generators stabilizing the base prefix of length i.
func (b *BSGS) strongGeneratorsAt(i int) perm.Set {
	var res perm.Set
	for j := 0; j < b.gens.Len(); j++ {
		g := b.gens.At(j)
		if g.Stabilizes(b.base[:i]...) {
			res.Push(g)
		}
	}

	return res
}

// conjugate replaces the group representation by its conjugate under
// c: base points map through c, strong generators map to ~c·g·c, and
// every Schreier structure is recomputed.
func (b *BSGS) conjugate(c perm.Perm) {
	if c.IsIdentity() {
		return
	}

	cInv := c.Inverse()
	for i, bp := range b.base {
		b.base[i] = c.Apply(bp)
	}
	for i := 0; i < b.gens.Len(); i++ {
		b.gens.Replace(i, cInv.Mul(b.gens.At(i)).Mul(c))
	}
	for i := range b.structs {
		b.updateSchreierStructure(i, b.strongGeneratorsAt(i))
	}
}

// String renders the base and strong generating set.
func (b *BSGS) String() string {
	return fmt.Sprintf("BSGS{base: %v, sgs: %v}", b.base, b.gens)
}
