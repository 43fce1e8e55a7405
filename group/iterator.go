// This file implements element iteration: a restartable finite cursor
// stepping through the Cartesian product of the per-level transversal
// lists.
package group

import (
	"github.com/archsym/archsym/internal/combin"
	"github.com/archsym/archsym/perm"
)

// Iterator ranges over every element of a PermGroup exactly once,
// composing one transversal per base level as u_{k-1}·…·u_1·u_0 (the
// deepest level acts first), the factorization that stripping inverts. Iteration
// never mutates the group; independent iterators may run over the
// same group concurrently as long as the group itself is not mutated.
type Iterator struct {
	degree       int
	transversals [][]perm.Perm
	cursor       *combin.Cartesian
	exhausted    bool
}

// Iter returns a fresh iterator positioned before the first element.
func (g *PermGroup) Iter() *Iterator {
	b := g.BSGS()

	transversals := make([][]perm.Perm, b.BaseSize())
	sizes := make([]int, b.BaseSize())
	for i := range transversals {
		transversals[i] = b.Transversals(i)
		sizes[i] = len(transversals[i])
	}

	return &Iterator{
		degree:       g.Degree(),
		transversals: transversals,
		cursor:       combin.NewCartesian(sizes),
	}
}

// Next returns the next group element. The second result is false
// once all |G| elements were produced.
func (it *Iterator) Next() (perm.Perm, bool) {
	if it.exhausted {
		return perm.Perm{}, false
	}

	res := perm.Identity(it.degree)
	for i, idx := range it.cursor.State() {
		res = it.transversals[i][idx].Mul(res)
	}

	if !it.cursor.Next() {
		it.exhausted = true
	}

	return res, true
}

// Reset rewinds the iterator to the first element.
func (it *Iterator) Reset() {
	it.cursor.Reset()
	it.exhausted = false
}

// ForEach invokes visit on every element, stopping early when visit
// returns false. Equivalent to driving a fresh iterator by hand.
func (g *PermGroup) ForEach(visit func(p perm.Perm) bool) {
	it := g.Iter()
	for {
		p, ok := it.Next()
		if !ok {
			return
		}
		if !visit(p) {
			return
		}
	}
}
