// This file implements the lazy Schreier generator queue shared by the
// deterministic construction and the base-swap search.
package bsgs

import (
	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/schreier"
)

// sgQueue lazily yields the Schreier generators
//
//	u_β · g · ~u_{g(β)}
//
// over the Cartesian product orbit × generators of one BSGS level,
// skipping generators that are trivial by definition. The queue caches
// u_β while the inner generator index advances.
//
// A queue is invalidated whenever the level's generator set changes
// and re-initialized by the next update call.
type sgQueue struct {
	valid bool

	gens      perm.Set
	orbit     []int
	structure schreier.Structure

	genIdx  int
	betaIdx int
	uBeta   perm.Perm
}

// update (re-)binds the queue to the level's current state. A queue
// that is still valid resumes where it left off.
func (q *sgQueue) update(gens perm.Set, orbit []int, s schreier.Structure) {
	if q.valid {
		return
	}

	q.gens = gens
	q.orbit = orbit
	q.structure = s
	q.genIdx = 0
	q.betaIdx = 0
	if len(orbit) > 0 {
		q.uBeta = s.Transversal(orbit[0])
	}
	q.valid = true
}

// invalidate marks the queue stale; the next update rebinds it.
func (q *sgQueue) invalidate() { q.valid = false }

// next returns the next non-trivial Schreier generator, or false when
// the product is exhausted.
func (q *sgQueue) next() (perm.Perm, bool) {
	for q.betaIdx < len(q.orbit) {
		if q.genIdx == q.gens.Len() {
			q.genIdx = 0
			q.betaIdx++
			if q.betaIdx == len(q.orbit) {
				break
			}
			q.uBeta = q.structure.Transversal(q.orbit[q.betaIdx])
			continue
		}

		beta := q.orbit[q.betaIdx]
		g := q.gens.At(q.genIdx)
		q.genIdx++

		// Back-edges of the Schreier tree define trivial generators.
		target := g.Apply(beta)
		if q.structure.Incoming(beta, g) {
			continue
		}

		sg := q.uBeta.Mul(g).Mul(q.structure.Transversal(target).Inverse())
		if sg.IsIdentity() {
			continue
		}

		return sg, true
	}

	return perm.Perm{}, false
}
