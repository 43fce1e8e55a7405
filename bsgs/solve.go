// This file implements the solvable-group BSGS construction: each
// generator is adjoined as a normalizing generator of the chain built
// so far; commutator descent repairs generators that do not normalize,
// and failure to descend within the iteration bound disproves the
// caller's solvability assertion.
package bsgs

import (
	"math"

	"github.com/archsym/archsym/perm"
)

// solve builds the BSGS under the assertion that the generated group
// is solvable. Returns ErrNotSolvable when the assertion fails.
func (b *BSGS) solve(generators perm.Set) error {
	gens := generators.Clone()
	gens.DropIdentity()

	// Derived-series length of a solvable subgroup of Sym(n) is
	// bounded by 5/2·log₃(n); commutator descent deeper than that
	// cannot terminate.
	iterations := int(math.Ceil(2.5 * math.Log(float64(b.degree)) / math.Log(3.0)))
	if iterations < 1 {
		iterations = 1
	}

	for gi := 0; gi < gens.Len(); gi++ {
		gen := gens.At(gi)

		for !b.stripsCompletely(gen) {
			w := gen

			success := false
			for it := 0; it < iterations; it++ {
				ok, u, v := b.solveSNormalClosure(gens, w)
				if ok {
					success = true
					break
				}
				w = commutator(u, v)
			}

			if !success {
				return ErrNotSolvable
			}
		}
	}

	b.gens.MakeUnique()

	return nil
}

// solveSNormalClosure attempts to adjoin the normal closure of w under
// the generators. On failure it returns the conjugate pair whose
// commutator escaped the original group.
func (b *BSGS) solveSNormalClosure(generators perm.Set, w perm.Perm) (bool, perm.Perm, perm.Perm) {
	original := b.Clone()

	queue1 := []perm.Perm{w}
	var queue2 []perm.Perm

	for qi := 0; qi < len(queue1); qi++ {
		g := queue1[qi]
		if b.stripsCompletely(g) {
			continue
		}

		for _, h := range queue2 {
			if !original.stripsCompletely(commutator(g, h)) {
				return false, g, h
			}
		}

		b.solveAdjoinNormalizingGenerator(g)
		queue2 = append(queue2, g)

		for i := 0; i < generators.Len(); i++ {
			gen := generators.At(i)
			queue1 = append(queue1, gen.Inverse().Mul(g).Mul(gen))
		}
	}

	return true, perm.Perm{}, perm.Perm{}
}

// solveAdjoinNormalizingGenerator sifts h through the stabilizer
// chain, raising it to the power that re-enters each fundamental orbit
// and enlarging the chain's structures with h where the power exceeds
// one; base points are adjoined as needed from h's support.
func (b *BSGS) solveAdjoinNormalizingGenerator(gen perm.Perm) {
	h := gen

	i := 0
	for !h.IsIdentity() {
		i++

		if i > len(b.base) {
			bp, _ := h.SmallestMoved()
			b.extendBase(bp)
		}

		baseElem := b.base[i-1]
		structure := b.structs[i-1]

		m := 1
		hm := h
		point := hm.Apply(baseElem)
		for !structure.Contains(point) {
			m++
			hm = hm.Mul(h)
			point = hm.Apply(baseElem)
		}

		u := structure.Transversal(point)

		if m > 1 {
			for j := 0; j < i; j++ {
				labels := b.structs[j].Labels().Clone()
				labels.Push(h)
				b.updateSchreierStructure(j, labels)
			}
			b.gens.Push(h)
		}

		h = hm.Mul(u.Inverse())
	}
}

// commutator returns ~u·~v·u·v.
func commutator(u, v perm.Perm) perm.Perm {
	return u.Inverse().Mul(v.Inverse()).Mul(u).Mul(v)
}
