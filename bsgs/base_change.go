// This file implements base change (conjugation plus redundant-point
// insertion) and the adjacent base-point swap it builds on.
package bsgs

import (
	"fmt"

	"github.com/archsym/archsym/perm"
)

// BaseChange makes the base begin with the given prefix, preserving
// the represented group. For every prefix point, in order: if the
// conjugating permutation accumulated so far already aligns the
// corresponding base point, nothing happens; if the (back-mapped)
// target lies in the level's fundamental orbit, the conjugation is
// extended by the matching transversal; otherwise the target is
// inserted as a redundant base point and transposed into place.
// Finally the whole BSGS is conjugated in one sweep.
//
// Returns ErrBasePoint for out-of-range or repeated prefix points.
func (b *BSGS) BaseChange(prefix []int) error {
	seen := make(map[int]bool, len(prefix))
	for _, p := range prefix {
		if p < 1 || p > b.degree {
			return fmt.Errorf("%w: %d outside 1..%d", ErrBasePoint, p, b.degree)
		}
		if seen[p] {
			return fmt.Errorf("%w: %d repeated in prefix", ErrBasePoint, p)
		}
		seen[p] = true
	}

	conj := perm.Identity(b.degree)
	conjInv := perm.Identity(b.degree)

	for i, pre := range prefix {
		target := conjInv.Apply(pre)

		if i >= len(b.base) {
			b.insertRedundantBasePoint(target, i)
			continue
		}

		if b.base[i] == target {
			continue
		}

		if b.structs[i].Contains(target) {
			transv := b.structs[i].Transversal(target)
			conj = transv.Mul(conj)
			conjInv = conj.Inverse()
			continue
		}

		j := b.insertRedundantBasePoint(target, i)
		b.transposeBasePoint(j, i)
	}

	b.conjugate(conj)

	return nil
}

// SwapBasePoints exchanges base points i and i+1 (0-indexed),
// recomputing the two affected Schreier structures. The new level-i+1
// orbit is grown by draining the level-i Schreier generator queue
// until the orbit-size product invariant |O_i|·|O_{i+1}| = const is
// restored.
//
// Returns ErrBasePoint if i is not an interior position.
func (b *BSGS) SwapBasePoints(i int) error {
	if i < 0 || i >= len(b.base)-1 {
		return fmt.Errorf("%w: swap position %d of base size %d", ErrBasePoint, i, len(b.base))
	}

	b.base[i], b.base[i+1] = b.base[i+1], b.base[i]

	// Rebuild level i from its old stabilizer labels (still valid: the
	// swap does not change the prefix before i).
	sgi := b.Stabilizers(i).Clone()
	oldOi := b.structs[i].Nodes()
	b.updateSchreierStructure(i, sgi)

	sgi1 := b.strongGeneratorsAt(i + 1)
	oldOi1 := b.structs[i+1].Nodes()
	b.updateSchreierStructure(i+1, sgi1)

	// Orbit-size product is invariant under the swap.
	desired := len(oldOi) * len(oldOi1) / len(b.structs[i].Nodes())

	queue := &sgQueue{}
	queue.update(b.Stabilizers(i), b.structs[i].Nodes(), b.structs[i])

	for len(b.structs[i+1].Nodes()) < desired {
		sg, ok := queue.next()
		if !ok {
			break
		}

		if b.structs[i+1].Contains(sg.Apply(b.base[i+1])) {
			continue
		}

		sgi1.Push(sg)
		b.updateSchreierStructure(i+1, sgi1)
	}

	// Adopt the extended stabilizer generators into the strong set.
	for j := 0; j < sgi1.Len(); j++ {
		b.gens.Push(sgi1.At(j))
	}
	b.gens.MakeUnique()

	return nil
}

// transposeBasePoint moves the base point at position i down to
// position j (< i) by adjacent swaps.
func (b *BSGS) transposeBasePoint(i, j int) {
	for i > j {
		// Positions are interior by construction.
		if err := b.SwapBasePoints(i - 1); err != nil {
			panic(err)
		}
		i--
	}
}

// insertRedundantBasePoint inserts bp into the base at the first
// position after iMin where the preceding stabilizer generators fix
// bp, and builds its Schreier structure. Returns the insertion
// position (or the existing position if bp is already a base point in
// that range).
func (b *BSGS) insertRedundantBasePoint(bp, iMin int) int {
	i := iMin + 1
	if i > len(b.base) {
		i = len(b.base)
	}

	for i < len(b.base) {
		if b.base[i] == bp {
			return i
		}

		stabilized := true
		stabs := b.Stabilizers(i - 1)
		for j := 0; j < stabs.Len(); j++ {
			if stabs.At(j).Apply(bp) != bp {
				stabilized = false
				break
			}
		}
		if stabilized {
			break
		}
		i++
	}

	reuseStabilizers := i < len(b.base)

	b.extendBaseAt(bp, i)

	var labels perm.Set
	if reuseStabilizers {
		labels = b.Stabilizers(i - 1).Clone()
	} else {
		labels = b.strongGeneratorsAt(i)
	}
	b.updateSchreierStructure(i, labels)

	return i
}
