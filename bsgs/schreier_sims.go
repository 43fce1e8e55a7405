// This file implements the deterministic Schreier–Sims construction
// and the shared initialization/finalization steps.
package bsgs

import (
	"github.com/archsym/archsym/perm"
)

// schreierSimsInit seeds the base and the per-level stabilizer
// generator sets.
//
// Every generator that fixes the whole current base forces a new base
// point (its first moved point); afterwards each level's generator set
// is the subset of strong generators stabilizing the base prefix, and
// its Schreier structure is built.
func (b *BSGS) schreierSimsInit() (sgens []perm.Set, orbits [][]int) {
	for i := 0; i < b.gens.Len(); i++ {
		gen := b.gens.At(i)
		if gen.Stabilizes(b.base...) {
			bp, _ := gen.SmallestMoved() // non-identity by construction
			b.extendBase(bp)
		}
	}

	sgens = make([]perm.Set, len(b.base))
	orbits = make([][]int, len(b.base))
	for i := range b.base {
		sgens[i] = b.strongGeneratorsAt(i)
		b.updateSchreierStructure(i, sgens[i])
		orbits[i] = b.structs[i].Nodes()
	}

	b.log.Debug().
		Ints("base", b.base).
		Int("generators", b.gens.Len()).
		Msg("schreier-sims initialized")

	return sgens, orbits
}

// schreierSimsFinish collects the final strong generating set from the
// per-level structure labels.
func (b *BSGS) schreierSimsFinish() {
	var sgs perm.Set
	for i := range b.structs {
		labels := b.structs[i].Labels()
		for j := 0; j < labels.Len(); j++ {
			sgs.Push(labels.At(j))
		}
	}
	sgs.MakeUnique()
	b.gens = sgs

	b.log.Debug().
		Ints("base", b.base).
		Int("strong_generators", b.gens.Len()).
		Str("order", b.Order().String()).
		Msg("schreier-sims finished")
}

// schreierSims runs the deterministic construction: climb the levels
// from the deepest one, draining each level's Schreier generator
// queue; any generator that does not strip to the identity extends the
// stabilizer chain (and, if it fixes the whole base, the base itself),
// after which the climb restarts at the stripping level.
func (b *BSGS) schreierSims() error {
	sgens, orbits := b.schreierSimsInit()

	queues := make([]*sgQueue, len(b.base))
	for i := range queues {
		queues[i] = &sgQueue{}
	}

	i := len(b.base)
	for i >= 1 {
		queues[i-1].update(sgens[i-1], orbits[i-1], b.structs[i-1])

		extended := false
		for {
			sg, ok := queues[i-1].next()
			if !ok {
				break
			}

			residue, level := b.Strip(sg)
			if level > len(b.base) && residue.IsIdentity() {
				continue
			}

			if level == len(b.base)+1 {
				// The residue fixes every existing base point; adjoin
				// the first moved point outside the base.
				bp := b.nextBasePoint(residue)
				b.extendBase(bp)
				sgens = append(sgens, perm.Set{})
				orbits = append(orbits, nil)
				queues = append(queues, &sgQueue{})
			}

			for j := i; j < level; j++ {
				sgens[j].Push(residue)
				b.updateSchreierStructure(j, sgens[j])
				orbits[j] = b.structs[j].Nodes()
				queues[j].invalidate()
			}

			i = level
			extended = true
			break
		}

		if extended {
			continue
		}
		i--
	}

	b.schreierSimsFinish()

	return nil
}

// nextBasePoint picks the smallest point moved by p that is not
// already a base point.
func (b *BSGS) nextBasePoint(p perm.Perm) int {
	inBase := make(map[int]bool, len(b.base))
	for _, bp := range b.base {
		inBase[bp] = true
	}

	for x := 1; x <= b.degree; x++ {
		if !inBase[x] && p.Apply(x) != x {
			return x
		}
	}

	// Unreachable for non-identity residues.
	panic("bsgs: residue moves no point outside the base")
}
