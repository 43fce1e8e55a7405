// This file implements strong-generator reduction: removal of strong
// generators whose absence neither shrinks any fundamental orbit nor
// breaks stabilizer completeness.
package bsgs

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/archsym/archsym/perm"
)

// ReduceGenerators removes redundant strong generators. Levels are
// processed deepest first; a generator entering the chain exactly at
// level i may be dropped when the remaining level-i stabilizer
// generators still produce the full fundamental orbit. Schreier
// structures are redetermined afterwards.
func (b *BSGS) ReduceGenerators() {
	if len(b.base) == 0 {
		return
	}

	strong := setToMap(b.gens)
	stabSet := map[string]perm.Perm{}

	for i := len(b.base) - 1; i >= 0; i-- {
		stabNext := setToMap(b.Stabilizers(i))

		// Generators entering the chain exactly at level i.
		intersection := map[string]perm.Perm{}
		for key, p := range stabNext {
			if _, deeper := stabSet[key]; deeper {
				continue
			}
			if _, isStrong := strong[key]; isStrong {
				intersection[key] = p
			}
		}
		stabSet = stabNext

		if len(intersection) < 2 {
			continue
		}

		for _, key := range sortedKeys(intersection) {
			orbitGens := make([]perm.Perm, 0, len(stabSet)-1)
			for k, p := range stabSet {
				if k != key {
					orbitGens = append(orbitGens, p)
				}
			}

			if !producesOrbit(b.base[i], orbitGens, b.Orbit(i), b.degree) {
				continue
			}

			delete(strong, key)
			delete(stabSet, key)
		}
	}

	var reduced perm.Set
	for _, key := range sortedKeys(strong) {
		reduced.Push(strong[key])
	}
	b.gens = reduced

	b.redetermineSchreierStructures()
}

// redetermineSchreierStructures rebuilds every level's structure from
// the reduced strong generating set, accumulating stabilizers from the
// deepest level upward.
func (b *BSGS) redetermineSchreierStructures() {
	assigned := make([]bool, b.gens.Len())
	var stabilizers perm.Set

	for i := len(b.base) - 1; i >= 0; i-- {
		for j := 0; j < b.gens.Len(); j++ {
			if assigned[j] {
				continue
			}
			if b.gens.At(j).Stabilizes(b.base[:i]...) {
				assigned[j] = true
				stabilizers.Push(b.gens.At(j))
			}
		}

		b.updateSchreierStructure(i, stabilizers)
	}
}

// producesOrbit reports whether the generators reach exactly the
// reference orbit from root.
func producesOrbit(root int, gens []perm.Perm, orbit []int, degree int) bool {
	inRef := bitset.New(uint(degree))
	for _, x := range orbit {
		inRef.Set(uint(x - 1))
	}
	if !inRef.Test(uint(root - 1)) {
		return false
	}

	seen := bitset.New(uint(degree))
	seen.Set(uint(root - 1))
	remaining := len(orbit) - 1

	queue := []int{root}
	for len(queue) > 0 {
		x := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for _, g := range gens {
			y := g.Apply(x)
			if !inRef.Test(uint(y - 1)) {
				return false
			}
			if seen.Test(uint(y - 1)) {
				continue
			}
			seen.Set(uint(y - 1))
			queue = append(queue, y)

			if remaining--; remaining == 0 {
				return true
			}
		}
	}

	return remaining == 0
}

// setToMap indexes a permutation set by action key.
func setToMap(s perm.Set) map[string]perm.Perm {
	m := make(map[string]perm.Perm, s.Len())
	for i := 0; i < s.Len(); i++ {
		m[s.At(i).Key()] = s.At(i)
	}

	return m
}

// sortedKeys returns the map's keys in sorted order for deterministic
// iteration.
func sortedKeys(m map[string]perm.Perm) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
