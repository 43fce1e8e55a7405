// This file implements the three orbit-representative searches.
package tasks

import (
	"math"
	"math/rand"

	"github.com/archsym/archsym/group"
	"github.com/archsym/archsym/perm"
)

// Repr computes the canonical representative of the allocation's orbit
// under g, dispatching on the configured method. The orbits cache may
// be nil; when present, the new mapping's representative is inserted
// and (in match mode) exact methods may return any previously
// registered representative of the same orbit instead of the true
// minimum.
func Repr(g *group.PermGroup, allocation Allocation, orbits *Orbits, opts ...Option) (Mapping, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Mapping{}, o.err
	}

	var repr Allocation
	switch o.Method {
	case MethodOrbits:
		repr = minElemOrbits(g, allocation, orbits, o)
	case MethodLocalSearch:
		repr = minElemLocalSearch(g, allocation, o)
	default:
		repr = minElemIterate(g, allocation, orbits, o)
	}

	m := Mapping{Allocation: allocation.Clone(), Representative: repr}
	if orbits != nil {
		orbits.Insert(m)
	}

	return m, nil
}

// window returns the acting PE range for the group under the options.
func window(g *group.PermGroup, o Options) (int, int) {
	return o.Offset + 1, o.Offset + g.Degree()
}

// minElemIterate scans every group element, tracking the
// lexicographically smallest permuted allocation. In match mode a
// permuted allocation that is already a registered representative is
// returned immediately.
func minElemIterate(g *group.PermGroup, tasks Allocation, orbits *Orbits, o Options) Allocation {
	minPE, maxPE := window(g, o)
	min := tasks.Clone()

	var matched Allocation
	g.ForEach(func(p perm.Perm) bool {
		permuted := tasks.Permuted(p, minPE, maxPE)

		if o.Match && orbits != nil && orbits.IsRepr(permuted) {
			matched = permuted
			return false
		}
		if permuted.Less(min) {
			min = permuted
		}

		return true
	})

	if matched != nil {
		return matched
	}

	return min
}

// minElemOrbits enumerates the allocation's orbit breadth-first over
// the group generators, hashing every visited tuple, and returns the
// smallest orbit member (or, in match mode, the first registered
// representative encountered).
func minElemOrbits(g *group.PermGroup, tasks Allocation, orbits *Orbits, o Options) Allocation {
	minPE, maxPE := window(g, o)
	gens := g.Generators()

	min := tasks.Clone()
	seen := map[string]bool{tasks.Key(): true}
	queue := []Allocation{tasks.Clone()}

	for qi := 0; qi < len(queue); qi++ {
		current := queue[qi]

		if o.Match && orbits != nil && orbits.IsRepr(current) {
			return current
		}
		if current.Less(min) {
			min = current
		}

		for i := 0; i < gens.Len(); i++ {
			next := current.Permuted(gens.At(i), minPE, maxPE)
			if seen[next.Key()] {
				continue
			}
			seen[next.Key()] = true
			queue = append(queue, next)
		}
	}

	return min
}

// localMoves assembles the local-search move set: the strong
// generators, optionally their inverses and random products.
func localMoves(g *group.PermGroup, o Options) []perm.Perm {
	gens := g.Generators()

	moves := make([]perm.Perm, 0, gens.Len())
	for i := 0; i < gens.Len(); i++ {
		moves = append(moves, gens.At(i))
	}

	if o.Inverses {
		for i := 0; i < gens.Len(); i++ {
			inv := gens.At(i).Inverse()
			moves = append(moves, inv)
		}
	}

	if o.ExtraGenerators > 0 && gens.Len() > 0 {
		rng := o.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(int64(gens.Len())))
		}
		for i := 0; i < o.ExtraGenerators; i++ {
			a := gens.At(rng.Intn(gens.Len()))
			b := gens.At(rng.Intn(gens.Len()))
			moves = append(moves, a.Mul(b))
		}
	}

	return moves
}

// minElemLocalSearch descends from the allocation using generator
// moves until no move improves the tuple (BFS/DFS variants) or the
// annealing budget is exhausted (SA variant). The result is a member
// of the orbit but not necessarily its minimum.
func minElemLocalSearch(g *group.PermGroup, tasks Allocation, o Options) Allocation {
	moves := localMoves(g, o)
	if len(moves) == 0 {
		return tasks.Clone()
	}

	if o.Variant == VariantSALinear {
		return annealLinear(tasks, moves, g, o)
	}

	minPE, maxPE := window(g, o)
	current := tasks.Clone()

	for {
		improved := false

		if o.Variant == VariantBFS {
			// Best-step: take the move with the smallest result.
			var best Allocation
			for _, mv := range moves {
				if !current.minimizes(mv, minPE, maxPE) {
					continue
				}
				next := current.Permuted(mv, minPE, maxPE)
				if best == nil || next.Less(best) {
					best = next
				}
			}
			if best != nil {
				current = best
				improved = true
			}
		} else {
			// First-step: accept the first improving move.
			for _, mv := range moves {
				if current.minimizes(mv, minPE, maxPE) {
					current.permuteInPlace(mv, minPE, maxPE)
					improved = true
					break
				}
			}
		}

		if !improved {
			return current
		}
	}
}

// annealLinear runs simulated annealing over the move set with the
// linear schedule T(k) = T0·(1 − k/K), accepting a worsening move with
// probability exp(−Δ/T) where Δ is the window-sum increase. The
// lexicographically smallest tuple visited is returned.
func annealLinear(tasks Allocation, moves []perm.Perm, g *group.PermGroup, o Options) Allocation {
	minPE, maxPE := window(g, o)

	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(o.SASteps)))
	}

	current := tasks.Clone()
	best := tasks.Clone()

	for k := 0; k < o.SASteps; k++ {
		temperature := o.SATemperature * (1 - float64(k)/float64(o.SASteps))

		mv := moves[rng.Intn(len(moves))]
		next := current.Permuted(mv, minPE, maxPE)

		delta := float64(next.windowSum(minPE, maxPE) - current.windowSum(minPE, maxPE))
		accept := delta <= 0
		if !accept && temperature > 0 {
			accept = rng.Float64() < math.Exp(-delta/temperature)
		}
		if !accept {
			continue
		}

		current = next
		if current.Less(best) {
			best = current.Clone()
		}
	}

	return best
}
