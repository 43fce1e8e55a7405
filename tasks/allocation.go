// This file declares Allocation, Mapping and the Orbits cache.
package tasks

import (
	"strconv"
	"strings"

	"github.com/archsym/archsym/perm"
)

// Allocation is an ordered assignment of processing elements (1-based
// PE indices) to tasks: element i is the PE running task i.
type Allocation []int

// Clone returns an independent copy.
func (a Allocation) Clone() Allocation {
	res := make(Allocation, len(a))
	copy(res, a)

	return res
}

// Key returns a canonical string encoding for hashing.
func (a Allocation) Key() string {
	var sb strings.Builder
	for i, pe := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(pe))
	}

	return sb.String()
}

// Less orders allocations lexicographically.
func (a Allocation) Less(b Allocation) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Equal compares allocations elementwise.
func (a Allocation) Equal(b Allocation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Permuted returns the allocation with every entry inside
// [minPE, maxPE] mapped through p (shifted into p's point range);
// entries outside the window pass through.
func (a Allocation) Permuted(p perm.Perm, minPE, maxPE int) Allocation {
	res := a.Clone()
	res.permuteInPlace(p, minPE, maxPE)

	return res
}

// permuteInPlace applies Permuted without reallocation.
func (a Allocation) permuteInPlace(p perm.Perm, minPE, maxPE int) {
	offs := minPE - 1
	for i, pe := range a {
		if pe < minPE || pe > maxPE {
			continue
		}
		a[i] = p.Apply(pe-offs) + offs
	}
}

// minimizes reports whether applying p yields a lexicographically
// smaller allocation, comparing only entries inside the window.
func (a Allocation) minimizes(p perm.Perm, minPE, maxPE int) bool {
	offs := minPE - 1
	for _, pe := range a {
		if pe < minPE || pe > maxPE {
			continue
		}
		permuted := p.Apply(pe-offs) + offs
		if permuted > pe {
			return false
		}
		if permuted < pe {
			return true
		}
	}

	return false
}

// windowSum adds up the entries inside the window; the energy driving
// the simulated-annealing variant.
func (a Allocation) windowSum(minPE, maxPE int) int {
	sum := 0
	for _, pe := range a {
		if pe >= minPE && pe <= maxPE {
			sum += pe
		}
	}

	return sum
}

// Mapping pairs an allocation with the canonical representative of its
// orbit.
type Mapping struct {
	Allocation     Allocation
	Representative Allocation
}

// Orbits is a set of orbit representatives with insertion-order
// equivalence-class numbering. The zero value is ready to use.
type Orbits struct {
	reprs []Allocation
	index map[string]int
}

// Insert registers a mapping's representative. Returns whether the
// orbit was new and its equivalence-class index.
func (o *Orbits) Insert(m Mapping) (bool, int) {
	if o.index == nil {
		o.index = map[string]int{}
	}

	key := m.Representative.Key()
	if class, ok := o.index[key]; ok {
		return false, class
	}

	class := len(o.reprs)
	o.reprs = append(o.reprs, m.Representative.Clone())
	o.index[key] = class

	return true, class
}

// IsRepr reports whether a is a registered representative.
func (o *Orbits) IsRepr(a Allocation) bool {
	if o.index == nil {
		return false
	}
	_, ok := o.index[a.Key()]

	return ok
}

// Len reports the number of registered orbits.
func (o *Orbits) Len() int { return len(o.reprs) }

// Representative returns the i-th registered representative.
func (o *Orbits) Representative(i int) Allocation { return o.reprs[i] }
