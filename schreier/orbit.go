// This file implements the orbit engine: breadth-first enumeration of
// point orbits under a label set, populating a transversal store, plus
// the free-standing orbit and orbit-partition helpers.
package schreier

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/archsym/archsym/perm"
)

// Build enumerates the orbit of root under labels into a fresh
// structure of the requested kind and returns it.
//
// The search is a FIFO BFS: for each frontier point x and each label
// g, the point y = g(x) is recorded with a back-edge y → x labelled g
// the first time it is seen. Labels may be empty; the orbit is then
// just {root}.
//
// Returns ErrRootOutOfRange if root is outside {1..degree}.
// Complexity: O(|orbit|·|labels|) label applications.
func Build(kind Kind, degree, root int, labels perm.Set) (Structure, error) {
	if root < 1 || root > degree {
		return nil, fmt.Errorf("%w: %d of degree %d", ErrRootOutOfRange, root, degree)
	}
	labels.AssertDegree(degree)

	s := New(kind, degree)
	s.createLabels(labels)
	s.createRoot(root)

	seen := bitset.New(uint(degree))
	seen.Set(uint(root - 1))

	queue := make([]int, 0, degree)
	queue = append(queue, root)

	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		for li := 0; li < labels.Len(); li++ {
			y := labels.At(li).Apply(x)
			if seen.Test(uint(y - 1)) {
				continue
			}
			seen.Set(uint(y - 1))
			s.createEdge(y, x, li)
			queue = append(queue, y)
		}
	}

	return s, nil
}

// Orbit returns the orbit of x under the label set, in BFS discovery
// order, without building a transversal store.
// Complexity: O(|orbit|·|labels|).
func Orbit(x int, labels perm.Set) []int {
	res := []int{x}
	if labels.Empty() {
		return res
	}

	seen := bitset.New(uint(labels.Degree()))
	seen.Set(uint(x - 1))

	for qi := 0; qi < len(res); qi++ {
		y := res[qi]
		for li := 0; li < labels.Len(); li++ {
			z := labels.At(li).Apply(y)
			if !seen.Test(uint(z - 1)) {
				seen.Set(uint(z - 1))
				res = append(res, z)
			}
		}
	}

	return res
}

// OrbitPartition splits {1..degree} into the orbits of the label set,
// ordered by smallest contained point.
// Complexity: O(degree·|labels|).
func OrbitPartition(labels perm.Set) [][]int {
	if labels.Empty() {
		return nil
	}

	degree := labels.Degree()
	assigned := bitset.New(uint(degree))

	var res [][]int
	for x := 1; x <= degree; x++ {
		if assigned.Test(uint(x - 1)) {
			continue
		}

		orbit := Orbit(x, labels)
		for _, y := range orbit {
			assigned.Set(uint(y - 1))
		}
		res = append(res, orbit)
	}

	return res
}
