// This file provides exhaustive allocation enumeration for orbit
// counting utilities and tests.
package tasks

import (
	"github.com/archsym/archsym/internal/combin"
)

// EnumAllocations visits every allocation of numTasks tasks onto PEs
// {1..numPEs} in which all tasks run on distinct PEs (ascending PE
// order), driven by Chase's twiddle over k-combinations. Enumeration
// stops early when visit returns false.
func EnumAllocations(numTasks, numPEs int, visit func(a Allocation) bool) {
	combin.Combinations(numPEs, numTasks, func(comb []int) bool {
		alloc := make(Allocation, len(comb))
		for i, pe := range comb {
			alloc[i] = pe + 1
		}

		return visit(alloc)
	})
}

// EnumAllAllocations visits every allocation of numTasks tasks onto
// PEs {1..numPEs}, repetitions allowed, with the first task's PE
// varying fastest.
// Enumeration stops early when visit returns false.
func EnumAllAllocations(numTasks, numPEs int, visit func(a Allocation) bool) {
	if numTasks < 0 || numPEs < 1 {
		return
	}

	sizes := make([]int, numTasks)
	for i := range sizes {
		sizes[i] = numPEs
	}

	cursor := combin.NewCartesian(sizes)
	for {
		state := cursor.State()
		alloc := make(Allocation, numTasks)
		for i, s := range state {
			alloc[i] = s + 1
		}
		if !visit(alloc) {
			return
		}
		if !cursor.Next() {
			return
		}
	}
}
