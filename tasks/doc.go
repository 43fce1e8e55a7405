// Package tasks maps task allocations onto canonical orbit
// representatives under a processor symmetry group.
//
// An Allocation assigns one processing element to every task. Two
// allocations that differ only by an automorphism of the architecture
// are equivalent; this package computes, for a given allocation, a
// canonical member of its equivalence class:
//
//	MethodIterate     — scan every group element, keep the
//	                    lexicographic minimum (exact)
//	MethodOrbits      — enumerate the allocation's orbit by BFS over
//	                    generators, return its minimum (exact)
//	MethodLocalSearch — greedy descent over generator moves, with
//	                    best-step, first-step and simulated-annealing
//	                    variants (approximate: the result is in the
//	                    orbit but not necessarily minimal)
//
// An Orbits cache deduplicates representatives across calls and, in
// match mode, lets the exact methods exit as soon as they touch any
// previously registered representative.
//
// All methods honour an offset window: only task entries inside
// [offset+1, offset+degree] are acted on, everything else passes
// through untouched. This is what lets composed architecture systems
// map each child's slice of the allocation independently.
package tasks
