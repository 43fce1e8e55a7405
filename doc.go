// Package archsym computes symmetry groups of parallel-computing
// architecture graphs and uses them to shrink the space of
// task-to-processor mappings that a mapping search has to consider.
//
// 🚀 What is archsym?
//
//	A computational-group-theory kernel plus a thin architecture-graph
//	layer on top of it:
//
//	  • Permutations & permutation sets: compose, invert, hash, dedup
//	  • BSGS machinery: Schreier–Sims (deterministic, random, solvable),
//	    membership tests, base change, generator reduction
//	  • Permutation groups: iteration, uniform sampling, factories,
//	    direct/wreath products, disjoint & wreath decomposition
//	  • Block systems & partial-permutation inverse semigroups
//	  • Architecture graphs: automorphism discovery, composable
//	    cluster/super-graph systems, orbit representatives of task
//	    allocations (ITERATE / ORBITS / LOCAL_SEARCH)
//
// Everything is organized under focused subpackages:
//
//	perm/       — permutation and permutation-set value types
//	schreier/   — orbit engine and transversal stores (tree & explicit)
//	bsgs/       — base and strong generating set construction & queries
//	prodrepl/   — product-replacement random element generation
//	group/      — user-facing permutation groups and decompositions
//	blocks/     — block systems (imprimitivity) discovery
//	pperm/      — partial permutations and inverse-semigroup membership
//	tasks/      — task allocations, orbit caches, representative search
//	archgraph/  — architecture graphs, composition trees, loader, DOT
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	a 2×2 processor mesh whose automorphism group is the dihedral group
//	of order 8; archsym maps every allocation of tasks onto it to a
//	canonical representative of its symmetry orbit.
//
// See README-level examples in the package documentation of archgraph
// and tasks for end-to-end usage.
package archsym
