// Package group provides the user-facing permutation group: a wrapper
// around a BSGS exposing order, membership, element iteration, uniform
// random sampling, transitivity and orbits, together with factories
// for the standard families (symmetric, cyclic, alternating,
// dihedral), direct and wreath products, and the two structural
// decompositions used for architecture graphs:
//
//	DisjointDecomposition — split along orbit (or dependency-class)
//	                        bipartitions into a direct product
//	WreathDecomposition   — recognize a uniform block structure and
//	                        split into bottom (block stabilizer) and
//	                        top (block permuter) factors
//
// A PermGroup is immutable after construction; iterators never mutate
// the group and may be restarted independently.
package group
