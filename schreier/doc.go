// Package schreier provides orbit enumeration and the two transversal
// stores used by the BSGS machinery: an explicit per-point transversal
// table and a Schreier tree that reconstructs transversals on demand.
//
// A Structure records the orbit of a root point under a fixed label
// set (the generators of some stabilizer) and, for every orbit point
// x, a transversal permutation u_x with u_x(root) = x. The two
// variants honour an identical external contract — for every orbit
// point they produce the same transversal — and differ only in the
// memory/time trade-off:
//
//	Tree     — stores one back-edge per point, O(depth) reconstruction
//	Explicit — stores u_x directly, O(1) lookup, heavier memory
//
// The orbit engine (Build) is a plain FIFO breadth-first search over
// label applications: O(|orbit|·|labels|) applications total.
package schreier
