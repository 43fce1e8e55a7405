// Package bsgs implements bases and strong generating sets: the data
// structure at the heart of every permutation-group query in archsym.
//
// A BSGS of a group G ≤ Sym(n) is an ordered base β_1..β_k of points
// together with a strong generating set S such that the generators of
// S fixing β_1..β_{i-1} generate the i-th pointwise stabilizer. One
// Schreier structure per base point stores the fundamental orbit and
// its transversals, giving:
//
//	Strip / Contains — membership by transversal factorization
//	Order            — ∏ |fundamental orbit| (arbitrary precision)
//	BaseChange       — conjugation + redundant-point insertion
//	SwapBasePoints   — adjacent base transposition (bounded search)
//	ReduceGenerators — removal of redundant strong generators
//
// Construction runs one of three Schreier–Sims variants, selected per
// call: the deterministic algorithm over a lazy Schreier generator
// queue, the Monte-Carlo variant fed by product replacement, or the
// solvable-group path that adjoins normalizing generators and fails
// with ErrNotSolvable when the input group is not solvable.
//
// A BSGS owns its strong generators by value; Schreier structures hold
// label indices plus locally composed transversals, so no two
// structures share mutable state.
package bsgs
