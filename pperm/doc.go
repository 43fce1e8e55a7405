// Package pperm provides partial permutations — partial bijections on
// {1..n} — and the inverse-semigroup machinery built on them: EEMP
// action components (orbits of point sets under partial permutation
// products), Schreier traces, strongly connected components of the
// orbit graph, and membership testing in a finitely generated inverse
// semigroup of partial permutations.
//
// A partial permutation stores a forward mapping with 0 encoding
// "undefined"; products compose on the refined common domain, and
// trailing undefined entries are always trimmed so that equal actions
// compare equal.
package pperm
