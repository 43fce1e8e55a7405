// Package blocks discovers block systems: partitions of {1..n} into
// equally sized blocks that a permutation group permutes setwise.
//
// The workhorse is Minimal, which grows the smallest block system
// whose blocks contain a given seed set, using a union-find structure
// with path compression and union by size. NonTrivial enumerates all
// non-trivial systems of a transitive group by seeding Minimal with
// the first base point and one representative of every orbit of its
// stabilizer.
//
// Block systems feed the wreath-product decomposition of package
// group: the induced action on blocks (PermuterGenerators) becomes the
// top group, the block stabilizer restricted to a block the bottom.
package blocks
