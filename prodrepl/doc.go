// Package prodrepl implements product replacement: a pseudo-random
// walk over a group's generating set that yields approximately uniform
// random group elements without constructing the group.
//
// A Randomizer keeps a list of permutation slots. Slot 0 is an
// accumulator initialized to the identity; the remaining slots start
// from the generators (cyclically padded when there are fewer
// generators than slots). Every call to Next multiplies one slot by
// another (or its inverse) on a random side and folds the result into
// the accumulator on the same side, then returns the accumulator.
// A warm-up of iterations at construction time mixes the initial
// state.
//
// The package also provides statistical certificates for the symmetric
// and alternating groups based on cycle-structure sampling.
package prodrepl
