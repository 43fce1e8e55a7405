// Package perm provides the permutation value type underlying all of
// archsym: finite bijections on {1..n} with composition, inversion,
// restriction, hashing, and a dedup-friendly permutation set.
//
// Conventions:
//
//   - Points are 1-based: a permutation of degree n acts on {1..n}.
//   - Composition uses the right-action convention throughout:
//     (P·Q)(i) = Q(P(i)). Every algorithm in this module relies on it.
//   - Permutations are immutable values; operations return new values.
//   - Mixed-degree binary operations are programmer errors and panic
//     with ErrDegreeMismatch; constructors validate and return errors.
//
// Hashing and degree-independent equality: two permutations of
// different degree that perform the same action (agree on the smaller
// degree and fix the tail) compare Equal and produce identical Hash
// and Key values. This is what lets Schreier structures and orbit
// caches of varying degree interoperate.
package perm
