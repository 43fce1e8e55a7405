// This file implements statistical certificates for the alternating
// and symmetric groups based on cycle-structure sampling.
//
// A random element of Alt(n) or Sym(n) contains, with probability
// bounded away from zero, a cycle of prime length p with
// n/2 < p < n-2; no proper subgroup other than Alt(n) can produce such
// an element. Sampling enough elements therefore certifies that the
// generated group contains Alt(n); generator parities separate Sym
// from Alt.
package prodrepl

import (
	"github.com/archsym/archsym/perm"
)

// DefaultCertificateTrials is the default sample count for the Alt/Sym
// certificates; the false-negative rate decays geometrically in it.
const DefaultCertificateTrials = 100

// containsAlternating samples elements and looks for the prime-cycle
// certificate. A false result means "not certified", not "disproved".
func (r *Randomizer) containsAlternating(trials int) bool {
	n := r.slots[0].Degree()
	if n < 8 {
		// The certificate window (n/2, n-2) holds no prime for small n;
		// fall back to exhausting nothing and reporting not-certified.
		return false
	}

	for i := 0; i < trials; i++ {
		p := r.Next()
		for _, cycle := range p.Cycles() {
			l := len(cycle)
			if 2*l > n && l < n-2 && isPrime(l) {
				return true
			}
		}
	}

	return false
}

// TestSymmetric reports whether the generated group is certified to be
// the full symmetric group: the Alt(n) certificate plus at least one
// odd generator. trials <= 0 selects DefaultCertificateTrials.
func (r *Randomizer) TestSymmetric(generators perm.Set, trials int) bool {
	if trials <= 0 {
		trials = DefaultCertificateTrials
	}

	odd := false
	for i := 0; i < generators.Len(); i++ {
		if generators.At(i).Parity() == 1 {
			odd = true
			break
		}
	}
	if !odd {
		return false
	}

	return r.containsAlternating(trials)
}

// TestAlternating reports whether the generated group is certified to
// be the alternating group: the Alt(n) certificate with every
// generator even. trials <= 0 selects DefaultCertificateTrials.
func (r *Randomizer) TestAlternating(generators perm.Set, trials int) bool {
	if trials <= 0 {
		trials = DefaultCertificateTrials
	}

	for i := 0; i < generators.Len(); i++ {
		if generators.At(i).Parity() == 1 {
			return false
		}
	}

	return r.containsAlternating(trials)
}

// isPrime is a trial-division primality check; cycle lengths are tiny.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}
