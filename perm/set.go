// This file declares Set, an insertion-ordered multiset of
// permutations of a common degree with stable deduplication.
package perm

import "fmt"

// Set is an insertion-ordered collection of permutations sharing a
// common degree. Duplicates are allowed until MakeUnique is called.
//
// The zero value is an empty, usable set; the degree of an empty set
// is undefined (Degree reports 0).
type Set struct {
	perms []Perm
}

// NewSet builds a set from the given permutations. All permutations
// must share one degree; ErrDegreeMismatch otherwise.
func NewSet(perms ...Perm) (Set, error) {
	var s Set
	for _, p := range perms {
		if err := s.Insert(p); err != nil {
			return Set{}, err
		}
	}

	return s, nil
}

// Insert appends p, validating that its degree matches the set's.
// Returns ErrDegreeMismatch on a mismatch.
// Complexity: O(1).
func (s *Set) Insert(p Perm) error {
	if !s.Empty() && p.Degree() != s.Degree() {
		return fmt.Errorf("%w: inserting degree %d into degree-%d set",
			ErrDegreeMismatch, p.Degree(), s.Degree())
	}
	s.perms = append(s.perms, p)

	return nil
}

// Push appends p without validation. The caller guarantees matching
// degree; a violation is a programmer error and panics with
// ErrDegreeMismatch.
// Complexity: O(1).
func (s *Set) Push(p Perm) {
	if !s.Empty() && p.Degree() != s.Degree() {
		panic(fmt.Errorf("%w: pushing degree %d into degree-%d set",
			ErrDegreeMismatch, p.Degree(), s.Degree()))
	}
	s.perms = append(s.perms, p)
}

// Len reports the number of stored permutations (duplicates counted).
func (s Set) Len() int { return len(s.perms) }

// Empty reports whether the set holds no permutations.
func (s Set) Empty() bool { return len(s.perms) == 0 }

// Degree reports the common degree, or 0 for an empty set (undefined).
func (s Set) Degree() int {
	if s.Empty() {
		return 0
	}

	return s.perms[0].Degree()
}

// At returns the i-th permutation in insertion order.
func (s Set) At(i int) Perm { return s.perms[i] }

// Perms returns the stored permutations in insertion order. The slice
// is shared; callers must not mutate it.
func (s Set) Perms() []Perm { return s.perms }

// Replace overwrites the i-th permutation. The replacement must have
// the set's degree; a violation panics with ErrDegreeMismatch.
func (s *Set) Replace(i int, p Perm) {
	if p.Degree() != s.Degree() {
		panic(fmt.Errorf("%w: replacing with degree %d in degree-%d set",
			ErrDegreeMismatch, p.Degree(), s.Degree()))
	}
	s.perms[i] = p
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	perms := make([]Perm, len(s.perms))
	copy(perms, s.perms)

	return Set{perms: perms}
}

// AssertDegree checks the programmer-error invariant that the set is
// empty or has the given degree, panicking with ErrDegreeMismatch
// otherwise.
func (s Set) AssertDegree(degree int) {
	if !s.Empty() && s.Degree() != degree {
		panic(fmt.Errorf("%w: set degree %d, want %d", ErrDegreeMismatch, s.Degree(), degree))
	}
}

// MakeUnique removes duplicate permutations in place, keeping the
// first occurrence of each action and preserving insertion order.
// Complexity: O(total degree).
func (s *Set) MakeUnique() {
	seen := make(map[string]bool, len(s.perms))
	unique := s.perms[:0]
	for _, p := range s.perms {
		key := p.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	s.perms = unique
}

// DropIdentity removes identity permutations in place, preserving the
// order of the rest.
func (s *Set) DropIdentity() {
	kept := s.perms[:0]
	for _, p := range s.perms {
		if !p.IsIdentity() {
			kept = append(kept, p)
		}
	}
	s.perms = kept
}

// MinimizeDegree shrinks the stored degree of every permutation to the
// largest moved point across the set (at least 1). A set of identities
// collapses to degree 1.
// Complexity: O(total degree).
func (s *Set) MinimizeDegree() {
	if s.Empty() {
		return
	}

	max := 1
	for _, p := range s.perms {
		if moved, ok := p.LargestMoved(); ok && moved > max {
			max = moved
		}
	}

	for i, p := range s.perms {
		word := make([]int, max)
		for j := 0; j < max; j++ {
			word[j] = p.Apply(j + 1)
		}
		// The largest moved point bounds every image below, so the
		// truncated word is still a bijection.
		s.perms[i] = Perm{word: word}
	}
}

// String renders the set as a bracketed list of cycle-notation terms.
func (s Set) String() string {
	out := "["
	for i, p := range s.perms {
		if i > 0 {
			out += ", "
		}
		out += p.String()
	}

	return out + "]"
}
