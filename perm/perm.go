// This file declares the Perm value type, its constructors and its
// core operations.
//
// Errors:
//
//	ErrInvalidImage   - image vector is not a bijection on {1..n}.
//	ErrDegreeMismatch - mixed-degree binary operation (panic value).
//	ErrOutOfRange     - a point exceeds the degree (or is < 1).
//	ErrNotClosed      - Restricted called with a non-invariant set.
package perm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for permutation construction and operations.
var (
	// ErrInvalidImage indicates an explicit image vector that is not a
	// bijection on {1..n}.
	ErrInvalidImage = errors.New("perm: image vector is not a bijection")

	// ErrDegreeMismatch indicates a binary operation on permutations of
	// different degree. Binary operations panic with this value; Set
	// insertion returns it.
	ErrDegreeMismatch = errors.New("perm: degree mismatch")

	// ErrOutOfRange indicates a point outside {1..degree}.
	ErrOutOfRange = errors.New("perm: point out of range")

	// ErrNotClosed indicates that Restricted was called with a set that
	// the permutation does not map onto itself.
	ErrNotClosed = errors.New("perm: set not closed under permutation")
)

// Perm is a permutation of {1..n}, n = Degree().
//
// The zero value is not usable; construct via Identity, New or
// FromCycles. Perm values are immutable: all operations return fresh
// values and never alias the receiver's storage.
type Perm struct {
	// word[i-1] is the image of point i; values are 1-based.
	word []int
}

// Identity returns the identity permutation of the given degree.
// Panics with ErrOutOfRange if degree < 1.
// Complexity: O(n).
func Identity(degree int) Perm {
	if degree < 1 {
		panic(fmt.Errorf("%w: identity degree %d", ErrOutOfRange, degree))
	}
	word := make([]int, degree)
	for i := range word {
		word[i] = i + 1
	}

	return Perm{word: word}
}

// New constructs a permutation from an explicit image vector: images[i]
// is the image of point i+1. The vector must be a bijection on
// {1..len(images)}; otherwise ErrInvalidImage is returned.
// Complexity: O(n).
func New(images []int) (Perm, error) {
	n := len(images)
	if n == 0 {
		return Perm{}, fmt.Errorf("%w: empty image vector", ErrInvalidImage)
	}

	seen := make([]bool, n)
	for _, im := range images {
		if im < 1 || im > n {
			return Perm{}, fmt.Errorf("%w: image %d outside 1..%d", ErrInvalidImage, im, n)
		}
		if seen[im-1] {
			return Perm{}, fmt.Errorf("%w: duplicate image %d", ErrInvalidImage, im)
		}
		seen[im-1] = true
	}

	word := make([]int, n)
	copy(word, images)

	return Perm{word: word}, nil
}

// FromCycles constructs a permutation of the given degree from a list
// of cycles, interpreted as their left-to-right product under the
// right-action convention. Points must lie in {1..degree}
// (ErrOutOfRange otherwise); a point repeated inside a single cycle
// yields ErrInvalidImage. Cycles across the list may overlap — the
// result is their product.
// Complexity: O(n + total cycle length).
func FromCycles(degree int, cycles ...[]int) (Perm, error) {
	if degree < 1 {
		return Perm{}, fmt.Errorf("%w: degree %d", ErrOutOfRange, degree)
	}

	res := Identity(degree)
	for _, cycle := range cycles {
		next, err := fromSingleCycle(degree, cycle)
		if err != nil {
			return Perm{}, err
		}
		res = res.Mul(next)
	}

	return res, nil
}

// fromSingleCycle builds the permutation consisting of exactly one cycle.
func fromSingleCycle(degree int, cycle []int) (Perm, error) {
	p := Identity(degree)

	seen := make(map[int]bool, len(cycle))
	for _, x := range cycle {
		if x < 1 || x > degree {
			return Perm{}, fmt.Errorf("%w: cycle point %d outside 1..%d", ErrOutOfRange, x, degree)
		}
		if seen[x] {
			return Perm{}, fmt.Errorf("%w: point %d repeated in cycle", ErrInvalidImage, x)
		}
		seen[x] = true
	}

	for i := 1; i < len(cycle); i++ {
		p.word[cycle[i-1]-1] = cycle[i]
	}
	if len(cycle) > 1 {
		p.word[cycle[len(cycle)-1]-1] = cycle[0]
	}

	return p, nil
}

// Degree reports the number of points the permutation is defined on.
func (p Perm) Degree() int { return len(p.word) }

// Apply returns the image of point i. Panics with ErrOutOfRange if i
// is outside {1..Degree()}.
// Complexity: O(1).
func (p Perm) Apply(i int) int {
	if i < 1 || i > len(p.word) {
		panic(fmt.Errorf("%w: point %d of degree-%d permutation", ErrOutOfRange, i, len(p.word)))
	}

	return p.word[i-1]
}

// Inverse returns the permutation q with q(p(i)) = i for all i.
// Complexity: O(n).
func (p Perm) Inverse() Perm {
	inv := make([]int, len(p.word))
	for i, im := range p.word {
		inv[im-1] = i + 1
	}

	return Perm{word: inv}
}

// Mul returns the right-action product p·q with (p·q)(i) = q(p(i)).
// Panics with ErrDegreeMismatch if degrees differ.
// Complexity: O(n).
func (p Perm) Mul(q Perm) Perm {
	if len(p.word) != len(q.word) {
		panic(fmt.Errorf("%w: %d vs %d", ErrDegreeMismatch, len(p.word), len(q.word)))
	}

	word := make([]int, len(p.word))
	for i := range word {
		word[i] = q.word[p.word[i]-1]
	}

	return Perm{word: word}
}

// Equal reports whether p and q perform the same action: they agree on
// every point of the smaller degree and the longer permutation fixes
// its tail. Equal degrees degrade to a pointwise comparison.
// Complexity: O(max degree).
func (p Perm) Equal(q Perm) bool {
	a, b := p.word, q.word
	if len(a) > len(b) {
		a, b = b, a
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	for i := len(a); i < len(b); i++ {
		if b[i] != i+1 {
			return false
		}
	}

	return true
}

// IsIdentity reports whether p fixes every point.
// Complexity: O(n).
func (p Perm) IsIdentity() bool {
	for i, im := range p.word {
		if im != i+1 {
			return false
		}
	}

	return true
}

// Stabilizes reports whether p fixes every point of pts.
func (p Perm) Stabilizes(pts ...int) bool {
	for _, x := range pts {
		if p.Apply(x) != x {
			return false
		}
	}

	return true
}

// Restricted returns the permutation of the same degree that agrees
// with p on set and fixes every other point. The set must be invariant
// under p (p(set) = set); otherwise ErrNotClosed is returned.
// Complexity: O(n + |set|).
func (p Perm) Restricted(set []int) (Perm, error) {
	inSet := make([]bool, len(p.word))
	for _, x := range set {
		if x < 1 || x > len(p.word) {
			return Perm{}, fmt.Errorf("%w: point %d", ErrOutOfRange, x)
		}
		inSet[x-1] = true
	}

	res := Identity(len(p.word))
	for _, x := range set {
		im := p.word[x-1]
		if !inSet[im-1] {
			return Perm{}, fmt.Errorf("%w: %d maps to %d", ErrNotClosed, x, im)
		}
		res.word[x-1] = im
	}

	return res, nil
}

// Extended returns the same action on a larger degree, fixing the new
// tail points. Panics with ErrOutOfRange if degree < Degree().
func (p Perm) Extended(degree int) Perm {
	if degree < len(p.word) {
		panic(fmt.Errorf("%w: cannot extend degree %d to %d", ErrOutOfRange, len(p.word), degree))
	}

	res := Identity(degree)
	copy(res.word, p.word)

	return res
}

// LargestMoved returns the largest moved point and true, or 0 and
// false for the identity.
func (p Perm) LargestMoved() (int, bool) {
	for i := len(p.word); i >= 1; i-- {
		if p.word[i-1] != i {
			return i, true
		}
	}

	return 0, false
}

// SmallestMoved returns the smallest moved point and true, or 0 and
// false for the identity.
func (p Perm) SmallestMoved() (int, bool) {
	for i := 1; i <= len(p.word); i++ {
		if p.word[i-1] != i {
			return i, true
		}
	}

	return 0, false
}

// Cycles returns the non-trivial cycles of p, each starting at its
// smallest point, ordered by that point.
// Complexity: O(n).
func (p Perm) Cycles() [][]int {
	done := make([]bool, len(p.word))
	var cycles [][]int

	for i := 1; i <= len(p.word); i++ {
		if done[i-1] || p.word[i-1] == i {
			done[i-1] = true
			continue
		}

		cycle := []int{i}
		done[i-1] = true
		for cur := p.word[i-1]; cur != i; cur = p.word[cur-1] {
			cycle = append(cycle, cur)
			done[cur-1] = true
		}
		cycles = append(cycles, cycle)
	}

	return cycles
}

// Parity returns 0 for even permutations and 1 for odd ones.
func (p Perm) Parity() int {
	parity := 0
	for _, cycle := range p.Cycles() {
		parity ^= (len(cycle) - 1) & 1
	}

	return parity
}

// hashSeed is the golden-ratio mixing constant used for point-pair
// folding; the scheme matches the container hash used by orbit caches.
const hashSeed = 0x9e3779b97f4a7c15

// Hash returns a degree-independent hash: permutations with equal
// action (Equal) hash equal regardless of stored degree. Only moved
// points contribute.
// Complexity: O(n).
func (p Perm) Hash() uint64 {
	var h uint64
	for i, im := range p.word {
		if im == i+1 {
			continue
		}
		v := uint64(i+1)<<32 | uint64(im)
		h ^= v + hashSeed + (h << 6) + (h >> 2)
	}

	return h
}

// Key returns a canonical, degree-independent string encoding of the
// action, suitable as a map key for exact deduplication.
// Complexity: O(n).
func (p Perm) Key() string {
	var sb strings.Builder
	for i, im := range p.word {
		if im == i+1 {
			continue
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(im))
		sb.WriteByte(';')
	}

	return sb.String()
}

// String renders p in cycle notation, "()" for the identity.
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}

	var sb strings.Builder
	for _, cycle := range cycles {
		sb.WriteByte('(')
		for i, x := range cycle {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		sb.WriteByte(')')
	}

	return sb.String()
}
