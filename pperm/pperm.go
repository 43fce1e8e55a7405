// This file declares the PartialPerm value type.
//
// Errors:
//
//	ErrInvalidImage - duplicate images or dom/im dimension mismatch.
//	ErrNotBijective - ToPerm on a partial perm whose total extension
//	                  is not a bijection.
package pperm

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/archsym/archsym/perm"
)

// Sentinel errors for partial permutation construction.
var (
	// ErrInvalidImage indicates duplicate images, zero/negative domain
	// points, or dom/im vectors of different length.
	ErrInvalidImage = errors.New("pperm: invalid partial permutation description")

	// ErrNotBijective indicates a ToPerm call on a partial perm whose
	// identity-extension is not a bijection.
	ErrNotBijective = errors.New("pperm: not extensible to a permutation")
)

// PartialPerm is a partial bijection on {1..n}. The zero value is the
// empty partial permutation (defined nowhere).
//
// Values are immutable; operations return fresh values.
type PartialPerm struct {
	// word[i-1] is the image of i, 0 when undefined. Trailing zeros
	// are always trimmed.
	word []int

	dom []int // sorted points with defined image
	im  []int // sorted images
}

// FromVector constructs a partial permutation from a forward mapping
// with 0 encoding "undefined". Duplicate (non-zero) images yield
// ErrInvalidImage.
func FromVector(word []int) (PartialPerm, error) {
	seen := map[int]bool{}
	for _, y := range word {
		if y < 0 {
			return PartialPerm{}, fmt.Errorf("%w: negative image %d", ErrInvalidImage, y)
		}
		if y == 0 {
			continue
		}
		if seen[y] {
			return PartialPerm{}, fmt.Errorf("%w: duplicate image %d", ErrInvalidImage, y)
		}
		seen[y] = true
	}

	return fromWord(word), nil
}

// FromDomImage constructs a partial permutation mapping dom[i] to
// im[i]. The vectors must have equal length, positive points and no
// duplicates on either side.
func FromDomImage(dom, im []int) (PartialPerm, error) {
	if len(dom) != len(im) {
		return PartialPerm{}, fmt.Errorf("%w: dom/im dimension mismatch", ErrInvalidImage)
	}

	maxDom := 0
	for _, x := range dom {
		if x < 1 {
			return PartialPerm{}, fmt.Errorf("%w: domain point %d", ErrInvalidImage, x)
		}
		if x > maxDom {
			maxDom = x
		}
	}

	word := make([]int, maxDom)
	seenIm := map[int]bool{}
	for i, x := range dom {
		y := im[i]
		if y < 1 {
			return PartialPerm{}, fmt.Errorf("%w: image point %d", ErrInvalidImage, y)
		}
		if word[x-1] != 0 {
			return PartialPerm{}, fmt.Errorf("%w: duplicate domain point %d", ErrInvalidImage, x)
		}
		if seenIm[y] {
			return PartialPerm{}, fmt.Errorf("%w: duplicate image %d", ErrInvalidImage, y)
		}
		word[x-1] = y
		seenIm[y] = true
	}

	return fromWord(word), nil
}

// Identity returns the total identity on {1..degree}.
func Identity(degree int) PartialPerm {
	word := make([]int, degree)
	for i := range word {
		word[i] = i + 1
	}

	return fromWord(word)
}

// IdentityOn returns the partial identity defined exactly on dom.
func IdentityOn(dom []int) (PartialPerm, error) {
	return FromDomImage(dom, dom)
}

// fromWord normalizes (trims trailing zeros) and derives dom/im.
func fromWord(word []int) PartialPerm {
	end := len(word)
	for end > 0 && word[end-1] == 0 {
		end--
	}

	w := make([]int, end)
	copy(w, word[:end])

	var dom, im []int
	for i, y := range w {
		if y != 0 {
			dom = append(dom, i+1)
			im = append(im, y)
		}
	}
	sort.Ints(im)

	return PartialPerm{word: w, dom: dom, im: im}
}

// Apply returns the image of i, 0 when undefined (including i outside
// the stored range).
func (p PartialPerm) Apply(i int) int {
	if i < 1 || i > len(p.word) {
		return 0
	}

	return p.word[i-1]
}

// Dom returns the sorted domain. Shared slice; do not mutate.
func (p PartialPerm) Dom() []int { return p.dom }

// Im returns the sorted image. Shared slice; do not mutate.
func (p PartialPerm) Im() []int { return p.im }

// DomMin returns the smallest domain point, 0 when empty.
func (p PartialPerm) DomMin() int {
	if len(p.dom) == 0 {
		return 0
	}

	return p.dom[0]
}

// DomMax returns the largest domain point, 0 when empty.
func (p PartialPerm) DomMax() int {
	if len(p.dom) == 0 {
		return 0
	}

	return p.dom[len(p.dom)-1]
}

// ImMin returns the smallest image point, 0 when empty.
func (p PartialPerm) ImMin() int {
	if len(p.im) == 0 {
		return 0
	}

	return p.im[0]
}

// ImMax returns the largest image point, 0 when empty.
func (p PartialPerm) ImMax() int {
	if len(p.im) == 0 {
		return 0
	}

	return p.im[len(p.im)-1]
}

// Empty reports whether the partial permutation is defined nowhere.
func (p PartialPerm) Empty() bool { return len(p.dom) == 0 }

// IsIdentity reports whether every domain point maps to itself. The
// empty partial permutation counts as an identity.
func (p PartialPerm) IsIdentity() bool {
	for _, x := range p.dom {
		if p.word[x-1] != x {
			return false
		}
	}

	return true
}

// Inverse swaps domain and image.
func (p PartialPerm) Inverse() PartialPerm {
	word := make([]int, p.ImMax())
	for _, x := range p.dom {
		word[p.word[x-1]-1] = x
	}

	return fromWord(word)
}

// Mul returns the composition p·q on the refined domain: x ↦ q(p(x)),
// dropping points where either side is undefined.
func (p PartialPerm) Mul(q PartialPerm) PartialPerm {
	word := make([]int, len(p.word))
	for _, x := range p.dom {
		word[x-1] = q.Apply(p.word[x-1])
	}

	return fromWord(word)
}

// Equal compares the trimmed forward mappings.
func (p PartialPerm) Equal(q PartialPerm) bool {
	if len(p.word) != len(q.word) {
		return false
	}
	for i := range p.word {
		if p.word[i] != q.word[i] {
			return false
		}
	}

	return true
}

// Image returns the sorted set of defined images of the given points.
func (p PartialPerm) Image(set []int) []int {
	uniq := map[int]bool{}
	for _, x := range set {
		if y := p.Apply(x); y != 0 {
			uniq[y] = true
		}
	}

	res := make([]int, 0, len(uniq))
	for y := range uniq {
		res = append(res, y)
	}
	sort.Ints(res)

	return res
}

// ToPerm extends p by the identity outside its domain and returns the
// result as a permutation of the given degree. Returns ErrNotBijective
// when the extension is not a bijection (or exceeds the degree).
func (p PartialPerm) ToPerm(degree int) (perm.Perm, error) {
	if p.DomMax() > degree || p.ImMax() > degree {
		return perm.Perm{}, fmt.Errorf("%w: exceeds degree %d", ErrNotBijective, degree)
	}

	images := make([]int, degree)
	for i := range images {
		images[i] = i + 1
	}
	for _, x := range p.dom {
		images[x-1] = p.word[x-1]
	}

	res, err := perm.New(images)
	if err != nil {
		return perm.Perm{}, fmt.Errorf("%w: %v", ErrNotBijective, err)
	}

	return res, nil
}

// Key returns a canonical string encoding for map keys.
func (p PartialPerm) Key() string {
	var sb strings.Builder
	for _, x := range p.dom {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(p.word[x-1]))
		sb.WriteByte(';')
	}

	return sb.String()
}

// String renders the mapping as [x→y] pairs, "()" when empty.
func (p PartialPerm) String() string {
	if p.Empty() {
		return "()"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range p.dom {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d→%d", x, p.word[x-1])
	}
	sb.WriteByte(']')

	return sb.String()
}
