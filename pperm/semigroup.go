// This file implements membership testing in a finitely generated
// inverse semigroup of partial permutations.
package pperm

import (
	"github.com/archsym/archsym/group"
)

// InverseSemigroup is the inverse semigroup generated by a fixed list
// of partial permutations. Construction precomputes the image and
// domain action components, the SCC structure of the image orbit
// graph, one Schreier-generator group plus trace tree per SCC, and
// the R-class representatives; Contains then runs in time linear in
// the number of compatible representatives.
type InverseSemigroup struct {
	gens []PartialPerm
	dom  []int

	acIm      [][]int
	stIm      SchreierTree
	ogIm      OrbitGraph
	acImIndex map[string]int
	acDomSet  map[string]bool

	scc      []int
	sccReprs []sccRepr

	rClassReprs []PartialPerm
}

// sccRepr holds the precomputed data of one SCC of the image action:
// the representative's component index, the Schreier-generator group
// of the SCC, and a BFS trace tree (within the SCC) rooted at the
// representative.
type sccRepr struct {
	index  int
	schrei *group.PermGroup
	parent map[int]int
	label  map[int]int
}

// NewInverseSemigroup precomputes the membership structures. An empty
// generator list yields the empty semigroup (Contains is always
// false).
func NewInverseSemigroup(gens []PartialPerm) (*InverseSemigroup, error) {
	s := &InverseSemigroup{gens: append([]PartialPerm(nil), gens...)}
	if len(gens) == 0 {
		return s, nil
	}

	domMax := 0
	for _, g := range gens {
		if g.DomMax() > domMax {
			domMax = g.DomMax()
		}
		if g.ImMax() > domMax {
			domMax = g.ImMax()
		}
	}
	if domMax == 0 {
		// All generators are the empty partial permutation.
		return s, nil
	}
	for i := 1; i <= domMax; i++ {
		s.dom = append(s.dom, i)
	}

	var err error
	s.acIm, s.stIm, s.ogIm, err = ActionComponent(s.dom, s.gens)
	if err != nil {
		return nil, err
	}

	inverses := make([]PartialPerm, len(gens))
	for i, g := range gens {
		inverses[i] = g.Inverse()
	}
	acDom, _, _, err := ActionComponent(s.dom, inverses)
	if err != nil {
		return nil, err
	}

	s.acImIndex = make(map[string]int, len(s.acIm))
	for i, im := range s.acIm {
		if _, dup := s.acImIndex[intsKey(im)]; !dup {
			s.acImIndex[intsKey(im)] = i
		}
	}
	s.acDomSet = make(map[string]bool, len(acDom))
	for _, dom := range acDom {
		s.acDomSet[intsKey(dom)] = true
	}

	var count int
	count, s.scc = StronglyConnectedComponents(s.ogIm)

	s.sccReprs = make([]sccRepr, count)
	found := make([]bool, count)
	for i := range s.acIm {
		c := s.scc[i]
		if found[c] {
			continue
		}
		found[c] = true

		repr, errRepr := s.buildSCCRepr(i)
		if errRepr != nil {
			return nil, errRepr
		}
		s.sccReprs[c] = repr
	}

	s.rClassReprs = RClassRepresentatives(s.stIm, s.gens)

	return s, nil
}

// buildSCCRepr computes the Schreier-generator group of the SCC
// containing component index root, and the intra-SCC trace tree.
func (s *InverseSemigroup) buildSCCRepr(root int) (sccRepr, error) {
	// Re-rooted action component for the Schreier-generator group.
	ac, st, og, err := ActionComponent(s.acIm[root], s.gens)
	if err != nil {
		return sccRepr{}, err
	}

	sg, err := SchreierGenerators(s.gens, s.dom[len(s.dom)-1], ac, st, og)
	if err != nil {
		return sccRepr{}, err
	}

	// BFS trace tree over the global image orbit graph, restricted to
	// the root's SCC.
	repr := sccRepr{
		index:  root,
		schrei: sg,
		parent: map[int]int{},
		label:  map[int]int{},
	}

	queue := []int{root}
	visited := map[int]bool{root: true}
	for qi := 0; qi < len(queue); qi++ {
		i := queue[qi]
		for j := range s.gens {
			k := s.ogIm.Rows[j][i]
			if visited[k] || s.scc[k] != s.scc[root] {
				continue
			}
			visited[k] = true
			repr.parent[k] = i
			repr.label[k] = j
			queue = append(queue, k)
		}
	}

	return repr, nil
}

// trace composes generators along the intra-SCC tree path from the
// representative down to component index i.
func (r sccRepr) trace(i int, gens []PartialPerm, domMax int) PartialPerm {
	res := Identity(domMax)
	for i != r.index {
		res = gens[r.label[i]].Mul(res)
		i = r.parent[i]
	}

	return res
}

// Contains reports membership of p in the inverse semigroup.
//
// The image and domain of p must appear in the respective action
// components (fail-fast); then, for each R-class representative x
// sharing the SCC representative's image, membership holds when
// ~x·p·~u is the identity partial permutation or lies in the SCC's
// Schreier-generator group, where u traces p's image from the SCC
// representative.
func (s *InverseSemigroup) Contains(p PartialPerm) bool {
	if len(s.gens) == 0 {
		return false
	}

	imIdx, ok := s.acImIndex[intsKey(p.Im())]
	if !ok {
		return false
	}
	if !s.acDomSet[intsKey(p.Dom())] {
		return false
	}

	repr := s.sccReprs[s.scc[imIdx]]
	domMax := s.dom[len(s.dom)-1]

	u := repr.trace(imIdx, s.gens, domMax)
	sccIm := s.acIm[repr.index]

	for _, x := range s.rClassReprs {
		if !intsEqual(x.Im(), sccIm) {
			continue
		}

		candidate := x.Inverse().Mul(p).Mul(u.Inverse())
		if candidate.IsIdentity() && len(candidate.Dom()) > 0 {
			return true
		}

		witness, err := candidate.ToPerm(repr.schrei.Degree())
		if err != nil {
			continue
		}
		if repr.schrei.Contains(witness) {
			return true
		}
	}

	return false
}

// Generators returns the generator list. Shared slice; do not mutate.
func (s *InverseSemigroup) Generators() []PartialPerm { return s.gens }
