// This file implements the EEMP machinery: enumeration of the action
// component of a point set under partial permutation products, the
// Schreier tree and orbit graph of that action, Schreier traces,
// strongly connected components, and the Schreier-generator groups of
// a component.
package pperm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/archsym/archsym/group"
	"github.com/archsym/archsym/perm"
)

// ErrEmptyGenerators indicates an action-component request with no
// generators.
var ErrEmptyGenerators = errors.New("pperm: empty generator list")

// TreeEdge is one back-edge of the action Schreier tree: component
// element k+1 was discovered from element Parent by generator Gen.
type TreeEdge struct {
	Parent int
	Gen    int
}

// SchreierTree records how every component element (beyond the root)
// was first reached.
type SchreierTree struct {
	DomMax int
	Edges  []TreeEdge
}

// OrbitGraph is the per-generator destination table of the action:
// Rows[g][i] is the component index that generator g sends element i
// to.
type OrbitGraph struct {
	DomMax int
	Rows   [][]int
}

// hashSeed matches the golden-ratio folding used across the module.
const hashSeed = 0x9e3779b97f4a7c15

// intsHash folds a sorted point set into a bucket hash.
func intsHash(xs []int) uint64 {
	h := uint64(len(xs))
	for _, x := range xs {
		h ^= uint64(x) + hashSeed + (h << 6) + (h >> 2)
	}

	return h
}

// intsKey is the exact canonical encoding of a sorted point set.
func intsKey(xs []int) string {
	var sb strings.Builder
	for _, x := range xs {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(',')
	}

	return sb.String()
}

// intsEqual compares two sorted point sets.
func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// componentElem pairs a component index with its bucket hash.
type componentElem struct {
	id   int
	hash uint64
}

// ActionComponent enumerates the component of alpha under right
// multiplication by the generators: the BFS closure of image sets. It
// returns the component (alpha first), the Schreier tree of discovery
// edges and the orbit graph.
//
// Visited sets are deduplicated through per-size hash buckets with
// exact confirmation, which keeps very large components cheap.
// Complexity: O(|component|·|generators|) image computations.
func ActionComponent(alpha []int, gens []PartialPerm) ([][]int, SchreierTree, OrbitGraph, error) {
	if len(gens) == 0 {
		return nil, SchreierTree{}, OrbitGraph{}, ErrEmptyGenerators
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

	component := [][]int{append([]int(nil), alpha...)}
	buckets := map[int][]componentElem{
		len(alpha): {{id: 0, hash: intsHash(alpha)}},
	}

	// lookup resolves beta's component index, adding it when new.
	lookup := func(beta []int) (int, bool) {
		hash := intsHash(beta)
		for _, cand := range buckets[len(beta)] {
			if cand.hash == hash && intsEqual(component[cand.id], beta) {
				return cand.id, true
			}
		}

		id := len(component)
		component = append(component, beta)
		buckets[len(beta)] = append(buckets[len(beta)], componentElem{id: id, hash: hash})

		return id, false
	}

	tree := SchreierTree{DomMax: domMax}
	graph := OrbitGraph{DomMax: domMax, Rows: make([][]int, len(gens))}

	for i := 0; i < len(component); i++ {
		beta := component[i]
		for j, gen := range gens {
			betaPrime := gen.Image(beta)

			id, known := lookup(betaPrime)
			if !known {
				tree.Edges = append(tree.Edges, TreeEdge{Parent: i, Gen: j})
			}
			graph.Rows[j] = append(graph.Rows[j], id)
		}
	}

	return component, tree, graph, nil
}

// SchreierTrace reconstructs the partial permutation carrying the
// component root to its i-th element by composing generators along the
// tree path.
func SchreierTrace(i int, st SchreierTree, gens []PartialPerm) PartialPerm {
	res := Identity(st.DomMax)

	for i > 0 {
		edge := st.Edges[i-1]
		res = gens[edge.Gen].Mul(res)
		i = edge.Parent
	}

	return res
}

// RClassRepresentatives returns one partial permutation per component
// element: the Schreier trace from the root.
func RClassRepresentatives(st SchreierTree, gens []PartialPerm) []PartialPerm {
	res := make([]PartialPerm, len(st.Edges)+1)
	for i := range res {
		res[i] = SchreierTrace(i, st, gens)
	}

	return res
}

// StronglyConnectedComponents labels the orbit graph's nodes with
// component ids via Tarjan's algorithm (iterative). Returns the
// component count and the per-node labels.
func StronglyConnectedComponents(og OrbitGraph) (int, []int) {
	n := 0
	if len(og.Rows) > 0 {
		n = len(og.Rows[0])
	}

	const unvisited = -1

	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = unvisited
		comp[i] = unvisited
	}

	var stack []int
	count := 0
	next := 0

	type frame struct {
		node, edge int
	}

	for start := 0; start < n; start++ {
		if index[start] != unvisited {
			continue
		}

		frames := []frame{{node: start}}
		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			v := f.node

			if f.edge == 0 {
				index[v] = next
				low[v] = next
				next++
				stack = append(stack, v)
				onStack[v] = true
			}

			advanced := false
			for f.edge < len(og.Rows) {
				w := og.Rows[f.edge][v]
				f.edge++

				if index[w] == unvisited {
					frames = append(frames, frame{node: w})
					advanced = true
					break
				}
				if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
			}
			if advanced {
				continue
			}

			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = count
					if w == v {
						break
					}
				}
				count++
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].node
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}
		}
	}

	return count, comp
}

// SchreierGenerators builds the permutation group generated by the
// Schreier generators of the component's root SCC: traces closed back
// into the SCC, extended by the identity to degree domMax.
func SchreierGenerators(gens []PartialPerm, domMax int, component [][]int, st SchreierTree, og OrbitGraph) (*group.PermGroup, error) {
	if domMax < 1 {
		return group.Trivial(1), nil
	}

	_, scc := StronglyConnectedComponents(og)
	rootSCC := scc[0]

	var permGens perm.Set
	for i := range component {
		if scc[i] != rootSCC {
			continue
		}

		ui := SchreierTrace(i, st, gens)
		for j := range gens {
			k := og.Rows[j][i]
			if scc[k] != rootSCC {
				continue
			}

			sg := ui.Mul(gens[j]).Mul(SchreierTrace(k, st, gens).Inverse())
			p, err := sg.ToPerm(domMax)
			if err != nil {
				continue // properly partial on the root set; no witness
			}
			if !p.IsIdentity() {
				permGens.Push(p)
			}
		}
	}
	permGens.MakeUnique()

	return group.FromGenerators(domMax, permGens)
}
