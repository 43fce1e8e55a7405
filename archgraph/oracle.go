// This file declares the canonical-labeling oracle interface and the
// built-in exhaustive fallback used for small graphs and tests.
package archgraph

import (
	"errors"
	"fmt"

	"github.com/archsym/archsym/perm"
)

// ErrDegreeTooLarge indicates a graph beyond the built-in oracle's
// exhaustive-search cap; plug in an external Labeler for such graphs.
var ErrDegreeTooLarge = errors.New("archgraph: graph too large for built-in labeler")

// Labeler computes automorphism generators of a vertex-colored graph.
// Vertices are 0-based here (the oracle boundary); edges are
// undirected pairs and colors arbitrary small integers. The returned
// permutations act 1-based on {1..n}.
//
// External canonical-labeling tools are wrapped behind this interface;
// their calls must be serialized by the wrapper if used concurrently.
type Labeler interface {
	Automorphisms(n int, edges [][2]int, colors []int) (perm.Set, error)
}

// DefaultBruteForceCap bounds the built-in oracle's vertex count.
const DefaultBruteForceCap = 24

// BruteForce is an exhaustive backtracking Labeler: it enumerates all
// color-preserving vertex bijections that preserve adjacency. Only
// suitable for small graphs; the cap guards against accidental blowup.
type BruteForce struct {
	// MaxVertices caps the search; 0 selects DefaultBruteForceCap.
	MaxVertices int
}

// DefaultLabeler returns the built-in exhaustive oracle.
func DefaultLabeler() Labeler { return BruteForce{} }

// Automorphisms enumerates every automorphism of the colored graph and
// returns the non-identity ones as a generating set.
func (bf BruteForce) Automorphisms(n int, edges [][2]int, colors []int) (perm.Set, error) {
	limit := bf.MaxVertices
	if limit == 0 {
		limit = DefaultBruteForceCap
	}
	if n > limit {
		return perm.Set{}, fmt.Errorf("%w: %d vertices (cap %d)", ErrDegreeTooLarge, n, limit)
	}
	if n == 0 {
		return perm.Set{}, nil
	}

	// Adjacency matrix with edge multiplicity ignored.
	adj := make([][]bool, n)
	degree := make([]int, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		if !adj[e[0]][e[1]] {
			degree[e[0]]++
			degree[e[1]]++
		}
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	color := func(v int) int {
		if v < len(colors) {
			return colors[v]
		}

		return 0
	}

	images := make([]int, n)
	used := make([]bool, n)
	for i := range images {
		images[i] = -1
	}

	var gens perm.Set

	var assign func(v int) error
	assign = func(v int) error {
		if v == n {
			imgs := make([]int, n)
			for i, im := range images {
				imgs[i] = im + 1
			}
			p, err := perm.New(imgs)
			if err != nil {
				return err
			}
			if !p.IsIdentity() {
				gens.Push(p)
			}

			return nil
		}

		for w := 0; w < n; w++ {
			if used[w] || color(w) != color(v) || degree[w] != degree[v] {
				continue
			}

			consistent := true
			for u := 0; u < v; u++ {
				if adj[v][u] != adj[w][images[u]] {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}

			images[v] = w
			used[w] = true
			if err := assign(v + 1); err != nil {
				return err
			}
			images[v] = -1
			used[w] = false
		}

		return nil
	}

	if err := assign(0); err != nil {
		return perm.Set{}, err
	}

	return gens, nil
}
