// This file implements the explicit transversal store: the finished
// transversal permutation of every orbit point is computed as the
// orbit grows and kept verbatim.
package schreier

import (
	"fmt"

	"github.com/archsym/archsym/perm"
)

// explicit is the direct-lookup transversal store.
type explicit struct {
	degree int
	root   int
	nodes  []int // discovery order, root first

	orbit  map[int]perm.Perm // node → transversal
	labels perm.Set
}

func newExplicit(degree int) *explicit {
	return &explicit{
		degree: degree,
		orbit:  make(map[int]perm.Perm),
	}
}

func (e *explicit) Degree() int { return e.degree }

func (e *explicit) Root() int { return e.root }

func (e *explicit) Nodes() []int {
	nodes := make([]int, len(e.nodes))
	copy(nodes, e.nodes)

	return nodes
}

func (e *explicit) Labels() perm.Set { return e.labels }

func (e *explicit) Contains(node int) bool {
	_, ok := e.orbit[node]

	return ok
}

// Incoming always reports false: the explicit store does not retain
// back-edges.
func (e *explicit) Incoming(int, perm.Perm) bool { return false }

// Transversal is a map lookup.
// Complexity: O(1).
func (e *explicit) Transversal(origin int) perm.Perm {
	u, ok := e.orbit[origin]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrNotInOrbit, origin))
	}

	return u
}

func (e *explicit) createRoot(root int) {
	e.root = root
	e.nodes = append(e.nodes[:0], root)
	e.orbit[root] = perm.Identity(e.degree)
}

func (e *explicit) createLabels(labels perm.Set) { e.labels = labels }

// createEdge composes the new transversal immediately:
// u_origin = u_destination · label, so u_origin(root) = origin.
func (e *explicit) createEdge(origin, destination, label int) {
	e.orbit[origin] = e.orbit[destination].Mul(e.labels.At(label))
	e.nodes = append(e.nodes, origin)
}
