// This file implements the Schreier-tree transversal store: one
// back-edge and one label index per orbit point, transversals rebuilt
// by walking root-wards.
package schreier

import (
	"fmt"

	"github.com/archsym/archsym/perm"
)

// tree is the back-edge transversal store.
type tree struct {
	degree int
	root   int
	nodes  []int // discovery order, root first

	parents    map[int]int // node → parent node
	edgeLabels map[int]int // node → index into labels
	labels     perm.Set
}

func newTree(degree int) *tree {
	return &tree{
		degree:     degree,
		parents:    make(map[int]int),
		edgeLabels: make(map[int]int),
	}
}

func (t *tree) Degree() int { return t.degree }

func (t *tree) Root() int { return t.root }

func (t *tree) Nodes() []int {
	nodes := make([]int, len(t.nodes))
	copy(nodes, t.nodes)

	return nodes
}

func (t *tree) Labels() perm.Set { return t.labels }

func (t *tree) Contains(node int) bool {
	if node == t.root {
		return len(t.nodes) > 0
	}
	_, ok := t.parents[node]

	return ok
}

// Incoming reports whether edge labels the back-edge into node, i.e.
// whether edge maps node to one of node's children within the tree.
func (t *tree) Incoming(node int, edge perm.Perm) bool {
	label, ok := t.edgeLabels[edge.Apply(node)]
	if !ok {
		return false
	}

	return t.labels.At(label).Equal(edge)
}

// Transversal walks from origin to the root, composing labels on the
// left: the result u satisfies u(root) = origin.
// Complexity: O(depth · n).
func (t *tree) Transversal(origin int) perm.Perm {
	if !t.Contains(origin) {
		panic(fmt.Errorf("%w: %d", ErrNotInOrbit, origin))
	}

	res := perm.Identity(t.degree)
	for cur := origin; cur != t.root; cur = t.parents[cur] {
		res = t.labels.At(t.edgeLabels[cur]).Mul(res)
	}

	return res
}

func (t *tree) createRoot(root int) {
	t.root = root
	t.nodes = append(t.nodes[:0], root)
}

func (t *tree) createLabels(labels perm.Set) { t.labels = labels }

func (t *tree) createEdge(origin, destination, label int) {
	t.parents[origin] = destination
	t.edgeLabels[origin] = label
	t.nodes = append(t.nodes, origin)
}
