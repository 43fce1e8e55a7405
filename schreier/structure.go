// This file declares the Structure interface, the variant selector and
// the sentinel errors shared by both transversal stores.
package schreier

import (
	"errors"

	"github.com/archsym/archsym/perm"
)

// Sentinel errors for orbit and transversal operations.
var (
	// ErrRootOutOfRange indicates a root point outside {1..degree}.
	ErrRootOutOfRange = errors.New("schreier: root out of range")

	// ErrNotInOrbit indicates a transversal request for a point outside
	// the enumerated orbit. This is a programmer error (callers gate on
	// Contains) and is used as a panic value.
	ErrNotInOrbit = errors.New("schreier: point not in orbit")
)

// Kind selects the transversal store variant at construction time.
type Kind int

const (
	// Tree stores back-edges and recomposes transversals on demand.
	Tree Kind = iota

	// Explicit stores a ready transversal permutation per orbit point.
	Explicit
)

// String renders the variant name for logs and option dumps.
func (k Kind) String() string {
	switch k {
	case Tree:
		return "schreier-tree"
	case Explicit:
		return "explicit-transversals"
	default:
		return "unknown"
	}
}

// Structure is the common contract of the two transversal stores.
//
// A Structure is created empty for a degree, then populated exactly
// once by the orbit engine (Build); afterwards it is read-only. The
// label set is fixed at population time.
type Structure interface {
	// Degree reports the degree of the underlying permutations.
	Degree() int

	// Root returns the orbit root.
	Root() int

	// Nodes returns the orbit in discovery (BFS) order, root first.
	Nodes() []int

	// Labels returns the label set the orbit was enumerated under.
	Labels() perm.Set

	// Contains reports whether node lies in the orbit.
	Contains(node int) bool

	// Incoming reports whether the back-edge into node is labelled by
	// edge. The explicit store keeps no back-edges and reports false.
	Incoming(node int, edge perm.Perm) bool

	// Transversal returns u_origin with u_origin(Root()) = origin.
	// Panics with ErrNotInOrbit if origin is not an orbit member.
	Transversal(origin int) perm.Perm

	// population hooks, driven by Build
	createRoot(root int)
	createLabels(labels perm.Set)
	createEdge(origin, destination, label int)
}

// New returns an empty structure of the chosen variant.
func New(kind Kind, degree int) Structure {
	switch kind {
	case Explicit:
		return newExplicit(degree)
	default:
		return newTree(degree)
	}
}
