// This file declares the composable System tree: Leaf, Cluster and
// Super nodes with cached automorphism groups and representative
// state.
//
// Errors:
//
//	ErrCacheInvalid - Repr on a node whose automorphism cache was
//	                  reset after InitRepr (programmer error).
package archgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/archsym/archsym/group"
	"github.com/archsym/archsym/tasks"
)

// ErrCacheInvalid indicates a representative request against an
// invalidated automorphism cache.
var ErrCacheInvalid = errors.New("archgraph: repr cache invalidated")

// System is a composable source of architecture automorphisms.
//
// Every node walks the state machine
//
//	UNINITIALIZED → AUTO_READY (Automorphisms) → REPR_READY (InitRepr)
//
// with ResetRepr dropping back to AUTO_READY and ResetAutomorphisms to
// UNINITIALIZED. Repr initializes implicitly when needed.
type System interface {
	NumProcessors() int
	NumChannels() int

	Automorphisms(opts ...Option) (*group.PermGroup, error)
	AutomorphismsReady() bool
	ResetAutomorphisms()

	InitRepr(opts ...Option) error
	ReprReady() bool
	ResetRepr()

	// Repr maps the allocation to a canonical orbit representative,
	// optionally deduplicating through the orbits cache.
	Repr(a tasks.Allocation, orbits *tasks.Orbits, opts ...tasks.Option) (tasks.Mapping, error)

	// GAP renders the node as a GAP expression for cross-checking.
	GAP() string
}

// automCache is the shared node state.
type automCache struct {
	autom      *group.PermGroup
	automValid bool
	reprValid  bool
}

func (c *automCache) AutomorphismsReady() bool { return c.automValid }

func (c *automCache) ReprReady() bool { return c.reprValid }

func (c *automCache) ResetAutomorphisms() {
	c.autom = nil
	c.automValid = false
}

func (c *automCache) ResetRepr() { c.reprValid = false }

// cachedRepr runs the generic representative dispatch shared by Leaf
// and Super nodes.
func (c *automCache) cachedRepr(owner System, a tasks.Allocation, orbits *tasks.Orbits, opts ...tasks.Option) (tasks.Mapping, error) {
	if c.reprValid && !c.automValid {
		return tasks.Mapping{}, fmt.Errorf("%w: automorphisms reset after InitRepr", ErrCacheInvalid)
	}
	if !c.reprValid {
		if err := owner.InitRepr(); err != nil {
			return tasks.Mapping{}, err
		}
	}

	return tasks.Repr(c.autom, a, orbits, opts...)
}

// Leaf wraps a single architecture graph (or an explicit group).
type Leaf struct {
	graph *ArchGraph
	cache automCache
}

// NewLeaf builds a leaf over an architecture graph.
func NewLeaf(graph *ArchGraph) *Leaf {
	return &Leaf{graph: graph}
}

// NewLeafGroup builds a leaf whose automorphisms are given explicitly;
// its processor count is the group degree and it carries no channels.
func NewLeafGroup(g *group.PermGroup) *Leaf {
	l := &Leaf{}
	l.cache.autom = g
	l.cache.automValid = true

	return l
}

// Graph returns the wrapped architecture graph, nil for explicit-group
// leaves.
func (l *Leaf) Graph() *ArchGraph { return l.graph }

// NumProcessors reports the processor count.
func (l *Leaf) NumProcessors() int {
	if l.graph != nil {
		return l.graph.NumProcessors()
	}

	return l.cache.autom.Degree()
}

// NumChannels reports the channel count.
func (l *Leaf) NumChannels() int {
	if l.graph != nil {
		return l.graph.NumChannels()
	}

	return 0
}

// Automorphisms computes (and caches) the graph's automorphism group.
func (l *Leaf) Automorphisms(opts ...Option) (*group.PermGroup, error) {
	if l.cache.automValid {
		return l.cache.autom, nil
	}

	autom, err := l.graph.Automorphisms(opts...)
	if err != nil {
		return nil, err
	}
	l.cache.autom = autom
	l.cache.automValid = true

	return autom, nil
}

// AutomorphismsReady reports whether the group is cached.
func (l *Leaf) AutomorphismsReady() bool { return l.cache.AutomorphismsReady() }

// ResetAutomorphisms invalidates the cached group. A leaf built from
// an explicit group cannot be recomputed and keeps its group.
func (l *Leaf) ResetAutomorphisms() {
	if l.graph == nil {
		return
	}
	l.cache.ResetAutomorphisms()
}

// InitRepr prepares representative computation (idempotent); it also
// repairs a cache whose automorphisms were reset after a prior init.
func (l *Leaf) InitRepr(opts ...Option) error {
	if l.cache.reprValid && l.cache.automValid {
		return nil
	}
	if _, err := l.Automorphisms(opts...); err != nil {
		return err
	}
	l.cache.reprValid = true

	return nil
}

// ReprReady reports whether InitRepr ran since the last reset.
func (l *Leaf) ReprReady() bool { return l.cache.ReprReady() }

// ResetRepr drops back to AUTO_READY.
func (l *Leaf) ResetRepr() { l.cache.ResetRepr() }

// Repr maps the allocation to its canonical representative.
func (l *Leaf) Repr(a tasks.Allocation, orbits *tasks.Orbits, opts ...tasks.Option) (tasks.Mapping, error) {
	return l.cache.cachedRepr(l, a, orbits, opts...)
}

// GAP renders the cached (or freshly computed) group as a GAP Group
// expression.
func (l *Leaf) GAP() string {
	autom, err := l.Automorphisms()
	if err != nil {
		return "Group(())"
	}

	return gapGroup(autom)
}

// Cluster composes children side by side: automorphisms form the
// direct product, allocations are mapped child by child with an
// accumulating processor offset.
type Cluster struct {
	children []System
	cache    automCache
}

// NewCluster builds a cluster over the given children.
func NewCluster(children ...System) *Cluster {
	return &Cluster{children: children}
}

// Children returns the child systems. Shared slice; do not mutate.
func (c *Cluster) Children() []System { return c.children }

// NumProcessors sums the children.
func (c *Cluster) NumProcessors() int {
	res := 0
	for _, child := range c.children {
		res += child.NumProcessors()
	}

	return res
}

// NumChannels sums the children.
func (c *Cluster) NumChannels() int {
	res := 0
	for _, child := range c.children {
		res += child.NumChannels()
	}

	return res
}

// Automorphisms composes the children's groups as a direct product.
func (c *Cluster) Automorphisms(opts ...Option) (*group.PermGroup, error) {
	if c.cache.automValid {
		return c.cache.autom, nil
	}

	factors := make([]*group.PermGroup, len(c.children))
	for i, child := range c.children {
		autom, err := child.Automorphisms(opts...)
		if err != nil {
			return nil, err
		}
		factors[i] = autom
	}

	autom, err := group.DirectProduct(factors)
	if err != nil {
		return nil, err
	}
	c.cache.autom = autom
	c.cache.automValid = true

	return autom, nil
}

// AutomorphismsReady reports whether the product is cached.
func (c *Cluster) AutomorphismsReady() bool { return c.cache.AutomorphismsReady() }

// ResetAutomorphisms invalidates this node and all children.
func (c *Cluster) ResetAutomorphisms() {
	c.cache.ResetAutomorphisms()
	for _, child := range c.children {
		child.ResetAutomorphisms()
	}
}

// InitRepr prepares every child for representative computation.
func (c *Cluster) InitRepr(opts ...Option) error {
	for _, child := range c.children {
		if err := child.InitRepr(opts...); err != nil {
			return err
		}
	}
	c.cache.reprValid = true

	return nil
}

// ReprReady reports whether InitRepr ran since the last reset.
func (c *Cluster) ReprReady() bool { return c.cache.ReprReady() }

// ResetRepr drops this node and all children back to AUTO_READY.
func (c *Cluster) ResetRepr() {
	c.cache.ResetRepr()
	for _, child := range c.children {
		child.ResetRepr()
	}
}

// Repr maps each child's slice of the PE range in order, accumulating
// the processor offset, and registers the final representative.
func (c *Cluster) Repr(a tasks.Allocation, orbits *tasks.Orbits, opts ...tasks.Option) (tasks.Mapping, error) {
	if !c.cache.reprValid {
		if err := c.InitRepr(); err != nil {
			return tasks.Mapping{}, err
		}
	}

	base := tasks.DefaultOptions()
	for _, opt := range opts {
		opt(&base)
	}

	current := a.Clone()
	offset := base.Offset
	for _, child := range c.children {
		childOpts := append(append([]tasks.Option(nil), opts...), tasks.WithOffset(offset))

		m, err := child.Repr(current, nil, childOpts...)
		if err != nil {
			return tasks.Mapping{}, err
		}
		current = m.Representative
		offset += child.NumProcessors()
	}

	res := tasks.Mapping{Allocation: a.Clone(), Representative: current}
	if orbits != nil {
		orbits.Insert(res)
	}

	return res, nil
}

// GAP renders the cluster as a DirectProduct expression.
func (c *Cluster) GAP() string {
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		parts[i] = child.GAP()
	}

	return "DirectProduct(" + strings.Join(parts, ",") + ")"
}

// Super composes a prototype under an outer graph: every outer
// processor carries one copy of the prototype, and the automorphism
// group is the wreath product proto ≀ outer.
type Super struct {
	outer System
	proto System
	cache automCache
}

// NewSuper builds a uniform super-graph node.
func NewSuper(outer, proto System) *Super {
	return &Super{outer: outer, proto: proto}
}

// NumProcessors multiplies outer slots by prototype size.
func (s *Super) NumProcessors() int {
	return s.outer.NumProcessors() * s.proto.NumProcessors()
}

// NumChannels counts the outer channels plus one prototype's channels
// per outer slot.
func (s *Super) NumChannels() int {
	return s.outer.NumChannels() + s.outer.NumProcessors()*s.proto.NumChannels()
}

// Automorphisms composes the wreath product proto ≀ outer.
func (s *Super) Automorphisms(opts ...Option) (*group.PermGroup, error) {
	if s.cache.automValid {
		return s.cache.autom, nil
	}

	protoAut, err := s.proto.Automorphisms(opts...)
	if err != nil {
		return nil, err
	}
	outerAut, err := s.outer.Automorphisms(opts...)
	if err != nil {
		return nil, err
	}

	autom, err := group.WreathProduct(protoAut, outerAut)
	if err != nil {
		return nil, err
	}
	s.cache.autom = autom
	s.cache.automValid = true

	return autom, nil
}

// AutomorphismsReady reports whether the product is cached.
func (s *Super) AutomorphismsReady() bool { return s.cache.AutomorphismsReady() }

// ResetAutomorphisms invalidates this node and both children.
func (s *Super) ResetAutomorphisms() {
	s.cache.ResetAutomorphisms()
	s.outer.ResetAutomorphisms()
	s.proto.ResetAutomorphisms()
}

// InitRepr prepares representative computation (idempotent); it also
// repairs a cache whose automorphisms were reset after a prior init.
func (s *Super) InitRepr(opts ...Option) error {
	if s.cache.reprValid && s.cache.automValid {
		return nil
	}
	if _, err := s.Automorphisms(opts...); err != nil {
		return err
	}
	s.cache.reprValid = true

	return nil
}

// ReprReady reports whether InitRepr ran since the last reset.
func (s *Super) ReprReady() bool { return s.cache.ReprReady() }

// ResetRepr drops back to AUTO_READY.
func (s *Super) ResetRepr() { s.cache.ResetRepr() }

// Repr maps the allocation under the composed wreath group.
func (s *Super) Repr(a tasks.Allocation, orbits *tasks.Orbits, opts ...tasks.Option) (tasks.Mapping, error) {
	return s.cache.cachedRepr(s, a, orbits, opts...)
}

// GAP renders the node as a WreathProduct expression.
func (s *Super) GAP() string {
	return "WreathProduct(" + s.proto.GAP() + "," + s.outer.GAP() + ")"
}

// gapGroup renders a permutation group as a GAP Group expression.
func gapGroup(g *group.PermGroup) string {
	gens := g.Generators()
	if gens.Empty() {
		return "Group(())"
	}

	parts := make([]string, gens.Len())
	for i := 0; i < gens.Len(); i++ {
		parts[i] = strings.ReplaceAll(gens.At(i).String(), " ", ",")
	}

	return "Group(" + strings.Join(parts, ",") + ")"
}
