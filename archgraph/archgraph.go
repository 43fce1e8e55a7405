// This file declares the ArchGraph type and its automorphism
// computation via the canonical-labeling oracle.
//
// Errors:
//
//	ErrUnknownType      - processor/channel type index out of range.
//	ErrUnknownProcessor - channel endpoint out of range.
//	ErrEmptyGraph       - automorphisms of a graph without processors.
package archgraph

import (
	"errors"
	"fmt"

	"github.com/archsym/archsym/bsgs"
	"github.com/archsym/archsym/group"
	"github.com/archsym/archsym/perm"
)

// Sentinel errors for architecture graph construction.
var (
	// ErrUnknownType indicates a processor or channel type index that
	// was never registered.
	ErrUnknownType = errors.New("archgraph: unknown type")

	// ErrUnknownProcessor indicates a channel endpoint that does not
	// exist.
	ErrUnknownProcessor = errors.New("archgraph: unknown processor")

	// ErrEmptyGraph indicates an automorphism request on a graph with
	// no processors.
	ErrEmptyGraph = errors.New("archgraph: graph has no processors")
)

// Channel is one undirected communication link between two processors
// (1-based indices), typed by protocol.
type Channel struct {
	From, To int
	Type     int
}

// ArchGraph is a labeled undirected architecture graph: vertices are
// processing elements typed by capability, edges are channels typed by
// protocol.
type ArchGraph struct {
	procTypes []string
	chanTypes []string

	procs    []int // processor index-1 → type index
	channels []Channel
}

// New returns an empty architecture graph.
func New() *ArchGraph {
	return &ArchGraph{}
}

// AddProcessorType registers a processor type label and returns its
// index; a known label returns the existing index.
func (ag *ArchGraph) AddProcessorType(label string) int {
	for i, l := range ag.procTypes {
		if l == label {
			return i
		}
	}
	ag.procTypes = append(ag.procTypes, label)

	return len(ag.procTypes) - 1
}

// AddChannelType registers a channel type label and returns its index;
// a known label returns the existing index.
func (ag *ArchGraph) AddChannelType(label string) int {
	for i, l := range ag.chanTypes {
		if l == label {
			return i
		}
	}
	ag.chanTypes = append(ag.chanTypes, label)

	return len(ag.chanTypes) - 1
}

// AddProcessor appends a processor of the given type and returns its
// 1-based index.
func (ag *ArchGraph) AddProcessor(typeIdx int) (int, error) {
	if typeIdx < 0 || typeIdx >= len(ag.procTypes) {
		return 0, fmt.Errorf("%w: processor type %d", ErrUnknownType, typeIdx)
	}
	ag.procs = append(ag.procs, typeIdx)

	return len(ag.procs), nil
}

// AddChannel connects two processors with a channel of the given type.
func (ag *ArchGraph) AddChannel(from, to, typeIdx int) error {
	if typeIdx < 0 || typeIdx >= len(ag.chanTypes) {
		return fmt.Errorf("%w: channel type %d", ErrUnknownType, typeIdx)
	}
	if from < 1 || from > len(ag.procs) {
		return fmt.Errorf("%w: endpoint %d", ErrUnknownProcessor, from)
	}
	if to < 1 || to > len(ag.procs) {
		return fmt.Errorf("%w: endpoint %d", ErrUnknownProcessor, to)
	}
	ag.channels = append(ag.channels, Channel{From: from, To: to, Type: typeIdx})

	return nil
}

// NumProcessors reports the processor count.
func (ag *ArchGraph) NumProcessors() int { return len(ag.procs) }

// NumChannels reports the channel count.
func (ag *ArchGraph) NumChannels() int { return len(ag.channels) }

// ProcessorType returns the type index of processor i (1-based).
func (ag *ArchGraph) ProcessorType(i int) int { return ag.procs[i-1] }

// Channels returns the channel list. Shared slice; do not mutate.
func (ag *ArchGraph) Channels() []Channel { return ag.channels }

// Option configures automorphism computation.
type Option func(*automOptions)

type automOptions struct {
	labeler Labeler
	bsgs    []bsgs.Option
}

// WithLabeler substitutes the canonical-labeling oracle.
func WithLabeler(l Labeler) Option {
	return func(o *automOptions) {
		if l != nil {
			o.labeler = l
		}
	}
}

// WithBSGSOptions forwards construction options to the automorphism
// group's BSGS.
func WithBSGSOptions(opts ...bsgs.Option) Option {
	return func(o *automOptions) { o.bsgs = opts }
}

// Automorphisms computes the automorphism group of the colored graph:
// vertex permutations preserving processor types, adjacency and
// channel types.
//
// Channel types are folded into vertex colors by the stacked-copies
// encoding: ⌊log₂ t⌋+1 copies of the vertex set (t = number of channel
// types) joined by vertical connectors, with the level-ℓ copy carrying
// exactly the channels whose (1-based) type has bit ℓ set. The oracle
// solves the resulting vertex-colored graph; its generators restricted
// to the bottom copy generate the channel-and-type-preserving group.
func (ag *ArchGraph) Automorphisms(opts ...Option) (*group.PermGroup, error) {
	n := len(ag.procs)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	o := automOptions{labeler: DefaultLabeler()}
	for _, opt := range opts {
		opt(&o)
	}

	// One copy per bit of the largest 1-based channel type value.
	levels := 1
	for cts := len(ag.chanTypes); cts > 1; cts >>= 1 {
		levels++
	}

	total := n * levels
	var edges [][2]int
	colors := make([]int, total)

	numProcTypes := len(ag.procTypes)
	if numProcTypes == 0 {
		numProcTypes = 1
	}

	for level := 0; level < levels; level++ {
		// Vertical connectors pair each vertex with its lower copy.
		if level > 0 {
			for v := 0; v < n; v++ {
				edges = append(edges, [2]int{v + level*n, v + (level-1)*n})
			}
		}

		// Horizontal channels whose 1-based type has this bit set.
		for _, ch := range ag.channels {
			if (ch.Type+1)&(1<<level) == 0 {
				continue
			}
			edges = append(edges, [2]int{
				ch.From - 1 + level*n,
				ch.To - 1 + level*n,
			})
		}

		// Colors separate both the copies and the processor types.
		for v := 0; v < n; v++ {
			t := 0
			if len(ag.procTypes) > 0 {
				t = ag.procs[v]
			}
			colors[v+level*n] = level*numProcTypes + t
		}
	}

	stacked, err := o.labeler.Automorphisms(total, edges, colors)
	if err != nil {
		return nil, err
	}

	// Restrict generators to the bottom copy; colors force the levels
	// to map onto themselves.
	var gens perm.Set
	for i := 0; i < stacked.Len(); i++ {
		images := make([]int, n)
		for v := 1; v <= n; v++ {
			images[v-1] = stacked.At(i).Apply(v)
		}
		restricted, errNew := perm.New(images)
		if errNew != nil {
			return nil, fmt.Errorf("archgraph: oracle generator crosses levels: %w", errNew)
		}
		gens.Push(restricted)
	}
	gens.DropIdentity()
	gens.MakeUnique()

	return group.FromGenerators(n, gens, o.bsgs...)
}
