// This file implements the declarative YAML architecture description
// loader.
//
// A description is a tree of nodes. A leaf node lists types,
// processors and channels; composite nodes carry either a cluster
// child list or a super pair:
//
//	processor_types: [P]
//	channel_types: [link]
//	processors: [P, P, P, P]
//	channels:
//	  - {from: 1, to: 2, type: link}
//	  - {from: 2, to: 3, type: link}
//	  - {from: 3, to: 4, type: link}
//	  - {from: 4, to: 1, type: link}
//
//	cluster:
//	  - processors: [P]
//	    ...
//
//	super:
//	  outer: { ... }
//	  proto: { ... }
package archgraph

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for description loading.
var (
	// ErrParse indicates malformed YAML.
	ErrParse = errors.New("archgraph: description parse error")

	// ErrDescription indicates a structurally invalid description.
	ErrDescription = errors.New("archgraph: invalid description")
)

// channelSpec is one channel entry of a leaf node.
type channelSpec struct {
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
	Type string `yaml:"type"`
}

// superSpec is the outer/proto pair of a super node.
type superSpec struct {
	Outer *nodeSpec `yaml:"outer"`
	Proto *nodeSpec `yaml:"proto"`
}

// nodeSpec is the raw YAML shape of one description node.
type nodeSpec struct {
	Name string `yaml:"name"`

	ProcessorTypes []string      `yaml:"processor_types"`
	ChannelTypes   []string      `yaml:"channel_types"`
	Processors     []string      `yaml:"processors"`
	Channels       []channelSpec `yaml:"channels"`

	Cluster []nodeSpec `yaml:"cluster"`
	Super   *superSpec `yaml:"super"`
}

// Load parses an architecture description into a System tree.
func Load(r io.Reader) (System, error) {
	var spec nodeSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return buildNode(&spec)
}

// LoadFile parses the description in the named file.
func LoadFile(path string) (System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// buildNode recursively converts a nodeSpec into a System.
func buildNode(spec *nodeSpec) (System, error) {
	composite := 0
	if len(spec.Cluster) > 0 {
		composite++
	}
	if spec.Super != nil {
		composite++
	}
	leaf := len(spec.Processors) > 0

	switch {
	case composite > 1, composite == 1 && leaf:
		return nil, fmt.Errorf("%w: node %q mixes leaf, cluster and super forms",
			ErrDescription, spec.Name)
	case composite == 0 && !leaf:
		return nil, fmt.Errorf("%w: node %q declares no processors", ErrDescription, spec.Name)
	}

	if len(spec.Cluster) > 0 {
		children := make([]System, len(spec.Cluster))
		for i := range spec.Cluster {
			child, err := buildNode(&spec.Cluster[i])
			if err != nil {
				return nil, err
			}
			children[i] = child
		}

		return NewCluster(children...), nil
	}

	if spec.Super != nil {
		if spec.Super.Outer == nil || spec.Super.Proto == nil {
			return nil, fmt.Errorf("%w: node %q super requires outer and proto",
				ErrDescription, spec.Name)
		}

		outer, err := buildNode(spec.Super.Outer)
		if err != nil {
			return nil, err
		}
		proto, err := buildNode(spec.Super.Proto)
		if err != nil {
			return nil, err
		}

		return NewSuper(outer, proto), nil
	}

	return buildLeaf(spec)
}

// buildLeaf converts a leaf nodeSpec into a Leaf system.
func buildLeaf(spec *nodeSpec) (System, error) {
	ag := New()

	procTypes := map[string]int{}
	for _, label := range spec.ProcessorTypes {
		procTypes[label] = ag.AddProcessorType(label)
	}
	chanTypes := map[string]int{}
	for _, label := range spec.ChannelTypes {
		chanTypes[label] = ag.AddChannelType(label)
	}

	for _, label := range spec.Processors {
		t, ok := procTypes[label]
		if !ok {
			// Undeclared labels are registered on first use.
			t = ag.AddProcessorType(label)
			procTypes[label] = t
		}
		if _, err := ag.AddProcessor(t); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDescription, err)
		}
	}

	for _, ch := range spec.Channels {
		t, ok := chanTypes[ch.Type]
		if !ok {
			t = ag.AddChannelType(ch.Type)
			chanTypes[ch.Type] = t
		}
		if err := ag.AddChannel(ch.From, ch.To, t); err != nil {
			return nil, fmt.Errorf("%w: channel %d-%d: %v", ErrDescription, ch.From, ch.To, err)
		}
	}

	return NewLeaf(ag), nil
}
