// Package archgraph models parallel-computing architectures as typed
// graphs and exposes their symmetry:
//
//   - ArchGraph — processors typed by capability, channels typed by
//     protocol; its automorphism group (preserving both typings) is
//     obtained through a canonical-labeling oracle behind the Labeler
//     interface, with edge types encoded by the stacked-copies
//     construction.
//   - System — a composable tree of automorphism sources: a Leaf wraps
//     one graph (or an explicit group), a Cluster composes children as
//     a direct product, a Super composes a prototype under an outer
//     graph as a wreath product. Automorphism groups and
//     representative state are cached per node and invalidated by the
//     Reset methods.
//   - Loader — a small declarative YAML surface describing processor
//     and channel types, processors, channels, and cluster/super
//     composition.
//   - DOT export for visual inspection.
//
// Orbit representatives of task allocations are computed by package
// tasks; System.Repr dispatches there with the node's cached group,
// and a Cluster maps each child's slice of the allocation in order
// with an accumulating processor offset.
package archgraph
