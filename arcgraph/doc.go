// Package arcgraph provides the low-level arc-list graph store used by the
// prize-collecting Steiner packages of steinerx.
//
// The store is a flat, integer-indexed arena: nodes and arcs are identified
// by their slot index, and all per-node / per-arc attributes live in parallel
// slices. Arcs are always allocated in head/tail-reversed pairs ("twin arcs"),
// so Flip(e) == e^1 yields the arc in the opposite direction at an adjacent
// offset. Every node owns two intrusive doubly linked lists of incident arcs
// (outgoing by tail, incoming by head), giving O(1) arc insertion and
// deletion and O(degree) adjacency traversal.
//
// What belongs here:
//
//   - structural mutation: KnotAdd/KnotChg/KnotDel, EdgeAdd/EdgeDel,
//     RedirectEdge, KnotContract, Copy;
//   - the raw terminal/prize/term2edge attribute slices that the pcmw
//     package interprets;
//   - ancestor (provenance) bookkeeping merged on contraction;
//   - the testing-only AdjacencyIsConsistent scan.
//
// What does NOT belong here: any prize-collecting semantics. Terminal
// classification, view toggling, cost shifting and prize bookkeeping are the
// business of package pcmw; arcgraph only guarantees that the adjacency
// lists, degrees and twin pairing stay consistent under mutation.
//
// Concurrency: none. A Graph is a single mutable structure owned exclusively
// by one goroutine for its whole lifetime. No operation blocks or yields.
package arcgraph
