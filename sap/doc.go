// Package sap solves Steiner arborescence problems: find a minimum-cost
// directed tree rooted at a designated node that spans every mandatory
// terminal and any subset of the prize terminals worth collecting.
//
// Overview:
//
//   - DualAscent computes a lower bound on the optimum together with reduced
//     arc costs, following the dual ascent scheme of Leitner, Ljubić,
//     Luipersbeck and Sinnl ("A Dual Ascent-Based Branch-and-Bound Framework
//     for the Prize-Collecting Steiner Tree and Related Problems").
//   - PrimalHeuristic turns those reduced costs into a feasible tree: it
//     grows shortest paths restricted to zero-reduced-cost arcs and then
//     strong-prunes subtrees whose cost exceeds their collectable worth.
//   - FromGraph bridges an arcgraph.Graph (typically the output of
//     pcmw.BuildSAP or a rooted transform) into the flat Problem form the
//     solver iterates over; Solution.ArcMask maps a result back onto the
//     originating graph's arc ids.
//
// When to use:
//
//   - As the solving stage after the pcmw package has rewritten a
//     prize-collecting or maximum-weight instance into arborescence form.
//   - Directly on any Problem with non-negative arc costs, a reachable root
//     and per-node prizes.
//
// Performance and complexity:
//
//   - DualAscent: each ascent step scans one active component; the number of
//     steps is bounded by the number of terminals times the arc count in the
//     worst case, and is far smaller in practice.
//   - PrimalHeuristic: one Dijkstra pass over the zero-reduced-cost
//     subgraph, O((V + E) log V), plus a linear pruning sweep.
//
// The package is deterministic and single-threaded; run concurrent solves on
// separate Problem values.
package sap
