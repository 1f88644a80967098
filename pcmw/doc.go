// Package pcmw implements the prize-collecting / maximum-weight Steiner
// transformation layer on top of the arcgraph store.
//
// It maintains two parallel presentations of one graph — the compact
// "original" view matching the user-facing instance, and the "extended" view
// in which every proper terminal owns a synthetic twin reachable through the
// root — so that prize-collecting Steiner tree (PCST) and maximum-weight
// connected subgraph (MWCS) instances can be handed to plain Steiner
// arborescence (SAP) solvers.
//
// Operation groups:
//
//   - Terminal classification: IsFixedTerm / IsDummyTerm / IsNonLeafTerm /
//     EvalTermIsNonLeaf queries and the KnotTo* state transitions, backed by
//     the Term2Edge index (terms.go).
//   - View toggling: ToExtended / ToOriginal and their *IfNeeded variants,
//     including the reversible non-leaf cost shift (view.go).
//   - One-time conversions: TransformPC / TransformRootedPC / TransformMW /
//     TransformRootedMW and the best-effort TryRootedTransform (trans.go).
//   - Contraction & deletion: ContractEdge / ContractEdgeUnordered /
//     DeleteTerm with prize-conserving offset bookkeeping (contract.go).
//   - Derived-graph builders: BuildSAP / BuildRootedSAP / UpdateBigM
//     (sap.go), consumed by package sap.
//   - Solution evaluation: SolGetObj (objective.go), the single place where
//     a tentative solution's true PC/MW objective is computed.
//   - Self-checks: Term2EdgeIsConsistent / ShiftedCostsAreConsistent
//     (check.go), exposed for test suites only.
//
// Failure model (strict, two-tier):
//
//   - Entry points that a caller can misuse legitimately (wrong graph kind,
//     wrong view, repeated conversion) return the package sentinels below.
//   - Violated internal preconditions — contracting the source, transitioning
//     a node that is not in the expected terminal class, a cost shift driving
//     an arc more than the numeric tolerance below zero — are programming
//     errors and panic immediately with the offending node/arc id. There is
//     no partial-failure recovery: callers establish preconditions first.
//
// Concurrency: none. Every operation assumes exclusive access to the graph;
// independent solves need independent copies (arcgraph.Graph.Copy, BuildSAP).
package pcmw
