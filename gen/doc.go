// Package gen constructs deterministic prize-collecting test instances on
// arcgraph.Graph: fixed topologies (Star, Cycle) and a stochastic one
// (RandomSparse), with prizes and costs drawn from configurable generators.
//
// Contract:
//   - Constructors validate parameters and return sentinel errors; they
//     never panic at runtime. Option constructors panic on meaningless
//     inputs (nil functions), surfacing programmer errors early.
//   - Determinism is explicit: all randomness flows through the configured
//     RNG (WithSeed / WithRand); the default is a fixed seed, so repeated
//     runs produce identical instances.
//   - Instances come out untransformed, in kind KindPC by default: feed
//     them to pcmw.TransformPC (or switch kinds with WithKind) before
//     solving.
//
// Complexity: every constructor is linear in the emitted nodes and edges.
package gen
