// Package steinerx turns prize-collecting and maximum-weight Steiner
// instances into rooted arborescence problems and solves them.
//
// 🚀 What is steinerx?
//
//	A library and CLI around one transformation pipeline:
//		• arcgraph/ — the twin-arc graph store: O(1) edge deletion, stable
//		  ids, terminal and prize bookkeeping
//		• pcmw/     — terminal classification, original ⇄ extended view
//		  toggling, the PC/MW structural conversions, prize-conserving
//		  contraction and deletion, and the derived arborescence builders
//		• sap/      — a dual-ascent lower bound and a strong-pruned primal
//		  heuristic for the resulting Steiner arborescence problems
//		• gen/      — deterministic instance generators for tests and
//		  benchmarks
//		• cmd/steinerx — generate, transform and solve from the shell
//
// ✨ Typical flow
//
//	g, _ := gen.RandomSparse(200, 0.05, gen.WithSeed(7))
//	_ = pcmw.TransformPC(g)          // extended view, twins attached
//	der, _ := pcmw.BuildSAP(g)       // big-M rooted arborescence form
//	mask, _, _ := sap.Solve(der.G)   // heuristic tree
//	_ = pcmw.ToOriginal(g)
//	obj := pcmw.SolGetObj(g, mask[:g.NumArcs()], 0)
//
// All packages are single-threaded by contract: confine one graph to one
// goroutine, copy for parallel work.
//
//	go get github.com/katalvlaran/steinerx
package steinerx
