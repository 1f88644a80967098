package pcmw

import "github.com/katalvlaran/steinerx/arcgraph"

// SolGetObj evaluates a solution of a transformed graph against the
// prize-collecting objective: the cost of every real solution arc plus the
// prize of every potential terminal the solution leaves out, plus the given
// instance offset accumulated by reductions. Synthetic arcs (anything
// touching a twin, or leaving an artificial root) contribute nothing; using
// them merely records which prizes are skipped.
//
// arcs marks the solution per arc id. Original view only, so costs are the
// instance costs, not shifted ones.
func SolGetObj(g *arcgraph.Graph, arcs []bool, offset float64) float64 {
	requirePcMw(g)
	assertf(!g.Extended, "SolGetObj: extended view")
	assertf(len(arcs) == g.NumArcs(), "SolGetObj: mask of %d arcs, graph has %d", len(arcs), g.NumArcs())

	artificial := !g.Kind.IsRooted()
	obj := offset

	connected := make([]bool, g.NumNodes())
	if g.Source >= 0 {
		connected[g.Source] = true
	}
	for e := 0; e < g.NumArcs(); e++ {
		if !arcs[e] || g.ArcIsDeleted(e) {
			continue
		}
		t, h := g.Tail[e], g.Head[e]
		connected[t] = true
		connected[h] = true
		if IsDummyTerm(g, t) || IsDummyTerm(g, h) {
			continue
		}
		if artificial && (t == g.Source || h == g.Source) {
			continue
		}
		obj += g.Cost[e]
	}

	for k := 0; k < g.NumNodes(); k++ {
		if connected[k] || IsDummyTerm(g, k) {
			continue
		}
		if g.Term2Edge[k] >= 0 || g.Term2Edge[k] == arcgraph.NonLeafTerm {
			obj += g.Prize[k]
		}
	}

	return obj
}

// SolIsTrivial reports whether a solution collects nothing but the root: no
// real arcs, every prize forfeited. Reductions use it to short-circuit
// instances whose best tree is a single node.
func SolIsTrivial(g *arcgraph.Graph, arcs []bool) bool {
	for e := 0; e < g.NumArcs(); e++ {
		if !arcs[e] || g.ArcIsDeleted(e) {
			continue
		}
		t, h := g.Tail[e], g.Head[e]
		if IsDummyTerm(g, t) || IsDummyTerm(g, h) {
			continue
		}
		if !g.Kind.IsRooted() && (t == g.Source || h == g.Source) {
			continue
		}

		return false
	}

	return true
}
