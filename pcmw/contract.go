package pcmw

import "github.com/katalvlaran/steinerx/arcgraph"

// ContractEdge contracts the edge between t and s into t, preserving the
// prize-collecting semantics: the merged node must end up with the prize a
// solution collecting both endpoints would see, net of the connecting edge's
// cost. term4offset names the node whose prize absorbs the adjustment (often
// t itself, but reduction loops sometimes book it elsewhere).
//
// Original view only. s's slot survives as a dead non-terminal; t inherits
// s's ancestry.
func ContractEdge(g *arcgraph.Graph, t, s, term4offset int) {
	requirePcMw(g)
	assertf(!g.Extended, "ContractEdge: extended view")
	assertf(t != s, "ContractEdge: t == s == %d", t)

	ets := g.FindArc(t, s)
	assertf(ets >= 0, "ContractEdge: no arc %d -> %d", t, s)

	if IsFixedTerm(g, t) || IsFixedTerm(g, s) {
		contractWithFixed(g, t, s)

		return
	}

	// Prize adjustment reads s before its twin machinery is dismantled.
	switch {
	case g.IsTerm(t) && g.IsTerm(s):
		// Both collectable: the merged node keeps both prizes but pays the
		// connecting edge once. A fixed offset target keeps its sentinel;
		// reduction loops book the adjustment externally then.
		if !IsFixedTerm(g, term4offset) {
			g.Prize[term4offset] -= g.Cost[ets] - g.Prize[s]
		}
		KnotToNonTerm(g, s)
	case g.IsTerm(s):
		// Only s collectable: its prize moves over, the edge is paid in full.
		prize := g.Prize[s]
		KnotToNonTerm(g, s)
		g.KnotChg(t, arcgraph.TermProper)
		promoteToTerm(g, t, prize)
		if g.Kind.IsPc() {
			g.Prize[term4offset] -= g.Cost[ets]
		}
	case g.IsTerm(t):
		if g.Kind.IsPc() {
			g.Prize[term4offset] -= g.Cost[ets]
		} else if g.PrizeIsSet(s) {
			// MW: a weighted plain node folds its weight into the survivor.
			g.Prize[term4offset] += g.Prize[s]
		}
	default:
		// Two plain nodes; MW may carry a negative weight on s.
		if g.Kind.IsMw() && g.PrizeIsSet(s) && lt(g.Prize[s], 0.0) {
			g.Prize[t] += g.Prize[s]
		}
	}

	if g.PrizeIsSet(s) {
		g.Prize[s] = 0.0
	}
	g.MergeKnotAncestors(t, s)
	g.KnotContract(t, s)

	// The surviving terminal may have lost its leaf-worthiness.
	if g.Kind.IsPc() && g.Term[t] == arcgraph.TermProper &&
		g.Term2Edge[t] >= 0 && EvalTermIsNonLeaf(g, t) {
		KnotToNonLeafTerm(g, t, false)
	}
}

// contractWithFixed folds s into t when either endpoint is fixed; the result
// is a fixed terminal regardless of the edge cost, so no prize arithmetic
// applies.
func contractWithFixed(g *arcgraph.Graph, t, s int) {
	if s == g.Source {
		t, s = s, t
	}
	if !IsFixedTerm(g, t) {
		if g.IsTerm(t) {
			KnotToFixedTerm(g, t)
		} else {
			// Plain survivor: install the fixed regime directly.
			g.KnotChg(t, arcgraph.TermProper)
			g.Prize[t] = arcgraph.Faraway
			g.Term2Edge[t] = arcgraph.FixedTerm
		}
	}
	if IsFixedTerm(g, s) {
		FixedKnotToNonTerm(g, s)
	} else if g.IsTerm(s) {
		KnotToNonTerm(g, s)
	}
	if g.PrizeIsSet(s) {
		g.Prize[s] = 0.0
	}
	g.MergeKnotAncestors(t, s)
	g.KnotContract(t, s)
}

// promoteToTerm installs t as a proper terminal with the given prize,
// attaching twin machinery when the graph is transformed. t must currently
// have no regime.
func promoteToTerm(g *arcgraph.Graph, t int, prize float64) {
	assertf(g.Term2Edge[t] == arcgraph.NoTerm, "promoteToTerm: node %d has regime %d", t, g.Term2Edge[t])
	g.Prize[t] = prize
	if !isTransformed(g) {
		return
	}

	root := g.Source
	if !g.Kind.IsRooted() {
		g.EdgeAdd(root, t, 0.0, arcgraph.Faraway)
	}
	twin := g.KnotAdd(arcgraph.TermPseudo) // original view: twins are pseudo
	g.Prize[twin] = 0.0
	g.EdgeAdd(root, twin, prize, arcgraph.Faraway)
	e := g.EdgeAdd(t, twin, 0.0, arcgraph.Faraway)
	g.Term2Edge[t] = e
	g.Term2Edge[twin] = arcgraph.Flip(e)
}

// ContractEdgeUnordered contracts the edge between a and b, choosing the
// surviving endpoint by these rules: a non-leaf terminal never survives (its
// regime would be invalidated by new incident arcs), the root always
// survives, and otherwise the higher-degree endpoint does. Returns the id of
// the survivor.
func ContractEdgeUnordered(g *arcgraph.Graph, a, b int) int {
	requirePcMw(g)

	t, s := a, b
	switch {
	case IsNonLeafTerm(g, t) && !IsNonLeafTerm(g, s):
		t, s = s, t
	case s == g.Source:
		t, s = s, t
	case t != g.Source && g.Grad[s] > g.Grad[t]:
		t, s = s, t
	}
	ContractEdge(g, t, s, t)

	return t
}

// DeleteTerm removes terminal term entirely: its prize is booked into the
// returned offset, its twin machinery is dismantled, and its slot is severed.
// The caller accumulates the offset into the instance objective.
//
// Returns (prize offset, number of edge pairs removed). Original view only;
// term must be a non-fixed terminal other than the root.
func DeleteTerm(g *arcgraph.Graph, term int) (float64, int) {
	requirePcMw(g)
	assertf(!g.Extended, "DeleteTerm: extended view")
	assertf(g.IsTerm(term), "DeleteTerm: node %d is not a terminal", term)
	assertf(!IsFixedTerm(g, term), "DeleteTerm: node %d is fixed", term)
	assertf(term != g.Source, "DeleteTerm: cannot delete the root")

	offset := 0.0
	if g.PrizeIsSet(term) && gt(g.Prize[term], 0.0) {
		offset = g.Prize[term]
	}

	npairs := g.Grad[term]
	if g.Term2Edge[term] >= 0 {
		twin := g.Head[g.Term2Edge[term]]
		// The twin pair sits in both degree counts; count it once.
		npairs += g.Grad[twin] - 1
		termDeleteExtension(g, term, true)
	} else {
		g.KnotChg(term, arcgraph.TermNone)
		g.Term2Edge[term] = arcgraph.NoTerm
	}

	g.Prize[term] = 0.0
	g.KnotDel(term)
	g.Mark[term] = false

	return offset, npairs
}
