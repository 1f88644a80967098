// Package pcmw — terminal classification and the Term2Edge state machine.
//
// Four disjoint Term2Edge regimes encode what a node is:
//
//	≥ 0          proper potential terminal (or its twin); arc id of the
//	             terminal→twin connector, mutually flipped on both ends
//	NoTerm       not a terminal of any kind
//	FixedTerm    mandatory terminal, prize conceptually infinite
//	NonLeafTerm  terminal handled by cost shifting, never required as a leaf
//
// The query predicates are pure; the KnotTo* transitions mutate the graph and
// keep the tag / Term2Edge / prize triple consistent (invariant I5 of the
// package). Transition misuse panics — see doc.go.
package pcmw

import "github.com/katalvlaran/steinerx/arcgraph"

// IsFixedTerm reports whether node k is a fixed (mandatory) terminal.
func IsFixedTerm(g *arcgraph.Graph, k int) bool {
	requirePcMw(g)
	assertf(k >= 0 && k < g.NumNodes(), "IsFixedTerm: node %d out of range", k)

	return g.Term2Edge[k] == arcgraph.FixedTerm
}

// IsDummyTerm reports whether node k is a synthetic pseudo-terminal in the
// CURRENT view. The two view branches are not interchangeable:
//
//   - in the extended view the dummies are the non-fixed TermProper nodes
//     (the twins stand in the "real" terminal position);
//   - in the original view the dummies are the TermPseudo-tagged twins.
//
// The artificial source of an unrooted graph is a dummy in both views.
func IsDummyTerm(g *arcgraph.Graph, k int) bool {
	requirePcMw(g)
	assertf(k >= 0 && k < g.NumNodes(), "IsDummyTerm: node %d out of range", k)

	if k == g.Source && !g.Kind.IsRooted() {
		return true
	}
	if g.Extended {
		return g.Term[k] == arcgraph.TermProper && g.Term2Edge[k] != arcgraph.FixedTerm
	}

	return g.Term[k] == arcgraph.TermPseudo
}

// IsNonLeafTerm reports whether node k is a non-leaf terminal: still
// rewarded, but never optimal as a tree leaf, handled via cost absorption
// rather than a synthetic twin.
func IsNonLeafTerm(g *arcgraph.Graph, k int) bool {
	requirePcMw(g)
	assertf(k >= 0 && k < g.NumNodes(), "IsNonLeafTerm: node %d out of range", k)

	if !g.Term[k].IsAnyTerm() {
		return false
	}
	if g.Extended {
		return g.Term[k] == arcgraph.TermNonLeaf
	}

	return g.Term2Edge[k] == arcgraph.NonLeafTerm
}

// IsProperPotentialTerm reports whether node k is a proper (non-dummy)
// potential terminal, i.e. one that owns twin machinery.
func IsProperPotentialTerm(g *arcgraph.Graph, k int) bool {
	requirePcMw(g)

	return g.Term2Edge[k] >= 0 && !IsDummyTerm(g, k)
}

// EvalTermIsNonLeaf recomputes, from current arc costs and the terminal's
// prize, whether term SHOULD be classified non-leaf: true iff every incoming
// arc whose tail is not a dummy terminal has cost ≥ prize — reaching the
// terminal through an edge is never strictly cheaper than paying its prize,
// so it never helps as an intermediate hop. Original view only.
func EvalTermIsNonLeaf(g *arcgraph.Graph, term int) bool {
	requirePcMw(g)
	assertf(!g.Extended, "EvalTermIsNonLeaf: extended view (node %d)", term)
	assertf(g.Term[term].IsAnyTerm(), "EvalTermIsNonLeaf: node %d is not a terminal", term)

	for e := g.FirstIn(term); e >= 0; e = g.NextIn(e) {
		if IsDummyTerm(g, g.Tail[e]) {
			continue
		}
		if lt(g.Cost[e], g.Prize[term]) {
			return false
		}
	}

	return true
}

// KnotToFixedTerm promotes a proper or pseudo terminal to fixed status:
// its twin extension (if any) is dismantled, the tag becomes TermProper, the
// prize becomes the Faraway sentinel, and Term2Edge becomes FixedTerm.
// Panics if the node is already fixed or not a terminal the transform
// recognizes.
func KnotToFixedTerm(g *arcgraph.Graph, k int) {
	requirePcMw(g)
	assertf(g.Term2Edge[k] != arcgraph.FixedTerm, "KnotToFixedTerm: node %d already fixed", k)
	assertf(g.Term[k].IsAnyTerm(), "KnotToFixedTerm: node %d is not a terminal", k)

	if g.Term2Edge[k] >= 0 {
		termDeleteExtension(g, k, false)
	}
	g.KnotChg(k, arcgraph.TermProper)
	g.Prize[k] = arcgraph.Faraway
	g.Term2Edge[k] = arcgraph.FixedTerm
}

// KnotToNonTerm demotes a non-fixed terminal to a plain node, forcing its
// prize to zero. If the terminal owns a twin extension it is dismantled
// first. Forbidden on fixed terminals and on the source.
func KnotToNonTerm(g *arcgraph.Graph, term int) {
	requirePcMw(g)
	assertf(g.Term2Edge[term] != arcgraph.FixedTerm, "KnotToNonTerm: node %d is fixed", term)
	assertf(term != g.Source, "KnotToNonTerm: node %d is the source", term)
	assertf(g.Term[term].IsAnyTerm(), "KnotToNonTerm: node %d is not a terminal", term)

	if g.Term2Edge[term] >= 0 {
		termDeleteExtension(g, term, true)

		return
	}
	g.KnotChg(term, arcgraph.TermNone)
	g.Term2Edge[term] = arcgraph.NoTerm
	g.Prize[term] = 0.0
}

// FixedKnotToNonTerm demotes a fixed terminal directly to a plain node.
// Fixed terminals never carry twin machinery, so no structural edit happens
// beyond the tag/prize reset. Forbidden on the source.
func FixedKnotToNonTerm(g *arcgraph.Graph, term int) {
	requirePcMw(g)
	assertf(g.Term2Edge[term] == arcgraph.FixedTerm, "FixedKnotToNonTerm: node %d is not fixed", term)
	assertf(term != g.Source, "FixedKnotToNonTerm: node %d is the source", term)

	g.KnotChg(term, arcgraph.TermNone)
	g.Term2Edge[term] = arcgraph.NoTerm
	g.Prize[term] = 0.0
}

// KnotToNonLeafTerm demotes a proper potential terminal to non-leaf status,
// dismantling its twin extension. Unless force is set, the demotion is
// skipped (returning false) when term is the last leaf-capable terminal of
// an unrooted graph — detected as the source having degree ≤ 2, meaning only
// one proper terminal remains reachable, and a graph must always retain one
// terminal that can legally serve as a leaf.
//
// Original view only. Returns whether the demotion happened.
func KnotToNonLeafTerm(g *arcgraph.Graph, term int, force bool) bool {
	requirePcMw(g)
	assertf(!g.Extended, "KnotToNonLeafTerm: extended view (node %d)", term)
	assertf(g.Term2Edge[term] >= 0, "KnotToNonLeafTerm: node %d has no twin machinery", term)
	assertf(!IsDummyTerm(g, term), "KnotToNonLeafTerm: node %d is a dummy", term)

	if !force && !g.Kind.IsRooted() && g.Grad[g.Source] <= 2 {
		return false
	}

	termDeleteExtension(g, term, false)
	g.Term2Edge[term] = arcgraph.NonLeafTerm

	return true
}

// TwinTerm returns the synthetic counterpart of a proper potential terminal
// (or, given a twin, its originating terminal).
func TwinTerm(g *arcgraph.Graph, term int) int {
	requirePcMw(g)
	assertf(g.Term2Edge[term] >= 0, "TwinTerm: node %d has no twin", term)

	return g.Head[g.Term2Edge[term]]
}

// termDeleteExtension dismantles the synthetic machinery of a non-fixed
// proper terminal: the twin node is severed (dropping the root–twin and
// terminal–twin pairs), and for unrooted kinds the zero-cost root→terminal
// placeholder arc goes too — two or three pairs in total. If makeNonTerminal
// is set the terminal itself is demoted to a plain node.
func termDeleteExtension(g *arcgraph.Graph, term int, makeNonTerminal bool) {
	assertf(g.Term2Edge[term] >= 0, "termDeleteExtension: node %d has no twin", term)

	twin := g.Head[g.Term2Edge[term]]
	assertf(g.Term2Edge[twin] == arcgraph.Flip(g.Term2Edge[term]),
		"termDeleteExtension: twin pointers of %d/%d not mutually flipped", term, twin)

	if !g.Kind.IsRooted() {
		if e := g.FindArc(g.Source, term); e >= 0 {
			g.EdgeDel(e)
		}
	}
	g.KnotDel(twin)
	g.KnotChg(twin, arcgraph.TermNone)
	g.Mark[twin] = false
	g.Term2Edge[twin] = arcgraph.NoTerm
	g.Term2Edge[term] = arcgraph.NoTerm
	g.Prize[twin] = 0.0

	if makeNonTerminal {
		g.KnotChg(term, arcgraph.TermNone)
		g.Prize[term] = 0.0
	}
}

// requirePcMw panics when the graph lacks prize-collecting machinery.
func requirePcMw(g *arcgraph.Graph) {
	assertf(g.Kind.IsPcMw() && g.Prize != nil && g.Term2Edge != nil,
		"graph of kind %d has no prize-collecting arrays", g.Kind)
}
