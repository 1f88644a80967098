package pcmw

import "github.com/katalvlaran/steinerx/arcgraph"

// Term2EdgeIsConsistent scans the full terminal bookkeeping of a transformed
// graph. It verifies that
//
//   - every Term2Edge entry is a live arc id or one of the regime sentinels;
//   - twin pointers are mutually flipped and connect a terminal to its twin;
//   - a twin carries no prize and exactly one real tag per view (pseudo in
//     the original view, proper in the extended one);
//   - fixed terminals carry the Faraway prize and the proper tag;
//   - non-leaf regimes agree with the view-dependent tag convention;
//   - the Terms counter matches the number of proper tags.
//
// Intended for tests; O(V + E).
func Term2EdgeIsConsistent(g *arcgraph.Graph) bool {
	if !g.Kind.IsPcMw() || g.Prize == nil || g.Term2Edge == nil {
		return false
	}

	nproper := 0
	for k := 0; k < g.NumNodes(); k++ {
		if g.Term[k] == arcgraph.TermProper {
			nproper++
		}

		t2e := g.Term2Edge[k]
		switch {
		case t2e == arcgraph.NoTerm:
		case t2e == arcgraph.FixedTerm:
			if g.Term[k] != arcgraph.TermProper {
				return false
			}
			if k != g.Source && !ge(g.Prize[k], arcgraph.Faraway) {
				return false
			}
		case t2e == arcgraph.NonLeafTerm:
			// Tag convention: NonLeaf tag in the extended view, plain proper
			// tag plus this regime in the original one.
			if g.Extended && g.Term[k] != arcgraph.TermNonLeaf {
				return false
			}
			if !g.Extended && g.Term[k] != arcgraph.TermProper {
				return false
			}
		case t2e >= 0:
			if t2e >= g.NumArcs() || g.ArcIsDeleted(t2e) {
				return false
			}
			other := g.Head[t2e]
			if g.Term2Edge[other] != arcgraph.Flip(t2e) {
				return false
			}
			if g.Tail[t2e] != k {
				return false
			}
		default:
			return false
		}
	}

	// Each twin pair: one side is the terminal, the other the prize-free twin.
	for k := 0; k < g.NumNodes(); k++ {
		if g.Term2Edge[k] < 0 {
			continue
		}
		twin := g.Head[g.Term2Edge[k]]
		kDummy, twinDummy := IsDummyTerm(g, k), IsDummyTerm(g, twin)
		if kDummy == twinDummy {
			return false
		}
		if kDummy && !eq(g.Prize[k], 0.0) {
			return false
		}
	}

	return g.Terms == nproper
}

// ShiftedCostsAreConsistent verifies the extended view's cost shift of a
// prize-collecting graph: every inbound arc of a non-leaf terminal is its
// snapshot cost minus the terminal's prize (clamped at zero), every other
// arc matches its snapshot, and no arc went negative. Graphs without a
// snapshot (maximum-weight kinds) pass trivially.
//
// Intended for tests; O(E).
func ShiftedCostsAreConsistent(g *arcgraph.Graph) bool {
	if g.CostOrg == nil {
		return true
	}
	if !g.Extended {
		// Original view restores the snapshot wholesale.
		for e := 0; e < g.NumArcs(); e++ {
			if !g.ArcIsDeleted(e) && !eq(g.Cost[e], g.CostOrg[e]) {
				return false
			}
		}

		return true
	}

	for e := 0; e < g.NumArcs(); e++ {
		if g.ArcIsDeleted(e) {
			continue
		}
		if lt(g.Cost[e], 0.0) {
			return false
		}
		h := g.Head[e]
		want := g.CostOrg[e]
		if g.Term[h] == arcgraph.TermNonLeaf && want < arcgraph.Blocked {
			want -= g.Prize[h]
			if want < 0 {
				want = 0
			}
		}
		if !eq(g.Cost[e], want) {
			return false
		}
	}

	return true
}
