package arcgraph

// KnotAdd appends a new node slot with the given terminal tag and returns its
// id. The node starts marked, with degree zero and empty adjacency lists; for
// PC/MW kinds its prize is PrizeUnset and its Term2Edge regime is NoTerm.
//
// Complexity: amortized O(1).
func (g *Graph) KnotAdd(term TermState) int {
	k := len(g.Term)
	g.Term = append(g.Term, TermNone)
	g.Mark = append(g.Mark, true)
	g.Grad = append(g.Grad, 0)
	g.outBeg = append(g.outBeg, eatLast)
	g.inBeg = append(g.inBeg, eatLast)
	if g.Kind.IsPcMw() {
		g.Prize = append(g.Prize, PrizeUnset)
		g.Term2Edge = append(g.Term2Edge, NoTerm)
	}
	if g.NodeAncestors != nil {
		g.NodeAncestors = append(g.NodeAncestors, nil)
	}
	// KnotChg keeps the Terms counter right.
	g.KnotChg(k, term)

	return k
}

// KnotChg changes the terminal tag of node k, keeping the Terms counter
// consistent.
func (g *Graph) KnotChg(k int, term TermState) {
	g.knotInRange(k)
	if g.Term[k] == term {
		return
	}
	if g.Term[k] == TermProper {
		g.Terms--
	}
	if term == TermProper {
		g.Terms++
	}
	g.Term[k] = term
}

// KnotDel severs node k from the graph by deleting every incident edge pair.
// The slot itself persists (ids are stable); its tag and prize bookkeeping
// are left to the caller. Degree drops to zero.
//
// Complexity: O(grad(k)) list unlinks.
func (g *Graph) KnotDel(k int) {
	g.knotInRange(k)
	// Every incident pair has exactly one arc with tail k, so the out list
	// enumerates all pairs to delete.
	for e := g.outBeg[k]; e != eatLast; e = g.outBeg[k] {
		g.EdgeDel(e)
	}
}

// IsTerm reports whether node k carries any terminal tag in the current view.
func (g *Graph) IsTerm(k int) bool {
	g.knotInRange(k)

	return g.Term[k].IsAnyTerm()
}
