package arcgraph

// KnotContract merges node s into node t: every pair incident to s is either
// deleted (s–t pairs), folded into an existing parallel t–x pair keeping the
// cheaper cost per direction (edge ancestry merged), or relinked to originate
// at t. Afterwards s has degree zero and tag TermNone.
//
// Terminal and prize semantics are NOT handled here: for plain graphs the tag
// of s is transferred to t if t was untagged; prize-collecting callers
// (package pcmw) clear s's bookkeeping before calling.
//
// Complexity: O(grad(t) + grad(s)) expected (neighbor map).
func (g *Graph) KnotContract(t, s int) {
	g.knotInRange(t)
	g.knotInRange(s)
	if t == s {
		panic(ErrKnotRange)
	}

	// Existing t→x arcs, for parallel detection.
	arcTo := make(map[int]int, g.Grad[t])
	for e := g.outBeg[t]; e != eatLast; e = g.outNext[e] {
		arcTo[g.Head[e]] = e
	}

	// Collect s's pairs first: relinking mutates the list we would walk.
	pairs := make([]int, 0, g.Grad[s])
	for e := g.outBeg[s]; e != eatLast; e = g.outNext[e] {
		pairs = append(pairs, e)
	}

	for _, e := range pairs {
		x := g.Head[e]
		switch {
		case x == t:
			g.EdgeDel(e)
		default:
			if et, ok := arcTo[x]; ok {
				// Parallel pair: keep the cheaper cost in each direction.
				if g.Cost[e] < g.Cost[et] {
					g.Cost[et] = g.Cost[e]
					if g.CostOrg != nil {
						g.CostOrg[et] = g.CostOrg[e]
					}
				}
				f, ft := Flip(e), Flip(et)
				if g.Cost[f] < g.Cost[ft] {
					g.Cost[ft] = g.Cost[f]
					if g.CostOrg != nil {
						g.CostOrg[ft] = g.CostOrg[f]
					}
				}
				g.mergeEdgeAncestors(et, e)
				g.EdgeDel(e)
			} else {
				g.relinkPair(e, t, x)
				arcTo[x] = e
			}
		}
	}

	// Plain-graph terminal transfer; pcmw callers cleared s already.
	if g.Term[s].IsAnyTerm() && !g.Term[t].IsAnyTerm() {
		g.KnotChg(t, g.Term[s])
	}
	g.KnotChg(s, TermNone)
	g.Mark[s] = false
}
