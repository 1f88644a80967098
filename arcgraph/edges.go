package arcgraph

// EdgeAdd appends a twin arc pair tail→head (cost) and head→tail (costRev),
// links both arcs into the intrusive adjacency lists, bumps both degrees, and
// returns the id of the forward arc. The reverse arc is Flip of it.
//
// Complexity: amortized O(1).
func (g *Graph) EdgeAdd(tail, head int, cost, costRev float64) int {
	g.knotInRange(tail)
	g.knotInRange(head)

	e := len(g.Cost)
	g.Tail = append(g.Tail, tail, head)
	g.Head = append(g.Head, head, tail)
	g.Cost = append(g.Cost, cost, costRev)
	if g.CostOrg != nil {
		g.CostOrg = append(g.CostOrg, cost, costRev)
	}
	g.outNext = append(g.outNext, eatLast, eatLast)
	g.outPrev = append(g.outPrev, eatLast, eatLast)
	g.inNext = append(g.inNext, eatLast, eatLast)
	g.inPrev = append(g.inPrev, eatLast, eatLast)
	if g.EdgeAncestors != nil {
		g.EdgeAncestors = append(g.EdgeAncestors, nil)
	}

	g.linkArc(e)
	g.linkArc(e + 1)
	g.Grad[tail]++
	g.Grad[head]++

	return e
}

// EdgeDel removes the twin pair containing arc e from the adjacency lists and
// marks both slots dead. Degrees of both endpoints drop by one.
//
// Complexity: O(1).
func (g *Graph) EdgeDel(e int) {
	g.arcAlive(e)
	f := Flip(e)
	g.Grad[g.Tail[e]]--
	g.Grad[g.Head[e]]--
	g.unlinkArc(e)
	g.unlinkArc(f)
	g.outNext[e] = eatFree
	g.outNext[f] = eatFree
}

// RedirectEdge relinks the pair containing arc e so that e runs tail→head,
// and sets both directions to the given cost. Endpoint degrees are adjusted.
// The caller is responsible for avoiding unwanted parallel arcs.
func (g *Graph) RedirectEdge(e, tail, head int, cost float64) {
	g.arcAlive(e)
	g.knotInRange(tail)
	g.knotInRange(head)
	g.relinkPair(e, tail, head)
	g.Cost[e] = cost
	g.Cost[Flip(e)] = cost
}

// ArcIsDeleted reports whether arc slot e has been removed by EdgeDel.
func (g *Graph) ArcIsDeleted(e int) bool {
	if e < 0 || e >= len(g.Cost) {
		panic(ErrArcRange)
	}

	return g.outNext[e] == eatFree
}

// FirstOut returns the first outgoing arc of node k, or a negative value if
// the out list is empty. Iterate with NextOut.
func (g *Graph) FirstOut(k int) int { g.knotInRange(k); return g.outBeg[k] }

// NextOut returns the next arc sharing e's tail, or a negative value at the
// end of the list.
func (g *Graph) NextOut(e int) int { return g.outNext[e] }

// FirstIn returns the first incoming arc of node k, or a negative value if
// the in list is empty. Iterate with NextIn.
func (g *Graph) FirstIn(k int) int { g.knotInRange(k); return g.inBeg[k] }

// NextIn returns the next arc sharing e's head, or a negative value at the
// end of the list.
func (g *Graph) NextIn(e int) int { return g.inNext[e] }

// FindArc returns the id of a live arc tail→head, or a negative value if no
// such arc exists. O(grad(tail)).
func (g *Graph) FindArc(tail, head int) int {
	g.knotInRange(tail)
	g.knotInRange(head)
	for e := g.outBeg[tail]; e != eatLast; e = g.outNext[e] {
		if g.Head[e] == head {
			return e
		}
	}

	return eatLast
}

// CountLiveArcs returns the number of live arc slots (both directions count).
func (g *Graph) CountLiveArcs() int {
	n := 0
	for e := 0; e < len(g.Cost); e++ {
		if g.outNext[e] != eatFree {
			n++
		}
	}

	return n
}

// linkArc inserts arc e at the front of its tail's out list and its head's
// in list.
func (g *Graph) linkArc(e int) {
	tail, head := g.Tail[e], g.Head[e]

	g.outNext[e] = g.outBeg[tail]
	g.outPrev[e] = eatLast
	if g.outBeg[tail] != eatLast {
		g.outPrev[g.outBeg[tail]] = e
	}
	g.outBeg[tail] = e

	g.inNext[e] = g.inBeg[head]
	g.inPrev[e] = eatLast
	if g.inBeg[head] != eatLast {
		g.inPrev[g.inBeg[head]] = e
	}
	g.inBeg[head] = e
}

// unlinkArc removes arc e from both intrusive lists in O(1).
func (g *Graph) unlinkArc(e int) {
	if prev := g.outPrev[e]; prev != eatLast {
		g.outNext[prev] = g.outNext[e]
	} else {
		g.outBeg[g.Tail[e]] = g.outNext[e]
	}
	if next := g.outNext[e]; next != eatLast {
		g.outPrev[next] = g.outPrev[e]
	}

	if prev := g.inPrev[e]; prev != eatLast {
		g.inNext[prev] = g.inNext[e]
	} else {
		g.inBeg[g.Head[e]] = g.inNext[e]
	}
	if next := g.inNext[e]; next != eatLast {
		g.inPrev[next] = g.inPrev[e]
	}
}

// relinkPair detaches the pair containing e and reattaches it as
// tail→head / head→tail, fixing degrees on both old and new endpoints.
func (g *Graph) relinkPair(e, tail, head int) {
	f := Flip(e)
	g.Grad[g.Tail[e]]--
	g.Grad[g.Head[e]]--
	g.unlinkArc(e)
	g.unlinkArc(f)

	g.Tail[e], g.Head[e] = tail, head
	g.Tail[f], g.Head[f] = head, tail

	g.linkArc(e)
	g.linkArc(f)
	g.Grad[tail]++
	g.Grad[head]++
}
