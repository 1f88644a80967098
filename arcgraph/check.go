package arcgraph

// AdjacencyIsConsistent validates the structural invariants of the store:
// twin pairing, list membership, degree counters and endpoint ranges. It is
// an O(V + E) scan intended for assertion-gated tests after every structural
// mutator, never for production hot paths.
func (g *Graph) AdjacencyIsConsistent() bool {
	nnodes, narcs := len(g.Term), len(g.Cost)
	if narcs%2 != 0 {
		return false
	}

	grad := make([]int, nnodes)
	for e := 0; e < narcs; e++ {
		if g.outNext[e] == eatFree {
			// Dead slots must die in pairs.
			if g.outNext[Flip(e)] != eatFree {
				return false
			}

			continue
		}
		t, h := g.Tail[e], g.Head[e]
		if t < 0 || t >= nnodes || h < 0 || h >= nnodes || t == h {
			return false
		}
		// Twin arcs run in opposite directions between the same endpoints.
		if g.Tail[Flip(e)] != h || g.Head[Flip(e)] != t {
			return false
		}
		if e%2 == 0 {
			grad[t]++
			grad[h]++
		}
	}
	for k := 0; k < nnodes; k++ {
		if grad[k] != g.Grad[k] {
			return false
		}
	}

	// Every live arc must appear exactly once in its tail's out list and its
	// head's in list, and the lists must be properly doubly linked.
	seenOut := make([]bool, narcs)
	seenIn := make([]bool, narcs)
	for k := 0; k < nnodes; k++ {
		prev := eatLast
		for e := g.outBeg[k]; e != eatLast; e = g.outNext[e] {
			if e < 0 || e >= narcs || g.Tail[e] != k || seenOut[e] || g.outPrev[e] != prev {
				return false
			}
			seenOut[e] = true
			prev = e
		}
		prev = eatLast
		for e := g.inBeg[k]; e != eatLast; e = g.inNext[e] {
			if e < 0 || e >= narcs || g.Head[e] != k || seenIn[e] || g.inPrev[e] != prev {
				return false
			}
			seenIn[e] = true
			prev = e
		}
	}
	for e := 0; e < narcs; e++ {
		alive := g.outNext[e] != eatFree
		if seenOut[e] != alive || seenIn[e] != alive {
			return false
		}
	}

	return true
}
