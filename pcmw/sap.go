package pcmw

import "github.com/katalvlaran/steinerx/arcgraph"

// SAP is a Steiner arborescence problem derived from an unrooted transformed
// graph. The construction forces any feasible arborescence to pick exactly
// one big-M entry arc out of the artificial root, which stands in for the
// free choice of where the tree starts:
//
//   - a pseudo-root node is appended;
//   - every original terminal gets a zero-cost arc to the pseudo-root;
//   - every root→twin arc is re-homed onto the pseudo-root, so skipping a
//     prize is only possible once the tree actually contains a terminal;
//   - every root→terminal entry arc is re-priced from zero to BigM.
//
// Offset converts a solution's arc-cost total back to the instance
// objective: exactly one entry arc pays BigM that the instance never charges.
type SAP struct {
	G          *arcgraph.Graph
	PseudoRoot int
	BigM       float64
	Offset     float64
}

// BuildSAP derives the arborescence form of an unrooted transformed PC/MW
// graph. The input must be in the extended view; it is copied, never
// mutated. Returns ErrRooted for rooted kinds and ErrWrongView for the
// original view.
//
// Complexity: O(V + E) plus the copy.
func BuildSAP(g *arcgraph.Graph) (*SAP, error) {
	requirePcMw(g)
	if g.Kind.IsRooted() {
		return nil, ErrRooted
	}
	if !g.Extended {
		return nil, ErrWrongView
	}

	s := g.Copy()
	root := s.Source

	bigM := sapBound(s)

	// Non-leaf prizes are folded into shifted arc costs, so a solution's
	// arc total undercounts them; the offset carries the correction.
	nonleaf := 0.0
	for k := 0; k < s.NumNodes(); k++ {
		if s.Term[k] == arcgraph.TermNonLeaf {
			nonleaf += s.Prize[k]
		}
	}

	if err := s.EnsureArcCapacity(s.Terms + 1); err != nil {
		return nil, err
	}
	pseudo := s.KnotAdd(arcgraph.TermNone)
	s.Prize[pseudo] = 0.0

	// Original terminals (pseudo tag in this view) feed the pseudo-root for
	// free; their twins' prize arcs move over to it; entry arcs pay BigM.
	for k := 0; k < pseudo; k++ {
		if s.Term[k] == arcgraph.TermPseudo {
			s.EdgeAdd(k, pseudo, 0.0, arcgraph.Faraway)
		}
	}
	for e := s.FirstOut(root); e >= 0; {
		next := s.NextOut(e)
		h := s.Head[e]
		if s.Term[h] == arcgraph.TermProper && s.Term2Edge[h] >= 0 {
			cost := s.Cost[e]
			s.RedirectEdge(e, pseudo, h, cost)
			s.Cost[arcgraph.Flip(e)] = arcgraph.Faraway
			if s.CostOrg != nil {
				s.CostOrg[e] = cost
				s.CostOrg[arcgraph.Flip(e)] = arcgraph.Faraway
			}
		} else if !s.IsTerm(h) || s.Term[h] == arcgraph.TermPseudo {
			s.Cost[e] = bigM
		}
		e = next
	}

	return &SAP{G: s, PseudoRoot: pseudo, BigM: bigM, Offset: nonleaf - bigM}, nil
}

// UpdateBigM re-prices the entry arcs of a built SAP with a sharper bound.
// Useful once a primal solution gives a tighter cap than the prize sum.
// bigM must stay positive and, to remain valid, no smaller than the optimal
// solution value.
func (s *SAP) UpdateBigM(bigM float64) {
	assertf(gt(bigM, 0.0), "UpdateBigM: nonpositive bound %f", bigM)

	g := s.G
	root := g.Source
	for e := g.FirstOut(root); e >= 0; e = g.NextOut(e) {
		if eq(g.Cost[e], s.BigM) {
			g.Cost[e] = bigM
		}
	}
	s.Offset += s.BigM - bigM
	s.BigM = bigM
}

// sapBound computes the big-M entry price: the total collectable prize, so
// that no optimal arborescence ever buys a second entry. For plain PC the
// bound tightens per terminal: a terminal never contributes more than its
// cheapest real approach costs, except the dearest one, which any solution
// may collect outright.
func sapBound(g *arcgraph.Graph) float64 {
	sum := 0.0
	maxPrize := 0.0
	maxAt := -1
	for k := 0; k < g.NumNodes(); k++ {
		if !IsProperPotentialTerm(g, k) {
			continue
		}
		sum += g.Prize[k]
		if g.Prize[k] > maxPrize {
			maxPrize = g.Prize[k]
			maxAt = k
		}
	}
	if g.Kind != arcgraph.KindPC {
		return sum
	}

	for k := 0; k < g.NumNodes(); k++ {
		if k == maxAt || g.Term2Edge[k] < 0 || g.Term[k] != arcgraph.TermPseudo {
			continue
		}
		cheapest := arcgraph.Faraway
		for e := g.FirstIn(k); e >= 0; e = g.NextIn(e) {
			if IsDummyTerm(g, g.Tail[e]) || g.Tail[e] == g.Source {
				continue
			}
			if g.Cost[e] < cheapest {
				cheapest = g.Cost[e]
			}
		}
		if cheapest < g.Prize[k] {
			sum -= g.Prize[k] - cheapest
		}
	}

	return sum
}

// BuildRootedSAP derives a rooted arborescence problem from an unrooted
// transformed graph by promoting saproot, a proper potential terminal, to a
// mandatory root: its twin machinery is dismantled, the remaining twins'
// prize arcs re-home onto it, the entry arcs and the artificial root vanish,
// and every terminal listed in rootcands is additionally fixed. The input
// must be in the extended view and is copied, never mutated.
//
// Used to probe alternative roots of an unrooted instance.
func BuildRootedSAP(g *arcgraph.Graph, saproot int, rootcands []int) (*arcgraph.Graph, error) {
	requirePcMw(g)
	if g.Kind.IsRooted() {
		return nil, ErrRooted
	}
	if !g.Extended {
		return nil, ErrWrongView
	}
	if saproot < 0 || saproot >= g.NumNodes() || g.Term2Edge[saproot] < 0 {
		return nil, ErrBadRoot
	}

	s := g.Copy()
	oldroot := s.Source

	KnotToFixedTerm(s, saproot)

	for e := s.FirstOut(oldroot); e >= 0; {
		next := s.NextOut(e)
		h := s.Head[e]
		if s.Term[h] == arcgraph.TermProper && s.Term2Edge[h] >= 0 {
			cost := s.Cost[e]
			s.RedirectEdge(e, saproot, h, cost)
			s.Cost[arcgraph.Flip(e)] = arcgraph.Faraway
			if s.CostOrg != nil {
				s.CostOrg[e] = cost
				s.CostOrg[arcgraph.Flip(e)] = arcgraph.Faraway
			}
		} else {
			// Zero-cost entry placeholder; the rooted form has none.
			s.EdgeDel(e)
		}
		e = next
	}

	s.KnotDel(oldroot)
	s.KnotChg(oldroot, arcgraph.TermNone)
	s.Term2Edge[oldroot] = arcgraph.NoTerm
	s.Prize[oldroot] = 0.0
	s.Mark[oldroot] = false
	s.Source = saproot

	if s.Kind == arcgraph.KindPC {
		s.Kind = arcgraph.KindRPC
	} else {
		s.Kind = arcgraph.KindRMW
	}

	for _, k := range rootcands {
		if k == saproot || k < 0 || k >= s.NumNodes() {
			continue
		}
		if s.Term2Edge[k] >= 0 {
			KnotToFixedTerm(s, k)
		}
	}

	return s, nil
}
