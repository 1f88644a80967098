// Package pcmw — the original ⇄ extended view toggle.
//
// Toggling never changes node/arc counts (aside from non-leaf re-evaluation
// dismantling a twin when a terminal newly qualifies): it swaps terminal tags
// between a terminal and its twin, and for prize-collecting kinds shifts the
// costs of arcs into non-leaf terminals, keeping the unshifted values in
// CostOrg so ToOriginal restores them bit-for-bit.
package pcmw

import "github.com/katalvlaran/steinerx/arcgraph"

// ToExtended switches an original-view PC/MW graph to the extended view
// consumed by arborescence solvers. For prize-collecting kinds it first
// re-runs non-leaf detection (EvalTermIsNonLeaf) so newly qualifying
// terminals are demoted, then snapshots costs into CostOrg and applies the
// non-leaf shift. Returns ErrWrongView if already extended.
func ToExtended(g *arcgraph.Graph) error {
	requirePcMw(g)
	if g.Extended {
		return ErrWrongView
	}

	// Non-leaf re-evaluation must happen in the original view, before tags
	// swap. MW kinds carry no cost shift and skip it.
	if g.Kind.IsPc() {
		for k := 0; k < g.NumNodes(); k++ {
			if IsProperPotentialTerm(g, k) && EvalTermIsNonLeaf(g, k) {
				KnotToNonLeafTerm(g, k, false)
			}
		}
	}

	for k := 0; k < g.NumNodes(); k++ {
		switch g.Term[k] {
		case arcgraph.TermPseudo:
			// The twin now counts as the real terminal position.
			g.KnotChg(k, arcgraph.TermProper)
		case arcgraph.TermProper:
			switch {
			case g.Term2Edge[k] == arcgraph.FixedTerm:
				// Fixed terminals look the same in both views.
			case g.Term2Edge[k] == arcgraph.NonLeafTerm:
				g.KnotChg(k, arcgraph.TermNonLeaf)
			default:
				assertf(g.Term2Edge[k] >= 0, "ToExtended: terminal %d without twin machinery", k)
				g.KnotChg(k, arcgraph.TermPseudo)
			}
		}
	}
	g.Extended = true

	if g.Kind.IsPc() {
		shiftNonLeafCosts(g)
	}

	return nil
}

// ToOriginal switches back to the compact original view, restoring the
// unshifted costs for prize-collecting kinds (MW kinds carry no shift).
// Returns ErrWrongView if already original.
func ToOriginal(g *arcgraph.Graph) error {
	requirePcMw(g)
	if !g.Extended {
		return ErrWrongView
	}

	if g.Kind.IsPc() && g.CostOrg != nil {
		copy(g.Cost, g.CostOrg)
	}

	for k := 0; k < g.NumNodes(); k++ {
		switch g.Term[k] {
		case arcgraph.TermPseudo, arcgraph.TermNonLeaf:
			g.KnotChg(k, arcgraph.TermProper)
		case arcgraph.TermProper:
			if g.Term2Edge[k] >= 0 {
				// Twins step back into the pseudo position.
				g.KnotChg(k, arcgraph.TermPseudo)
			}
		}
	}
	g.Extended = false

	return nil
}

// ToExtendedIfNeeded is the idempotent variant of ToExtended.
func ToExtendedIfNeeded(g *arcgraph.Graph) error {
	if g.Extended {
		return nil
	}

	return ToExtended(g)
}

// ToOriginalIfNeeded is the idempotent variant of ToOriginal.
func ToOriginalIfNeeded(g *arcgraph.Graph) error {
	if !g.Extended {
		return nil
	}

	return ToOriginal(g)
}

// shiftNonLeafCosts snapshots the current costs into CostOrg and subtracts
// each non-leaf terminal's prize from its non-blocked inbound arcs, clamping
// at zero. A pre-shift cost more than the numeric tolerance below the prize
// is a logic error and panics; the clamp only absorbs floating-point noise
// at the zero boundary.
func shiftNonLeafCosts(g *arcgraph.Graph) {
	if g.CostOrg == nil {
		g.CostOrg = make([]float64, len(g.Cost))
	}
	copy(g.CostOrg, g.Cost)

	for k := 0; k < g.NumNodes(); k++ {
		if g.Term[k] != arcgraph.TermNonLeaf {
			continue
		}
		for e := g.FirstIn(k); e >= 0; e = g.NextIn(e) {
			if g.Cost[e] >= arcgraph.Blocked {
				continue
			}
			shifted := g.Cost[e] - g.Prize[k]
			assertf(shifted >= -epsilon,
				"shiftNonLeafCosts: arc %d into terminal %d shifts to %g", e, k, shifted)
			if shifted < 0 {
				shifted = 0
			}
			g.Cost[e] = shifted
		}
	}
}
