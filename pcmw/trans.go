// Package pcmw — one-time structural conversions.
//
// Each conversion is called exactly once per graph, right after instance
// creation, and rewrites the graph so a rooted arborescence algorithm can
// solve it: every proper terminal receives a synthetic twin wired through the
// root, non-leaf-qualifying terminals are demoted cost-free beforehand, and
// the graph ends up in the extended view with shifted costs (PC kinds).
//
// Twin wiring per proper terminal t with prize p (unrooted kinds):
//
//	root→t     cost 0   (entry placeholder, priced by the SAP builder)
//	root→twin  cost p   ("do not collect t" at the price of its prize)
//	t→twin     cost 0   (Term2Edge on both ends, mutually flipped)
//
// Rooted kinds skip the entry placeholder: the tree starts at the real root.
// All reverse arcs are Faraway (one-directional).
package pcmw

import "github.com/katalvlaran/steinerx/arcgraph"

// TransformPC converts an unrooted prize-collecting instance (kind KindPC,
// prizes set, no twin machinery yet) into its extended representation with a
// fresh artificial root. Nodes with positive prize become terminals; nodes
// with unset prize are normalized to zero. Returns ErrAlreadyTransformed on
// repeated invocation and ErrNoTerminals for a prize-free instance.
func TransformPC(g *arcgraph.Graph) error {
	if err := transformGuard(g, arcgraph.KindPC); err != nil {
		return err
	}

	nterms := normalizePrizes(g)
	if nterms == 0 {
		return ErrNoTerminals
	}

	// Cost-free demotion: a terminal every one of whose inbound arcs is
	// strictly dearer than its prize never helps as a leaf; it needs no twin.
	// Strict comparison keeps boundary terminals (cost == prize) leaf-capable
	// here; the view toggle re-evaluates with the weak criterion later.
	properLeft := demoteNonLeafPretrans(g, nterms)

	root := g.KnotAdd(arcgraph.TermProper)
	g.Prize[root] = 0.0 // artificial root collects nothing
	g.Term2Edge[root] = arcgraph.FixedTerm
	g.Source = root

	if err := g.EnsureArcCapacity(3 * properLeft); err != nil {
		return err
	}
	attachTwins(g, root, true)

	g.Extended = true
	g.InitAncestors()
	shiftNonLeafCosts(g)

	return nil
}

// TransformRootedPC converts a rooted prize-collecting instance: the single
// node with prize ≥ Faraway is the mandatory root, other Faraway-prized
// nodes become fixed terminals, and only non-fixed positive-prize terminals
// receive twins. No entry placeholders are added.
func TransformRootedPC(g *arcgraph.Graph) error {
	if err := transformGuard(g, arcgraph.KindRPC); err != nil {
		return err
	}

	root := -1
	for k := 0; k < g.NumNodes(); k++ {
		if g.PrizeIsSet(k) && g.Prize[k] >= arcgraph.Faraway {
			root = k

			break
		}
	}
	if root < 0 {
		return ErrBadRoot
	}
	g.Source = root

	nterms := normalizePrizes(g)
	if nterms == 0 {
		return ErrNoTerminals
	}
	demoteNonLeafPretrans(g, nterms)

	// Fixed terminals: the root plus every other Faraway-prized node.
	for k := 0; k < g.NumNodes(); k++ {
		if g.Prize[k] >= arcgraph.Faraway {
			g.KnotChg(k, arcgraph.TermProper)
			g.Term2Edge[k] = arcgraph.FixedTerm
		}
	}

	if err := g.EnsureArcCapacity(2 * g.Terms); err != nil {
		return err
	}
	attachTwins(g, root, false)

	g.Extended = true
	g.InitAncestors()
	shiftNonLeafCosts(g)

	return nil
}

// TransformMW converts an unrooted maximum-weight instance (kind KindMW,
// node weights in Prize, possibly negative): inbound arcs of negative-weight
// nodes are charged the weight's magnitude, positive-weight nodes become
// terminals, and the PC twin machinery is attached. MW graphs carry no
// non-leaf cost shift; negative weights stay in Prize for the contraction
// engine's bookkeeping.
func TransformMW(g *arcgraph.Graph) error {
	if err := transformGuard(g, arcgraph.KindMW); err != nil {
		return err
	}

	nterms := chargeNegativeWeights(g)
	if nterms == 0 {
		return ErrNoTerminals
	}

	root := g.KnotAdd(arcgraph.TermProper)
	g.Prize[root] = 0.0
	g.Term2Edge[root] = arcgraph.FixedTerm
	g.Source = root

	if err := g.EnsureArcCapacity(3 * nterms); err != nil {
		return err
	}
	attachTwins(g, root, true)

	g.Extended = true
	g.InitAncestors()

	return nil
}

// TransformRootedMW is the rooted maximum-weight variant: the Faraway-prized
// node is the mandatory root, and terminals attach twins without entry
// placeholders.
func TransformRootedMW(g *arcgraph.Graph) error {
	if err := transformGuard(g, arcgraph.KindRMW); err != nil {
		return err
	}

	root := -1
	for k := 0; k < g.NumNodes(); k++ {
		if g.PrizeIsSet(k) && g.Prize[k] >= arcgraph.Faraway {
			root = k

			break
		}
	}
	if root < 0 {
		return ErrBadRoot
	}
	g.Source = root

	nterms := chargeNegativeWeights(g)
	if nterms == 0 {
		return ErrNoTerminals
	}

	for k := 0; k < g.NumNodes(); k++ {
		if g.Prize[k] >= arcgraph.Faraway {
			g.KnotChg(k, arcgraph.TermProper)
			g.Term2Edge[k] = arcgraph.FixedTerm
		}
	}

	if err := g.EnsureArcCapacity(2 * g.Terms); err != nil {
		return err
	}
	attachTwins(g, root, false)

	g.Extended = true
	g.InitAncestors()

	return nil
}

// TryRootedTransform opportunistically rewrites an unrooted PC/MW graph into
// its rooted variant: any potential terminal whose synthetic root-arc cost
// (its prize) already exceeds prizeUpper — an upper bound on achievable total
// prize — can never be excluded from an optimal solution and is permanently
// fixed. If at least one terminal was fixed, the fixed terminal of highest
// degree becomes the new root, remaining synthetic arcs are redirected to it,
// the old artificial root is deleted, and the kind switches to the rooted
// variant.
//
// Best-effort: with zero fixable terminals the graph is left untouched and 0
// is returned; callers must branch on the outcome (or the rooted predicate)
// rather than assume success. Original view only.
func TryRootedTransform(g *arcgraph.Graph, prizeUpper float64) int {
	requirePcMw(g)
	assertf(!g.Kind.IsRooted(), "TryRootedTransform: graph already rooted")
	assertf(!g.Extended, "TryRootedTransform: extended view")

	oldroot := g.Source

	// Twin arcs out of the root carry the origin terminal's prize; entry
	// placeholders carry zero and never exceed the bound.
	nfixed := 0
	for e := g.FirstOut(oldroot); e >= 0; {
		next := g.NextOut(e)
		h := g.Head[e]
		if IsDummyTerm(g, h) && h != oldroot && gt(g.Cost[e], prizeUpper) {
			origin := g.Head[g.Term2Edge[h]]
			// KnotToFixedTerm dismantles the twin, including this arc.
			KnotToFixedTerm(g, origin)
			nfixed++
			// The dismantling may have removed next as well; restart.
			next = g.FirstOut(oldroot)
		}
		e = next
	}
	if nfixed == 0 {
		return 0
	}

	// The highest-degree fixed terminal becomes the new root.
	newroot := -1
	for k := 0; k < g.NumNodes(); k++ {
		if k == oldroot || !IsFixedTerm(g, k) {
			continue
		}
		if newroot < 0 || g.Grad[k] > g.Grad[newroot] {
			newroot = k
		}
	}
	assertf(newroot >= 0, "TryRootedTransform: fixed %d terminals but found no root", nfixed)

	// Re-home the surviving twin arcs; entry placeholders die with the root.
	for e := g.FirstOut(oldroot); e >= 0; {
		next := g.NextOut(e)
		h := g.Head[e]
		if IsDummyTerm(g, h) && h != oldroot {
			if g.FindArc(newroot, h) >= 0 {
				g.EdgeDel(e)
			} else {
				cost := g.Cost[e]
				g.RedirectEdge(e, newroot, h, cost)
				g.Cost[arcgraph.Flip(e)] = arcgraph.Faraway
				if g.CostOrg != nil {
					g.CostOrg[e] = cost
					g.CostOrg[arcgraph.Flip(e)] = arcgraph.Faraway
				}
			}
		}
		e = next
	}

	g.KnotDel(oldroot)
	g.KnotChg(oldroot, arcgraph.TermNone)
	g.Term2Edge[oldroot] = arcgraph.NoTerm
	g.Prize[oldroot] = 0.0
	g.Mark[oldroot] = false
	g.Source = newroot

	if g.Kind == arcgraph.KindPC {
		g.Kind = arcgraph.KindRPC
	} else {
		g.Kind = arcgraph.KindRMW
	}

	return nfixed
}

// transformGuard validates kind and one-shot usage of a conversion.
func transformGuard(g *arcgraph.Graph, want arcgraph.GraphKind) error {
	if g.Kind != want || g.Prize == nil || g.Term2Edge == nil {
		return ErrNotPcMw
	}
	if g.Extended || isTransformed(g) {
		return ErrAlreadyTransformed
	}

	return nil
}

// isTransformed reports whether twin machinery already exists.
func isTransformed(g *arcgraph.Graph) bool {
	return g.Source >= 0 && g.Source < g.NumNodes() &&
		g.Term2Edge[g.Source] == arcgraph.FixedTerm
}

// normalizePrizes derives terminal tags from prizes for PC kinds: positive
// prize ⇒ TermProper; unset or non-positive ⇒ plain node with prize zero
// (Faraway-prized fixed candidates keep their sentinel). Returns the number
// of non-fixed terminals.
func normalizePrizes(g *arcgraph.Graph) int {
	nterms := 0
	for k := 0; k < g.NumNodes(); k++ {
		if !g.PrizeIsSet(k) {
			g.Prize[k] = 0.0
		}
		switch {
		case g.Prize[k] >= arcgraph.Faraway:
			// Fixed candidate; classified by the rooted conversions.
		case gt(g.Prize[k], 0.0):
			g.KnotChg(k, arcgraph.TermProper)
			nterms++
		default:
			g.KnotChg(k, arcgraph.TermNone)
			g.Prize[k] = 0.0
		}
	}

	return nterms
}

// chargeNegativeWeights prepares an MW instance: inbound arcs of
// negative-weight nodes are made expensive by the weight's magnitude, and
// positive-weight nodes become terminals. Returns the non-fixed terminal
// count.
func chargeNegativeWeights(g *arcgraph.Graph) int {
	nterms := 0
	for k := 0; k < g.NumNodes(); k++ {
		if !g.PrizeIsSet(k) {
			g.Prize[k] = 0.0
		}
		switch {
		case g.Prize[k] >= arcgraph.Faraway:
		case gt(g.Prize[k], 0.0):
			g.KnotChg(k, arcgraph.TermProper)
			nterms++
		case lt(g.Prize[k], 0.0):
			for e := g.FirstIn(k); e >= 0; e = g.NextIn(e) {
				if g.Cost[e] < arcgraph.Blocked {
					g.Cost[e] += -g.Prize[k]
				}
			}
			g.KnotChg(k, arcgraph.TermNone)
		default:
			g.KnotChg(k, arcgraph.TermNone)
		}
	}

	return nterms
}

// demoteNonLeafPretrans flags terminals that strictly never help as a leaf
// (every inbound arc strictly dearer than the prize) with the NonLeafTerm
// regime before twins are attached, keeping at least one proper terminal.
// Returns the number of proper terminals left.
func demoteNonLeafPretrans(g *arcgraph.Graph, nterms int) int {
	properLeft := nterms
	for k := 0; k < g.NumNodes() && properLeft > 1; k++ {
		if g.Term[k] != arcgraph.TermProper || g.Prize[k] >= arcgraph.Faraway {
			continue
		}
		strictly := true
		for e := g.FirstIn(k); e >= 0; e = g.NextIn(e) {
			if !gt(g.Cost[e], g.Prize[k]) {
				strictly = false

				break
			}
		}
		if strictly {
			g.Term2Edge[k] = arcgraph.NonLeafTerm
			properLeft--
		}
	}

	return properLeft
}

// attachTwins wires the synthetic machinery for every proper non-fixed
// terminal without a regime yet. In the extended layout built here the
// original terminal takes the pseudo position and the twin the proper one;
// non-leaf terminals take the NonLeaf tag.
func attachTwins(g *arcgraph.Graph, root int, entryArcs bool) {
	nnodes := g.NumNodes() // twins appended below must not be revisited
	for k := 0; k < nnodes; k++ {
		if k == root || g.Term[k] != arcgraph.TermProper {
			continue
		}
		if g.Term2Edge[k] == arcgraph.FixedTerm {
			continue
		}
		if g.Term2Edge[k] == arcgraph.NonLeafTerm {
			g.KnotChg(k, arcgraph.TermNonLeaf)

			continue
		}

		if entryArcs {
			g.EdgeAdd(root, k, 0.0, arcgraph.Faraway)
		}
		twin := g.KnotAdd(arcgraph.TermNone)
		g.Prize[twin] = 0.0
		g.EdgeAdd(root, twin, g.Prize[k], arcgraph.Faraway)
		e := g.EdgeAdd(k, twin, 0.0, arcgraph.Faraway)
		g.Term2Edge[k] = e
		g.Term2Edge[twin] = arcgraph.Flip(e)
		g.KnotChg(k, arcgraph.TermPseudo)
		g.KnotChg(twin, arcgraph.TermProper)
	}
}
