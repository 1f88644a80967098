package arcgraph

// Provenance bookkeeping. Ancestor lists record which original nodes /
// edge pairs a surviving slot represents after repeated contraction, so that
// prizes absorbed along the way can be re-attributed when a final solution is
// mapped back to the input instance.
//
// Lists are append-only and lazily materialized: a nil list means the slot
// represents only itself.

// InitAncestors enables provenance tracking. Must be called before the first
// contraction if ancestry is wanted; conversions in package pcmw call it.
func (g *Graph) InitAncestors() {
	if g.NodeAncestors == nil {
		g.NodeAncestors = make([][]int, len(g.Term))
	}
	if g.EdgeAncestors == nil {
		g.EdgeAncestors = make([][]int, len(g.Cost)>>1)
	}
}

// KnotAncestors returns the list of original node ids represented by k,
// always including k itself.
func (g *Graph) KnotAncestors(k int) []int {
	g.knotInRange(k)
	if g.NodeAncestors == nil {
		return []int{k}
	}

	return append([]int{k}, g.NodeAncestors[k]...)
}

// MergeKnotAncestors appends s's ancestry (including s itself) onto t's.
// Called by the contraction engine before the survivor absorbs s.
func (g *Graph) MergeKnotAncestors(t, s int) {
	g.knotInRange(t)
	g.knotInRange(s)
	if g.NodeAncestors == nil {
		return
	}
	g.NodeAncestors[t] = append(g.NodeAncestors[t], s)
	g.NodeAncestors[t] = append(g.NodeAncestors[t], g.NodeAncestors[s]...)
	g.NodeAncestors[s] = nil
}

// mergeEdgeAncestors folds the ancestry of the pair holding arc src into the
// pair holding arc dst when two parallel pairs collapse into one.
func (g *Graph) mergeEdgeAncestors(dst, src int) {
	if g.EdgeAncestors == nil {
		return
	}
	d, s := PairID(dst), PairID(src)
	g.EdgeAncestors[d] = append(g.EdgeAncestors[d], s)
	g.EdgeAncestors[d] = append(g.EdgeAncestors[d], g.EdgeAncestors[s]...)
	g.EdgeAncestors[s] = nil
}
