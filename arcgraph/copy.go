package arcgraph

// Copy returns a fully independent deep copy of g. No slice storage is shared
// with the receiver, so the copy may be mutated (or handed to another solve)
// without aliasing concerns.
func (g *Graph) Copy() *Graph {
	c := &Graph{
		Kind:     g.Kind,
		Source:   g.Source,
		Extended: g.Extended,
		Terms:    g.Terms,

		Term:   append([]TermState(nil), g.Term...),
		Mark:   append([]bool(nil), g.Mark...),
		Grad:   append([]int(nil), g.Grad...),
		outBeg: append([]int(nil), g.outBeg...),
		inBeg:  append([]int(nil), g.inBeg...),

		Tail:    append([]int(nil), g.Tail...),
		Head:    append([]int(nil), g.Head...),
		Cost:    append([]float64(nil), g.Cost...),
		outNext: append([]int(nil), g.outNext...),
		outPrev: append([]int(nil), g.outPrev...),
		inNext:  append([]int(nil), g.inNext...),
		inPrev:  append([]int(nil), g.inPrev...),
	}
	if g.Prize != nil {
		c.Prize = append([]float64(nil), g.Prize...)
	}
	if g.Term2Edge != nil {
		c.Term2Edge = append([]int(nil), g.Term2Edge...)
	}
	if g.CostOrg != nil {
		c.CostOrg = append([]float64(nil), g.CostOrg...)
	}
	if g.NodeAncestors != nil {
		c.NodeAncestors = copyLists(g.NodeAncestors)
	}
	if g.EdgeAncestors != nil {
		c.EdgeAncestors = copyLists(g.EdgeAncestors)
	}

	return c
}

// EnsureArcCapacity grows the arc-side slices so that at least extra more
// pairs can be appended without reallocation. Conversions pre-size with this
// before bulk EdgeAdd runs. Returns ErrBadCapacity for negative extra.
func (g *Graph) EnsureArcCapacity(extra int) error {
	if extra < 0 {
		return ErrBadCapacity
	}
	need := len(g.Cost) + 2*extra
	if cap(g.Cost) >= need {
		return nil
	}
	g.Tail = growInts(g.Tail, need)
	g.Head = growInts(g.Head, need)
	g.Cost = growFloats(g.Cost, need)
	if g.CostOrg != nil {
		g.CostOrg = growFloats(g.CostOrg, need)
	}
	g.outNext = growInts(g.outNext, need)
	g.outPrev = growInts(g.outPrev, need)
	g.inNext = growInts(g.inNext, need)
	g.inPrev = growInts(g.inPrev, need)

	return nil
}

func copyLists(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i, l := range src {
		if l != nil {
			dst[i] = append([]int(nil), l...)
		}
	}

	return dst
}

func growInts(s []int, need int) []int {
	out := make([]int, len(s), need)
	copy(out, s)

	return out
}

func growFloats(s []float64, need int) []float64 {
	out := make([]float64, len(s), need)
	copy(out, s)

	return out
}
