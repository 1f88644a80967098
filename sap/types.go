package sap

import (
	"errors"

	"github.com/katalvlaran/steinerx/arcgraph"
)

var (
	// ErrNoRoot indicates the bridged graph has no designated source node.
	ErrNoRoot = errors.New("sap: graph has no root")

	// ErrWrongView indicates a transformed graph was bridged in its original
	// view; the solver needs the extended (arborescence) form.
	ErrWrongView = errors.New("sap: graph must be in the extended view")
)

// Problem is the flat arborescence instance the solver iterates over: arcs
// are dense and indexed 0..Arcs-1, adjacency is materialized per node. Build
// one with FromGraph or fill the fields directly for synthetic instances.
type Problem struct {
	Arcs int
	Cost []float64 // arc cost, non-negative
	Src  []int
	Dst  []int

	Root     int
	Nodes    int
	Prize    []float64 // reward for connecting the node; 0 for plain nodes
	Fixed    []bool    // node must be in every feasible solution
	Terminal []bool    // Fixed or positive prize
	Incoming [][]int
	Outgoing [][]int

	// ArcID maps a Problem arc back to the originating graph's arc id;
	// nil when the Problem was not bridged from an arcgraph.Graph.
	ArcID []int
}

// FromGraph flattens the live arcs of a transformed graph into a Problem.
// Mandatory nodes (terminal tags of the extended view) get the Blocked
// sentinel as prize so the pruning stage never cuts them; genuine prizes are
// already encoded in the graph's synthetic arcs and are not repeated here.
// Arcs at or above the Faraway sentinel are unusable and dropped.
func FromGraph(g *arcgraph.Graph) (*Problem, error) {
	if g.Source < 0 {
		return nil, ErrNoRoot
	}
	if g.Kind.IsPcMw() && !g.Extended {
		return nil, ErrWrongView
	}

	p := &Problem{
		Root:     g.Source,
		Nodes:    g.NumNodes(),
		Prize:    make([]float64, g.NumNodes()),
		Fixed:    make([]bool, g.NumNodes()),
		Terminal: make([]bool, g.NumNodes()),
		Incoming: make([][]int, g.NumNodes()),
		Outgoing: make([][]int, g.NumNodes()),
	}
	for k := 0; k < g.NumNodes(); k++ {
		if g.Term[k] != arcgraph.TermProper {
			continue
		}
		p.Fixed[k] = true
		p.Terminal[k] = true
		p.Prize[k] = arcgraph.Blocked
	}

	for e := 0; e < g.NumArcs(); e++ {
		if g.ArcIsDeleted(e) || g.Cost[e] >= arcgraph.Faraway {
			continue
		}
		id := p.Arcs
		p.Arcs++
		p.Cost = append(p.Cost, g.Cost[e])
		p.Src = append(p.Src, g.Tail[e])
		p.Dst = append(p.Dst, g.Head[e])
		p.ArcID = append(p.ArcID, e)
		p.Outgoing[g.Tail[e]] = append(p.Outgoing[g.Tail[e]], id)
		p.Incoming[g.Head[e]] = append(p.Incoming[g.Head[e]], id)
	}

	return p, nil
}

// Solution is a tree under construction: Arcs and Nodes flag membership,
// Profit tracks collected prizes minus paid arc costs incrementally.
type Solution struct {
	Arcs    []bool
	Nodes   []bool
	Problem *Problem
	Profit  float64
}

// NewSolution returns an empty solution for p. The root is not yet marked;
// the building routines add it.
func NewSolution(p *Problem) *Solution {
	return &Solution{
		Problem: p,
		Arcs:    make([]bool, p.Arcs),
		Nodes:   make([]bool, p.Nodes),
	}
}

// BuildArc adds an arc whose source is already connected, maintaining
// Profit and node membership.
func (s *Solution) BuildArc(arc int) {
	if s.Arcs[arc] {
		panic("sap: arc already built")
	}
	dst := s.Problem.Dst[arc]
	s.Nodes[dst] = true
	s.Arcs[arc] = true
	s.Profit += s.Problem.Prize[dst] - s.Problem.Cost[arc]
}

// RemoveArc drops a leaf-side arc, maintaining Profit and node membership.
func (s *Solution) RemoveArc(arc int) {
	if !s.Arcs[arc] {
		panic("sap: arc not built")
	}
	dst := s.Problem.Dst[arc]
	s.Nodes[dst] = false
	s.Arcs[arc] = false
	s.Profit += s.Problem.Cost[arc] - s.Problem.Prize[dst]
}

// ArcCost sums the cost of the solution's arcs.
func (s *Solution) ArcCost() float64 {
	total := 0.0
	for arc, in := range s.Arcs {
		if in {
			total += s.Problem.Cost[arc]
		}
	}

	return total
}

// ArcMask projects the solution back onto the originating graph's arc ids.
// Panics if the Problem was not bridged with FromGraph.
func (s *Solution) ArcMask(g *arcgraph.Graph) []bool {
	if s.Problem.ArcID == nil {
		panic("sap: problem was not bridged from a graph")
	}
	mask := make([]bool, g.NumArcs())
	for arc, in := range s.Arcs {
		if in {
			mask[s.Problem.ArcID[arc]] = true
		}
	}

	return mask
}
