package sap

import "github.com/katalvlaran/steinerx/arcgraph"

// PrimalHeuristic produces a feasible arborescence: a dual ascent pass
// yields reduced costs, shortest paths restricted to saturated (zero reduced
// cost) arcs connect the terminals, and strong pruning cuts every subtree
// whose cost exceeds its collectable worth.
func PrimalHeuristic(p *Problem) *Solution {
	_, reduced, _ := DualAscent(p, make([]bool, p.Arcs))
	s := shortestPath(p, reduced)
	strongPrune(s, p, p.Root, make([]float64, p.Nodes))

	return s
}

// Solve bridges a transformed graph, runs the primal heuristic and projects
// the tree back onto the graph's arc ids.
func Solve(g *arcgraph.Graph) ([]bool, *Solution, error) {
	p, err := FromGraph(g)
	if err != nil {
		return nil, nil, err
	}
	s := PrimalHeuristic(p)

	return s.ArcMask(g), s, nil
}

// shortestPath grows the solution from the root, repeatedly attaching the
// nearest unconnected terminal along arcs the dual left saturated. Distances
// inside the tree reset to zero, so later terminals attach to the whole tree
// rather than to the root alone.
func shortestPath(p *Problem, reduced []float64) *Solution {
	s := NewSolution(p)
	q := &minQueue{}
	dist := make([]float64, p.Nodes)
	backArc := make([]int, p.Nodes)
	for i := range dist {
		dist[i] = arcgraph.Faraway
	}

	q.Push(&queueItem{value: p.Root})
	s.Nodes[p.Root] = true
	dist[p.Root] = 0

	for q.Len() > 0 {
		v := q.Pop().value
		if p.Terminal[v] && !s.Nodes[v] {
			// Walk the back arcs until the existing tree is reached.
			for !s.Nodes[v] {
				s.Nodes[v] = true
				s.Profit += p.Prize[v]
				dist[v] = 0

				arc := backArc[v]
				s.Arcs[arc] = true
				s.Profit -= p.Cost[arc]

				q.Push(&queueItem{value: v})
				v = p.Src[arc]
			}

			continue
		}
		for _, arc := range p.Outgoing[v] {
			if reduced[arc] != 0 {
				continue
			}
			dst := p.Dst[arc]
			total := dist[v] + p.Cost[arc]
			if total < dist[dst] {
				dist[dst] = total
				backArc[dst] = arc
				q.Push(&queueItem{value: dst, priority: total})
			}
		}
	}

	return s
}

// strongPrune removes every subtree that costs more than it is worth,
// bottom-up. netWorth[v] accumulates the kept value of v's subtree; fixed
// nodes carry the Blocked prize and are never cut.
func strongPrune(s *Solution, p *Problem, v int, netWorth []float64) {
	netWorth[v] = p.Prize[v]
	for _, arc := range p.Outgoing[v] {
		if !s.Arcs[arc] {
			continue
		}
		dst := p.Dst[arc]
		strongPrune(s, p, dst, netWorth)
		if p.Cost[arc] >= netWorth[dst] {
			s.RemoveArc(arc)
			removeSubtree(s, p, dst)
		} else {
			netWorth[v] += netWorth[dst] - p.Cost[arc]
		}
	}
}

// removeSubtree drops dst's whole subtree after its connecting arc is gone.
func removeSubtree(s *Solution, p *Problem, v int) {
	s.Nodes[v] = false
	for _, arc := range p.Outgoing[v] {
		if s.Arcs[arc] {
			s.RemoveArc(arc)
			removeSubtree(s, p, p.Dst[arc])
		}
	}
}
