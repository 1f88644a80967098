package sap

import "math"

// DualAscent raises a dual bound on the minimum arborescence cost: active
// terminal components grow along incoming arcs, each step saturating the
// cheapest arc entering the component and charging the increase to the
// terminal's residual prize (fixed terminals have unlimited residual).
//
// feasiblePrimal optionally marks the arcs of a known feasible solution and
// steers which component is grown next; pass a zero slice of length p.Arcs
// when none is known.
//
// Returns the lower bound, the reduced arc costs and the residual prizes.
func DualAscent(p *Problem, feasiblePrimal []bool) (lowerBound float64, reduced []float64, residual []float64) {
	reduced = make([]float64, p.Arcs)
	copy(reduced, p.Cost)
	residual = make([]float64, p.Nodes)
	copy(residual, p.Prize)

	active := initialQueue(p)
	for active.Len() > 0 {
		k := active.Pop().value
		component := activeComponent(p, reduced, k)
		if component[p.Root] {
			continue
		}
		inArcs := componentInArcs(p, component)
		if len(inArcs) == 0 {
			// Component unreachable from outside: infeasible terminal.
			continue
		}
		delta := cheapestEntry(reduced, inArcs)
		if !p.Fixed[k] {
			if delta > residual[k] {
				delta = residual[k]
			}
			residual[k] -= delta
		}
		for arc := range inArcs {
			reduced[arc] -= delta
		}
		if residual[k] != 0 || p.Fixed[k] {
			requeue(p, active, k, component, feasiblePrimal, inArcs)
		}
		lowerBound += delta
	}

	return lowerBound, reduced, residual
}

// initialQueue seeds one active component per terminal.
func initialQueue(p *Problem) *minQueue {
	q := &minQueue{}
	for k := 0; k < p.Nodes; k++ {
		if k != p.Root && p.Terminal[k] {
			q.Push(&queueItem{value: k, priority: 1})
		}
	}

	return q
}

// activeComponent marks every node from which k is reachable over arcs of
// zero reduced cost.
func activeComponent(p *Problem, reduced []float64, k int) []bool {
	seen := make([]bool, p.Nodes)
	seen[k] = true
	stack := []int{k}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, arc := range p.Incoming[v] {
			if reduced[arc] != 0 {
				continue
			}
			if u := p.Src[arc]; !seen[u] {
				seen[u] = true
				stack = append(stack, u)
			}
		}
	}

	return seen
}

// componentInArcs collects the arcs crossing into the component.
func componentInArcs(p *Problem, component []bool) map[int]bool {
	inArcs := make(map[int]bool)
	for v := 0; v < p.Nodes; v++ {
		if !component[v] {
			continue
		}
		for _, arc := range p.Incoming[v] {
			if !component[p.Src[arc]] {
				inArcs[arc] = true
			}
		}
	}

	return inArcs
}

// cheapestEntry returns the minimum reduced cost over the entering arcs.
func cheapestEntry(reduced []float64, inArcs map[int]bool) float64 {
	min := math.MaxFloat64
	for arc := range inArcs {
		if reduced[arc] < min {
			min = reduced[arc]
		}
	}

	return min
}

// requeue scores the still-active component so that small, weakly connected
// components are grown first; crossing more than one arc of the known primal
// solution is penalized, since saturating those arcs erodes the bound the
// primal side already certifies.
func requeue(p *Problem, active *minQueue, k int, component []bool, feasiblePrimal []bool, inArcs map[int]bool) {
	score := 0
	size := 0
	for v := 0; v < p.Nodes; v++ {
		if component[v] {
			score += len(p.Incoming[v])
			size++
		}
	}
	score -= size - 1

	crossings := 0
	for arc := range inArcs {
		if feasiblePrimal[arc] {
			crossings++
		}
	}
	if penalty := (crossings - 1) * p.Nodes; penalty > 0 {
		score += penalty
	}
	active.Push(&queueItem{value: k, priority: float64(score)})
}
