package pcmw_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerx/arcgraph"
	"github.com/katalvlaran/steinerx/pcmw"
)

func TestContractEdgeBothTerminals(t *testing.T) {
	// 0 and 1 are terminals joined by a cost-2 edge; 2 hangs off 1.
	g := arcgraph.New(arcgraph.KindPC, 3, 6)
	g.KnotAdd(arcgraph.TermProper)
	g.KnotAdd(arcgraph.TermProper)
	g.KnotAdd(arcgraph.TermNone)
	g.Prize[0] = 5.0
	g.Prize[1] = 3.0
	g.Prize[2] = 0.0
	g.EdgeAdd(0, 1, 2.0, 2.0)
	g.EdgeAdd(1, 2, 4.0, 4.0)

	pcmw.ContractEdge(g, 0, 1, 0)

	// Collecting the merged node is worth both prizes minus the paid edge.
	require.InDelta(t, 6.0, g.Prize[0], 1e-12)
	require.Zero(t, g.Prize[1])
	require.False(t, g.IsTerm(1))
	require.Zero(t, g.Grad[1])
	require.GreaterOrEqual(t, g.FindArc(0, 2), 0)
	require.True(t, g.AdjacencyIsConsistent())
}

func TestContractEdgeTerminalIntoPlain(t *testing.T) {
	g := arcgraph.New(arcgraph.KindPC, 2, 4)
	g.KnotAdd(arcgraph.TermNone)
	g.KnotAdd(arcgraph.TermProper)
	g.Prize[0] = 0.0
	g.Prize[1] = 3.0
	g.EdgeAdd(0, 1, 2.0, 2.0)

	pcmw.ContractEdge(g, 0, 1, 0)

	// The prize moves over, net of the connecting edge.
	require.True(t, g.IsTerm(0))
	require.InDelta(t, 1.0, g.Prize[0], 1e-12)
	require.False(t, g.IsTerm(1))
}

func TestContractEdgeOnTransformedGraph(t *testing.T) {
	g := arcgraph.New(arcgraph.KindPC, 4, 16)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 0.0
	for leaf := 1; leaf <= 3; leaf++ {
		g.Prize[leaf] = 5.0
		g.EdgeAdd(0, leaf, 1.0, 1.0)
	}
	require.NoError(t, pcmw.TransformPC(g))
	require.NoError(t, pcmw.ToOriginal(g))

	pcmw.ContractEdge(g, 0, 1, 0)

	// The center inherits leaf 1's terminal role with fresh twin machinery.
	require.True(t, g.IsTerm(0))
	require.GreaterOrEqual(t, g.Term2Edge[0], 0)
	require.InDelta(t, 4.0, g.Prize[0], 1e-12)
	require.False(t, g.IsTerm(1))
	require.GreaterOrEqual(t, g.FindArc(g.Source, pcmw.TwinTerm(g, 0)), 0)

	require.True(t, pcmw.Term2EdgeIsConsistent(g))
	require.True(t, g.AdjacencyIsConsistent())
}

func TestContractEdgeWithFixedEndpoint(t *testing.T) {
	g := arcgraph.New(arcgraph.KindRPC, 3, 6)
	g.KnotAdd(arcgraph.TermProper)
	g.KnotAdd(arcgraph.TermProper)
	g.KnotAdd(arcgraph.TermNone)
	g.Source = 0
	g.Prize[0] = arcgraph.Faraway
	g.Term2Edge[0] = arcgraph.FixedTerm
	g.Prize[1] = 3.0
	g.Prize[2] = 0.0
	g.EdgeAdd(0, 1, 2.0, 2.0)
	g.EdgeAdd(1, 2, 1.0, 1.0)

	pcmw.ContractEdge(g, 1, 0, 1)

	// A fixed endpoint always wins the merge, regardless of argument order.
	require.True(t, pcmw.IsFixedTerm(g, 0))
	require.False(t, g.IsTerm(1))
	require.GreaterOrEqual(t, g.FindArc(0, 2), 0)
}

func TestContractEdgeKeepsFixedOffsetTarget(t *testing.T) {
	g := arcgraph.New(arcgraph.KindRPC, 3, 6)
	g.KnotAdd(arcgraph.TermProper)
	g.KnotAdd(arcgraph.TermProper)
	g.KnotAdd(arcgraph.TermProper)
	g.Source = 0
	g.Prize[0] = arcgraph.Faraway
	g.Term2Edge[0] = arcgraph.FixedTerm
	g.Prize[1] = 4.0
	g.Prize[2] = 6.0
	g.EdgeAdd(0, 1, 1.0, 1.0)
	g.EdgeAdd(1, 2, 2.0, 2.0)

	pcmw.ContractEdge(g, 1, 2, 0)

	// The sentinel prize of a fixed offset target stays out of the
	// adjustment arithmetic; reductions book the delta elsewhere.
	require.Equal(t, arcgraph.Faraway, g.Prize[0])
	require.True(t, pcmw.IsFixedTerm(g, 0))
	require.False(t, g.IsTerm(2))
	require.True(t, g.AdjacencyIsConsistent())
}

func TestContractEdgeFoldsWeightIntoTerminal(t *testing.T) {
	g := arcgraph.New(arcgraph.KindMW, 2, 4)
	g.KnotAdd(arcgraph.TermProper)
	g.KnotAdd(arcgraph.TermNone)
	g.Prize[0] = 5.0
	g.Prize[1] = -2.0
	g.EdgeAdd(0, 1, 0.0, 0.0)

	pcmw.ContractEdge(g, 0, 1, 0)

	// The merged node carries the terminal's weight plus the plain
	// endpoint's negative one.
	require.InDelta(t, 3.0, g.Prize[0], 1e-12)
	require.False(t, g.IsTerm(1))
	require.Zero(t, g.Prize[1])
}

func TestContractEdgeFixedIntoPlain(t *testing.T) {
	g := arcgraph.New(arcgraph.KindRPC, 3, 6)
	g.KnotAdd(arcgraph.TermNone)
	g.KnotAdd(arcgraph.TermProper) // fixed by a reduction
	g.KnotAdd(arcgraph.TermProper) // the root
	g.Source = 2
	g.Prize[0] = 0.0
	g.Prize[1] = arcgraph.Faraway
	g.Term2Edge[1] = arcgraph.FixedTerm
	g.Prize[2] = arcgraph.Faraway
	g.Term2Edge[2] = arcgraph.FixedTerm
	g.EdgeAdd(0, 1, 2.0, 2.0)
	g.EdgeAdd(1, 2, 1.0, 1.0)

	pcmw.ContractEdge(g, 0, 1, 0)

	// The plain survivor is promoted to fixed on the spot.
	require.True(t, pcmw.IsFixedTerm(g, 0))
	require.Equal(t, arcgraph.Faraway, g.Prize[0])
	require.False(t, g.IsTerm(1))
	require.GreaterOrEqual(t, g.FindArc(0, 2), 0)
	require.True(t, g.AdjacencyIsConsistent())
}

func TestContractEdgeUnorderedPicksHigherDegree(t *testing.T) {
	g := arcgraph.New(arcgraph.KindPC, 4, 8)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	for i := range g.Prize {
		g.Prize[i] = 0.0
	}
	g.EdgeAdd(0, 1, 1.0, 1.0)
	g.EdgeAdd(1, 2, 1.0, 1.0)
	g.EdgeAdd(1, 3, 1.0, 1.0)

	require.Equal(t, 1, pcmw.ContractEdgeUnordered(g, 0, 1))
	require.Zero(t, g.Grad[0])
}

func TestDeleteTermBooksPrizeOffset(t *testing.T) {
	// Path 0-1-2, middle terminal worth 7.
	g := arcgraph.New(arcgraph.KindPC, 3, 14)
	for i := 0; i < 3; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 10.0
	g.Prize[1] = 7.0
	g.Prize[2] = 10.0
	g.EdgeAdd(0, 1, 1.0, 1.0)
	g.EdgeAdd(1, 2, 1.0, 1.0)
	require.NoError(t, pcmw.TransformPC(g))
	require.NoError(t, pcmw.ToOriginal(g))

	twin := pcmw.TwinTerm(g, 1)
	offset, npairs := pcmw.DeleteTerm(g, 1)

	require.InDelta(t, 7.0, offset, 1e-12)
	// Two real pairs, the entry placeholder, the two twin pairs, minus the
	// shared terminal-twin pair.
	require.Equal(t, 5, npairs)
	require.Zero(t, g.Grad[1])
	require.Zero(t, g.Grad[twin])
	require.False(t, g.IsTerm(1))
	require.Equal(t, -1, g.FindArc(g.Source, 1))

	require.True(t, pcmw.Term2EdgeIsConsistent(g))
	require.True(t, g.AdjacencyIsConsistent())
}
