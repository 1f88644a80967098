package pcmw_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerx/arcgraph"
	"github.com/katalvlaran/steinerx/pcmw"
)

// buildStar returns an untransformed PC star: center 0, leaves 1..3 with
// prize 1.0 each, spokes of cost 1.0.
func buildStar(t *testing.T) *arcgraph.Graph {
	t.Helper()
	g := arcgraph.New(arcgraph.KindPC, 4, 8)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 0.0
	for leaf := 1; leaf <= 3; leaf++ {
		g.Prize[leaf] = 1.0
		g.EdgeAdd(0, leaf, 1.0, 1.0)
	}

	return g
}

func TestTransformPCStar(t *testing.T) {
	g := buildStar(t)
	require.NoError(t, pcmw.TransformPC(g))

	// Root + one twin per leaf terminal.
	require.Equal(t, 8, g.NumNodes())
	require.True(t, g.Extended)
	require.True(t, pcmw.IsFixedTerm(g, g.Source))

	// Extended view: twins and the root carry the proper tag.
	require.Equal(t, 4, g.Terms)

	twins := 0
	for k := 0; k < g.NumNodes(); k++ {
		if k != g.Source && pcmw.IsDummyTerm(g, k) {
			twins++
		}
	}
	require.Equal(t, 3, twins)

	// Each leaf: entry arc cost 0, twin arc from the root priced at the prize.
	for leaf := 1; leaf <= 3; leaf++ {
		entry := g.FindArc(g.Source, leaf)
		require.GreaterOrEqual(t, entry, 0)
		require.Zero(t, g.Cost[entry])
		require.Equal(t, arcgraph.Faraway, g.Cost[arcgraph.Flip(entry)])

		twin := pcmw.TwinTerm(g, leaf)
		prized := g.FindArc(g.Source, twin)
		require.GreaterOrEqual(t, prized, 0)
		require.InDelta(t, 1.0, g.Cost[prized], 1e-12)
		require.Zero(t, g.Cost[g.Term2Edge[leaf]])
	}

	require.True(t, pcmw.Term2EdgeIsConsistent(g))
	require.True(t, g.AdjacencyIsConsistent())
}

func TestTransformPCGuards(t *testing.T) {
	g := buildStar(t)
	require.NoError(t, pcmw.TransformPC(g))
	require.ErrorIs(t, pcmw.TransformPC(g), pcmw.ErrAlreadyTransformed)

	spg := arcgraph.New(arcgraph.KindSPG, 2, 2)
	spg.KnotAdd(arcgraph.TermProper)
	spg.KnotAdd(arcgraph.TermProper)
	require.ErrorIs(t, pcmw.TransformPC(spg), pcmw.ErrNotPcMw)

	empty := arcgraph.New(arcgraph.KindPC, 2, 2)
	empty.KnotAdd(arcgraph.TermNone)
	empty.KnotAdd(arcgraph.TermNone)
	require.ErrorIs(t, pcmw.TransformPC(empty), pcmw.ErrNoTerminals)
}

func TestViewRoundTrip(t *testing.T) {
	// Prizes above the spoke cost so no terminal qualifies as non-leaf and
	// the toggle is structurally a no-op.
	g := arcgraph.New(arcgraph.KindPC, 4, 8)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 0.0
	for leaf := 1; leaf <= 3; leaf++ {
		g.Prize[leaf] = 5.0
		g.EdgeAdd(0, leaf, 1.0, 1.0)
	}
	require.NoError(t, pcmw.TransformPC(g))

	require.ErrorIs(t, pcmw.ToExtended(g), pcmw.ErrWrongView)

	wantTerm := append([]arcgraph.TermState(nil), g.Term...)
	wantCost := append([]float64(nil), g.Cost...)

	require.NoError(t, pcmw.ToOriginal(g))
	require.False(t, g.Extended)
	require.ErrorIs(t, pcmw.ToOriginal(g), pcmw.ErrWrongView)

	// Original view: the leaves are the terminals again, twins are pseudo.
	for leaf := 1; leaf <= 3; leaf++ {
		require.Equal(t, arcgraph.TermProper, g.Term[leaf])
		require.Equal(t, arcgraph.TermPseudo, g.Term[pcmw.TwinTerm(g, leaf)])
	}
	require.True(t, pcmw.Term2EdgeIsConsistent(g))
	require.True(t, pcmw.ShiftedCostsAreConsistent(g))

	require.NoError(t, pcmw.ToExtended(g))
	require.Equal(t, wantTerm, g.Term)
	require.Equal(t, wantCost, g.Cost)
	require.NoError(t, pcmw.ToOriginalIfNeeded(g))
	require.NoError(t, pcmw.ToOriginalIfNeeded(g)) // idempotent
}

func TestNonLeafDemotionShiftsCosts(t *testing.T) {
	// Node 3 hangs off the triangle with prize 2 against an approach cost of
	// 5 on every side: it can only ever pay off as an interior node.
	g := arcgraph.New(arcgraph.KindPC, 4, 10)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 10.0
	g.Prize[1] = 10.0
	g.Prize[2] = 0.0
	g.Prize[3] = 2.0
	g.EdgeAdd(0, 1, 1.0, 1.0)
	g.EdgeAdd(1, 2, 1.0, 1.0)
	g.EdgeAdd(2, 0, 1.0, 1.0)
	e03 := g.EdgeAdd(0, 3, 5.0, 5.0)
	e13 := g.EdgeAdd(1, 3, 5.0, 5.0)

	require.NoError(t, pcmw.TransformPC(g))

	require.True(t, pcmw.IsNonLeafTerm(g, 3))
	require.False(t, pcmw.IsProperPotentialTerm(g, 3))

	// Inbound arcs of node 3 are shifted by its prize; outbound untouched.
	require.InDelta(t, 3.0, g.Cost[e03], 1e-12)
	require.InDelta(t, 3.0, g.Cost[e13], 1e-12)
	require.InDelta(t, 5.0, g.Cost[arcgraph.Flip(e03)], 1e-12)
	require.True(t, pcmw.ShiftedCostsAreConsistent(g))

	require.NoError(t, pcmw.ToOriginal(g))
	require.InDelta(t, 5.0, g.Cost[e03], 1e-12)
	require.True(t, pcmw.IsNonLeafTerm(g, 3)) // regime survives the toggle
	require.True(t, pcmw.ShiftedCostsAreConsistent(g))
}

func TestTransformRootedPC(t *testing.T) {
	g := arcgraph.New(arcgraph.KindRPC, 3, 6)
	for i := 0; i < 3; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = arcgraph.Faraway // mandatory root
	g.Prize[1] = 4.0
	g.Prize[2] = 0.0
	g.EdgeAdd(0, 1, 1.0, 1.0)
	g.EdgeAdd(1, 2, 1.0, 1.0)

	require.NoError(t, pcmw.TransformRootedPC(g))
	require.Equal(t, 0, g.Source)
	require.True(t, pcmw.IsFixedTerm(g, 0))

	// Rooted kinds wire no entry placeholder, only the twin machinery: the
	// sole root->1 arc is the instance's own edge.
	narcs01 := 0
	for e := g.FirstOut(g.Source); e >= 0; e = g.NextOut(e) {
		if g.Head[e] == 1 {
			narcs01++
			require.InDelta(t, 1.0, g.Cost[e], 1e-12)
		}
	}
	require.Equal(t, 1, narcs01)
	twin := pcmw.TwinTerm(g, 1)
	require.GreaterOrEqual(t, g.FindArc(g.Source, twin), 0)
	require.True(t, pcmw.Term2EdgeIsConsistent(g))
	require.True(t, g.AdjacencyIsConsistent())
}

func TestTransformMWChargesNegativeWeights(t *testing.T) {
	g := arcgraph.New(arcgraph.KindMW, 3, 8)
	for i := 0; i < 3; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 3.0
	g.Prize[1] = -2.0
	g.Prize[2] = 1.5
	e01 := g.EdgeAdd(0, 1, 0.0, 0.0)
	e12 := g.EdgeAdd(1, 2, 0.0, 0.0)

	require.NoError(t, pcmw.TransformMW(g))

	// Arcs into node 1 are charged its weight's magnitude.
	require.InDelta(t, 2.0, g.Cost[e01], 1e-12)
	require.InDelta(t, 0.0, g.Cost[arcgraph.Flip(e01)], 1e-12)
	require.InDelta(t, 0.0, g.Cost[e12], 1e-12)
	require.InDelta(t, 2.0, g.Cost[arcgraph.Flip(e12)], 1e-12)

	require.True(t, pcmw.Term2EdgeIsConsistent(g))
}

func TestTryRootedTransform(t *testing.T) {
	g := arcgraph.New(arcgraph.KindPC, 3, 10)
	for i := 0; i < 3; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 10.0
	g.Prize[1] = 3.0 // above its arc costs, so it keeps a twin
	g.Prize[2] = 0.0
	g.EdgeAdd(0, 1, 2.0, 2.0)
	g.EdgeAdd(1, 2, 2.0, 2.0)
	require.NoError(t, pcmw.TransformPC(g))
	require.NoError(t, pcmw.ToOriginal(g))

	// No prize arc exceeds a generous bound: nothing to fix.
	require.Zero(t, pcmw.TryRootedTransform(g, 100.0))
	require.Equal(t, arcgraph.KindPC, g.Kind)

	// Node 0's prize of 10 beats the bound: it can never be skipped.
	require.Equal(t, 1, pcmw.TryRootedTransform(g, 5.0))
	require.Equal(t, arcgraph.KindRPC, g.Kind)
	require.Equal(t, 0, g.Source)
	require.True(t, pcmw.IsFixedTerm(g, 0))

	// Node 1 keeps its twin, now anchored at the new root.
	twin := pcmw.TwinTerm(g, 1)
	require.GreaterOrEqual(t, g.FindArc(0, twin), 0)
	require.True(t, pcmw.Term2EdgeIsConsistent(g))
	require.True(t, g.AdjacencyIsConsistent())
}
