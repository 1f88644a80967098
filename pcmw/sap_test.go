package pcmw_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerx/arcgraph"
	"github.com/katalvlaran/steinerx/pcmw"
)

// transformedStar builds and transforms a star with three prize-5 leaves;
// returned in the extended view with the spoke arc ids.
func transformedStar(t *testing.T) (*arcgraph.Graph, []int) {
	t.Helper()
	g := arcgraph.New(arcgraph.KindPC, 4, 20)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 0.0
	spokes := make([]int, 0, 3)
	for leaf := 1; leaf <= 3; leaf++ {
		g.Prize[leaf] = 5.0
		spokes = append(spokes, g.EdgeAdd(0, leaf, 1.0, 1.0))
	}
	require.NoError(t, pcmw.TransformPC(g))

	return g, spokes
}

func TestBuildSAP(t *testing.T) {
	g, _ := transformedStar(t)
	nnodes, narcs := g.NumNodes(), g.NumArcs()

	sap, err := pcmw.BuildSAP(g)
	require.NoError(t, err)

	// The input graph is never touched.
	require.Equal(t, nnodes, g.NumNodes())
	require.Equal(t, narcs, g.NumArcs())

	s := sap.G
	require.Equal(t, nnodes+1, s.NumNodes())
	require.Equal(t, s.NumNodes()-1, sap.PseudoRoot)

	// Each leaf keeps a spoke approach of cost 1; the bound tightens every
	// prize but the dearest down to that: 15 - 4 - 4.
	require.InDelta(t, 7.0, sap.BigM, 1e-12)
	require.InDelta(t, -7.0, sap.Offset, 1e-12)

	for leaf := 1; leaf <= 3; leaf++ {
		entry := s.FindArc(s.Source, leaf)
		require.GreaterOrEqual(t, entry, 0)
		require.InDelta(t, sap.BigM, s.Cost[entry], 1e-12)

		// Prize arcs re-home onto the pseudo-root; terminals feed it freely.
		twin := pcmw.TwinTerm(s, leaf)
		require.Equal(t, -1, s.FindArc(s.Source, twin))
		prized := s.FindArc(sap.PseudoRoot, twin)
		require.GreaterOrEqual(t, prized, 0)
		require.InDelta(t, 5.0, s.Cost[prized], 1e-12)

		feed := s.FindArc(leaf, sap.PseudoRoot)
		require.GreaterOrEqual(t, feed, 0)
		require.Zero(t, s.Cost[feed])
		require.Equal(t, arcgraph.Faraway, s.Cost[arcgraph.Flip(feed)])
	}
	require.True(t, s.AdjacencyIsConsistent())
}

func TestBuildSAPCarriesNonLeafPrizes(t *testing.T) {
	g := arcgraph.New(arcgraph.KindPC, 4, 24)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 0.0
	g.Prize[1] = 6.0
	g.Prize[2] = 6.0
	g.Prize[3] = 2.0 // cheapest approach costs 5: demoted to non-leaf
	g.EdgeAdd(0, 1, 1.0, 1.0)
	g.EdgeAdd(1, 2, 1.0, 1.0)
	g.EdgeAdd(1, 3, 5.0, 5.0)
	g.EdgeAdd(2, 3, 5.0, 5.0)
	require.NoError(t, pcmw.TransformPC(g))
	require.True(t, pcmw.IsNonLeafTerm(g, 3))

	sap, err := pcmw.BuildSAP(g)
	require.NoError(t, err)

	// Twinned prizes bound the entry price (12, tightened by node 2's
	// cheap approach to 7); the non-leaf prize rides in the offset, since
	// shifted arc costs absorb it rather than any prize arc.
	require.InDelta(t, 7.0, sap.BigM, 1e-12)
	require.InDelta(t, 2.0-sap.BigM, sap.Offset, 1e-12)
}

func TestBuildSAPGuards(t *testing.T) {
	g, _ := transformedStar(t)

	require.NoError(t, pcmw.ToOriginal(g))
	_, err := pcmw.BuildSAP(g)
	require.ErrorIs(t, err, pcmw.ErrWrongView)

	require.Equal(t, 3, pcmw.TryRootedTransform(g, 4.0))
	require.NoError(t, pcmw.ToExtended(g))
	_, err = pcmw.BuildSAP(g)
	require.ErrorIs(t, err, pcmw.ErrRooted)
}

func TestUpdateBigM(t *testing.T) {
	g, _ := transformedStar(t)
	sap, err := pcmw.BuildSAP(g)
	require.NoError(t, err)

	sap.UpdateBigM(5.0)
	require.InDelta(t, 5.0, sap.BigM, 1e-12)
	require.InDelta(t, -5.0, sap.Offset, 1e-12)
	s := sap.G
	for leaf := 1; leaf <= 3; leaf++ {
		entry := s.FindArc(s.Source, leaf)
		require.InDelta(t, 5.0, s.Cost[entry], 1e-12)
	}
}

func TestBuildRootedSAP(t *testing.T) {
	g, _ := transformedStar(t)
	oldroot := g.Source

	s, err := pcmw.BuildRootedSAP(g, 1, []int{2})
	require.NoError(t, err)

	require.Equal(t, arcgraph.KindRPC, s.Kind)
	require.Equal(t, 1, s.Source)
	require.True(t, pcmw.IsFixedTerm(s, 1))
	require.True(t, pcmw.IsFixedTerm(s, 2))
	require.Zero(t, s.Grad[oldroot])

	// Leaf 3 keeps its twin, now anchored at the new root.
	require.GreaterOrEqual(t, s.Term2Edge[3], 0)
	twin := pcmw.TwinTerm(s, 3)
	require.GreaterOrEqual(t, s.FindArc(1, twin), 0)
	require.True(t, s.AdjacencyIsConsistent())

	_, err = pcmw.BuildRootedSAP(g, 0, nil) // center is no terminal
	require.ErrorIs(t, err, pcmw.ErrBadRoot)
}

func TestSolGetObj(t *testing.T) {
	g := arcgraph.New(arcgraph.KindPC, 4, 20)
	for i := 0; i < 4; i++ {
		g.KnotAdd(arcgraph.TermNone)
	}
	g.Prize[0] = 0.0
	spokes := make([]int, 0, 3)
	for leaf := 1; leaf <= 3; leaf++ {
		g.Prize[leaf] = 1.0
		spokes = append(spokes, g.EdgeAdd(0, leaf, 1.0, 1.0))
	}
	require.NoError(t, pcmw.TransformPC(g))
	require.NoError(t, pcmw.ToOriginal(g))

	// Empty solution: every prize is forfeited.
	empty := make([]bool, g.NumArcs())
	require.InDelta(t, 3.0, pcmw.SolGetObj(g, empty, 0.0), 1e-12)
	require.True(t, pcmw.SolIsTrivial(g, empty))

	// One spoke: pay its cost, collect one prize, forfeit two.
	one := make([]bool, g.NumArcs())
	one[spokes[0]] = true
	require.InDelta(t, 3.0, pcmw.SolGetObj(g, one, 0.0), 1e-12)
	require.False(t, pcmw.SolIsTrivial(g, one))

	// All spokes plus a reduction offset.
	all := make([]bool, g.NumArcs())
	for _, e := range spokes {
		all[e] = true
	}
	require.InDelta(t, 4.5, pcmw.SolGetObj(g, all, 1.5), 1e-12)
}
