package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steinerx/gen"
)

func TestInstanceFlagsBuild(t *testing.T) {
	f := &instanceFlags{topology: "star", nodes: 6, seed: 2}
	g, err := f.build()
	require.NoError(t, err)
	require.Equal(t, 6, g.NumNodes())

	f.topology = "cycle"
	g, err = f.build()
	require.NoError(t, err)
	require.Equal(t, 6, g.NumNodes())

	f.topology = "mesh"
	_, err = f.build()
	require.Error(t, err)

	f.topology = "star"
	f.nodes = 1
	_, err = f.build()
	require.ErrorIs(t, err, gen.ErrTooFewNodes)
}

func TestPrepareBuildsArborescenceForm(t *testing.T) {
	f := &instanceFlags{topology: "cycle", nodes: 10, seed: 3}
	g, err := f.build()
	require.NoError(t, err)

	der, err := prepare(g)
	require.NoError(t, err)
	require.True(t, der.G.Extended)
	require.Positive(t, der.BigM)
	require.Greater(t, der.G.NumNodes(), g.NumNodes())
}
