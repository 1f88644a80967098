package sap

import (
	"testing"

	"github.com/katalvlaran/steinerx/gen"
	"github.com/katalvlaran/steinerx/pcmw"
)

func benchProblem(b *testing.B, nodes int) *Problem {
	b.Helper()
	g, err := gen.RandomSparse(nodes, 0.05, gen.WithSeed(11))
	if err != nil {
		b.Fatal(err)
	}
	if err := pcmw.TransformPC(g); err != nil {
		b.Fatal(err)
	}
	der, err := pcmw.BuildSAP(g)
	if err != nil {
		b.Fatal(err)
	}
	p, err := FromGraph(der.G)
	if err != nil {
		b.Fatal(err)
	}

	return p
}

func BenchmarkDualAscent(b *testing.B) {
	p := benchProblem(b, 200)
	empty := make([]bool, p.Arcs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DualAscent(p, empty)
	}
}

func BenchmarkPrimalHeuristic(b *testing.B) {
	p := benchProblem(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PrimalHeuristic(p)
	}
}
