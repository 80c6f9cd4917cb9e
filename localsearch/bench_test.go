package localsearch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gcol/builder"
	"github.com/katalvlaran/gcol/greedy"
	"github.com/katalvlaran/gcol/localsearch"
	"github.com/katalvlaran/gcol/rnd"
)

func benchmarkEngine(b *testing.B, name string) {
	g := build(b, builder.Queen(8, 8))
	start := greedyStart(b, g, greedy.DSatur)
	e := engine(b, name, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc := &localsearch.SearchContext{Target: 9, UseTarget: true, Rng: rnd.FromSeed(int64(i))}
		if _, err := e.Run(context.Background(), start, sc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTabuCol(b *testing.B)          { benchmarkEngine(b, localsearch.TabuCol) }
func BenchmarkTabuColOptimized(b *testing.B) { benchmarkEngine(b, localsearch.TabuColOptimized) }
func BenchmarkPartialCol(b *testing.B)       { benchmarkEngine(b, localsearch.PartialCol) }
func BenchmarkPartialTS(b *testing.B)        { benchmarkEngine(b, localsearch.PartialTS) }
func BenchmarkTabuBucket(b *testing.B)       { benchmarkEngine(b, localsearch.TabuBucket) }
