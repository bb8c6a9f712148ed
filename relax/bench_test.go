package relax_test

import (
	"testing"

	"github.com/katalvlaran/turnmaze/maze"
	"github.com/katalvlaran/turnmaze/mazegen"
	"github.com/katalvlaran/turnmaze/relax"
	"github.com/katalvlaran/turnmaze/statespace"
)

// benchSpace builds a w×h-room generated maze with some loops.
func benchSpace(b *testing.B, w, h int) (*statespace.Space, statespace.Vertex) {
	b.Helper()
	p, err := mazegen.Generate(w, h, mazegen.WithSeed(2024), mazegen.WithLoopChance(0.1))
	if err != nil {
		b.Fatal(err)
	}
	s, err := statespace.New(p.Grid, statespace.DefaultCosts())
	if err != nil {
		b.Fatal(err)
	}
	return s, statespace.Vertex{Cell: p.Start, Facing: maze.East}
}

// BenchmarkRelax_Heap measures the priority-queue worklist on a 70×70-room
// maze (141×141 characters, ~80k vertices).
func BenchmarkRelax_Heap(b *testing.B) {
	s, start := benchSpace(b, 70, 70)

	b.ReportAllocs()
	b.SetBytes(int64(s.VertexCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = relax.Relax(s, start)
	}
}

// BenchmarkRelax_Stack measures the LIFO worklist on the same maze; it
// re-expands vertices more often than the heap.
func BenchmarkRelax_Stack(b *testing.B) {
	s, start := benchSpace(b, 70, 70)

	b.ReportAllocs()
	b.SetBytes(int64(s.VertexCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = relax.Relax(s, start, relax.WithWorklist(relax.Stack))
	}
}

// BenchmarkRelax_Example15 measures the small reference maze.
func BenchmarkRelax_Example15(b *testing.B) {
	p, err := maze.ParseString(example15)
	if err != nil {
		b.Fatal(err)
	}
	s, _ := statespace.New(p.Grid, statespace.DefaultCosts())
	start := statespace.Vertex{Cell: p.Start, Facing: maze.East}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = relax.Relax(s, start)
	}
}
