// Package accumulate_test provides benchmarks for the accumulation kernels.
package accumulate_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/grid"
	"github.com/katalvlaran/holomap/sampling"
)

var benchSizes = []int{64, 256}

// sinks to defeat dead-code elimination
var (
	sinkS []float64
	sinkG *grid.Grid
)

func BenchmarkBetaMixtureQuantile(b *testing.B) {
	b.ReportAllocs()
	m, err := accumulate.NewBetaMixture([]float64{0.2, 0.5, 0.8}, 4)
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			in := sampling.LinearAxis(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = accumulate.Reparameterize(m, in)
			}
		})
	}
}

func BenchmarkGaussianAccumulate(b *testing.B) {
	b.ReportAllocs()
	acc, err := accumulate.NewGaussian([]complex128{0, 1i, -1}, 2)
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			axis := sampling.LinearAxis(n)
			g := grid.Outer(axis, axis, func(x, y float64) complex128 { return complex(x, y) })
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkG = acc.Accumulate(g)
			}
		})
	}
}
