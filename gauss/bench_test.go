// SPDX-License-Identifier: MIT
package gauss_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/matrix"
	"github.com/katalvlaran/gausstrace/trace"
)

var benchSizes = []int{4, 16, 64}

// sink to defeat dead-code elimination
var sinkT *trace.Trace

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			rows := make([][]float64, n)
			for i := range rows {
				rows[i] = make([]float64, n+1)
				for j := range rows[i] {
					rows[i][j] = rng.Float64()*2 - 1
				}
				rows[i][i] += float64(n)
			}
			src := matrix.MustAugmentedFromRows(rows)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr, err := gauss.Solve(src.Clone())
				if err != nil {
					b.Fatal(err)
				}
				sinkT = tr
			}
		})
	}
}
