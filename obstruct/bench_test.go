// SPDX-License-Identifier: MIT

package obstruct_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpatrol/obstruct"
	"github.com/katalvlaran/gridpatrol/patrol"
)

// benchArea returns an n×n area with ~5% random obstructions and a free start cell.
func benchArea(b *testing.B, n int) (*patrol.Area, patrol.Guard) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	a, err := patrol.NewArea(n, n)
	if err != nil {
		b.Fatalf("NewArea: %v", err)
	}
	start := patrol.GuardAt(patrol.Position{X: n / 2, Y: n / 2})
	for i := 0; i < n*n; i++ {
		if p := a.Coordinate(i); p != start.Position && rng.Intn(20) == 0 {
			_ = a.AddObstacle(p)
		}
	}

	return a, start
}

// BenchmarkSearch measures the exhaustive search on a 60×60 area.
func BenchmarkSearch(b *testing.B) {
	a, start := benchArea(b, 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := obstruct.Search(context.Background(), a, start); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearchPathOnly measures the same search restricted to the baseline walk.
func BenchmarkSearchPathOnly(b *testing.B) {
	a, start := benchArea(b, 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := obstruct.Search(context.Background(), a, start, obstruct.WithPathOnly()); err != nil {
			b.Fatal(err)
		}
	}
}
