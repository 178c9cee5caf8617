package pointset

import (
	"math/rand"
	"testing"
)

func BenchmarkKdBuild(b *testing.B) {
	points := NewRandPoints(rand.New(rand.NewSource(50)), 1e6, 100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewKdTree(points)
	}
}

func BenchmarkKdPut(b *testing.B) {
	points := NewRandPoints(rand.New(rand.NewSource(51)), 1e6, b.N)
	kdt := NewKdTree(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		kdt.Put(points[i])
	}
}

func BenchmarkKdNearest(b *testing.B) {
	rng := rand.New(rand.NewSource(52))
	kdt := NewKdTree(NewRandPoints(rng, 1e6, 100000))
	queries := NewRandPoints(rng, 1e6, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		kdt.Nearest(queries[i%len(queries)])
	}
}

func BenchmarkKdNearestK(b *testing.B) {
	rng := rand.New(rand.NewSource(53))
	kdt := NewKdTree(NewRandPoints(rng, 1e6, 10000))
	queries := NewRandPoints(rng, 1e6, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		kdt.NearestK(queries[i%len(queries)], 10)
	}
}

func BenchmarkKdRange(b *testing.B) {
	rng := rand.New(rand.NewSource(54))
	kdt := NewKdTree(NewRandPoints(rng, 1e6, 100000))
	lows := NewRandPoints(rng, 1e6, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		low := lows[i%len(lows)]
		kdt.Range(NewRect(low, Point{low.X + 1e4, low.Y + 1e4}))
	}
}
