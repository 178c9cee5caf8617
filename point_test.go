package pointset

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func NewRandPoints(rng *rand.Rand, maxVal float64, size int) (points []Point) {
	for i := 0; i < size; i++ {
		points = append(points, Point{X: rng.Float64() * maxVal, Y: rng.Float64() * maxVal})
	}
	return
}

// NewRandGridPoints returns points with integer coordinates, so that
// duplicates and ties on the split axis are frequent.
func NewRandGridPoints(rng *rand.Rand, maxVal, size int) (points []Point) {
	for i := 0; i < size; i++ {
		points = append(points, Point{X: float64(rng.Intn(maxVal)), Y: float64(rng.Intn(maxVal))})
	}
	return
}

func sortPoints(points []Point) []Point {
	sort.Slice(points, func(i, j int) bool { return points[i].Compare(points[j]) < 0 })
	return points
}

func TestSplitMedian(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	size := 1001
	points := NewRandGridPoints(rng, 100, size)
	for dim := DimX; dim <= DimY; dim++ {
		pa := &pointArray{points: points}
		splitPos := splitMedian(pa, dim)
		if splitPos != size/2 {
			t.Fatalf("splitPos %v, want %v", splitPos, size/2)
		}
		splitValue := points[splitPos].GetValue(dim)
		for pos := 0; pos < splitPos; pos++ {
			if val := points[pos].GetValue(dim); val > splitValue {
				t.Errorf("points[%v][%v] %v is larger than splitValue %v", pos, dim, val, splitValue)
			}
		}
		for pos := splitPos + 1; pos < size; pos++ {
			if val := points[pos].GetValue(dim); val < splitValue {
				t.Errorf("points[%v][%v] %v is less than splitValue %v", pos, dim, val, splitValue)
			}
		}
	}
}

func TestSplitMedianSubArray(t *testing.T) {
	points := []Point{{9, 0}, {1, 0}, {5, 0}, {3, 0}, {7, 0}, {0, 0}}
	pa := &pointArray{points: points}
	sub := pa.SubArray(1, 5)
	splitPos := splitMedian(sub, DimX)
	if got := sub.GetPoint(splitPos).X; got != 5 {
		t.Errorf("median of sub array = %v, want 5", got)
	}
	if points[0].X != 9 || points[5].X != 0 {
		t.Errorf("points outside the sub array moved: %v", points)
	}
}

func TestEps(t *testing.T) {
	if Eps != math.Nextafter(1, 2)-1 {
		t.Errorf("Eps = %v, want the float64 machine epsilon", Eps)
	}
}

func TestPointEquals(t *testing.T) {
	cases := []struct {
		p, q  Point
		equal bool
	}{
		{Point{1, 2}, Point{1, 2}, true},
		{Point{0, 0}, Point{Eps / 2, -Eps / 2}, true},
		{Point{0, 0}, Point{Eps, 0}, false},
		{Point{1, 2}, Point{2, 1}, false},
		{Point{1, 2}, Point{1, 2.0000001}, false},
	}
	for i, tc := range cases {
		if got := tc.p.Equals(tc.q); got != tc.equal {
			t.Errorf("case %v: %v.Equals(%v) = %v, want %v", i, tc.p, tc.q, got, tc.equal)
		}
		if got := tc.p.Compare(tc.q) == 0; got != tc.equal {
			t.Errorf("case %v: %v.Compare(%v) == 0 is %v, want %v", i, tc.p, tc.q, got, tc.equal)
		}
	}
}

func TestPointCompare(t *testing.T) {
	cases := []struct {
		p, q Point
		want int
	}{
		{Point{1, 5}, Point{2, 0}, -1},
		{Point{2, 0}, Point{1, 5}, 1},
		{Point{1, 1}, Point{1, 2}, -1},
		{Point{1, 3}, Point{1, 2}, 1},
		{Point{1, 2}, Point{1, 2}, 0},
	}
	for i, tc := range cases {
		if got := tc.p.Compare(tc.q); got != tc.want {
			t.Errorf("case %v: %v.Compare(%v) = %v, want %v", i, tc.p, tc.q, got, tc.want)
		}
	}
}

func TestPointLess(t *testing.T) {
	// the relation is not antisymmetric: each point is less than the other
	p, q := Point{1, 2}, Point{2, 1}
	if !p.Less(q) || !q.Less(p) {
		t.Errorf("expected %v and %v to be mutually less", p, q)
	}
	if p.Less(p) {
		t.Errorf("%v is less than itself", p)
	}
}

func TestPointDistance(t *testing.T) {
	if d := (Point{0, 0}).Distance(Point{3, 4}); d != 5 {
		t.Errorf("distance = %v, want 5", d)
	}
	if d := (Point{-1, -1}).Distance(Point{-1, -1}); d != 0 {
		t.Errorf("distance = %v, want 0", d)
	}
	if d := (Point{1, 1}).Distance(Point{2, 2}); math.Abs(d-math.Sqrt2) > 1e-15 {
		t.Errorf("distance = %v, want %v", d, math.Sqrt2)
	}
}

func TestPointGetValue(t *testing.T) {
	p := Point{3, 4}
	if p.GetValue(DimX) != 3 || p.GetValue(DimY) != 4 {
		t.Errorf("GetValue of %v = (%v, %v)", p, p.GetValue(DimX), p.GetValue(DimY))
	}
}

func TestPointString(t *testing.T) {
	cases := map[Point]string{
		{1, 2}:       "1 2",
		{0.5, -3.25}: "0.5 -3.25",
		{1e21, 0}:    "1e+21 0",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
