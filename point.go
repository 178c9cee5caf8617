// Package pointset implements an in-memory 2-d tree over points in the plane,
// supporting insertion, membership, rectangle range and nearest neighbour queries.
package pointset

import (
	"math"
	"sort"
	"strconv"

	"github.com/keegancsmith/nth"
	"gonum.org/v1/gonum/spatial/r2"
)

// Eps is the tolerance used by every point and rectangle comparison, the gap
// between 1 and the next float64.
const Eps = 2.220446049250313e-16

const (
	DimX int = 0
	DimY int = 1
)

// Point is an immutable pair of coordinates.
type Point struct {
	X float64
	Y float64
}

// GetValue returns the coordinate along dim, DimX or DimY.
func (p Point) GetValue(dim int) (val float64) {
	if dim == DimX {
		val = p.X
	} else {
		val = p.Y
	}
	return
}

// Equals reports whether both coordinates differ by less than Eps.
func (p Point) Equals(q Point) bool {
	return math.Abs(p.X-q.X) < Eps && math.Abs(p.Y-q.Y) < Eps
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

// Less is the axis-combined relation: p is less than q if either coordinate
// is smaller. It is not a total order and must not drive sorted containers.
func (p Point) Less(q Point) bool {
	return p.X < q.X || p.Y < q.Y
}

// Compare orders points by x, then by y. Coordinates closer than Eps compare
// equal, so Compare returns 0 exactly when Equals is true.
func (p Point) Compare(q Point) int {
	if math.Abs(p.X-q.X) >= Eps {
		if p.X < q.X {
			return -1
		}
		return 1
	}
	if math.Abs(p.Y-q.Y) >= Eps {
		if p.Y < q.Y {
			return -1
		}
		return 1
	}
	return 0
}

func (p Point) String() string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + " " + strconv.FormatFloat(p.Y, 'g', -1, 64)
}

var _ sort.Interface = (*pointArray)(nil)

// pointArray is a window over a point buffer ordered along byDim.
type pointArray struct {
	points []Point
	byDim  int
}

// Len is part of sort.Interface.
func (s *pointArray) Len() int {
	return len(s.points)
}

// Swap is part of sort.Interface.
func (s *pointArray) Swap(i, j int) {
	s.points[i], s.points[j] = s.points[j], s.points[i]
}

// Less is part of sort.Interface.
func (s *pointArray) Less(i, j int) bool {
	return s.points[i].GetValue(s.byDim) < s.points[j].GetValue(s.byDim)
}

func (s *pointArray) GetPoint(idx int) Point {
	return s.points[idx]
}

// SubArray shares the backing buffer, so partitioning a sub array reorders the parent.
func (s *pointArray) SubArray(begin, end int) *pointArray {
	return &pointArray{
		points: s.points[begin:end],
		byDim:  s.byDim,
	}
}

// splitMedian partially orders the array along dim so that the element at the
// returned position is the median, everything before it is no greater and
// everything after it is no smaller.
func splitMedian(points *pointArray, dim int) (splitPos int) {
	points.byDim = dim
	splitPos = points.Len() / 2
	nth.Element(points, splitPos)
	return
}
