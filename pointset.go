package pointset

import (
	"strings"
)

// Iterator walks a sequence of points. An iterator that is not Valid is the
// end of its sequence; calling Point on it panics.
type Iterator interface {
	Valid() bool
	Point() Point
	Next()
}

// PointSet is the query surface shared by the 2-d tree and the reference set,
// so the two can be validated against each other.
type PointSet interface {
	Empty() bool
	Size() int
	// Put adds p unless an equal point is already present. It reports whether p was added.
	Put(p Point) bool
	Contains(p Point) bool
	// Range returns the points inside r, in no particular order.
	Range(r Rect) Iterator
	// Nearest returns a closest point to p, or false if the set is empty.
	Nearest(p Point) (Point, bool)
	// NearestK returns min(k, Size()) points closest to p, in no particular order.
	NearestK(p Point, k int) Iterator
	Begin() Iterator
	String() string
}

// SliceIterator iterates over a materialized snapshot of points.
type SliceIterator struct {
	points []Point
	pos    int
}

func NewSliceIterator(points []Point) *SliceIterator {
	return &SliceIterator{points: points}
}

func (it *SliceIterator) Valid() bool {
	return it != nil && it.pos < len(it.points)
}

func (it *SliceIterator) Point() Point {
	if !it.Valid() {
		panic("pointset: Point called on exhausted iterator")
	}
	return it.points[it.pos]
}

func (it *SliceIterator) Next() {
	if it.Valid() {
		it.pos++
	}
}

// Collect drains it and returns the remaining points.
func Collect(it Iterator) (points []Point) {
	for ; it.Valid(); it.Next() {
		points = append(points, it.Point())
	}
	return
}

// Format writes one "x y" line per point produced by it.
func Format(it Iterator) string {
	var sb strings.Builder
	for ; it.Valid(); it.Next() {
		sb.WriteString(it.Point().String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
