package pointset

import (
	"math"

	datastructures "github.com/deepfabric/go-datastructures"
)

// Nearest returns a stored point closest to p. It returns false only when the
// tree is empty.
func (t *KdTree) Nearest(p Point) (Point, bool) {
	if t.root == nil {
		return Point{}, false
	}
	best := t.root.point
	bestDist := best.Distance(p)
	t.root.findNeighbour(p, &best, &bestDist)
	return best, true
}

// findNeighbour searches the half-plane holding p first, and the other half
// only while the splitting line is closer than the best distance so far.
func (n *kdNode) findNeighbour(p Point, best *Point, bestDist *float64) {
	if n == nil {
		return
	}
	dist := n.point.Distance(p)
	if dist < *bestDist {
		*best = n.point
		*bestDist = dist
	}
	if dist == 0 {
		return
	}

	dim := n.splitDim()
	delta := n.point.GetValue(dim) - p.GetValue(dim)
	nearChild, farChild := n.right, n.left
	if delta > 0 {
		nearChild, farChild = n.left, n.right
	}
	nearChild.findNeighbour(p, best, bestDist)
	if math.Abs(delta) < *bestDist {
		farChild.findNeighbour(p, best, bestDist)
	}
}

// neighbour is a k-NN candidate ordered by distance.
type neighbour struct {
	point Point
	dist  float64
}

// Compare is part of datastructures.Comparable.
func (n *neighbour) Compare(other datastructures.Comparable) int {
	o := other.(*neighbour)
	switch {
	case n.dist > o.dist:
		return 1
	case n.dist < o.dist:
		return -1
	}
	return 0
}

// NearestK returns the k points closest to p, nearest first. With k of at
// least Size it returns every point in iteration order, and with k of 0 an
// empty sequence.
func (t *KdTree) NearestK(p Point, k int) Iterator {
	if k <= 0 {
		return newSnapshotIterator(nil)
	}
	if k >= t.size {
		return t.Begin()
	}

	// keeps the k smallest; a candidate replaces the farthest kept one only
	// when strictly closer
	oa := datastructures.NewOrderedArray(k)
	for it := t.Begin(); it.Valid(); it.Next() {
		cand := &neighbour{point: it.Point()}
		cand.dist = cand.point.Distance(p)
		oa.Put(cand)
	}

	items := oa.Finalize()
	points := make([]Point, len(items))
	for i, item := range items {
		points[i] = item.(*neighbour).point
	}
	return newSnapshotIterator(points)
}
