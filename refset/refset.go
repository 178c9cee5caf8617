// Package refset is a point set backed by an ordered B-tree. It answers every
// query by scanning, and serves as the reference the 2-d tree is checked against.
package refset

import (
	"github.com/google/btree"

	"github.com/deepfabric/pointset"
)

const degree = 32

var _ pointset.PointSet = (*PointSet)(nil)

// PointSet keeps points ordered by pointset.Point.Compare.
type PointSet struct {
	tree *btree.BTreeG[pointset.Point]
}

func less(a, b pointset.Point) bool {
	return a.Compare(b) < 0
}

func New(points []pointset.Point) *PointSet {
	s := &PointSet{tree: btree.NewG[pointset.Point](degree, less)}
	for _, p := range points {
		s.Put(p)
	}
	return s
}

// NewFromFile loads a bulk load file; an unreadable file yields an empty set.
func NewFromFile(fp string) *PointSet {
	return New(pointset.LoadPointsFile(fp))
}

func (s *PointSet) Empty() bool {
	return s.tree.Len() == 0
}

func (s *PointSet) Size() int {
	return s.tree.Len()
}

// Put keeps the first of several equal points.
func (s *PointSet) Put(p pointset.Point) bool {
	if s.tree.Has(p) {
		return false
	}
	s.tree.ReplaceOrInsert(p)
	return true
}

func (s *PointSet) Contains(p pointset.Point) bool {
	return s.tree.Has(p)
}

func (s *PointSet) all() []pointset.Point {
	points := make([]pointset.Point, 0, s.tree.Len())
	s.tree.Ascend(func(p pointset.Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// Begin iterates in ascending order.
func (s *PointSet) Begin() pointset.Iterator {
	return pointset.NewSliceIterator(s.all())
}

func (s *PointSet) Range(rect pointset.Rect) pointset.Iterator {
	var inRect []pointset.Point
	s.tree.Ascend(func(p pointset.Point) bool {
		if rect.Contains(p) {
			inRect = append(inRect, p)
		}
		return true
	})
	return pointset.NewSliceIterator(inRect)
}

func (s *PointSet) Nearest(p pointset.Point) (nearest pointset.Point, found bool) {
	bestDist := 0.0
	s.tree.Ascend(func(q pointset.Point) bool {
		if d := q.Distance(p); !found || d < bestDist {
			nearest, bestDist, found = q, d, true
		}
		return true
	})
	return
}

// NearestK keeps a buffer of k candidates and replaces the farthest one
// whenever a closer point turns up.
func (s *PointSet) NearestK(p pointset.Point, k int) pointset.Iterator {
	if k >= s.tree.Len() {
		return s.Begin()
	}
	if k <= 0 {
		return pointset.NewSliceIterator(nil)
	}
	neighbours := make([]pointset.Point, 0, k)
	s.tree.Ascend(func(q pointset.Point) bool {
		if len(neighbours) < k {
			neighbours = append(neighbours, q)
			return true
		}
		farthest := 0
		for i := range neighbours {
			if neighbours[i].Distance(p) > neighbours[farthest].Distance(p) {
				farthest = i
			}
		}
		if q.Distance(p) < neighbours[farthest].Distance(p) {
			neighbours[farthest] = q
		}
		return true
	})
	return pointset.NewSliceIterator(neighbours)
}

func (s *PointSet) String() string {
	return pointset.Format(s.Begin())
}
