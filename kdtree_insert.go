package pointset

import (
	"log/slog"
	"math"
	"time"
)

// Put inserts p as a new leaf unless an equal point is already stored, then
// rebuilds the whole tree if insertions have made it too deep.
func (t *KdTree) Put(p Point) (inserted bool) {
	_, inserted = t.insert(p)
	if inserted {
		kdtreePutTotal.WithLabelValues(putResultInserted).Inc()
	} else {
		kdtreePutTotal.WithLabelValues(putResultDuplicate).Inc()
	}
	t.rebalance()
	return
}

// insert descends from the root the same way find does and attaches p where
// the descent falls off the tree. It returns the node holding p, and whether
// that node is new.
func (t *KdTree) insert(p Point) (node *kdNode, inserted bool) {
	var parent *kdNode
	toLeft := false
	depth := 0
	for cur := t.root; cur != nil; depth++ {
		if cur.point.Equals(p) {
			t.recordDepth(depth)
			return cur, false
		}
		parent = cur
		toLeft = cur.goesLeft(p)
		if toLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	t.recordDepth(depth)

	node = &kdNode{point: p, depth: depth, parent: parent}
	switch {
	case parent == nil:
		t.root = node
	case toLeft:
		parent.left = node
	default:
		parent.right = node
	}
	t.size++
	return node, true
}

func (t *KdTree) recordDepth(depth int) {
	if depth > t.maxDepth {
		t.maxDepth = depth
	}
}

// unbalanced reports whether the tree is deeper than 2*ln(size).
func (t *KdTree) unbalanced() bool {
	return float64(t.maxDepth) > 2*math.Log(float64(t.size))
}

func (t *KdTree) rebalance() {
	if !t.unbalanced() {
		return
	}
	start := time.Now()
	oldDepth := t.maxDepth

	points := make([]Point, 0, t.size)
	for it := t.Begin(); it.Valid(); it.Next() {
		points = append(points, it.Point())
	}
	fresh := &KdTree{}
	fresh.build(&pointArray{points: points}, 0)

	// swap only once the replacement is complete
	t.root, t.size, t.maxDepth = fresh.root, fresh.size, fresh.maxDepth

	kdtreeRebuildTotal.Inc()
	kdtreeRebuildDuration.Observe(time.Since(start).Seconds())
	slog.Debug("pointset: rebuilt kd-tree",
		"size", t.size,
		"old_max_depth", oldDepth,
		"max_depth", t.maxDepth)
}
