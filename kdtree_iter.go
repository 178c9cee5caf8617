package pointset

// kdIterator is either a walk over a snapshot (range and k-NN results) or an
// in-order walk over the live tree. It holds no stack: stepping through the
// tree follows parent back-references, so its state is a single node.
type kdIterator struct {
	snapshot *SliceIterator
	node     *kdNode
}

func newSnapshotIterator(points []Point) *kdIterator {
	return &kdIterator{snapshot: NewSliceIterator(points)}
}

// Begin returns an in-order iterator over the tree. Obtaining it has no side
// effects; a Put that triggers a rebuild invalidates it.
func (t *KdTree) Begin() Iterator {
	return &kdIterator{node: leftmost(t.root)}
}

func (it *kdIterator) Valid() bool {
	if it.snapshot != nil {
		return it.snapshot.Valid()
	}
	return it.node != nil
}

func (it *kdIterator) Point() Point {
	if it.snapshot != nil {
		return it.snapshot.Point()
	}
	if it.node == nil {
		panic("pointset: Point called on exhausted iterator")
	}
	return it.node.point
}

func (it *kdIterator) Next() {
	if it.snapshot != nil {
		it.snapshot.Next()
		return
	}
	it.node = next(it.node)
}

func leftmost(n *kdNode) *kdNode {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// next returns the in-order successor of n, or nil after the last node.
func next(n *kdNode) *kdNode {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}
