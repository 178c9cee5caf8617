package pointset

var _ PointSet = (*KdTree)(nil)

// kdNode owns its point and its children. parent is a back-reference used only
// to step through the tree in order; ownership always flows from parent to child.
type kdNode struct {
	point  Point
	depth  int
	left   *kdNode
	right  *kdNode
	parent *kdNode
}

// splitDim returns the axis a node partitions on: x at even depth, y at odd depth.
func (n *kdNode) splitDim() int {
	return n.depth % 2
}

// goesLeft reports whether p belongs to the node's left subtree.
func (n *kdNode) goesLeft(p Point) bool {
	dim := n.splitDim()
	return p.GetValue(dim) <= n.point.GetValue(dim)
}

// KdTree is a 2-d tree point set. Nodes at even depth split on x, nodes at odd
// depth split on y. It is not safe for concurrent use, and any Put invalidates
// iterators obtained before it.
type KdTree struct {
	root     *kdNode
	size     int
	maxDepth int
}

// NewKdTree builds a balanced tree from points. The slice is not modified.
func NewKdTree(points []Point) *KdTree {
	t := &KdTree{}
	if len(points) == 0 {
		return t
	}
	pointsCopy := make([]Point, len(points))
	copy(pointsCopy, points)
	t.build(&pointArray{points: pointsCopy}, 0)
	return t
}

// NewKdTreeFromFile builds a tree from a bulk load file. An unreadable file
// yields an empty tree.
func NewKdTreeFromFile(fp string) *KdTree {
	return NewKdTree(LoadPointsFile(fp))
}

// build inserts the median along the depth's axis, then recurses into both
// halves. Each median is inserted from the root, and since medians always
// arrive before the points of their halves the result is balanced.
func (t *KdTree) build(points *pointArray, depth int) {
	if points.Len() == 0 {
		return
	}
	middle := splitMedian(points, depth%2)
	t.insert(points.GetPoint(middle))
	t.build(points.SubArray(0, middle), depth+1)
	t.build(points.SubArray(middle+1, points.Len()), depth+1)
}

func (t *KdTree) Empty() bool {
	return t.root == nil
}

func (t *KdTree) Size() int {
	return t.size
}

// MaxDepth returns the deepest level reached by insertions since the last build.
func (t *KdTree) MaxDepth() int {
	return t.maxDepth
}

// Clone returns an independent copy of the tree with the same shape.
func (t *KdTree) Clone() *KdTree {
	return &KdTree{
		root:     copyTree(t.root, nil),
		size:     t.size,
		maxDepth: t.maxDepth,
	}
}

func copyTree(from, parent *kdNode) *kdNode {
	if from == nil {
		return nil
	}
	to := &kdNode{
		point:  from.point,
		depth:  from.depth,
		parent: parent,
	}
	to.left = copyTree(from.left, to)
	to.right = copyTree(from.right, to)
	return to
}

func (t *KdTree) String() string {
	return Format(t.Begin())
}
