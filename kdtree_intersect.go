package pointset

// IntersectVisitor receives every stored point lying inside its rectangle.
type IntersectVisitor interface {
	GetRect() Rect
	VisitPoint(point Point)
}

// IntersectCollector is an IntersectVisitor that keeps the visited points.
type IntersectCollector struct {
	rect   Rect
	points []Point
}

func NewIntersectCollector(rect Rect) *IntersectCollector {
	return &IntersectCollector{rect: rect}
}

func (d *IntersectCollector) GetRect() Rect          { return d.rect }
func (d *IntersectCollector) VisitPoint(point Point) { d.points = append(d.points, point) }
func (d *IntersectCollector) Points() []Point        { return d.points }

// Contains reports whether a point equal to p is stored.
func (t *KdTree) Contains(p Point) bool {
	return t.find(p) != nil
}

func (t *KdTree) find(p Point) *kdNode {
	cur := t.root
	for cur != nil {
		if cur.point.Equals(p) {
			return cur
		}
		if cur.goesLeft(p) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// Intersect does window query, pruning subtrees whose half-plane cannot reach
// the visitor's rectangle.
func (t *KdTree) Intersect(visitor IntersectVisitor) {
	t.root.visit(visitor, visitor.GetRect())
}

// visit returns the number of nodes it examined.
func (n *kdNode) visit(visitor IntersectVisitor, rect Rect) (visited int) {
	if n == nil {
		return
	}
	visited = 1
	if rect.Contains(n.point) {
		visitor.VisitPoint(n.point)
	}
	dim := n.splitDim()
	val := n.point.GetValue(dim)
	// Contains tolerates Eps outside the box, so the split tests do too.
	if val >= rect.GetLow(dim)-Eps {
		visited += n.left.visit(visitor, rect)
	}
	if val <= rect.GetHigh(dim)+Eps {
		visited += n.right.visit(visitor, rect)
	}
	return
}

// Range returns a snapshot of the points inside rect.
func (t *KdTree) Range(rect Rect) Iterator {
	collector := NewIntersectCollector(rect)
	t.Intersect(collector)
	return newSnapshotIterator(collector.Points())
}
