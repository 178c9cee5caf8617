package pointset

import (
	"math"
)

// Rect is an axis-aligned box given by its left-bottom and right-top corners.
// Boxes with Min greater than Max on either axis are not rejected; they
// simply contain nothing.
type Rect struct {
	Min Point
	Max Point
}

func NewRect(leftBottom, rightTop Point) Rect {
	return Rect{Min: leftBottom, Max: rightTop}
}

func (r Rect) Xmin() float64 { return r.Min.X }
func (r Rect) Ymin() float64 { return r.Min.Y }
func (r Rect) Xmax() float64 { return r.Max.X }
func (r Rect) Ymax() float64 { return r.Max.Y }

// GetLow and GetHigh return the box bounds along dim.
func (r Rect) GetLow(dim int) float64  { return r.Min.GetValue(dim) }
func (r Rect) GetHigh(dim int) float64 { return r.Max.GetValue(dim) }

// Distance returns the Euclidean distance from p to the box, 0 if p is inside.
func (r Rect) Distance(p Point) float64 {
	dx := axisDist(p.X, r.Xmin(), r.Xmax())
	dy := axisDist(p.Y, r.Ymin(), r.Ymax())
	return math.Hypot(dx, dy)
}

// Contains reports whether p lies on or inside the box.
func (r Rect) Contains(p Point) bool {
	return r.Distance(p) < Eps
}

// Intersects reports whether the two boxes overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return other.Xmax() >= r.Xmin() && other.Xmin() <= r.Xmax() &&
		other.Ymax() >= r.Ymin() && other.Ymin() <= r.Ymax()
}

func (r Rect) String() string {
	return "[" + r.Min.String() + ", " + r.Max.String() + "]"
}

func axisDist(k, min, max float64) float64 {
	if k < min {
		return min - k
	}
	if k <= max {
		return 0
	}
	return k - max
}
