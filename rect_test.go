package pointset

import (
	"testing"
)

func TestRectContains(t *testing.T) {
	rect := NewRect(Point{0, 0}, Point{2, 3})
	cases := []struct {
		p      Point
		inside bool
	}{
		{Point{1, 1}, true},
		{Point{0, 0}, true},
		{Point{2, 3}, true},
		{Point{2, 0}, true},
		{Point{-Eps / 2, 1}, true},
		{Point{-1, 1}, false},
		{Point{1, 3.5}, false},
		{Point{3, 4}, false},
	}
	for i, tc := range cases {
		if got := rect.Contains(tc.p); got != tc.inside {
			t.Errorf("case %v: %v.Contains(%v) = %v, want %v", i, rect, tc.p, got, tc.inside)
		}
	}
}

func TestRectDistance(t *testing.T) {
	rect := NewRect(Point{0, 0}, Point{2, 2})
	cases := []struct {
		p    Point
		dist float64
	}{
		{Point{1, 1}, 0},
		{Point{2, 2}, 0},
		{Point{3, 1}, 1},
		{Point{1, -2}, 2},
		{Point{5, 6}, 5},
		{Point{-3, -4}, 5},
	}
	for i, tc := range cases {
		if got := rect.Distance(tc.p); got != tc.dist {
			t.Errorf("case %v: distance to %v = %v, want %v", i, tc.p, got, tc.dist)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	rect := NewRect(Point{0, 0}, Point{2, 2})
	cases := []struct {
		other      Rect
		intersects bool
	}{
		{NewRect(Point{1, 1}, Point{3, 3}), true},
		{NewRect(Point{2, 2}, Point{3, 3}), true},
		{NewRect(Point{-1, -1}, Point{3, 3}), true},
		{NewRect(Point{0.5, 0.5}, Point{1, 1}), true},
		{NewRect(Point{2.5, 0}, Point{3, 2}), false},
		{NewRect(Point{0, -2}, Point{2, -1}), false},
	}
	for i, tc := range cases {
		if got := rect.Intersects(tc.other); got != tc.intersects {
			t.Errorf("case %v: %v.Intersects(%v) = %v, want %v", i, rect, tc.other, got, tc.intersects)
		}
		if got := tc.other.Intersects(rect); got != tc.intersects {
			t.Errorf("case %v: intersection is not symmetric", i)
		}
	}
}

func TestRectAccessors(t *testing.T) {
	rect := NewRect(Point{1, 2}, Point{3, 4})
	if rect.Xmin() != 1 || rect.Ymin() != 2 || rect.Xmax() != 3 || rect.Ymax() != 4 {
		t.Errorf("accessors of %v", rect)
	}
	if rect.GetLow(DimY) != 2 || rect.GetHigh(DimX) != 3 {
		t.Errorf("GetLow/GetHigh of %v", rect)
	}
	if s := rect.String(); s != "[1 2, 3 4]" {
		t.Errorf("String() = %q", s)
	}
}
