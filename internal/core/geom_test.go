package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectEmpty(t *testing.T) {
	if NewRect(0, 0, 1, 1).Empty() {
		t.Error("1x1 rect should not be empty")
	}
	for _, r := range []Rect{NewRect(5, 5, 0, 3), NewRect(5, 5, 3, 0), NewRect(0, 0, -1, 1)} {
		if !r.Empty() {
			t.Errorf("rect %+v should be empty", r)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	if !r.Contains(1, 1) {
		t.Error("Contains should include the top-left corner")
	}
	if !r.Contains(3, 3) {
		t.Error("Contains should include the last interior pixel")
	}
	if r.Contains(4, 4) {
		t.Error("Contains should exclude the exclusive far edge")
	}
	if r.Contains(0, 2) {
		t.Error("Contains should exclude points left of the rect")
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersect = %+v, expected %+v", got, want)
	}

	// Intersection is symmetric
	if b.Intersect(a) != want {
		t.Errorf("Intersect is not symmetric: %+v", b.Intersect(a))
	}
}

func TestRectIntersectDisjoint(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	cases := []Rect{
		NewRect(4, 0, 2, 2),   // touching right edge
		NewRect(0, 4, 2, 2),   // touching bottom edge
		NewRect(-3, 0, 3, 3),  // touching left edge
		NewRect(10, 10, 2, 2), // far away
	}
	for _, b := range cases {
		if got := a.Intersect(b); !got.Empty() {
			t.Errorf("Intersect with disjoint %+v = %+v, expected empty", b, got)
		}
	}
}

func TestRectIn(t *testing.T) {
	outer := NewRect(0, 0, 4, 4)

	if !NewRect(0, 0, 4, 4).In(outer) {
		t.Error("rect should be in itself")
	}
	if !NewRect(2, 2, 2, 2).In(outer) {
		t.Error("rect touching the far edge exactly should be in bounds")
	}
	if NewRect(2, 2, 3, 2).In(outer) {
		t.Error("rect past the far edge should not be in bounds")
	}
	if NewRect(-1, 0, 2, 2).In(outer) {
		t.Error("rect with negative origin should not be in bounds")
	}
	if !NewRect(3, 3, 0, 0).In(outer) {
		t.Error("empty rect is trivially in bounds")
	}
}

func TestClampMinMax(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Error("Clamp returned wrong value")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max returned wrong value")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs returned wrong value")
	}
}
