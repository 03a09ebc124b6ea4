package core

import "testing"

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 4, 4)

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(2, 2, 4, 4), true},
		{"contained", NewRect(1, 1, 2, 2), true},
		{"touching edge", NewRect(4, 0, 2, 2), false},
		{"disjoint", NewRect(10, 10, 2, 2), false},
	}

	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	if !r.Contains(1, 1) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(4, 4) {
		t.Error("bottom-right edge is exclusive")
	}
	if r.Contains(0, 2) {
		t.Error("point left of rect should not be contained")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(2, 7) != 2 || Max(2, 7) != 7 {
		t.Error("Min/Max broken")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs broken")
	}
}
