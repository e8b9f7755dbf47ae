package core

import "testing"

func TestRectEdgesAndContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"left of rect", 9, 15, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxAroundAndShrink(t *testing.T) {
	b := BoxAround(100, 50, 38, 28)
	want := Box{Left: 81, Top: 36, Right: 119, Bottom: 64}
	if b != want {
		t.Fatalf("BoxAround = %+v, expected %+v", b, want)
	}

	s := b.Shrink(4)
	want = Box{Left: 85, Top: 40, Right: 115, Bottom: 60}
	if s != want {
		t.Errorf("Shrink(4) = %+v, expected %+v", s, want)
	}
}

func TestBoxOverlapsX(t *testing.T) {
	b := Box{Left: 10, Right: 20}

	tests := []struct {
		name        string
		left, right float64
		expected    bool
	}{
		{"overlapping", 15, 25, true},
		{"contained", 12, 18, true},
		{"touching right edge", 20, 30, false},
		{"touching left edge", 0, 10, false},
		{"disjoint", 30, 40, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.OverlapsX(tc.left, tc.right); got != tc.expected {
				t.Errorf("OverlapsX(%v, %v) = %v, expected %v", tc.left, tc.right, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 {
		t.Error("Clamp returned a value outside the range")
	}
	if ClampF(2.5, -30, 70) != 2.5 || ClampF(-45, -30, 70) != -30 || ClampF(99, -30, 70) != 70 {
		t.Error("ClampF returned a value outside the range")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max returned the smaller value")
	}
}

func TestBoxContains(t *testing.T) {
	b := BoxAround(100, 50, 40, 20)

	tests := []struct {
		x, y float64
		want bool
	}{
		{100, 50, true},
		{80, 40, true},
		{120, 60, true},
		{79, 50, false},
		{100, 61, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
