package core

import (
	"math"
	"testing"
)

func TestVecDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(1, 1), V(1, 1), 0},
		{"horizontal", V(0, 0), V(25, 0), 25},
		{"3-4-5", V(0, 0), V(3, 4), 5},
		{"negative coords", V(-3, -4), V(0, 0), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Dist(tc.b); got != tc.expected {
				t.Errorf("Dist() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Dist(tc.a); got != tc.expected {
				t.Errorf("Dist() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecNorm(t *testing.T) {
	n := V(3, 4).Norm()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Norm() length = %v, expected 1", n.Len())
	}

	zero := Vec{}.Norm()
	if zero != (Vec{}) {
		t.Errorf("Norm() of zero vector = %v, expected zero", zero)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Errorf("FromAngle(pi/2) = %v, expected (0, 1)", v)
	}
	if math.Abs(V(0, 1).Angle()-math.Pi/2) > 1e-9 {
		t.Errorf("Angle() of (0,1) = %v, expected pi/2", V(0, 1).Angle())
	}
}

func TestBoundsContains(t *testing.T) {
	b := NewBounds(0, 0, 800, 600)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"center", V(400, 300), true},
		{"top-left corner (inclusive)", V(0, 0), true},
		{"bottom-right corner (inclusive)", V(800, 600), true},
		{"outside left", V(-0.1, 300), false},
		{"outside bottom", V(400, 600.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoundsClampAndInset(t *testing.T) {
	b := NewBounds(0, 0, 800, 600)

	if got := b.Clamp(V(-20, 700)); got != V(0, 600) {
		t.Errorf("Clamp() = %v, expected (0, 600)", got)
	}
	if got := b.Center(); got != V(400, 300) {
		t.Errorf("Center() = %v, expected (400, 300)", got)
	}

	grown := b.Inset(-50)
	if !grown.Contains(V(-40, -40)) {
		t.Error("Inset(-50) should contain (-40, -40)")
	}
	if grown.Width() != 900 || grown.Height() != 700 {
		t.Errorf("Inset(-50) size = %vx%v, expected 900x700", grown.Width(), grown.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(15.5, 0, 10) != 10 {
		t.Error("ClampF(15.5, 0, 10) should be 10")
	}
}
