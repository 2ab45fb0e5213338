package vec

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", scaled)
	}

	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestVec3_Len(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected float64
	}{
		{New(3, 4, 0), 5.0},
		{New(1, 0, 0), 1.0},
		{New(0, 0, 0), 0.0},
		{New(1, 1, 1), math.Sqrt(3)},
	}

	for _, tt := range tests {
		if got := tt.v.Len(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Len(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec3_Normalized(t *testing.T) {
	n := New(0, 3, 4).Normalized()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, want 1", n.Len())
	}

	if z := Zero.Normalized(); z != Zero {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		valid bool
	}{
		{"zero", Zero, true},
		{"normal", New(1, -2, 3), true},
		{"with NaN", New(1, math.NaN(), 0), false},
		{"with +Inf", New(math.Inf(1), 0, 0), false},
		{"with -Inf", New(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
