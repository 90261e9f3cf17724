package core

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		v        float64
		expected int
	}{
		{0.0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.49, 1},
		{1.5, 2},
		{-0.4, 0},
		{-0.5, -1},
		{-1.5, -2},
		{24.999, 25},
		{25.001, 25},
	}

	for _, tt := range tests {
		if got := Round(tt.v); got != tt.expected {
			t.Errorf("Round(%v) = %d, expected %d", tt.v, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max int
		expected        int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.value, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		value, min, max float64
		expected        float64
	}{
		{5.5, 0, 10, 5.5},
		{-0.1, 0, 10, 0},
		{10.1, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := ClampF(tt.value, tt.min, tt.max); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.value, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs should return the absolute value")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max should return the larger value")
	}
}
