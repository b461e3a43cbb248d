package array

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{3, 0, 2}, 0},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero-size dimensions should be legal, got %v", err)
	}
	err := (Shape{2, -1}).Validate()
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("negative dimension error = %v, want ErrShapeMismatch", err)
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b Shape
		want bool
	}{
		{Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 3}, Shape{3, 2}, false},
		{Shape{2, 3}, Shape{2, 3, 1}, false},
		{Shape{}, Shape{}, true},
		{nil, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{7}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b Shape
		want Shape
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{}, Shape{2, 3}, Shape{2, 3}},
		{Shape{2, 1, 4}, Shape{3, 1}, Shape{2, 3, 4}},
		{Shape{1}, Shape{0}, Shape{0}},
		{Shape{8, 1, 6, 1}, Shape{7, 1, 5}, Shape{8, 7, 6, 5}},
	}

	for _, tt := range tests {
		got, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) failed: %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBroadcastShapesMismatch(t *testing.T) {
	tests := []struct {
		a, b Shape
	}{
		{Shape{3}, Shape{4}},
		{Shape{2, 3}, Shape{2, 4}},
		{Shape{0}, Shape{3}},
	}

	for _, tt := range tests {
		_, err := BroadcastShapes(tt.a, tt.b)
		if !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("BroadcastShapes(%v, %v) error = %v, want ErrShapeMismatch", tt.a, tt.b, err)
		}
	}
}

func TestValidateReshape(t *testing.T) {
	if err := ValidateReshape(Shape{3, 4}, Shape{12}); err != nil {
		t.Errorf("reshape {3,4} -> {12} should work, got %v", err)
	}
	if err := ValidateReshape(Shape{}, Shape{1, 1}); err != nil {
		t.Errorf("reshape scalar -> {1,1} should work, got %v", err)
	}
	err := ValidateReshape(Shape{2, 3}, Shape{5})
	if !errors.Is(err, ErrReshape) {
		t.Errorf("mismatched reshape error = %v, want ErrReshape", err)
	}
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		axis, rank, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
	}

	for _, tt := range tests {
		got, err := normalizeAxis(tt.axis, tt.rank)
		if err != nil {
			t.Errorf("normalizeAxis(%d, %d) failed: %v", tt.axis, tt.rank, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeAxis(%d, %d) = %d, want %d", tt.axis, tt.rank, got, tt.want)
		}
	}

	for _, axis := range []int{3, -4, 100} {
		_, err := normalizeAxis(axis, 3)
		if !errors.Is(err, ErrAxis) {
			t.Errorf("normalizeAxis(%d, 3) error = %v, want ErrAxis", axis, err)
		}
	}
}
