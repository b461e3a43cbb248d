package array

import (
	"errors"
	"testing"
)

var allDtypes = []Dtype{
	Bool, Uint8, Uint16, Uint32, Uint64,
	Int8, Int16, Int32, Int64,
	Float16, BFloat16, Float32, Float64, Complex64,
}

func TestDtypeSize(t *testing.T) {
	tests := []struct {
		dtype Dtype
		size  int
	}{
		{Bool, 1},
		{Uint8, 1},
		{Uint16, 2},
		{Uint32, 4},
		{Uint64, 8},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Float16, 2},
		{BFloat16, 2},
		{Float32, 4},
		{Float64, 8},
		{Complex64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDtypeString(t *testing.T) {
	tests := []struct {
		dtype Dtype
		str   string
	}{
		{Bool, "bool"},
		{Uint8, "uint8"},
		{Uint16, "uint16"},
		{Uint32, "uint32"},
		{Uint64, "uint64"},
		{Int8, "int8"},
		{Int16, "int16"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Float16, "float16"},
		{BFloat16, "bfloat16"},
		{Float32, "float32"},
		{Float64, "float64"},
		{Complex64, "complex64"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestDtypeFromString(t *testing.T) {
	for _, dt := range allDtypes {
		got, err := DtypeFromString(dt.String())
		if err != nil {
			t.Errorf("DtypeFromString(%q) failed: %v", dt.String(), err)
			continue
		}
		if got != dt {
			t.Errorf("DtypeFromString(%q) = %v, want %v", dt.String(), got, dt)
		}
	}

	for _, name := range []string{"float8", "int", "", "Float32", "double"} {
		_, err := DtypeFromString(name)
		if !errors.Is(err, ErrUnknownDtype) {
			t.Errorf("DtypeFromString(%q) error = %v, want ErrUnknownDtype", name, err)
		}
	}
}

func TestDtypeCategory(t *testing.T) {
	tests := []struct {
		dtype Dtype
		cat   Category
	}{
		{Bool, Boolean},
		{Uint8, UnsignedInteger},
		{Uint64, UnsignedInteger},
		{Int8, SignedInteger},
		{Int64, SignedInteger},
		{Float16, Floating},
		{BFloat16, Floating},
		{Float64, Floating},
		{Complex64, ComplexFloating},
	}

	for _, tt := range tests {
		if got := tt.dtype.Category(); got != tt.cat {
			t.Errorf("%s.Category() = %v, want %v", tt.dtype, got, tt.cat)
		}
	}
}

func TestIsSubDtype(t *testing.T) {
	tests := []struct {
		a, b DtypeOrCategory
		want bool
	}{
		// Dtype vs category
		{Int32, Integer, true},
		{Int32, SignedInteger, true},
		{Int32, UnsignedInteger, false},
		{Uint8, UnsignedInteger, true},
		{Uint8, Number, true},
		{Float16, Inexact, true},
		{Float16, Floating, true},
		{BFloat16, Floating, true},
		{Float32, Floating, true},
		{Float32, Generic, true},
		{Float32, Integer, false},
		{Complex64, Inexact, true},
		{Complex64, Floating, false},
		{Bool, Boolean, true},
		{Bool, Number, false},
		{Bool, Generic, true},
		{Float64, Generic, true},
		// Dtype vs dtype
		{Float32, Float32, true},
		{Float32, Float64, false},
		// Category vs category
		{SignedInteger, Integer, true},
		{Integer, Number, true},
		{Floating, Inexact, true},
		{Floating, Number, true},
		{Floating, Integer, false},
		{Number, Generic, true},
		{Generic, Number, false},
		// Category vs dtype is never true
		{Integer, Int32, false},
	}

	for _, tt := range tests {
		if got := IsSubDtype(tt.a, tt.b); got != tt.want {
			t.Errorf("IsSubDtype(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b, want Dtype
	}{
		{Bool, Bool, Bool},
		{Bool, Uint8, Uint8},
		{Bool, Float32, Float32},
		{Uint8, Uint16, Uint16},
		{Uint64, Int8, Int8},
		{Int8, Int64, Int64},
		{Int32, Float16, Float16},
		{Int64, Float32, Float32},
		{Float16, BFloat16, BFloat16},
		{Float16, Float32, Float32},
		{Float32, Float64, Float64},
		{Float64, Complex64, Complex64},
		{Bool, Complex64, Complex64},
	}

	for _, tt := range tests {
		if got := Promote(tt.a, tt.b); got != tt.want {
			t.Errorf("Promote(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPromoteCommutative(t *testing.T) {
	for _, a := range allDtypes {
		for _, b := range allDtypes {
			ab := Promote(a, b)
			ba := Promote(b, a)
			if ab != ba {
				t.Errorf("Promote(%s, %s) = %s but Promote(%s, %s) = %s", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestPromoteIdempotent(t *testing.T) {
	for _, dt := range allDtypes {
		if got := Promote(dt, dt); got != dt {
			t.Errorf("Promote(%s, %s) = %s, want %s", dt, dt, got, dt)
		}
	}
}

func TestPromoteAssociative(t *testing.T) {
	for _, a := range allDtypes {
		for _, b := range allDtypes {
			for _, c := range allDtypes {
				left := Promote(Promote(a, b), c)
				right := Promote(a, Promote(b, c))
				if left != right {
					t.Errorf("Promote order matters for (%s, %s, %s): %s vs %s", a, b, c, left, right)
				}
			}
		}
	}
}
