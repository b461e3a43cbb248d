// Package array provides the dtype registry, shape algebra, and the
// immutable n-dimensional array value type used across mlx-go.
package array

import (
	"github.com/pkg/errors"
)

// Dtype identifies the element kind of an array. The set of kinds is
// closed; values are process-wide constants obtained from the names
// below or from DtypeFromString, never constructed.
//
// The declaration order is the promotion order: Promote picks the
// later of its two operands.
type Dtype int

// Supported element kinds.
const (
	Bool Dtype = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float16
	BFloat16
	Float32
	Float64
	Complex64
)

// Size returns the storage width of one element in bytes.
func (dt Dtype) Size() int {
	switch dt {
	case Bool, Uint8, Int8:
		return 1
	case Uint16, Int16, Float16, BFloat16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64, Complex64:
		return 8
	default:
		panic("unknown dtype")
	}
}

// String returns the canonical lowercase name of the kind.
func (dt Dtype) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	default:
		return "unknown"
	}
}

// dtypeNames maps canonical names back to kinds for DtypeFromString.
var dtypeNames = map[string]Dtype{
	"bool":      Bool,
	"uint8":     Uint8,
	"uint16":    Uint16,
	"uint32":    Uint32,
	"uint64":    Uint64,
	"int8":      Int8,
	"int16":     Int16,
	"int32":     Int32,
	"int64":     Int64,
	"float16":   Float16,
	"bfloat16":  BFloat16,
	"float32":   Float32,
	"float64":   Float64,
	"complex64": Complex64,
}

// DtypeFromString resolves a canonical dtype name.
func DtypeFromString(name string) (Dtype, error) {
	dt, ok := dtypeNames[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownDtype, "no dtype named %q", name)
	}
	return dt, nil
}

// Category is a node in the dtype classification forest rooted at
// Generic. Leaf categories classify concrete kinds; inner categories
// exist for subtype queries (IsSubDtype).
type Category int

// Category constants.
const (
	Generic Category = iota
	Number
	Integer
	SignedInteger
	UnsignedInteger
	Inexact
	Floating
	ComplexFloating
	Boolean
)

// String returns the canonical lowercase name of the category.
func (c Category) String() string {
	switch c {
	case Generic:
		return "generic"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case SignedInteger:
		return "signedinteger"
	case UnsignedInteger:
		return "unsignedinteger"
	case Inexact:
		return "inexact"
	case Floating:
		return "floating"
	case ComplexFloating:
		return "complexfloating"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// parent returns the immediate ancestor category. Generic has none.
func (c Category) parent() (Category, bool) {
	switch c {
	case Boolean, Number:
		return Generic, true
	case Integer, Inexact:
		return Number, true
	case SignedInteger, UnsignedInteger:
		return Integer, true
	case Floating, ComplexFloating:
		return Inexact, true
	default:
		return 0, false
	}
}

// Category returns the leaf category of the kind.
func (dt Dtype) Category() Category {
	switch dt {
	case Bool:
		return Boolean
	case Uint8, Uint16, Uint32, Uint64:
		return UnsignedInteger
	case Int8, Int16, Int32, Int64:
		return SignedInteger
	case Float16, BFloat16, Float32, Float64:
		return Floating
	case Complex64:
		return ComplexFloating
	default:
		panic("unknown dtype")
	}
}

// DtypeOrCategory is the closed argument set of IsSubDtype: either a
// concrete Dtype or a Category.
type DtypeOrCategory interface {
	isDtypeOrCategory()
}

func (Dtype) isDtypeOrCategory()    {}
func (Category) isDtypeOrCategory() {}

// IsSubDtype reports whether a is b or belongs under b. A dtype is a
// subtype of itself and of every ancestor of its category; a category
// is a subtype of itself and of its ancestors; a category is never a
// subtype of a concrete dtype.
func IsSubDtype(a, b DtypeOrCategory) bool {
	switch x := a.(type) {
	case Dtype:
		switch y := b.(type) {
		case Dtype:
			return x == y
		case Category:
			return reachesCategory(x.Category(), y)
		}
	case Category:
		if y, ok := b.(Category); ok {
			return reachesCategory(x, y)
		}
	}
	return false
}

// reachesCategory reports whether target is c or an ancestor of c.
func reachesCategory(c, target Category) bool {
	for {
		if c == target {
			return true
		}
		p, ok := c.parent()
		if !ok {
			return false
		}
		c = p
	}
}
