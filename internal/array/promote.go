package array

// Promote returns the common dtype for a mixed-dtype binary operation.
//
// The kinds form one fixed total order (bool, then the unsigned and
// signed integers widening by byte size, then the floating kinds, then
// complex64) and the later of the two operands wins. Taking a maximum
// over a total order makes promotion commutative and associative, so
// folding any number of operands in any order yields the same dtype.
func Promote(a, b Dtype) Dtype {
	if a > b {
		return a
	}
	return b
}

// floatDtype returns the dtype a kind computes in under a
// float-promoting transcendental: floating kinds keep their width,
// complex stays complex, everything else widens to float32.
func floatDtype(dt Dtype) Dtype {
	switch dt.Category() {
	case Floating:
		return dt
	case ComplexFloating:
		return dt
	default:
		return Float32
	}
}
