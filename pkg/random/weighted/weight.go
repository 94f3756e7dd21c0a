package weighted

// Weight of an element stored in a Tree. Any integer or floating point
// type may be used.
//
// Operations on floating point weights are subject to rounding errors,
// which accumulate as weights are updated repeatedly. Integer types
// should be preferred whenever possible.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// isValidWeight returns true if a weight is nonnegative and finite.
func isValidWeight[W Weight](w W) bool {
	return w >= 0 && w-w == 0
}

// isIntegral returns true if W is an integer type.
func isIntegral[W Weight]() bool {
	var one W = 1
	return one/2 == 0
}

// checkedAdd computes the sum of two nonnegative weights. It returns
// false if the sum cannot be represented. For floating point types
// this is the case when the sum is infinite.
func checkedAdd[W Weight](a, b W) (W, bool) {
	s := a + b
	if s < a || s-s != 0 {
		return 0, false
	}
	return s, true
}
