package utils

// Integer is the set of integer types, including named ones.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type number interface {
	Integer | ~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Successor returns v+1 and false when v is the largest value of T.
func Successor[T Integer](v T) (T, bool) {
	next := v + 1
	if next < v {
		return v, false
	}

	return next, true
}

// Predecessor returns v-1 and false when v is the smallest value of T.
func Predecessor[T Integer](v T) (T, bool) {
	prev := v - 1
	if prev > v {
		return v, false
	}

	return prev, true
}
