package validator

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"

	"vanilla/utils"
)

// ErrorProvider builds the error for an input that failed a predicate.
type ErrorProvider[I, E any] func(failedInput I) E

// ErrorOf returns an ErrorProvider that ignores the input and yields err.
func ErrorOf[I, E any](err E) ErrorProvider[I, E] {
	return func(I) E { return err }
}

// Predicate returns a validator that succeeds with its input when ok holds
// and fails with errorProvider(input) otherwise.
func Predicate[T, E any](ok func(T) bool, errorProvider ErrorProvider[T, E]) Validator[T, T, E] {
	return func(input T) Result[T, E] {
		if ok(input) {
			return Ok[T, E](input)
		}

		return Err[T](errorProvider(input))
	}
}

// never fails every input; used when a derived bound cannot be represented.
func never[T, E any](errorProvider ErrorProvider[T, E]) Validator[T, T, E] {
	return Predicate(func(T) bool { return false }, errorProvider)
}

// IsNotNil dereferences a non-nil pointer and fails with err on nil.
func IsNotNil[T, E any](err E) Validator[*T, T, E] {
	return func(input *T) Result[T, E] {
		if input == nil {
			return Err[T](err)
		}

		return Ok[T, E](*input)
	}
}

// IsNotEmpty fails with err on the empty string.
func IsNotEmpty[E any](err E) Validator[string, string, E] {
	return Predicate(func(s string) bool { return s != "" }, ErrorOf[string](err))
}

// IsNotBlank fails on strings that are empty or contain only white space.
func IsNotBlank[E any](errorProvider ErrorProvider[string, E]) Validator[string, string, E] {
	return Predicate(func(s string) bool { return strings.TrimSpace(s) != "" }, errorProvider)
}

// HasLengthGreaterThanOrEqualTo checks that a string has at least length runes.
func HasLengthGreaterThanOrEqualTo[E any](length int, errorProvider ErrorProvider[string, E]) Validator[string, string, E] {
	return Predicate(func(s string) bool { return utf8.RuneCountInString(s) >= length }, errorProvider)
}

// HasLengthLessThanOrEqualTo checks that a string has at most length runes.
func HasLengthLessThanOrEqualTo[E any](length int, errorProvider ErrorProvider[string, E]) Validator[string, string, E] {
	return Predicate(func(s string) bool { return utf8.RuneCountInString(s) <= length }, errorProvider)
}

// HasLengthGreaterThan is HasLengthGreaterThanOrEqualTo(length+1).
func HasLengthGreaterThan[E any](length int, errorProvider ErrorProvider[string, E]) Validator[string, string, E] {
	next, ok := utils.Successor(length)
	if !ok {
		return never(errorProvider)
	}

	return HasLengthGreaterThanOrEqualTo(next, errorProvider)
}

// HasLengthLessThan is HasLengthLessThanOrEqualTo(length-1).
func HasLengthLessThan[E any](length int, errorProvider ErrorProvider[string, E]) Validator[string, string, E] {
	prev, ok := utils.Predecessor(length)
	if !ok {
		return never(errorProvider)
	}

	return HasLengthLessThanOrEqualTo(prev, errorProvider)
}

// HasLengthInRange checks that the rune count of a string lies in [min, max].
// It panics when min > max.
func HasLengthInRange[E any](min, max int, errorProvider ErrorProvider[string, E]) Validator[string, string, E] {
	if min > max {
		panic(fmt.Sprintf("invalid range (%d..%d), expected min <= max", min, max))
	}

	return Predicate(func(s string) bool {
		return utils.IsInRange(min, utf8.RuneCountInString(s), max)
	}, errorProvider)
}

// IsGreaterThanOrEqual checks input >= value.
func IsGreaterThanOrEqual[T cmp.Ordered, E any](value T, errorProvider ErrorProvider[T, E]) Validator[T, T, E] {
	return Predicate(func(in T) bool { return cmp.Compare(in, value) >= 0 }, errorProvider)
}

// IsLessThanOrEqual checks input <= value.
func IsLessThanOrEqual[T cmp.Ordered, E any](value T, errorProvider ErrorProvider[T, E]) Validator[T, T, E] {
	return Predicate(func(in T) bool { return cmp.Compare(in, value) <= 0 }, errorProvider)
}

// IsGreaterThan checks input > value as input >= value+1, so it is limited
// to integers. When value is the largest value of T every input fails.
func IsGreaterThan[T utils.Integer, E any](value T, errorProvider ErrorProvider[T, E]) Validator[T, T, E] {
	next, ok := utils.Successor(value)
	if !ok {
		return never(errorProvider)
	}

	return IsGreaterThanOrEqual(next, errorProvider)
}

// IsLessThan checks input < value as input <= value-1, so it is limited to
// integers. When value is the smallest value of T every input fails.
func IsLessThan[T utils.Integer, E any](value T, errorProvider ErrorProvider[T, E]) Validator[T, T, E] {
	prev, ok := utils.Predecessor(value)
	if !ok {
		return never(errorProvider)
	}

	return IsLessThanOrEqual(prev, errorProvider)
}
