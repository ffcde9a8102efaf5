package validator

import (
	"fmt"
	"slices"
)

// Result is the outcome of a validation: either Ok with a value or Err with
// at least one error.
//
// The zero Result is an Err carrying the zero value of E; construct results
// with Ok and Err.
type Result[T, E any] struct {
	value T
	first E
	rest  []E // nil when absent, never empty
	ok    bool
}

// Ok returns a successful Result holding value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a failed Result. The first error is mandatory; rest holds
// optional additional errors in order.
func Err[T, E any](first E, rest ...E) Result[T, E] {
	r := Result[T, E]{first: first}
	if len(rest) > 0 {
		r.rest = slices.Clone(rest)
	}

	return r
}

// errFromSlice builds an Err from a flattened error list. errs must not be empty.
func errFromSlice[T, E any](errs []E) Result[T, E] {
	if len(errs) == 0 {
		panic("validator: cannot build an error result without errors")
	}

	return Err[T](errs[0], errs[1:]...)
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}

	return r.value, true
}

// First returns the first error and true, or the zero value and false for Ok.
func (r Result[T, E]) First() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}

	return r.first, true
}

// Rest returns the additional errors of an Err, or nil when there are none.
func (r Result[T, E]) Rest() []E {
	if r.ok || len(r.rest) == 0 {
		return nil
	}

	return slices.Clone(r.rest)
}

// Errors returns every error of an Err in order (first, then rest).
// It returns nil for Ok.
func (r Result[T, E]) Errors() []E {
	if r.ok {
		return nil
	}

	errs := make([]E, 0, 1+len(r.rest))
	errs = append(errs, r.first)

	return append(errs, r.rest...)
}

// Match calls exactly one of onOk or onErr depending on the variant.
func (r Result[T, E]) Match(onOk func(value T), onErr func(first E, rest []E)) {
	if r.ok {
		onOk(r.value)
		return
	}

	onErr(r.first, r.Rest())
}

// String returns "Ok(v)" or "Err(first, [rest...])".
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}

	if len(r.rest) == 0 {
		return fmt.Sprintf("Err(%v)", r.first)
	}

	return fmt.Sprintf("Err(%v, %v)", r.first, r.rest)
}

// MapResult transforms the value of an Ok with f. An Err is passed through
// unchanged, including its additional errors.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Result[U, E]{first: r.first, rest: r.rest}
	}

	return Ok[U, E](f(r.value))
}

// Fold reduces r to a single value using onOk or onErr.
func Fold[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(first E, rest []E) R) R {
	if r.ok {
		return onOk(r.value)
	}

	return onErr(r.first, r.Rest())
}
