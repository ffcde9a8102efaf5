package validator

import (
	"iter"
	"slices"
)

// Accumulator gathers errors from several independent results without
// short-circuiting. Errors keep the order in which results were collected.
//
// The zero value is ready to use.
type Accumulator[E any] struct {
	errs []E
}

// Collect records the errors of r in acc and returns its value. For an Err it
// returns the zero value of T.
func Collect[T, E any](acc *Accumulator[E], r Result[T, E]) T {
	if !r.ok {
		acc.errs = append(acc.errs, r.first)
		acc.errs = append(acc.errs, r.rest...)

		var zero T

		return zero
	}

	return r.value
}

// Failed reports whether any collected result was an Err.
func (a *Accumulator[E]) Failed() bool {
	return len(a.errs) > 0
}

// Errors returns a copy of the collected errors.
func (a *Accumulator[E]) Errors() []E {
	return slices.Clone(a.errs)
}

// Finish returns Ok(build()) when nothing failed, otherwise a single Err
// holding every collected error. build is not called on failure.
func Finish[T, E any](acc *Accumulator[E], build func() T) Result[T, E] {
	if acc.Failed() {
		return errFromSlice[T](acc.errs)
	}

	return Ok[T, E](build())
}

// EachElement lifts element over a slice. Every element is validated, even
// after a failure. On success the outputs keep the input order; on failure
// the errors of all failing elements are flattened in element order.
func EachElement[I, O, E any](element Validator[I, O, E]) Validator[[]I, []O, E] {
	return func(input []I) Result[[]O, E] {
		return eachOf(slices.Values(input), len(input), element)
	}
}

// EachElementSeq is EachElement for an iterator.
func EachElementSeq[I, O, E any](element Validator[I, O, E]) Validator[iter.Seq[I], []O, E] {
	return func(input iter.Seq[I]) Result[[]O, E] {
		return eachOf(input, 0, element)
	}
}

func eachOf[I, O, E any](input iter.Seq[I], size int, element Validator[I, O, E]) Result[[]O, E] {
	var acc Accumulator[E]

	outputs := make([]O, 0, size)
	if input == nil {
		return Ok[[]O, E](outputs)
	}

	for in := range input {
		out := Collect(&acc, element(in))
		if !acc.Failed() {
			outputs = append(outputs, out)
		}
	}

	return Finish(&acc, func() []O { return outputs })
}
