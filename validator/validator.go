package validator

// Validator is a pure function from an input I to a Result holding either an
// output O or errors of type E. Identical inputs always yield equal results.
type Validator[I, O, E any] func(input I) Result[O, E]

// Validate runs v against input.
func (v Validator[I, O, E]) Validate(input I) Result[O, E] {
	return v(input)
}

// AndThen composes first and next sequentially. The output of first feeds
// next; when first fails its Result is returned untouched and next is never
// evaluated.
func AndThen[I, O1, O2, E any](first Validator[I, O1, E], next Validator[O1, O2, E]) Validator[I, O2, E] {
	return func(input I) Result[O2, E] {
		r := first(input)
		if !r.ok {
			return Result[O2, E]{first: r.first, rest: r.rest}
		}

		return next(r.value)
	}
}

// Compose chains validators that keep the value type. It stops at the first
// failing stage. With no stages it behaves like Identity.
func Compose[T, E any](stages ...Validator[T, T, E]) Validator[T, T, E] {
	return func(input T) Result[T, E] {
		r := Ok[T, E](input)
		for _, stage := range stages {
			r = stage(r.value)
			if !r.ok {
				return r
			}
		}

		return r
	}
}

// Map transforms the success value of v with f.
func Map[I, O1, O2, E any](v Validator[I, O1, E], f func(O1) O2) Validator[I, O2, E] {
	return func(input I) Result[O2, E] {
		return MapResult(v(input), f)
	}
}

// Identity returns a validator that always succeeds with its input.
func Identity[I, E any]() Validator[I, I, E] {
	return func(input I) Result[I, E] {
		return Ok[I, E](input)
	}
}

// Func adapts a plain function into a Validator.
func Func[I, O, E any](f func(I) Result[O, E]) Validator[I, O, E] {
	return f
}
