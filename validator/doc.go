// Package validator provides a small combinator algebra for composable
// validators.
//
// A [Validator] is a pure function from an input to a [Result]. A Result is
// either a success value or one-or-more errors of a caller defined type E.
//
// Key pieces:
//   - Ok / Err: the two Result variants; Err always carries a first error and
//     an optional non-empty list of additional errors
//   - AndThen / Compose: sequential composition, short-circuits on the first
//     failing stage
//   - Map: transforms the success value only
//   - EachElement: lifts a per-element validator over a slice, evaluating
//     every element and aggregating every error
//   - Accumulator: the non-short-circuit aggregation used by EachElement and
//     by validators produced by vanilla-gen
//   - predicate validators (IsNotNil, IsNotBlank, HasLengthInRange, ...)
package validator
