package match

import (
	"go/types"
)

//go:generate go tool stringer -type=Shape -linecomment -output=shape_string.go

// Shape describes how a draft field's type relates to the target field's
// type. Matching ignores it; it ranks suggestions and documents setters.
type Shape int

const (
	// ShapeDifferent means the property validator has to build the target
	// value itself.
	ShapeDifferent Shape = iota // different
	// ShapeConvertible means a Go conversion turns one into the other.
	ShapeConvertible // convertible
	// ShapeDereference means the draft holds a pointer to the target type.
	ShapeDereference // dereference
	// ShapeAssignable means the draft value can be assigned as is.
	ShapeAssignable // assignable
	// ShapeIdentical means both fields have the same type.
	ShapeIdentical // identical
)

// Hint names the validator package function that fits the shape, or ""
// when none does.
func (s Shape) Hint() string {
	switch s {
	case ShapeIdentical:
		return "Identity"
	case ShapeDereference:
		return "IsNotNil"
	default:
		return ""
	}
}

func (s Shape) score() float64 {
	switch s {
	case ShapeIdentical:
		return 1.0
	case ShapeAssignable:
		return 0.9
	case ShapeDereference:
		return 0.8
	case ShapeConvertible:
		return 0.6
	default:
		return 0.0
	}
}

// ClassifyShape relates a draft field type to a target field type. Unknown
// types are treated as different.
func ClassifyShape(source, target types.Type) Shape {
	if source == nil || target == nil {
		return ShapeDifferent
	}

	if types.Identical(source, target) {
		return ShapeIdentical
	}

	if types.AssignableTo(source, target) {
		return ShapeAssignable
	}

	// *T -> T is what IsNotNil produces
	if ptr, ok := source.Underlying().(*types.Pointer); ok {
		if types.Identical(ptr.Elem(), target) {
			return ShapeDereference
		}
	}

	if types.ConvertibleTo(source, target) {
		return ShapeConvertible
	}

	return ShapeDifferent
}
