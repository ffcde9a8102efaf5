package gen

import (
	"fmt"
	"go/token"
	"slices"
	"strings"
	"unicode"

	"vanilla/internal/analyze"
	"vanilla/internal/match"
)

// Identifiers used inside generated bodies. Import qualifiers never take
// these names, and local types named like them are rejected.
var reservedIdents = []string{"acc", "b", "err", "in", "missing", "out", "props", "v", "E"}

// PropertyError reports a matched property generated code cannot handle.
type PropertyError struct {
	Property analyze.PropertyDescriptor
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %s: %v", e.Property.Name, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// FileSpec holds every decision for one generated file.
type FileSpec struct {
	PkgName  string
	PkgPath  string
	Dir      string
	Filename string
	Imports  []ImportSpec

	Validator ValidatorSpec
	Builder   BuilderSpec
}

// PropertySpec describes one matched property.
type PropertySpec struct {
	// Name is the logical name shared by both sides.
	Name string
	// Field is the draft's Go field name. It also names the property's slot in
	// the generated properties struct.
	Field string
	// Setter is the builder method setting the property validator.
	Setter string
	// TargetField is the target's Go field name.
	TargetField string
	// InType and OutType are the draft and target field types as written in
	// the generated file.
	InType  string
	OutType string
	// Hint names a validator constructor fitting the two types, if any.
	Hint string
}

// ValidatorSpec describes the whole-draft validator type.
type ValidatorSpec struct {
	TypeName   string // DraftValidator
	PropsType  string // draftValidatorProperties
	DraftType  string
	TargetType string
	// Pkg is the qualifier of the validator package.
	Pkg        string
	Properties []PropertySpec
}

// BuilderSpec describes the builder type.
type BuilderSpec struct {
	TypeName      string // DraftValidatorBuilder
	Constructor   string // NewDraftValidatorBuilder
	ValidatorType string
	PropsType     string
	Pkg           string
	Properties    []PropertySpec
}

// Synthesize decides the generated API for a property mapping using the
// default configuration.
func Synthesize(m *match.PropertyMapping) (*FileSpec, error) {
	return NewGenerator(DefaultGeneratorConfig()).Synthesize(m)
}

// Synthesize decides the generated API for a property mapping.
func (g *Generator) Synthesize(m *match.PropertyMapping) (*FileSpec, error) {
	if m == nil || m.Pair == nil {
		return nil, fmt.Errorf("nil property mapping")
	}

	if len(m.Matches) == 0 {
		return nil, fmt.Errorf("%s: no matched properties", m.Pair)
	}

	pair := m.Pair
	ns := pair.Namespace
	draft := pair.Source.Name()

	for _, name := range []string{draft, pair.Target.Name()} {
		if slices.Contains(reservedIdents, name) {
			return nil, fmt.Errorf("%s: type name %q is used by generated code; rename the type", pair, name)
		}
	}

	validatorType := draft + "Validator"
	builderType := validatorType + "Builder"
	propsType := lowerFirst(validatorType) + "Properties"

	// Package-level names of the draft's package would clash with imports
	reserved := slices.Concat(reservedIdents, ns.Scope, []string{validatorType, builderType, propsType, draft})
	imports := newImportSet(ns.PkgPath, reserved...)
	pkg := imports.add(g.config.ValidatorPkgPath, g.config.ValidatorPkgName)

	spec := &FileSpec{
		PkgName:  ns.PkgName,
		PkgPath:  ns.PkgPath,
		Dir:      ns.Dir,
		Filename: Filename(draft),
	}

	targetType := imports.add(pair.Target.ID.PkgPath, pair.Target.PkgName)
	if targetType != "" {
		targetType += "."
	}

	targetType += pair.Target.Name()

	// Builder members a setter must not shadow
	setters := map[string]bool{"Build": true, "MustBuild": true, "props": true}

	props := make([]PropertySpec, 0, len(m.Matches))

	for _, pm := range m.Matches {
		if err := checkAccessible(pm.Source.Type, ns.PkgPath); err != nil {
			return nil, &PropertyError{Property: pm.Source, Err: err}
		}

		if err := checkAccessible(pm.Target.Type, ns.PkgPath); err != nil {
			return nil, &PropertyError{Property: pm.Target, Err: err}
		}

		setter := pm.Source.FieldName
		for setters[setter] {
			setter = "With" + upperFirst(setter)
		}

		setters[setter] = true

		prop := PropertySpec{
			Name:        pm.Name(),
			Field:       pm.Source.FieldName,
			Setter:      setter,
			TargetField: pm.Target.FieldName,
			InType:      imports.typeString(pm.Source.Type),
			OutType:     imports.typeString(pm.Target.Type),
		}

		if hint := pm.Shape.Hint(); hint != "" {
			prop.Hint = pkg + "." + hint
		}

		props = append(props, prop)
	}

	spec.Imports = imports.specs()

	spec.Validator = ValidatorSpec{
		TypeName:   validatorType,
		PropsType:  propsType,
		DraftType:  draft,
		TargetType: targetType,
		Pkg:        pkg,
		Properties: props,
	}

	spec.Builder = BuilderSpec{
		TypeName:      builderType,
		Constructor:   "New" + builderType,
		ValidatorType: validatorType,
		PropsType:     propsType,
		Pkg:           pkg,
		Properties:    props,
	}

	return spec, nil
}

// Filename returns the generated file name for a draft type:
// "OrderItemDraft" becomes "order_item_draft_validator.go".
func Filename(draft string) string {
	return strings.Join(match.TokenizeIdent(draft), "_") + "_validator.go"
}

// lowerFirst lowercases the leading run of capitals of an identifier
// ("URLDraft" -> "urlDraft", "Draft" -> "draft").
func lowerFirst(s string) string {
	runes := []rune(s)

	for i := range runes {
		if !unicode.IsUpper(runes[i]) {
			break
		}

		// Keep the capital starting the next word
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	lowered := string(runes)
	if token.IsKeyword(lowered) {
		return lowered + "_"
	}

	return lowered
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}

	return string(runes)
}
