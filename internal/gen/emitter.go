package gen

import (
	"bytes"
	"fmt"
	"text/template"
)

// Declaration is a group of top-level Go declarations in source form.
type Declaration struct {
	// Name is the main declared identifier.
	Name string
	// Source is the unformatted Go source of the declarations.
	Source string
}

// Emitter turns synthesized specs into declarations.
type Emitter interface {
	EmitValidatorType(spec ValidatorSpec) (Declaration, error)
	EmitBuilderType(spec BuilderSpec) (Declaration, error)
}

// TemplateEmitter is the default Emitter, backed by text/template.
type TemplateEmitter struct{}

// EmitValidatorType implements Emitter.
func (TemplateEmitter) EmitValidatorType(spec ValidatorSpec) (Declaration, error) {
	return execute(validatorTemplate, spec.TypeName, spec)
}

// EmitBuilderType implements Emitter.
func (TemplateEmitter) EmitBuilderType(spec BuilderSpec) (Declaration, error) {
	return execute(builderTemplate, spec.TypeName, spec)
}

func execute(tmpl *template.Template, name string, data any) (Declaration, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return Declaration{}, fmt.Errorf("executing %s template for %s: %w", tmpl.Name(), name, err)
	}

	return Declaration{Name: name, Source: buf.String()}, nil
}

var validatorTemplate = template.Must(template.New("validator").Parse(`
// {{.PropsType}} holds one validator per matched property of {{.DraftType}}.
type {{.PropsType}}[E any] struct {
{{- range .Properties}}
	{{.Field}} {{$.Pkg}}.Validator[{{.InType}}, {{.OutType}}, E]
{{- end}}
}

// {{.TypeName}} validates {{.DraftType}} values into {{.TargetType}}.
// Use {{.TypeName}}Builder to create one.
type {{.TypeName}}[E any] struct {
	props {{.PropsType}}[E]
}

// Validate applies every property validator to in and reports all failures
// in property order. A {{.TargetType}} is returned only when every property
// passed.
func (v *{{.TypeName}}[E]) Validate(in {{.DraftType}}) {{.Pkg}}.Result[{{.TargetType}}, E] {
	var (
		acc {{.Pkg}}.Accumulator[E]
		out {{.TargetType}}
	)
{{range .Properties}}
	out.{{.TargetField}} = {{$.Pkg}}.Collect(&acc, v.props.{{.Field}}(in.{{.Field}}))
{{- end}}

	return {{.Pkg}}.Finish(&acc, func() {{.TargetType}} { return out })
}

// Validator returns Validate as a {{.Pkg}}.Validator.
func (v *{{.TypeName}}[E]) Validator() {{.Pkg}}.Validator[{{.DraftType}}, {{.TargetType}}, E] {
	return v.Validate
}
`))

var builderTemplate = template.Must(template.New("builder").Parse(`
// {{.TypeName}} assembles a {{.ValidatorType}} from one validator per
// property.
type {{.TypeName}}[E any] struct {
	props {{.PropsType}}[E]
}

// {{.Constructor}} returns a builder with no property validator set.
func {{.Constructor}}[E any]() *{{.TypeName}}[E] {
	return &{{.TypeName}}[E]{}
}
{{range .Properties}}
// {{.Setter}} sets the validator of property {{.Name}} ({{.InType}} -> {{.OutType}}).
{{- if .Hint}}
// {{.Hint}} fits these types.
{{- end}}
func (b *{{$.TypeName}}[E]) {{.Setter}}(v {{$.Pkg}}.Validator[{{.InType}}, {{.OutType}}, E]) *{{$.TypeName}}[E] {
	b.props.{{.Field}} = v
	return b
}
{{end}}
// Build returns the assembled validator. It fails with a
// *{{.Pkg}}.MissingValidatorError naming every property without a validator.
func (b *{{.TypeName}}[E]) Build() (*{{.ValidatorType}}[E], error) {
	var missing []string
{{range .Properties}}

	if b.props.{{.Field}} == nil {
		missing = append(missing, {{printf "%q" .Setter}})
	}
{{- end}}

	if len(missing) > 0 {
		return nil, &{{.Pkg}}.MissingValidatorError{Validator: {{printf "%q" .ValidatorType}}, Properties: missing}
	}

	return &{{.ValidatorType}}[E]{props: b.props}, nil
}

// MustBuild is like Build but panics when a property validator is missing.
func (b *{{.TypeName}}[E]) MustBuild() *{{.ValidatorType}}[E] {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}

	return v
}
`))
