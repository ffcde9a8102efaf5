package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"text/template"

	"vanilla/internal/analyze"
	"vanilla/internal/diagnostic"
	"vanilla/internal/match"
)

// Default location of the validator package generated code imports.
const (
	DefaultValidatorPkgPath = "vanilla/validator"
	DefaultValidatorPkgName = "validator"
)

// CodeGenerationFailed is reported for a pair whose file cannot be generated.
const CodeGenerationFailed = "generation-failed"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// ValidatorPkgPath is the import path of the validator package.
	ValidatorPkgPath string
	// ValidatorPkgName is its declared package name.
	ValidatorPkgName string
	// DebugUnformatted writes a sidecar file with the raw source when
	// formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ValidatorPkgPath: DefaultValidatorPkgPath,
		ValidatorPkgName: DefaultValidatorPkgName,
	}
}

// Generator generates validator files from property mappings.
type Generator struct {
	config  GeneratorConfig
	emitter Emitter
}

// NewGenerator creates a new Generator with the given configuration and the
// template emitter.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config, emitter: TemplateEmitter{}}
}

// WithEmitter returns a copy of g emitting declarations through e.
func (g *Generator) WithEmitter(e Emitter) *Generator {
	c := *g
	c.emitter = e

	return &c
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the draft's package.
	Dir string
	// Filename is the name of the file (e.g., "order_draft_validator.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Pair labels the draft/target pair the file was generated for.
	Pair string
}

// Path returns the file's destination.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates one file per property mapping. A mapping that cannot be
// generated is reported as an error diagnostic for its pair; the others are
// still generated.
func (g *Generator) Generate(mappings []*match.PropertyMapping) ([]GeneratedFile, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	files := make([]GeneratedFile, 0, len(mappings))

	for _, m := range mappings {
		file, err := g.GenerateFile(m)
		if err != nil {
			diags.Add(generationError(m, err))
			continue
		}

		files = append(files, *file)
	}

	return files, diags
}

func generationError(m *match.PropertyMapping, err error) diagnostic.Diagnostic {
	var (
		pos   token.Position
		label string
	)

	if m != nil && m.Pair != nil {
		pos = m.Pair.Source.Pos
		label = m.Pair.String()
	}

	d := diagnostic.NewError(CodeGenerationFailed, err.Error(), pos).WithPair(label)

	var propErr *PropertyError
	if errors.As(err, &propErr) {
		if propErr.Property.Pos.IsValid() {
			d.Pos = propErr.Property.Pos
		}

		d = d.WithField(propErr.Property.FieldName)
	}

	return d
}

// GenerateFile synthesizes, emits and formats the file for one mapping.
func (g *Generator) GenerateFile(m *match.PropertyMapping) (*GeneratedFile, error) {
	spec, err := g.Synthesize(m)
	if err != nil {
		return nil, err
	}

	validatorDecl, err := g.emitter.EmitValidatorType(spec.Validator)
	if err != nil {
		return nil, err
	}

	builderDecl, err := g.emitter.EmitBuilderType(spec.Builder)
	if err != nil {
		return nil, err
	}

	data := fileData{
		PkgName: spec.PkgName,
		Imports: spec.Imports,
		Decls:   []Declaration{validatorDecl, builderDecl},
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		Dir:      spec.Dir,
		Filename: spec.Filename,
		Pair:     m.Pair.String(),
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best effort, the format error is what gets reported
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(spec.Dir, spec.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

type fileData struct {
	PkgName string
	Imports []ImportSpec
	Decls   []Declaration
}

var fileTemplate = template.Must(template.New("file").Parse(analyze.GeneratedHeader + `

package {{.PkgName}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- range .Decls}}
{{.Source}}
{{- end}}
`))
