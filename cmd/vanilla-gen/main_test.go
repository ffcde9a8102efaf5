package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanilla/internal/analyze"
	"vanilla/internal/diagnostic"
	"vanilla/internal/gen"
	"vanilla/internal/mapping"
	"vanilla/internal/match"
)

func discard() *slog.Logger {
	return newLogger(io.Discard, true)
}

func filenames(files []gen.GeneratedFile) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Filename)
	}

	return names
}

func codes(diags []diagnostic.Diagnostic) []string {
	result := make([]string, 0, len(diags))
	for _, d := range diags {
		result = append(result, d.Code)
	}

	return result
}

func TestGenerate_Basic(t *testing.T) {
	res, err := generate(&Config{}, []string{"vanilla/examples/basic"}, discard())
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.Errors)
	require.Len(t, res.Files, 1)

	file := res.Files[0]
	assert.Equal(t, "draft_validator.go", file.Filename)
	assert.Equal(t, "Draft -> vanilla/examples/basic.Validated", file.Pair)

	want, err := os.ReadFile(filepath.Join("..", "..", "examples", "basic", "draft_validator.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(file.Content))
}

func TestGenerate_NoMatchWritesNothing(t *testing.T) {
	res, err := generate(&Config{}, []string{"vanilla/examples/nomatch"}, discard())
	require.NoError(t, err)

	assert.True(t, res.Diagnostics.HasErrors())
	assert.Contains(t, codes(res.Diagnostics.Errors), match.CodeNoMatch)
	assert.Empty(t, res.Files)
}

func TestGenerate_FailuresAreIndependent(t *testing.T) {
	res, err := generate(&Config{}, []string{"vanilla/examples/basic", "vanilla/examples/nomatch"}, discard())
	require.NoError(t, err)

	// One failing draft blocks every file, but only its own error is reported
	assert.Len(t, res.Diagnostics.Errors, 1)
	assert.Empty(t, res.Files)
}

func TestGenerate_DiscoversDeclarationFile(t *testing.T) {
	res, err := generate(&Config{}, []string{"vanilla/store"}, discard())
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.Errors)

	assert.ElementsMatch(t, []string{
		"customer_draft_validator.go",
		"order_draft_validator.go",
		"order_item_draft_validator.go",
	}, filenames(res.Files))

	// Order.TotalCents has no draft counterpart
	assert.Contains(t, codes(res.Diagnostics.Warnings), match.CodeUnmatchedTarget)

	for _, file := range res.Files {
		if file.Filename == "order_item_draft_validator.go" {
			assert.Contains(t, string(file.Content), "out.Quantity = ")
			assert.Contains(t, string(file.Content), "in.Qty")
		}
	}
}

func TestGenerate_ExplicitConfig(t *testing.T) {
	cfg := &Config{Config: filepath.Join("..", "..", "store", "vanilla.yaml")}

	res, err := generate(cfg, []string{"vanilla/store"}, discard())
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.Errors)
	assert.Len(t, res.Files, 3)
}

func TestGenerate_ConfigWithoutOwner(t *testing.T) {
	cfg := &Config{Config: filepath.Join("..", "..", "store", "vanilla.yaml")}

	_, err := generate(cfg, []string{"vanilla/examples/basic", "vanilla/examples/nomatch"}, discard())
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestGenerate_InvalidDeclarationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vanilla.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"9\"\n"), 0o644))

	_, err := generate(&Config{Config: path}, []string{"vanilla/examples/basic"}, discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestGenerate_UnknownPackage(t *testing.T) {
	_, err := generate(&Config{}, []string{"vanilla/does/not/exist"}, discard())
	require.Error(t, err)
}

// writeModule creates a throwaway module holding files.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files["go.mod"] = "module scratch\n\ngo 1.24\n"

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

const scratchDraft = `package scratch

//vanilla:validatedas Validated
type Draft struct {
	Name string
}

type Validated struct {
	Name string
}
`

func TestGenerate_RegeneratesStaleOutput(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"draft.go": scratchDraft,
		"draft_validator.go": analyze.GeneratedHeader + `

package scratch

func (d Draft) old() string {
	return d.OldField
}
`,
	})

	res, err := generate(&Config{Dir: dir}, nil, discard())
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.Errors)
	require.Len(t, res.Files, 1)

	file := res.Files[0]
	assert.Equal(t, "draft_validator.go", file.Filename)
	assert.Contains(t, string(file.Content), "out.Name = validator.Collect(&acc, v.props.Name(in.Name))")
	assert.NotContains(t, string(file.Content), "OldField")
}

func TestGenerate_AvoidsPackageLevelNames(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"draft.go":  scratchDraft,
		"helper.go": "package scratch\n\nfunc validator() {}\n",
	})

	res, err := generate(&Config{Dir: dir}, nil, discard())
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.Errors)
	require.Len(t, res.Files, 1)

	src := string(res.Files[0].Content)
	assert.Contains(t, src, `validator2 "vanilla/validator"`)
	assert.Contains(t, src, "validator2.Result[Validated, E]")
}

func TestGenerate_ShadowedTypeIsReported(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"draft.go": `package scratch

type out string

//vanilla:validatedas Validated
type Draft struct {
	Name out
}

type Validated struct {
	Name string
}
`,
	})

	res, err := generate(&Config{Dir: dir}, nil, discard())
	require.NoError(t, err)
	require.Len(t, res.Diagnostics.Errors, 1)

	d := res.Diagnostics.Errors[0]
	assert.Equal(t, gen.CodeGenerationFailed, d.Code)
	assert.Equal(t, "Name", d.FieldPath)
	assert.Contains(t, d.Message, "type out is shadowed by generated code")
	assert.Empty(t, res.Files)
}

func TestExportDeclarations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vanilla.yaml")

	res, err := exportDeclarations(&Config{Export: path}, []string{"vanilla/store"}, discard())
	require.NoError(t, err)
	require.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.Errors)
	assert.Equal(t, path, res.ExportPath)

	assert.Equal(t, []mapping.ValidatorDecl{
		{Draft: "CustomerDraft", Target: "vanilla/warehouse.Customer"},
		{Draft: "OrderDraft", Target: "vanilla/warehouse.Order"},
		{Draft: "OrderItemDraft", Target: "vanilla/warehouse.OrderItem", Rename: map[string]string{"Qty": "Quantity"}},
	}, res.Exported.Validators)
}

func TestExportDeclarations_NeedsOwner(t *testing.T) {
	cfg := &Config{Export: filepath.Join(t.TempDir(), "vanilla.yaml")}

	_, err := exportDeclarations(cfg, []string{"vanilla/examples/basic", "vanilla/examples/nomatch"}, discard())
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("wrote", "file", "a.go")
	logger.Warn("careful")

	assert.Equal(t, "msg=wrote file=a.go\nlevel=WARN msg=careful\n", buf.String())
}
