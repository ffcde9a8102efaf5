package mapping

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanilla/internal/analyze"
)

func directive(pkg, name, text string, line int) analyze.Directive {
	return analyze.Directive{
		Type: analyze.TypeID{PkgPath: pkg, Name: name},
		Text: text,
		Pos:  token.Position{Filename: "types.go", Line: line},
	}
}

func TestCollector_Directives(t *testing.T) {
	c := NewCollector([]string{"vanilla/store", "vanilla/warehouse"})
	c.AddDirectives([]analyze.Directive{
		directive("vanilla/store", "CustomerDraft", "vanilla:validatedas warehouse.Customer", 5),
		directive("vanilla/store", "Local", "vanilla:validatedas LocalValidated", 9),
	})

	diags := c.Diagnostics()
	require.True(t, diags.IsValid())

	decls := c.Declarations()
	require.Len(t, decls, 2)

	assert.Equal(t, analyze.TypeID{PkgPath: "vanilla/store", Name: "CustomerDraft"}, decls[0].Draft)
	assert.Equal(t, analyze.TypeID{PkgPath: "vanilla/warehouse", Name: "Customer"}, decls[0].Target)
	assert.Equal(t, OriginDirective, decls[0].Origin)
	assert.Equal(t, 5, decls[0].Pos.Line)

	assert.Equal(t, analyze.TypeID{PkgPath: "vanilla/store", Name: "LocalValidated"}, decls[1].Target)
	assert.Equal(t, "Local -> vanilla/store.LocalValidated", decls[1].Pair())
}

func TestCollector_AmbiguousShortReference(t *testing.T) {
	c := NewCollector([]string{"example.com/a/warehouse", "example.com/b/warehouse", "vanilla/store"})
	c.AddDirectives([]analyze.Directive{
		directive("vanilla/store", "OrderDraft", "vanilla:validatedas warehouse.Order", 7),
	})
	c.AddFile(&DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "CustomerDraft", Target: "warehouse.Customer"},
	}}, "vanilla/store", "vanilla.yaml")

	diags := c.Diagnostics()
	require.Len(t, diags.Errors, 2)

	for _, d := range diags.Errors {
		assert.Equal(t, CodeAmbiguousRef, d.Code)
		assert.Contains(t, d.Message, "example.com/a/warehouse, example.com/b/warehouse")
	}

	assert.Equal(t, 7, diags.Errors[0].Pos.Line)
	assert.Equal(t, "vanilla.yaml", diags.Errors[1].Pos.Filename)
	assert.Empty(t, c.Declarations())
}

func TestCollector_InvalidAndDuplicateDirectives(t *testing.T) {
	c := NewCollector(nil)
	c.AddDirectives([]analyze.Directive{
		directive("p", "A", "vanilla:validatedas", 1),
		directive("p", "B", "vanilla:validatedas X", 2),
		directive("p", "B", "vanilla:validatedas Y", 3),
	})

	diags := c.Diagnostics()
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, CodeInvalidDirective, diags.Errors[0].Code)
	assert.Equal(t, CodeDuplicateDraft, diags.Errors[1].Code)
	assert.Equal(t, 3, diags.Errors[1].Pos.Line)

	decls := c.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, "X", decls[0].Target.Name)
}

func TestCollector_FileAddsNewDeclarations(t *testing.T) {
	c := NewCollector([]string{"vanilla/store", "vanilla/warehouse"})
	c.AddFile(&DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "OrderItemDraft", Target: "warehouse.OrderItem", Rename: map[string]string{"Qty": "Quantity"}},
	}}, "vanilla/store", "vanilla.yaml")

	decls := c.Declarations()
	require.Len(t, decls, 1)

	assert.Equal(t, analyze.TypeID{PkgPath: "vanilla/store", Name: "OrderItemDraft"}, decls[0].Draft)
	assert.Equal(t, analyze.TypeID{PkgPath: "vanilla/warehouse", Name: "OrderItem"}, decls[0].Target)
	assert.Equal(t, map[string]string{"Qty": "Quantity"}, decls[0].Rename)
	assert.Equal(t, OriginFile, decls[0].Origin)
	assert.Equal(t, "vanilla.yaml", decls[0].Pos.Filename)
}

func TestCollector_FileMergesRenamesIntoDirective(t *testing.T) {
	c := NewCollector([]string{"vanilla/store", "vanilla/warehouse"})
	c.AddDirectives([]analyze.Directive{
		directive("vanilla/store", "OrderDraft", "vanilla:validatedas vanilla/warehouse.Order", 3),
	})
	c.AddFile(&DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "OrderDraft", Target: "warehouse.Order", Rename: map[string]string{"Notes": "Note"}},
	}}, "vanilla/store", "vanilla.yaml")

	diags := c.Diagnostics()
	require.True(t, diags.IsValid())

	decls := c.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, OriginDirective, decls[0].Origin)
	assert.Equal(t, map[string]string{"Notes": "Note"}, decls[0].Rename)
}

func TestCollector_FileConflictsWithDirective(t *testing.T) {
	c := NewCollector([]string{"vanilla/store", "vanilla/warehouse"})
	c.AddDirectives([]analyze.Directive{
		directive("vanilla/store", "OrderDraft", "vanilla:validatedas vanilla/warehouse.Order", 3),
	})
	c.AddFile(&DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "OrderDraft", Target: "warehouse.Customer"},
	}}, "vanilla/store", "vanilla.yaml")

	diags := c.Diagnostics()
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, CodeConflictingTarget, diags.Errors[0].Code)
}

func TestCollector_InvalidFileIsSkipped(t *testing.T) {
	c := NewCollector(nil)
	c.AddFile(&DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "A"},
		{Draft: "B", Target: "C"},
	}}, "p", "vanilla.yaml")

	diags := c.Diagnostics()
	assert.True(t, diags.HasErrors())
	assert.Empty(t, c.Declarations())
}

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "directive", OriginDirective.String())
	assert.Equal(t, "file", OriginFile.String())
}
