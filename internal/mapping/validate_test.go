package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorCodes(t *testing.T, df *DeclarationFile) []string {
	t.Helper()

	res := Validate(df)
	require.NotNil(t, res)

	codes := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

func TestValidate_Valid(t *testing.T) {
	df := &DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "A", Target: "B", Rename: map[string]string{"X": "Y", "Z": "W"}},
		{Draft: "C", Target: "D"},
	}}

	assert.Empty(t, errorCodes(t, df))
}

func TestValidate_Nil(t *testing.T) {
	assert.Equal(t, []string{CodeInvalidDecl}, errorCodes(t, nil))
}

func TestValidate_MissingNames(t *testing.T) {
	df := &DeclarationFile{Validators: []ValidatorDecl{
		{Target: "B"},
		{Draft: "A"},
	}}

	res := Validate(df)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0].Message, "validators[0]: draft is required")
	assert.Contains(t, res.Errors[1].Message, "validators[1]: target is required")
}

func TestValidate_DuplicateDraft(t *testing.T) {
	df := &DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "A", Target: "B"},
		{Draft: "A", Target: "C"},
	}}

	assert.Equal(t, []string{CodeDuplicateDraft}, errorCodes(t, df))
}

func TestValidate_Rename(t *testing.T) {
	df := &DeclarationFile{Validators: []ValidatorDecl{
		{Draft: "A", Target: "B", Rename: map[string]string{"X": "Same", "Y": "Same", "Z": ""}},
	}}

	res := Validate(df)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, `fields X and Y are both renamed to "Same"`, res.Errors[0].Message)
	assert.Equal(t, "Y", res.Errors[0].FieldPath)
	assert.Contains(t, res.Errors[1].Message, `rename entry "Z"`)
}
