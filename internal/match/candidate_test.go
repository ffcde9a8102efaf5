package match

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanilla/internal/analyze"
)

func TestRankSuggestions(t *testing.T) {
	sources := []analyze.PropertyDescriptor{
		property("Qty", stringType),
		property("Nick", stringType),
		property("CustomerId", intType),
	}
	targets := []analyze.PropertyDescriptor{
		property("CustomerID", intType),
		property("Nickname", stringType),
		property("Quantity", intType),
	}

	got := RankSuggestions(sources, targets)
	require.Len(t, got, 2)

	// Identical after normalization and identical types ranks first
	assert.Equal(t, "CustomerId", got[0].Source.FieldName)
	assert.Equal(t, "CustomerID", got[0].Target.FieldName)
	assert.InDelta(t, 1.0, got[0].Score, 0.0001)

	assert.Equal(t, `Nick -> Nickname (add vanilla:"Nickname")`, got[1].String())
	assert.Equal(t, ShapeIdentical, got[1].Shape)
}

func TestRankSuggestions_SourceUsedOnce(t *testing.T) {
	sources := []analyze.PropertyDescriptor{property("Name", stringType)}
	targets := []analyze.PropertyDescriptor{
		property("FullName", stringType),
		property("Names", stringType),
	}

	got := RankSuggestions(sources, targets)
	require.Len(t, got, 1)
	assert.Equal(t, "Names", got[0].Target.Name)
}

func TestRankSuggestions_ShapeBreaksTies(t *testing.T) {
	sources := []analyze.PropertyDescriptor{
		property("Cost", types.NewPointer(intType)),
		property("Cast", stringType),
	}
	targets := []analyze.PropertyDescriptor{property("Cest", intType)}

	got := RankSuggestions(sources, targets)
	require.Len(t, got, 1)
	assert.Equal(t, "Cost", got[0].Source.FieldName)
	assert.Equal(t, ShapeDereference, got[0].Shape)
}

func TestRankSuggestions_Empty(t *testing.T) {
	assert.Empty(t, RankSuggestions(nil, []analyze.PropertyDescriptor{property("A", intType)}))
	assert.Empty(t, RankSuggestions([]analyze.PropertyDescriptor{property("A", intType)}, nil))
}
