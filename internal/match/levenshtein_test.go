package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"createdat", "updatedat", 3},

		// Runes, not bytes
		{"größe", "grosse", 3},
		{"é", "e", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.0001)
	assert.InDelta(t, 1.0, Similarity("name", "name"), 0.0001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.0001)
	assert.InDelta(t, 0.5, Similarity("name", "fullname"), 0.0001)
	assert.InDelta(t, 0.75, Similarity("abcd", "abce"), 0.0001)
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"firstName", "FirstName", 1.0},
		{"first_name", "FirstName", 1.0},
		{"OrderID", "Order", 1.0},
		{"CreatedAt", "Created", 1.0},
		{"Name", "FullName", 0.5},
		{"Qty", "Quantity", 0.375},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NameSimilarity(tt.a, tt.b), 0.0001)
		})
	}
}

func BenchmarkNameSimilarity(b *testing.B) {
	for b.Loop() {
		NameSimilarity("CustomerOrderIdentifier", "customer_order_id")
	}
}
