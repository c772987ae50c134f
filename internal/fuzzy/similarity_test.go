package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_EqualStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("ada lovelace", "ada lovelace"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("ada", ""))
	assert.Equal(t, 0.0, Similarity("", "ada"))
}

func TestSimilarity_OneCharDifference(t *testing.T) {
	// "john" vs "john" + "x": distance 1, max len 5 -> 0.8
	got := Similarity("john", "johnx")
	assert.InDelta(t, 0.8, got, 0.0001)
}

func TestSimilarity_CompletelyDifferent(t *testing.T) {
	got := Similarity("abc", "xyz")
	assert.InDelta(t, 0.0, got, 0.0001)
}
