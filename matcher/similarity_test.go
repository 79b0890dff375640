package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentity(t *testing.T) {
	for _, value := range []string{"a", "spectre", "alan walker", "99 luftballons"} {
		assert.Equal(t, float64(100), Similarity(value, value, 0))
	}
}

func TestSimilarityBounds(t *testing.T) {
	for _, pair := range [][2]string{
		{"spectre", "faded"},
		{"alan walker", "someone else"},
		{"", "spectre"},
		{"a", "zzzzzzzzzz"},
		{"spectre", "spectre live at wembley"},
	} {
		score := Similarity(pair[0], pair[1], 0)
		assert.GreaterOrEqual(t, score, float64(0))
		assert.LessOrEqual(t, score, float64(100))
	}
}

func TestSimilarityPartialAlignment(t *testing.T) {
	// the shorter string aligns fully within the longer one
	assert.Equal(t, float64(100), Similarity("spectre", "alan walker spectre", 0))
	assert.Equal(t, float64(100), Similarity("alan walker spectre", "spectre", 0))
}

func TestSimilarityCutoff(t *testing.T) {
	score := Similarity("spectre", "sceptre", 0)
	assert.Greater(t, score, float64(0))
	assert.Less(t, score, float64(100))
	assert.Equal(t, float64(0), Similarity("spectre", "sceptre", score+1))
}

func TestSimilarityUncomparableFallback(t *testing.T) {
	// emoji falls outside the comparator's alphabet: scoring must
	// degrade to stripped copies, not blow up
	assert.Equal(t, float64(100), Similarity("💥 spectre", "spectre", 0))
	assert.Equal(t, float64(100), Similarity("spectre 🎵🎵", "spectre", 0))
}

func TestSimilarityEmpty(t *testing.T) {
	assert.Equal(t, float64(100), Similarity("", "", 0))
	assert.Equal(t, float64(0), Similarity("", "spectre", 0))
}
