package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFModel(t *testing.T) {
	docs := []string{"Whole Wheat Flour", "Oats", "Brown Rice", "Sodium Benzoate"}
	model := NewTFIDFModel(docs)

	t.Run("matches overlapping n-grams to the right document", func(t *testing.T) {
		idx, sim, ok := model.BestMatch("whole wheat")
		require.True(t, ok)
		assert.Equal(t, 0, idx)
		assert.Greater(t, sim, 0.5)
	})

	t.Run("exact document text scores highest", func(t *testing.T) {
		idx, sim, ok := model.BestMatch("sodium benzoate")
		require.True(t, ok)
		assert.Equal(t, 3, idx)
		assert.InDelta(t, 1.0, sim, 1e-9)
	})

	t.Run("stop-word-only query cannot be vectorized", func(t *testing.T) {
		_, _, ok := model.BestMatch("the and of")
		assert.False(t, ok)
	})

	t.Run("unknown terms cannot be vectorized", func(t *testing.T) {
		_, _, ok := model.BestMatch("xylitol")
		assert.False(t, ok)
	})

	t.Run("single-character tokens are dropped", func(t *testing.T) {
		_, _, ok := model.BestMatch("a b c")
		assert.False(t, ok)
	})
}

func TestExtractTerms(t *testing.T) {
	t.Run("expands words into n-grams up to three", func(t *testing.T) {
		terms := extractTerms("whole wheat flour")
		assert.ElementsMatch(t, []string{
			"whole", "wheat", "flour",
			"whole wheat", "wheat flour",
			"whole wheat flour",
		}, terms)
	})

	t.Run("drops stop words before building n-grams", func(t *testing.T) {
		terms := extractTerms("mono and diglycerides")
		assert.ElementsMatch(t, []string{
			"mono", "diglycerides",
			"mono diglycerides",
		}, terms)
	})

	t.Run("strips punctuation", func(t *testing.T) {
		terms := extractTerms("flour, (refined)")
		assert.ElementsMatch(t, []string{"flour", "refined", "flour refined"}, terms)
	})
}

func TestBuildVocabulary(t *testing.T) {
	t.Run("caps vocabulary at the configured size", func(t *testing.T) {
		freq := make(map[string]int)
		for i := 0; i < maxVocabTerms+100; i++ {
			freq[fakeTerm(i)] = 1
		}
		vocab := buildVocabulary(freq)
		assert.Len(t, vocab, maxVocabTerms)
	})

	t.Run("keeps the most frequent terms", func(t *testing.T) {
		vocab := buildVocabulary(map[string]int{"rare": 1, "common": 9})
		_, hasCommon := vocab["common"]
		assert.True(t, hasCommon)
	})
}

func fakeTerm(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	out := make([]byte, 0, 4)
	for {
		out = append(out, letters[i%26])
		i /= 26
		if i == 0 {
			break
		}
	}
	return string(out)
}
