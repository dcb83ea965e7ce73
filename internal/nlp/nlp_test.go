package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordfreq/pkg/types"
)

func TestNewRuleEngine_InvalidProcesses(t *testing.T) {
	_, err := NewRuleEngine(0)
	assert.ErrorIs(t, err, types.ErrProcessesInvalid)
}

func TestAnalyze_PreservesChunkOrder(t *testing.T) {
	eng, err := NewRuleEngine(4)
	require.NoError(t, err)

	chunks := []string{"alpha one", "beta two", "gamma three", "delta four"}
	results, err := eng.Analyze(context.Background(), chunks)
	require.NoError(t, err)
	require.Len(t, results, len(chunks))

	assert.Equal(t, "alpha", results[0][0].Text)
	assert.Equal(t, "beta", results[1][0].Text)
	assert.Equal(t, "gamma", results[2][0].Text)
	assert.Equal(t, "delta", results[3][0].Text)
}

func TestAnalyze_Deterministic(t *testing.T) {
	eng, err := NewRuleEngine(8)
	require.NoError(t, err)

	chunks := []string{"the quick brown fox", "jumps over", "the lazy dog"}
	first, err := eng.Analyze(context.Background(), chunks)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := eng.Analyze(context.Background(), chunks)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyze_MalformedChunk(t *testing.T) {
	eng, err := NewRuleEngine(2)
	require.NoError(t, err)

	_, err = eng.Analyze(context.Background(), []string{"fine", "bad \xff\xfe bytes"})
	assert.ErrorIs(t, err, ErrMalformedText)
}

func TestTokenize_Classification(t *testing.T) {
	units := tokenize("The cat sat.")
	require.Len(t, units, 6) // The, space, cat, space, sat, period

	assert.Equal(t, "The", units[0].Text)
	assert.True(t, units[0].IsStop)

	assert.True(t, units[1].IsSpace)

	assert.Equal(t, "cat", units[2].Text)
	assert.Equal(t, "cat", units[2].Lemma)
	assert.False(t, units[2].IsStop)

	assert.Equal(t, "sat", units[4].Text)
	assert.Equal(t, "sit", units[4].Lemma)

	assert.Equal(t, ".", units[5].Text)
	assert.True(t, units[5].IsPunct)
}

func TestTokenize_Offsets(t *testing.T) {
	text := "one  two"
	for _, u := range tokenize(text) {
		assert.Equal(t, u.Text, text[u.Start:u.End])
	}
}

func TestTokenize_EntityHeuristic(t *testing.T) {
	units := tokenize("We visited London. London was grey.")

	byText := map[string][]types.Unit{}
	for _, u := range units {
		if !u.IsSpace && !u.IsPunct {
			byText[u.Text] = append(byText[u.Text], u)
		}
	}

	// Mid-sentence capitalized word is an entity candidate.
	require.Len(t, byText["London"], 2)
	assert.True(t, byText["London"][0].IsEntity)
	// The same word opening a sentence is not.
	assert.False(t, byText["London"][1].IsEntity)
	// Sentence-initial "We" is not an entity.
	assert.False(t, byText["We"][0].IsEntity)
}

func TestTokenize_Numbers(t *testing.T) {
	units := tokenize("about 1,200 cats and 3.14 pies")

	var numbers []string
	for _, u := range units {
		if u.IsNumber {
			numbers = append(numbers, u.Text)
		}
	}
	assert.Equal(t, []string{"1,200", "3.14"}, numbers)
}

func TestTokenize_ContractionFragments(t *testing.T) {
	units := tokenize("don't you're")
	var words []types.Unit
	for _, u := range units {
		if !u.IsSpace && !u.IsPunct {
			words = append(words, u)
		}
	}
	require.Len(t, words, 4) // don, t, you, re

	// Orphaned fragments are flagged as stop words so they never reach the
	// counts.
	assert.True(t, words[1].IsStop, "t")
	assert.True(t, words[3].IsStop, "re")
}

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"run", "run"},
		{"ran", "run"},
		{"running", "run"},
		{"cats", "cat"},
		{"cities", "city"},
		{"tried", "try"},
		{"boxes", "box"},
		{"churches", "church"},
		{"mice", "mouse"},
		{"children", "child"},
		{"was", "be"},
		{"stopped", "stop"},
		{"hoped", "hope"},
		{"glass", "glass"},
		{"basis", "basis"},
		{"bus", "bus"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Lemmatize(tt.word))
		})
	}
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("and"))
	assert.False(t, IsStopWord("cat"))
}
