package textsplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	chunks := Split("short text", 100, 20)

	assert.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplitTextWithinBudgetIsOneChunk(t *testing.T) {
	assert.Equal(t, []string{""}, Split("", 100, 20))
	assert.Equal(t, []string{strings.Repeat("x", 100)}, Split(strings.Repeat("x", 100), 100, 20))
}

func TestSplitChunkSizeRespected(t *testing.T) {
	text := strings.Repeat("word ", 500)
	chunks := Split(text, 200, 40)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 200)
	}
}

func TestSplitOverlapCarriesContext(t *testing.T) {
	text := strings.Repeat("abcdefghij ", 100)
	chunks := Split(text, 100, 30)

	// Consecutive chunks share text when overlap is configured.
	for i := 1; i < len(chunks); i++ {
		tail := chunks[i-1][len(chunks[i-1])-10:]
		assert.True(t, strings.Contains(chunks[i], tail) || len(chunks[i]) < 10,
			"chunk %d should overlap with its predecessor", i)
	}
}

func TestSplitCoversAllContent(t *testing.T) {
	text := strings.Repeat("0123456789", 50)
	chunks := Split(text, 80, 0)

	assert.Equal(t, text, strings.Join(chunks, ""))
}
