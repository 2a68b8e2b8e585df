package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("A short note.", 1000, 200)

	require.Len(t, chunks, 1)
	assert.Equal(t, "A short note.", chunks[0])
}

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 200))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000, 200))
}

func TestChunkTextCombinesParagraphsUnderLimit(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("First paragraph.\n\nSecond paragraph.", 1000, 0)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "First paragraph.")
	assert.Contains(t, chunks[0], "Second paragraph.")
}

func TestChunkTextSplitsAtParagraphBoundary(t *testing.T) {
	chunker := NewTextChunker()

	para := strings.Repeat("word ", 30) // ~150 chars
	text := strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para)

	chunks := chunker.ChunkText(text, 160, 0)

	assert.Len(t, chunks, 2)
}

func TestChunkTextOverlapCarriesContext(t *testing.T) {
	chunker := NewTextChunker()

	first := "Alpha beta gamma delta epsilon zeta."
	second := "Eta theta iota kappa lambda mu."
	text := first + "\n\n" + second

	chunks := chunker.ChunkText(text, 50, 10)

	require.Len(t, chunks, 2)
	tail := chunks[0][len(chunks[0])-10:]
	assert.True(t, strings.HasPrefix(chunks[1], tail))
}

func TestChunkTextDefaultsForBadParams(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("Some text.", 0, -5)

	require.Len(t, chunks, 1)
	assert.Equal(t, "Some text.", chunks[0])
}
