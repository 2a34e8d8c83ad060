package chunker

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleChunker(t *testing.T) {
	paragraph := strings.TrimSpace(strings.Repeat("Plain rule based splitting needs no language model at all. ", 4))
	content := paragraph + "\n\n" + paragraph + "\n\n" + paragraph + "\n\n" + paragraph

	t.Run("ShouldPackParagraphsBySize", func(t *testing.T) {
		c := NewSimpleChunker(Config{MaxChunkSize: 500, MinChunkSize: 0})
		result, err := c.Chunk(context.Background(), content)
		require.NoError(t, err)

		require.Greater(t, len(result.Chunks), 1)
		for _, ch := range result.Chunks {
			assert.LessOrEqual(t, ch.CharCount, 500)
			assert.NotEqual(t, ReasonTopicShift, ch.SplitReason)
		}
		assert.Equal(t, content, concatChunks(result.Chunks))
	})

	t.Run("ShouldApplyOverlap", func(t *testing.T) {
		c := NewSimpleChunker(Config{MaxChunkSize: 500, MinChunkSize: 0, Overlap: 40})
		result, err := c.Chunk(context.Background(), content)
		require.NoError(t, err)
		require.Greater(t, len(result.Chunks), 1)

		assert.Equal(t, 40, result.Overlap)
		// второй чанк начинается с хвоста первого
		first := result.Chunks[0].Text
		tail := TailOnWhitespace(first, 40)
		assert.True(t, strings.HasPrefix(result.Chunks[1].Text, tail))
	})

	t.Run("ShouldHandleEmptyInput", func(t *testing.T) {
		c := NewSimpleChunker(Config{MaxChunkSize: 500})
		result, err := c.Chunk(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, result.Chunks)
	})
}
