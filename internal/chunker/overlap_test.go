package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverlap(t *testing.T) {
	chunks := []Chunk{
		{Text: "The first chunk talks about gardens and their seasonal upkeep. ", StartUnit: 0, EndUnit: 2, CharCount: 63, Number: 1},
		{Text: "The second chunk moves on to greenhouse construction. ", StartUnit: 3, EndUnit: 5, CharCount: 54, Number: 2},
		{Text: "The third chunk covers irrigation.", StartUnit: 6, EndUnit: 7, CharCount: 34, Number: 3},
	}

	t.Run("ShouldPrependPreviousTail", func(t *testing.T) {
		out := ApplyOverlap(chunks, 20)
		require.Len(t, out, 3)

		// первый чанк не меняется
		assert.Equal(t, chunks[0], out[0])

		// каждый следующий начинается с хвоста собственного текста соседа
		tail := TailOnWhitespace(chunks[0].Text, 20)
		assert.True(t, strings.HasPrefix(out[1].Text, tail))
		assert.True(t, strings.HasSuffix(out[1].Text, chunks[1].Text))
		assert.Equal(t, utf8.RuneCountInString(out[1].Text), out[1].CharCount)

		// диапазон сегментов остаётся за собственными предложениями
		assert.Equal(t, 3, out[1].StartUnit)
		assert.Equal(t, 5, out[1].EndUnit)

		// хвост берётся из исходного текста, не из уже расширенного
		tail2 := TailOnWhitespace(chunks[1].Text, 20)
		assert.True(t, strings.HasPrefix(out[2].Text, tail2))
	})

	t.Run("ShouldBeNoOpForZeroOverlap", func(t *testing.T) {
		assert.Equal(t, chunks, ApplyOverlap(chunks, 0))
		assert.Equal(t, chunks, ApplyOverlap(chunks, -5))
	})

	t.Run("ShouldKeepSingleChunkUntouched", func(t *testing.T) {
		single := chunks[:1]
		assert.Equal(t, single, ApplyOverlap(single, 20))
	})
}

func TestTailOnWhitespace(t *testing.T) {
	t.Run("ShouldReturnWholeShortText", func(t *testing.T) {
		assert.Equal(t, "short", TailOnWhitespace("short", 10))
	})

	t.Run("ShouldNotCutMidWord", func(t *testing.T) {
		tail := TailOnWhitespace("alpha beta gamma", 7)
		// срез сдвинут вперёд до пробельной границы
		assert.Equal(t, " gamma", tail)
	})

	t.Run("ShouldKeepCutOnWordBoundary", func(t *testing.T) {
		tail := TailOnWhitespace("alpha beta gamma", 6)
		assert.Equal(t, " gamma", tail)
	})
}

func TestSplitOnWhitespace(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 50)) // 249 символов

	parts := splitOnWhitespace(text, 60)
	require.Greater(t, len(parts), 1)

	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 60)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}
