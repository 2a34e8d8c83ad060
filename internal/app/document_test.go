package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	t.Run("ShouldReadPlainText", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.txt")
		require.NoError(t, os.WriteFile(path, []byte("Hello.\n\nWorld."), 0644))

		content, err := readFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Hello.\n\nWorld.", content)
	})

	t.Run("ShouldReadMarkdownAsIs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("# Title\n\nBody."), 0644))

		content, err := readFile(path)
		require.NoError(t, err)
		assert.Contains(t, content, "# Title")
	})

	t.Run("ShouldRejectUnsupportedFormat", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.docx")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		_, err := readFile(path)
		assert.ErrorContains(t, err, "unsupported file format")
	})

	t.Run("ShouldFailOnMissingFile", func(t *testing.T) {
		_, err := readFile(filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})
}

func TestMarkdownToText(t *testing.T) {
	md := "# Garden notes\n\nTomatoes need *regular* watering. See [guide](https://example.com).\n\n- first item\n- second item\n"

	text := markdownToText(md)

	// разметка убрана, текст сохранён
	assert.NotContains(t, text, "#")
	assert.NotContains(t, text, "*")
	assert.NotContains(t, text, "](")
	assert.Contains(t, text, "Garden notes")
	assert.Contains(t, text, "Tomatoes need regular watering.")
	assert.Contains(t, text, "first item")

	// заголовок отделён от абзаца пустой строкой
	assert.True(t, strings.Index(text, "Garden notes\n\n") >= 0)
}

func TestDefaultOutputDir(t *testing.T) {
	assert.Equal(t, "/data/report_sentence_chunks", defaultOutputDir("/data/report.txt", "sentence"))
	assert.Equal(t, "notes_simple_chunks", defaultOutputDir("notes.md", "simple"))
}
