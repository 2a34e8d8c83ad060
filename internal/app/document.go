package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readFile читает содержимое документа по расширению:
// .txt и .md как есть, .pdf через извлечение текста
func readFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return readPDF(path)
	default:
		return "", fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

// readPDF извлекает текст из PDF файла
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}

// markdownToText извлекает из markdown чистый текст через AST: разметка
// мешает сегментации предложений, а заголовки и абзацы превращаются в
// обычные абзацы с пустой строкой между ними
func markdownToText(content string) string {
	md := goldmark.New()
	source := []byte(content)
	doc := md.Parser().Parse(text.NewReader(source))

	var buf strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch node := n.(type) {
			case *ast.Text:
				buf.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					buf.WriteString(" ")
				}
			case *ast.String:
				buf.Write(node.Value)
			}
		} else {
			switch n.(type) {
			case *ast.Heading, *ast.Paragraph, *ast.ListItem, *ast.Blockquote:
				buf.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(buf.String(), "\n") + "\n"
}

// isMarkdown проверяет расширение файла
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
