package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"semantic_chunker/internal/chunker"
)

// MetadataFilename - имя манифеста в выходной директории
const MetadataFilename = "metadata.json"

// Metadata - манифест запуска разбиения
type Metadata struct {
	OriginalFile string        `json:"original_file"`
	TotalChunks  int           `json:"total_chunks"`
	Method       string        `json:"method"`
	MaxChunkSize int           `json:"max_chunk_size"`
	MinChunkSize int           `json:"min_chunk_size"`
	Overlap      int           `json:"overlap,omitempty"`
	Chunks       []ChunkRecord `json:"chunks"`
}

// ChunkRecord - запись манифеста об одном чанке
type ChunkRecord struct {
	ChunkNumber    int    `json:"chunk_number"`
	Filename       string `json:"filename"`
	CharacterCount int    `json:"character_count"`
	SentenceRange  [2]int `json:"sentence_range"`
	SplitReason    string `json:"split_reason"`
}

// Write сохраняет чанки в нумерованные файлы и пишет манифест.
// Директория создаётся при необходимости. Каждый файл записывается
// атомарно (временный файл + rename), поэтому сбой посреди запуска
// оставляет на диске только целые файлы.
func Write(result *chunker.Result, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	meta := Metadata{
		OriginalFile: result.Source,
		TotalChunks:  len(result.Chunks),
		Method:       result.Method,
		MaxChunkSize: result.MaxChunkSize,
		MinChunkSize: result.MinChunkSize,
		Overlap:      result.Overlap,
		Chunks:       make([]ChunkRecord, 0, len(result.Chunks)),
	}

	for _, ch := range result.Chunks {
		filename := ChunkFilename(ch.Number)
		if err := writeAtomic(filepath.Join(outputDir, filename), []byte(ch.Text)); err != nil {
			return fmt.Errorf("failed to write chunk %d: %w", ch.Number, err)
		}

		meta.Chunks = append(meta.Chunks, ChunkRecord{
			ChunkNumber:    ch.Number,
			Filename:       filename,
			CharacterCount: ch.CharCount,
			SentenceRange:  [2]int{ch.StartUnit, ch.EndUnit},
			SplitReason:    ch.SplitReason,
		})
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := writeAtomic(filepath.Join(outputDir, MetadataFilename), data); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}

// ChunkFilename возвращает имя файла чанка: chunk_001.txt, chunk_002.txt...
func ChunkFilename(number int) string {
	return fmt.Sprintf("chunk_%03d.txt", number)
}

// writeAtomic пишет файл через временный с последующим rename
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".chunk-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
