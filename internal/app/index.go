package app

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"semantic_chunker/internal/chunker"
	"semantic_chunker/internal/writer"

	"github.com/philippgille/chromem-go"
)

const collectionName = "chunks"

// Metadata описывает проиндексированные файлы
type Metadata struct {
	Files    map[string]FileInfo `json:"files"`
	DataPath string              `json:"data_path"`
}

type FileInfo struct {
	Path         string    `json:"path"`
	LastModified time.Time `json:"last_modified"`
	Size         int64     `json:"size"`
	Chunks       int       `json:"chunks"`
}

// indexChunks добавляет чанки в векторную коллекцию и сохраняет БД на диск
func (a *App) indexChunks(ctx context.Context, inputFile string, result *chunker.Result) error {
	_ = a.loadMetadata() // может не существовать

	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		var err error
		coll, err = a.db.CreateCollection(collectionName, map[string]string{}, a.embeddingFunc)
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
	}

	docs := make([]chromem.Document, 0, len(result.Chunks))
	for _, ch := range result.Chunks {
		hash := sha256.Sum256([]byte(ch.Text + result.Source))
		docs = append(docs, chromem.Document{
			ID:      fmt.Sprintf("%x", hash[:8]),
			Content: ch.Text,
			Metadata: map[string]string{
				"source":       result.Source,
				"chunk_number": fmt.Sprintf("%d", ch.Number),
				"filename":     writer.ChunkFilename(ch.Number),
				"split_reason": ch.SplitReason,
			},
		})
	}

	if err := coll.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents: %w", err)
	}

	if err := a.saveDB(); err != nil {
		return fmt.Errorf("failed to save vector database: %w", err)
	}

	// запоминаем файл в метаданных
	if info, err := os.Stat(inputFile); err == nil {
		a.metadata.Files[inputFile] = FileInfo{
			Path:         inputFile,
			LastModified: info.ModTime(),
			Size:         info.Size(),
			Chunks:       len(result.Chunks),
		}
	}
	a.metadata.DataPath = a.cfg.DataDir
	if err := a.saveMetadata(); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	log.Printf("🔍 Indexed %d chunks into collection %q", len(docs), collectionName)
	return nil
}

func (a *App) loadMetadata() error {
	f, err := os.Open(a.cfg.MetadataFile)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(&a.metadata)
}

func (a *App) saveMetadata() error {
	f, err := os.Create(a.cfg.MetadataFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(a.metadata)
}

func (a *App) loadDB() error {
	err := a.db.ImportFromFile(a.cfg.DBFile, "", collectionName)
	if err != nil {
		return fmt.Errorf("failed to import DB: %w", err)
	}
	return nil
}

func (a *App) saveDB() error {
	return a.db.ExportToFile(a.cfg.DBFile, true, "", collectionName)
}
