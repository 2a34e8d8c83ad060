package app

import (
	"context"
	"fmt"
	"log"
	"os"
)

// SearchResult - результат векторного поиска по чанкам
type SearchResult struct {
	Content    string
	Source     string
	Filename   string
	Similarity float32
}

// Query ищет релевантные чанки в сохранённой векторной БД и печатает их
func (a *App) Query(ctx context.Context, queryText string) error {
	if a.db == nil {
		return fmt.Errorf("indexing is disabled, nothing to query")
	}

	if _, err := os.Stat(a.cfg.DBFile); err != nil {
		return fmt.Errorf("vector database not found at %s, index a document first", a.cfg.DBFile)
	}
	if err := a.loadDB(); err != nil {
		return err
	}

	results, err := a.searchRelevantChunks(ctx, queryText)
	if err != nil {
		return err
	}

	log.Printf("🔍 Found %d relevant chunks:", len(results))
	for i, r := range results {
		log.Printf("   %d. %s/%s (similarity: %.2f)", i+1, r.Source, r.Filename, r.Similarity)
		log.Printf("      %s", preview(r.Content, 120))
	}
	return nil
}

// searchRelevantChunks выполняет поиск по коллекции с фильтром по similarity
func (a *App) searchRelevantChunks(ctx context.Context, queryText string) ([]SearchResult, error) {
	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		return nil, fmt.Errorf("collection %q not found", collectionName)
	}

	topK := a.cfg.TopK
	if count := coll.Count(); topK > count {
		topK = count
	}

	results, err := coll.Query(ctx, queryText, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	var searchResults []SearchResult
	for _, r := range results {
		if r.Similarity < a.cfg.MinSimilarity {
			continue
		}
		searchResults = append(searchResults, SearchResult{
			Content:    r.Content,
			Source:     r.Metadata["source"],
			Filename:   r.Metadata["filename"],
			Similarity: r.Similarity,
		})
	}
	return searchResults, nil
}

// preview обрезает текст до n символов для вывода в лог
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
