package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"semantic_chunker/internal/chunker"
	"semantic_chunker/internal/config"
	"semantic_chunker/internal/oracle"
	"semantic_chunker/internal/splitter"
	"semantic_chunker/internal/writer"

	"github.com/philippgille/chromem-go"
)

type App struct {
	cfg           *config.Config
	factory       *chunker.Factory
	db            *chromem.DB
	embeddingFunc chromem.EmbeddingFunc
	metadata      *Metadata
}

func New(cfg *config.Config) (*App, error) {
	// сегментатор предложений с настраиваемым списком сокращений
	var opts []splitter.Option
	if cfg.AbbreviationFile != "" {
		abbrs, err := splitter.LoadAbbreviations(cfg.AbbreviationFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load abbreviations: %w", err)
		}
		opts = append(opts, splitter.WithAbbreviations(abbrs))
		log.Printf("📖 Loaded %d abbreviations from %s", len(abbrs), cfg.AbbreviationFile)
	}
	if cfg.PatternGuard {
		opts = append(opts, splitter.WithPatternGuard())
	}
	sp := splitter.New(opts...)

	judge := oracle.NewLLMJudge(oracle.Config{
		ServerURL: cfg.LLMServerURL,
		Model:     cfg.LLMModel,
		Key:       cfg.LLMKey,
		Timeout:   cfg.LLMTimeout,
	})

	factory := chunker.NewFactory(chunker.Config{
		MaxChunkSize:   cfg.MaxChunkSize,
		MinChunkSize:   cfg.MinChunkSize,
		Overlap:        cfg.ChunkOverlap,
		ContextChars:   cfg.ContextChars,
		WindowChars:    cfg.WindowChars,
		SplitOversized: cfg.SplitOversized,
		SplitOnUnknown: cfg.SplitOnUnknown,
	}, sp, judge)

	app := &App{
		cfg:      cfg,
		factory:  factory,
		metadata: &Metadata{Files: make(map[string]FileInfo)},
	}

	if cfg.IndexChunks {
		app.embeddingFunc = chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, cfg.OllamaURL+"/api")
		app.db = chromem.NewDB()
	}

	return app, nil
}

// Run обрабатывает один входной файл: чтение, разбиение, запись чанков
// и манифеста, опционально индексация
func (a *App) Run(ctx context.Context, inputFile string) error {
	content, err := readFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("input file is empty: %s", inputFile)
	}
	log.Printf("📄 File loaded: %d bytes", len(content))

	if a.cfg.MarkdownPlain && isMarkdown(inputFile) {
		content = markdownToText(content)
		log.Printf("📝 Markdown converted to plain text: %d bytes", len(content))
	}

	chunkr, err := a.factory.GetChunker(a.cfg.ChunkMethod)
	if err != nil {
		return fmt.Errorf("failed to get chunker: %w", err)
	}

	result, err := chunkr.Chunk(ctx, content)
	if err != nil {
		return fmt.Errorf("chunking failed: %w", err)
	}
	result.Source = filepath.Base(inputFile)

	log.Printf("📦 Split into %d chunks (min=%d max=%d avg=%d chars)",
		len(result.Chunks), result.MinChunkLen, result.MaxChunkLen, result.AvgChunkLen)

	outputDir := a.cfg.OutputDir
	if outputDir == "" {
		outputDir = defaultOutputDir(inputFile, chunkr.Name())
	}

	if err := writer.Write(result, outputDir); err != nil {
		return fmt.Errorf("failed to write chunks: %w", err)
	}
	log.Printf("💾 Chunks saved to: %s", outputDir)

	if a.cfg.IndexChunks {
		if err := a.indexChunks(ctx, inputFile, result); err != nil {
			return fmt.Errorf("failed to index chunks: %w", err)
		}
	}

	return nil
}

// defaultOutputDir строит имя выходной директории рядом с входным файлом:
// document.txt -> document_sentence_chunks
func defaultOutputDir(inputFile, method string) string {
	stem := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	return fmt.Sprintf("%s_%s_chunks", stem, method)
}
