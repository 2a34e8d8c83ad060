package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"semantic_chunker/internal/app"
	"semantic_chunker/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Парсим флаги командной строки
	inputFile := flag.String("input", "", "Path to input document (.txt, .md, .pdf)")
	method := flag.String("method", "", "Chunking method: sentence, progressive, simple")
	outputDir := flag.String("output", "", "Output directory for chunk files (optional)")
	index := flag.Bool("index", false, "Index chunks into the vector database")
	query := flag.String("query", "", "Search indexed chunks instead of chunking")
	flag.Parse()

	if *inputFile == "" && *query == "" {
		log.Fatal("Error: --input flag is required\nUsage: semantic_chunker --input=/path/to/document.txt [--method=sentence]")
	}

	// Проверяем существование файла
	if *inputFile != "" {
		if _, err := os.Stat(*inputFile); os.IsNotExist(err) {
			log.Fatalf("Error: input file not found: %s", *inputFile)
		}
	}

	// Устанавливаем env переменные для парсинга
	if *method != "" {
		os.Setenv("CHUNK_METHOD", *method)
	}
	if *outputDir != "" {
		os.Setenv("OUTPUT_DIR", *outputDir)
	}
	if *index || *query != "" {
		os.Setenv("INDEX_CHUNKS", "true")
	}

	// Загружаем .env (опционально)
	_ = godotenv.Load()

	// Загружаем конфиг
	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Пути к файлам индекса на основе директории данных
	cfg.DBFile = filepath.Join(cfg.DataDir, "chunks.db")
	cfg.MetadataFile = filepath.Join(cfg.DataDir, "metadata.json")

	if cfg.IndexChunks {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			log.Fatalf("failed to create data directory: %v", err)
		}
	}

	log.Printf("Method: %s, max=%d min=%d chars", cfg.ChunkMethod, cfg.MaxChunkSize, cfg.MinChunkSize)

	// Создаём app
	a, err := app.New(&cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	// Контекст с сигналами завершения
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	if *query != "" {
		if err := a.Query(ctx, *query); err != nil {
			log.Fatalf("query failed: %v", err)
		}
		return
	}

	if err := a.Run(ctx, *inputFile); err != nil {
		log.Fatalf("❌ Run failed: %v", err)
	}
	log.Println("✅ Done")
}
