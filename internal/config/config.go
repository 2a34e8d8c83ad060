package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	InputFile string `env:"INPUT_FILE"`
	OutputDir string `env:"OUTPUT_DIR"`

	// параметры разбиения
	ChunkMethod    string `env:"CHUNK_METHOD" envDefault:"sentence"`
	MaxChunkSize   int    `env:"MAX_CHUNK_SIZE" envDefault:"2000"`
	MinChunkSize   int    `env:"MIN_CHUNK_SIZE" envDefault:"300"`
	ChunkOverlap   int    `env:"CHUNK_OVERLAP" envDefault:"200"`
	ContextChars   int    `env:"CONTEXT_CHARS" envDefault:"1000"`
	WindowChars    int    `env:"WINDOW_CHARS" envDefault:"600"`
	SplitOversized bool   `env:"SPLIT_OVERSIZED" envDefault:"false"`
	SplitOnUnknown bool   `env:"SPLIT_ON_UNKNOWN" envDefault:"false"`

	// сервис оценки границ тем (OpenAI-совместимый)
	LLMServerURL string        `env:"LLM_SERVER_URL" envDefault:"http://127.0.0.1:1234"`
	LLMModel     string        `env:"LLM_MODEL" envDefault:"gemma-3n-e4b-it-text"`
	LLMKey       string        `env:"LLM_API_KEY"`
	LLMTimeout   time.Duration `env:"LLM_TIMEOUT" envDefault:"15s"`

	// сегментация предложений
	AbbreviationFile string `env:"ABBREVIATION_FILE"`
	PatternGuard     bool   `env:"ABBREVIATION_PATTERNS" envDefault:"false"`

	// предобработка markdown
	MarkdownPlain bool `env:"MARKDOWN_PLAIN" envDefault:"false"`

	// индексация чанков в векторную БД
	IndexChunks      bool    `env:"INDEX_CHUNKS" envDefault:"false"`
	OllamaURL        string  `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel string  `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
	DataDir          string  `env:"DATA_DIR" envDefault:"./data"`
	TopK             int     `env:"TOP_K" envDefault:"5"`
	MinSimilarity    float32 `env:"MIN_SIMILARITY" envDefault:"0.3"`
	MetadataFile     string
	DBFile           string
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
