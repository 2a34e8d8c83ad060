package chunker

import (
	"fmt"
	"strings"

	"semantic_chunker/internal/oracle"
	"semantic_chunker/internal/splitter"
)

// Factory создаёт chunker по названию метода
type Factory struct {
	config   Config
	splitter *splitter.Splitter
	judge    oracle.Judge
}

// NewFactory создаёт новую фабрику chunker'ов. judge используется
// методами sentence и progressive; simple работает без него.
func NewFactory(config Config, sp *splitter.Splitter, judge oracle.Judge) *Factory {
	return &Factory{
		config:   config,
		splitter: sp,
		judge:    judge,
	}
}

// GetChunker возвращает chunker по названию метода
func (f *Factory) GetChunker(method string) (Chunker, error) {
	switch strings.ToLower(method) {
	case "sentence", "":
		return NewSentenceChunker(f.config, f.splitter, f.judge), nil
	case "progressive":
		return NewProgressiveChunker(f.config, f.judge), nil
	case "simple", "text", "txt":
		return NewSimpleChunker(f.config), nil
	default:
		return nil, fmt.Errorf("unknown chunking method: %s", method)
	}
}
