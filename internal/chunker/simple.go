package chunker

import (
	"context"
	"log"

	"semantic_chunker/internal/splitter"
)

// SimpleChunker упаковывает абзацы в чанки по размеру с overlap,
// без обращений к LLM
type SimpleChunker struct {
	config Config
}

// NewSimpleChunker создаёт новый simple chunker
func NewSimpleChunker(config Config) *SimpleChunker {
	return &SimpleChunker{config: config.sanitize()}
}

func (c *SimpleChunker) Name() string {
	return "simple"
}

func (c *SimpleChunker) Chunk(ctx context.Context, content string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paragraphs := splitter.SplitParagraphs(content)

	asm := &assembler{
		config: c.config,
		units:  paragraphs,
	}

	chunks := ApplyOverlap(asm.run(ctx), c.config.Overlap)
	log.Printf("✅ [%s] Created %d chunks (by paragraphs)", c.Name(), len(chunks))

	return finishResult(c.Name(), content, chunks, c.config, c.config.Overlap), nil
}
