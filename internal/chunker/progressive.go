package chunker

import (
	"context"
	"log"
	"strings"

	"semantic_chunker/internal/oracle"
	"semantic_chunker/internal/splitter"
)

// ProgressiveChunker разбивает текст по абзацам с оценкой границ в режиме
// скользящего окна: оракулу показывается равный объём текста по обе
// стороны кандидатной границы. Точнее последовательного режима, но
// дороже по латентности.
type ProgressiveChunker struct {
	config Config
	judge  oracle.Judge
}

// NewProgressiveChunker создаёт progressive chunker
func NewProgressiveChunker(config Config, judge oracle.Judge) *ProgressiveChunker {
	return &ProgressiveChunker{
		config: config.sanitize(),
		judge:  judge,
	}
}

func (c *ProgressiveChunker) Name() string {
	return "progressive"
}

func (c *ProgressiveChunker) Chunk(ctx context.Context, content string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paragraphs := splitter.SplitParagraphs(content)
	log.Printf("📄 [%s] Segmented into %d paragraphs", c.Name(), len(paragraphs))

	asm := &assembler{
		config: c.config,
		units:  paragraphs,
	}
	if c.judge != nil {
		asm.judge = func(ctx context.Context, accumulated string, next int) oracle.Verdict {
			// окно одинакового размера по обе стороны границы
			before := GetLastNChars(accumulated, c.config.WindowChars)
			after := GetFirstNChars(content[paragraphs[next].Start:], c.config.WindowChars)
			return c.judge.Judge(ctx, strings.TrimSpace(before), strings.TrimSpace(after))
		}
	}

	chunks := ApplyOverlap(asm.run(ctx), c.config.Overlap)
	log.Printf("✅ [%s] Created %d chunks", c.Name(), len(chunks))

	return finishResult(c.Name(), content, chunks, c.config, c.config.Overlap), nil
}
