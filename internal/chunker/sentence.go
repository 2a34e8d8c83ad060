package chunker

import (
	"context"
	"log"
	"strings"

	"semantic_chunker/internal/oracle"
	"semantic_chunker/internal/splitter"
)

// SentenceChunker разбивает текст по предложениям с последовательной
// LLM-оценкой границ: оракулу показывается хвост накопленного чанка и
// следующее предложение
type SentenceChunker struct {
	config   Config
	splitter *splitter.Splitter
	judge    oracle.Judge
}

// NewSentenceChunker создаёт sentence chunker. judge может быть nil -
// тогда деление происходит только по размеру.
func NewSentenceChunker(config Config, sp *splitter.Splitter, judge oracle.Judge) *SentenceChunker {
	if sp == nil {
		sp = splitter.New()
	}
	return &SentenceChunker{
		config:   config.sanitize(),
		splitter: sp,
		judge:    judge,
	}
}

func (c *SentenceChunker) Name() string {
	return "sentence"
}

func (c *SentenceChunker) Chunk(ctx context.Context, content string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sentences := c.splitter.Segment(content)
	log.Printf("📄 [%s] Segmented into %d sentences", c.Name(), len(sentences))

	asm := &assembler{
		config: c.config,
		units:  sentences,
	}
	if c.judge != nil {
		asm.judge = func(ctx context.Context, accumulated string, next int) oracle.Verdict {
			before := GetLastNChars(accumulated, c.config.ContextChars)
			after := strings.TrimSpace(sentences[next].Text)
			return c.judge.Judge(ctx, before, after)
		}
	}

	chunks := asm.run(ctx)
	log.Printf("✅ [%s] Created %d chunks", c.Name(), len(chunks))

	return finishResult(c.Name(), content, chunks, c.config, 0), nil
}
