package chunker

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"semantic_chunker/internal/oracle"
	"semantic_chunker/internal/splitter"
)

// judgeFunc запрашивает вердикт о границе темы перед сегментом next.
// Конкретный chunker сам решает, какой контекст показать оракулу.
type judgeFunc func(ctx context.Context, accumulated string, next int) oracle.Verdict

// assembler - общий конечный автомат сборки чанков из последовательности
// сегментов (предложений или абзацев). Правила перехода:
//  1. ниже MinChunkSize чанк не закрывается независимо от вердикта;
//  2. при достижении MaxChunkSize деление принудительное;
//  3. между порогами решает оракул, причём Unknown по умолчанию
//     трактуется как Continue - при сомнении не дробить.
type assembler struct {
	config Config
	units  []splitter.Sentence
	judge  judgeFunc // nil - деление только по размеру
}

func (a *assembler) run(ctx context.Context) []Chunk {
	cfg := a.config

	var chunks []Chunk
	var cur strings.Builder
	curStart := 0
	curEnd := 0
	curLen := 0

	closeChunk := func(reason string) {
		if cur.Len() == 0 {
			return
		}
		text := cur.String()
		chunks = append(chunks, Chunk{
			Text:        text,
			StartUnit:   curStart,
			EndUnit:     curEnd,
			CharCount:   utf8.RuneCountInString(text),
			Number:      len(chunks) + 1,
			SplitReason: reason,
		})
		cur.Reset()
		curLen = 0
	}

	for i, unit := range a.units {
		n := utf8.RuneCountInString(unit.Text)

		// сегмент длиннее лимита целиком: он становится собственным
		// чанком, внутри сегментов сборщик не делит
		if n > cfg.MaxChunkSize {
			closeChunk(ReasonSizeLimit)
			chunks = append(chunks, a.oversized(unit, len(chunks))...)
			continue
		}

		// добавление превысит потолок - закрываем, если набран минимум
		if curLen > 0 && curLen+n > cfg.MaxChunkSize && curLen >= cfg.MinChunkSize {
			closeChunk(ReasonSizeLimit)
		}

		if cur.Len() == 0 {
			curStart = unit.Index
		}
		cur.WriteString(unit.Text)
		curEnd = unit.Index
		curLen += n

		switch {
		case curLen >= cfg.MaxChunkSize:
			// потолок достигнут (возможно, минимум вынудил переполнение)
			closeChunk(ReasonSizeLimit)
		case curLen < cfg.MinChunkSize:
			// минимум не набран - тему не проверяем
		case a.judge == nil || i+1 >= len(a.units):
			// делить нечем или не перед чем
		default:
			verdict := a.judge(ctx, cur.String(), i+1)
			if verdict == oracle.VerdictBreak ||
				(verdict == oracle.VerdictUnknown && cfg.SplitOnUnknown) {
				closeChunk(ReasonTopicShift)
			}
		}
	}

	// незавершённый чанк закрывается даже ниже минимума: сегменты
	// не отбрасываются никогда
	closeChunk(ReasonEndOfInput)

	// последняя граница - всегда конец входа
	if len(chunks) > 0 {
		chunks[len(chunks)-1].SplitReason = ReasonEndOfInput
	}

	return chunks
}

// oversized оформляет сегмент длиннее MaxChunkSize: по умолчанию одним
// негабаритным чанком, с SplitOversized - кусками по пробельным границам
func (a *assembler) oversized(unit splitter.Sentence, have int) []Chunk {
	if !a.config.SplitOversized {
		return []Chunk{{
			Text:        unit.Text,
			StartUnit:   unit.Index,
			EndUnit:     unit.Index,
			CharCount:   utf8.RuneCountInString(unit.Text),
			Number:      have + 1,
			SplitReason: ReasonSizeLimit,
		}}
	}

	parts := splitOnWhitespace(unit.Text, a.config.MaxChunkSize)
	chunks := make([]Chunk, 0, len(parts))
	for _, part := range parts {
		chunks = append(chunks, Chunk{
			Text:        part,
			StartUnit:   unit.Index,
			EndUnit:     unit.Index,
			CharCount:   utf8.RuneCountInString(part),
			Number:      have + len(chunks) + 1,
			SplitReason: ReasonSizeLimit,
		})
	}
	return chunks
}

// splitOnWhitespace режет текст на куски не длиннее limit рун, отрезая на
// ближайшей к границе пробельной позиции. Пробел остаётся в левом куске,
// поэтому конкатенация кусков восстанавливает исходный текст.
func splitOnWhitespace(text string, limit int) []string {
	runes := []rune(text)
	var parts []string

	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if unicode.IsSpace(runes[i]) {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
