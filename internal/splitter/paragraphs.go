package splitter

import (
	"strings"
	"unicode/utf8"
)

// минимальный размер абзаца: более короткие присоединяются к предыдущему,
// чтобы заголовки и одиночные строки не становились отдельными сегментами
const minParagraphChars = 100

// SplitParagraphs разбивает текст на абзацы по пустым строкам.
// Сегменты, как и предложения, покрывают документ без разрывов: разделяющие
// пустые строки входят в хвост предыдущего абзаца.
func SplitParagraphs(text string) []Sentence {
	if text == "" {
		return nil
	}

	var paragraphs []Sentence
	start := 0
	pos := 0

	flush := func(end int) {
		if end <= start {
			return
		}
		seg := text[start:end]
		// короткий абзац склеиваем с предыдущим
		if len(paragraphs) > 0 && utf8.RuneCountInString(strings.TrimSpace(seg)) < minParagraphChars {
			prev := &paragraphs[len(paragraphs)-1]
			prev.Text = text[prev.Start:end]
			prev.End = end
			start = end
			return
		}
		paragraphs = append(paragraphs, Sentence{
			Text:  seg,
			Start: start,
			End:   end,
			Index: len(paragraphs),
		})
		start = end
	}

	for pos < len(text) {
		if text[pos] != '\n' {
			pos++
			continue
		}
		// ищем пустую строку: перевод строки, затем только пробелы до
		// следующего перевода строки
		rest := pos + 1
		rest += leadingSpaces(text[rest:])
		if rest < len(text) && text[rest] == '\n' {
			end := pos + leadingWhitespace(text[pos:])
			flush(end)
			pos = end
			continue
		}
		pos++
	}

	flush(len(text))

	// перенумеровываем после склейки коротких абзацев
	for i := range paragraphs {
		paragraphs[i].Index = i
	}

	return paragraphs
}
