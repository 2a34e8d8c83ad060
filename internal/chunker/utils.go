package chunker

import (
	"unicode"
	"unicode/utf8"
)

// GetLastNChars возвращает последние n символов строки
func GetLastNChars(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}

// GetFirstNChars возвращает первые n символов строки
func GetFirstNChars(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// TailOnWhitespace возвращает последние n символов строки, сдвигая срез
// вперёд до пробельной границы, чтобы не резать слово посередине
func TailOnWhitespace(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	cut := len(runes) - n
	if !unicode.IsSpace(runes[cut]) && !unicode.IsSpace(runes[cut-1]) {
		for cut < len(runes) && !unicode.IsSpace(runes[cut]) {
			cut++
		}
	}
	return string(runes[cut:])
}

// finishResult собирает Result со статистикой запуска
func finishResult(method, content string, chunks []Chunk, cfg Config, overlap int) *Result {
	res := &Result{
		Method:       method,
		Chunks:       chunks,
		MaxChunkSize: cfg.MaxChunkSize,
		MinChunkSize: cfg.MinChunkSize,
		Overlap:      overlap,
		TotalChars:   utf8.RuneCountInString(content),
	}
	if len(chunks) == 0 {
		return res
	}

	sum := 0
	res.MinChunkLen = chunks[0].CharCount
	for _, ch := range chunks {
		sum += ch.CharCount
		if ch.CharCount < res.MinChunkLen {
			res.MinChunkLen = ch.CharCount
		}
		if ch.CharCount > res.MaxChunkLen {
			res.MaxChunkLen = ch.CharCount
		}
	}
	res.AvgChunkLen = sum / len(chunks)
	return res
}
