package chunker

import "unicode/utf8"

// ApplyOverlap добавляет каждому чанку после первого префикс из последних
// overlapChars символов собственного текста предыдущего чанка (срез
// сдвигается до пробельной границы). CharCount пересчитывается, диапазон
// сегментов не меняется - префикс лишь копия для контекста. При
// overlapChars <= 0 ничего не делает.
func ApplyOverlap(chunks []Chunk, overlapChars int) []Chunk {
	if overlapChars <= 0 || len(chunks) < 2 {
		return chunks
	}

	out := make([]Chunk, len(chunks))
	out[0] = chunks[0]
	for i := 1; i < len(chunks); i++ {
		// хвост берём из исходного (без префикса) текста соседа
		tail := TailOnWhitespace(chunks[i-1].Text, overlapChars)
		ch := chunks[i]
		ch.Text = tail + ch.Text
		ch.CharCount = utf8.RuneCountInString(ch.Text)
		out[i] = ch
	}
	return out
}
