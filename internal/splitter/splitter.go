package splitter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence - предложение исходного текста.
// Text - это срез text[Start:End] вместе с завершающими пробелами и
// переводами строк, поэтому предложения покрывают документ без разрывов:
// конкатенация всех Text восстанавливает исходный текст байт-в-байт.
type Sentence struct {
	Text  string
	Start int
	End   int
	Index int
}

// Splitter разбивает текст на предложения с защитой сокращений
type Splitter struct {
	abbreviations map[string]struct{}
	patternGuard  bool
}

// Option настраивает Splitter
type Option func(*Splitter)

// WithAbbreviations задаёт список защищаемых сокращений ("Dr.", "e.g." и т.д.)
func WithAbbreviations(abbrs map[string]struct{}) Option {
	return func(s *Splitter) {
		s.abbreviations = abbrs
	}
}

// WithPatternGuard включает эвристическую защиту сокращений по шаблонам
// (одиночная заглавная буква с точкой и т.п.) в дополнение к списку
func WithPatternGuard() Option {
	return func(s *Splitter) {
		s.patternGuard = true
	}
}

// New создаёт Splitter. Без опций используется встроенный список сокращений.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		abbreviations: DefaultAbbreviations(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// терминальные знаки конца предложения (латиница + CJK)
func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}

// Segment разбивает текст на предложения.
// Пустой вход даёт пустой результат. Segment никогда не возвращает ошибку:
// в худшем случае весь текст становится одним предложением.
func (s *Splitter) Segment(text string) []Sentence {
	if text == "" {
		return nil
	}

	var sentences []Sentence
	start := 0 // начало текущего предложения (в байтах)
	pos := 0   // позиция сканирования

	flush := func(end int) {
		if end <= start {
			return
		}
		sentences = append(sentences, Sentence{
			Text:  text[start:end],
			Start: start,
			End:   end,
			Index: len(sentences),
		})
		start = end
	}

	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])

		// Перевод строки - жёсткая граница: границы абзацев всегда
		// закрывают предложение независимо от пунктуации
		if r == '\n' {
			end := pos + size
			// забираем весь блок пробельных символов в текущее предложение,
			// чтобы структура абзацев воспроизводилась внутри чанков
			end += leadingWhitespace(text[end:])
			flush(end)
			pos = end
			continue
		}

		if isTerminal(r) {
			next := pos + size
			// знак внутри числа, URL или пути - не граница
			// (проверяются только ASCII-буквы и цифры)
			if nr, _ := utf8.DecodeRuneInString(text[next:]); isASCIIAlnum(nr) {
				pos = next
				continue
			}
			// точка после известного сокращения - не граница
			if r == '.' && s.isAbbreviation(lastToken(text[start:next])) {
				pos = next
				continue
			}
			// хвостовые пробелы принадлежат закрываемому предложению
			end := next + leadingSpaces(text[next:])
			// переводы строк после знака тоже забираем сюда же
			end += leadingWhitespace(text[end:])
			flush(end)
			pos = end
			continue
		}

		pos += size
	}

	// незакрытый хвост без терминального знака
	flush(len(text))

	return sentences
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// leadingSpaces считает байты начальных пробелов и табуляций
func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// leadingWhitespace считает байты начального пробельного блока вместе с
// переводами строк
func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}

// lastToken возвращает последнее слово текста вместе с завершающей точкой,
// очищенное от обрамляющей пунктуации (кавычки, скобки)
func lastToken(text string) string {
	idx := strings.LastIndexFunc(text, unicode.IsSpace)
	token := text[idx+1:]
	return strings.TrimLeft(token, "\"'([{«")
}

func (s *Splitter) isAbbreviation(token string) bool {
	if token == "" || token == "." {
		return false
	}
	if _, ok := s.abbreviations[token]; ok {
		return true
	}
	if s.patternGuard {
		return matchesAbbreviationPattern(token)
	}
	return false
}

// Reconstruct собирает исходный текст из предложений. Используется для
// проверки инварианта покрытия.
func Reconstruct(sentences []Sentence) string {
	var buf strings.Builder
	for _, s := range sentences {
		buf.WriteString(s.Text)
	}
	return buf.String()
}
