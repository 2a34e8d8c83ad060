package chunker

import "context"

// причины закрытия чанка
const (
	// ReasonTopicShift - оракул зафиксировал смену темы
	ReasonTopicShift = "topic_shift"
	// ReasonSizeLimit - достигнут максимальный размер чанка
	ReasonSizeLimit = "size_limit"
	// ReasonEndOfInput - входной текст закончился
	ReasonEndOfInput = "end_of_input"
)

// Chunk - единица выходного текста.
// StartUnit/EndUnit - включительный диапазон принадлежащих чанку сегментов
// (предложений или абзацев). Добавленный overlap-префикс - копия для
// контекста, сегментами он не владеет.
type Chunk struct {
	Text      string
	StartUnit int
	EndUnit   int
	// CharCount - число символов (рун) в Text
	CharCount   int
	Number      int
	SplitReason string
}

// Result - результат одного запуска разбиения
type Result struct {
	Source string
	Method string
	Chunks []Chunk

	// параметры запуска
	MaxChunkSize int
	MinChunkSize int
	Overlap      int

	// статистика
	TotalChars  int
	MinChunkLen int
	MaxChunkLen int
	AvgChunkLen int
}

// Config содержит общие параметры для chunker'ов
type Config struct {
	// MaxChunkSize - максимальный размер чанка в символах
	MaxChunkSize int
	// MinChunkSize - минимальный размер: ниже него чанк не закрывается
	// по смене темы
	MinChunkSize int
	// Overlap - размер overlap между чанками (simple и progressive)
	Overlap int
	// ContextChars - хвост накопленного чанка, передаваемый оракулу
	// в последовательном режиме
	ContextChars int
	// WindowChars - размер окна по обе стороны границы в режиме
	// скользящего окна
	WindowChars int
	// SplitOversized включает аварийное разбиение предложения длиннее
	// MaxChunkSize по пробелам
	SplitOversized bool
	// SplitOnUnknown меняет политику при недоступном вердикте:
	// по умолчанию Unknown трактуется как Continue (не дробить),
	// с этим флагом - как Break
	SplitOnUnknown bool
}

const (
	defaultContextChars = 1000
	defaultWindowChars  = 600
)

// sanitize заполняет нулевые поля значениями по умолчанию
func (c Config) sanitize() Config {
	if c.MaxChunkSize <= 0 {
		c.MaxChunkSize = 2000
	}
	if c.MinChunkSize < 0 {
		c.MinChunkSize = 0
	}
	if c.ContextChars <= 0 {
		c.ContextChars = defaultContextChars
	}
	if c.WindowChars <= 0 {
		c.WindowChars = defaultWindowChars
	}
	return c
}

// Chunker - интерфейс для всех типов chunker'ов
type Chunker interface {
	// Chunk разбивает контент на чанки
	Chunk(ctx context.Context, content string) (*Result, error)

	// Name возвращает название chunker'а для логирования
	Name() string
}
