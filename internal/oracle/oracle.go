package oracle

import "context"

// Verdict - трёхзначный результат оценки границы темы между двумя
// фрагментами текста
type Verdict int

const (
	// VerdictContinue - следующий фрагмент продолжает текущую тему
	VerdictContinue Verdict = iota
	// VerdictBreak - следующий фрагмент начинает новую тему
	VerdictBreak
	// VerdictUnknown - оценка недоступна (таймаут, ошибка сервиса,
	// нераспознанный ответ)
	VerdictUnknown
)

func (v Verdict) String() string {
	switch v {
	case VerdictContinue:
		return "continue"
	case VerdictBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Judge оценивает, начинается ли после границы между before и after новая
// тема. Реализации никогда не возвращают ошибку: любой сбой выражается
// вердиктом VerdictUnknown.
type Judge interface {
	Judge(ctx context.Context, before, after string) Verdict
}
