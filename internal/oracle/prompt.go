package oracle

import (
	"fmt"
	"strings"
	"unicode"
)

// DetectLanguage определяет язык текста по доле японских символов среди
// букв. Возвращает "ja" или "en"; пустой текст считается английским.
func DetectLanguage(text string) string {
	japanese := 0
	total := 0
	for _, r := range text {
		switch {
		case isJapanese(r):
			japanese++
			total++
		case unicode.IsLetter(r):
			total++
		}
	}
	if total == 0 {
		return "en"
	}
	// 30% японских символов достаточно для уверенного выбора
	if float64(japanese)/float64(total) >= 0.3 {
		return "ja"
	}
	return "en"
}

// хирагана, катакана и иероглифы CJK
func isJapanese(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0x4E00 && r <= 0x9FAF)
}

// topicShiftPrompt формирует промпт для оценки смены темы на языке текста
func topicShiftPrompt(before, after, lang string) string {
	if lang == "ja" {
		return fmt.Sprintf(`以下のテキストを読んで、新しく追加される文が現在のテキストと明らかに異なる話題を扱っているかどうかを判定してください。

現在のテキスト:
%s

新しく追加される文:
%s

判定基準:
- 新しい文が現在のテキストと明らかに異なる話題を扱っている場合: 話題転換
- 新しい文が現在のテキストの続きや関連する内容の場合: 同じ話題

回答は「話題転換」または「同じ話題」のいずれかで答えてください。`, before, after)
	}

	return fmt.Sprintf(`Read the following text and determine if the new text deals with a clearly different topic from the current text.

Current text:
%s

New text to add:
%s

Criteria:
- If the new text deals with a clearly different topic from the current text: topic shift
- If the new text is a continuation or related content to the current text: same topic

Answer with either "topic shift" or "same topic".`, before, after)
}

// parseVerdict интерпретирует текстовый ответ модели.
// Любой нераспознанный ответ - VerdictUnknown.
func parseVerdict(answer string) Verdict {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return VerdictUnknown
	}

	switch {
	case strings.Contains(answer, "話題転換"),
		strings.Contains(answer, "新しい話題"),
		strings.Contains(answer, "topic shift"),
		strings.Contains(answer, "new topic"):
		return VerdictBreak
	case strings.Contains(answer, "同じ話題"),
		strings.Contains(answer, "same topic"):
		return VerdictContinue
	}
	return VerdictUnknown
}
