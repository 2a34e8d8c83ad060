package oracle

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "en", DetectLanguage("The quick brown fox jumps over the lazy dog."))
	assert.Equal(t, "ja", DetectLanguage("今日は晴れです。明日は雨の予報です。"))
	assert.Equal(t, "en", DetectLanguage(""))
	assert.Equal(t, "en", DetectLanguage("12345 !!!"))
	// смешанный текст с преобладанием японского
	assert.Equal(t, "ja", DetectLanguage("LLMは話題の転換を判定します"))
}

func TestParseVerdict(t *testing.T) {
	cases := []struct {
		answer string
		want   Verdict
	}{
		{"topic shift", VerdictBreak},
		{"This is clearly a Topic Shift.", VerdictBreak},
		{"new topic", VerdictBreak},
		{"話題転換", VerdictBreak},
		{"新しい話題です", VerdictBreak},
		{"same topic", VerdictContinue},
		{"同じ話題", VerdictContinue},
		{"", VerdictUnknown},
		{"I cannot decide", VerdictUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseVerdict(tc.answer), "answer: %q", tc.answer)
	}
}

// completionServer отвечает фиксированным содержимым в формате
// /v1/chat/completions
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, content)
	}))
}

func TestLLMJudge(t *testing.T) {
	ctx := context.Background()

	t.Run("ShouldReturnBreakOnTopicShift", func(t *testing.T) {
		srv := completionServer(t, "topic shift")
		defer srv.Close()

		judge := NewLLMJudge(Config{ServerURL: srv.URL, Model: "test"})
		assert.Equal(t, VerdictBreak, judge.Judge(ctx, "Something about cars.", "Now about cooking."))
	})

	t.Run("ShouldReturnContinueOnSameTopic", func(t *testing.T) {
		srv := completionServer(t, "same topic")
		defer srv.Close()

		judge := NewLLMJudge(Config{ServerURL: srv.URL, Model: "test"})
		assert.Equal(t, VerdictContinue, judge.Judge(ctx, "Something about cars.", "More about cars."))
	})

	t.Run("ShouldReturnUnknownOnUnparseableAnswer", func(t *testing.T) {
		srv := completionServer(t, "forty two")
		defer srv.Close()

		judge := NewLLMJudge(Config{ServerURL: srv.URL, Model: "test"})
		assert.Equal(t, VerdictUnknown, judge.Judge(ctx, "a", "b"))
	})

	t.Run("ShouldReturnUnknownWhenServerIsDown", func(t *testing.T) {
		srv := completionServer(t, "topic shift")
		srv.Close() // сразу закрываем

		judge := NewLLMJudge(Config{ServerURL: srv.URL, Model: "test", Timeout: time.Second})
		assert.Equal(t, VerdictUnknown, judge.Judge(ctx, "a", "b"))
	})

	t.Run("ShouldRetryOnceOnTransientFailure", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, `{"choices":[{"message":{"content":"topic shift"}}]}`)
		}))
		defer srv.Close()

		judge := NewLLMJudge(Config{ServerURL: srv.URL, Model: "test"})
		assert.Equal(t, VerdictBreak, judge.Judge(ctx, "a", "b"))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ShouldGiveUpAfterSingleRetry", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		judge := NewLLMJudge(Config{ServerURL: srv.URL, Model: "test"})
		assert.Equal(t, VerdictUnknown, judge.Judge(ctx, "a", "b"))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ShouldReturnUnknownOnTimeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			fmt.Fprint(w, `{"choices":[{"message":{"content":"same topic"}}]}`)
		}))
		defer srv.Close()

		judge := NewLLMJudge(Config{ServerURL: srv.URL, Model: "test", Timeout: 20 * time.Millisecond})
		assert.Equal(t, VerdictUnknown, judge.Judge(ctx, "a", "b"))
	})

	t.Run("ShouldPickJapanesePromptForJapaneseText", func(t *testing.T) {
		prompt := topicShiftPrompt("before", "after", "ja")
		assert.Contains(t, prompt, "話題転換")
		prompt = topicShiftPrompt("before", "after", "en")
		assert.Contains(t, prompt, "topic shift")
	})
}
