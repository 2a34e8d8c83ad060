package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// LLMJudge оценивает границы тем через OpenAI-совместимый
// /v1/chat/completions эндпоинт (LM Studio, Ollama и т.д.)
type LLMJudge struct {
	endpoint string
	model    string
	key      string
	timeout  time.Duration
	client   *http.Client
}

// Config - параметры подключения к сервису оценки
type Config struct {
	ServerURL string
	Model     string
	Key       string
	Timeout   time.Duration
}

// NewLLMJudge создаёт LLM-оракула
func NewLLMJudge(cfg Config) *LLMJudge {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &LLMJudge{
		endpoint: cfg.ServerURL + "/v1/chat/completions",
		model:    cfg.Model,
		key:      cfg.Key,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

// Judge запрашивает у модели вердикт о смене темы между before и after.
// Запрос ограничен таймаутом и повторяется не более одного раза; любой
// сбой выражается как VerdictUnknown и никогда не покидает оракула ошибкой.
func (j *LLMJudge) Judge(ctx context.Context, before, after string) Verdict {
	lang := DetectLanguage(before + " " + after)
	prompt := topicShiftPrompt(before, after, lang)

	var answer string
	err := retry.Do(ctx, retry.WithMaxRetries(1, retry.NewConstant(500*time.Millisecond)),
		func(ctx context.Context) error {
			var qerr error
			answer, qerr = j.query(ctx, prompt)
			if qerr != nil {
				// сетевые и серверные сбои считаем временными
				return retry.RetryableError(qerr)
			}
			return nil
		})
	if err != nil {
		log.Printf("⚠️  Topic judgment failed: %v", err)
		return VerdictUnknown
	}

	return parseVerdict(answer)
}

// query отправляет один запрос к сервису оценки
func (j *LLMJudge) query(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": j.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  50,
		"temperature": 0.1,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", j.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if j.key != "" {
		req.Header.Set("Authorization", "Bearer "+j.key)
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("LLM returned status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return response.Choices[0].Message.Content, nil
}

// JudgeFunc адаптирует функцию к интерфейсу Judge. Удобно для
// детерминированных заглушек в тестах.
type JudgeFunc func(ctx context.Context, before, after string) Verdict

func (f JudgeFunc) Judge(ctx context.Context, before, after string) Verdict {
	return f(ctx, before, after)
}
