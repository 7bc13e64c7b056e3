// Package tutor is the optics tutor backend: it turns a question and the
// conversation so far into a single reply and never fails.
package tutor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"visionoptics/pkg/ai"
	_ "visionoptics/pkg/ai/providers"
	"visionoptics/pkg/chat"
	"visionoptics/pkg/config"
	"visionoptics/pkg/logging"
	"visionoptics/pkg/optics"
)

const (
	DefaultTemperature = 0.7
	DefaultTimeout     = 60 * time.Second
)

// Settings controls the requests sent to the provider.
type Settings struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Tutor answers optics questions through an LLM provider.
type Tutor struct {
	provider ai.Provider
	// setupErr explains why provider is nil.
	setupErr error
	settings Settings
}

// New creates a tutor on top of provider. A nil provider is allowed; every
// question then gets the connection error reply.
func New(provider ai.Provider, settings Settings) *Tutor {
	if settings.Temperature <= 0 {
		settings.Temperature = DefaultTemperature
	}
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}
	t := &Tutor{provider: provider, settings: settings}
	if provider == nil {
		t.setupErr = fmt.Errorf("no provider configured")
	}
	return t
}

// NewFromConfig builds the provider selected in cfg. Provider setup errors,
// such as a missing API key, are kept and reported on each question instead
// of being returned.
func NewFromConfig(cfg config.Config) *Tutor {
	settings := settingsFromConfig(cfg)

	provider, err := ai.GetProviderFromConfig(cfg)
	if err != nil {
		slog.Warn("tutor_provider_unavailable",
			"llm_provider", cfg.LLMProvider,
			"error", err,
		)
	}

	t := New(provider, settings)
	if err != nil {
		t.setupErr = err
	}
	return t
}

func settingsFromConfig(cfg config.Config) Settings {
	s := Settings{
		Model:   cfg.ActiveModel(),
		Timeout: time.Duration(cfg.ActiveTimeoutSeconds()) * time.Second,
	}
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		s.Temperature = cfg.Providers.OpenAI.Temperature
		s.MaxTokens = cfg.Providers.OpenAI.MaxTokens
	default:
		s.Temperature = cfg.Providers.Google.Temperature
		s.MaxTokens = cfg.Providers.Google.MaxTokens
	}
	return s
}

// Available reports whether questions can reach a provider.
func (t *Tutor) Available() bool {
	return t.provider != nil
}

// Model returns the configured model name.
func (t *Tutor) Model() string {
	return t.settings.Model
}

// Ask sends the question with the prior transcript and returns the reply
// text. Failures are logged and answered with a localized apology.
func (t *Tutor) Ask(ctx context.Context, query string, history []chat.Message, lang optics.Language) string {
	if t.provider == nil {
		slog.Error("tutor_request_error", "error", t.setupErr)
		return ErrorReply(lang)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	messages := BuildMessages(query, history, lang)
	temperature := t.settings.Temperature
	req := ai.ChatRequest{
		Model:       t.settings.Model,
		Messages:    messages,
		Temperature: &temperature,
	}
	if t.settings.MaxTokens > 0 {
		maxTokens := t.settings.MaxTokens
		req.MaxTokens = &maxTokens
	}

	logger := slog.Default().With("session_id", chat.SessionFromContext(ctx))
	if logger.Enabled(ctx, logging.LevelTrace) {
		logger.Log(ctx, logging.LevelTrace, "tutor_request_prompt",
			"model", t.settings.Model,
			"messages_full", dumpMessages(messages),
		)
	}
	logger.Info("tutor_request_start",
		"model", t.settings.Model,
		"lang", lang.String(),
		"history_messages", len(history),
	)

	reqCtx, cancel := context.WithTimeout(ctx, t.settings.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := t.provider.CreateChatCompletion(reqCtx, req)
	if err != nil {
		logger.Error("tutor_request_error",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return ErrorReply(lang)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		logger.Warn("tutor_empty_reply", "model", resp.Model)
		return EmptyReply(lang)
	}

	logger.Info("tutor_request_done",
		"model", resp.Model,
		"reply_len", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text
}

// BuildMessages lays out a provider request: system prompt, the transcript
// role for role, then the question as a user turn.
func BuildMessages(query string, history []chat.Message, lang optics.Language) []ai.Message {
	msgs := make([]ai.Message, 0, len(history)+2)
	msgs = append(msgs, ai.Message{Role: "system", Content: SystemPrompt(lang)})
	for _, msg := range history {
		role := "user"
		if msg.Role == chat.RoleModel {
			role = "assistant"
		}
		msgs = append(msgs, ai.Message{Role: role, Content: msg.Text})
	}
	msgs = append(msgs, ai.Message{Role: "user", Content: query})
	return msgs
}

func dumpMessages(msgs []ai.Message) string {
	var sb strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteString("\n---\n")
		}
		sb.WriteString(msg.Role)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
	}
	return sb.String()
}

var _ chat.Asker = (*Tutor)(nil)
