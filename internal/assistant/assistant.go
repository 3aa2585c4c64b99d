// Package assistant backs the site's chat widget with a language-model API.
// It is entirely independent of the content repository; any failure degrades
// to a static offline message rather than an error.
package assistant

import (
	"context"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt fixes the assistant's persona and guardrails.
const systemPrompt = `You are a pediatric oral health assistant for the "Smiles of Hope for Children Foundation".
Founder: Prof. Olubukola Olatosi.
Goal: Answer questions about children's oral hygiene, preventive care, and the foundation's mission.
Maintain a friendly, professional, and helpful tone.
Avoid giving strict medical prescriptions; always suggest consulting a professional dentist for severe issues.
Encourage practices like brushing twice daily with fluoride toothpaste and early dental visits.
If a user wants to talk to a person or save their query, tell them they can use the contact form.`

// OfflineMessage is shown when the assistant is unconfigured or unreachable.
const OfflineMessage = "The AI assistant is currently offline. Please use our contact form for inquiries."

// Config holds the language-model service settings.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// Enabled reports whether the assistant is configured.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// Assistant is the chat client with the fixed system prompt.
type Assistant struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// New creates an assistant, or a disabled one when no API key is configured.
func New(cfg Config, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Assistant{logger: logger}
	if !cfg.Enabled() {
		return a
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	a.client = openai.NewClientWithConfig(clientCfg)
	a.model = cfg.Model
	if a.model == "" {
		a.model = openai.GPT4oMini
	}
	return a
}

// Reply answers a single user message. It never returns an error to the
// caller: unconfigured or failing service yields the offline message.
func (a *Assistant) Reply(ctx context.Context, userMessage string) string {
	if a.client == nil {
		return OfflineMessage
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		a.logger.Warn("assistant: completion failed", slog.String("error", err.Error()))
		return "I'm having trouble connecting right now. Please try again in a moment."
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "I'm sorry, I couldn't process that."
	}
	return resp.Choices[0].Message.Content
}
