package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Turn is one prior exchange in a conversation, already mapped to the
// gateway's role vocabulary: "user" for the human party, "model" otherwise.
type Turn struct {
	Role string
	Text string
}

// ErrGatewayNotConfigured is returned when no API key was supplied. Checked
// per request rather than at startup so the rest of the API stays usable.
var ErrGatewayNotConfigured = errors.New("gemini client is not configured")

// Gateway abstracts the generative-language service so the chat orchestration
// can be tested against a fake.
type Gateway interface {
	Configured() bool
	ModelName() string
	// Generate is the single-shot entry point.
	Generate(ctx context.Context, prompt string) (string, error)
	// Chat is the stateful entry point: prior turns plus the composed
	// prompt for the new message.
	Chat(ctx context.Context, history []Turn, prompt string) (string, error)
}

// LLMService is the Gemini-backed Gateway implementation.
type LLMService struct {
	client llms.Model
	model  string
	log    *logrus.Logger
}

// NewLLMService initializes the Gemini client. A missing API key is not fatal
// here; the service reports itself unconfigured and chat requests fail with a
// clear 500 instead.
func NewLLMService(apiKey, model string, log *logrus.Logger) *LLMService {
	svc := &LLMService{model: model, log: log}
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY is empty; chat endpoints will return errors until it is set")
		return svc
	}

	client, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		log.WithError(err).Error("failed to create Gemini client")
		return svc
	}
	svc.client = client
	return svc
}

func (s *LLMService) Configured() bool { return s.client != nil }

func (s *LLMService) ModelName() string { return s.model }

func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrGatewayNotConfigured
	}
	return llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
}

func (s *LLMService) Chat(ctx context.Context, history []Turn, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrGatewayNotConfigured
	}

	messages := make([]llms.MessageContent, 0, len(history)+1)
	for _, turn := range history {
		role := llms.ChatMessageTypeAI
		if turn.Role == "user" {
			role = llms.ChatMessageTypeHuman
		}
		messages = append(messages, llms.TextParts(role, turn.Text))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	resp, err := s.client.GenerateContent(ctx, messages)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Content, nil
}
