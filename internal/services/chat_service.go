package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// RedirectMessage is returned without calling the model when a message is
// off-topic. Saves a paid call and keeps the assistant on-brand.
const RedirectMessage = `I'm Careerion, your career guidance assistant! I focus on helping you with career and education questions.

Here is what I can help you with:
- Choosing a career path or field of study
- Job market trends, roles and salary expectations
- Resumes, portfolios and interview preparation
- Courses, certifications and skill development
- Career switches and professional growth

Ask me anything about your career, and I'll do my best to help!`

// HistoryEntry is one prior message as sent by the frontend.
type HistoryEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ChatRequest is the resolved input to Respond. UserID is zero for anonymous
// callers.
type ChatRequest struct {
	Message      string
	History      []HistoryEntry
	SystemPrompt string
	ExpectJSON   bool
	UserID       uint
}

// ChatResult is the success envelope for a chat exchange.
type ChatResult struct {
	Response   string
	JSON       json.RawMessage
	Redirected bool
}

// ChatService orchestrates classifier, prompt builder and gateway.
type ChatService struct {
	gateway  Gateway
	users    repository.UserStore
	classify RelevancePredicate
	log      *logrus.Logger
}

func NewChatService(gateway Gateway, users repository.UserStore, classify RelevancePredicate, log *logrus.Logger) *ChatService {
	if classify == nil {
		classify = IsCareerRelated
	}
	return &ChatService{gateway: gateway, users: users, classify: classify, log: log}
}

// Respond runs the full chat flow. Gateway errors are returned as-is; the
// handler maps them to a 500 via UpstreamMessage.
func (s *ChatService) Respond(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if !s.gateway.Configured() {
		return nil, ErrGatewayNotConfigured
	}

	// Off-topic messages get the canned redirect unless the caller asked
	// for structured output, where a redirect would break the contract.
	if !s.classify(req.Message) && !req.ExpectJSON {
		s.log.WithField("message", truncate(req.Message, 60)).Info("chat: off-topic, redirecting")
		return &ChatResult{Response: RedirectMessage, Redirected: true}, nil
	}

	prompt := BuildPrompt(req.Message, PromptOptions{
		Profile:      s.loadProfile(req.UserID),
		SystemPrompt: req.SystemPrompt,
		StrictJSON:   req.ExpectJSON,
	})

	raw, err := s.generate(ctx, prompt, req.History)
	if err != nil {
		return nil, err
	}

	result := &ChatResult{Response: raw}
	if req.ExpectJSON {
		if extracted, ok := ExtractJSON(raw); ok {
			result.JSON = extracted
		} else {
			s.log.Warn("chat: expectJson set but no parseable JSON in model output")
		}
	}
	return result, nil
}

// generate picks between the stateful and single-shot gateway paths.
// Strategy: attempt the multi-turn call when the history qualifies; on any
// failure fall back to a single-shot generation with the composed prompt.
func (s *ChatService) generate(ctx context.Context, prompt string, history []HistoryEntry) (string, error) {
	turns := mapHistory(history)

	// The gateway requires the first turn to come from the human party.
	if len(turns) == 0 || turns[0].Role != "user" {
		if len(turns) > 0 {
			s.log.Info("chat: history does not start with a user turn, using single-shot")
		}
		return s.gateway.Generate(ctx, prompt)
	}

	out, err := s.gateway.Chat(ctx, turns, prompt)
	if err != nil {
		s.log.WithError(err).Warn("chat: stateful call failed, retrying single-shot")
		return s.gateway.Generate(ctx, prompt)
	}
	return out, nil
}

// loadProfile is best-effort: a fetch failure logs and degrades to an
// unpersonalized prompt.
func (s *ChatService) loadProfile(userID uint) *models.User {
	if userID == 0 || s.users == nil {
		return nil
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("chat: profile fetch failed, continuing without it")
		return nil
	}
	return user
}

// mapHistory drops malformed entries and maps sender names onto the gateway
// role vocabulary: the human party is "user", everything else is "model".
func mapHistory(history []HistoryEntry) []Turn {
	turns := make([]Turn, 0, len(history))
	for _, h := range history {
		if strings.TrimSpace(h.Text) == "" || strings.TrimSpace(h.Sender) == "" {
			continue
		}
		role := "model"
		if strings.EqualFold(h.Sender, "user") {
			role = "user"
		}
		turns = append(turns, Turn{Role: role, Text: h.Text})
	}
	return turns
}

// ExtractJSON pulls a JSON value out of model output that may be wrapped in
// prose or fenced code blocks. Strips fence markers, seeks the first '{' or
// '[', then tries progressively shorter slices until one parses. Soft
// failure: callers keep the raw text when this returns false.
func ExtractJSON(raw string) (json.RawMessage, bool) {
	clean := stripFences(raw)

	start := strings.IndexAny(clean, "{[")
	if start == -1 {
		return nil, false
	}
	clean = clean[start:]

	for end := len(clean); end > 0; end-- {
		candidate := strings.TrimSpace(clean[:end])
		if candidate == "" {
			break
		}
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), true
		}
	}
	return nil, false
}

func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}

// UpstreamMessage turns a gateway error into the user-facing 500 body.
// Substring sniffing is crude but these are the three failure classes the
// Gemini SDK actually reports.
func UpstreamMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case err == ErrGatewayNotConfigured:
		return "GEMINI_API_KEY is not configured on the server."
	case strings.Contains(msg, "API_KEY"):
		return "The Gemini API key is invalid or missing. Check GEMINI_API_KEY on the server."
	case strings.Contains(msg, "quota"):
		return "The AI service quota has been exceeded. Please try again later."
	case strings.Contains(msg, "model"):
		return "The configured Gemini model is unavailable. Check GEMINI_MODEL on the server."
	default:
		return "AI request failed. Check server logs for details."
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// recommendationSchema instructs the model on the career-recommendations
// output shape. Appended after the generated block like any caller-supplied
// system prompt.
const recommendationSchema = `Return a JSON object with this exact shape:
{
  "recommendations": [
    {
      "title": "career or role name",
      "match_reason": "why this fits the user",
      "required_skills": ["skill"],
      "first_steps": ["concrete action"]
    }
  ],
  "summary": "one paragraph overview"
}`

// Recommend answers a career-recommendations query in strict-JSON mode,
// personalized to the authenticated caller.
func (s *ChatService) Recommend(ctx context.Context, userID uint, query, category string) (*ChatResult, error) {
	message := fmt.Sprintf("Recommend suitable career paths for this request: %s", query)
	if category != "" {
		message = fmt.Sprintf("%s (focus area: %s)", message, category)
	}
	return s.Respond(ctx, ChatRequest{
		Message:      message,
		SystemPrompt: recommendationSchema,
		ExpectJSON:   true,
		UserID:       userID,
	})
}
