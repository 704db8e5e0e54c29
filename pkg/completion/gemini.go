package completion

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"google.golang.org/api/option"

	"github.com/skynet2/botbot/pkg/common"
)

var errMissingGeminiKey = errors.New("GEMINI_API_KEY is not configured")

type Gemini struct {
	apiKey      string
	model       string
	opts        []option.ClientOption
	genaiClient *genai.Client
	mu          sync.Mutex
}

func NewGemini(
	apiKey string,
	model string,
	opts ...option.ClientOption,
) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}

	return &Gemini{
		apiKey: apiKey,
		model:  model,
		opts:   opts,
	}
}

// getClient creates the genai client on first use.
func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.genaiClient != nil {
		return g.genaiClient, nil
	}

	opts := append([]option.ClientOption{option.WithAPIKey(g.apiKey)}, g.opts...)

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}

	g.genaiClient = client

	return g.genaiClient, nil
}

func (g *Gemini) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.genaiClient == nil {
		return nil
	}

	err := g.genaiClient.Close()
	g.genaiClient = nil

	return err
}

func (g *Gemini) Complete(
	ctx context.Context,
	messages []Message,
) (string, error) {
	if g.apiKey == "" {
		return "", common.Mark(errMissingGeminiKey, common.ErrCompletion)
	}

	system, parts, err := toGeminiContent(messages)
	if err != nil {
		return "", common.Mark(err, common.ErrCompletion)
	}

	client, err := g.getClient(ctx)
	if err != nil {
		return "", common.Mark(err, common.ErrCompletion)
	}

	model := client.GenerativeModel(g.model)
	model.SystemInstruction = system

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", common.Mark(errors.Wrap(err, "gemini generate content"), common.ErrCompletion)
	}

	text := candidateText(resp)
	if text == "" {
		zerolog.Ctx(ctx).Warn().Str("model", g.model).Msg("gemini returned no content")
	}

	return text, nil
}

// toGeminiContent folds system messages into one system instruction and
// keeps user messages as prompt parts, in order.
func toGeminiContent(messages []Message) (*genai.Content, []genai.Part, error) {
	for _, m := range messages {
		if m.Role != RoleSystem && m.Role != RoleUser {
			return nil, nil, errors.Newf("unsupported role %q", m.Role)
		}
	}

	byRole := func(role Role) []genai.Part {
		return lo.FilterMap(messages, func(m Message, _ int) (genai.Part, bool) {
			return genai.Text(m.Content), m.Role == role
		})
	}

	parts := byRole(RoleUser)
	if len(parts) == 0 {
		return nil, nil, errors.New("at least one user message is required")
	}

	var system *genai.Content
	if systemParts := byRole(RoleSystem); len(systemParts) > 0 {
		system = &genai.Content{Parts: systemParts}
	}

	return system, parts, nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder

	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String()
}
