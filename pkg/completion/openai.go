// Package completion talks to large language model providers.
package completion

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"github.com/skynet2/botbot/pkg/common"
)

var errMissingOpenAIKey = errors.New("OPENAI_API_KEY is not configured")

type OpenAI struct {
	client openai.Client
	apiKey string
	model  string
}

// NewOpenAI builds a chat completion client. SDK retries are disabled, a
// failed call is reported once to the caller.
func NewOpenAI(
	apiKey string,
	model string,
	opts ...option.RequestOption,
) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &OpenAI{
		client: openai.NewClient(opts...),
		apiKey: apiKey,
		model:  model,
	}
}

// Complete returns the content of the first choice. An empty string means
// the provider produced no content.
func (o *OpenAI) Complete(
	ctx context.Context,
	messages []Message,
) (string, error) {
	if o.apiKey == "" {
		return "", common.Mark(errMissingOpenAIKey, common.ErrCompletion)
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}

	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleUser:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		default:
			return "", common.Mark(errors.Newf("unsupported role %q", m.Role), common.ErrCompletion)
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", common.Mark(errors.Wrap(err, "openai chat completion"), common.ErrCompletion)
	}

	if len(resp.Choices) == 0 {
		zerolog.Ctx(ctx).Warn().Str("model", o.model).Msg("openai returned no choices")

		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
