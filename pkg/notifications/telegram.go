package notifications

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/imroc/req/v3"

	"github.com/skynet2/botbot/pkg/common"
)

var errMissingToken = errors.New("TELEGRAM_TOKEN is not configured")

type Telegram struct {
	client   *req.Client
	apiToken string
}

func NewTelegram(
	apiToken string,
	cl *req.Client,
) *Telegram {
	return &Telegram{
		client:   cl,
		apiToken: apiToken,
	}
}

// SendTyping shows the typing indicator in the chat.
func (t *Telegram) SendTyping(
	ctx context.Context,
	chatID int64,
) error {
	return t.call(ctx, "sendChatAction", map[string]interface{}{
		"chat_id": chatID,
		"action":  tgbotapi.ChatTyping,
	})
}

// SendReply sends text formatted as Telegram Markdown.
func (t *Telegram) SendReply(
	ctx context.Context,
	chatID int64,
	text string,
) error {
	return t.call(ctx, "sendMessage", map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": tgbotapi.ModeMarkdown,
	})
}

func (t *Telegram) call(
	ctx context.Context,
	method string,
	body map[string]interface{},
) error {
	if t.apiToken == "" {
		return common.Mark(errMissingToken, common.ErrNotification)
	}

	resp, err := t.client.R().
		SetBody(body).
		SetContext(ctx).
		Post(fmt.Sprintf("https://api.telegram.org/bot%v/%v", t.apiToken, method))

	if err != nil {
		return common.Mark(errors.Wrap(err, method), common.ErrNotification)
	}

	if resp.IsErrorState() {
		return common.Mark(
			errors.Newf("%v: unexpected status code: %v and message %v", method, resp.StatusCode, resp.String()),
			common.ErrNotification,
		)
	}

	return nil
}
