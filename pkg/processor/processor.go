package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skynet2/botbot/pkg/webhook"
)

type Config struct {
	NotificationSvc NotificationSvc
	Dispatcher      Dispatcher
	Parser          Parser
}

type Processor struct {
	notificationSvc NotificationSvc
	dispatcher      Dispatcher
	parser          Parser
}

func NewProcessor(
	cfg *Config,
) *Processor {
	return &Processor{
		notificationSvc: cfg.NotificationSvc,
		dispatcher:      cfg.Dispatcher,
		parser:          cfg.Parser,
	}
}

// ProcessWebhook validates body, shows the typing indicator, dispatches the
// command and sends the reply if there is one. The first failing stage aborts
// the rest of the pipeline.
func (p *Processor) ProcessWebhook(
	ctx context.Context,
	body []byte,
) error {
	payload, err := webhook.Parse(body)
	if err != nil {
		return err
	}

	chatID := payload.Message.Chat.ID
	logger := zerolog.Ctx(ctx).With().
		Int64("update_id", payload.UpdateID).
		Int64("chat_id", chatID).
		Logger()
	ctx = logger.WithContext(ctx)

	if err = p.notificationSvc.SendTyping(ctx, chatID); err != nil {
		return err
	}

	cmd := p.parser.Parse(payload.Message.Text)

	reply, err := p.dispatcher.Dispatch(ctx, payload, cmd)
	if err != nil {
		return err
	}

	if reply == "" {
		logger.Debug().Str("label", string(cmd.Label)).Msg("no reply for command")

		return nil
	}

	if err = p.notificationSvc.SendReply(ctx, chatID, reply); err != nil {
		return err
	}

	logger.Info().
		Str("label", string(cmd.Label)).
		Int("reply_length", len(reply)).
		Msg("reply sent")

	return nil
}
