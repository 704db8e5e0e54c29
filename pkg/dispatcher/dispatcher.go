// Package dispatcher routes a parsed command to its handler.
package dispatcher

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/botbot/pkg/command"
	"github.com/skynet2/botbot/pkg/common"
	"github.com/skynet2/botbot/pkg/completion"
	"github.com/skynet2/botbot/pkg/github"
	"github.com/skynet2/botbot/pkg/prompt"
	"github.com/skynet2/botbot/pkg/webhook"
)

const MenuReply = "menu"

// SourceFile is sent along with /code requests.
var SourceFile = github.FileRef{
	Owner:  "skynet2",
	Repo:   "botbot",
	Branch: "main",
	Path:   "pkg/dispatcher/dispatcher.go",
}

type Dispatcher struct {
	completer Completer
	fetcher   CodeFetcher
}

func NewDispatcher(
	completer Completer,
	fetcher CodeFetcher,
) *Dispatcher {
	return &Dispatcher{
		completer: completer,
		fetcher:   fetcher,
	}
}

// Dispatch runs the handler for cmd.Label. An empty reply means nothing
// should be sent back to the chat.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	payload *webhook.Payload,
	cmd command.Command,
) (string, error) {
	zerolog.Ctx(ctx).Debug().
		Str("label", string(cmd.Label)).
		Int("content_length", len(cmd.Content)).
		Msg("dispatching command")

	switch cmd.Label {
	case command.Default:
		return "", nil
	case command.Menu:
		return MenuReply, nil
	case command.Code:
		return d.Code(ctx, payload, cmd)
	case command.Q:
		return d.Question(ctx, payload, cmd)
	default:
		return "", common.Mark(errors.Newf("no handler for command label %q", cmd.Label), common.ErrDispatch)
	}
}

// Code asks the model about SourceFile.
func (d *Dispatcher) Code(
	ctx context.Context,
	payload *webhook.Payload,
	cmd command.Command,
) (string, error) {
	code, err := d.fetcher.Fetch(ctx, SourceFile)
	if err != nil {
		return "", err
	}

	message, err := webhook.EncodeMessage(payload.Message.WithText(cmd.Content))
	if err != nil {
		return "", common.Mark(err, common.ErrDispatch)
	}

	user, err := prompt.User.Code(prompt.Context{
		Message:  message,
		CodePath: SourceFile.Path,
		Code:     code,
	})
	if err != nil {
		return "", common.Mark(err, common.ErrDispatch)
	}

	return d.completer.Complete(ctx, []completion.Message{
		completion.System(prompt.System.Default),
		completion.User(user),
	})
}

// Question forwards the message to the model as a plain conversation turn.
func (d *Dispatcher) Question(
	ctx context.Context,
	payload *webhook.Payload,
	cmd command.Command,
) (string, error) {
	message, err := webhook.EncodeMessage(payload.Message.WithText(cmd.Content))
	if err != nil {
		return "", common.Mark(err, common.ErrDispatch)
	}

	user, err := prompt.User.Default(prompt.Context{
		Message: message,
	})
	if err != nil {
		return "", common.Mark(err, common.ErrDispatch)
	}

	return d.completer.Complete(ctx, []completion.Message{
		completion.System(prompt.System.Default),
		completion.User(user),
	})
}
