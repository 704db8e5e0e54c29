package processor

import (
	"context"

	"github.com/skynet2/botbot/pkg/command"
	"github.com/skynet2/botbot/pkg/webhook"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type NotificationSvc interface {
	SendTyping(
		ctx context.Context,
		chatID int64,
	) error

	SendReply(
		ctx context.Context,
		chatID int64,
		text string,
	) error
}

type Dispatcher interface {
	Dispatch(
		ctx context.Context,
		payload *webhook.Payload,
		cmd command.Command,
	) (string, error)
}

type Parser interface {
	Parse(text string) command.Command
}
