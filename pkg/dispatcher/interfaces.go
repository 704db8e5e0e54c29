package dispatcher

import (
	"context"

	"github.com/skynet2/botbot/pkg/completion"
	"github.com/skynet2/botbot/pkg/github"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package dispatcher_test -source=interfaces.go

type Completer interface {
	Complete(ctx context.Context, messages []completion.Message) (string, error)
}

type CodeFetcher interface {
	Fetch(ctx context.Context, ref github.FileRef) (string, error)
}
