package main

import (
	"context"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package main -source=interfaces.go

type WebhookProcessor interface {
	ProcessWebhook(
		ctx context.Context,
		body []byte,
	) error
}
