package main

import (
	"net/http"

	"github.com/imroc/req/v3"
	"github.com/rs/zerolog/log"

	"github.com/skynet2/botbot/pkg/command"
	"github.com/skynet2/botbot/pkg/completion"
	"github.com/skynet2/botbot/pkg/dispatcher"
	"github.com/skynet2/botbot/pkg/github"
	"github.com/skynet2/botbot/pkg/notifications"
	"github.com/skynet2/botbot/pkg/processor"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := setupLogger(cfg.LogLevel, cfg.Environment)

	httpClient := req.C().SetTimeout(cfg.RequestTimeout)

	var completer dispatcher.Completer
	switch cfg.CompletionProvider {
	case providerGemini:
		gemini := completion.NewGemini(cfg.GeminiAPIKey, cfg.CompletionModel)
		defer func() {
			_ = gemini.Close()
		}()

		completer = gemini
	default:
		completer = completion.NewOpenAI(cfg.OpenAIAPIKey, cfg.CompletionModel)
	}

	processorSvc := processor.NewProcessor(&processor.Config{
		NotificationSvc: notifications.NewTelegram(cfg.TelegramToken, httpClient),
		Parser:          command.NewParser(command.DefaultKeywords()),
		Dispatcher: dispatcher.NewDispatcher(
			completer,
			github.NewFetcher(cfg.GithubToken, cfg.CodeFetchIgnoreStatus, httpClient),
		),
	})

	r := NewRouter(logger, NewHandler(processorSvc))

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.ListenAddr,
		WriteTimeout: cfg.RequestTimeout,
		ReadTimeout:  cfg.RequestTimeout,
	}

	logger.Info().
		Str("addr", cfg.ListenAddr).
		Str("environment", cfg.Environment).
		Str("completion_provider", cfg.CompletionProvider).
		Msg("starting webhook server")

	if err = srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
