// Command setwebhook registers, inspects or removes the bot's Telegram webhook.
package main

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	var (
		remove   = flag.Bool("delete", false, "delete the webhook instead of setting it")
		infoOnly = flag.Bool("info", false, "only print the current webhook info")
		drop     = flag.Bool("drop-pending", false, "drop pending updates when deleting")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to authorize bot")
	}

	logger = logger.With().Str("bot", bot.Self.UserName).Logger()

	switch {
	case *infoOnly:
	case *remove:
		err = deleteWebhook(bot, *drop)
	default:
		err = setWebhook(bot, cfg.WebhookURL)
	}

	if err != nil {
		logger.Fatal().Err(err).Msg("webhook update failed")
	}

	info, err := bot.GetWebhookInfo()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get webhook info")
	}

	logger.Info().
		Str("url", info.URL).
		Int("pending_update_count", info.PendingUpdateCount).
		Str("last_error_message", info.LastErrorMessage).
		Msg("webhook info")
}

type requester interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

func setWebhook(bot requester, url string) error {
	if url == "" {
		return errors.New("WEBHOOK_URL is required to set the webhook")
	}

	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return errors.Wrap(err, "build webhook config")
	}

	wh.AllowedUpdates = []string{"message"}

	if _, err = bot.Request(wh); err != nil {
		return errors.Wrap(err, "setWebhook")
	}

	return nil
}

func deleteWebhook(bot requester, dropPending bool) error {
	if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: dropPending}); err != nil {
		return errors.Wrap(err, "deleteWebhook")
	}

	return nil
}
