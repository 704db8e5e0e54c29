package main

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN,required"`
	WebhookURL    string `env:"WEBHOOK_URL"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}
