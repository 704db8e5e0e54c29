package main

import "time"

type Config struct {
	ListenAddr     string        `env:"LISTEN_ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	Environment    string        `env:"ENVIRONMENT" envDefault:"production"`

	TelegramToken string `env:"TELEGRAM_TOKEN"`

	CompletionProvider string `env:"COMPLETION_PROVIDER" envDefault:"openai"`
	CompletionModel    string `env:"COMPLETION_MODEL"`
	OpenAIAPIKey       string `env:"OPENAI_API_KEY"`
	GeminiAPIKey       string `env:"GEMINI_API_KEY"`

	GithubToken           string `env:"GITHUB_PERSONAL_ACCESS_TOKEN"`
	CodeFetchIgnoreStatus bool   `env:"CODE_FETCH_IGNORE_STATUS" envDefault:"false"`
}

type okResponse struct {
	Ok string `json:"ok"`
}
