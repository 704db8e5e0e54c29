package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/skynet2/botbot/pkg/common"
)

type Handler struct {
	processor WebhookProcessor
}

func NewHandler(
	processor WebhookProcessor,
) *Handler {
	return &Handler{
		processor: processor,
	}
}

func (h *Handler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = h.processor.ProcessWebhook(r.Context(), b); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, common.ErrValidation) {
			status = http.StatusBadRequest
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("webhook failed")

		w.WriteHeader(status)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(okResponse{Ok: "ok"})
}

func NewRouter(
	logger zerolog.Logger,
	handler http.Handler,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(
		hlog.NewHandler(logger),
		requestID,
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request handled")
		}),
	)

	r.Handle("/api/hook", handler).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		logger := zerolog.Ctx(r.Context()).With().Str("request_id", id).Logger()
		w.Header().Set("X-Request-Id", id)

		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}
