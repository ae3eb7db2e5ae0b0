// Package sink is a local webhook receiver for development: it passes the
// client's reachability probe and logs every payload posted to it.
package sink

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/elijahgives/webhook-client/internal/logger"
	"github.com/elijahgives/webhook-client/webhook"
)

// envelope mirrors the outer payload the dispatcher posts.
type envelope struct {
	Content   string             `json:"content"`
	Username  string             `json:"username"`
	AvatarURL string             `json:"avatar_url"`
	TTS       bool               `json:"tts"`
	Embeds    []webhook.Document `json:"embeds"`
}

type handler struct {
	log logger.Logger
}

// NewRouter builds the sink's router: GET/HEAD answer the probe, POST
// ingests a webhook payload.
func NewRouter(log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	h := &handler{log: log}
	r.Get("/", h.probe)
	r.Head("/", h.probe)
	r.Post("/", h.receive)

	return r
}

func (h *handler) probe(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) receive(w http.ResponseWriter, r *http.Request) {
	var env envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		h.log.Warn("malformed webhook payload", logger.Error(err))
		http.Error(w, "malformed payload", http.StatusBadRequest)
		return
	}

	h.log.Info("webhook received",
		logger.String("content", env.Content),
		logger.String("username", env.Username),
		logger.Bool("tts", env.TTS),
		logger.Int("embeds", len(env.Embeds)),
		logger.String("thread_id", r.URL.Query().Get("thread_id")),
	)

	for i, doc := range env.Embeds {
		e := webhook.FromDocument(doc)
		h.log.Info("embed",
			logger.Int("index", i),
			logger.String("title", e.Title()),
			logger.String("type", e.Type()),
			logger.Int("length", e.Len()),
			logger.Bool("empty", e.IsEmpty()),
		)
	}

	w.WriteHeader(http.StatusNoContent)
}

// statusWriter captures the status code for the access log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// accessLog logs one line per request.
func accessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(ww, r)

			log.Debug("http_request",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", ww.status),
				logger.Duration("duration", time.Since(start)),
				logger.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
