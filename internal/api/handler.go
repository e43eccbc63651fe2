// Package api exposes the site's HTTP surface: the public chat and form
// endpoints the frontend calls, and the token-protected admin views.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neer2304/foliobot/internal/assistant"
	"github.com/neer2304/foliobot/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Deps holds everything the HTTP handlers need.
type Deps struct {
	Store     *storage.Store
	Assistant *assistant.Engine
	Token     string
	// ThinkingDelay is the artificial pause before a chat reply, so the
	// frontend's typing indicator has something to show.
	ThinkingDelay time.Duration
	Logger        *slog.Logger
}

// NewHandler returns the site's HTTP handler. Admin routes require the
// bearer token; everything else is public.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", handleChat(deps))
		r.Post("/visitors", handleCreateVisit(deps))
		r.Post("/contact", handleContact(deps))
		r.Post("/suggestions", handleCreateSuggestion(deps))

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(deps.Token))
			r.Get("/visitors", handleListVisits(deps))
			r.Get("/visitor-analytics", handleVisitStats(deps))
			r.Get("/messages", handleListMessages(deps))
			r.Get("/suggestions", handleListSuggestions(deps))
			r.Get("/chat-log", handleChatLog(deps))
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func parseIntParam(r *http.Request, key string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
