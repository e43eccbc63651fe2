package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neer2304/foliobot/internal/intent"
	"github.com/neer2304/foliobot/internal/storage"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	Intent    string `json:"intent"`
	Timestamp string `json:"timestamp"`
}

// handleChat answers one chat message. The endpoint never fails from the
// widget's point of view: malformed bodies and internal panics both degrade
// to the apology reply with status 200, so the conversation UI stays alive.
func handleChat(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				deps.Logger.Error("chat handler panic", "panic", rec)
				writeChat(w, deps.Assistant.Apology(), intent.Unknown)
			}
		}()

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			deps.Logger.Warn("malformed chat request", "error", err)
			writeChat(w, deps.Assistant.Apology(), intent.Unknown)
			return
		}

		res := deps.Assistant.Respond(req.Message, time.Now())

		if deps.ThinkingDelay > 0 {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(deps.ThinkingDelay):
			}
		}

		// Log the exchange best-effort; a storage hiccup must not lose the reply.
		if strings.TrimSpace(req.Message) != "" {
			entry := storage.ChatEntry{
				ID:        uuid.New().String(),
				Message:   req.Message,
				Intent:    res.Intent.String(),
				Reply:     res.Reply,
				CreatedAt: time.Now().UTC(),
			}
			if err := deps.Store.SaveChatEntry(entry); err != nil {
				deps.Logger.Warn("failed to log chat exchange", "error", err)
			}
		}

		writeChat(w, res.Reply, res.Intent)
	}
}

func writeChat(w http.ResponseWriter, reply string, in intent.Intent) {
	writeJSON(w, http.StatusOK, ChatResponse{
		Reply:     reply,
		Intent:    in.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func handleChatLog(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 50, 500)
		offset := parseIntParam(r, "offset", 0, 0)

		entries, err := deps.Store.ListChatEntries(limit, offset)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list chat log: %v", err)
			return
		}
		if entries == nil {
			entries = []storage.ChatEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
