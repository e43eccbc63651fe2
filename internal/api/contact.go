package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neer2304/foliobot/internal/storage"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type SuggestionRequest struct {
	Message string `json:"message"`
}

func handleContact(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		name := stripHTML(req.Name)
		email := strings.TrimSpace(req.Email)
		message := stripHTML(req.Message)
		if name == "" || email == "" || message == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "name, email, and message are required")
			return
		}

		m := storage.ContactMessage{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     email,
			Message:   message,
			CreatedAt: time.Now().UTC(),
		}
		if err := deps.Store.SaveContactMessage(m); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to save message: %v", err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"status": "received", "id": m.ID})
	}
}

func handleCreateSuggestion(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req SuggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		message := stripHTML(req.Message)
		if message == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
			return
		}

		sg := storage.Suggestion{
			ID:        uuid.New().String(),
			Message:   message,
			CreatedAt: time.Now().UTC(),
		}
		if err := deps.Store.SaveSuggestion(sg); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to save suggestion: %v", err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"status": "received", "id": sg.ID})
	}
}

func handleListMessages(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 50, 500)
		offset := parseIntParam(r, "offset", 0, 0)

		msgs, err := deps.Store.ListContactMessages(limit, offset)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list messages: %v", err)
			return
		}
		if msgs == nil {
			msgs = []storage.ContactMessage{}
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

func handleListSuggestions(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 50, 500)
		offset := parseIntParam(r, "offset", 0, 0)

		sgs, err := deps.Store.ListSuggestions(limit, offset)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list suggestions: %v", err)
			return
		}
		if sgs == nil {
			sgs = []storage.Suggestion{}
		}
		writeJSON(w, http.StatusOK, sgs)
	}
}
