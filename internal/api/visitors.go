package api

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neer2304/foliobot/internal/storage"
)

type VisitRequest struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Page    string `json:"page"`
}

// handleCreateVisit records one page view. All fields are optional; missing
// geo data defaults to "Unknown" and the page to "/". The client IP is taken
// from proxy headers when present.
func handleCreateVisit(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req VisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		v := storage.Visit{
			ID:        uuid.New().String(),
			IP:        clientIP(r),
			Country:   orDefault(req.Country, "Unknown"),
			City:      orDefault(req.City, "Unknown"),
			Region:    orDefault(req.Region, "Unknown"),
			UserAgent: r.UserAgent(),
			Page:      orDefault(req.Page, "/"),
			VisitedAt: time.Now().UTC(),
		}
		if err := deps.Store.SaveVisit(v); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to save visit: %v", err)
			return
		}

		writeJSON(w, http.StatusCreated, v)
	}
}

func handleListVisits(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 50, 500)
		offset := parseIntParam(r, "offset", 0, 0)

		visits, err := deps.Store.ListVisits(limit, offset)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list visits: %v", err)
			return
		}
		if visits == nil {
			visits = []storage.Visit{}
		}
		writeJSON(w, http.StatusOK, visits)
	}
}

func handleVisitStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := parseIntParam(r, "days", 30, 365)

		stats, err := deps.Store.VisitStats(days)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to aggregate visits: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// clientIP resolves the real client address behind the site's reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
