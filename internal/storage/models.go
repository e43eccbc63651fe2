package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Visit is one recorded page view with whatever geo data the client supplied.
type Visit struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	UserAgent string    `json:"user_agent"`
	Page      string    `json:"page"`
	VisitedAt time.Time `json:"visited_at"`
}

// ContactMessage is a submission from the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Suggestion is an anonymous note from the suggestion box.
type Suggestion struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatEntry is one assistant exchange kept for the transcript log.
type ChatEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Intent    string    `json:"intent"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

// PageCount is visits per page for the analytics view.
type PageCount struct {
	Page  string `json:"page"`
	Count int    `json:"count"`
}

// DayCount is visits per calendar day (UTC) for the analytics view.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// VisitStats aggregates the visit log for the dashboard.
type VisitStats struct {
	Total  int         `json:"total"`
	ByPage []PageCount `json:"by_page"`
	ByDay  []DayCount  `json:"by_day"`
}
