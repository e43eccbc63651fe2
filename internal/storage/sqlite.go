// Package storage persists the site's CRUD records — visits, contact
// messages, suggestions, and the assistant chat transcript — in a single
// SQLite database.
package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a SQLite database with methods for visitor, contact,
// suggestion, and chat-log records.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database in dataDir and runs pending
// migrations. Pass ":memory:" as dataDir for an in-memory database (used by
// tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "foliobot.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies embedded SQL migration files that haven't been run yet.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// --- Visits ---

func (s *Store) SaveVisit(v Visit) error {
	_, err := s.db.Exec(`
		INSERT INTO visits (id, ip, country, city, region, user_agent, page, visited_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.IP, v.Country, v.City, v.Region, v.UserAgent, v.Page,
		v.VisitedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) ListVisits(limit, offset int) ([]Visit, error) {
	rows, err := s.db.Query(`
		SELECT id, ip, country, city, region, user_agent, page, visited_at
		FROM visits ORDER BY visited_at DESC LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Visit
	for rows.Next() {
		var v Visit
		var visitedAt string
		if err := rows.Scan(&v.ID, &v.IP, &v.Country, &v.City, &v.Region, &v.UserAgent, &v.Page, &visitedAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, visitedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing visited_at: %w", err)
		}
		v.VisitedAt = t
		results = append(results, v)
	}
	return results, rows.Err()
}

// VisitStats aggregates the visit log: total count, counts per page, and
// counts per UTC day over the trailing days window.
func (s *Store) VisitStats(days int) (VisitStats, error) {
	var stats VisitStats

	if err := s.db.QueryRow("SELECT COUNT(*) FROM visits").Scan(&stats.Total); err != nil {
		return VisitStats{}, fmt.Errorf("counting visits: %w", err)
	}

	pageRows, err := s.db.Query(`
		SELECT page, COUNT(*) AS n FROM visits
		GROUP BY page ORDER BY n DESC, page ASC`)
	if err != nil {
		return VisitStats{}, fmt.Errorf("grouping by page: %w", err)
	}
	defer pageRows.Close()
	for pageRows.Next() {
		var pc PageCount
		if err := pageRows.Scan(&pc.Page, &pc.Count); err != nil {
			return VisitStats{}, err
		}
		stats.ByPage = append(stats.ByPage, pc)
	}
	if err := pageRows.Err(); err != nil {
		return VisitStats{}, err
	}

	since := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	dayRows, err := s.db.Query(`
		SELECT substr(visited_at, 1, 10) AS day, COUNT(*) FROM visits
		WHERE visited_at >= ? GROUP BY day ORDER BY day ASC`, since)
	if err != nil {
		return VisitStats{}, fmt.Errorf("grouping by day: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var dc DayCount
		if err := dayRows.Scan(&dc.Day, &dc.Count); err != nil {
			return VisitStats{}, err
		}
		stats.ByDay = append(stats.ByDay, dc)
	}
	return stats, dayRows.Err()
}

// DeleteVisitsBefore removes visit records older than cutoff and reports how
// many were deleted. Used by the retention pruner.
func (s *Store) DeleteVisitsBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM visits WHERE visited_at < ?`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// --- Contact messages ---

func (s *Store) SaveContactMessage(m ContactMessage) error {
	_, err := s.db.Exec(`
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Message, m.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) ListContactMessages(limit, offset int) ([]ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, message, created_at
		FROM contact_messages ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ContactMessage
	for rows.Next() {
		var m ContactMessage
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		m.CreatedAt = t
		results = append(results, m)
	}
	return results, rows.Err()
}

// --- Suggestions ---

func (s *Store) SaveSuggestion(sg Suggestion) error {
	_, err := s.db.Exec(`
		INSERT INTO suggestions (id, message, created_at) VALUES (?, ?, ?)`,
		sg.ID, sg.Message, sg.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) ListSuggestions(limit, offset int) ([]Suggestion, error) {
	rows, err := s.db.Query(`
		SELECT id, message, created_at
		FROM suggestions ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Suggestion
	for rows.Next() {
		var sg Suggestion
		var createdAt string
		if err := rows.Scan(&sg.ID, &sg.Message, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		sg.CreatedAt = t
		results = append(results, sg)
	}
	return results, rows.Err()
}

// --- Chat log ---

func (s *Store) SaveChatEntry(e ChatEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO chat_log (id, message, intent, reply, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Message, e.Intent, e.Reply, e.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) ListChatEntries(limit, offset int) ([]ChatEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, message, intent, reply, created_at
		FROM chat_log ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ChatEntry
	for rows.Next() {
		var e ChatEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Message, &e.Intent, &e.Reply, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		e.CreatedAt = t
		results = append(results, e)
	}
	return results, rows.Err()
}
