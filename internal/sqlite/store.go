// Package sqlite implements the SQLite persistence layer for salesdesk.
// The store owns a single database handle for its whole lifetime; callers
// open it once, run operations against it, and close it on shutdown.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

// Store persists contacts, deals, and activities in a SQLite database.
type Store struct {
	mu   sync.RWMutex
	open bool
	db   *sql.DB
	path string
}

// NewStore creates an unopened store. Call Open with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Open connects to the database at cfg.DBPath, creating the file and parent
// directory if needed, and initializes the schema. Schema creation is
// idempotent; opening an already-populated database preserves its contents.
// Returns ErrAlreadyOpen if the store is already open.
func (s *Store) Open(cfg types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	s.db = db
	s.path = cfg.DBPath
	s.open = true
	return nil
}

// Close releases the database handle. Idempotent: closing a closed store
// succeeds. After Close, all operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	s.open = false
	return nil
}

// conn returns the database handle, or ErrStoreClosed when the store is not
// open. Every operation goes through conn.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// timeLayout is the persisted timestamp form. The fraction is fixed-width so
// TEXT comparison in ORDER BY matches chronological order, and nanosecond
// precision keeps the created_at/updated_at relation meaningful for mutations
// landing within the same second.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime renders a timestamp in its persisted UTC form.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a persisted timestamp. Parsing accepts any RFC 3339
// fraction width, not just the fixed form written by formatTime.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// nullableTime renders an optional timestamp as a NULL-able column value.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure on the given column. The driver exposes constraint failures only
// through the error text.
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
