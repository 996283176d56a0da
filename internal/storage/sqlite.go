// Package storage persists generation sessions so documents and their fix
// ledgers can be inspected or re-rendered later. The core pipeline never
// touches storage; only the CLI does.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"siteforge/internal/sitespec"
)

// SessionRecord is one stored generation run.
type SessionRecord struct {
	SessionID    string
	SiteType     string
	Goal         string
	BusinessName string
	Method       string
	Document     *sitespec.SiteIntentDocument
	Fixes        []sitespec.AutoFix
	WarningCount int
	CreatedAt    time.Time
}

// SQLiteStore stores sessions in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS sessions (
		session_id    TEXT PRIMARY KEY,
		site_type     TEXT NOT NULL,
		goal          TEXT NOT NULL,
		business_name TEXT NOT NULL,
		method        TEXT NOT NULL,
		document_json TEXT NOT NULL,
		fixes_json    TEXT NOT NULL DEFAULT '[]',
		warning_count INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);
	`)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveSession inserts or replaces a session row.
func (s *SQLiteStore) SaveSession(rec SessionRecord) error {
	docJSON, err := json.Marshal(rec.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	fixes := rec.Fixes
	if fixes == nil {
		fixes = []sitespec.AutoFix{}
	}
	fixJSON, err := json.Marshal(fixes)
	if err != nil {
		return fmt.Errorf("marshal fixes: %w", err)
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err = s.db.Exec(`
	INSERT OR REPLACE INTO sessions
		(session_id, site_type, goal, business_name, method, document_json, fixes_json, warning_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.SiteType, rec.Goal, rec.BusinessName, rec.Method,
		string(docJSON), string(fixJSON), rec.WarningCount, created.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.SessionID, err)
	}
	return nil
}

// GetSession loads one session by id.
func (s *SQLiteStore) GetSession(sessionID string) (*SessionRecord, error) {
	row := s.db.QueryRow(`
	SELECT session_id, site_type, goal, business_name, method, document_json, fixes_json, warning_count, created_at
	FROM sessions WHERE session_id = ?`, sessionID)
	rec, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *SQLiteStore) ListSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
	SELECT session_id, site_type, goal, business_name, method, document_json, fixes_json, warning_count, created_at
	FROM sessions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SessionRecord, 0, limit)
	for rows.Next() {
		rec, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func scanSession(scan func(dest ...any) error) (*SessionRecord, error) {
	var rec SessionRecord
	var docJSON, fixJSON, created string
	if err := scan(&rec.SessionID, &rec.SiteType, &rec.Goal, &rec.BusinessName, &rec.Method,
		&docJSON, &fixJSON, &rec.WarningCount, &created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(docJSON), &rec.Document); err != nil {
		return nil, fmt.Errorf("decode document for %s: %w", rec.SessionID, err)
	}
	if err := json.Unmarshal([]byte(fixJSON), &rec.Fixes); err != nil {
		return nil, fmt.Errorf("decode fixes for %s: %w", rec.SessionID, err)
	}
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		rec.CreatedAt = t
	}
	return &rec, nil
}
