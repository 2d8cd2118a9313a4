// Package store implements the persistence collaborator: an opaque
// record store over SQLite holding action records, short-term conversation
// history, process status, and notes.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	operr "github.com/abdul-hamid-achik/operant/internal/errors"
	"github.com/abdul-hamid-achik/operant/internal/logging"
)

// ActionRecord is one persisted action: the proposal that produced it and
// the result it yielded.
type ActionRecord struct {
	ID        string
	SessionID string
	Thought   string
	Plan      string
	Command   string
	Result    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one short-term history entry.
type Message struct {
	Role      string
	Content   string
	SessionID string
	CreatedAt time.Time
}

// Note is one stored note.
type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the SQLite-backed persistence layer.
type Store struct {
	db  *sql.DB
	log *logging.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS action_records (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	thought    TEXT NOT NULL,
	plan       TEXT NOT NULL,
	command    TEXT NOT NULL,
	result     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_action_records_session ON action_records(session_id);

CREATE TABLE IF NOT EXISTS short_term (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS agent_status (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// Open opens (creating if necessary) the store at the given path.
func Open(path string, log *logging.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, operr.StoreFailed("open", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, operr.StoreFailed("open", err)
	}

	// The loop is the single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, operr.StoreFailed("migrate", err)
	}

	return &Store{db: db, log: log.WithPrefix("store")}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateActionRecord persists a provisional record for a proposed action and
// returns its identifier.
func (s *Store) CreateActionRecord(ctx context.Context, sessionID, thought, plan, command string) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO action_records (id, session_id, thought, plan, command, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, sessionID, thought, plan, command, now, now)
	if err != nil {
		return "", operr.StoreFailed("create_action_record", err)
	}
	s.log.Debug("action record created", logging.RecordID(id), logging.SessionID(sessionID))
	return id, nil
}

// UpdateActionRecord writes the result text against a provisional record.
func (s *Store) UpdateActionRecord(ctx context.Context, id, result string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE action_records SET result = ?, updated_at = ? WHERE id = ?`,
		result, time.Now().UTC(), id)
	if err != nil {
		return operr.StoreFailed("update_action_record", err)
	}
	return nil
}

// GetActionRecord fetches one record by id.
func (s *Store) GetActionRecord(ctx context.Context, id string) (*ActionRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, thought, plan, command, result, created_at, updated_at
		 FROM action_records WHERE id = ?`, id)

	var r ActionRecord
	err := row.Scan(&r.ID, &r.SessionID, &r.Thought, &r.Plan, &r.Command, &r.Result, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("action record not found: %s", id)
	}
	if err != nil {
		return nil, operr.StoreFailed("get_action_record", err)
	}
	return &r, nil
}

// ListActionRecords returns all records for a session, oldest first.
func (s *Store) ListActionRecords(ctx context.Context, sessionID string) ([]ActionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, thought, plan, command, result, created_at, updated_at
		 FROM action_records WHERE session_id = ? ORDER BY created_at ASC`, sessionID)
	if err != nil {
		return nil, operr.StoreFailed("list_action_records", err)
	}
	defer rows.Close()

	var out []ActionRecord
	for rows.Next() {
		var r ActionRecord
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Thought, &r.Plan, &r.Command, &r.Result, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, operr.StoreFailed("list_action_records", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AppendShortTermMessage appends one entry to the rolling short-term history.
func (s *Store) AppendShortTermMessage(ctx context.Context, role, content, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO short_term (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, role, content, time.Now().UTC())
	if err != nil {
		return operr.StoreFailed("append_short_term", err)
	}
	return nil
}

// ShortTermHistory returns up to limit most recent entries, oldest first.
// limit <= 0 returns everything.
func (s *Store) ShortTermHistory(ctx context.Context, limit int) ([]Message, error) {
	query := `SELECT role, content, session_id, created_at FROM short_term ORDER BY id ASC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		query = `SELECT role, content, session_id, created_at FROM
		         (SELECT id, role, content, session_id, created_at FROM short_term ORDER BY id DESC LIMIT ?)
		         ORDER BY id ASC`
		rows, err = s.db.QueryContext(ctx, query, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, operr.StoreFailed("short_term_history", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Role, &m.Content, &m.SessionID, &m.CreatedAt); err != nil {
			return nil, operr.StoreFailed("short_term_history", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ClearShortTermHistory deletes all short-term entries.
func (s *Store) ClearShortTermHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM short_term`)
	if err != nil {
		return operr.StoreFailed("clear_short_term", err)
	}
	s.log.Debug("short-term history cleared")
	return nil
}

// SetActiveStatus records whether an agent session is currently running.
func (s *Store) SetActiveStatus(ctx context.Context, active bool) error {
	value := "inactive"
	if active {
		value = "active"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO agent_status (key, value, updated_at) VALUES ('agent', ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		value, time.Now().UTC())
	if err != nil {
		return operr.StoreFailed("set_active_status", err)
	}
	return nil
}

// ActiveStatus reports the recorded agent status. Defaults to inactive when
// never set.
func (s *Store) ActiveStatus(ctx context.Context) (bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM agent_status WHERE key = 'agent'`).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, operr.StoreFailed("active_status", err)
	}
	return value == "active", nil
}
