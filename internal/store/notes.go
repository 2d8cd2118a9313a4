package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	operr "github.com/abdul-hamid-achik/operant/internal/errors"
)

// CreateNote stores a new note and returns its id.
func (s *Store) CreateNote(ctx context.Context, title, content string) (int64, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, content, now, now)
	if err != nil {
		return 0, operr.StoreFailed("create_note", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, operr.StoreFailed("create_note", err)
	}
	return id, nil
}

// GetNote fetches one note by id.
func (s *Store) GetNote(ctx context.Context, id int64) (*Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`, id)

	var n Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("note not found: %d", id)
	}
	if err != nil {
		return nil, operr.StoreFailed("get_note", err)
	}
	return &n, nil
}

// ListNotes returns all notes, newest first.
func (s *Store) ListNotes(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes ORDER BY id DESC`)
	if err != nil {
		return nil, operr.StoreFailed("list_notes", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, operr.StoreFailed("list_notes", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// UpdateNote replaces a note's content.
func (s *Store) UpdateNote(ctx context.Context, id int64, content string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET content = ?, updated_at = ? WHERE id = ?`,
		content, time.Now().UTC(), id)
	if err != nil {
		return operr.StoreFailed("update_note", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note not found: %d", id)
	}
	return nil
}

// DeleteNote removes a note by id.
func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return operr.StoreFailed("delete_note", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note not found: %d", id)
	}
	return nil
}
