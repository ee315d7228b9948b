package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/reepower84-png/rocket-call-realestate/internal/apperr"
	"github.com/reepower84-png/rocket-call-realestate/internal/model"
)

// timeLayout is the fixed-width UTC timestamp format used in the
// created_at column, so lexicographic order matches chronological order.
const timeLayout = "2006-01-02 15:04:05.000000000"

// SQLite stores inquiries in a SQLite table, one statement per operation.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed store over an open database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Create persists a new inquiry.
func (s *SQLite) Create(ctx context.Context, inq *model.Inquiry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiries (id, name, phone, message, created_at, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.Name, inq.Phone, inq.Message, inq.CreatedAt.UTC().Format(timeLayout), inq.Status,
	)
	if err != nil {
		return apperr.Storage("creating inquiry", fmt.Errorf("inserting inquiry: %w", err))
	}
	return nil
}

// List returns all inquiries ordered newest first.
func (s *SQLite) List(ctx context.Context) ([]model.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, message, created_at, status
		 FROM inquiries ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, apperr.Storage("listing inquiries", fmt.Errorf("querying inquiries: %w", err))
	}
	defer rows.Close()

	var inquiries []model.Inquiry
	for rows.Next() {
		var inq model.Inquiry
		var createdAt string
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Phone, &inq.Message, &createdAt, &inq.Status); err != nil {
			return nil, apperr.Storage("listing inquiries", fmt.Errorf("scanning inquiry: %w", err))
		}
		inq.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, apperr.Storage("listing inquiries", err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("listing inquiries", fmt.Errorf("reading inquiries: %w", err))
	}
	return inquiries, nil
}

// UpdateStatus sets the status of an inquiry and returns the updated record.
func (s *SQLite) UpdateStatus(ctx context.Context, id, status string) (*model.Inquiry, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE inquiries SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return nil, apperr.Storage("updating inquiry", fmt.Errorf("updating inquiry status: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, apperr.Storage("updating inquiry", fmt.Errorf("checking update result: %w", err))
	}
	if affected == 0 {
		return nil, apperr.NotFound("inquiry not found")
	}

	return s.get(ctx, id)
}

// Delete permanently removes an inquiry.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		return apperr.Storage("deleting inquiry", fmt.Errorf("deleting inquiry: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("deleting inquiry", fmt.Errorf("checking delete result: %w", err))
	}
	if affected == 0 {
		return apperr.NotFound("inquiry not found")
	}
	return nil
}

// get returns an inquiry by ID.
func (s *SQLite) get(ctx context.Context, id string) (*model.Inquiry, error) {
	inq := &model.Inquiry{}
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone, message, created_at, status
		 FROM inquiries WHERE id = ?`, id,
	).Scan(&inq.ID, &inq.Name, &inq.Phone, &inq.Message, &createdAt, &inq.Status)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("inquiry not found")
	}
	if err != nil {
		return nil, apperr.Storage("getting inquiry", fmt.Errorf("getting inquiry: %w", err))
	}
	inq.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, apperr.Storage("getting inquiry", err)
	}
	return inq, nil
}

// parseTime parses a created_at column value.
func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing created_at %q: %w", s, err)
	}
	return t, nil
}
