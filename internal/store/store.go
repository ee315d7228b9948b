package store

import (
	"context"

	"github.com/reepower84-png/rocket-call-realestate/internal/model"
)

// Store is the persistence boundary for inquiries. Two implementations
// exist: SQLite (the default) and a flat JSON file. Both return
// apperr.NotFound for unknown IDs and apperr.Storage for backend
// failures.
type Store interface {
	// Create persists a fully-populated inquiry.
	Create(ctx context.Context, inq *model.Inquiry) error

	// List returns all inquiries, newest first.
	List(ctx context.Context) ([]model.Inquiry, error)

	// UpdateStatus sets the status of the inquiry with the given ID and
	// returns the updated record.
	UpdateStatus(ctx context.Context, id, status string) (*model.Inquiry, error)

	// Delete permanently removes the inquiry with the given ID.
	Delete(ctx context.Context, id string) error
}
