package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/reepower84-png/rocket-call-realestate/internal/apperr"
	"github.com/reepower84-png/rocket-call-realestate/internal/model"
)

// File stores the whole inquiry collection as a pretty-printed JSON
// array, newest first, rewriting the file on every mutation. A mutex
// serializes every read-modify-rewrite cycle, so the store is safe for
// concurrent use within a single process only.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at the given path. The file and
// its parent directory are created on first write.
func NewFile(path string) *File {
	return &File{path: path}
}

// Create prepends a new inquiry to the collection.
func (f *File) Create(ctx context.Context, inq *model.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	inquiries, err := f.load()
	if err != nil {
		return apperr.Storage("creating inquiry", err)
	}

	inquiries = append([]model.Inquiry{*inq}, inquiries...)

	if err := f.save(inquiries); err != nil {
		return apperr.Storage("creating inquiry", err)
	}
	return nil
}

// List returns all inquiries. The file is kept newest-first, so no
// sorting is needed.
func (f *File) List(ctx context.Context) ([]model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	inquiries, err := f.load()
	if err != nil {
		return nil, apperr.Storage("listing inquiries", err)
	}
	return inquiries, nil
}

// UpdateStatus sets the status of an inquiry and returns the updated record.
func (f *File) UpdateStatus(ctx context.Context, id, status string) (*model.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	inquiries, err := f.load()
	if err != nil {
		return nil, apperr.Storage("updating inquiry", err)
	}

	for i := range inquiries {
		if inquiries[i].ID == id {
			inquiries[i].Status = status
			if err := f.save(inquiries); err != nil {
				return nil, apperr.Storage("updating inquiry", err)
			}
			updated := inquiries[i]
			return &updated, nil
		}
	}
	return nil, apperr.NotFound("inquiry not found")
}

// Delete permanently removes an inquiry.
func (f *File) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	inquiries, err := f.load()
	if err != nil {
		return apperr.Storage("deleting inquiry", err)
	}

	for i := range inquiries {
		if inquiries[i].ID == id {
			inquiries = append(inquiries[:i], inquiries[i+1:]...)
			if err := f.save(inquiries); err != nil {
				return apperr.Storage("deleting inquiry", err)
			}
			return nil
		}
	}
	return apperr.NotFound("inquiry not found")
}

// load reads the whole collection. A missing file reads as empty.
func (f *File) load() ([]model.Inquiry, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return []model.Inquiry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var inquiries []model.Inquiry
	if err := json.Unmarshal(data, &inquiries); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return inquiries, nil
}

// save rewrites the whole collection through a temp file and rename,
// so a crash mid-write never leaves a truncated data file.
func (f *File) save(inquiries []model.Inquiry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(inquiries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding inquiries: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}
