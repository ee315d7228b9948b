package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/reepower84-png/rocket-call-realestate/internal/apperr"
	"github.com/reepower84-png/rocket-call-realestate/internal/model"
)

func newTestFileStore(t *testing.T) *File {
	t.Helper()
	return NewFile(filepath.Join(t.TempDir(), "data", "inquiries.json"))
}

func TestFileMissingFileReadsEmpty(t *testing.T) {
	st := newTestFileStore(t)

	inquiries, err := st.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(inquiries) != 0 {
		t.Errorf("expected empty list for missing file, got %d", len(inquiries))
	}
}

func TestFileCreateAndList(t *testing.T) {
	st := newTestFileStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	if err := st.Create(ctx, testInquiry("INQ-1", now.Add(-time.Minute))); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := st.Create(ctx, testInquiry("INQ-2", now)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	inquiries, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(inquiries) != 2 {
		t.Fatalf("expected 2 inquiries, got %d", len(inquiries))
	}
	if inquiries[0].ID != "INQ-2" || inquiries[1].ID != "INQ-1" {
		t.Errorf("expected newest-first order [INQ-2 INQ-1], got [%s %s]", inquiries[0].ID, inquiries[1].ID)
	}
}

func TestFilePersistedShape(t *testing.T) {
	st := newTestFileStore(t)
	ctx := context.Background()

	if err := st.Create(ctx, testInquiry("INQ-1", time.Now().UTC())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	data, err := os.ReadFile(st.path)
	if err != nil {
		t.Fatalf("reading data file: %v", err)
	}

	// Pretty-printed JSON array of records.
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("expected a JSON array, got error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	for _, key := range []string{"id", "name", "phone", "message", "createdAt", "status"} {
		if _, ok := records[0][key]; !ok {
			t.Errorf("expected persisted record to have key %q", key)
		}
	}
	if data[0] != '[' || data[1] != '\n' {
		t.Error("expected pretty-printed output")
	}
}

func TestFileUpdateStatusAndDelete(t *testing.T) {
	st := newTestFileStore(t)
	ctx := context.Background()

	if err := st.Create(ctx, testInquiry("INQ-1", time.Now().UTC())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := st.UpdateStatus(ctx, "INQ-1", model.StatusContacted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != model.StatusContacted {
		t.Errorf("expected status 'contacted', got %q", updated.Status)
	}

	if _, err := st.UpdateStatus(ctx, "INQ-missing", model.StatusContacted); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}

	if err := st.Delete(ctx, "INQ-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := st.Delete(ctx, "INQ-1"); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error on second delete, got %v", err)
	}
}

func TestFileConcurrentCreates(t *testing.T) {
	st := newTestFileStore(t)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inq := testInquiry(fmt.Sprintf("INQ-%d", i), time.Now().UTC())
			if err := st.Create(ctx, inq); err != nil {
				t.Errorf("Create: %v", err)
			}
		}(i)
	}
	wg.Wait()

	inquiries, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(inquiries) != writers {
		t.Errorf("expected %d inquiries after concurrent creates, got %d", writers, len(inquiries))
	}
}
