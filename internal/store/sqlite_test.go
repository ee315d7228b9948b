package store

import (
	"context"
	"testing"
	"time"

	"github.com/reepower84-png/rocket-call-realestate/internal/apperr"
	"github.com/reepower84-png/rocket-call-realestate/internal/db"
	"github.com/reepower84-png/rocket-call-realestate/internal/model"
)

func testInquiry(id string, createdAt time.Time) *model.Inquiry {
	return &model.Inquiry{
		ID:        id,
		Name:      "홍길동",
		Phone:     "010-1234-5678",
		Message:   "상담 부탁드립니다.",
		CreatedAt: createdAt,
		Status:    model.StatusPending,
	}
}

func TestSQLiteCreateAndList(t *testing.T) {
	database := db.NewTestDB(t)
	st := NewSQLite(database)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
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
	if inquiries[0].Name != "홍길동" {
		t.Errorf("expected name to round-trip, got %q", inquiries[0].Name)
	}
}

func TestSQLiteUpdateStatus(t *testing.T) {
	database := db.NewTestDB(t)
	st := NewSQLite(database)
	ctx := context.Background()

	orig := testInquiry("INQ-1", time.Now().UTC().Truncate(time.Second))
	if err := st.Create(ctx, orig); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := st.UpdateStatus(ctx, "INQ-1", model.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("expected status 'completed', got %q", updated.Status)
	}

	// Only the status changes.
	if updated.Name != orig.Name || updated.Phone != orig.Phone || updated.Message != orig.Message {
		t.Errorf("expected other fields untouched, got %+v", updated)
	}
	if !updated.CreatedAt.Equal(orig.CreatedAt) {
		t.Errorf("expected created_at untouched, got %v want %v", updated.CreatedAt, orig.CreatedAt)
	}
}

func TestSQLiteUpdateStatusNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	st := NewSQLite(database)

	_, err := st.UpdateStatus(context.Background(), "INQ-missing", model.StatusContacted)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestSQLiteDelete(t *testing.T) {
	database := db.NewTestDB(t)
	st := NewSQLite(database)
	ctx := context.Background()

	if err := st.Create(ctx, testInquiry("INQ-1", time.Now().UTC())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := st.Delete(ctx, "INQ-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	inquiries, _ := st.List(ctx)
	if len(inquiries) != 0 {
		t.Errorf("expected 0 inquiries after delete, got %d", len(inquiries))
	}

	// Second delete on the same ID fails.
	if err := st.Delete(ctx, "INQ-1"); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error on second delete, got %v", err)
	}
}
