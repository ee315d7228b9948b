package inquiry

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reepower84-png/rocket-call-realestate/internal/apperr"
	"github.com/reepower84-png/rocket-call-realestate/internal/metrics"
	"github.com/reepower84-png/rocket-call-realestate/internal/model"
	"github.com/reepower84-png/rocket-call-realestate/internal/notify"
	"github.com/reepower84-png/rocket-call-realestate/internal/store"
)

// phonePattern matches Korean mobile numbers, applied after stripping hyphens.
var phonePattern = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

// Service implements the inquiry lifecycle: validation, identity
// assignment, persistence, and the best-effort admin notification.
type Service struct {
	store    store.Store
	notifier notify.Notifier
}

// NewService creates an inquiry service. The notifier may be nil, in
// which case no notifications are sent.
func NewService(st store.Store, notifier notify.Notifier) *Service {
	return &Service{store: st, notifier: notifier}
}

// Create validates and persists a new inquiry, then fires the admin
// notification without waiting for it. The returned inquiry carries the
// assigned ID, timestamp, and initial pending status.
func (s *Service) Create(ctx context.Context, name, phone, message string) (*model.Inquiry, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	message = strings.TrimSpace(message)

	if name == "" || phone == "" {
		return nil, apperr.Validation("이름과 전화번호는 필수입니다.")
	}
	if !phonePattern.MatchString(strings.ReplaceAll(phone, "-", "")) {
		return nil, apperr.Validation("올바른 전화번호 형식이 아닙니다.")
	}

	inq := &model.Inquiry{
		ID:        newID(),
		Name:      name,
		Phone:     phone,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		Status:    model.StatusPending,
	}

	if err := s.store.Create(ctx, inq); err != nil {
		return nil, err
	}

	slog.Info("inquiry created", "id", inq.ID, "name", inq.Name)
	metrics.RecordInquirySubmission()

	// Notify the admin channel without blocking or failing the request.
	if s.notifier != nil {
		go func() {
			if err := s.notifier.Notify(context.Background(), inq.Name, inq.Phone, inq.Message); err != nil {
				slog.Error("failed to send inquiry notification", "id", inq.ID, "error", err)
				metrics.RecordNotification("error")
			} else {
				metrics.RecordNotification("ok")
			}
		}()
	}

	return inq, nil
}

// List returns all inquiries, newest first.
func (s *Service) List(ctx context.Context) ([]model.Inquiry, error) {
	return s.store.List(ctx)
}

// UpdateStatus sets the status of an inquiry. Any status may move to
// any other; only the value itself is validated.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*model.Inquiry, error) {
	if !model.ValidStatus(status) {
		return nil, apperr.Validation("유효하지 않은 상태값입니다.")
	}
	return s.store.UpdateStatus(ctx, id, status)
}

// Delete permanently removes an inquiry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// newID creates an inquiry ID of the form INQ-<unix millis>-<random suffix>.
func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("INQ-%d-%s", time.Now().UnixMilli(), suffix)
}
