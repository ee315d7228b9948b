package model

import "time"

// Inquiry represents a consultation request submitted through the landing page.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}

// Inquiry statuses.
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the known inquiry statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusContacted, StatusCompleted:
		return true
	}
	return false
}
