package notify

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the severity a notification is shown with.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notification is one user-facing toast.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a notification with a fresh ID stamped with the current time.
func New(kind Kind, msg string) Notification {
	return Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: time.Now(),
	}
}
