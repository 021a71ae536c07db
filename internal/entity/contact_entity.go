package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a contact/consultation form entry from the marketing
// site.
type ContactSubmission struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Company   string
	Service   string
	Message   string
	Handled   bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
