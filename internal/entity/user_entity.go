package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account. The site has no public registration; accounts
// are seeded or created through Google sign-in.
type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
