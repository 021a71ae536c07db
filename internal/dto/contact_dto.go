package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message" validate:"required"`
}

type SubmitContactResponse struct {
	Id uuid.UUID `json:"id"`
}

type ContactSubmissionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Company   string     `json:"company,omitempty"`
	Service   string     `json:"service,omitempty"`
	Message   string     `json:"message"`
	Handled   bool       `json:"handled"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
