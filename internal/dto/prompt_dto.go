package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePromptRequest struct {
	Title     string   `json:"title" validate:"required"`
	Body      string   `json:"body" validate:"required"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Variables string   `json:"variables"` // free-form JSON object
}

type CreatePromptResponse struct {
	Id       uuid.UUID `json:"id"`
	Warnings []string  `json:"warnings,omitempty"`
}

type UpdatePromptRequest struct {
	Id        uuid.UUID
	Title     string   `json:"title" validate:"required"`
	Body      string   `json:"body" validate:"required"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Variables string   `json:"variables"`
}

type UpdatePromptResponse struct {
	Id       uuid.UUID `json:"id"`
	Warnings []string  `json:"warnings,omitempty"`
}

type PromptResponse struct {
	Id        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Category  string            `json:"category,omitempty"`
	Tags      []string          `json:"tags"`
	Variables map[string]string `json:"variables,omitempty"`
	OwnerId   string            `json:"owner_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

type ListPromptsQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Tags     string `query:"tags"` // comma-separated, all must match
}
