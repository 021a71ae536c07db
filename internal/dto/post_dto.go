package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Excerpt  string   `json:"excerpt"`
	Slug     string   `json:"slug"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
	Featured bool     `json:"featured"`
}

type CreatePostResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type UpdatePostRequest struct {
	Id       uuid.UUID
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Excerpt  string   `json:"excerpt"`
	Slug     string   `json:"slug"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
	Featured bool     `json:"featured"`
}

type UpdatePostResponse struct {
	Id uuid.UUID `json:"id"`
}

type PostResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Content   string     `json:"content,omitempty"`
	Excerpt   string     `json:"excerpt"`
	Category  string     `json:"category,omitempty"`
	Tags      []string   `json:"tags"`
	Status    string     `json:"status"`
	Featured  bool       `json:"featured"`
	AuthorId  string     `json:"author_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListPostsQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Tags     string `query:"tags"`
	Status   string `query:"status"`
}
