package dto

import (
	"time"

	"github.com/google/uuid"
)

type IngestKnowledgeRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Slug     string   `json:"slug"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Source   string   `json:"source"`
}

type IngestKnowledgeResponse struct {
	Id         uuid.UUID `json:"id"`
	Slug       string    `json:"slug"`
	ChunkCount int       `json:"chunk_count"`
}

type UpdateKnowledgeRequest struct {
	Id       uuid.UUID
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Source   string   `json:"source"`
}

type UpdateKnowledgeResponse struct {
	Id uuid.UUID `json:"id"`
}

type KnowledgeDocumentResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Content   string     `json:"content,omitempty"`
	Category  string     `json:"category,omitempty"`
	Tags      []string   `json:"tags"`
	Source    string     `json:"source,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type KnowledgeChunkResponse struct {
	Id         uuid.UUID `json:"id"`
	DocumentId uuid.UUID `json:"document_id"`
	Content    string    `json:"content"`
	WordCount  int       `json:"word_count"`
	Keywords   []string  `json:"keywords"`
	Category   string    `json:"category,omitempty"`
	Confidence float64   `json:"confidence"`
	Section    int       `json:"section"`
}

type SearchKnowledgeQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Tags     string `query:"tags"`
}

// ReindexKnowledgeMessage rides the in-process pubsub topic from the
// knowledge service to the indexer.
type ReindexKnowledgeMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
