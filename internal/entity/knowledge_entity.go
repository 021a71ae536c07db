package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeDocument is a source document in the knowledge base. Its body is
// split into KnowledgeChunks at ingestion time; document and chunks are
// written in a single transaction so they appear together or not at all.
type KnowledgeDocument struct {
	Id        uuid.UUID
	Title     string
	Slug      string
	Content   string
	Category  string
	Tags      []string
	Source    string
	OwnerId   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (d *KnowledgeDocument) SearchTitle() string  { return d.Title }
func (d *KnowledgeDocument) SearchBody() string   { return d.Content }
func (d *KnowledgeDocument) SearchTags() []string { return d.Tags }

// KnowledgeChunk is a retrievable fragment of a document. The embedding
// vector is stored for future use; no vector search runs over it here.
// RelatedChunkIds are loose references resolved by explicit lookup.
type KnowledgeChunk struct {
	Id              uuid.UUID
	DocumentId      uuid.UUID
	Content         string
	WordCount       int
	Keywords        []string
	Category        string
	Confidence      float64
	Section         int
	RelatedChunkIds []uuid.UUID
	Embedding       []float32
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func (c *KnowledgeChunk) SearchTitle() string  { return "" }
func (c *KnowledgeChunk) SearchBody() string   { return c.Content }
func (c *KnowledgeChunk) SearchTags() []string { return c.Keywords }
