package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// KnowledgeChunk rows are always written alongside their parent document in
// one transaction. The embedding column is populated when available but no
// vector query runs over it yet.
type KnowledgeChunk struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Content         string    `gorm:"type:text;not null"`
	WordCount       int
	Keywords        datatypes.JSON
	Category        string  `gorm:"type:varchar(100);index"`
	Confidence      float64 `gorm:"default:1"`
	Section         int
	RelatedChunkIds datatypes.JSON
	Embedding       pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (KnowledgeChunk) TableName() string {
	return "knowledge_chunks"
}
