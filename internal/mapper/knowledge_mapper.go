package mapper

import (
	"encoding/json"
	"time"

	"consultly-be/internal/entity"
	"consultly-be/internal/model"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToDocumentEntity(d *model.KnowledgeDocument) *entity.KnowledgeDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeDocument{
		Id:        d.Id,
		Title:     d.Title,
		Slug:      d.Slug,
		Content:   d.Content,
		Category:  d.Category,
		Tags:      jsonToStrings(d.Tags),
		Source:    d.Source,
		OwnerId:   d.OwnerId,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *KnowledgeMapper) ToDocumentModel(d *entity.KnowledgeDocument) *model.KnowledgeDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.KnowledgeDocument{
		Id:        d.Id,
		Title:     d.Title,
		Slug:      d.Slug,
		Content:   d.Content,
		Category:  d.Category,
		Tags:      toJSON(d.Tags),
		Source:    d.Source,
		OwnerId:   d.OwnerId,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *KnowledgeMapper) ToDocumentEntities(docs []*model.KnowledgeDocument) []*entity.KnowledgeDocument {
	entities := make([]*entity.KnowledgeDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToDocumentEntity(d)
	}
	return entities
}

func (m *KnowledgeMapper) ToChunkEntity(c *model.KnowledgeChunk) *entity.KnowledgeChunk {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeChunk{
		Id:              c.Id,
		DocumentId:      c.DocumentId,
		Content:         c.Content,
		WordCount:       c.WordCount,
		Keywords:        jsonToStrings(c.Keywords),
		Category:        c.Category,
		Confidence:      c.Confidence,
		Section:         c.Section,
		RelatedChunkIds: jsonToUUIDs(c.RelatedChunkIds),
		Embedding:       c.Embedding.Slice(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *KnowledgeMapper) ToChunkModel(c *entity.KnowledgeChunk) *model.KnowledgeChunk {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.KnowledgeChunk{
		Id:              c.Id,
		DocumentId:      c.DocumentId,
		Content:         c.Content,
		WordCount:       c.WordCount,
		Keywords:        toJSON(c.Keywords),
		Category:        c.Category,
		Confidence:      c.Confidence,
		Section:         c.Section,
		RelatedChunkIds: toJSON(c.RelatedChunkIds),
		Embedding:       pgvector.NewVector(c.Embedding),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *KnowledgeMapper) ToChunkEntities(chunks []*model.KnowledgeChunk) []*entity.KnowledgeChunk {
	entities := make([]*entity.KnowledgeChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToChunkEntity(c)
	}
	return entities
}

func jsonToUUIDs(j datatypes.JSON) []uuid.UUID {
	if len(j) == 0 {
		return nil
	}
	var out []uuid.UUID
	if err := json.Unmarshal(j, &out); err != nil {
		return nil
	}
	return out
}
