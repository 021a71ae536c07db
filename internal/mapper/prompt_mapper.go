package mapper

import (
	"time"

	"consultly-be/internal/entity"
	"consultly-be/internal/model"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.Prompt) *entity.Prompt {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Prompt{
		Id:        p.Id,
		Title:     p.Title,
		Body:      p.Body,
		Category:  p.Category,
		Tags:      jsonToStrings(p.Tags),
		Variables: jsonToStringMap(p.Variables),
		OwnerId:   p.OwnerId,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *PromptMapper) ToModel(p *entity.Prompt) *model.Prompt {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Prompt{
		Id:        p.Id,
		Title:     p.Title,
		Body:      p.Body,
		Category:  p.Category,
		Tags:      toJSON(p.Tags),
		Variables: toJSON(p.Variables),
		OwnerId:   p.OwnerId,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *PromptMapper) ToEntities(prompts []*model.Prompt) []*entity.Prompt {
	entities := make([]*entity.Prompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
