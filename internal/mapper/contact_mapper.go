package mapper

import (
	"time"

	"consultly-be/internal/entity"
	"consultly-be/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.ContactSubmission) *entity.ContactSubmission {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		Service:   c.Service,
		Message:   c.Message,
		Handled:   c.Handled,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ContactMapper) ToModel(c *entity.ContactSubmission) *model.ContactSubmission {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		Service:   c.Service,
		Message:   c.Message,
		Handled:   c.Handled,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ContactMapper) ToEntities(subs []*model.ContactSubmission) []*entity.ContactSubmission {
	entities := make([]*entity.ContactSubmission, len(subs))
	for i, c := range subs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
