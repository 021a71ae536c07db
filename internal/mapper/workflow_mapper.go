package mapper

import (
	"encoding/json"
	"time"

	"consultly-be/internal/entity"
	"consultly-be/internal/model"

	"gorm.io/datatypes"
)

type WorkflowMapper struct{}

func NewWorkflowMapper() *WorkflowMapper {
	return &WorkflowMapper{}
}

func (m *WorkflowMapper) ToEntity(w *model.Workflow) *entity.Workflow {
	if w == nil {
		return nil
	}

	var updatedAt *time.Time
	if !w.UpdatedAt.IsZero() {
		t := w.UpdatedAt
		updatedAt = &t
	}

	return &entity.Workflow{
		Id:          w.Id,
		Title:       w.Title,
		Description: w.Description,
		Steps:       jsonToSteps(w.Steps),
		Tags:        jsonToStrings(w.Tags),
		OwnerId:     w.OwnerId,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *WorkflowMapper) ToModel(w *entity.Workflow) *model.Workflow {
	if w == nil {
		return nil
	}

	var updatedAt time.Time
	if w.UpdatedAt != nil {
		updatedAt = *w.UpdatedAt
	}

	return &model.Workflow{
		Id:          w.Id,
		Title:       w.Title,
		Description: w.Description,
		Steps:       toJSON(w.Steps),
		Tags:        toJSON(w.Tags),
		OwnerId:     w.OwnerId,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *WorkflowMapper) ToEntities(workflows []*model.Workflow) []*entity.Workflow {
	entities := make([]*entity.Workflow, len(workflows))
	for i, w := range workflows {
		entities[i] = m.ToEntity(w)
	}
	return entities
}

func jsonToSteps(j datatypes.JSON) []entity.WorkflowStep {
	if len(j) == 0 {
		return []entity.WorkflowStep{}
	}
	var steps []entity.WorkflowStep
	if err := json.Unmarshal(j, &steps); err != nil {
		return []entity.WorkflowStep{}
	}
	return steps
}
