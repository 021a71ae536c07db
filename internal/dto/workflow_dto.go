package dto

import (
	"time"

	"consultly-be/internal/entity"

	"github.com/google/uuid"
)

type CreateWorkflowRequest struct {
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description"`
	Steps       []entity.WorkflowStep `json:"steps"`
	Tags        []string              `json:"tags"`
}

type CreateWorkflowResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateWorkflowRequest struct {
	Id          uuid.UUID
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description"`
	Steps       []entity.WorkflowStep `json:"steps"`
	Tags        []string              `json:"tags"`
}

type UpdateWorkflowResponse struct {
	Id uuid.UUID `json:"id"`
}

type WorkflowResponse struct {
	Id          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Steps       []entity.WorkflowStep `json:"steps"`
	Tags        []string              `json:"tags"`
	OwnerId     string                `json:"owner_id,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at"`
}

// WorkflowStepPromptResponse is the result of resolving one step's prompt
// reference. Found is false for dangling references; the prompt fields are
// then omitted.
type WorkflowStepPromptResponse struct {
	StepIndex int             `json:"step_index"`
	Found     bool            `json:"found"`
	Prompt    *PromptResponse `json:"prompt,omitempty"`
}

type ListWorkflowsQuery struct {
	Search string `query:"search"`
	Tags   string `query:"tags"`
}
