package entity

import (
	"time"

	"github.com/google/uuid"
)

// StepType is the closed set of workflow step kinds.
type StepType string

const (
	StepTypeAction      StepType = "action"
	StepTypeToolUsage   StepType = "tool-usage"
	StepTypeDecision    StepType = "decision-point"
	StepTypeSubWorkflow StepType = "sub-workflow"
)

func (t StepType) Valid() bool {
	switch t {
	case StepTypeAction, StepTypeToolUsage, StepTypeDecision, StepTypeSubWorkflow:
		return true
	}
	return false
}

// WorkflowStep is one ordered step of a workflow. PromptId and ToolId are
// loose references: nothing guarantees the target still exists, so consumers
// resolve them through an explicit lookup and handle the not-found case.
type WorkflowStep struct {
	Name        string     `json:"name"`
	Type        StepType   `json:"type"`
	Description string     `json:"description,omitempty"`
	PromptId    *uuid.UUID `json:"prompt_id,omitempty"`
	ToolId      string     `json:"tool_id,omitempty"`
	// DependsOn lists indexes of prerequisite steps. No cycle checking is
	// performed over these.
	DependsOn []int `json:"depends_on,omitempty"`
}

type Workflow struct {
	Id          uuid.UUID
	Title       string
	Description string
	Steps       []WorkflowStep
	Tags        []string
	OwnerId     string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (w *Workflow) SearchTitle() string  { return w.Title }
func (w *Workflow) SearchBody() string   { return w.Description }
func (w *Workflow) SearchTags() []string { return w.Tags }
