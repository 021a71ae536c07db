package normalizer

import (
	"testing"

	"consultly-be/internal/entity"
	"consultly-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestPromptRequiresTitleAndBody(t *testing.T) {
	_, _, err := Prompt(PromptInput{Body: "body"})
	assert.True(t, apperror.IsValidation(err))

	_, _, err = Prompt(PromptInput{Title: "title"})
	assert.True(t, apperror.IsValidation(err))

	_, _, err = Prompt(PromptInput{Title: "   ", Body: "body"})
	assert.True(t, apperror.IsValidation(err), "whitespace-only title is empty")
}

func TestPromptMalformedVariablesIsWarningNotError(t *testing.T) {
	prompt, warnings, err := Prompt(PromptInput{
		Title:     "Summarizer",
		Body:      "Summarize {{input}}",
		Variables: "{not json",
	})

	assert.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Nil(t, prompt.Variables)
}

func TestPromptParsesVariables(t *testing.T) {
	prompt, warnings, err := Prompt(PromptInput{
		Title:     "Summarizer",
		Body:      "Summarize {{input}}",
		Variables: `{"input": "the text to summarize"}`,
	})

	assert.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "the text to summarize", prompt.Variables["input"])
}

func TestPostDerivesSlugAndExcerpt(t *testing.T) {
	post, err := Post(PostInput{
		Title:   "Why We Use Go",
		Content: "Because it compiles fast.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "why-we-use-go", post.Slug)
	assert.Equal(t, "Because it compiles fast.", post.Excerpt)
	assert.Equal(t, entity.PostStatusDraft, post.Status)
}

func TestPostKeepsExplicitSlugAndExcerpt(t *testing.T) {
	post, err := Post(PostInput{
		Title:   "Why We Use Go",
		Content: "Long body",
		Slug:    "custom-slug",
		Excerpt: "Hand-written excerpt",
	})

	assert.NoError(t, err)
	assert.Equal(t, "custom-slug", post.Slug)
	assert.Equal(t, "Hand-written excerpt", post.Excerpt)
}

func TestPostDefaultStatusApplied(t *testing.T) {
	post, err := Post(PostInput{
		Title:         "Ingested",
		Content:       "From a file",
		DefaultStatus: entity.PostStatusPublished,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.PostStatusPublished, post.Status)
}

func TestPostRejectsUnknownStatus(t *testing.T) {
	_, err := Post(PostInput{Title: "T", Content: "C", Status: "live"})
	assert.True(t, apperror.IsValidation(err))
}

func TestWorkflowDefaultsStepType(t *testing.T) {
	wf, err := Workflow(WorkflowInput{
		Title: "Onboarding",
		Steps: []entity.WorkflowStep{{Name: "Kickoff call"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StepTypeAction, wf.Steps[0].Type)
}

func TestWorkflowRejectsNamelessStep(t *testing.T) {
	_, err := Workflow(WorkflowInput{
		Title: "Onboarding",
		Steps: []entity.WorkflowStep{{Name: "  "}},
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestWorkflowRejectsUnknownStepType(t *testing.T) {
	_, err := Workflow(WorkflowInput{
		Title: "Onboarding",
		Steps: []entity.WorkflowStep{{Name: "Step", Type: "magic"}},
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestKnowledgeDerivesSlug(t *testing.T) {
	doc, err := Knowledge(KnowledgeInput{
		Title:   "Consulting Playbook",
		Content: "The playbook content.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "consulting-playbook", doc.Slug)
}

func TestContactValidation(t *testing.T) {
	valid := ContactInput{Name: "Dana", Email: "dana@example.com", Message: "Hi"}

	_, err := Contact(valid)
	assert.NoError(t, err)

	missing := valid
	missing.Name = ""
	_, err = Contact(missing)
	assert.True(t, apperror.IsValidation(err))

	badMail := valid
	badMail.Email = "not-an-address"
	_, err = Contact(badMail)
	assert.True(t, apperror.IsValidation(err))

	noMsg := valid
	noMsg.Message = "   "
	_, err = Contact(noMsg)
	assert.True(t, apperror.IsValidation(err))
}
