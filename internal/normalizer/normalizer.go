// Package normalizer shapes loosely-typed input (form fields, front matter,
// JSON payloads) into canonical records before anything is persisted. Pure
// computation: validation, trimming, defaulting and derived fields only.
package normalizer

import (
	"encoding/json"
	"strings"

	"consultly-be/internal/entity"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/pkg/content"
)

type PromptInput struct {
	Title    string
	Body     string
	Category string
	Tags     []string
	// Variables is free-form JSON from the author ({"name":"description"}).
	Variables string
	OwnerId   string
}

// Prompt validates and shapes a prompt. A malformed Variables payload is
// reported as a warning and the field dropped; it never aborts the record.
func Prompt(in PromptInput) (*entity.Prompt, []string, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, nil, apperror.Validation("title", "must not be empty")
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, nil, apperror.Validation("body", "must not be empty")
	}

	var warnings []string
	var variables map[string]string
	if v := strings.TrimSpace(in.Variables); v != "" {
		if err := json.Unmarshal([]byte(v), &variables); err != nil {
			warnings = append(warnings, "variables is not valid JSON and was ignored")
			variables = nil
		}
	}

	return &entity.Prompt{
		Title:     title,
		Body:      body,
		Category:  strings.TrimSpace(in.Category),
		Tags:      content.CleanTags(in.Tags),
		Variables: variables,
		OwnerId:   in.OwnerId,
	}, warnings, nil
}

type PostInput struct {
	Title    string
	Content  string
	Excerpt  string
	Slug     string
	Category string
	Tags     []string
	Status   string
	// DefaultStatus is applied when Status is empty: draft for API-created
	// posts, published for file-ingested ones.
	DefaultStatus entity.PostStatus
	Featured      bool
	AuthorId      string
}

func Post(in PostInput) (*entity.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.Validation("title", "must not be empty")
	}
	body := strings.TrimSpace(in.Content)
	if body == "" {
		return nil, apperror.Validation("content", "must not be empty")
	}

	status := entity.PostStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = in.DefaultStatus
		if status == "" {
			status = entity.PostStatusDraft
		}
	}
	if !status.Valid() {
		return nil, apperror.Validation("status", "must be draft, published or archived")
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = content.Slugify(title)
	}

	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = content.Excerpt(body, content.ExcerptBudget)
	}

	return &entity.Post{
		Title:    title,
		Slug:     slug,
		Content:  body,
		Excerpt:  excerpt,
		Category: strings.TrimSpace(in.Category),
		Tags:     content.CleanTags(in.Tags),
		Status:   status,
		Featured: in.Featured,
		AuthorId: in.AuthorId,
	}, nil
}

type WorkflowInput struct {
	Title       string
	Description string
	Steps       []entity.WorkflowStep
	Tags        []string
	OwnerId     string
}

// Workflow validates the step sequence: names required, types drawn from the
// closed set. Step prompt/tool references are not resolved here; dangling
// references are tolerated by consumers.
func Workflow(in WorkflowInput) (*entity.Workflow, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.Validation("title", "must not be empty")
	}

	steps := make([]entity.WorkflowStep, 0, len(in.Steps))
	for _, step := range in.Steps {
		step.Name = strings.TrimSpace(step.Name)
		if step.Name == "" {
			return nil, apperror.Validation("steps", "every step needs a name")
		}
		if step.Type == "" {
			step.Type = entity.StepTypeAction
		}
		if !step.Type.Valid() {
			return nil, apperror.Validation("steps", "unknown step type "+string(step.Type))
		}
		steps = append(steps, step)
	}

	return &entity.Workflow{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Steps:       steps,
		Tags:        content.CleanTags(in.Tags),
		OwnerId:     in.OwnerId,
	}, nil
}

type KnowledgeInput struct {
	Title    string
	Content  string
	Slug     string
	Category string
	Tags     []string
	Source   string
	OwnerId  string
}

func Knowledge(in KnowledgeInput) (*entity.KnowledgeDocument, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.Validation("title", "must not be empty")
	}
	body := in.Content
	if strings.TrimSpace(body) == "" {
		return nil, apperror.Validation("content", "must not be empty")
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = content.Slugify(title)
	}

	return &entity.KnowledgeDocument{
		Title:    title,
		Slug:     slug,
		Content:  body,
		Category: strings.TrimSpace(in.Category),
		Tags:     content.CleanTags(in.Tags),
		Source:   strings.TrimSpace(in.Source),
		OwnerId:  in.OwnerId,
	}, nil
}

type ContactInput struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

func Contact(in ContactInput) (*entity.ContactSubmission, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.Validation("name", "must not be empty")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.Validation("email", "must be a valid address")
	}
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, apperror.Validation("message", "must not be empty")
	}

	return &entity.ContactSubmission{
		Name:    name,
		Email:   email,
		Company: strings.TrimSpace(in.Company),
		Service: strings.TrimSpace(in.Service),
		Message: message,
	}, nil
}
