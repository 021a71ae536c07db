package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prompt is a reusable prompt template in the content library. Variables is
// the free-form JSON the author supplied; it is parsed leniently at the
// normalization boundary and stored verbatim.
type Prompt struct {
	Id        uuid.UUID
	Title     string
	Body      string
	Category  string
	Tags      []string
	Variables map[string]string
	OwnerId   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (p *Prompt) SearchTitle() string  { return p.Title }
func (p *Prompt) SearchBody() string   { return p.Body }
func (p *Prompt) SearchTags() []string { return p.Tags }
