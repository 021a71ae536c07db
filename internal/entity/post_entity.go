package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

type Post struct {
	Id        uuid.UUID
	Title     string
	Slug      string
	Content   string
	Excerpt   string
	Category  string
	Tags      []string
	Status    PostStatus
	Featured  bool
	AuthorId  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (p *Post) SearchTitle() string  { return p.Title }
func (p *Post) SearchBody() string   { return p.Content }
func (p *Post) SearchTags() []string { return p.Tags }
