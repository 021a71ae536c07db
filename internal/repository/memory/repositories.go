package memory

import (
	"context"
	"time"

	"consultly-be/internal/entity"
	"consultly-be/internal/repository/specification"

	"github.com/google/uuid"
)

func newPromptTable() *table[entity.Prompt] {
	return newTable("prompt", hooks[entity.Prompt]{
		id:    func(p *entity.Prompt) uuid.UUID { return p.Id },
		setID: func(p *entity.Prompt, id uuid.UUID) { p.Id = id },
		fields: func(p *entity.Prompt) map[string]interface{} {
			return map[string]interface{}{
				"category": p.Category,
				"owner_id": p.OwnerId,
			}
		},
		createdAt:    func(p *entity.Prompt) time.Time { return p.CreatedAt },
		setCreatedAt: func(p *entity.Prompt, t time.Time) { p.CreatedAt = t },
		setUpdatedAt: func(p *entity.Prompt, t *time.Time) { p.UpdatedAt = t },
	})
}

func newPostTable() *table[entity.Post] {
	return newTable("post", hooks[entity.Post]{
		id:    func(p *entity.Post) uuid.UUID { return p.Id },
		setID: func(p *entity.Post, id uuid.UUID) { p.Id = id },
		fields: func(p *entity.Post) map[string]interface{} {
			return map[string]interface{}{
				"slug":      p.Slug,
				"status":    string(p.Status),
				"category":  p.Category,
				"owner_id":  p.AuthorId,
				"author_id": p.AuthorId,
			}
		},
		createdAt:    func(p *entity.Post) time.Time { return p.CreatedAt },
		setCreatedAt: func(p *entity.Post, t time.Time) { p.CreatedAt = t },
		setUpdatedAt: func(p *entity.Post, t *time.Time) { p.UpdatedAt = t },
	})
}

func newWorkflowTable() *table[entity.Workflow] {
	return newTable("workflow", hooks[entity.Workflow]{
		id:    func(w *entity.Workflow) uuid.UUID { return w.Id },
		setID: func(w *entity.Workflow, id uuid.UUID) { w.Id = id },
		fields: func(w *entity.Workflow) map[string]interface{} {
			return map[string]interface{}{
				"owner_id": w.OwnerId,
			}
		},
		createdAt:    func(w *entity.Workflow) time.Time { return w.CreatedAt },
		setCreatedAt: func(w *entity.Workflow, t time.Time) { w.CreatedAt = t },
		setUpdatedAt: func(w *entity.Workflow, t *time.Time) { w.UpdatedAt = t },
	})
}

func newDocumentTable() *table[entity.KnowledgeDocument] {
	return newTable("knowledge document", hooks[entity.KnowledgeDocument]{
		id:    func(d *entity.KnowledgeDocument) uuid.UUID { return d.Id },
		setID: func(d *entity.KnowledgeDocument, id uuid.UUID) { d.Id = id },
		fields: func(d *entity.KnowledgeDocument) map[string]interface{} {
			return map[string]interface{}{
				"slug":     d.Slug,
				"category": d.Category,
				"owner_id": d.OwnerId,
			}
		},
		createdAt:    func(d *entity.KnowledgeDocument) time.Time { return d.CreatedAt },
		setCreatedAt: func(d *entity.KnowledgeDocument, t time.Time) { d.CreatedAt = t },
		setUpdatedAt: func(d *entity.KnowledgeDocument, t *time.Time) { d.UpdatedAt = t },
	})
}

func newChunkTable() *table[entity.KnowledgeChunk] {
	return newTable("knowledge chunk", hooks[entity.KnowledgeChunk]{
		id:    func(c *entity.KnowledgeChunk) uuid.UUID { return c.Id },
		setID: func(c *entity.KnowledgeChunk, id uuid.UUID) { c.Id = id },
		fields: func(c *entity.KnowledgeChunk) map[string]interface{} {
			return map[string]interface{}{
				"document_id": c.DocumentId,
				"category":    c.Category,
				"section":     c.Section,
			}
		},
		createdAt:    func(c *entity.KnowledgeChunk) time.Time { return c.CreatedAt },
		setCreatedAt: func(c *entity.KnowledgeChunk, t time.Time) { c.CreatedAt = t },
		setUpdatedAt: func(c *entity.KnowledgeChunk, t *time.Time) { c.UpdatedAt = t },
	})
}

func newContactTable() *table[entity.ContactSubmission] {
	return newTable("contact submission", hooks[entity.ContactSubmission]{
		id:    func(c *entity.ContactSubmission) uuid.UUID { return c.Id },
		setID: func(c *entity.ContactSubmission, id uuid.UUID) { c.Id = id },
		fields: func(c *entity.ContactSubmission) map[string]interface{} {
			return map[string]interface{}{
				"email":   c.Email,
				"handled": c.Handled,
			}
		},
		createdAt:    func(c *entity.ContactSubmission) time.Time { return c.CreatedAt },
		setCreatedAt: func(c *entity.ContactSubmission, t time.Time) { c.CreatedAt = t },
		setUpdatedAt: func(c *entity.ContactSubmission, t *time.Time) { c.UpdatedAt = t },
	})
}

func newUserTable() *table[entity.User] {
	return newTable("user", hooks[entity.User]{
		id:    func(u *entity.User) uuid.UUID { return u.Id },
		setID: func(u *entity.User, id uuid.UUID) { u.Id = id },
		fields: func(u *entity.User) map[string]interface{} {
			return map[string]interface{}{
				"email": u.Email,
			}
		},
		createdAt:    func(u *entity.User) time.Time { return u.CreatedAt },
		setCreatedAt: func(u *entity.User, t time.Time) { u.CreatedAt = t },
		setUpdatedAt: func(u *entity.User, t *time.Time) { u.UpdatedAt = t },
	})
}

// chunkRepository adds the batch and by-document operations on top of the
// generic table.
type chunkRepository struct {
	*table[entity.KnowledgeChunk]
}

func (r *chunkRepository) CreateBatch(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	for _, c := range chunks {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *chunkRepository) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	chunks, err := r.FindAll(ctx, specification.ByDocumentID{DocumentID: documentId})
	if err != nil {
		return err
	}
	for _, c := range chunks {
		if err := r.Delete(ctx, c.Id); err != nil {
			return err
		}
	}
	return nil
}
