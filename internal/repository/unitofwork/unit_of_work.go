package unitofwork

import (
	"context"

	"consultly-be/internal/repository/contract"
)

// UnitOfWork exposes every repository bound to one shared connection or
// transaction. Begin/Commit/Rollback wrap multi-write operations; the only
// place this is required is knowledge ingestion, where a document and its
// chunks must land atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PromptRepository() contract.PromptRepository
	PostRepository() contract.PostRepository
	WorkflowRepository() contract.WorkflowRepository
	KnowledgeDocumentRepository() contract.KnowledgeDocumentRepository
	KnowledgeChunkRepository() contract.KnowledgeChunkRepository
	ContactRepository() contract.ContactRepository
	UserRepository() contract.UserRepository
}
