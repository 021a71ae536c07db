package memory

import (
	"context"

	"consultly-be/internal/entity"
	"consultly-be/internal/repository/contract"
	"consultly-be/internal/repository/unitofwork"
)

// Store owns every in-memory table. Units of work handed out by the factory
// all see the same tables, so sequential operations in a test observe each
// other, as they would against a shared database.
type Store struct {
	prompts   *table[entity.Prompt]
	posts     *table[entity.Post]
	workflows *table[entity.Workflow]
	documents *table[entity.KnowledgeDocument]
	chunks    *chunkRepository
	contacts  *table[entity.ContactSubmission]
	users     *table[entity.User]
}

func NewStore() *Store {
	return &Store{
		prompts:   newPromptTable(),
		posts:     newPostTable(),
		workflows: newWorkflowTable(),
		documents: newDocumentTable(),
		chunks:    &chunkRepository{newChunkTable()},
		contacts:  newContactTable(),
		users:     newUserTable(),
	}
}

// NewRepositoryFactory returns a unitofwork.RepositoryFactory backed by this
// store, for injecting into services under test.
func (s *Store) NewRepositoryFactory() unitofwork.RepositoryFactory {
	return &factory{store: s}
}

type factory struct {
	store *Store
}

func (f *factory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type storeSnapshot struct {
	documents tableSnapshot[entity.KnowledgeDocument]
	chunks    tableSnapshot[entity.KnowledgeChunk]
}

// unitOfWork implements Begin/Commit/Rollback by snapshotting the tables the
// transactional path (knowledge ingestion) touches.
type unitOfWork struct {
	store    *Store
	snapshot *storeSnapshot
}

func (u *unitOfWork) Begin(_ context.Context) error {
	u.snapshot = &storeSnapshot{
		documents: u.store.documents.snapshot(),
		chunks:    u.store.chunks.table.snapshot(),
	}
	return nil
}

func (u *unitOfWork) Commit() error {
	u.snapshot = nil
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.snapshot == nil {
		return nil
	}
	u.store.documents.restore(u.snapshot.documents)
	u.store.chunks.table.restore(u.snapshot.chunks)
	u.snapshot = nil
	return nil
}

func (u *unitOfWork) PromptRepository() contract.PromptRepository {
	return u.store.prompts
}

func (u *unitOfWork) PostRepository() contract.PostRepository {
	return u.store.posts
}

func (u *unitOfWork) WorkflowRepository() contract.WorkflowRepository {
	return u.store.workflows
}

func (u *unitOfWork) KnowledgeDocumentRepository() contract.KnowledgeDocumentRepository {
	return u.store.documents
}

func (u *unitOfWork) KnowledgeChunkRepository() contract.KnowledgeChunkRepository {
	return u.store.chunks
}

func (u *unitOfWork) ContactRepository() contract.ContactRepository {
	return u.store.contacts
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return u.store.users
}
