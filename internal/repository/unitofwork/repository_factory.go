package unitofwork

import "context"

// RepositoryFactory hands out fresh units of work. Services receive the
// factory at construction time; nothing reaches for a global store handle.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
