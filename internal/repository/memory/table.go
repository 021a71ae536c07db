package memory

import (
	"context"
	"sync"
	"time"

	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/specification"

	"github.com/google/uuid"
)

// hooks teaches the generic table how to read and stamp one entity kind.
type hooks[T any] struct {
	id           func(*T) uuid.UUID
	setID        func(*T, uuid.UUID)
	fields       func(*T) map[string]interface{}
	createdAt    func(*T) time.Time
	setCreatedAt func(*T, time.Time)
	setUpdatedAt func(*T, *time.Time)
}

// table is an ordered in-memory collection with the same timestamp and
// not-found semantics as the GORM layer: created_at assigned once on create,
// updated_at refreshed on every mutation, update of a missing id fails,
// delete of a missing id does not.
type table[T any] struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]T
	order []uuid.UUID
	hooks hooks[T]
	name  string
}

func newTable[T any](name string, h hooks[T]) *table[T] {
	return &table[T]{
		rows:  make(map[uuid.UUID]T),
		hooks: h,
		name:  name,
	}
}

func (t *table[T]) Create(_ context.Context, e *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hooks.id(e) == uuid.Nil {
		t.hooks.setID(e, uuid.New())
	}
	t.hooks.setCreatedAt(e, time.Now())
	t.hooks.setUpdatedAt(e, nil)

	id := t.hooks.id(e)
	t.rows[id] = *e
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) Update(_ context.Context, e *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.hooks.id(e)
	existing, ok := t.rows[id]
	if !ok {
		return apperror.NotFound(t.name, id.String())
	}

	// created_at is never overwritten.
	t.hooks.setCreatedAt(e, t.hooks.createdAt(&existing))
	now := time.Now()
	t.hooks.setUpdatedAt(e, &now)
	t.rows[id] = *e
	return nil
}

func (t *table[T]) Delete(_ context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return nil
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T]) records() []record {
	out := make([]record, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		out = append(out, record{
			id:        id,
			fields:    t.hooks.fields(&row),
			createdAt: t.hooks.createdAt(&row),
			value:     row,
		})
	}
	return out
}

func (t *table[T]) FindOne(_ context.Context, specs ...specification.Specification) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	matched := applySpecs(t.records(), specs)
	if len(matched) == 0 {
		return nil, nil
	}
	row := matched[0].value.(T)
	return &row, nil
}

func (t *table[T]) FindAll(_ context.Context, specs ...specification.Specification) ([]*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	matched := applySpecs(t.records(), specs)
	out := make([]*T, len(matched))
	for i, r := range matched {
		row := r.value.(T)
		out[i] = &row
	}
	return out, nil
}

func (t *table[T]) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return int64(len(applySpecs(t.records(), specs))), nil
}

// snapshot and restore give the memory unit of work transactional rollback.

type tableSnapshot[T any] struct {
	rows  map[uuid.UUID]T
	order []uuid.UUID
}

func (t *table[T]) snapshot() tableSnapshot[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := make(map[uuid.UUID]T, len(t.rows))
	for k, v := range t.rows {
		rows[k] = v
	}
	return tableSnapshot[T]{rows: rows, order: append([]uuid.UUID(nil), t.order...)}
}

func (t *table[T]) restore(s tableSnapshot[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = s.rows
	t.order = s.order
}
