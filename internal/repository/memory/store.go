// Package memory implements the repository contracts over process memory.
// It backs service tests: the unit-of-work factory here is injected in place
// of the GORM-backed one, so no live database is needed. Specifications are
// interpreted by type, mirroring what their SQL translation matches.
package memory

import (
	"fmt"
	"sort"
	"time"

	"consultly-be/internal/repository/specification"

	"github.com/google/uuid"
)

// record pairs an entity with the flat field view specifications match on.
type record struct {
	id        uuid.UUID
	fields    map[string]interface{}
	createdAt time.Time
	value     interface{}
}

func matchRecord(r record, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if r.id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if r.id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.BySlug:
			if r.fields["slug"] != s.Slug {
				return false
			}
		case specification.ByStatus:
			if r.fields["status"] != s.Status {
				return false
			}
		case specification.ByCategory:
			if r.fields["category"] != s.Category {
				return false
			}
		case specification.ByOwner:
			if r.fields["owner_id"] != s.OwnerID {
				return false
			}
		case specification.ByEmail:
			if r.fields["email"] != s.Email {
				return false
			}
		case specification.ByHandled:
			if r.fields["handled"] != s.Handled {
				return false
			}
		case specification.ByDocumentID:
			if r.fields["document_id"] != s.DocumentID {
				return false
			}
		case specification.FilterBy:
			if fmt.Sprintf("%v", r.fields[s.Field]) != fmt.Sprintf("%v", s.Value) {
				return false
			}
		case specification.OrderBy, specification.Pagination:
			// Applied after filtering.
		}
	}
	return true
}

// applySpecs filters, orders and paginates records the way the SQL layer
// would. created_at and integer field ordering are interpreted; those are
// the only sort keys the services use.
func applySpecs(records []record, specs []specification.Specification) []record {
	out := make([]record, 0, len(records))
	for _, r := range records {
		if matchRecord(r, specs) {
			out = append(out, r)
		}
	}

	for _, spec := range specs {
		s, ok := spec.(specification.OrderBy)
		if !ok {
			continue
		}
		if s.Field == "created_at" {
			sort.SliceStable(out, func(i, j int) bool {
				if s.Desc {
					return out[i].createdAt.After(out[j].createdAt)
				}
				return out[i].createdAt.Before(out[j].createdAt)
			})
			continue
		}
		sort.SliceStable(out, func(i, j int) bool {
			a, aok := out[i].fields[s.Field].(int)
			b, bok := out[j].fields[s.Field].(int)
			if !aok || !bok {
				return false
			}
			if s.Desc {
				return a > b
			}
			return a < b
		})
	}

	for _, spec := range specs {
		if s, ok := spec.(specification.Pagination); ok {
			start := s.Offset
			if start > len(out) {
				start = len(out)
			}
			end := start + s.Limit
			if s.Limit <= 0 || end > len(out) {
				end = len(out)
			}
			out = out[start:end]
		}
	}

	return out
}
