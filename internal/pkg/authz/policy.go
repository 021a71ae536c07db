// Package authz decides who may mutate content. The policy is pluggable so a
// future multi-author setup can swap it without touching the services.
package authz

import "strings"

// Policy answers whether the authenticated principal may write content.
// Reads are always public and never consult the policy.
type Policy interface {
	CanWrite(email string) bool
}

// OwnerPolicy allows exactly one configured email address. An empty owner
// email locks all writes.
type OwnerPolicy struct {
	ownerEmail string
}

func NewOwnerPolicy(ownerEmail string) *OwnerPolicy {
	return &OwnerPolicy{ownerEmail: strings.ToLower(strings.TrimSpace(ownerEmail))}
}

func (p *OwnerPolicy) CanWrite(email string) bool {
	if p.ownerEmail == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(email)) == p.ownerEmail
}
