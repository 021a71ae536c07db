package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerPolicy(t *testing.T) {
	policy := NewOwnerPolicy("Owner@Consultly.dev")

	assert.True(t, policy.CanWrite("owner@consultly.dev"))
	assert.True(t, policy.CanWrite("  OWNER@consultly.dev "))
	assert.False(t, policy.CanWrite("someone@else.dev"))
	assert.False(t, policy.CanWrite(""))
}

func TestOwnerPolicyEmptyOwnerLocksWrites(t *testing.T) {
	policy := NewOwnerPolicy("")

	assert.False(t, policy.CanWrite(""))
	assert.False(t, policy.CanWrite("anyone@example.com"))
}
