package service

import (
	"context"
	"testing"

	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newContactService() IContactService {
	factory := memory.NewStore().NewRepositoryFactory()
	return NewContactService(factory, nil, nil, "owner@consultly.dev")
}

func TestContactSubmitAndList(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	res, err := svc.Submit(ctx, &dto.SubmitContactRequest{
		Name:    "Dana",
		Email:   "dana@example.com",
		Company: "Acme",
		Service: "cloud-migration",
		Message: "We need help moving to AWS.",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)

	all, err := svc.GetAll(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Dana", all[0].Name)
	assert.False(t, all[0].Handled)
}

func TestContactSubmitValidation(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	_, err := svc.Submit(ctx, &dto.SubmitContactRequest{
		Name:    "Dana",
		Email:   "not-an-address",
		Message: "hi",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestContactMarkHandledAndFilter(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	first, err := svc.Submit(ctx, &dto.SubmitContactRequest{
		Name: "A", Email: "a@example.com", Message: "one",
	})
	assert.NoError(t, err)
	_, err = svc.Submit(ctx, &dto.SubmitContactRequest{
		Name: "B", Email: "b@example.com", Message: "two",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.MarkHandled(ctx, first.Id))

	handled := true
	got, err := svc.GetAll(ctx, &handled)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)

	unhandled := false
	got, err = svc.GetAll(ctx, &unhandled)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
}

func TestContactMarkHandledMissing(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	err := svc.MarkHandled(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestContactDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	res, err := svc.Submit(ctx, &dto.SubmitContactRequest{
		Name: "A", Email: "a@example.com", Message: "one",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, res.Id))
	assert.NoError(t, svc.Delete(ctx, res.Id))
}
