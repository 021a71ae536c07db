package service

import (
	"context"
	"testing"

	"consultly-be/internal/dto"
	"consultly-be/internal/entity"
	"consultly-be/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testJwtSecret = "test-secret"

func seedUser(t *testing.T, store *memory.Store, email, password string) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &entity.User{
		Id:           uuid.New(),
		Name:         "Site Owner",
		Email:        email,
		PasswordHash: string(hash),
	}

	uow := store.NewRepositoryFactory().NewUnitOfWork(context.Background())
	assert.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, "owner@consultly.dev", "hunter2hunter2")

	svc := NewAuthService(store.NewRepositoryFactory(), testJwtSecret)

	res, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "owner@consultly.dev",
		Password: "hunter2hunter2",
	})
	assert.NoError(t, err)
	assert.Equal(t, "owner@consultly.dev", res.Email)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.Id.String(), claims["user_id"])
	assert.Equal(t, "owner@consultly.dev", claims["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(t, store, "owner@consultly.dev", "correct-password")

	svc := NewAuthService(store.NewRepositoryFactory(), testJwtSecret)

	_, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "owner@consultly.dev",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewStore().NewRepositoryFactory(), testJwtSecret)

	_, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
