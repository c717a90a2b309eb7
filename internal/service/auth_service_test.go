// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository/mocks"
	"github.com/carlostoek/diana-gamification-be/internal/utils"
)

func TestRegisterAccount(t *testing.T) {
	input := &models.RegisterAccountInput{Username: "diana_bot", Password: "secret123", Role: "Bot"}

	t.Run("Success", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		accountRepo.On("CreateAccount", mock.Anything, input, mock.AnythingOfType("string")).Return(7, nil).Once()

		svc := NewAuthService(accountRepo)
		id, err := svc.RegisterAccount(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, 7, id)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		accountRepo.On("CreateAccount", mock.Anything, input, mock.AnythingOfType("string")).
			Return(0, &pgconn.PgError{Code: "23505"}).Once()

		svc := NewAuthService(accountRepo)
		_, err := svc.RegisterAccount(context.Background(), input)

		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		accountRepo.On("CreateAccount", mock.Anything, input, mock.AnythingOfType("string")).
			Return(0, assert.AnError).Once()

		svc := NewAuthService(accountRepo)
		_, err := svc.RegisterAccount(context.Background(), input)

		assert.ErrorIs(t, err, ErrRegistrationFailed)
	})
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)
	account := &models.Account{ID: 7, Username: "diana_bot", Password: hash, Role: "Bot"}

	t.Run("Success", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		accountRepo.On("GetAccountByUsername", mock.Anything, "diana_bot").Return(account, nil).Once()

		svc := NewAuthService(accountRepo)
		token, err := svc.Login(context.Background(), &models.LoginInput{Username: "diana_bot", Password: "secret123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		accountRepo.On("GetAccountByUsername", mock.Anything, "nobody").Return(nil, pgx.ErrNoRows).Once()

		svc := NewAuthService(accountRepo)
		_, err := svc.Login(context.Background(), &models.LoginInput{Username: "nobody", Password: "secret123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		accountRepo.On("GetAccountByUsername", mock.Anything, "diana_bot").Return(account, nil).Once()

		svc := NewAuthService(accountRepo)
		_, err := svc.Login(context.Background(), &models.LoginInput{Username: "diana_bot", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
