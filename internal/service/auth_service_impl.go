// internal/service/auth_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
	"github.com/carlostoek/diana-gamification-be/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRegistrationFailed = errors.New("failed to register account")
	ErrLoginFailed        = errors.New("failed to login")
	ErrUsernameExists     = errors.New("username already exists")
)

type authServiceImpl struct {
	accountRepo repository.AccountRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(accountRepo repository.AccountRepository) AuthService {
	return &authServiceImpl{accountRepo: accountRepo}
}

// RegisterAccount creates an operator account. Role validity (Admin/Bot) is
// enforced by input validation before this is called.
func (s *authServiceImpl) RegisterAccount(ctx context.Context, input *models.RegisterAccountInput) (int, error) {
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: failed to hash password during registration")
		return 0, fmt.Errorf("%w: password processing error", ErrRegistrationFailed)
	}

	accountID, err := s.accountRepo.CreateAccount(ctx, input, hashedPassword)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			zlog.Warn().Str("username", input.Username).Msg("Service: username conflict during registration")
			return 0, ErrUsernameExists
		}
		if strings.Contains(err.Error(), "already taken") {
			return 0, ErrUsernameExists
		}
		zlog.Error().Err(err).Str("username", input.Username).Msg("Service: error creating account")
		return 0, fmt.Errorf("%w: database error", ErrRegistrationFailed)
	}

	zlog.Info().Int("account_id", accountID).Str("username", input.Username).Str("role", input.Role).Msg("Service: account registered")
	return accountID, nil
}

func (s *authServiceImpl) Login(ctx context.Context, input *models.LoginInput) (string, error) {
	account, err := s.accountRepo.GetAccountByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			zlog.Info().Str("username", input.Username).Msg("Service: account not found during login attempt")
			// Same error as a bad password, so usernames cannot be probed.
			return "", ErrInvalidCredentials
		}
		zlog.Error().Err(err).Str("username", input.Username).Msg("Service: error fetching account during login")
		return "", fmt.Errorf("%w: database error retrieving account", ErrLoginFailed)
	}

	if !utils.CheckPasswordHash(input.Password, account.Password) {
		zlog.Info().Str("username", input.Username).Msg("Service: invalid password during login attempt")
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(account.ID, account.Username, string(account.Role))
	if err != nil {
		zlog.Error().Err(err).Str("username", input.Username).Msg("Service: error generating JWT")
		return "", fmt.Errorf("%w: token generation error", ErrLoginFailed)
	}

	zlog.Info().Str("username", input.Username).Msg("Service: login successful")
	return token, nil
}
