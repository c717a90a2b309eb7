// internal/service/player_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
)

type playerServiceImpl struct {
	playerRepo repository.PlayerRepository
}

// NewPlayerService creates a new instance of PlayerService.
func NewPlayerService(playerRepo repository.PlayerRepository) PlayerService {
	return &playerServiceImpl{playerRepo: playerRepo}
}

func (s *playerServiceImpl) GetPlayer(ctx context.Context, userID int64) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayerByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("internal server error: could not get player")
	}
	return player, nil
}

func (s *playerServiceImpl) ListPlayers(ctx context.Context, page, limit int) ([]models.Player, int, error) {
	return s.playerRepo.ListPlayers(ctx, page, limit)
}

func (s *playerServiceImpl) SetVIP(ctx context.Context, userID int64, input *models.SetVIPInput) error {
	// Verify the player exists first so a typo'd id comes back as 404, not a
	// silent no-op.
	if _, err := s.playerRepo.GetPlayerByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("internal server error: could not get player")
	}
	if err := s.playerRepo.SetVIP(ctx, userID, input.IsVIP); err != nil {
		return fmt.Errorf("internal server error: could not update vip flag")
	}
	zlog.Info().Int64("user_id", userID).Bool("is_vip", input.IsVIP).Msg("Service: player vip flag updated")
	return nil
}
