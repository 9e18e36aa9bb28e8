package service

import (
	"context"
	"fmt"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

// GameplayService applies moves to ongoing games.
type GameplayService interface {
	Play(ctx context.Context, player, host, guest string, cell int) (*entity.Game, error)
}

type gameplayService struct {
	gameRepo gameRepo
}

func NewGameplayService(gameRepo gameRepo) GameplayService {
	return &gameplayService{
		gameRepo: gameRepo,
	}
}

// Play makes one move by player on the game of the (host, guest) pair. The
// record is written back only when the move passed every check, so a failed
// call leaves the store untouched.
func (that *gameplayService) Play(ctx context.Context, player, host, guest string, cell int) (*entity.Game, error) {
	game, err := that.gameRepo.GetByPair(ctx, host, guest)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.MakeMove(player, cell); err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.gameRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}
