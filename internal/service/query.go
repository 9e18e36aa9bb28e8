package service

import (
	"context"
	"fmt"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

// QueryService exposes read-only projections of the game registry.
type QueryService interface {
	Games(ctx context.Context, host, guest string) (*entity.Game, error)
	AllGamesList(ctx context.Context) ([]*entity.Game, error)
}

type queryService struct {
	gameRepo gameRepo
}

func NewQueryService(gameRepo gameRepo) QueryService {
	return &queryService{
		gameRepo: gameRepo,
	}
}

// Games returns the record of one (host, guest) pair.
func (that *queryService) Games(ctx context.Context, host, guest string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByPair(ctx, host, guest)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// AllGamesList returns every stored record in the registry's stable order.
func (that *queryService) AllGamesList(ctx context.Context) ([]*entity.Game, error) {
	games, err := that.gameRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}
