package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) Save(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)

	return args.Error(0)
}

func (that *mockGameRepo) GetByPair(ctx context.Context, host, guest string) (*entity.Game, error) {
	args := that.Called(ctx, host, guest)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameRepo) ListAll(ctx context.Context) ([]*entity.Game, error) {
	args := that.Called(ctx)

	games, _ := args.Get(0).([]*entity.Game)

	return games, args.Error(1)
}
