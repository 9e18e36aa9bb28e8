package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridduelinc/gridduel-backend/internal/apperror"
	"github.com/gridduelinc/gridduel-backend/internal/entity"
	"github.com/gridduelinc/gridduel-backend/internal/repository"
)

// gameRepo is the slice of the game registry the services work against.
type gameRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	GetByPair(ctx context.Context, host, guest string) (*entity.Game, error)
	ListAll(ctx context.Context) ([]*entity.Game, error)
}

// InvitationService drives the invitation side of a game's life: a host
// invites a guest, the guest accepts or rejects. Every call writes exactly
// one record on success and nothing on failure.
type InvitationService interface {
	Invite(ctx context.Context, host, guest string) (*entity.Game, error)
	Accept(ctx context.Context, host, guest string) (*entity.Game, error)
	Reject(ctx context.Context, host, guest string) (*entity.Game, error)
}

type invitationService struct {
	gameRepo gameRepo
}

func NewInvitationService(gameRepo gameRepo) InvitationService {
	return &invitationService{
		gameRepo: gameRepo,
	}
}

// Invite creates a pending invitation from host to guest. A pair with a
// pending or ongoing record cannot be invited again; a terminal record is
// renewed in place, archiving a finished game into the pair's history.
func (that *invitationService) Invite(ctx context.Context, host, guest string) (*entity.Game, error) {
	if host == guest {
		return nil, apperror.ErrSelfInvite
	}

	game, err := that.gameRepo.GetByPair(ctx, host, guest)

	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		game = entity.NewGame(host, guest)
	case err != nil:
		return nil, fmt.Errorf("failed to get game: %w", err)
	case !game.IsTerminal():
		return nil, apperror.ErrGameAlreadyExists
	default:
		game.Renew()
	}

	if err = that.gameRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}

// Accept starts the game hosted by host with guest as the invited player.
// Marks are assigned at this point and the first turn goes to the X holder.
func (that *invitationService) Accept(ctx context.Context, host, guest string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByPair(ctx, host, guest)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !game.IsPending() {
		return nil, apperror.ErrNoPendingInvitation
	}

	game.Start()

	if err = that.gameRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}

// Reject declines the invitation hosted by host. The record turns terminal.
func (that *invitationService) Reject(ctx context.Context, host, guest string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByPair(ctx, host, guest)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !game.IsPending() {
		return nil, apperror.ErrNoPendingInvitation
	}

	game.Reject()

	if err = that.gameRepo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}
