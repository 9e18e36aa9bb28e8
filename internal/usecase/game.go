package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

var ErrUnknownMessage = errors.New("unknown message")

// GameUseCase is the single entry point of the engine: every transport
// funnels its traffic into Execute for mutations and Query for reads.
type GameUseCase interface {
	Execute(ctx context.Context, sender string, msg ExecuteMsg) (*entity.Game, error)
	Query(ctx context.Context, msg QueryMsg) (*QueryResult, error)
}

// QueryResult carries the answer of a query; exactly one field is set.
type QueryResult struct {
	Game  *entity.Game   `json:"game,omitempty"`
	Games []*entity.Game `json:"games,omitempty"`
}

type invitationService interface {
	Invite(ctx context.Context, host, guest string) (*entity.Game, error)
	Accept(ctx context.Context, host, guest string) (*entity.Game, error)
	Reject(ctx context.Context, host, guest string) (*entity.Game, error)
}

type gameplayService interface {
	Play(ctx context.Context, player, host, guest string, cell int) (*entity.Game, error)
}

type queryService interface {
	Games(ctx context.Context, host, guest string) (*entity.Game, error)
	AllGamesList(ctx context.Context) ([]*entity.Game, error)
}

type gameUseCase struct {
	logger *slog.Logger

	invitationService invitationService
	gameplayService   gameplayService
	queryService      queryService
}

func NewGameUseCase(logger *slog.Logger, invitations invitationService, gameplay gameplayService, queries queryService) GameUseCase {
	return &gameUseCase{
		logger:            logger,
		invitationService: invitations,
		gameplayService:   gameplay,
		queryService:      queries,
	}
}

// Execute dispatches one mutating message on behalf of sender. The type
// switch is exhaustive over the message set; each arm performs exactly one
// registry write or none.
func (that *gameUseCase) Execute(ctx context.Context, sender string, msg ExecuteMsg) (*entity.Game, error) {
	log := that.logger.With("method", "Execute")

	switch m := msg.(type) {
	case InviteMsg:
		game, err := that.invitationService.Invite(ctx, sender, m.Guest)
		if err != nil {
			return nil, fmt.Errorf("failed to invite: %w", err)
		}

		log.Info("invitation sent", "action", "invite", "host", sender, "guest", m.Guest)

		return game, nil
	case AcceptMsg:
		game, err := that.invitationService.Accept(ctx, m.Host, sender)
		if err != nil {
			return nil, fmt.Errorf("failed to accept: %w", err)
		}

		log.Info("invitation accepted", "action", "accept", "host", m.Host, "guest", sender, "turn", game.Turn)

		return game, nil
	case RejectMsg:
		game, err := that.invitationService.Reject(ctx, m.Host, sender)
		if err != nil {
			return nil, fmt.Errorf("failed to reject: %w", err)
		}

		log.Info("invitation rejected", "action", "reject", "host", m.Host, "guest", sender)

		return game, nil
	case PlayMsg:
		game, err := that.gameplayService.Play(ctx, sender, m.Host, m.Guest, m.Cell)
		if err != nil {
			return nil, fmt.Errorf("failed to play: %w", err)
		}

		log.Info("move played", "action", "play", "host", m.Host, "guest", m.Guest, "player", sender, "cell", m.Cell, "status", game.Status)

		return game, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessage, msg)
	}
}

// Query dispatches one read-only message.
func (that *gameUseCase) Query(ctx context.Context, msg QueryMsg) (*QueryResult, error) {
	switch m := msg.(type) {
	case GamesQuery:
		game, err := that.queryService.Games(ctx, m.Host, m.Guest)
		if err != nil {
			return nil, fmt.Errorf("failed to query game: %w", err)
		}

		return &QueryResult{Game: game}, nil
	case AllGamesQuery:
		games, err := that.queryService.AllGamesList(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query games: %w", err)
		}

		return &QueryResult{Games: games}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessage, msg)
	}
}
