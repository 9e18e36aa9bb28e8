package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridduelinc/gridduel-backend/internal/apperror"
	"github.com/gridduelinc/gridduel-backend/internal/entity"
	"github.com/gridduelinc/gridduel-backend/internal/repository"
	"github.com/gridduelinc/gridduel-backend/internal/service"
)

// newEngine wires the dispatcher to real services over the in-memory
// registry, so tests drive the whole engine the way a transport would.
func newEngine(t *testing.T) (context.Context, GameUseCase, repository.GameRepository) {
	t.Helper()

	gameRepo := repository.NewMemoryGameRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine := NewGameUseCase(
		logger,
		service.NewInvitationService(gameRepo),
		service.NewGameplayService(gameRepo),
		service.NewQueryService(gameRepo),
	)

	return context.Background(), engine, gameRepo
}

type bogusExecuteMsg struct{}

func (bogusExecuteMsg) isExecuteMsg() {}

type bogusQueryMsg struct{}

func (bogusQueryMsg) isQueryMsg() {}

func TestGameUseCase_FullMatch(t *testing.T) {
	ctx, engine, _ := newEngine(t)

	// Given: alice invites bob
	game, err := engine.Execute(ctx, "alice", InviteMsg{Guest: "bob"})
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, game.Status)

	// When: bob accepts, drawing X for himself and O for alice
	game, err = engine.Execute(ctx, "bob", AcceptMsg{Host: "alice"})
	require.NoError(t, err)

	// Then: the game is ongoing and bob moves first
	require.Equal(t, entity.StatusOngoing, game.Status)
	require.Equal(t, entity.MarkO, game.HostMark)
	require.Equal(t, entity.MarkX, game.GuestMark)
	require.Equal(t, "bob", game.Turn)

	// When: the match is played out, bob building the 2-4-6 diagonal
	game, err = engine.Execute(ctx, "bob", PlayMsg{Host: "alice", Guest: "bob", Cell: 4})
	require.NoError(t, err)
	assert.Equal(t, entity.MarkX, game.Board[4])
	assert.Equal(t, "alice", game.Turn)

	game, err = engine.Execute(ctx, "alice", PlayMsg{Host: "alice", Guest: "bob", Cell: 0})
	require.NoError(t, err)
	assert.Equal(t, entity.MarkO, game.Board[0])
	assert.Equal(t, "bob", game.Turn)

	_, err = engine.Execute(ctx, "bob", PlayMsg{Host: "alice", Guest: "bob", Cell: 2})
	require.NoError(t, err)

	_, err = engine.Execute(ctx, "alice", PlayMsg{Host: "alice", Guest: "bob", Cell: 8})
	require.NoError(t, err)

	game, err = engine.Execute(ctx, "bob", PlayMsg{Host: "alice", Guest: "bob", Cell: 6})
	require.NoError(t, err)

	// Then: bob wins with X and the record is terminal
	assert.Equal(t, entity.StatusFinished, game.Status)
	assert.Equal(t, entity.MarkX, game.Winner)
	assert.Equal(t, "bob", game.Turn)

	// And: the pair query returns the finished record
	result, err := engine.Query(ctx, GamesQuery{Host: "alice", Guest: "bob"})
	require.NoError(t, err)
	require.Equal(t, game, result.Game)

	// And: no further move is accepted
	_, err = engine.Execute(ctx, "alice", PlayMsg{Host: "alice", Guest: "bob", Cell: 1})
	require.ErrorIs(t, err, apperror.ErrGameNotInProgress)
}

func TestGameUseCase_Rematch(t *testing.T) {
	ctx, engine, _ := newEngine(t)

	// Given: a finished match between alice and bob
	_, err := engine.Execute(ctx, "alice", InviteMsg{Guest: "bob"})
	require.NoError(t, err)
	_, err = engine.Execute(ctx, "bob", AcceptMsg{Host: "alice"})
	require.NoError(t, err)

	moves := []struct {
		player string
		cell   int
	}{
		{"bob", 4}, {"alice", 0}, {"bob", 2}, {"alice", 8}, {"bob", 6},
	}
	for _, move := range moves {
		_, err = engine.Execute(ctx, move.player, PlayMsg{Host: "alice", Guest: "bob", Cell: move.cell})
		require.NoError(t, err)
	}

	// When: alice invites bob again
	game, err := engine.Execute(ctx, "alice", InviteMsg{Guest: "bob"})
	require.NoError(t, err)

	// Then: the record is pending again with the first match archived
	assert.Equal(t, entity.StatusPending, game.Status)
	assert.Equal(t, entity.Board{}, game.Board)
	require.Len(t, game.History, 1)
	assert.Equal(t, entity.MarkX, game.History[0].Winner)

	// And: accepting again deals the same marks to the same pair
	game, err = engine.Execute(ctx, "bob", AcceptMsg{Host: "alice"})
	require.NoError(t, err)
	assert.Equal(t, entity.MarkO, game.HostMark)
	assert.Equal(t, entity.MarkX, game.GuestMark)
	assert.Equal(t, "bob", game.Turn)
}

func TestGameUseCase_NoMutationOnFailure(t *testing.T) {
	ctx, engine, gameRepo := newEngine(t)

	// Given: a pending invitation and an ongoing game in the registry
	_, err := engine.Execute(ctx, "alice", InviteMsg{Guest: "bob"})
	require.NoError(t, err)
	_, err = engine.Execute(ctx, "carol", InviteMsg{Guest: "dave"})
	require.NoError(t, err)
	_, err = engine.Execute(ctx, "dave", AcceptMsg{Host: "carol"})
	require.NoError(t, err)

	before, err := gameRepo.ListAll(ctx)
	require.NoError(t, err)

	// When: a batch of invalid operations is attempted
	failures := []struct {
		name   string
		sender string
		msg    ExecuteMsg
	}{
		{"self invite", "alice", InviteMsg{Guest: "alice"}},
		{"duplicate invite on pending", "alice", InviteMsg{Guest: "bob"}},
		{"duplicate invite on ongoing", "carol", InviteMsg{Guest: "dave"}},
		{"accept without invitation", "dave", AcceptMsg{Host: "alice"}},
		{"accept on ongoing", "dave", AcceptMsg{Host: "carol"}},
		{"reject on ongoing", "dave", RejectMsg{Host: "carol"}},
		{"play on pending", "bob", PlayMsg{Host: "alice", Guest: "bob", Cell: 0}},
		{"play by outsider", "mallory", PlayMsg{Host: "carol", Guest: "dave", Cell: 0}},
		{"play out of turn", "carol", PlayMsg{Host: "carol", Guest: "dave", Cell: 0}},
		{"play out of range", "dave", PlayMsg{Host: "carol", Guest: "dave", Cell: 9}},
		{"play on missing game", "bob", PlayMsg{Host: "bob", Guest: "alice", Cell: 0}},
	}
	for _, failure := range failures {
		_, err = engine.Execute(ctx, failure.sender, failure.msg)
		require.Error(t, err, failure.name)
	}

	// Then: the registry is exactly as it was before the batch
	after, err := gameRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestGameUseCase_EnumerationCompleteness(t *testing.T) {
	ctx, engine, _ := newEngine(t)

	// Given: a mixed history of invitations and games
	_, err := engine.Execute(ctx, "alice", InviteMsg{Guest: "bob"})
	require.NoError(t, err)

	_, err = engine.Execute(ctx, "bob", InviteMsg{Guest: "alice"})
	require.NoError(t, err)
	_, err = engine.Execute(ctx, "alice", RejectMsg{Host: "bob"})
	require.NoError(t, err)

	_, err = engine.Execute(ctx, "carol", InviteMsg{Guest: "dave"})
	require.NoError(t, err)
	_, err = engine.Execute(ctx, "dave", AcceptMsg{Host: "carol"})
	require.NoError(t, err)

	// When: every game is listed
	result, err := engine.Query(ctx, AllGamesQuery{})
	require.NoError(t, err)

	// Then: each invited pair appears exactly once with its latest state
	require.Len(t, result.Games, 3)

	byPair := make(map[string]string, len(result.Games))
	for _, game := range result.Games {
		byPair[game.Host+"/"+game.Guest] = game.Status
	}

	assert.Equal(t, entity.StatusPending, byPair["alice/bob"])
	assert.Equal(t, entity.StatusRejected, byPair["bob/alice"])
	assert.Equal(t, entity.StatusOngoing, byPair["carol/dave"])
}

func TestGameUseCase_QueryErrors(t *testing.T) {
	ctx, engine, _ := newEngine(t)

	t.Run("Games query on an unknown pair", func(t *testing.T) {
		// When: a pair that never played is queried
		result, err := engine.Query(ctx, GamesQuery{Host: "alice", Guest: "bob"})

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, repository.ErrGameNotFound)
		assert.Nil(t, result)
	})

	t.Run("AllGames query on an empty registry", func(t *testing.T) {
		// When: all games are listed with nothing stored
		result, err := engine.Query(ctx, AllGamesQuery{})

		// Then: an empty list should be returned
		require.NoError(t, err)
		assert.Empty(t, result.Games)
	})
}

func TestGameUseCase_UnknownMessage(t *testing.T) {
	ctx, engine, _ := newEngine(t)

	t.Run("Unknown execute message", func(t *testing.T) {
		_, err := engine.Execute(ctx, "alice", bogusExecuteMsg{})
		require.ErrorIs(t, err, ErrUnknownMessage)
	})

	t.Run("Unknown query message", func(t *testing.T) {
		_, err := engine.Query(ctx, bogusQueryMsg{})
		require.ErrorIs(t, err, ErrUnknownMessage)
	})
}
