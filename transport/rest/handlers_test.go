package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
	"github.com/gridduelinc/gridduel-backend/internal/repository"
	"github.com/gridduelinc/gridduel-backend/internal/service"
	"github.com/gridduelinc/gridduel-backend/internal/usecase"
)

// newTestServer exposes the read-only routes over real services and an
// in-memory registry, with the engine returned so tests can seed games.
func newTestServer(t *testing.T) (*httptest.Server, usecase.GameUseCase) {
	t.Helper()

	gameRepo := repository.NewMemoryGameRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine := usecase.NewGameUseCase(
		logger,
		service.NewInvitationService(gameRepo),
		service.NewGameplayService(gameRepo),
		service.NewQueryService(gameRepo),
	)

	srv := httptest.NewServer(New(logger, engine).Handler())
	t.Cleanup(srv.Close)

	return srv, engine
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, body
}

func TestServer_Ping(t *testing.T) {
	srv, _ := newTestServer(t)

	// When: the liveness route is hit
	resp, body := get(t, srv, "/ping")

	// Then: it answers pong
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestServer_GameByPair(t *testing.T) {
	srv, engine := newTestServer(t)
	ctx := context.Background()

	// Given: alice has invited bob
	_, err := engine.Execute(ctx, "alice", usecase.InviteMsg{Guest: "bob"})
	require.NoError(t, err)

	t.Run("returns the stored record", func(t *testing.T) {
		// When: the pair is fetched host-first
		resp, body := get(t, srv, "/games/alice/bob")

		// Then: the pending record comes back
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var got gameResponse
		require.NoError(t, json.Unmarshal(body, &got))
		require.NotNil(t, got.Game)
		assert.Equal(t, "alice", got.Game.Host)
		assert.Equal(t, "bob", got.Game.Guest)
		assert.Equal(t, entity.StatusPending, got.Game.Status)
	})

	t.Run("the reversed pair is a different key", func(t *testing.T) {
		// When: the same players are fetched guest-first
		resp, _ := get(t, srv, "/games/bob/alice")

		// Then: no record exists under that key
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown pairs are not found", func(t *testing.T) {
		resp, _ := get(t, srv, "/games/nobody/noone")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_AllGames(t *testing.T) {
	srv, engine := newTestServer(t)
	ctx := context.Background()

	t.Run("empty registry lists nothing", func(t *testing.T) {
		resp, body := get(t, srv, "/games")

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got gamesResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Empty(t, got.Games)
	})

	t.Run("every stored record is listed", func(t *testing.T) {
		// Given: two invitations under distinct pair keys
		_, err := engine.Execute(ctx, "alice", usecase.InviteMsg{Guest: "bob"})
		require.NoError(t, err)

		_, err = engine.Execute(ctx, "carol", usecase.InviteMsg{Guest: "dave"})
		require.NoError(t, err)

		// When: the whole registry is listed
		resp, body := get(t, srv, "/games")

		// Then: both records come back
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got gamesResponse
		require.NoError(t, json.Unmarshal(body, &got))
		require.Len(t, got.Games, 2)
		assert.Equal(t, "alice", got.Games[0].Host)
		assert.Equal(t, "carol", got.Games[1].Host)
	})
}
