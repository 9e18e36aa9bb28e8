package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
	"github.com/gridduelinc/gridduel-backend/internal/usecase"
)

type queryEngine interface {
	Query(ctx context.Context, msg usecase.QueryMsg) (*usecase.QueryResult, error)
}

// Server serves the read-only HTTP surface: a liveness ping and the game
// queries. All mutations go through the WebSocket transport.
type Server struct {
	logger *slog.Logger
	engine queryEngine
}

func New(logger *slog.Logger, engine queryEngine) *Server {
	return &Server{
		logger: logger,
		engine: engine,
	}
}

func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Handler returns the route table so callers can mount or test the server
// without binding a port.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("GET /games", that.handleAllGames)
	mux.HandleFunc("GET /games/{host}/{guest}", that.handleGameByPair)

	return mux
}

type gameResponse struct {
	Game *entity.Game `json:"game"`
}

type gamesResponse struct {
	Games []*entity.Game `json:"games"`
}
