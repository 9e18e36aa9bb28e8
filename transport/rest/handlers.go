package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gridduelinc/gridduel-backend/internal/repository"
	"github.com/gridduelinc/gridduel-backend/internal/usecase"
)

func (that *Server) handleAllGames(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleAllGames")

	result, err := that.engine.Query(r.Context(), usecase.AllGamesQuery{})
	if err != nil {
		log.Error("failed to list games", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	that.writeJSON(w, http.StatusOK, gamesResponse{Games: result.Games})
}

func (that *Server) handleGameByPair(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleGameByPair")

	host, guest := r.PathValue("host"), r.PathValue("guest")

	result, err := that.engine.Query(r.Context(), usecase.GamesQuery{Host: host, Guest: guest})
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)

			return
		}

		log.Error("failed to get game", "host", host, "guest", guest, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{Game: result.Game})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
