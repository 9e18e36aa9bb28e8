package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

type memoryGame struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryGameRepository returns a process-local game registry. Records are
// kept as the same JSON documents the other backends store, so callers get
// copies and never alias the stored state.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		records: make(map[string][]byte),
	}
}

func (that *memoryGame) Save(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[gameKey(game.Host, game.Guest)] = gameJSON

	return nil
}

func (that *memoryGame) GetByPair(_ context.Context, host, guest string) (*entity.Game, error) {
	that.mu.RLock()
	record, ok := that.records[gameKey(host, guest)]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	var game entity.Game
	if err := json.Unmarshal(record, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *memoryGame) ListAll(_ context.Context) ([]*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	keys := make([]string, 0, len(that.records))
	for key := range that.records {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	games := make([]*entity.Game, 0, len(keys))

	for _, key := range keys {
		var game entity.Game
		if err := json.Unmarshal(that.records[key], &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %w", err)
		}

		games = append(games, &game)
	}

	return games, nil
}
