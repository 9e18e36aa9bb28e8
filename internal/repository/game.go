package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

const (
	gameKeyPrefix = "game:"
	gameKeysIndex = "games:keys"
)

// GameRepository is the game registry: one record per ordered (host, guest)
// pair, plus a full enumeration for the all-games query. ListAll returns
// records in a stable key order.
type GameRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	GetByPair(ctx context.Context, host, guest string) (*entity.Game, error)
	ListAll(ctx context.Context) ([]*entity.Game, error)
}

type redisGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &redisGame{
		client: client,
	}
}

func gameKey(host, guest string) string {
	return gameKeyPrefix + host + ":" + guest
}

func (that *redisGame) Save(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	key := gameKey(game.Host, game.Guest)

	// the record and its index entry land together or not at all
	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, gameJSON, 0)
		pipe.SAdd(ctx, gameKeysIndex, key)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *redisGame) GetByPair(ctx context.Context, host, guest string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(host, guest)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *redisGame) ListAll(ctx context.Context) ([]*entity.Game, error) {
	keys, err := that.client.SMembers(ctx, gameKeysIndex).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game keys: %w", err)
	}

	if len(keys) == 0 {
		return []*entity.Game{}, nil
	}

	// set members come back unordered
	sort.Strings(keys)

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*entity.Game, 0, len(values))

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %w", err)
		}

		games = append(games, &game)
	}

	return games, nil
}
