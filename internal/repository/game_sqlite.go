package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

type sqliteGame struct {
	conn *sql.DB
}

// NewSQLiteGameRepository returns a game registry backed by the games table.
// Records are stored as the same JSON document the redis backend keeps, one
// row per (host, guest) pair.
func NewSQLiteGameRepository(conn *sql.DB) GameRepository {
	return &sqliteGame{
		conn: conn,
	}
}

func (that *sqliteGame) Save(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	query := `INSERT OR REPLACE INTO games (host, guest, record) VALUES (?, ?, ?)`

	if _, err = that.conn.ExecContext(ctx, query, game.Host, game.Guest, string(gameJSON)); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *sqliteGame) GetByPair(ctx context.Context, host, guest string) (*entity.Game, error) {
	query := `SELECT record FROM games WHERE host = ? AND guest = ?`

	var record string

	err := that.conn.QueryRowContext(ctx, query, host, guest).Scan(&record)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(record), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *sqliteGame) ListAll(ctx context.Context) ([]*entity.Game, error) {
	query := `SELECT record FROM games ORDER BY host, guest`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := make([]*entity.Game, 0)

	for rows.Next() {
		var record string
		if err = rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(record), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %w", err)
		}

		games = append(games, &game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}
