package websocket

import (
	"encoding/json"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the fields of every action. Requests fill the identities
// and the cell their action needs; responses fill the player, the written
// record, or the game list.
type Payload struct {
	Player string         `json:"player,omitempty"`
	Host   string         `json:"host,omitempty"`
	Guest  string         `json:"guest,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Games  []*entity.Game `json:"games,omitempty"`
	Error  string         `json:"error,omitempty"`
}
