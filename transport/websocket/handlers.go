package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gridduelinc/gridduel-backend/internal/usecase"
)

const (
	actionConnect = "connect"
	actionInvite  = "game:invite"
	actionAccept  = "game:accept"
	actionReject  = "game:reject"
	actionTurn    = "game:turn"
	actionState   = "game:state"
	actionList    = "game:list"
)

// handleConnect rebinds the session to an identity the client already holds,
// or confirms the minted one when the payload names no player.
func (that *Server) handleConnect(_ context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	var payload Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	if payload.Player != "" {
		sess.player = payload.Player
		log.Info("session rebound", "player", sess.player)
	}

	return that.send(sess, msg.Action, Payload{Player: sess.player})
}

func (that *Server) handleInvite(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleInvite", "player", sess.player)

	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Guest == "" {
		log.Error("guest is missing in payload")
		return that.sendError(sess, msg.Action, "guest is required")
	}

	game, err := that.engine.Execute(ctx, sess.player, usecase.InviteMsg{Guest: payload.Guest})
	if err != nil {
		log.Error("failed to invite", "guest", payload.Guest, "error", err)
		return that.sendError(sess, msg.Action, err.Error())
	}

	return that.send(sess, msg.Action, Payload{Game: game})
}

func (that *Server) handleAccept(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleAccept", "player", sess.player)

	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Host == "" {
		log.Error("host is missing in payload")
		return that.sendError(sess, msg.Action, "host is required")
	}

	game, err := that.engine.Execute(ctx, sess.player, usecase.AcceptMsg{Host: payload.Host})
	if err != nil {
		log.Error("failed to accept", "host", payload.Host, "error", err)
		return that.sendError(sess, msg.Action, err.Error())
	}

	return that.send(sess, msg.Action, Payload{Game: game})
}

func (that *Server) handleReject(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleReject", "player", sess.player)

	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Host == "" {
		log.Error("host is missing in payload")
		return that.sendError(sess, msg.Action, "host is required")
	}

	game, err := that.engine.Execute(ctx, sess.player, usecase.RejectMsg{Host: payload.Host})
	if err != nil {
		log.Error("failed to reject", "host", payload.Host, "error", err)
		return that.sendError(sess, msg.Action, err.Error())
	}

	return that.send(sess, msg.Action, Payload{Game: game})
}

func (that *Server) handleTurn(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleTurn", "player", sess.player)

	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Host == "" || payload.Guest == "" {
		log.Error("host or guest is missing in payload")
		return that.sendError(sess, msg.Action, "host and guest are required")
	}

	if payload.Cell == nil {
		log.Error("cell is missing in payload")
		return that.sendError(sess, msg.Action, "cell is required")
	}

	game, err := that.engine.Execute(ctx, sess.player, usecase.PlayMsg{
		Host:  payload.Host,
		Guest: payload.Guest,
		Cell:  *payload.Cell,
	})
	if err != nil {
		log.Error("failed to make turn", "host", payload.Host, "guest", payload.Guest, "error", err)
		return that.sendError(sess, msg.Action, err.Error())
	}

	return that.send(sess, msg.Action, Payload{Game: game})
}

func (that *Server) handleState(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleState", "player", sess.player)

	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Host == "" || payload.Guest == "" {
		log.Error("host or guest is missing in payload")
		return that.sendError(sess, msg.Action, "host and guest are required")
	}

	result, err := that.engine.Query(ctx, usecase.GamesQuery{Host: payload.Host, Guest: payload.Guest})
	if err != nil {
		log.Error("failed to query game", "host", payload.Host, "guest", payload.Guest, "error", err)
		return that.sendError(sess, msg.Action, err.Error())
	}

	return that.send(sess, msg.Action, Payload{Game: result.Game})
}

func (that *Server) handleList(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleList", "player", sess.player)

	result, err := that.engine.Query(ctx, usecase.AllGamesQuery{})
	if err != nil {
		log.Error("failed to list games", "error", err)
		return that.sendError(sess, msg.Action, err.Error())
	}

	return that.send(sess, msg.Action, Payload{Games: result.Games})
}
