package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gridduelinc/gridduel-backend/internal/entity"
	"github.com/gridduelinc/gridduel-backend/internal/usecase"
)

type gameEngine interface {
	Execute(ctx context.Context, sender string, msg usecase.ExecuteMsg) (*entity.Game, error)
	Query(ctx context.Context, msg usecase.QueryMsg) (*usecase.QueryResult, error)
}

// session is one connected player: the socket plus the identity it acts as.
// A fresh identity is minted at connect time; the connect action can rebind
// the session to an identity the client already holds.
type session struct {
	conn   *websocket.Conn
	player string
}

type Server struct {
	logger   *slog.Logger
	engine   gameEngine
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, sess *session, msg *Message) error
}

func New(logger *slog.Logger, engine gameEngine) *Server {
	server := &Server{
		logger: logger,
		engine: engine,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *session, *Message) error),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionInvite] = server.handleInvite
	server.handlers[actionAccept] = server.handleAccept
	server.handlers[actionReject] = server.handleReject
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionState] = server.handleState
	server.handlers[actionList] = server.handleList

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(ctx),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Handler returns the /ws route so callers can mount or test the server
// without binding a port.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(writer http.ResponseWriter, req *http.Request) {
		that.serveConnection(ctx, writer, req)
	})

	return mux
}

// serveConnection upgrades the connection, mints an identity for it and
// pumps messages until the peer goes away.
func (that *Server) serveConnection(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	sess := &session{
		conn:   conn,
		player: uuid.New().String(),
	}

	if err = that.send(sess, actionConnect, Payload{Player: sess.player}); err != nil {
		log.Error("failed to send connect message", "player", sess.player, "error", err)
		return
	}

	log.Info("player connected", "player", sess.player)

	that.handleMessages(ctx, sess)

	// the session may have been rebound since the greeting
	log.Info("player disconnected", "player", sess.player)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, sess *session) {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := sess.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("failed to read message", "error", err)
			}

			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err := that.sendError(sess, message.Action, "unknown action"); err != nil {
				log.Error("failed to send error response", "error", err)
			}

			continue
		}

		if err := handler(ctx, sess, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) send(sess *session, action string, payload Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := Message{
		Action:  action,
		Payload: raw,
	}

	if err = sess.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(sess *session, action, errorMsg string) error {
	if err := that.send(sess, action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
